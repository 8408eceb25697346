package googleauth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Jacobisaldana/nativoseo-app/app/models"
)

// fakeTokenRepo is an in-memory OAuthTokenRepository keyed by user.
type fakeTokenRepo struct {
	records map[uint]*models.OauthToken
	nextID  uint
	failGet error
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{records: make(map[uint]*models.OauthToken)}
}

func (f *fakeTokenRepo) GetByUserID(userID uint) (*models.OauthToken, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	record, ok := f.records[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *record
	return &copied, nil
}

func (f *fakeTokenRepo) Upsert(record *models.OauthToken) error {
	if existing, ok := f.records[record.UserID]; ok {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	} else {
		f.nextID++
		record.ID = f.nextID
	}
	copied := *record
	f.records[record.UserID] = &copied
	return nil
}

func (f *fakeTokenRepo) DeleteByUserID(userID uint) error {
	delete(f.records, userID)
	return nil
}

func TestResolverUnauthenticatedWhenNoRecord(t *testing.T) {
	r := NewResolver(newFakeTokenRepo())

	_, err := r.Resolve(42)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolverStorageFailure(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.failGet = errors.New("connection refused")
	r := NewResolver(repo)

	_, err := r.Resolve(42)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "get", perr.Op)
}

func TestResolverReturnsStoredCredential(t *testing.T) {
	repo := newFakeTokenRepo()
	require.NoError(t, repo.Upsert((&Credential{
		AccessToken:  "at",
		RefreshToken: "rt",
		Scopes:       []string{ScopeBusinessManage},
	}).ToRecord(42)))
	r := NewResolver(repo)

	cred, err := r.Resolve(42)
	require.NoError(t, err)
	assert.Equal(t, "at", cred.AccessToken)
	assert.Equal(t, "rt", cred.RefreshToken)
}

func TestResolverInvalidStoredRecord(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.records[42] = &models.OauthToken{ID: 1, UserID: 42, AccessToken: "at"}
	r := NewResolver(repo)

	_, err := r.Resolve(42)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

// A second authorization for the same user replaces the stored token in
// place: the row identity stays, the fresh tokens win.
func TestReauthorizationOverwritesSingleRecord(t *testing.T) {
	repo := newFakeTokenRepo()
	r := NewResolver(repo)

	first := (&Credential{AccessToken: "at-abc", RefreshToken: "rt-abc"}).ToRecord(42)
	require.NoError(t, repo.Upsert(first))

	second := (&Credential{AccessToken: "at-def", RefreshToken: "rt-def"}).ToRecord(42)
	require.NoError(t, repo.Upsert(second))

	assert.Equal(t, first.ID, second.ID, "same row identity")
	assert.Len(t, repo.records, 1)

	cred, err := r.Resolve(42)
	require.NoError(t, err)
	assert.Equal(t, "at-def", cred.AccessToken)
	assert.Equal(t, "rt-def", cred.RefreshToken)
}

func TestResolverManualSlot(t *testing.T) {
	r := NewResolver(newFakeTokenRepo())

	// Anonymous caller before any credential was set.
	_, err := r.Resolve(0)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	r.SetManual(&Credential{AccessToken: "at", RefreshToken: "rt"})

	cred, err := r.Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, "at", cred.AccessToken)

	// The manual slot never serves authenticated users.
	_, err = r.Resolve(42)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
