package googleauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// fakeProvider spins up a token endpoint that answers every exchange with
// the given JSON body.
func fakeProvider(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testFlowManager(t *testing.T, provider *httptest.Server) *FlowManager {
	t.Helper()
	cfg := Config{
		ClientID:     "client-123",
		ClientSecret: "secret-456",
		Endpoint: oauth2.Endpoint{
			AuthURL:  provider.URL + "/auth",
			TokenURL: provider.URL + "/token",
		},
	}
	return NewFlowManager(cfg, NewMemoryStateStore())
}

func TestFlowManagerBegin(t *testing.T) {
	provider := fakeProvider(t, http.StatusOK, `{}`)
	m := testFlowManager(t, provider)

	authURL, state, err := m.Begin("http://localhost:8000/auth/google/callback")
	require.NoError(t, err)
	require.NotEmpty(t, state)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, state, q.Get("state"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, "client-123", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8000/auth/google/callback", q.Get("redirect_uri"))
	assert.Contains(t, q.Get("scope"), ScopeBusinessManage)
}

func TestFlowManagerBeginStatesAreUnique(t *testing.T) {
	provider := fakeProvider(t, http.StatusOK, `{}`)
	m := testFlowManager(t, provider)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		_, state, err := m.Begin("http://localhost/cb")
		require.NoError(t, err)
		assert.False(t, seen[state], "state issued twice")
		seen[state] = true
	}
}

func TestFlowManagerComplete(t *testing.T) {
	provider := fakeProvider(t, http.StatusOK,
		`{"access_token":"at-1","refresh_token":"rt-1","token_type":"Bearer","expires_in":3600,"scope":"https://www.googleapis.com/auth/business.manage openid"}`)
	m := testFlowManager(t, provider)

	_, state, err := m.Begin("http://localhost/cb")
	require.NoError(t, err)

	cred, err := m.Complete(context.Background(), "auth-code", state)
	require.NoError(t, err)
	assert.Equal(t, "at-1", cred.AccessToken)
	assert.Equal(t, "rt-1", cred.RefreshToken)
	assert.Equal(t, "client-123", cred.ClientID)
	assert.Equal(t, "secret-456", cred.ClientSecret)
	assert.Equal(t, []string{ScopeBusinessManage, "openid"}, cred.Scopes)
	assert.False(t, cred.Expiry.IsZero())
}

func TestFlowManagerCompleteUnknownState(t *testing.T) {
	provider := fakeProvider(t, http.StatusOK, `{}`)
	m := testFlowManager(t, provider)

	_, err := m.Complete(context.Background(), "auth-code", "never-issued")
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestFlowManagerCompleteStateIsSingleUse(t *testing.T) {
	provider := fakeProvider(t, http.StatusOK,
		`{"access_token":"at-1","refresh_token":"rt-1","token_type":"Bearer"}`)
	m := testFlowManager(t, provider)

	_, state, err := m.Begin("http://localhost/cb")
	require.NoError(t, err)

	_, err = m.Complete(context.Background(), "auth-code", state)
	require.NoError(t, err)

	_, err = m.Complete(context.Background(), "auth-code", state)
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestFlowManagerCompleteConcurrentReplay(t *testing.T) {
	provider := fakeProvider(t, http.StatusOK,
		`{"access_token":"at-1","refresh_token":"rt-1","token_type":"Bearer"}`)
	m := testFlowManager(t, provider)

	_, state, err := m.Begin("http://localhost/cb")
	require.NoError(t, err)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = m.Complete(context.Background(), "auth-code", state)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrUnknownState)
		}
	}
	assert.Equal(t, 1, winners, "exactly one caller may consume a state")
}

func TestFlowManagerCompleteMissingRefreshToken(t *testing.T) {
	provider := fakeProvider(t, http.StatusOK,
		`{"access_token":"at-1","token_type":"Bearer"}`)
	m := testFlowManager(t, provider)

	_, state, err := m.Begin("http://localhost/cb")
	require.NoError(t, err)

	_, err = m.Complete(context.Background(), "auth-code", state)
	assert.ErrorIs(t, err, ErrMissingRefreshToken)
}

func TestFlowManagerCompleteProviderRejectsCode(t *testing.T) {
	provider := fakeProvider(t, http.StatusBadRequest,
		`{"error":"invalid_grant","error_description":"code already redeemed"}`)
	m := testFlowManager(t, provider)

	_, state, err := m.Begin("http://localhost/cb")
	require.NoError(t, err)

	_, err = m.Complete(context.Background(), "bad-code", state)
	require.Error(t, err)

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "exchange", perr.Op)
}

func TestGrantedScopesFallbacks(t *testing.T) {
	// No scope field on the token, requested set wins.
	token := &oauth2.Token{}
	assert.Equal(t, []string{"a", "b"}, grantedScopes(token, []string{"a", "b"}))

	// Nothing at all falls back to the default set.
	assert.Equal(t, DefaultScopes(), grantedScopes(token, nil))
}
