package googleauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestMemoryStateStoreTakeIsSingleUse(t *testing.T) {
	store := NewMemoryStateStore()
	store.Put("s1", PendingAuthorization{
		Config:    &oauth2.Config{ClientID: "c"},
		CreatedAt: time.Now(),
	})

	pending, ok := store.Take("s1")
	require.True(t, ok)
	assert.Equal(t, "c", pending.Config.ClientID)

	_, ok = store.Take("s1")
	assert.False(t, ok)
}

func TestMemoryStateStoreUnknownState(t *testing.T) {
	store := NewMemoryStateStore()
	_, ok := store.Take("never-stored")
	assert.False(t, ok)
}

func TestNewStateShapeAndUniqueness(t *testing.T) {
	a, err := newState()
	require.NoError(t, err)
	b, err := newState()
	require.NoError(t, err)

	// 32 random bytes, base64 url encoding without padding.
	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "=")
	assert.NotContains(t, a, "+")
	assert.NotContains(t, a, "/")
}
