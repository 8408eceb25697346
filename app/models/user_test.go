package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("jacobo", "jacobo@example.com", "s3cr3tpw")
	require.NoError(t, err)

	assert.Equal(t, "jacobo", u.Username)
	assert.Equal(t, STATUS_ACTIVE, u.Status)
	assert.NotEqual(t, "s3cr3tpw", u.Password, "password is stored hashed")
	assert.True(t, u.CheckPassword("s3cr3tpw"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"short username", "ab", "a@example.com", "s3cr3tpw"},
		{"bad email", "jacobo", "not-an-email", "s3cr3tpw"},
		{"short password", "jacobo", "a@example.com", "pw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.username, tt.email, tt.password)
			assert.Error(t, err)
		})
	}
}

func TestUserIsActive(t *testing.T) {
	assert.True(t, (&User{Status: STATUS_ACTIVE}).IsActive())
	assert.False(t, (&User{Status: STATUS_INACTIVE}).IsActive())
}
