package authtoken

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := Issue(42, "jacobo")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestIssueFailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Issue(42, "jacobo")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestVerifyFailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := Issue(42, "jacobo")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "")
	_, err = Verify(token)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := Issue(42, "jacobo")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSigningMethod(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// An unsigned token must never pass, even with a matching subject.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "42"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "jacobo"})
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
