package authtoken

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/env"
)

// ErrInvalidToken is returned for expired, malformed or mis-signed tokens.
var ErrInvalidToken = errors.New("invalid auth token")

// ErrMissingSecret is returned when JWT_SECRET is not configured. Tokens
// are never signed or verified with an empty key.
var ErrMissingSecret = errors.New("JWT_SECRET is not configured")

func secret() ([]byte, error) {
	s := env.GetEnv("JWT_SECRET", "")
	if s == "" {
		return nil, ErrMissingSecret
	}
	return []byte(s), nil
}

func ttl() time.Duration {
	minutes, err := strconv.Atoi(env.GetEnv("JWT_TTL_MINUTES", "60"))
	if err != nil || minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

// Issue signs an app login token for the user. This token authenticates the
// user against this API only; it is unrelated to Google bearer tokens.
func Issue(userID uint, username string) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// Verify parses a login token and returns the user ID it was issued for.
func Verify(tokenString string) (uint, error) {
	key, err := secret()
	if err != nil {
		return 0, err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
