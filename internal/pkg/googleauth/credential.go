package googleauth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/Jacobisaldana/nativoseo-app/app/models"
)

// Credential is a live, usable Google credential: bearer token, refresh
// token and the client identity that obtained them. It is the in-memory
// counterpart of models.OauthToken.
type Credential struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Expiry       time.Time
	Scopes       []string
	ClientID     string
	ClientSecret string
}

// Token returns the oauth2 token view of the credential.
func (c *Credential) Token() *oauth2.Token {
	tokenType := c.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    tokenType,
		Expiry:       c.Expiry,
	}
}

// TokenSource returns a self-refreshing token source backed by the client
// identity stored with the credential.
func (c *Credential) TokenSource(ctx context.Context) oauth2.TokenSource {
	cfg := Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Scopes:       c.Scopes,
	}
	return cfg.OAuth2("").TokenSource(ctx, c.Token())
}

// HTTPClient returns an http.Client that signs requests with the bearer
// token and refreshes it when expired.
func (c *Credential) HTTPClient(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, c.TokenSource(ctx))
}

// FromRecord rehydrates a credential from its persisted form. A nil record
// or one without both tokens yields ErrInvalidRecord.
func FromRecord(record *models.OauthToken) (*Credential, error) {
	if record == nil {
		return nil, fmt.Errorf("rehydrate credential: %w", ErrInvalidRecord)
	}
	if record.AccessToken == "" || record.RefreshToken == "" {
		return nil, fmt.Errorf("rehydrate credential for user %d: %w", record.UserID, ErrInvalidRecord)
	}

	cred := &Credential{
		AccessToken:  record.AccessToken,
		RefreshToken: record.RefreshToken,
		TokenType:    record.TokenType,
		Scopes:       SplitScopes(record.Scopes),
		ClientID:     record.ClientID,
		ClientSecret: record.ClientSecret,
	}
	if record.ExpiresAt != nil {
		cred.Expiry = *record.ExpiresAt
	}
	return cred, nil
}

// ToRecord captures the credential in its persisted form for the given user.
func (c *Credential) ToRecord(userID uint) *models.OauthToken {
	record := &models.OauthToken{
		UserID:       userID,
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    c.TokenType,
		Scopes:       JoinScopes(c.Scopes),
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
	}
	if record.TokenType == "" {
		record.TokenType = "Bearer"
	}
	if len(c.Scopes) == 0 {
		record.Scopes = JoinScopes(DefaultScopes())
	}
	if !c.Expiry.IsZero() {
		expiry := c.Expiry
		record.ExpiresAt = &expiry
	}
	return record
}
