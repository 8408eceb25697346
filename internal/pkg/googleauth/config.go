package googleauth

import (
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/env"
)

// ScopeBusinessManage is the minimum capability the app needs against the
// Business Profile APIs. Credentials are never built without at least this
// scope.
const ScopeBusinessManage = "https://www.googleapis.com/auth/business.manage"

// Config holds the OAuth client identity and scope set used to mint Google
// credentials. Endpoint defaults to Google's and is only overridden in tests.
type Config struct {
	ClientID     string
	ClientSecret string
	Scopes       []string
	Endpoint     oauth2.Endpoint
}

// LoadConfig reads the OAuth client configuration from the environment.
// GOOGLE_SCOPES is a comma-delimited list; empty falls back to the default
// scope set.
func LoadConfig() Config {
	return Config{
		ClientID:     env.GetEnv("GOOGLE_CLIENT_ID", ""),
		ClientSecret: env.GetEnv("GOOGLE_CLIENT_SECRET", ""),
		Scopes:       SplitScopes(env.GetEnv("GOOGLE_SCOPES", "")),
		Endpoint:     google.Endpoint,
	}
}

// DefaultScopes returns the statically configured minimum scope set.
func DefaultScopes() []string {
	return []string{ScopeBusinessManage}
}

// OAuth2 materializes an oauth2.Config bound to one redirect URI.
func (c Config) OAuth2(redirectURI string) *oauth2.Config {
	endpoint := c.Endpoint
	if endpoint.AuthURL == "" && endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  redirectURI,
		Scopes:       c.scopes(),
		Endpoint:     endpoint,
	}
}

func (c Config) scopes() []string {
	if len(c.Scopes) == 0 {
		return DefaultScopes()
	}
	return c.Scopes
}

// SplitScopes parses a comma-delimited scope string as stored in the token
// record. An empty or blank input yields the default scope set, never an
// unscoped credential.
func SplitScopes(s string) []string {
	var scopes []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			scopes = append(scopes, trimmed)
		}
	}
	if len(scopes) == 0 {
		return DefaultScopes()
	}
	return scopes
}

// JoinScopes serializes a scope set for storage.
func JoinScopes(scopes []string) string {
	return strings.Join(scopes, ",")
}
