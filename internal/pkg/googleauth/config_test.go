package googleauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/oauth2/google"
)

func TestSplitScopes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", ScopeBusinessManage, []string{ScopeBusinessManage}},
		{"multiple", "a,b,c", []string{"a", "b", "c"}},
		{"whitespace", " a , b ", []string{"a", "b"}},
		{"empty falls back to default", "", DefaultScopes()},
		{"blank falls back to default", " , , ", DefaultScopes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitScopes(tt.input))
		})
	}
}

func TestJoinScopesRoundTrip(t *testing.T) {
	scopes := []string{ScopeBusinessManage, "openid"}
	assert.Equal(t, scopes, SplitScopes(JoinScopes(scopes)))
}

func TestConfigOAuth2Defaults(t *testing.T) {
	cfg := Config{ClientID: "id", ClientSecret: "secret"}

	oc := cfg.OAuth2("http://localhost/cb")
	assert.Equal(t, "id", oc.ClientID)
	assert.Equal(t, "http://localhost/cb", oc.RedirectURL)
	assert.Equal(t, DefaultScopes(), oc.Scopes)
	assert.Equal(t, google.Endpoint.TokenURL, oc.Endpoint.TokenURL)
}
