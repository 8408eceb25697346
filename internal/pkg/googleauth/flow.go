package googleauth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// FlowManager runs the authorization-code handshake against Google. Each
// attempt moves through exactly two steps: Begin mints a state value and an
// authorization URL, Complete consumes the state and exchanges the code.
type FlowManager struct {
	cfg    Config
	states StateStore
}

// NewFlowManager creates a flow manager over the given state store.
func NewFlowManager(cfg Config, states StateStore) *FlowManager {
	return &FlowManager{cfg: cfg, states: states}
}

// Begin mints a state value, records the pending handshake and returns the
// authorization URL the user must visit. Offline access and forced consent
// are always requested so Google issues a refresh token even when the user
// approved the app before.
func (m *FlowManager) Begin(redirectURI string) (authURL string, state string, err error) {
	state, err = newState()
	if err != nil {
		return "", "", err
	}

	oc := m.cfg.OAuth2(redirectURI)
	m.states.Put(state, PendingAuthorization{Config: oc, CreatedAt: time.Now()})

	authURL = oc.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	return authURL, state, nil
}

// Complete consumes the state entry and exchanges the authorization code for
// a credential. The state is single-use: a second call with the same value,
// or a value that was never issued, fails with ErrUnknownState.
func (m *FlowManager) Complete(ctx context.Context, code, state string) (*Credential, error) {
	pending, ok := m.states.Take(state)
	if !ok {
		return nil, ErrUnknownState
	}

	token, err := pending.Config.Exchange(ctx, code)
	if err != nil {
		return nil, &ProviderError{Op: "exchange", Err: err}
	}
	if token.RefreshToken == "" {
		return nil, ErrMissingRefreshToken
	}

	return &Credential{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
		Scopes:       grantedScopes(token, pending.Config.Scopes),
		ClientID:     pending.Config.ClientID,
		ClientSecret: pending.Config.ClientSecret,
	}, nil
}

// grantedScopes prefers the scope set the provider actually granted (the
// space-delimited "scope" field of the token response), then the requested
// set, then the default set.
func grantedScopes(token *oauth2.Token, requested []string) []string {
	if raw, ok := token.Extra("scope").(string); ok && strings.TrimSpace(raw) != "" {
		return strings.Fields(raw)
	}
	if len(requested) > 0 {
		return requested
	}
	return DefaultScopes()
}
