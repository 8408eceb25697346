package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/Jacobisaldana/nativoseo-app/app/repository"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/env"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/googleauth"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/usercontext"
)

var (
	flowManager        *googleauth.FlowManager
	credentialResolver *googleauth.Resolver
)

// InitializeGoogleAuth wires the flow manager and credential resolver used
// by the Google auth handlers. Called once from the router.
func InitializeGoogleAuth(flow *googleauth.FlowManager, resolver *googleauth.Resolver) {
	flowManager = flow
	credentialResolver = resolver
}

// HandleGoogleLogin starts the authorization flow for the logged-in user.
func HandleGoogleLogin(c *fiber.Ctx) error {
	authURL, _, err := flowManager.Begin(publicBaseURL() + "/auth/google/callback")
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "could not start authorization")
	}
	return c.JSON(fiber.Map{"auth_url": authURL})
}

// HandleGoogleCallback completes the flow and persists the credential for
// the logged-in user. A re-authorization overwrites the stored record.
func HandleGoogleCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "code and state are required")
	}

	cred, err := flowManager.Complete(c.Context(), code, state)
	if err != nil {
		return credentialError(c, err)
	}

	uc := usercontext.GetUserContext(c)
	record := cred.ToRecord(uc.UserID)
	if err := repository.GetGlobalFactory().GetOAuthTokenRepository().Upsert(record); err != nil {
		log.Errorf("persist google token for user %d: %v", uc.UserID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "could not store credential")
	}

	return c.JSON(fiber.Map{
		"message":    "Google account connected",
		"expires_at": record.ExpiresAt,
		"scopes":     cred.Scopes,
	})
}

// HandleGoogleLoginTest starts the flow in single-user mode, no app login.
func HandleGoogleLoginTest(c *fiber.Ctx) error {
	authURL, _, err := flowManager.Begin(publicBaseURL() + "/auth/google/callback-test")
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "could not start authorization")
	}
	return c.JSON(fiber.Map{"auth_url": authURL})
}

// HandleGoogleCallbackTest completes the flow and fills the process-wide
// test slot instead of the per-user store.
func HandleGoogleCallbackTest(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "code and state are required")
	}

	cred, err := flowManager.Complete(c.Context(), code, state)
	if err != nil {
		return credentialError(c, err)
	}

	credentialResolver.SetManual(cred)

	frontend := env.GetEnv("FRONTEND_URL", "")
	if frontend != "" {
		return c.Redirect(frontend+"/connect-google?connected=1", fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{"message": "credential stored for testing"})
}

// HandleSaveToken fills the test slot from raw tokens. Test-only shortcut,
// mirrors a completed flow without hitting Google.
func HandleSaveToken(c *fiber.Ctx) error {
	accessToken := c.Query("access_token")
	refreshToken := c.Query("refresh_token")
	if accessToken == "" || refreshToken == "" {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "access_token and refresh_token are required")
	}

	cfg := googleauth.LoadConfig()
	credentialResolver.SetManual(&googleauth.Credential{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		Scopes:       googleauth.DefaultScopes(),
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
	})

	return c.JSON(fiber.Map{"message": "token stored for testing"})
}
