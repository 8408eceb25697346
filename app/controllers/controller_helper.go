package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"github.com/Jacobisaldana/nativoseo-app/app/repository"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/env"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/googleauth"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/usercontext"
)

// jsonError writes the standard error envelope.
func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

// credentialError maps the googleauth error taxonomy onto HTTP responses.
// Secrets never appear in the payload; ProviderError carries the provider's
// failure detail verbatim.
func credentialError(c *fiber.Ctx, err error) error {
	var providerErr *googleauth.ProviderError
	var persistenceErr *googleauth.PersistenceError

	switch {
	case errors.Is(err, googleauth.ErrUnauthenticated), errors.Is(err, googleauth.ErrInvalidRecord):
		return jsonError(c, fiber.StatusUnauthorized, "unauthenticated",
			"No Google credential for this user. Please connect your Google account.")
	case errors.Is(err, googleauth.ErrUnknownState):
		return jsonError(c, fiber.StatusBadRequest, "invalid_state",
			"Authorization state is unknown or was already used. Restart the flow.")
	case errors.Is(err, googleauth.ErrMissingRefreshToken):
		return jsonError(c, fiber.StatusBadGateway, "missing_refresh_token",
			"Google did not return a refresh token. Revoke access and authorize again.")
	case errors.As(err, &providerErr):
		return jsonError(c, fiber.StatusBadGateway, "provider_error", providerErr.Error())
	case errors.As(err, &persistenceErr):
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Token storage failed")
	}
	return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", err.Error())
}

// resolveCredential resolves the caller's Google credential: the stored
// token for logged-in users, the manual slot for anonymous test callers.
func resolveCredential(c *fiber.Ctx) (*googleauth.Credential, error) {
	return credentialResolver.Resolve(usercontext.GetUserID(c))
}

// parseGoogleTime parses a v4 API timestamp. The API emits RFC3339; any
// other shape is a provider data error, not silently dropped.
func parseGoogleTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("unexpected timestamp %q from provider: %w", value, err)
	}
	return &t, nil
}

// publicBaseURL is where Google redirects callbacks to.
func publicBaseURL() string {
	base := env.GetEnv("PUBLIC_DOMAIN", "")
	if base == "" {
		base = "http://localhost:" + env.GetEnv("APP_PORT", "8000")
	}
	return base
}

// findLocationRow resolves remote account/location IDs to their cached rows,
// creating a thin location row when the location was never listed before, so
// review/post/media caching always has a parent row.
func findLocationRow(userID uint, accountID, locationID string) (*models.GoogleAccount, *models.Location, error) {
	repos := repository.GetGlobalRepositories()

	account, err := repos.GoogleAccount.GetByAccountID(userID, accountID)
	if err != nil {
		return nil, nil, err
	}

	location, err := repos.Location.GetByLocationID(account.ID, locationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		location = &models.Location{GoogleAccountID: account.ID, LocationID: locationID}
		if err := repos.Location.Create(location); err != nil {
			return nil, nil, err
		}
		return account, location, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return account, location, nil
}
