package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"github.com/Jacobisaldana/nativoseo-app/app/repository"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/cache"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/googleauth"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/mybusiness"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/usercontext"
)

const (
	accountCacheTTL  = 5 * time.Minute
	locationCacheTTL = 5 * time.Minute
)

// HandleListAccounts returns the cached Business Profile accounts of the
// caller, filling the cache from Google on first use. ?refresh=1 discards
// the cached rows first.
func HandleListAccounts(c *fiber.Ctx) error {
	cred, err := resolveCredential(c)
	if err != nil {
		return credentialError(c, err)
	}

	userID := usercontext.GetUserID(c)
	repos := repository.GetGlobalRepositories()

	if c.QueryBool("refresh") {
		if err := repos.GoogleAccount.DeleteByUserID(userID); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "could not discard cached accounts")
		}
		cache.Delete(accountCacheKey(userID))
	}

	rows, err := repos.GoogleAccount.GetByUserID(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "account lookup failed")
	}
	if len(rows) > 0 {
		return c.JSON(rows)
	}

	accounts, err := listAccountsCached(c, cred, userID)
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "provider_error", err.Error())
	}

	for _, account := range accounts {
		row := models.GoogleAccount{
			UserID:      userID,
			AccountID:   account.AccountID,
			AccountName: account.AccountName,
			AccountType: account.Type,
			AccountRole: account.Role,
		}
		if err := repos.GoogleAccount.Create(&row); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "could not cache accounts")
		}
	}

	rows, err = repos.GoogleAccount.GetByUserID(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "account lookup failed")
	}
	return c.JSON(rows)
}

// HandleListLocations returns the cached locations of one account, filling
// the cache from Google on first use.
func HandleListLocations(c *fiber.Ctx) error {
	accountID := c.Params("accountID")
	userID := usercontext.GetUserID(c)
	repos := repository.GetGlobalRepositories()

	account, err := repos.GoogleAccount.GetByAccountID(userID, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", fmt.Sprintf("account %s not found", accountID))
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "account lookup failed")
	}

	if c.QueryBool("refresh") {
		if err := repos.Location.DeleteByGoogleAccountID(account.ID); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "could not discard cached locations")
		}
		cache.Delete(locationCacheKey(userID, accountID))
	}

	rows, err := repos.Location.GetByGoogleAccountID(account.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "location lookup failed")
	}
	if len(rows) > 0 {
		return c.JSON(rows)
	}

	cred, err := resolveCredential(c)
	if err != nil {
		return credentialError(c, err)
	}

	locations, err := listLocationsCached(c, cred, userID, accountID)
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "provider_error", err.Error())
	}

	for _, location := range locations {
		row := models.Location{
			GoogleAccountID: account.ID,
			LocationID:      location.LocationID,
			LocationName:    location.Title,
			Address:         location.Address,
			PhoneNumber:     location.PhoneNumber,
			Website:         location.Website,
			BusinessStatus:  location.BusinessStatus,
		}
		if err := repos.Location.Create(&row); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "could not cache locations")
		}
	}

	rows, err = repos.Location.GetByGoogleAccountID(account.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "location lookup failed")
	}
	return c.JSON(rows)
}

// listAccountsCached consults the short-lived Redis cache before hitting the
// Account Management API. Cache failures fall through to the API call.
func listAccountsCached(c *fiber.Ctx, cred *googleauth.Credential, userID uint) ([]mybusiness.Account, error) {
	key := accountCacheKey(userID)

	var cached []mybusiness.Account
	if err := cache.GetJSON(key, &cached); err == nil {
		return cached, nil
	}

	accounts, err := mybusiness.ListAccounts(c.Context(), cred)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(key, accounts, accountCacheTTL); err != nil {
		log.Warnf("cache accounts for user %d: %v", userID, err)
	}
	return accounts, nil
}

// listLocationsCached consults the short-lived Redis cache before hitting
// the Business Information API. Cache failures fall through to the API call.
func listLocationsCached(c *fiber.Ctx, cred *googleauth.Credential, userID uint, accountID string) ([]mybusiness.Location, error) {
	key := locationCacheKey(userID, accountID)

	var cached []mybusiness.Location
	if err := cache.GetJSON(key, &cached); err == nil {
		return cached, nil
	}

	locations, err := mybusiness.ListLocations(c.Context(), cred, accountID)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(key, locations, locationCacheTTL); err != nil {
		log.Warnf("cache locations for account %s: %v", accountID, err)
	}
	return locations, nil
}

func accountCacheKey(userID uint) string {
	return fmt.Sprintf("gmb:accounts:%d", userID)
}

func locationCacheKey(userID uint, accountID string) string {
	return fmt.Sprintf("gmb:locations:%d:%s", userID, accountID)
}
