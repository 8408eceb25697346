package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"github.com/Jacobisaldana/nativoseo-app/app/repository"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/usercontext"
)

type activateLocationRequest struct {
	AccountID    string `json:"account_id" validate:"required"`
	LocationID   string `json:"location_id" validate:"required"`
	LocationName string `json:"location_name"`
}

// HandleListActiveLocations returns the locations the user manages.
func HandleListActiveLocations(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)
	offset := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	repo := repository.GetGlobalFactory().GetActiveLocationRepository()
	locations, err := repo.GetByUserID(userID, offset, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "lookup failed")
	}
	return c.JSON(locations)
}

// HandleActivateLocation marks a location as managed. Activating the same
// location twice returns the existing row.
func HandleActivateLocation(c *fiber.Ctx) error {
	var req activateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid JSON body")
	}
	if err := validator.New().Struct(req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", err.Error())
	}

	userID := usercontext.GetUserID(c)
	repo := repository.GetGlobalFactory().GetActiveLocationRepository()

	existing, err := repo.Find(userID, req.AccountID, req.LocationID)
	if err == nil {
		return c.JSON(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "lookup failed")
	}

	location := models.ActiveLocation{
		UserID:       userID,
		AccountID:    req.AccountID,
		LocationID:   req.LocationID,
		LocationName: req.LocationName,
	}
	if err := repo.Create(&location); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "could not activate location")
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

// HandleDeactivateLocation removes a managed location.
func HandleDeactivateLocation(c *fiber.Ctx) error {
	locationID := c.Params("locationID")
	accountID := c.Query("account_id")
	userID := usercontext.GetUserID(c)

	repo := repository.GetGlobalFactory().GetActiveLocationRepository()
	location, err := repo.Find(userID, accountID, locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "active location not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "lookup failed")
	}

	if err := repo.Delete(location.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "could not deactivate location")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
