package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"github.com/Jacobisaldana/nativoseo-app/app/repository"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/mybusiness"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/storage"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/usercontext"
)

var mediaStorage *storage.Client

// InitializeMediaController wires the object storage client. A nil client
// disables uploads but keeps listing available.
func InitializeMediaController(client *storage.Client) {
	mediaStorage = client
}

// HandleListMedia returns the cached media items of a location.
func HandleListMedia(c *fiber.Ctx) error {
	accountID := c.Params("accountID")
	locationID := c.Params("locationID")
	userID := usercontext.GetUserID(c)

	_, locationRow, err := findLocationRow(userID, accountID, locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "account not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "lookup failed")
	}

	repo := repository.GetGlobalFactory().GetMediaRepository()
	items, err := repo.GetByLocationID(locationRow.ID, c.QueryInt("skip", 0), c.QueryInt("limit", 100))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "lookup failed")
	}
	return c.JSON(items)
}

// HandleUploadMedia stores an uploaded image in the bucket, attaches it to
// the location and caches the media row.
func HandleUploadMedia(c *fiber.Ctx) error {
	if mediaStorage == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "storage_unavailable", "media storage is not configured")
	}

	accountID := c.Params("accountID")
	locationID := c.Params("locationID")
	userID := usercontext.GetUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "file is required")
	}

	_, locationRow, err := findLocationRow(userID, accountID, locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "account not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "lookup failed")
	}

	cred, err := resolveCredential(c)
	if err != nil {
		return credentialError(c, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "could not read upload")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	sourceURL, err := mediaStorage.Upload(c.Context(), file, contentType, fileHeader.Filename)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "upload to storage failed")
	}

	description := c.FormValue("description")
	client := mybusiness.NewV4Client(c.Context(), cred)
	created, err := client.AttachPhoto(c.Context(), accountID, locationID, sourceURL, description)
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "provider_error", err.Error())
	}

	createTime, err := parseGoogleTime(created.CreateTime)
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "provider_error", err.Error())
	}

	row := models.MediaItem{
		LocationID:  locationRow.ID,
		MediaID:     created.Name,
		MediaURL:    sourceURL,
		MediaType:   created.MediaFormat,
		Description: description,
		CreateTime:  createTime,
	}
	if err := repository.GetGlobalFactory().GetMediaRepository().Create(&row); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "could not cache media item")
	}

	return c.Status(fiber.StatusCreated).JSON(row)
}
