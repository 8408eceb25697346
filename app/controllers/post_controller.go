package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"github.com/Jacobisaldana/nativoseo-app/app/repository"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/mybusiness"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/usercontext"
)

type createPostRequest struct {
	Summary      string `json:"summary" validate:"required,max=1500"`
	MediaURL     string `json:"media_url" validate:"omitempty,url"`
	LanguageCode string `json:"language_code"`
	CTAType      string `json:"cta_type" validate:"omitempty,oneof=LEARN_MORE BOOK ORDER SHOP SIGN_UP CALL"`
	CTAURL       string `json:"cta_url" validate:"omitempty,url"`
}

// HandleListPosts returns the cached posts of a location.
func HandleListPosts(c *fiber.Ctx) error {
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

	repo := repository.GetGlobalFactory().GetPostRepository()
	posts, err := repo.GetByLocationID(locationRow.ID, c.QueryInt("skip", 0), c.QueryInt("limit", 100))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "lookup failed")
	}
	return c.JSON(posts)
}

// HandleCreatePost publishes a local post and caches the created resource.
func HandleCreatePost(c *fiber.Ctx) error {
	accountID := c.Params("accountID")
	locationID := c.Params("locationID")
	userID := usercontext.GetUserID(c)

	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid JSON body")
	}
	if err := validator.New().Struct(req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", err.Error())
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

	client := mybusiness.NewV4Client(c.Context(), cred)
	created, err := client.CreateLocalPost(c.Context(), accountID, locationID, mybusiness.NewLocalPost{
		Summary:      req.Summary,
		LanguageCode: req.LanguageCode,
		MediaURL:     req.MediaURL,
		CTAType:      req.CTAType,
		CTAURL:       req.CTAURL,
	})
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "provider_error", err.Error())
	}

	createTime, err := parseGoogleTime(created.CreateTime)
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "provider_error", err.Error())
	}
	updateTime, err := parseGoogleTime(created.UpdateTime)
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "provider_error", err.Error())
	}

	row := models.Post{
		LocationID: locationRow.ID,
		PostID:     created.Name,
		Summary:    created.Summary,
		MediaURL:   req.MediaURL,
		State:      created.State,
		SearchURL:  created.SearchURL,
		CreateTime: createTime,
		UpdateTime: updateTime,
	}
	if err := repository.GetGlobalFactory().GetPostRepository().Create(&row); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "could not cache post")
	}

	return c.Status(fiber.StatusCreated).JSON(row)
}
