package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
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
	defaultReviewPageSize = 20
	reviewCacheTTL        = 2 * time.Minute
)

type replyRequest struct {
	ReplyText string `json:"reply_text" validate:"required,max=4000"`
}

// HandleListReviews lists the reviews of a location from Google, refreshing
// the cached rows as it goes. Pagination is passed through.
func HandleListReviews(c *fiber.Ctx) error {
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

	cred, err := resolveCredential(c)
	if err != nil {
		return credentialError(c, err)
	}

	if c.QueryBool("refresh") {
		cache.Delete(reviewCacheKey(userID, accountID, locationID))
	}

	page, fromCache, err := listReviewsCached(c, cred, userID, accountID, locationID,
		c.QueryInt("page_size", defaultReviewPageSize), c.Query("page_token"))
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "provider_error", err.Error())
	}

	if !fromCache {
		repos := repository.GetGlobalRepositories()
		for _, review := range page.Reviews {
			row, err := reviewRow(locationRow.ID, review)
			if err != nil {
				return jsonError(c, fiber.StatusBadGateway, "provider_error", err.Error())
			}
			if err := repos.Review.Upsert(row); err != nil {
				log.Errorf("cache review %s: %v", review.ReviewID, err)
				return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "could not cache reviews")
			}
		}
	}

	return c.JSON(fiber.Map{
		"reviews":         page.Reviews,
		"next_page_token": page.NextPageToken,
	})
}

// HandleReplyReview publishes an owner reply and updates the cached row.
func HandleReplyReview(c *fiber.Ctx) error {
	accountID := c.Params("accountID")
	locationID := c.Params("locationID")
	reviewID := c.Params("reviewID")
	userID := usercontext.GetUserID(c)

	var req replyRequest
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
	reply, err := client.ReplyToReview(c.Context(), accountID, locationID, reviewID, req.ReplyText)
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "provider_error", err.Error())
	}

	repo := repository.GetGlobalFactory().GetReviewRepository()
	if err := repo.UpdateReply(locationRow.ID, reviewID, req.ReplyText, time.Now()); err != nil {
		log.Errorf("update cached reply for review %s: %v", reviewID, err)
	}
	cache.Delete(reviewCacheKey(userID, accountID, locationID))

	return c.JSON(reply)
}

// listReviewsCached consults the short-lived Redis cache for the default
// first page; continuation pages and non-default page sizes always go to
// the API. The second return value reports a cache hit, so callers skip
// re-upserting rows that were cached on the original fetch.
func listReviewsCached(c *fiber.Ctx, cred *googleauth.Credential, userID uint, accountID, locationID string, pageSize int, pageToken string) (*mybusiness.ReviewsPage, bool, error) {
	client := mybusiness.NewV4Client(c.Context(), cred)

	if pageToken != "" || pageSize != defaultReviewPageSize {
		page, err := client.ListReviews(c.Context(), accountID, locationID, pageSize, pageToken)
		return page, false, err
	}

	key := reviewCacheKey(userID, accountID, locationID)
	var cached mybusiness.ReviewsPage
	if err := cache.GetJSON(key, &cached); err == nil {
		return &cached, true, nil
	}

	page, err := client.ListReviews(c.Context(), accountID, locationID, pageSize, "")
	if err != nil {
		return nil, false, err
	}

	if err := cache.SetJSON(key, page, reviewCacheTTL); err != nil {
		log.Warnf("cache reviews for %s/%s: %v", accountID, locationID, err)
	}
	return page, false, nil
}

func reviewCacheKey(userID uint, accountID, locationID string) string {
	return fmt.Sprintf("gmb:reviews:%d:%s:%s", userID, accountID, locationID)
}

func reviewRow(locationRowID uint, review mybusiness.Review) (*models.Review, error) {
	createTime, err := parseGoogleTime(review.CreateTime)
	if err != nil {
		return nil, err
	}
	updateTime, err := parseGoogleTime(review.UpdateTime)
	if err != nil {
		return nil, err
	}

	row := &models.Review{
		LocationID:   locationRowID,
		ReviewID:     review.ReviewID,
		ReviewerName: review.Reviewer.DisplayName,
		StarRating:   review.Stars(),
		Comment:      review.Comment,
		CreateTime:   createTime,
		UpdateTime:   updateTime,
	}
	if review.Reply != nil {
		row.ReplyText = review.Reply.Comment
		replyTime, err := parseGoogleTime(review.Reply.UpdateTime)
		if err != nil {
			return nil, err
		}
		row.ReplyTime = replyTime
	}
	return row, nil
}
