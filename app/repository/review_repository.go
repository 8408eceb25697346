package repository

import (
	"errors"
	"time"

	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"gorm.io/gorm"
)

// reviewRepository implements the ReviewRepository interface
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository instance
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Upsert inserts a cached review or refreshes the existing row for the same
// remote review ID.
func (r *reviewRepository) Upsert(review *models.Review) error {
	var existing models.Review
	err := r.db.Where("location_id = ? AND review_id = ?", review.LocationID, review.ReviewID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(review).Error
	}
	if err != nil {
		return err
	}

	existing.ReviewerName = review.ReviewerName
	existing.StarRating = review.StarRating
	existing.Comment = review.Comment
	existing.CreateTime = review.CreateTime
	existing.UpdateTime = review.UpdateTime
	existing.ReplyText = review.ReplyText
	existing.ReplyTime = review.ReplyTime
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}

	*review = existing
	return nil
}

// GetByLocationID retrieves cached reviews for a location row, paginated
func (r *reviewRepository) GetByLocationID(locationID uint, offset, limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("location_id = ?", locationID).Offset(offset).Limit(limit).Find(&reviews).Error
	return reviews, err
}

// GetByReviewID retrieves one cached review by its remote review ID
func (r *reviewRepository) GetByReviewID(locationID uint, reviewID string) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("location_id = ? AND review_id = ?", locationID, reviewID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReply stores the reply text and time on a cached review
func (r *reviewRepository) UpdateReply(locationID uint, reviewID, replyText string, replyTime time.Time) error {
	return r.db.Model(&models.Review{}).
		Where("location_id = ? AND review_id = ?", locationID, reviewID).
		Updates(map[string]any{"reply_text": replyText, "reply_time": replyTime}).Error
}
