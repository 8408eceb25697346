package repository

import (
	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"gorm.io/gorm"
)

// postRepository implements the PostRepository interface
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository instance
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create stores a cached post row
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByLocationID retrieves cached posts for a location row, paginated
func (r *postRepository) GetByLocationID(locationID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("location_id = ?", locationID).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}
