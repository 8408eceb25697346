package repository

import (
	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"gorm.io/gorm"
)

// mediaRepository implements the MediaRepository interface
type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new media repository instance
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

// Create stores a cached media item row
func (r *mediaRepository) Create(item *models.MediaItem) error {
	return r.db.Create(item).Error
}

// GetByLocationID retrieves cached media items for a location row, paginated
func (r *mediaRepository) GetByLocationID(locationID uint, offset, limit int) ([]models.MediaItem, error) {
	var items []models.MediaItem
	err := r.db.Where("location_id = ?", locationID).Offset(offset).Limit(limit).Find(&items).Error
	return items, err
}
