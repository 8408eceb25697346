package repository

import (
	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"gorm.io/gorm"
)

// activeLocationRepository implements the ActiveLocationRepository interface
type activeLocationRepository struct {
	db *gorm.DB
}

// NewActiveLocationRepository creates a new active location repository instance
func NewActiveLocationRepository(db *gorm.DB) ActiveLocationRepository {
	return &activeLocationRepository{db: db}
}

// Create stores an activated location for a user
func (r *activeLocationRepository) Create(location *models.ActiveLocation) error {
	return r.db.Create(location).Error
}

// GetByUserID retrieves the activated locations of a user, paginated
func (r *activeLocationRepository) GetByUserID(userID uint, offset, limit int) ([]models.ActiveLocation, error) {
	var locations []models.ActiveLocation
	err := r.db.Where("user_id = ?", userID).Offset(offset).Limit(limit).Find(&locations).Error
	return locations, err
}

// Find retrieves one activated location by its remote identifiers
func (r *activeLocationRepository) Find(userID uint, accountID, locationID string) (*models.ActiveLocation, error) {
	query := r.db.Where("user_id = ? AND location_id = ?", userID, locationID)
	if accountID != "" {
		query = query.Where("account_id = ?", accountID)
	}
	var location models.ActiveLocation
	if err := query.First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

// Delete removes an activated location by row ID
func (r *activeLocationRepository) Delete(id uint) error {
	return r.db.Delete(&models.ActiveLocation{}, id).Error
}
