package repository

import (
	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"gorm.io/gorm"
)

// locationRepository implements the LocationRepository interface
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository instance
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

// Create stores a cached location row
func (r *locationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetByGoogleAccountID retrieves all cached locations under an account row
func (r *locationRepository) GetByGoogleAccountID(googleAccountID uint) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.Where("google_account_id = ?", googleAccountID).Find(&locations).Error
	return locations, err
}

// GetByLocationID retrieves one cached location by its remote location ID
func (r *locationRepository) GetByLocationID(googleAccountID uint, locationID string) (*models.Location, error) {
	var location models.Location
	err := r.db.Where("google_account_id = ? AND location_id = ?", googleAccountID, locationID).First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// DeleteByGoogleAccountID removes all cached locations under an account row
func (r *locationRepository) DeleteByGoogleAccountID(googleAccountID uint) error {
	return r.db.Where("google_account_id = ?", googleAccountID).Delete(&models.Location{}).Error
}
