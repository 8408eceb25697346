package repository

import (
	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"gorm.io/gorm"
)

// googleAccountRepository implements the GoogleAccountRepository interface
type googleAccountRepository struct {
	db *gorm.DB
}

// NewGoogleAccountRepository creates a new Google account repository instance
func NewGoogleAccountRepository(db *gorm.DB) GoogleAccountRepository {
	return &googleAccountRepository{db: db}
}

// Create stores a cached account row
func (r *googleAccountRepository) Create(account *models.GoogleAccount) error {
	return r.db.Create(account).Error
}

// GetByUserID retrieves all cached accounts for a user
func (r *googleAccountRepository) GetByUserID(userID uint) ([]models.GoogleAccount, error) {
	var accounts []models.GoogleAccount
	err := r.db.Where("user_id = ?", userID).Find(&accounts).Error
	return accounts, err
}

// GetByAccountID retrieves one cached account by its remote account ID
func (r *googleAccountRepository) GetByAccountID(userID uint, accountID string) (*models.GoogleAccount, error) {
	var account models.GoogleAccount
	err := r.db.Where("user_id = ? AND account_id = ?", userID, accountID).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteByUserID removes all cached accounts for a user. Dependent location
// rows are removed first so the delete order is explicit.
func (r *googleAccountRepository) DeleteByUserID(userID uint) error {
	accounts, err := r.GetByUserID(userID)
	if err != nil {
		return err
	}
	for _, account := range accounts {
		if err := r.db.Where("google_account_id = ?", account.ID).Delete(&models.Location{}).Error; err != nil {
			return err
		}
	}
	return r.db.Where("user_id = ?", userID).Delete(&models.GoogleAccount{}).Error
}
