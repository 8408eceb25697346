package repository

import (
	"errors"

	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"gorm.io/gorm"
)

// oauthTokenRepository implements the OAuthTokenRepository interface
type oauthTokenRepository struct {
	db *gorm.DB
}

// NewOAuthTokenRepository creates a new OAuth token repository instance
func NewOAuthTokenRepository(db *gorm.DB) OAuthTokenRepository {
	return &oauthTokenRepository{db: db}
}

// GetByUserID retrieves the token record for a user
func (r *oauthTokenRepository) GetByUserID(userID uint) (*models.OauthToken, error) {
	var record models.OauthToken
	err := r.db.Where("user_id = ?", userID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert inserts a token record or overwrites the mutable fields of the
// existing row for the same user. The row identity (ID, UserID, CreatedAt)
// is preserved on overwrite; gorm bumps UpdatedAt on save.
func (r *oauthTokenRepository) Upsert(record *models.OauthToken) error {
	var existing models.OauthToken
	err := r.db.Where("user_id = ?", record.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(record).Error
	}
	if err != nil {
		return err
	}

	existing.AccessToken = record.AccessToken
	existing.RefreshToken = record.RefreshToken
	existing.TokenType = record.TokenType
	existing.ExpiresAt = record.ExpiresAt
	existing.Scopes = record.Scopes
	existing.ClientID = record.ClientID
	existing.ClientSecret = record.ClientSecret
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}

	*record = existing
	return nil
}

// DeleteByUserID removes the token record for a user
func (r *oauthTokenRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.OauthToken{}).Error
}
