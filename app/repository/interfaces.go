package repository

import (
	"time"

	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// OAuthTokenRepository persists at most one Google OAuth token per user.
type OAuthTokenRepository interface {
	GetByUserID(userID uint) (*models.OauthToken, error)
	// Upsert inserts the record for its user, or overwrites the mutable
	// fields of the existing row. It never creates a second row per user.
	Upsert(record *models.OauthToken) error
	DeleteByUserID(userID uint) error
}

// GoogleAccountRepository defines operations on cached Business Profile accounts
type GoogleAccountRepository interface {
	Create(account *models.GoogleAccount) error
	GetByUserID(userID uint) ([]models.GoogleAccount, error)
	GetByAccountID(userID uint, accountID string) (*models.GoogleAccount, error)
	DeleteByUserID(userID uint) error
}

// LocationRepository defines operations on cached locations
type LocationRepository interface {
	Create(location *models.Location) error
	GetByGoogleAccountID(googleAccountID uint) ([]models.Location, error)
	GetByLocationID(googleAccountID uint, locationID string) (*models.Location, error)
	DeleteByGoogleAccountID(googleAccountID uint) error
}

// ActiveLocationRepository defines operations on user-activated locations
type ActiveLocationRepository interface {
	Create(location *models.ActiveLocation) error
	GetByUserID(userID uint, offset, limit int) ([]models.ActiveLocation, error)
	Find(userID uint, accountID, locationID string) (*models.ActiveLocation, error)
	Delete(id uint) error
}

// ReviewRepository defines operations on cached reviews
type ReviewRepository interface {
	Upsert(review *models.Review) error
	GetByLocationID(locationID uint, offset, limit int) ([]models.Review, error)
	GetByReviewID(locationID uint, reviewID string) (*models.Review, error)
	UpdateReply(locationID uint, reviewID, replyText string, replyTime time.Time) error
}

// PostRepository defines operations on cached local posts
type PostRepository interface {
	Create(post *models.Post) error
	GetByLocationID(locationID uint, offset, limit int) ([]models.Post, error)
}

// MediaRepository defines operations on cached media items
type MediaRepository interface {
	Create(item *models.MediaItem) error
	GetByLocationID(locationID uint, offset, limit int) ([]models.MediaItem, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User           UserRepository
	OAuthToken     OAuthTokenRepository
	GoogleAccount  GoogleAccountRepository
	Location       LocationRepository
	ActiveLocation ActiveLocationRepository
	Review         ReviewRepository
	Post           PostRepository
	Media          MediaRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:           NewUserRepository(db),
		OAuthToken:     NewOAuthTokenRepository(db),
		GoogleAccount:  NewGoogleAccountRepository(db),
		Location:       NewLocationRepository(db),
		ActiveLocation: NewActiveLocationRepository(db),
		Review:         NewReviewRepository(db),
		Post:           NewPostRepository(db),
		Media:          NewMediaRepository(db),
	}
}
