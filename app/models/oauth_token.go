package models

import "time"

// OauthToken stores the Google OAuth credential at rest, one row per user.
// A re-authorization overwrites the existing row instead of adding a second
// one; the unique index on user_id backs that invariant.
type OauthToken struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"uniqueIndex" json:"user_id"`
	AccessToken  string     `gorm:"type:text" json:"-"`
	RefreshToken string     `gorm:"type:text" json:"-"`
	TokenType    string     `gorm:"type:varchar(50);default:'Bearer'" json:"token_type"`
	ExpiresAt    *time.Time `gorm:"type:timestamp;default:null" json:"expires_at,omitempty"`
	Scopes       string     `gorm:"type:text" json:"scopes"`
	ClientID     string     `gorm:"type:varchar(255)" json:"-"`
	ClientSecret string     `gorm:"type:varchar(255)" json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
