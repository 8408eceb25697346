package models

import "time"

// Post caches a local post published to a location.
type Post struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	LocationID uint       `gorm:"index" json:"location_id"`
	PostID     string     `gorm:"index;type:varchar(191)" json:"post_id"`
	Summary    string     `gorm:"type:text" json:"summary"`
	MediaURL   string     `gorm:"type:varchar(500)" json:"media_url"`
	State      string     `gorm:"type:varchar(50)" json:"state"`
	SearchURL  string     `gorm:"type:varchar(500)" json:"search_url"`
	CreateTime *time.Time `gorm:"type:timestamp;default:null" json:"create_time,omitempty"`
	UpdateTime *time.Time `gorm:"type:timestamp;default:null" json:"update_time,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
