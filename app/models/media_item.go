package models

import "time"

// MediaItem caches a photo attached to a location.
type MediaItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	LocationID  uint       `gorm:"index" json:"location_id"`
	MediaID     string     `gorm:"index;type:varchar(191)" json:"media_id"`
	MediaURL    string     `gorm:"type:varchar(500)" json:"media_url"`
	MediaType   string     `gorm:"type:varchar(50)" json:"media_type"`
	Description string     `gorm:"type:text" json:"description"`
	CreateTime  *time.Time `gorm:"type:timestamp;default:null" json:"create_time,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
