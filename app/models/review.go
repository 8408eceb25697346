package models

import "time"

// Review caches a Business Profile review for a cached location.
// LocationID references the local Location row.
type Review struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	LocationID   uint       `gorm:"index:review_parent,unique" json:"location_id"`
	ReviewID     string     `gorm:"index:review_parent,unique;type:varchar(191)" json:"review_id"`
	ReviewerName string     `gorm:"type:varchar(255)" json:"reviewer_name"`
	StarRating   int        `json:"star_rating"`
	Comment      string     `gorm:"type:text" json:"comment"`
	CreateTime   *time.Time `gorm:"type:timestamp;default:null" json:"create_time,omitempty"`
	UpdateTime   *time.Time `gorm:"type:timestamp;default:null" json:"update_time,omitempty"`
	ReplyText    string     `gorm:"type:text" json:"reply_text"`
	ReplyTime    *time.Time `gorm:"type:timestamp;default:null" json:"reply_time,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
