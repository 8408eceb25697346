package models

import "time"

// ActiveLocation marks a location the user manages through the app.
type ActiveLocation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	AccountID    string    `gorm:"index;type:varchar(191)" json:"account_id"`
	LocationID   string    `gorm:"index;type:varchar(191)" json:"location_id"`
	LocationName string    `gorm:"type:varchar(255)" json:"location_name"`
	ActivatedAt  time.Time `gorm:"autoCreateTime" json:"activated_at"`
}
