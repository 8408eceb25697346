package models

import "time"

// Location caches a business location under a cached Google account.
// GoogleAccountID is the local row ID of the owning GoogleAccount, not the
// remote resource name.
type Location struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	GoogleAccountID uint      `gorm:"index:location_parent,unique" json:"google_account_id"`
	LocationID      string    `gorm:"index:location_parent,unique;type:varchar(191)" json:"location_id"`
	LocationName    string    `gorm:"type:varchar(255)" json:"location_name"`
	Address         string    `gorm:"type:varchar(500)" json:"address"`
	PhoneNumber     string    `gorm:"type:varchar(50)" json:"phone_number"`
	Website         string    `gorm:"type:varchar(255)" json:"website"`
	BusinessStatus  string    `gorm:"type:varchar(100)" json:"business_status"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
