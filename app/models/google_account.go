package models

import "time"

// GoogleAccount caches a Business Profile account returned by the Account
// Management API. AccountID is the bare ID without the "accounts/" prefix.
type GoogleAccount struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index:account_owner,unique" json:"user_id"`
	AccountID   string    `gorm:"index:account_owner,unique;type:varchar(191)" json:"account_id"`
	AccountName string    `gorm:"type:varchar(255)" json:"account_name"`
	AccountType string    `gorm:"type:varchar(100)" json:"account_type"`
	AccountRole string    `gorm:"type:varchar(100)" json:"account_role"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
