package models

import (
	"time"

	"gorm.io/gorm"
)

// Online represents a manually entered online sales/purchase row.
// SalesMonth is a year-month string in "2006-01" form.
type Online struct {
	ID                uint   `gorm:"primaryKey"`
	SalesMonth        string `gorm:"size:7;index;not null"`
	MediumName        string `gorm:"size:64;index"`
	OnlineCompanyName string `gorm:"size:128"`
	SalesAmount       int64  `gorm:"not null"`
	PurchaseAmount    int64  `gorm:"not null"`
	MarginAmount      int64  `gorm:"not null"`
	Memo              string `gorm:"size:255"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}
