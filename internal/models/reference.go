package models

import (
	"time"

	"gorm.io/gorm"
)

// Medium is a sales channel/brand the business sells under.
type Medium struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:64;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// SettlementCompany is the entity margins are settled with.
type SettlementCompany struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:64;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
