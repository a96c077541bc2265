package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderMatching maps a (purchase place, sales place) pair to the medium and
// settlement company names copied onto new orders. The pair is unique among
// live rules; uniqueness is enforced at creation time so a soft-deleted rule
// can be recreated.
type OrderMatching struct {
	ID                    uint   `gorm:"primaryKey"`
	MediumName            string `gorm:"size:64"`
	SettlementCompanyName string `gorm:"size:64"`
	PurchasePlace         string `gorm:"size:128;index:idx_order_matching_pair;not null"`
	SalesPlace            string `gorm:"size:128;index:idx_order_matching_pair;not null"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

// DepositMatching maps an (account alias, purpose) pair to a medium name.
type DepositMatching struct {
	ID           uint   `gorm:"primaryKey"`
	MediumName   string `gorm:"size:64"`
	AccountAlias string `gorm:"size:128;index:idx_deposit_matching_pair;not null"`
	Purpose      string `gorm:"size:128;index:idx_deposit_matching_pair;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// WithdrawalMatching maps an (account alias, purpose) pair to a medium name.
type WithdrawalMatching struct {
	ID           uint   `gorm:"primaryKey"`
	MediumName   string `gorm:"size:64"`
	AccountAlias string `gorm:"size:128;index:idx_withdrawal_matching_pair;not null"`
	Purpose      string `gorm:"size:128;index:idx_withdrawal_matching_pair;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
