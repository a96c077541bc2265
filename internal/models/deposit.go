package models

import (
	"time"

	"gorm.io/gorm"
)

// Deposit represents one bank deposit row pulled from a bank statement.
type Deposit struct {
	ID                 uint      `gorm:"primaryKey"`
	MediumName         string    `gorm:"size:64;index"`
	DepositDate        time.Time `gorm:"index"`
	AccountAlias       string    `gorm:"size:128;index"`
	DepositAmount      int64     `gorm:"not null"`
	AccountDescription string    `gorm:"size:255"`
	TransactionMethod1 string    `gorm:"size:64"`
	TransactionMethod2 string    `gorm:"size:64"`
	AccountMemo        string    `gorm:"size:255"`
	CounterpartyName   string    `gorm:"size:128"`
	Purpose            string    `gorm:"size:128;index"`
	ClientName         string    `gorm:"size:128"`
	IsMediumMatched    bool      `gorm:"index;not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}
