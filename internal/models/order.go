package models

import (
	"time"

	"gorm.io/gorm"
)

// Tax type of an order row.
const (
	TaxTypeTaxable    = "TAXABLE"
	TaxTypeNonTaxable = "NON_TAXABLE"
)

// Order represents a single purchase/sales order. Amounts are stored in won.
// MediumName and SettlementCompanyName are denormalized copies written at
// match time; renaming a Medium later does not touch historical rows.
type Order struct {
	ID                         uint           `gorm:"primaryKey"`
	MediumName                 string         `gorm:"size:64;index"`
	SettlementCompanyName      string         `gorm:"size:64;index"`
	ProductName                string         `gorm:"size:255;not null"`
	Quantity                   int64          `gorm:"not null"`
	OrderDate                  time.Time      `gorm:"index"`
	PurchasePlace              string         `gorm:"size:128;index"`
	SalesPlace                 string         `gorm:"size:128;index"`
	PurchasePrice              int64          `gorm:"not null"`
	SalesPrice                 int64          `gorm:"not null"`
	PurchaseShippingFee        int64          `gorm:"not null"`
	SalesShippingFee           int64          `gorm:"not null"`
	TaxType                    string         `gorm:"size:16;not null;default:TAXABLE"`
	MarginAmount               int64          `gorm:"not null"`
	ShippingDifference         int64          `gorm:"not null"`
	IsMediumMatched            bool           `gorm:"index;not null"`
	IsSettlementCompanyMatched bool           `gorm:"index;not null"`
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	DeletedAt                  gorm.DeletedAt `gorm:"index"`
}
