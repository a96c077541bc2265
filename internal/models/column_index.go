package models

import "time"

// Saved spreadsheet column mappings, one active row per record kind.
// Each field holds a column letter ("A", "AB", ...) or is empty when the
// uploaded sheets do not carry that field.

type OrderColumnIndex struct {
	ID                       uint   `gorm:"primaryKey"`
	ProductName              string `gorm:"size:4"`
	Quantity                 string `gorm:"size:4"`
	OrderDate                string `gorm:"size:4"`
	PurchasePlace            string `gorm:"size:4"`
	SalesPlace               string `gorm:"size:4"`
	PurchasePrice            string `gorm:"size:4"`
	SalesPrice               string `gorm:"size:4"`
	PurchaseShippingFee      string `gorm:"size:4"`
	SalesShippingFee         string `gorm:"size:4"`
	TaxType                  string `gorm:"size:4"`
	MarginAmount             string `gorm:"size:4"`
	ShippingDifference       string `gorm:"size:4"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

type DepositColumnIndex struct {
	ID                 uint   `gorm:"primaryKey"`
	DepositDate        string `gorm:"size:4"`
	AccountAlias       string `gorm:"size:4"`
	DepositAmount      string `gorm:"size:4"`
	AccountDescription string `gorm:"size:4"`
	TransactionMethod1 string `gorm:"size:4"`
	TransactionMethod2 string `gorm:"size:4"`
	AccountMemo        string `gorm:"size:4"`
	CounterpartyName   string `gorm:"size:4"`
	Purpose            string `gorm:"size:4"`
	ClientName         string `gorm:"size:4"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type WithdrawalColumnIndex struct {
	ID                 uint   `gorm:"primaryKey"`
	WithdrawalDate     string `gorm:"size:4"`
	AccountAlias       string `gorm:"size:4"`
	WithdrawalAmount   string `gorm:"size:4"`
	AccountDescription string `gorm:"size:4"`
	TransactionMethod1 string `gorm:"size:4"`
	TransactionMethod2 string `gorm:"size:4"`
	AccountMemo        string `gorm:"size:4"`
	Purpose            string `gorm:"size:4"`
	ClientName         string `gorm:"size:4"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
