package service

import (
	"errors"
	"fmt"

	"github.com/CammeCommerce/Backend-sub000/internal/excel"
	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"gorm.io/gorm"
)

// ColumnConfigService stores the saved column mappings, one active row per
// record kind. Saving replaces the previous mapping.
type ColumnConfigService struct {
	DB *gorm.DB
}

func NewColumnConfigService(db *gorm.DB) *ColumnConfigService {
	return &ColumnConfigService{DB: db}
}

// validateLetters rejects a mapping that carries an unusable column letter
// before it is saved. Empty letters are allowed (field not present in the
// uploaded sheets).
func validateLetters(letters ...string) error {
	for _, l := range letters {
		if l == "" {
			continue
		}
		if _, err := excel.ColumnToIndex(l); err != nil {
			return err
		}
	}
	return nil
}

// SaveOrderColumnIndex stores the active order mapping.
func (s *ColumnConfigService) SaveOrderColumnIndex(cfg models.OrderColumnIndex) (*models.OrderColumnIndex, error) {
	if err := validateLetters(
		cfg.ProductName, cfg.Quantity, cfg.OrderDate, cfg.PurchasePlace, cfg.SalesPlace,
		cfg.PurchasePrice, cfg.SalesPrice, cfg.PurchaseShippingFee, cfg.SalesShippingFee,
		cfg.TaxType, cfg.MarginAmount, cfg.ShippingDifference,
	); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var current models.OrderColumnIndex
		err := tx.First(&current).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&cfg).Error
		case err != nil:
			return err
		default:
			cfg.ID = current.ID
			cfg.CreatedAt = current.CreatedAt
			return tx.Save(&cfg).Error
		}
	})
	if err != nil {
		return nil, fmt.Errorf("save order column index: %w", err)
	}
	return &cfg, nil
}

// GetOrderColumnIndex returns the active order mapping.
func (s *ColumnConfigService) GetOrderColumnIndex() (*models.OrderColumnIndex, error) {
	var cfg models.OrderColumnIndex
	if err := s.DB.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("get order column index: %w", err)
	}
	return &cfg, nil
}

// SaveDepositColumnIndex stores the active deposit mapping.
func (s *ColumnConfigService) SaveDepositColumnIndex(cfg models.DepositColumnIndex) (*models.DepositColumnIndex, error) {
	if err := validateLetters(
		cfg.DepositDate, cfg.AccountAlias, cfg.DepositAmount, cfg.AccountDescription,
		cfg.TransactionMethod1, cfg.TransactionMethod2, cfg.AccountMemo,
		cfg.CounterpartyName, cfg.Purpose, cfg.ClientName,
	); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var current models.DepositColumnIndex
		err := tx.First(&current).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&cfg).Error
		case err != nil:
			return err
		default:
			cfg.ID = current.ID
			cfg.CreatedAt = current.CreatedAt
			return tx.Save(&cfg).Error
		}
	})
	if err != nil {
		return nil, fmt.Errorf("save deposit column index: %w", err)
	}
	return &cfg, nil
}

// GetDepositColumnIndex returns the active deposit mapping.
func (s *ColumnConfigService) GetDepositColumnIndex() (*models.DepositColumnIndex, error) {
	var cfg models.DepositColumnIndex
	if err := s.DB.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("get deposit column index: %w", err)
	}
	return &cfg, nil
}

// SaveWithdrawalColumnIndex stores the active withdrawal mapping.
func (s *ColumnConfigService) SaveWithdrawalColumnIndex(cfg models.WithdrawalColumnIndex) (*models.WithdrawalColumnIndex, error) {
	if err := validateLetters(
		cfg.WithdrawalDate, cfg.AccountAlias, cfg.WithdrawalAmount, cfg.AccountDescription,
		cfg.TransactionMethod1, cfg.TransactionMethod2, cfg.AccountMemo,
		cfg.Purpose, cfg.ClientName,
	); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var current models.WithdrawalColumnIndex
		err := tx.First(&current).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&cfg).Error
		case err != nil:
			return err
		default:
			cfg.ID = current.ID
			cfg.CreatedAt = current.CreatedAt
			return tx.Save(&cfg).Error
		}
	})
	if err != nil {
		return nil, fmt.Errorf("save withdrawal column index: %w", err)
	}
	return &cfg, nil
}

// GetWithdrawalColumnIndex returns the active withdrawal mapping.
func (s *ColumnConfigService) GetWithdrawalColumnIndex() (*models.WithdrawalColumnIndex, error) {
	var cfg models.WithdrawalColumnIndex
	if err := s.DB.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("get withdrawal column index: %w", err)
	}
	return &cfg, nil
}

// OrderMappingFromConfig converts a saved mapping into the parser's form.
func OrderMappingFromConfig(cfg *models.OrderColumnIndex) excel.OrderMapping {
	return excel.OrderMapping{
		ProductName:         cfg.ProductName,
		Quantity:            cfg.Quantity,
		OrderDate:           cfg.OrderDate,
		PurchasePlace:       cfg.PurchasePlace,
		SalesPlace:          cfg.SalesPlace,
		PurchasePrice:       cfg.PurchasePrice,
		SalesPrice:          cfg.SalesPrice,
		PurchaseShippingFee: cfg.PurchaseShippingFee,
		SalesShippingFee:    cfg.SalesShippingFee,
		TaxType:             cfg.TaxType,
		MarginAmount:        cfg.MarginAmount,
		ShippingDifference:  cfg.ShippingDifference,
	}
}

// DepositMappingFromConfig converts a saved mapping into the parser's form.
func DepositMappingFromConfig(cfg *models.DepositColumnIndex) excel.DepositMapping {
	return excel.DepositMapping{
		DepositDate:        cfg.DepositDate,
		AccountAlias:       cfg.AccountAlias,
		DepositAmount:      cfg.DepositAmount,
		AccountDescription: cfg.AccountDescription,
		TransactionMethod1: cfg.TransactionMethod1,
		TransactionMethod2: cfg.TransactionMethod2,
		AccountMemo:        cfg.AccountMemo,
		CounterpartyName:   cfg.CounterpartyName,
		Purpose:            cfg.Purpose,
		ClientName:         cfg.ClientName,
	}
}

// WithdrawalMappingFromConfig converts a saved mapping into the parser's form.
func WithdrawalMappingFromConfig(cfg *models.WithdrawalColumnIndex) excel.WithdrawalMapping {
	return excel.WithdrawalMapping{
		WithdrawalDate:     cfg.WithdrawalDate,
		AccountAlias:       cfg.AccountAlias,
		WithdrawalAmount:   cfg.WithdrawalAmount,
		AccountDescription: cfg.AccountDescription,
		TransactionMethod1: cfg.TransactionMethod1,
		TransactionMethod2: cfg.TransactionMethod2,
		AccountMemo:        cfg.AccountMemo,
		Purpose:            cfg.Purpose,
		ClientName:         cfg.ClientName,
	}
}
