package database

import (
	"fmt"

	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Order{},
		&models.Deposit{},
		&models.Withdrawal{},
		&models.Online{},
		&models.OrderMatching{},
		&models.DepositMatching{},
		&models.WithdrawalMatching{},
		&models.OrderColumnIndex{},
		&models.DepositColumnIndex{},
		&models.WithdrawalColumnIndex{},
		&models.Medium{},
		&models.SettlementCompany{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
