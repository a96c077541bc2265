package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/CammeCommerce/Backend-sub000/internal/excel"
	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"gorm.io/gorm"
)

// DepositService owns bank deposit rows.
type DepositService struct {
	DB       *gorm.DB
	Matching *MatchingService
}

func NewDepositService(db *gorm.DB, matching *MatchingService) *DepositService {
	return &DepositService{DB: db, Matching: matching}
}

// DepositInput carries the fields of a single deposit creation or modification.
type DepositInput struct {
	MediumName         string
	DepositDate        time.Time
	AccountAlias       string
	DepositAmount      int64
	AccountDescription string
	TransactionMethod1 string
	TransactionMethod2 string
	AccountMemo        string
	CounterpartyName   string
	Purpose            string
	ClientName         string
}

func (in *DepositInput) toModel() models.Deposit {
	return models.Deposit{
		MediumName:         in.MediumName,
		DepositDate:        in.DepositDate,
		AccountAlias:       in.AccountAlias,
		DepositAmount:      in.DepositAmount,
		AccountDescription: in.AccountDescription,
		TransactionMethod1: in.TransactionMethod1,
		TransactionMethod2: in.TransactionMethod2,
		AccountMemo:        in.AccountMemo,
		CounterpartyName:   in.CounterpartyName,
		Purpose:            in.Purpose,
		ClientName:         in.ClientName,
	}
}

// Create inserts a single deposit after running it through the matching rules.
func (s *DepositService) Create(in DepositInput) (*models.Deposit, error) {
	deposit := in.toModel()
	if err := s.Matching.ApplyDepositMatch(&deposit); err != nil {
		return nil, err
	}
	if err := s.DB.Create(&deposit).Error; err != nil {
		return nil, fmt.Errorf("create deposit: %w", err)
	}
	return &deposit, nil
}

// ImportLenient saves parsed rows one at a time with numeric coercion; a
// failure partway leaves earlier rows persisted (original behavior).
func (s *DepositService) ImportLenient(fileBytes []byte, mapping excel.DepositMapping) (saved int, err error) {
	rows, err := excel.ParseDeposits(fileBytes, mapping, excel.ModeLenient)
	if err != nil {
		return 0, err
	}
	for i := range rows {
		if err := s.Matching.ApplyDepositMatch(&rows[i]); err != nil {
			return saved, err
		}
		if err := s.DB.Create(&rows[i]).Error; err != nil {
			return saved, fmt.Errorf("save imported deposit: %w", err)
		}
		saved++
	}
	return saved, nil
}

// ImportStrict validates the whole sheet first, then writes all rows in one
// transaction.
func (s *DepositService) ImportStrict(fileBytes []byte, mapping excel.DepositMapping) (saved int, err error) {
	rows, err := excel.ParseDeposits(fileBytes, mapping, excel.ModeStrict)
	if err != nil {
		return 0, err
	}
	for i := range rows {
		if err := s.Matching.ApplyDepositMatch(&rows[i]); err != nil {
			return 0, err
		}
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return fmt.Errorf("save imported deposit: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// DepositFilter is the search predicate for deposit listings.
type DepositFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time // exclusive
	MediumName      string     // substring
	IsMediumMatched *bool
	SearchQuery     string // substring over account alias / purpose / client name
	IncludeDeleted  bool
}

// Search returns live deposits matching the filter, newest first. An empty
// result is ErrNoRecordsFound.
func (s *DepositService) Search(f DepositFilter) ([]models.Deposit, error) {
	q := s.DB.Model(&models.Deposit{})
	if f.IncludeDeleted {
		q = q.Unscoped()
	}
	if f.StartDate != nil {
		q = q.Where("deposit_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("deposit_date < ?", *f.EndDate)
	}
	if f.MediumName != "" {
		q = q.Where("medium_name LIKE ?", "%"+f.MediumName+"%")
	}
	if f.IsMediumMatched != nil {
		q = q.Where("is_medium_matched = ?", *f.IsMediumMatched)
	}
	if f.SearchQuery != "" {
		like := "%" + f.SearchQuery + "%"
		q = q.Where("account_alias LIKE ? OR purpose LIKE ? OR client_name LIKE ?", like, like, like)
	}

	var deposits []models.Deposit
	if err := q.Order("deposit_date DESC, id DESC").Find(&deposits).Error; err != nil {
		return nil, fmt.Errorf("search deposits: %w", err)
	}
	if len(deposits) == 0 {
		return nil, ErrNoRecordsFound
	}
	return deposits, nil
}

// Modify replaces all fields of an existing deposit; the matched flag is
// recomputed from the medium name carried by the input.
func (s *DepositService) Modify(id uint, in DepositInput) (*models.Deposit, error) {
	var deposit models.Deposit
	if err := s.DB.First(&deposit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("find deposit: %w", err)
	}

	replacement := in.toModel()
	replacement.ID = deposit.ID
	replacement.CreatedAt = deposit.CreatedAt
	replacement.IsMediumMatched = replacement.MediumName != ""

	if err := s.DB.Save(&replacement).Error; err != nil {
		return nil, fmt.Errorf("save deposit: %w", err)
	}
	return &replacement, nil
}

// Delete soft-deletes a deposit.
func (s *DepositService) Delete(id uint) error {
	res := s.DB.Delete(&models.Deposit{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete deposit: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
