package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/CammeCommerce/Backend-sub000/internal/excel"
	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"gorm.io/gorm"
)

// WithdrawalService owns bank withdrawal rows.
type WithdrawalService struct {
	DB       *gorm.DB
	Matching *MatchingService
}

func NewWithdrawalService(db *gorm.DB, matching *MatchingService) *WithdrawalService {
	return &WithdrawalService{DB: db, Matching: matching}
}

// WithdrawalInput carries the fields of a single withdrawal creation or
// modification.
type WithdrawalInput struct {
	MediumName         string
	WithdrawalDate     time.Time
	AccountAlias       string
	WithdrawalAmount   int64
	AccountDescription string
	TransactionMethod1 string
	TransactionMethod2 string
	AccountMemo        string
	Purpose            string
	ClientName         string
}

func (in *WithdrawalInput) toModel() models.Withdrawal {
	return models.Withdrawal{
		MediumName:         in.MediumName,
		WithdrawalDate:     in.WithdrawalDate,
		AccountAlias:       in.AccountAlias,
		WithdrawalAmount:   in.WithdrawalAmount,
		AccountDescription: in.AccountDescription,
		TransactionMethod1: in.TransactionMethod1,
		TransactionMethod2: in.TransactionMethod2,
		AccountMemo:        in.AccountMemo,
		Purpose:            in.Purpose,
		ClientName:         in.ClientName,
	}
}

// Create inserts a single withdrawal after running it through the matching
// rules.
func (s *WithdrawalService) Create(in WithdrawalInput) (*models.Withdrawal, error) {
	withdrawal := in.toModel()
	if err := s.Matching.ApplyWithdrawalMatch(&withdrawal); err != nil {
		return nil, err
	}
	if err := s.DB.Create(&withdrawal).Error; err != nil {
		return nil, fmt.Errorf("create withdrawal: %w", err)
	}
	return &withdrawal, nil
}

// ImportLenient saves parsed rows one at a time with numeric coercion; a
// failure partway leaves earlier rows persisted (original behavior).
func (s *WithdrawalService) ImportLenient(fileBytes []byte, mapping excel.WithdrawalMapping) (saved int, err error) {
	rows, err := excel.ParseWithdrawals(fileBytes, mapping, excel.ModeLenient)
	if err != nil {
		return 0, err
	}
	for i := range rows {
		if err := s.Matching.ApplyWithdrawalMatch(&rows[i]); err != nil {
			return saved, err
		}
		if err := s.DB.Create(&rows[i]).Error; err != nil {
			return saved, fmt.Errorf("save imported withdrawal: %w", err)
		}
		saved++
	}
	return saved, nil
}

// ImportStrict validates the whole sheet first, then writes all rows in one
// transaction.
func (s *WithdrawalService) ImportStrict(fileBytes []byte, mapping excel.WithdrawalMapping) (saved int, err error) {
	rows, err := excel.ParseWithdrawals(fileBytes, mapping, excel.ModeStrict)
	if err != nil {
		return 0, err
	}
	for i := range rows {
		if err := s.Matching.ApplyWithdrawalMatch(&rows[i]); err != nil {
			return 0, err
		}
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return fmt.Errorf("save imported withdrawal: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// WithdrawalFilter is the search predicate for withdrawal listings.
type WithdrawalFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time // exclusive
	MediumName      string     // substring
	IsMediumMatched *bool
	SearchQuery     string // substring over account alias / purpose / client name
	IncludeDeleted  bool
}

// Search returns live withdrawals matching the filter, newest first. An
// empty result is ErrNoRecordsFound.
func (s *WithdrawalService) Search(f WithdrawalFilter) ([]models.Withdrawal, error) {
	q := s.DB.Model(&models.Withdrawal{})
	if f.IncludeDeleted {
		q = q.Unscoped()
	}
	if f.StartDate != nil {
		q = q.Where("withdrawal_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("withdrawal_date < ?", *f.EndDate)
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

	var withdrawals []models.Withdrawal
	if err := q.Order("withdrawal_date DESC, id DESC").Find(&withdrawals).Error; err != nil {
		return nil, fmt.Errorf("search withdrawals: %w", err)
	}
	if len(withdrawals) == 0 {
		return nil, ErrNoRecordsFound
	}
	return withdrawals, nil
}

// Modify replaces all fields of an existing withdrawal; the matched flag is
// recomputed from the medium name carried by the input.
func (s *WithdrawalService) Modify(id uint, in WithdrawalInput) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	if err := s.DB.First(&withdrawal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("find withdrawal: %w", err)
	}

	replacement := in.toModel()
	replacement.ID = withdrawal.ID
	replacement.CreatedAt = withdrawal.CreatedAt
	replacement.IsMediumMatched = replacement.MediumName != ""

	if err := s.DB.Save(&replacement).Error; err != nil {
		return nil, fmt.Errorf("save withdrawal: %w", err)
	}
	return &replacement, nil
}

// Delete soft-deletes a withdrawal.
func (s *WithdrawalService) Delete(id uint) error {
	res := s.DB.Delete(&models.Withdrawal{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete withdrawal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
