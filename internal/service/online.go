package service

import (
	"errors"
	"fmt"

	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"gorm.io/gorm"
)

// OnlineService owns the manually entered online sales/purchase rows.
type OnlineService struct {
	DB *gorm.DB
}

func NewOnlineService(db *gorm.DB) *OnlineService {
	return &OnlineService{DB: db}
}

// OnlineInput carries the fields of a single online row. MarginAmount is
// derived from sales and purchase amounts when nil.
type OnlineInput struct {
	SalesMonth        string // "2006-01"
	MediumName        string
	OnlineCompanyName string
	SalesAmount       int64
	PurchaseAmount    int64
	MarginAmount      *int64
	Memo              string
}

func (in *OnlineInput) toModel() models.Online {
	margin := in.SalesAmount - in.PurchaseAmount
	if in.MarginAmount != nil {
		margin = *in.MarginAmount
	}
	return models.Online{
		SalesMonth:        in.SalesMonth,
		MediumName:        in.MediumName,
		OnlineCompanyName: in.OnlineCompanyName,
		SalesAmount:       in.SalesAmount,
		PurchaseAmount:    in.PurchaseAmount,
		MarginAmount:      margin,
		Memo:              in.Memo,
	}
}

// Create inserts a single online row. Online rows carry their medium name
// directly; there is no rule matching step.
func (s *OnlineService) Create(in OnlineInput) (*models.Online, error) {
	row := in.toModel()
	if err := s.DB.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create online row: %w", err)
	}
	return &row, nil
}

// OnlineFilter is the search predicate for online listings.
type OnlineFilter struct {
	SalesMonth     string // exact "2006-01"
	MediumName     string // substring
	SearchQuery    string // substring over online company name / memo
	IncludeDeleted bool
}

// Search returns live online rows matching the filter, newest month first.
// An empty result is ErrNoRecordsFound.
func (s *OnlineService) Search(f OnlineFilter) ([]models.Online, error) {
	q := s.DB.Model(&models.Online{})
	if f.IncludeDeleted {
		q = q.Unscoped()
	}
	if f.SalesMonth != "" {
		q = q.Where("sales_month = ?", f.SalesMonth)
	}
	if f.MediumName != "" {
		q = q.Where("medium_name LIKE ?", "%"+f.MediumName+"%")
	}
	if f.SearchQuery != "" {
		like := "%" + f.SearchQuery + "%"
		q = q.Where("online_company_name LIKE ? OR memo LIKE ?", like, like)
	}

	var rows []models.Online
	if err := q.Order("sales_month DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("search online rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoRecordsFound
	}
	return rows, nil
}

// Modify replaces all fields of an existing online row.
func (s *OnlineService) Modify(id uint, in OnlineInput) (*models.Online, error) {
	var row models.Online
	if err := s.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("find online row: %w", err)
	}

	replacement := in.toModel()
	replacement.ID = row.ID
	replacement.CreatedAt = row.CreatedAt

	if err := s.DB.Save(&replacement).Error; err != nil {
		return nil, fmt.Errorf("save online row: %w", err)
	}
	return &replacement, nil
}

// Delete soft-deletes an online row.
func (s *OnlineService) Delete(id uint) error {
	res := s.DB.Delete(&models.Online{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete online row: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
