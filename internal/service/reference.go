package service

import (
	"errors"
	"fmt"

	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"gorm.io/gorm"
)

// ReferenceService owns the two small reference tables. Names are copied
// into transaction rows at match time, so renaming here never rewrites
// historical records.
type ReferenceService struct {
	DB *gorm.DB
}

func NewReferenceService(db *gorm.DB) *ReferenceService {
	return &ReferenceService{DB: db}
}

// CreateMedium adds a sales channel.
func (s *ReferenceService) CreateMedium(name string) (*models.Medium, error) {
	m := models.Medium{Name: name}
	if err := s.DB.Create(&m).Error; err != nil {
		return nil, fmt.Errorf("create medium: %w", err)
	}
	return &m, nil
}

// ListMediums returns live mediums.
func (s *ReferenceService) ListMediums() ([]models.Medium, error) {
	var mediums []models.Medium
	if err := s.DB.Order("name ASC").Find(&mediums).Error; err != nil {
		return nil, fmt.Errorf("list mediums: %w", err)
	}
	return mediums, nil
}

// RenameMedium renames a medium. Historical matched rows keep the old name.
func (s *ReferenceService) RenameMedium(id uint, name string) (*models.Medium, error) {
	var m models.Medium
	if err := s.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("find medium: %w", err)
	}
	m.Name = name
	if err := s.DB.Save(&m).Error; err != nil {
		return nil, fmt.Errorf("rename medium: %w", err)
	}
	return &m, nil
}

// DeleteMedium soft-deletes a medium; historical records are untouched.
func (s *ReferenceService) DeleteMedium(id uint) error {
	res := s.DB.Delete(&models.Medium{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete medium: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// CreateSettlementCompany adds a settlement company.
func (s *ReferenceService) CreateSettlementCompany(name string) (*models.SettlementCompany, error) {
	sc := models.SettlementCompany{Name: name}
	if err := s.DB.Create(&sc).Error; err != nil {
		return nil, fmt.Errorf("create settlement company: %w", err)
	}
	return &sc, nil
}

// ListSettlementCompanies returns live settlement companies.
func (s *ReferenceService) ListSettlementCompanies() ([]models.SettlementCompany, error) {
	var companies []models.SettlementCompany
	if err := s.DB.Order("name ASC").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("list settlement companies: %w", err)
	}
	return companies, nil
}

// RenameSettlementCompany renames a settlement company.
func (s *ReferenceService) RenameSettlementCompany(id uint, name string) (*models.SettlementCompany, error) {
	var sc models.SettlementCompany
	if err := s.DB.First(&sc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("find settlement company: %w", err)
	}
	sc.Name = name
	if err := s.DB.Save(&sc).Error; err != nil {
		return nil, fmt.Errorf("rename settlement company: %w", err)
	}
	return &sc, nil
}

// DeleteSettlementCompany soft-deletes a settlement company.
func (s *ReferenceService) DeleteSettlementCompany(id uint) error {
	res := s.DB.Delete(&models.SettlementCompany{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete settlement company: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
