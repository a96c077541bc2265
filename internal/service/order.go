package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/CammeCommerce/Backend-sub000/internal/excel"
	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"gorm.io/gorm"
)

// OrderService owns order rows: single creation, bulk spreadsheet import,
// search, modification and soft deletion. Matching against the rule tables
// happens at creation time only.
type OrderService struct {
	DB       *gorm.DB
	Matching *MatchingService
}

func NewOrderService(db *gorm.DB, matching *MatchingService) *OrderService {
	return &OrderService{DB: db, Matching: matching}
}

// OrderInput carries the fields of a single order creation or modification.
type OrderInput struct {
	MediumName            string
	SettlementCompanyName string
	ProductName           string
	Quantity              int64
	OrderDate             time.Time
	PurchasePlace         string
	SalesPlace            string
	PurchasePrice         int64
	SalesPrice            int64
	PurchaseShippingFee   int64
	SalesShippingFee      int64
	TaxType               string
	MarginAmount          *int64
	ShippingDifference    *int64
}

func (in *OrderInput) toModel() models.Order {
	margin := in.SalesPrice - in.PurchasePrice
	if in.MarginAmount != nil {
		margin = *in.MarginAmount
	}
	shippingDiff := in.SalesShippingFee - in.PurchaseShippingFee
	if in.ShippingDifference != nil {
		shippingDiff = *in.ShippingDifference
	}
	taxType := in.TaxType
	if taxType == "" {
		taxType = models.TaxTypeTaxable
	}
	return models.Order{
		MediumName:            in.MediumName,
		SettlementCompanyName: in.SettlementCompanyName,
		ProductName:           in.ProductName,
		Quantity:              in.Quantity,
		OrderDate:             in.OrderDate,
		PurchasePlace:         in.PurchasePlace,
		SalesPlace:            in.SalesPlace,
		PurchasePrice:         in.PurchasePrice,
		SalesPrice:            in.SalesPrice,
		PurchaseShippingFee:   in.PurchaseShippingFee,
		SalesShippingFee:      in.SalesShippingFee,
		TaxType:               taxType,
		MarginAmount:          margin,
		ShippingDifference:    shippingDiff,
	}
}

// Create inserts a single order after running it through the matching rules.
func (s *OrderService) Create(in OrderInput) (*models.Order, error) {
	order := in.toModel()
	if err := s.Matching.ApplyOrderMatch(&order); err != nil {
		return nil, err
	}
	if err := s.DB.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &order, nil
}

// ImportLenient parses the workbook with numeric coercion (bad cells become
// 0), matches each row and saves rows one at a time. A failure partway
// through leaves earlier rows persisted; this mirrors the original
// order-import behavior and callers surface the row count actually saved.
func (s *OrderService) ImportLenient(fileBytes []byte, mapping excel.OrderMapping) (saved int, err error) {
	rows, err := excel.ParseOrders(fileBytes, mapping, excel.ModeLenient)
	if err != nil {
		return 0, err
	}
	for i := range rows {
		if err := s.Matching.ApplyOrderMatch(&rows[i]); err != nil {
			return saved, err
		}
		if err := s.DB.Create(&rows[i]).Error; err != nil {
			return saved, fmt.Errorf("save imported order: %w", err)
		}
		saved++
	}
	return saved, nil
}

// ImportStrict parses the workbook rejecting any non-numeric numeric cell,
// matches every row, then writes all rows in a single transaction. Either
// the whole sheet lands or nothing does.
func (s *OrderService) ImportStrict(fileBytes []byte, mapping excel.OrderMapping) (saved int, err error) {
	rows, err := excel.ParseOrders(fileBytes, mapping, excel.ModeStrict)
	if err != nil {
		return 0, err
	}
	for i := range rows {
		if err := s.Matching.ApplyOrderMatch(&rows[i]); err != nil {
			return 0, err
		}
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return fmt.Errorf("save imported order: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// OrderFilter is the search predicate shared by listing and export.
// Matched-flag filters are tri-state: nil means "don't care".
type OrderFilter struct {
	StartDate                  *time.Time
	EndDate                    *time.Time // exclusive
	MediumName                 string     // substring
	SettlementCompanyName      string     // substring
	IsMediumMatched            *bool
	IsSettlementCompanyMatched *bool
	SearchQuery                string // substring over product / purchase place / sales place
	IncludeDeleted             bool   // audit reads only
}

func (s *OrderService) filtered(f OrderFilter) *gorm.DB {
	q := s.DB.Model(&models.Order{})
	if f.IncludeDeleted {
		q = q.Unscoped()
	}
	if f.StartDate != nil {
		q = q.Where("order_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("order_date < ?", *f.EndDate)
	}
	if f.MediumName != "" {
		q = q.Where("medium_name LIKE ?", "%"+f.MediumName+"%")
	}
	if f.SettlementCompanyName != "" {
		q = q.Where("settlement_company_name LIKE ?", "%"+f.SettlementCompanyName+"%")
	}
	if f.IsMediumMatched != nil {
		q = q.Where("is_medium_matched = ?", *f.IsMediumMatched)
	}
	if f.IsSettlementCompanyMatched != nil {
		q = q.Where("is_settlement_company_matched = ?", *f.IsSettlementCompanyMatched)
	}
	if f.SearchQuery != "" {
		like := "%" + f.SearchQuery + "%"
		q = q.Where("product_name LIKE ? OR purchase_place LIKE ? OR sales_place LIKE ?", like, like, like)
	}
	return q
}

// Search returns live orders matching the filter, newest order date first.
// An empty result is ErrNoRecordsFound, mirroring the listing behavior.
func (s *OrderService) Search(f OrderFilter) ([]models.Order, error) {
	var orders []models.Order
	if err := s.filtered(f).Order("order_date DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}
	if len(orders) == 0 {
		return nil, ErrNoRecordsFound
	}
	return orders, nil
}

// Export renders the filtered order set into a downloadable workbook.
func (s *OrderService) Export(f OrderFilter) ([]byte, error) {
	orders, err := s.Search(f)
	if err != nil {
		return nil, err
	}
	return excel.BuildOrderWorkbook(orders)
}

// Modify replaces all fields of an existing order. The record is re-matched
// only through the names carried by the input, per the full-field-replacement
// contract; flags are recomputed from name presence.
func (s *OrderService) Modify(id uint, in OrderInput) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	replacement := in.toModel()
	replacement.ID = order.ID
	replacement.CreatedAt = order.CreatedAt
	replacement.IsMediumMatched = replacement.MediumName != ""
	replacement.IsSettlementCompanyMatched = replacement.SettlementCompanyName != ""

	if err := s.DB.Save(&replacement).Error; err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return &replacement, nil
}

// Delete soft-deletes an order; it drops out of search, matching and
// aggregation but stays reachable through IncludeDeleted reads.
func (s *OrderService) Delete(id uint) error {
	res := s.DB.Delete(&models.Order{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
