package service

import (
	"fmt"
	"time"

	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"gorm.io/gorm"
)

// ProfitLossService aggregates matched records of one medium over a month
// window into the period profit-and-loss report.
type ProfitLossService struct {
	DB *gorm.DB
}

func NewProfitLossService(db *gorm.DB) *ProfitLossService {
	return &ProfitLossService{DB: db}
}

// ProfitLossReport is the aggregated result for one medium and window.
// Amounts are won.
type ProfitLossReport struct {
	StartMonth string `json:"start_month"`
	EndMonth   string `json:"end_month"`
	MediumName string `json:"medium_name"`

	WholesaleSales            int64            `json:"wholesale_sales"`
	WholesaleSalesShippingFee int64            `json:"wholesale_sales_shipping_fee"`
	DepositByPurpose          map[string]int64 `json:"deposit_by_purpose"`
	OnlineSalesByMedium       map[string]int64 `json:"online_sales_by_medium"`

	WholesalePurchase            int64            `json:"wholesale_purchase"`
	WholesalePurchaseShippingFee int64            `json:"wholesale_purchase_shipping_fee"`
	WithdrawalByPurpose          map[string]int64 `json:"withdrawal_by_purpose"`
	OnlinePurchaseByMedium       map[string]int64 `json:"online_purchase_by_medium"`

	TotalSales      int64 `json:"total_sales"`
	TotalPurchase   int64 `json:"total_purchase"`
	NetProfitOrLoss int64 `json:"net_profit_or_loss"`
}

// unknownPurpose labels deposit/withdrawal buckets whose purpose is empty.
const unknownPurpose = "Unknown"

func parseYearMonth(s string) (year, month int, err error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return t.Year(), int(t.Month()), nil
}

// monthOfYearInRange implements the window filter of the original system:
// the year and the month-of-year are range-checked INDEPENDENTLY, not as a
// continuous calendar range. A query from 2024-11 to 2025-02 therefore asks
// for year in [2024,2025] and month in [11,2]; since 11 > 2 that month range
// matches nothing. Callers rely on the literal behavior, so it is exposed
// under this name rather than silently replaced with true calendar ranging.
func monthOfYearInRange(t time.Time, startYear, endYear, startMonth, endMonth int) bool {
	if t.IsZero() {
		return false
	}
	year, month := t.Year(), int(t.Month())
	return year >= startYear && year <= endYear &&
		month >= startMonth && month <= endMonth
}

// salesMonthInRange applies the same window to an online row's own
// "2006-01" sales month. Malformed months never match.
func salesMonthInRange(salesMonth string, startYear, endYear, startMonth, endMonth int) bool {
	t, err := time.Parse("2006-01", salesMonth)
	if err != nil {
		return false
	}
	return monthOfYearInRange(t, startYear, endYear, startMonth, endMonth)
}

// GetProfitLoss aggregates the four record categories for one medium over
// the window. Sub-aggregates with no matching records contribute zeros or
// empty maps, never an error.
func (s *ProfitLossService) GetProfitLoss(startMonth, endMonth, mediumName string) (*ProfitLossReport, error) {
	startYear, startM, err := parseYearMonth(startMonth)
	if err != nil {
		return nil, err
	}
	endYear, endM, err := parseYearMonth(endMonth)
	if err != nil {
		return nil, err
	}

	report := &ProfitLossReport{
		StartMonth:             startMonth,
		EndMonth:               endMonth,
		MediumName:             mediumName,
		DepositByPurpose:       map[string]int64{},
		OnlineSalesByMedium:    map[string]int64{},
		WithdrawalByPurpose:    map[string]int64{},
		OnlinePurchaseByMedium: map[string]int64{},
	}

	// wholesale side: matched orders of the target medium
	var orders []models.Order
	if err := s.DB.
		Where("is_medium_matched = ? AND medium_name = ?", true, mediumName).
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	for i := range orders {
		o := &orders[i]
		if !monthOfYearInRange(o.OrderDate, startYear, endYear, startM, endM) {
			continue
		}
		report.WholesaleSales += o.SalesPrice
		report.WholesaleSalesShippingFee += o.SalesShippingFee
		report.WholesalePurchase += o.PurchasePrice
		report.WholesalePurchaseShippingFee += o.PurchaseShippingFee
	}

	// deposits grouped by purpose
	var deposits []models.Deposit
	if err := s.DB.
		Where("is_medium_matched = ? AND medium_name = ?", true, mediumName).
		Find(&deposits).Error; err != nil {
		return nil, fmt.Errorf("load deposits: %w", err)
	}
	for i := range deposits {
		d := &deposits[i]
		if !monthOfYearInRange(d.DepositDate, startYear, endYear, startM, endM) {
			continue
		}
		purpose := d.Purpose
		if purpose == "" {
			purpose = unknownPurpose
		}
		report.DepositByPurpose[purpose] += d.DepositAmount
	}

	// withdrawals grouped by purpose
	var withdrawals []models.Withdrawal
	if err := s.DB.
		Where("is_medium_matched = ? AND medium_name = ?", true, mediumName).
		Find(&withdrawals).Error; err != nil {
		return nil, fmt.Errorf("load withdrawals: %w", err)
	}
	for i := range withdrawals {
		w := &withdrawals[i]
		if !monthOfYearInRange(w.WithdrawalDate, startYear, endYear, startM, endM) {
			continue
		}
		purpose := w.Purpose
		if purpose == "" {
			purpose = unknownPurpose
		}
		report.WithdrawalByPurpose[purpose] += w.WithdrawalAmount
	}

	// online rows, keyed by their own sales month and grouped by medium name;
	// restricted to the target medium this yields at most one bucket
	var onlineRows []models.Online
	if err := s.DB.
		Where("medium_name = ?", mediumName).
		Find(&onlineRows).Error; err != nil {
		return nil, fmt.Errorf("load online rows: %w", err)
	}
	for i := range onlineRows {
		o := &onlineRows[i]
		if !salesMonthInRange(o.SalesMonth, startYear, endYear, startM, endM) {
			continue
		}
		report.OnlineSalesByMedium[o.MediumName] += o.SalesAmount
		report.OnlinePurchaseByMedium[o.MediumName] += o.PurchaseAmount
	}

	report.TotalSales = report.WholesaleSales + report.WholesaleSalesShippingFee +
		sumValues(report.DepositByPurpose) + sumValues(report.OnlineSalesByMedium)
	report.TotalPurchase = report.WholesalePurchase + report.WholesalePurchaseShippingFee +
		sumValues(report.WithdrawalByPurpose) + sumValues(report.OnlinePurchaseByMedium)
	report.NetProfitOrLoss = report.TotalSales - report.TotalPurchase

	return report, nil
}

func sumValues(m map[string]int64) int64 {
	var total int64
	for _, v := range m {
		total += v
	}
	return total
}
