package excel

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"github.com/xuri/excelize/v2"
)

// ParseMode selects how numeric cells that fail to parse are handled.
type ParseMode int

const (
	// ModeLenient coerces unparseable numeric cells to 0. Used by the
	// direct order-import pathway.
	ModeLenient ParseMode = iota
	// ModeStrict aborts the whole parse on the first unparseable numeric
	// cell. Used by the generic excel-upload workflow.
	ModeStrict
)

// ErrEmptySheet is returned when the first sheet has fewer than two rows
// (header only, or nothing at all).
var ErrEmptySheet = errors.New("sheet is empty or has a header row only")

// InvalidNumericFieldError reports a numeric cell that failed to parse under
// ModeStrict. Row is the 1-based spreadsheet row including the header, so the
// first data row reports as row 2.
type InvalidNumericFieldError struct {
	Row   int
	Field string
	Value string
}

func (e *InvalidNumericFieldError) Error() string {
	return fmt.Sprintf("row %d: field %s has non-numeric value %q", e.Row, e.Field, e.Value)
}

// Column mappings: semantic field -> column letter. An empty letter means the
// uploaded sheet does not carry that field.

type OrderMapping struct {
	ProductName         string
	Quantity            string
	OrderDate           string
	PurchasePlace       string
	SalesPlace          string
	PurchasePrice       string
	SalesPrice          string
	PurchaseShippingFee string
	SalesShippingFee    string
	TaxType             string
	MarginAmount        string
	ShippingDifference  string
}

type DepositMapping struct {
	DepositDate        string
	AccountAlias       string
	DepositAmount      string
	AccountDescription string
	TransactionMethod1 string
	TransactionMethod2 string
	AccountMemo        string
	CounterpartyName   string
	Purpose            string
	ClientName         string
}

type WithdrawalMapping struct {
	WithdrawalDate     string
	AccountAlias       string
	WithdrawalAmount   string
	AccountDescription string
	TransactionMethod1 string
	TransactionMethod2 string
	AccountMemo        string
	Purpose            string
	ClientName         string
}

// readRows opens the workbook from a byte slice and returns all rows of the
// first sheet.
func readRows(fileBytes []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(fileBytes))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}
	return rows, nil
}

// cellAt returns the cell at idx, or "" when the row is shorter or the field
// is unmapped (idx < 0).
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// mapIndex resolves a column letter to a zero-based index; unmapped fields
// resolve to -1.
func mapIndex(letter string) (int, error) {
	if letter == "" {
		return -1, nil
	}
	return ColumnToIndex(letter)
}

// parseAmount parses an integer cell. Empty cells are 0 in both modes; a
// non-empty cell that does not parse is 0 under ModeLenient and an
// InvalidNumericFieldError under ModeStrict. Thousands separators are
// tolerated.
func parseAmount(raw string, mode ParseMode, row int, field string) (int64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// some sheets format integers as "12345.0"
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil && f == float64(int64(f)) {
			return int64(f), nil
		}
		if mode == ModeStrict {
			return 0, &InvalidNumericFieldError{Row: row, Field: field, Value: raw}
		}
		return 0, nil
	}
	return n, nil
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"1-2-06",
	"01-02-06",
	"2006-01-02 15:04:05",
}

// parseDate tries the known date layouts; unparseable cells yield a zero
// time rather than an error (dates are not numeric fields).
func parseDate(raw string) time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseTaxType maps a cell to the order tax type. "면세" and "NON_TAXABLE"
// mark the row non-taxable; everything else is taxable.
func parseTaxType(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "면세" || strings.EqualFold(s, models.TaxTypeNonTaxable) {
		return models.TaxTypeNonTaxable
	}
	return models.TaxTypeTaxable
}

// ParseOrders reads the first sheet into order rows. Match fields come back
// zeroed; matching and persistence are separate steps owned by the caller.
// Margin amount and shipping difference are taken from the sheet when mapped,
// otherwise derived from the price and shipping columns.
func ParseOrders(fileBytes []byte, m OrderMapping, mode ParseMode) ([]models.Order, error) {
	rows, err := readRows(fileBytes)
	if err != nil {
		return nil, err
	}

	var (
		productIdx, quantityIdx, dateIdx, purchasePlaceIdx, salesPlaceIdx int
		purchasePriceIdx, salesPriceIdx, purchaseShipIdx, salesShipIdx    int
		taxTypeIdx, marginIdx, shipDiffIdx                                int
	)
	if productIdx, err = mapIndex(m.ProductName); err != nil {
		return nil, err
	}
	if quantityIdx, err = mapIndex(m.Quantity); err != nil {
		return nil, err
	}
	if dateIdx, err = mapIndex(m.OrderDate); err != nil {
		return nil, err
	}
	if purchasePlaceIdx, err = mapIndex(m.PurchasePlace); err != nil {
		return nil, err
	}
	if salesPlaceIdx, err = mapIndex(m.SalesPlace); err != nil {
		return nil, err
	}
	if purchasePriceIdx, err = mapIndex(m.PurchasePrice); err != nil {
		return nil, err
	}
	if salesPriceIdx, err = mapIndex(m.SalesPrice); err != nil {
		return nil, err
	}
	if purchaseShipIdx, err = mapIndex(m.PurchaseShippingFee); err != nil {
		return nil, err
	}
	if salesShipIdx, err = mapIndex(m.SalesShippingFee); err != nil {
		return nil, err
	}
	if taxTypeIdx, err = mapIndex(m.TaxType); err != nil {
		return nil, err
	}
	if marginIdx, err = mapIndex(m.MarginAmount); err != nil {
		return nil, err
	}
	if shipDiffIdx, err = mapIndex(m.ShippingDifference); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based sheet row, header is row 1

		quantity, err := parseAmount(cellAt(row, quantityIdx), mode, rowNum, "quantity")
		if err != nil {
			return nil, err
		}
		purchasePrice, err := parseAmount(cellAt(row, purchasePriceIdx), mode, rowNum, "purchasePrice")
		if err != nil {
			return nil, err
		}
		salesPrice, err := parseAmount(cellAt(row, salesPriceIdx), mode, rowNum, "salesPrice")
		if err != nil {
			return nil, err
		}
		purchaseShipping, err := parseAmount(cellAt(row, purchaseShipIdx), mode, rowNum, "purchaseShippingFee")
		if err != nil {
			return nil, err
		}
		salesShipping, err := parseAmount(cellAt(row, salesShipIdx), mode, rowNum, "salesShippingFee")
		if err != nil {
			return nil, err
		}

		margin := salesPrice - purchasePrice
		if marginIdx >= 0 {
			if margin, err = parseAmount(cellAt(row, marginIdx), mode, rowNum, "marginAmount"); err != nil {
				return nil, err
			}
		}
		shippingDiff := salesShipping - purchaseShipping
		if shipDiffIdx >= 0 {
			if shippingDiff, err = parseAmount(cellAt(row, shipDiffIdx), mode, rowNum, "shippingDifference"); err != nil {
				return nil, err
			}
		}

		orders = append(orders, models.Order{
			ProductName:         cellAt(row, productIdx),
			Quantity:            quantity,
			OrderDate:           parseDate(cellAt(row, dateIdx)),
			PurchasePlace:       cellAt(row, purchasePlaceIdx),
			SalesPlace:          cellAt(row, salesPlaceIdx),
			PurchasePrice:       purchasePrice,
			SalesPrice:          salesPrice,
			PurchaseShippingFee: purchaseShipping,
			SalesShippingFee:    salesShipping,
			TaxType:             parseTaxType(cellAt(row, taxTypeIdx)),
			MarginAmount:        margin,
			ShippingDifference:  shippingDiff,
		})
	}
	return orders, nil
}

// ParseDeposits reads the first sheet into deposit rows.
func ParseDeposits(fileBytes []byte, m DepositMapping, mode ParseMode) ([]models.Deposit, error) {
	rows, err := readRows(fileBytes)
	if err != nil {
		return nil, err
	}

	var (
		dateIdx, aliasIdx, amountIdx, descIdx, method1Idx, method2Idx int
		memoIdx, counterpartyIdx, purposeIdx, clientIdx               int
	)
	if dateIdx, err = mapIndex(m.DepositDate); err != nil {
		return nil, err
	}
	if aliasIdx, err = mapIndex(m.AccountAlias); err != nil {
		return nil, err
	}
	if amountIdx, err = mapIndex(m.DepositAmount); err != nil {
		return nil, err
	}
	if descIdx, err = mapIndex(m.AccountDescription); err != nil {
		return nil, err
	}
	if method1Idx, err = mapIndex(m.TransactionMethod1); err != nil {
		return nil, err
	}
	if method2Idx, err = mapIndex(m.TransactionMethod2); err != nil {
		return nil, err
	}
	if memoIdx, err = mapIndex(m.AccountMemo); err != nil {
		return nil, err
	}
	if counterpartyIdx, err = mapIndex(m.CounterpartyName); err != nil {
		return nil, err
	}
	if purposeIdx, err = mapIndex(m.Purpose); err != nil {
		return nil, err
	}
	if clientIdx, err = mapIndex(m.ClientName); err != nil {
		return nil, err
	}

	deposits := make([]models.Deposit, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2

		amount, err := parseAmount(cellAt(row, amountIdx), mode, rowNum, "depositAmount")
		if err != nil {
			return nil, err
		}

		deposits = append(deposits, models.Deposit{
			DepositDate:        parseDate(cellAt(row, dateIdx)),
			AccountAlias:       cellAt(row, aliasIdx),
			DepositAmount:      amount,
			AccountDescription: cellAt(row, descIdx),
			TransactionMethod1: cellAt(row, method1Idx),
			TransactionMethod2: cellAt(row, method2Idx),
			AccountMemo:        cellAt(row, memoIdx),
			CounterpartyName:   cellAt(row, counterpartyIdx),
			Purpose:            cellAt(row, purposeIdx),
			ClientName:         cellAt(row, clientIdx),
		})
	}
	return deposits, nil
}

// ParseWithdrawals reads the first sheet into withdrawal rows.
func ParseWithdrawals(fileBytes []byte, m WithdrawalMapping, mode ParseMode) ([]models.Withdrawal, error) {
	rows, err := readRows(fileBytes)
	if err != nil {
		return nil, err
	}

	var (
		dateIdx, aliasIdx, amountIdx, descIdx, method1Idx, method2Idx int
		memoIdx, purposeIdx, clientIdx                                int
	)
	if dateIdx, err = mapIndex(m.WithdrawalDate); err != nil {
		return nil, err
	}
	if aliasIdx, err = mapIndex(m.AccountAlias); err != nil {
		return nil, err
	}
	if amountIdx, err = mapIndex(m.WithdrawalAmount); err != nil {
		return nil, err
	}
	if descIdx, err = mapIndex(m.AccountDescription); err != nil {
		return nil, err
	}
	if method1Idx, err = mapIndex(m.TransactionMethod1); err != nil {
		return nil, err
	}
	if method2Idx, err = mapIndex(m.TransactionMethod2); err != nil {
		return nil, err
	}
	if memoIdx, err = mapIndex(m.AccountMemo); err != nil {
		return nil, err
	}
	if purposeIdx, err = mapIndex(m.Purpose); err != nil {
		return nil, err
	}
	if clientIdx, err = mapIndex(m.ClientName); err != nil {
		return nil, err
	}

	withdrawals := make([]models.Withdrawal, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2

		amount, err := parseAmount(cellAt(row, amountIdx), mode, rowNum, "withdrawalAmount")
		if err != nil {
			return nil, err
		}

		withdrawals = append(withdrawals, models.Withdrawal{
			WithdrawalDate:     parseDate(cellAt(row, dateIdx)),
			AccountAlias:       cellAt(row, aliasIdx),
			WithdrawalAmount:   amount,
			AccountDescription: cellAt(row, descIdx),
			TransactionMethod1: cellAt(row, method1Idx),
			TransactionMethod2: cellAt(row, method2Idx),
			AccountMemo:        cellAt(row, memoIdx),
			Purpose:            cellAt(row, purposeIdx),
			ClientName:         cellAt(row, clientIdx),
		})
	}
	return withdrawals, nil
}
