package excel

import (
	"bytes"
	"errors"
	"testing"

	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes rows into the first sheet of a fresh workbook and
// returns the xlsx bytes.
func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

var testOrderMapping = OrderMapping{
	ProductName:         "A",
	Quantity:            "B",
	OrderDate:           "C",
	PurchasePlace:       "D",
	SalesPlace:          "E",
	PurchasePrice:       "F",
	SalesPrice:          "G",
	PurchaseShippingFee: "H",
	SalesShippingFee:    "I",
	TaxType:             "J",
}

func TestParseOrders_TwoRowsInOrder(t *testing.T) {
	fileBytes := buildWorkbook(t, [][]interface{}{
		{"상품명", "수량", "발주일자", "매입처", "판매처", "매입가", "판매가", "매입배송비", "판매배송비", "과세여부"},
		{"상품1", 2, "2024-09-01", "매입A", "판매B", 1000, 1500, 100, 200, "과세"},
		{"상품2", 1, "2024-09-02", "매입C", "판매D", 2000, 2600, 0, 0, "면세"},
	})

	orders, err := ParseOrders(fileBytes, testOrderMapping, ModeStrict)
	if err != nil {
		t.Fatalf("ParseOrders() error = %v, want nil", err)
	}
	if len(orders) != 2 {
		t.Fatalf("ParseOrders() returned %d rows, want 2", len(orders))
	}

	first := orders[0]
	if first.ProductName != "상품1" {
		t.Errorf("first row product = %q, want 상품1", first.ProductName)
	}
	if first.Quantity != 2 {
		t.Errorf("first row quantity = %d, want 2", first.Quantity)
	}
	if first.PurchasePrice != 1000 || first.SalesPrice != 1500 {
		t.Errorf("first row prices = %d/%d, want 1000/1500", first.PurchasePrice, first.SalesPrice)
	}
	// margin not mapped: derived from prices
	if first.MarginAmount != 500 {
		t.Errorf("first row margin = %d, want 500", first.MarginAmount)
	}
	if first.ShippingDifference != 100 {
		t.Errorf("first row shipping difference = %d, want 100", first.ShippingDifference)
	}
	if first.TaxType != models.TaxTypeTaxable {
		t.Errorf("first row tax type = %q, want TAXABLE", first.TaxType)
	}
	if first.OrderDate.Format("2006-01-02") != "2024-09-01" {
		t.Errorf("first row date = %v, want 2024-09-01", first.OrderDate)
	}

	second := orders[1]
	if second.ProductName != "상품2" {
		t.Errorf("second row product = %q, want 상품2", second.ProductName)
	}
	if second.TaxType != models.TaxTypeNonTaxable {
		t.Errorf("second row tax type = %q, want NON_TAXABLE", second.TaxType)
	}

	// match fields come back zeroed
	for i, o := range orders {
		if o.MediumName != "" || o.SettlementCompanyName != "" {
			t.Errorf("row %d: match names not empty", i)
		}
		if o.IsMediumMatched || o.IsSettlementCompanyMatched {
			t.Errorf("row %d: match flags not false", i)
		}
	}
}

func TestParseOrders_StrictRejectsNonNumeric(t *testing.T) {
	fileBytes := buildWorkbook(t, [][]interface{}{
		{"상품명", "수량", "발주일자", "매입처", "판매처", "매입가", "판매가", "매입배송비", "판매배송비", "과세여부"},
		{"상품1", "abc", "2024-09-01", "매입A", "판매B", 1000, 1500, 0, 0, ""},
	})

	_, err := ParseOrders(fileBytes, testOrderMapping, ModeStrict)
	if err == nil {
		t.Fatal("ParseOrders(strict) error = nil, want error")
	}

	var numErr *InvalidNumericFieldError
	if !errors.As(err, &numErr) {
		t.Fatalf("error type = %T, want *InvalidNumericFieldError", err)
	}
	// header is sheet row 1, so the first data row reports as row 2
	if numErr.Row != 2 {
		t.Errorf("error row = %d, want 2", numErr.Row)
	}
	if numErr.Field != "quantity" {
		t.Errorf("error field = %q, want quantity", numErr.Field)
	}
}

func TestParseOrders_LenientCoercesToZero(t *testing.T) {
	fileBytes := buildWorkbook(t, [][]interface{}{
		{"상품명", "수량", "발주일자", "매입처", "판매처", "매입가", "판매가", "매입배송비", "판매배송비", "과세여부"},
		{"상품1", "abc", "2024-09-01", "매입A", "판매B", "notanumber", 1500, "", 200, ""},
	})

	orders, err := ParseOrders(fileBytes, testOrderMapping, ModeLenient)
	if err != nil {
		t.Fatalf("ParseOrders(lenient) error = %v, want nil", err)
	}
	if len(orders) != 1 {
		t.Fatalf("ParseOrders(lenient) returned %d rows, want 1", len(orders))
	}
	if orders[0].Quantity != 0 {
		t.Errorf("quantity = %d, want 0", orders[0].Quantity)
	}
	if orders[0].PurchasePrice != 0 {
		t.Errorf("purchase price = %d, want 0", orders[0].PurchasePrice)
	}
	if orders[0].SalesPrice != 1500 {
		t.Errorf("sales price = %d, want 1500", orders[0].SalesPrice)
	}
}

func TestParseOrders_ThousandsSeparators(t *testing.T) {
	fileBytes := buildWorkbook(t, [][]interface{}{
		{"상품명", "수량", "발주일자", "매입처", "판매처", "매입가", "판매가", "매입배송비", "판매배송비", "과세여부"},
		{"상품1", "1", "2024-09-01", "매입A", "판매B", "1,234", "5,678", 0, 0, ""},
	})

	orders, err := ParseOrders(fileBytes, testOrderMapping, ModeStrict)
	if err != nil {
		t.Fatalf("ParseOrders() error = %v, want nil", err)
	}
	if orders[0].PurchasePrice != 1234 {
		t.Errorf("purchase price = %d, want 1234", orders[0].PurchasePrice)
	}
	if orders[0].SalesPrice != 5678 {
		t.Errorf("sales price = %d, want 5678", orders[0].SalesPrice)
	}
}

func TestParseOrders_EmptySheet(t *testing.T) {
	headerOnly := buildWorkbook(t, [][]interface{}{
		{"상품명", "수량"},
	})

	_, err := ParseOrders(headerOnly, testOrderMapping, ModeStrict)
	if !errors.Is(err, ErrEmptySheet) {
		t.Errorf("header-only sheet error = %v, want ErrEmptySheet", err)
	}
}

func TestParseOrders_BadColumnLabel(t *testing.T) {
	fileBytes := buildWorkbook(t, [][]interface{}{
		{"상품명", "수량"},
		{"상품1", 1},
	})

	mapping := testOrderMapping
	mapping.Quantity = "B2"

	_, err := ParseOrders(fileBytes, mapping, ModeStrict)
	var colErr *InvalidColumnLabelError
	if !errors.As(err, &colErr) {
		t.Errorf("error type = %T, want *InvalidColumnLabelError", err)
	}
}

func TestParseDeposits_Basic(t *testing.T) {
	mapping := DepositMapping{
		DepositDate:   "A",
		AccountAlias:  "B",
		DepositAmount: "C",
		Purpose:       "D",
	}
	fileBytes := buildWorkbook(t, [][]interface{}{
		{"입금일자", "계좌별칭", "입금액", "용도"},
		{"2024-09-10", "우리동네", 30000, "광고비"},
	})

	deposits, err := ParseDeposits(fileBytes, mapping, ModeStrict)
	if err != nil {
		t.Fatalf("ParseDeposits() error = %v, want nil", err)
	}
	if len(deposits) != 1 {
		t.Fatalf("ParseDeposits() returned %d rows, want 1", len(deposits))
	}
	d := deposits[0]
	if d.AccountAlias != "우리동네" || d.Purpose != "광고비" || d.DepositAmount != 30000 {
		t.Errorf("deposit row = %+v", d)
	}
	if d.IsMediumMatched || d.MediumName != "" {
		t.Error("deposit match fields should come back zeroed")
	}
}

func TestParseWithdrawals_Basic(t *testing.T) {
	mapping := WithdrawalMapping{
		WithdrawalDate:   "A",
		AccountAlias:     "B",
		WithdrawalAmount: "C",
		Purpose:          "D",
	}
	fileBytes := buildWorkbook(t, [][]interface{}{
		{"출금일자", "계좌별칭", "출금액", "용도"},
		{"2024-09-11", "우리동네", 12000, "물류비"},
	})

	withdrawals, err := ParseWithdrawals(fileBytes, mapping, ModeStrict)
	if err != nil {
		t.Fatalf("ParseWithdrawals() error = %v, want nil", err)
	}
	if len(withdrawals) != 1 {
		t.Fatalf("ParseWithdrawals() returned %d rows, want 1", len(withdrawals))
	}
	w := withdrawals[0]
	if w.AccountAlias != "우리동네" || w.WithdrawalAmount != 12000 {
		t.Errorf("withdrawal row = %+v", w)
	}
}
