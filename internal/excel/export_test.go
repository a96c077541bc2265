package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"github.com/xuri/excelize/v2"
)

func TestBuildOrderWorkbook(t *testing.T) {
	orders := []models.Order{
		{
			MediumName:            "M1",
			SettlementCompanyName: "S1",
			ProductName:           "상품1",
			Quantity:              3,
			OrderDate:             time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
			PurchasePlace:         "매입A",
			SalesPlace:            "판매B",
			PurchasePrice:         1000,
			SalesPrice:            1500,
			TaxType:               models.TaxTypeTaxable,
			MarginAmount:          500,
		},
	}

	out, err := BuildOrderWorkbook(orders)
	if err != nil {
		t.Fatalf("BuildOrderWorkbook() error = %v, want nil", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("발주내역")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("sheet has %d rows, want 2", len(rows))
	}

	if rows[0][0] != "매체명" || rows[0][2] != "상품명" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "M1" || rows[1][2] != "상품1" {
		t.Errorf("data row = %v", rows[1])
	}
	if rows[1][4] != "2024-09-01" {
		t.Errorf("date cell = %q, want 2024-09-01", rows[1][4])
	}
	if rows[1][11] != "과세" {
		t.Errorf("tax cell = %q, want 과세", rows[1][11])
	}
}
