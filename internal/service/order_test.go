package service

import (
	"bytes"
	"testing"

	"github.com/CammeCommerce/Backend-sub000/internal/excel"
	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

var orderSheetMapping = excel.OrderMapping{
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

var orderSheetHeader = []interface{}{
	"상품명", "수량", "발주일자", "매입처", "판매처", "매입가", "판매가", "매입배송비", "판매배송비", "과세여부",
}

func newOrderService(t *testing.T) *OrderService {
	t.Helper()
	db := newTestDB(t)
	return NewOrderService(db, NewMatchingService(db))
}

func TestOrderImportStrict_SavesAllRowsMatched(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.Matching.CreateOrderMatching(models.OrderMatching{
		MediumName:            "M1",
		SettlementCompanyName: "S1",
		PurchasePlace:         "매입A",
		SalesPlace:            "판매B",
	})
	require.NoError(t, err)

	fileBytes := buildWorkbook(t, [][]interface{}{
		orderSheetHeader,
		{"상품1", 2, "2024-09-01", "매입A", "판매B", 1000, 1500, 100, 200, "과세"},
		{"상품2", 1, "2024-09-02", "다른매입", "다른판매", 2000, 2600, 0, 0, "면세"},
	})

	saved, err := svc.ImportStrict(fileBytes, orderSheetMapping)
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	var stored []models.Order
	require.NoError(t, svc.DB.Order("id").Find(&stored).Error)
	require.Len(t, stored, 2)

	assert.Equal(t, "M1", stored[0].MediumName)
	assert.Equal(t, "S1", stored[0].SettlementCompanyName)
	assert.True(t, stored[0].IsMediumMatched)
	assert.True(t, stored[0].IsSettlementCompanyMatched)
	assert.Equal(t, int64(500), stored[0].MarginAmount)

	// second row has no rule
	assert.False(t, stored[1].IsMediumMatched)
	assert.Empty(t, stored[1].MediumName)
	assert.Equal(t, models.TaxTypeNonTaxable, stored[1].TaxType)
}

func TestOrderImportStrict_BadCellSavesNothing(t *testing.T) {
	svc := newOrderService(t)

	fileBytes := buildWorkbook(t, [][]interface{}{
		orderSheetHeader,
		{"상품1", 1, "2024-09-01", "매입A", "판매B", 1000, 1500, 0, 0, ""},
		{"상품2", "abc", "2024-09-02", "매입A", "판매B", 2000, 2600, 0, 0, ""},
	})

	saved, err := svc.ImportStrict(fileBytes, orderSheetMapping)
	require.Error(t, err)
	assert.Zero(t, saved)

	var numErr *excel.InvalidNumericFieldError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, 3, numErr.Row)

	var count int64
	require.NoError(t, svc.DB.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrderImportLenient_CoercesBadCells(t *testing.T) {
	svc := newOrderService(t)

	fileBytes := buildWorkbook(t, [][]interface{}{
		orderSheetHeader,
		{"상품1", "abc", "2024-09-01", "매입A", "판매B", "notanumber", 1500, 0, 0, ""},
	})

	saved, err := svc.ImportLenient(fileBytes, orderSheetMapping)
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	var stored models.Order
	require.NoError(t, svc.DB.First(&stored).Error)
	assert.Zero(t, stored.Quantity)
	assert.Zero(t, stored.PurchasePrice)
	assert.Equal(t, int64(1500), stored.SalesPrice)
}

func seedOrders(t *testing.T, svc *OrderService) []models.Order {
	t.Helper()
	rows := []models.Order{
		{ProductName: "키보드", PurchasePlace: "매입A", SalesPlace: "판매B",
			OrderDate: date(2024, 9, 1), MediumName: "스마트스토어", IsMediumMatched: true,
			SettlementCompanyName: "정산사", IsSettlementCompanyMatched: true,
			PurchasePrice: 1000, SalesPrice: 1500},
		{ProductName: "마우스", PurchasePlace: "매입C", SalesPlace: "판매D",
			OrderDate:     date(2024, 9, 15),
			PurchasePrice: 2000, SalesPrice: 2600},
		{ProductName: "모니터", PurchasePlace: "매입A", SalesPlace: "판매B",
			OrderDate: date(2024, 10, 1), MediumName: "쿠팡", IsMediumMatched: true,
			PurchasePrice: 3000, SalesPrice: 4000},
	}
	require.NoError(t, svc.DB.Create(&rows).Error)
	return rows
}

func TestOrderSearch_DateRangeEndExclusive(t *testing.T) {
	svc := newOrderService(t)
	seedOrders(t, svc)

	start := date(2024, 9, 1)
	end := date(2024, 10, 1)
	got, err := svc.Search(OrderFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, got, 2)
	// newest first
	assert.Equal(t, "마우스", got[0].ProductName)
	assert.Equal(t, "키보드", got[1].ProductName)
}

func TestOrderSearch_MediumSubstringAndFlags(t *testing.T) {
	svc := newOrderService(t)
	seedOrders(t, svc)

	got, err := svc.Search(OrderFilter{MediumName: "스토어"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "키보드", got[0].ProductName)

	matched := true
	got, err = svc.Search(OrderFilter{IsMediumMatched: &matched})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	unmatched := false
	got, err = svc.Search(OrderFilter{IsSettlementCompanyMatched: &unmatched})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestOrderSearch_QueryOverTextColumns(t *testing.T) {
	svc := newOrderService(t)
	seedOrders(t, svc)

	got, err := svc.Search(OrderFilter{SearchQuery: "모니터"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = svc.Search(OrderFilter{SearchQuery: "매입C"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "마우스", got[0].ProductName)
}

func TestOrderSearch_EmptyResult(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.Search(OrderFilter{})
	assert.ErrorIs(t, err, ErrNoRecordsFound)
}

func TestOrderExport_NoRecords(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.Export(OrderFilter{MediumName: "없는매체"})
	assert.ErrorIs(t, err, ErrNoRecordsFound)
}

func TestOrderExport_FilteredRows(t *testing.T) {
	svc := newOrderService(t)
	seedOrders(t, svc)

	out, err := svc.Export(OrderFilter{MediumName: "쿠팡"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("발주내역")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "쿠팡", rows[1][0])
	assert.Equal(t, "모니터", rows[1][2])
}

func TestOrderModify_FullReplacement(t *testing.T) {
	svc := newOrderService(t)
	seeded := seedOrders(t, svc)

	got, err := svc.Modify(seeded[0].ID, OrderInput{
		ProductName:   "키보드2",
		Quantity:      5,
		PurchasePlace: "매입A",
		SalesPlace:    "판매B",
		PurchasePrice: 1100,
		SalesPrice:    1700,
	})
	require.NoError(t, err)

	assert.Equal(t, seeded[0].ID, got.ID)
	assert.Equal(t, "키보드2", got.ProductName)
	// names were not supplied, so the flags drop with them
	assert.Empty(t, got.MediumName)
	assert.False(t, got.IsMediumMatched)
	assert.False(t, got.IsSettlementCompanyMatched)
	assert.Equal(t, int64(600), got.MarginAmount)

	_, err = svc.Modify(99999, OrderInput{ProductName: "x"})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestOrderDelete_SoftDeleteAuditVisible(t *testing.T) {
	svc := newOrderService(t)
	seeded := seedOrders(t, svc)

	require.NoError(t, svc.Delete(seeded[1].ID))

	got, err := svc.Search(OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.Search(OrderFilter{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	assert.ErrorIs(t, svc.Delete(seeded[1].ID), ErrRecordNotFound)
}
