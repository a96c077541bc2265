package excel

import (
	"bytes"
	"fmt"

	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"github.com/xuri/excelize/v2"
)

var orderExportHeaders = []string{
	"매체명", "정산업체명", "상품명", "수량", "발주일자", "매입처", "판매처",
	"매입가", "판매가", "매입배송비", "판매배송비", "과세여부", "마진금액", "배송차액",
}

// taxTypeText renders the stored tax type for the download sheet.
func taxTypeText(taxType string) string {
	if taxType == models.TaxTypeNonTaxable {
		return "면세"
	}
	return "과세"
}

// BuildOrderWorkbook renders orders into a single-sheet workbook and returns
// it as a byte buffer ready for download.
func BuildOrderWorkbook(orders []models.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "발주내역"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, h := range orderExportHeaders {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("header column: %w", err)
		}
		if err := f.SetCellValue(sheetName, col+"1", h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for idx, o := range orders {
		row := idx + 2

		dateStr := ""
		if !o.OrderDate.IsZero() {
			dateStr = o.OrderDate.Format("2006-01-02")
		}

		values := []interface{}{
			o.MediumName,
			o.SettlementCompanyName,
			o.ProductName,
			o.Quantity,
			dateStr,
			o.PurchasePlace,
			o.SalesPlace,
			o.PurchasePrice,
			o.SalesPrice,
			o.PurchaseShippingFee,
			o.SalesShippingFee,
			taxTypeText(o.TaxType),
			o.MarginAmount,
			o.ShippingDifference,
		}
		for i, v := range values {
			col, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, fmt.Errorf("data column: %w", err)
			}
			if err := f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	// column widths for readability
	_ = f.SetColWidth(sheetName, "A", "B", 14)
	_ = f.SetColWidth(sheetName, "C", "C", 30)
	_ = f.SetColWidth(sheetName, "D", "G", 12)
	_ = f.SetColWidth(sheetName, "H", "N", 12)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
