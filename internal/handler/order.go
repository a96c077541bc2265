package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/CammeCommerce/Backend-sub000/internal/models"
	"github.com/CammeCommerce/Backend-sub000/internal/service"
	"github.com/CammeCommerce/Backend-sub000/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler exposes order creation, spreadsheet import, search, export,
// modification and deletion.
type OrderHandler struct {
	Orders       *service.OrderService
	ColumnConfig *service.ColumnConfigService
	MaxUpload    int64
}

func NewOrderHandler(orders *service.OrderService, columnConfig *service.ColumnConfigService, maxUpload int64) *OrderHandler {
	return &OrderHandler{Orders: orders, ColumnConfig: columnConfig, MaxUpload: maxUpload}
}

type orderReq struct {
	MediumName            string `json:"medium_name" binding:"max=64"`
	SettlementCompanyName string `json:"settlement_company_name" binding:"max=64"`
	ProductName           string `json:"product_name" binding:"required,max=255"`
	Quantity              int64  `json:"quantity" binding:"required"`
	OrderDate             string `json:"order_date"`
	PurchasePlace         string `json:"purchase_place" binding:"max=128"`
	SalesPlace            string `json:"sales_place" binding:"max=128"`
	PurchasePrice         int64  `json:"purchase_price"`
	SalesPrice            int64  `json:"sales_price"`
	PurchaseShippingFee   int64  `json:"purchase_shipping_fee"`
	SalesShippingFee      int64  `json:"sales_shipping_fee"`
	TaxType               string `json:"tax_type" binding:"omitempty,oneof=TAXABLE NON_TAXABLE"`
	MarginAmount          *int64 `json:"margin_amount"`
	ShippingDifference    *int64 `json:"shipping_difference"`
}

func (r *orderReq) toInput() (service.OrderInput, error) {
	var orderDate time.Time
	if r.OrderDate != "" {
		t, err := time.Parse("2006-01-02", r.OrderDate)
		if err != nil {
			return service.OrderInput{}, fmt.Errorf("order_date must be YYYY-MM-DD")
		}
		orderDate = t
	}
	return service.OrderInput{
		MediumName:            r.MediumName,
		SettlementCompanyName: r.SettlementCompanyName,
		ProductName:           r.ProductName,
		Quantity:              r.Quantity,
		OrderDate:             orderDate,
		PurchasePlace:         r.PurchasePlace,
		SalesPlace:            r.SalesPlace,
		PurchasePrice:         r.PurchasePrice,
		SalesPrice:            r.SalesPrice,
		PurchaseShippingFee:   r.PurchaseShippingFee,
		SalesShippingFee:      r.SalesShippingFee,
		TaxType:               r.TaxType,
		MarginAmount:          r.MarginAmount,
		ShippingDifference:    r.ShippingDifference,
	}, nil
}

type orderResp struct {
	ID                         uint   `json:"id"`
	MediumName                 string `json:"medium_name"`
	SettlementCompanyName      string `json:"settlement_company_name"`
	ProductName                string `json:"product_name"`
	Quantity                   int64  `json:"quantity"`
	OrderDate                  string `json:"order_date"`
	PurchasePlace              string `json:"purchase_place"`
	SalesPlace                 string `json:"sales_place"`
	PurchasePrice              int64  `json:"purchase_price"`
	SalesPrice                 int64  `json:"sales_price"`
	PurchaseShippingFee        int64  `json:"purchase_shipping_fee"`
	SalesShippingFee           int64  `json:"sales_shipping_fee"`
	TaxType                    string `json:"tax_type"`
	MarginAmount               int64  `json:"margin_amount"`
	ShippingDifference         int64  `json:"shipping_difference"`
	IsMediumMatched            bool   `json:"is_medium_matched"`
	IsSettlementCompanyMatched bool   `json:"is_settlement_company_matched"`
}

func toOrderResp(o *models.Order) orderResp {
	dateStr := ""
	if !o.OrderDate.IsZero() {
		dateStr = o.OrderDate.Format("2006-01-02")
	}
	return orderResp{
		ID:                         o.ID,
		MediumName:                 o.MediumName,
		SettlementCompanyName:      o.SettlementCompanyName,
		ProductName:                o.ProductName,
		Quantity:                   o.Quantity,
		OrderDate:                  dateStr,
		PurchasePlace:              o.PurchasePlace,
		SalesPlace:                 o.SalesPlace,
		PurchasePrice:              o.PurchasePrice,
		SalesPrice:                 o.SalesPrice,
		PurchaseShippingFee:        o.PurchaseShippingFee,
		SalesShippingFee:           o.SalesShippingFee,
		TaxType:                    o.TaxType,
		MarginAmount:               o.MarginAmount,
		ShippingDifference:         o.ShippingDifference,
		IsMediumMatched:            o.IsMediumMatched,
		IsSettlementCompanyMatched: o.IsSettlementCompanyMatched,
	}
}

// CreateOrder creates a single order; matching runs against the rule tables.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req orderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	order, err := h.Orders.Create(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"order": toOrderResp(order)})
}

// ImportOrders ingests an uploaded workbook through the lenient path: bad
// numeric cells become 0 and rows are saved one at a time. The column
// mapping is the saved order configuration.
func (h *OrderHandler) ImportOrders(c *gin.Context) {
	fileBytes, ok := uploadBytes(c, h.MaxUpload)
	if !ok {
		return
	}

	cfg, err := h.ColumnConfig.GetOrderColumnIndex()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	saved, err := h.Orders.ImportLenient(fileBytes, service.OrderMappingFromConfig(cfg))
	if err != nil {
		// partial import is possible on this path; report what landed
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
			fmt.Sprintf("import failed after %d rows: %v", saved, err))
		return
	}
	util.Success(c, util.Response{"imported": saved})
}

func (h *OrderHandler) buildFilter(c *gin.Context) (service.OrderFilter, bool) {
	var f service.OrderFilter
	var ok bool

	if f.StartDate, ok = dateQuery(c, "start"); !ok {
		return f, false
	}
	if f.EndDate, ok = dateQuery(c, "end"); !ok {
		return f, false
	}
	if f.EndDate != nil {
		// end date is inclusive: < end+1 day
		end := f.EndDate.Add(24 * time.Hour)
		f.EndDate = &end
	}
	if f.IsMediumMatched, ok = boolQuery(c, "is_medium_matched"); !ok {
		return f, false
	}
	if f.IsSettlementCompanyMatched, ok = boolQuery(c, "is_settlement_company_matched"); !ok {
		return f, false
	}
	f.MediumName = c.Query("medium_name")
	f.SettlementCompanyName = c.Query("settlement_company_name")
	f.SearchQuery = c.Query("q")
	f.IncludeDeleted = c.Query("include_deleted") == "true"
	return f, true
}

// ListOrders searches orders with the shared filter predicate.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	f, ok := h.buildFilter(c)
	if !ok {
		return
	}

	orders, err := h.Orders.Search(f)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]orderResp, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderResp(&orders[i]))
	}
	util.Success(c, util.Response{"items": items, "total": len(items)})
}

// ExportOrders streams the filtered order set as an xlsx download.
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	f, ok := h.buildFilter(c)
	if !ok {
		return
	}

	workbook, err := h.Orders.Export(f)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("orders_%s_%s.xlsx",
		time.Now().Format("20060102"), uuid.NewString()[:8])
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

// ModifyOrder replaces all fields of an order.
func (h *OrderHandler) ModifyOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req orderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	order, err := h.Orders.Modify(id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"order": toOrderResp(order)})
}

// DeleteOrder soft-deletes an order.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Orders.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}
