package handler

import (
	"net/http"

	"github.com/CammeCommerce/Backend-sub000/internal/models"
	"github.com/CammeCommerce/Backend-sub000/internal/service"
	"github.com/CammeCommerce/Backend-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

// UploadHandler is the generic excel-upload workflow: the saved column
// mapping drives a strict parse (any non-numeric numeric cell rejects the
// whole file), then all rows land in one transaction.
type UploadHandler struct {
	Orders       *service.OrderService
	Deposits     *service.DepositService
	Withdrawals  *service.WithdrawalService
	ColumnConfig *service.ColumnConfigService
	MaxUpload    int64
}

func NewUploadHandler(
	orders *service.OrderService,
	deposits *service.DepositService,
	withdrawals *service.WithdrawalService,
	columnConfig *service.ColumnConfigService,
	maxUpload int64,
) *UploadHandler {
	return &UploadHandler{
		Orders:       orders,
		Deposits:     deposits,
		Withdrawals:  withdrawals,
		ColumnConfig: columnConfig,
		MaxUpload:    maxUpload,
	}
}

// UploadOrders strictly ingests an order workbook.
func (h *UploadHandler) UploadOrders(c *gin.Context) {
	fileBytes, ok := uploadBytes(c, h.MaxUpload)
	if !ok {
		return
	}
	cfg, err := h.ColumnConfig.GetOrderColumnIndex()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	saved, err := h.Orders.ImportStrict(fileBytes, service.OrderMappingFromConfig(cfg))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"imported": saved})
}

// UploadDeposits strictly ingests a deposit workbook.
func (h *UploadHandler) UploadDeposits(c *gin.Context) {
	fileBytes, ok := uploadBytes(c, h.MaxUpload)
	if !ok {
		return
	}
	cfg, err := h.ColumnConfig.GetDepositColumnIndex()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	saved, err := h.Deposits.ImportStrict(fileBytes, service.DepositMappingFromConfig(cfg))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"imported": saved})
}

// UploadWithdrawals strictly ingests a withdrawal workbook.
func (h *UploadHandler) UploadWithdrawals(c *gin.Context) {
	fileBytes, ok := uploadBytes(c, h.MaxUpload)
	if !ok {
		return
	}
	cfg, err := h.ColumnConfig.GetWithdrawalColumnIndex()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	saved, err := h.Withdrawals.ImportStrict(fileBytes, service.WithdrawalMappingFromConfig(cfg))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"imported": saved})
}

// Column mapping configuration endpoints. Letters are validated before the
// mapping is saved; fields absent from the uploaded sheets stay empty.

type orderColumnReq struct {
	ProductName         string `json:"product_name"`
	Quantity            string `json:"quantity"`
	OrderDate           string `json:"order_date"`
	PurchasePlace       string `json:"purchase_place"`
	SalesPlace          string `json:"sales_place"`
	PurchasePrice       string `json:"purchase_price"`
	SalesPrice          string `json:"sales_price"`
	PurchaseShippingFee string `json:"purchase_shipping_fee"`
	SalesShippingFee    string `json:"sales_shipping_fee"`
	TaxType             string `json:"tax_type"`
	MarginAmount        string `json:"margin_amount"`
	ShippingDifference  string `json:"shipping_difference"`
}

// SaveOrderColumns stores the active order column mapping.
func (h *UploadHandler) SaveOrderColumns(c *gin.Context) {
	var req orderColumnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	cfg, err := h.ColumnConfig.SaveOrderColumnIndex(models.OrderColumnIndex{
		ProductName:         req.ProductName,
		Quantity:            req.Quantity,
		OrderDate:           req.OrderDate,
		PurchasePlace:       req.PurchasePlace,
		SalesPlace:          req.SalesPlace,
		PurchasePrice:       req.PurchasePrice,
		SalesPrice:          req.SalesPrice,
		PurchaseShippingFee: req.PurchaseShippingFee,
		SalesShippingFee:    req.SalesShippingFee,
		TaxType:             req.TaxType,
		MarginAmount:        req.MarginAmount,
		ShippingDifference:  req.ShippingDifference,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"columns": cfg})
}

// GetOrderColumns returns the active order column mapping.
func (h *UploadHandler) GetOrderColumns(c *gin.Context) {
	cfg, err := h.ColumnConfig.GetOrderColumnIndex()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"columns": cfg})
}

type depositColumnReq struct {
	DepositDate        string `json:"deposit_date"`
	AccountAlias       string `json:"account_alias"`
	DepositAmount      string `json:"deposit_amount"`
	AccountDescription string `json:"account_description"`
	TransactionMethod1 string `json:"transaction_method1"`
	TransactionMethod2 string `json:"transaction_method2"`
	AccountMemo        string `json:"account_memo"`
	CounterpartyName   string `json:"counterparty_name"`
	Purpose            string `json:"purpose"`
	ClientName         string `json:"client_name"`
}

// SaveDepositColumns stores the active deposit column mapping.
func (h *UploadHandler) SaveDepositColumns(c *gin.Context) {
	var req depositColumnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	cfg, err := h.ColumnConfig.SaveDepositColumnIndex(models.DepositColumnIndex{
		DepositDate:        req.DepositDate,
		AccountAlias:       req.AccountAlias,
		DepositAmount:      req.DepositAmount,
		AccountDescription: req.AccountDescription,
		TransactionMethod1: req.TransactionMethod1,
		TransactionMethod2: req.TransactionMethod2,
		AccountMemo:        req.AccountMemo,
		CounterpartyName:   req.CounterpartyName,
		Purpose:            req.Purpose,
		ClientName:         req.ClientName,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"columns": cfg})
}

// GetDepositColumns returns the active deposit column mapping.
func (h *UploadHandler) GetDepositColumns(c *gin.Context) {
	cfg, err := h.ColumnConfig.GetDepositColumnIndex()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"columns": cfg})
}

type withdrawalColumnReq struct {
	WithdrawalDate     string `json:"withdrawal_date"`
	AccountAlias       string `json:"account_alias"`
	WithdrawalAmount   string `json:"withdrawal_amount"`
	AccountDescription string `json:"account_description"`
	TransactionMethod1 string `json:"transaction_method1"`
	TransactionMethod2 string `json:"transaction_method2"`
	AccountMemo        string `json:"account_memo"`
	Purpose            string `json:"purpose"`
	ClientName         string `json:"client_name"`
}

// SaveWithdrawalColumns stores the active withdrawal column mapping.
func (h *UploadHandler) SaveWithdrawalColumns(c *gin.Context) {
	var req withdrawalColumnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	cfg, err := h.ColumnConfig.SaveWithdrawalColumnIndex(models.WithdrawalColumnIndex{
		WithdrawalDate:     req.WithdrawalDate,
		AccountAlias:       req.AccountAlias,
		WithdrawalAmount:   req.WithdrawalAmount,
		AccountDescription: req.AccountDescription,
		TransactionMethod1: req.TransactionMethod1,
		TransactionMethod2: req.TransactionMethod2,
		AccountMemo:        req.AccountMemo,
		Purpose:            req.Purpose,
		ClientName:         req.ClientName,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"columns": cfg})
}

// GetWithdrawalColumns returns the active withdrawal column mapping.
func (h *UploadHandler) GetWithdrawalColumns(c *gin.Context) {
	cfg, err := h.ColumnConfig.GetWithdrawalColumnIndex()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"columns": cfg})
}
