package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/CammeCommerce/Backend-sub000/internal/models"
	"github.com/CammeCommerce/Backend-sub000/internal/service"
	"github.com/CammeCommerce/Backend-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

// WithdrawalHandler exposes withdrawal creation, search, modification and
// deletion.
type WithdrawalHandler struct {
	Withdrawals *service.WithdrawalService
}

func NewWithdrawalHandler(withdrawals *service.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{Withdrawals: withdrawals}
}

type withdrawalReq struct {
	MediumName         string `json:"medium_name" binding:"max=64"`
	WithdrawalDate     string `json:"withdrawal_date" binding:"required"`
	AccountAlias       string `json:"account_alias" binding:"required,max=128"`
	WithdrawalAmount   int64  `json:"withdrawal_amount"`
	AccountDescription string `json:"account_description" binding:"max=255"`
	TransactionMethod1 string `json:"transaction_method1" binding:"max=64"`
	TransactionMethod2 string `json:"transaction_method2" binding:"max=64"`
	AccountMemo        string `json:"account_memo" binding:"max=255"`
	Purpose            string `json:"purpose" binding:"max=128"`
	ClientName         string `json:"client_name" binding:"max=128"`
}

func (r *withdrawalReq) toInput() (service.WithdrawalInput, error) {
	t, err := time.Parse("2006-01-02", r.WithdrawalDate)
	if err != nil {
		return service.WithdrawalInput{}, fmt.Errorf("withdrawal_date must be YYYY-MM-DD")
	}
	return service.WithdrawalInput{
		MediumName:         r.MediumName,
		WithdrawalDate:     t,
		AccountAlias:       r.AccountAlias,
		WithdrawalAmount:   r.WithdrawalAmount,
		AccountDescription: r.AccountDescription,
		TransactionMethod1: r.TransactionMethod1,
		TransactionMethod2: r.TransactionMethod2,
		AccountMemo:        r.AccountMemo,
		Purpose:            r.Purpose,
		ClientName:         r.ClientName,
	}, nil
}

type withdrawalResp struct {
	ID                 uint   `json:"id"`
	MediumName         string `json:"medium_name"`
	WithdrawalDate     string `json:"withdrawal_date"`
	AccountAlias       string `json:"account_alias"`
	WithdrawalAmount   int64  `json:"withdrawal_amount"`
	AccountDescription string `json:"account_description"`
	TransactionMethod1 string `json:"transaction_method1"`
	TransactionMethod2 string `json:"transaction_method2"`
	AccountMemo        string `json:"account_memo"`
	Purpose            string `json:"purpose"`
	ClientName         string `json:"client_name"`
	IsMediumMatched    bool   `json:"is_medium_matched"`
}

func toWithdrawalResp(w *models.Withdrawal) withdrawalResp {
	dateStr := ""
	if !w.WithdrawalDate.IsZero() {
		dateStr = w.WithdrawalDate.Format("2006-01-02")
	}
	return withdrawalResp{
		ID:                 w.ID,
		MediumName:         w.MediumName,
		WithdrawalDate:     dateStr,
		AccountAlias:       w.AccountAlias,
		WithdrawalAmount:   w.WithdrawalAmount,
		AccountDescription: w.AccountDescription,
		TransactionMethod1: w.TransactionMethod1,
		TransactionMethod2: w.TransactionMethod2,
		AccountMemo:        w.AccountMemo,
		Purpose:            w.Purpose,
		ClientName:         w.ClientName,
		IsMediumMatched:    w.IsMediumMatched,
	}
}

// CreateWithdrawal creates a single withdrawal; matching runs against the
// rule tables.
func (h *WithdrawalHandler) CreateWithdrawal(c *gin.Context) {
	var req withdrawalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	withdrawal, err := h.Withdrawals.Create(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"withdrawal": toWithdrawalResp(withdrawal)})
}

// ListWithdrawals searches withdrawals.
func (h *WithdrawalHandler) ListWithdrawals(c *gin.Context) {
	var f service.WithdrawalFilter
	var ok bool

	if f.StartDate, ok = dateQuery(c, "start"); !ok {
		return
	}
	if f.EndDate, ok = dateQuery(c, "end"); !ok {
		return
	}
	if f.EndDate != nil {
		end := f.EndDate.Add(24 * time.Hour)
		f.EndDate = &end
	}
	if f.IsMediumMatched, ok = boolQuery(c, "is_medium_matched"); !ok {
		return
	}
	f.MediumName = c.Query("medium_name")
	f.SearchQuery = c.Query("q")
	f.IncludeDeleted = c.Query("include_deleted") == "true"

	withdrawals, err := h.Withdrawals.Search(f)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]withdrawalResp, 0, len(withdrawals))
	for i := range withdrawals {
		items = append(items, toWithdrawalResp(&withdrawals[i]))
	}
	util.Success(c, util.Response{"items": items, "total": len(items)})
}

// ModifyWithdrawal replaces all fields of a withdrawal.
func (h *WithdrawalHandler) ModifyWithdrawal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req withdrawalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	withdrawal, err := h.Withdrawals.Modify(id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"withdrawal": toWithdrawalResp(withdrawal)})
}

// DeleteWithdrawal soft-deletes a withdrawal.
func (h *WithdrawalHandler) DeleteWithdrawal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Withdrawals.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}
