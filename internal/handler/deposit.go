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

// DepositHandler exposes deposit creation, search, modification and deletion.
type DepositHandler struct {
	Deposits *service.DepositService
}

func NewDepositHandler(deposits *service.DepositService) *DepositHandler {
	return &DepositHandler{Deposits: deposits}
}

type depositReq struct {
	MediumName         string `json:"medium_name" binding:"max=64"`
	DepositDate        string `json:"deposit_date" binding:"required"`
	AccountAlias       string `json:"account_alias" binding:"required,max=128"`
	DepositAmount      int64  `json:"deposit_amount"`
	AccountDescription string `json:"account_description" binding:"max=255"`
	TransactionMethod1 string `json:"transaction_method1" binding:"max=64"`
	TransactionMethod2 string `json:"transaction_method2" binding:"max=64"`
	AccountMemo        string `json:"account_memo" binding:"max=255"`
	CounterpartyName   string `json:"counterparty_name" binding:"max=128"`
	Purpose            string `json:"purpose" binding:"max=128"`
	ClientName         string `json:"client_name" binding:"max=128"`
}

func (r *depositReq) toInput() (service.DepositInput, error) {
	t, err := time.Parse("2006-01-02", r.DepositDate)
	if err != nil {
		return service.DepositInput{}, fmt.Errorf("deposit_date must be YYYY-MM-DD")
	}
	return service.DepositInput{
		MediumName:         r.MediumName,
		DepositDate:        t,
		AccountAlias:       r.AccountAlias,
		DepositAmount:      r.DepositAmount,
		AccountDescription: r.AccountDescription,
		TransactionMethod1: r.TransactionMethod1,
		TransactionMethod2: r.TransactionMethod2,
		AccountMemo:        r.AccountMemo,
		CounterpartyName:   r.CounterpartyName,
		Purpose:            r.Purpose,
		ClientName:         r.ClientName,
	}, nil
}

type depositResp struct {
	ID                 uint   `json:"id"`
	MediumName         string `json:"medium_name"`
	DepositDate        string `json:"deposit_date"`
	AccountAlias       string `json:"account_alias"`
	DepositAmount      int64  `json:"deposit_amount"`
	AccountDescription string `json:"account_description"`
	TransactionMethod1 string `json:"transaction_method1"`
	TransactionMethod2 string `json:"transaction_method2"`
	AccountMemo        string `json:"account_memo"`
	CounterpartyName   string `json:"counterparty_name"`
	Purpose            string `json:"purpose"`
	ClientName         string `json:"client_name"`
	IsMediumMatched    bool   `json:"is_medium_matched"`
}

func toDepositResp(d *models.Deposit) depositResp {
	dateStr := ""
	if !d.DepositDate.IsZero() {
		dateStr = d.DepositDate.Format("2006-01-02")
	}
	return depositResp{
		ID:                 d.ID,
		MediumName:         d.MediumName,
		DepositDate:        dateStr,
		AccountAlias:       d.AccountAlias,
		DepositAmount:      d.DepositAmount,
		AccountDescription: d.AccountDescription,
		TransactionMethod1: d.TransactionMethod1,
		TransactionMethod2: d.TransactionMethod2,
		AccountMemo:        d.AccountMemo,
		CounterpartyName:   d.CounterpartyName,
		Purpose:            d.Purpose,
		ClientName:         d.ClientName,
		IsMediumMatched:    d.IsMediumMatched,
	}
}

// CreateDeposit creates a single deposit; matching runs against the rule
// tables.
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	var req depositReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	deposit, err := h.Deposits.Create(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"deposit": toDepositResp(deposit)})
}

// ListDeposits searches deposits.
func (h *DepositHandler) ListDeposits(c *gin.Context) {
	var f service.DepositFilter
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

	deposits, err := h.Deposits.Search(f)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]depositResp, 0, len(deposits))
	for i := range deposits {
		items = append(items, toDepositResp(&deposits[i]))
	}
	util.Success(c, util.Response{"items": items, "total": len(items)})
}

// ModifyDeposit replaces all fields of a deposit.
func (h *DepositHandler) ModifyDeposit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req depositReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	deposit, err := h.Deposits.Modify(id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"deposit": toDepositResp(deposit)})
}

// DeleteDeposit soft-deletes a deposit.
func (h *DepositHandler) DeleteDeposit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Deposits.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}
