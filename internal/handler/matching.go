package handler

import (
	"net/http"

	"github.com/CammeCommerce/Backend-sub000/internal/models"
	"github.com/CammeCommerce/Backend-sub000/internal/service"
	"github.com/CammeCommerce/Backend-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

// MatchingHandler exposes the three matching-rule tables.
type MatchingHandler struct {
	Matching *service.MatchingService
}

func NewMatchingHandler(matching *service.MatchingService) *MatchingHandler {
	return &MatchingHandler{Matching: matching}
}

type orderMatchingReq struct {
	MediumName            string `json:"medium_name" binding:"max=64"`
	SettlementCompanyName string `json:"settlement_company_name" binding:"max=64"`
	PurchasePlace         string `json:"purchase_place" binding:"required,max=128"`
	SalesPlace            string `json:"sales_place" binding:"required,max=128"`
}

// CreateOrderMatching creates an order rule; a live rule with the same
// (purchase place, sales place) pair is a conflict.
func (h *MatchingHandler) CreateOrderMatching(c *gin.Context) {
	var req orderMatchingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	rule, err := h.Matching.CreateOrderMatching(models.OrderMatching{
		MediumName:            req.MediumName,
		SettlementCompanyName: req.SettlementCompanyName,
		PurchasePlace:         req.PurchasePlace,
		SalesPlace:            req.SalesPlace,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"matching": rule})
}

// ListOrderMatchings lists live order rules.
func (h *MatchingHandler) ListOrderMatchings(c *gin.Context) {
	rules, err := h.Matching.ListOrderMatchings()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"items": rules, "total": len(rules)})
}

// DeleteOrderMatching soft-deletes an order rule.
func (h *MatchingHandler) DeleteOrderMatching(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Matching.DeleteOrderMatching(id); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}

type accountMatchingReq struct {
	MediumName   string `json:"medium_name" binding:"required,max=64"`
	AccountAlias string `json:"account_alias" binding:"required,max=128"`
	Purpose      string `json:"purpose" binding:"required,max=128"`
}

// CreateDepositMatching creates a deposit rule; a live rule with the same
// (account alias, purpose) pair is a conflict.
func (h *MatchingHandler) CreateDepositMatching(c *gin.Context) {
	var req accountMatchingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	rule, err := h.Matching.CreateDepositMatching(models.DepositMatching{
		MediumName:   req.MediumName,
		AccountAlias: req.AccountAlias,
		Purpose:      req.Purpose,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"matching": rule})
}

// ListDepositMatchings lists live deposit rules.
func (h *MatchingHandler) ListDepositMatchings(c *gin.Context) {
	rules, err := h.Matching.ListDepositMatchings()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"items": rules, "total": len(rules)})
}

// DeleteDepositMatching soft-deletes a deposit rule.
func (h *MatchingHandler) DeleteDepositMatching(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Matching.DeleteDepositMatching(id); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}

// CreateWithdrawalMatching creates a withdrawal rule; a live rule with the
// same (account alias, purpose) pair is a conflict.
func (h *MatchingHandler) CreateWithdrawalMatching(c *gin.Context) {
	var req accountMatchingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	rule, err := h.Matching.CreateWithdrawalMatching(models.WithdrawalMatching{
		MediumName:   req.MediumName,
		AccountAlias: req.AccountAlias,
		Purpose:      req.Purpose,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"matching": rule})
}

// ListWithdrawalMatchings lists live withdrawal rules.
func (h *MatchingHandler) ListWithdrawalMatchings(c *gin.Context) {
	rules, err := h.Matching.ListWithdrawalMatchings()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"items": rules, "total": len(rules)})
}

// DeleteWithdrawalMatching soft-deletes a withdrawal rule.
func (h *MatchingHandler) DeleteWithdrawalMatching(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Matching.DeleteWithdrawalMatching(id); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}
