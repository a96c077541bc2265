package handler

import (
	"net/http"
	"strings"

	"github.com/CammeCommerce/Backend-sub000/internal/service"
	"github.com/CammeCommerce/Backend-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler exposes the medium and settlement-company tables.
type ReferenceHandler struct {
	Reference *service.ReferenceService
}

func NewReferenceHandler(reference *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{Reference: reference}
}

type nameReq struct {
	Name string `json:"name" binding:"required,max=64"`
}

// CreateMedium adds a sales channel.
func (h *ReferenceHandler) CreateMedium(c *gin.Context) {
	var req nameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "name is required")
		return
	}
	m, err := h.Reference.CreateMedium(strings.TrimSpace(req.Name))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"medium": m})
}

// ListMediums lists live mediums.
func (h *ReferenceHandler) ListMediums(c *gin.Context) {
	mediums, err := h.Reference.ListMediums()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"items": mediums, "total": len(mediums)})
}

// RenameMedium renames a medium; historical matched rows keep the old name.
func (h *ReferenceHandler) RenameMedium(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req nameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "name is required")
		return
	}
	m, err := h.Reference.RenameMedium(id, strings.TrimSpace(req.Name))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"medium": m})
}

// DeleteMedium soft-deletes a medium.
func (h *ReferenceHandler) DeleteMedium(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Reference.DeleteMedium(id); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}

// CreateSettlementCompany adds a settlement company.
func (h *ReferenceHandler) CreateSettlementCompany(c *gin.Context) {
	var req nameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "name is required")
		return
	}
	sc, err := h.Reference.CreateSettlementCompany(strings.TrimSpace(req.Name))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"settlement_company": sc})
}

// ListSettlementCompanies lists live settlement companies.
func (h *ReferenceHandler) ListSettlementCompanies(c *gin.Context) {
	companies, err := h.Reference.ListSettlementCompanies()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"items": companies, "total": len(companies)})
}

// RenameSettlementCompany renames a settlement company.
func (h *ReferenceHandler) RenameSettlementCompany(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req nameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "name is required")
		return
	}
	sc, err := h.Reference.RenameSettlementCompany(id, strings.TrimSpace(req.Name))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"settlement_company": sc})
}

// DeleteSettlementCompany soft-deletes a settlement company.
func (h *ReferenceHandler) DeleteSettlementCompany(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Reference.DeleteSettlementCompany(id); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}
