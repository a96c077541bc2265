package handler

import (
	"net/http"

	"github.com/CammeCommerce/Backend-sub000/internal/service"
	"github.com/CammeCommerce/Backend-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

// ProfitLossHandler exposes the period profit-and-loss report.
type ProfitLossHandler struct {
	ProfitLoss *service.ProfitLossService
}

func NewProfitLossHandler(profitLoss *service.ProfitLossService) *ProfitLossHandler {
	return &ProfitLossHandler{ProfitLoss: profitLoss}
}

// GetProfitLoss returns the report for one medium over a month window.
// Query: start_month, end_month (YYYY-MM), medium_name.
func (h *ProfitLossHandler) GetProfitLoss(c *gin.Context) {
	startMonth := c.Query("start_month")
	endMonth := c.Query("end_month")
	mediumName := c.Query("medium_name")

	if err := util.ValidateMonth(startMonth); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "start_month must be YYYY-MM")
		return
	}
	if err := util.ValidateMonth(endMonth); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "end_month must be YYYY-MM")
		return
	}
	if mediumName == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "medium_name is required")
		return
	}

	report, err := h.ProfitLoss.GetProfitLoss(startMonth, endMonth, mediumName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"report": report})
}
