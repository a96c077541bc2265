package handler

import (
	"net/http"

	"github.com/CammeCommerce/Backend-sub000/internal/models"
	"github.com/CammeCommerce/Backend-sub000/internal/service"
	"github.com/CammeCommerce/Backend-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

// OnlineHandler exposes the manually entered online sales/purchase rows.
type OnlineHandler struct {
	Online *service.OnlineService
}

func NewOnlineHandler(online *service.OnlineService) *OnlineHandler {
	return &OnlineHandler{Online: online}
}

type onlineReq struct {
	SalesMonth        string `json:"sales_month" binding:"required"`
	MediumName        string `json:"medium_name" binding:"required,max=64"`
	OnlineCompanyName string `json:"online_company_name" binding:"max=128"`
	SalesAmount       int64  `json:"sales_amount"`
	PurchaseAmount    int64  `json:"purchase_amount"`
	MarginAmount      *int64 `json:"margin_amount"`
	Memo              string `json:"memo" binding:"max=255"`
}

func (r *onlineReq) toInput() (service.OnlineInput, error) {
	if err := util.ValidateMonth(r.SalesMonth); err != nil {
		return service.OnlineInput{}, err
	}
	return service.OnlineInput{
		SalesMonth:        r.SalesMonth,
		MediumName:        r.MediumName,
		OnlineCompanyName: r.OnlineCompanyName,
		SalesAmount:       r.SalesAmount,
		PurchaseAmount:    r.PurchaseAmount,
		MarginAmount:      r.MarginAmount,
		Memo:              r.Memo,
	}, nil
}

type onlineResp struct {
	ID                uint   `json:"id"`
	SalesMonth        string `json:"sales_month"`
	MediumName        string `json:"medium_name"`
	OnlineCompanyName string `json:"online_company_name"`
	SalesAmount       int64  `json:"sales_amount"`
	PurchaseAmount    int64  `json:"purchase_amount"`
	MarginAmount      int64  `json:"margin_amount"`
	Memo              string `json:"memo"`
}

func toOnlineResp(o *models.Online) onlineResp {
	return onlineResp{
		ID:                o.ID,
		SalesMonth:        o.SalesMonth,
		MediumName:        o.MediumName,
		OnlineCompanyName: o.OnlineCompanyName,
		SalesAmount:       o.SalesAmount,
		PurchaseAmount:    o.PurchaseAmount,
		MarginAmount:      o.MarginAmount,
		Memo:              o.Memo,
	}
}

// CreateOnline creates a single online row.
func (h *OnlineHandler) CreateOnline(c *gin.Context) {
	var req onlineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	row, err := h.Online.Create(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"online": toOnlineResp(row)})
}

// ListOnline searches online rows.
func (h *OnlineHandler) ListOnline(c *gin.Context) {
	f := service.OnlineFilter{
		SalesMonth:     c.Query("sales_month"),
		MediumName:     c.Query("medium_name"),
		SearchQuery:    c.Query("q"),
		IncludeDeleted: c.Query("include_deleted") == "true",
	}
	if f.SalesMonth != "" {
		if err := util.ValidateMonth(f.SalesMonth); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
	}

	rows, err := h.Online.Search(f)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]onlineResp, 0, len(rows))
	for i := range rows {
		items = append(items, toOnlineResp(&rows[i]))
	}
	util.Success(c, util.Response{"items": items, "total": len(items)})
}

// ModifyOnline replaces all fields of an online row.
func (h *OnlineHandler) ModifyOnline(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req onlineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	row, err := h.Online.Modify(id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"online": toOnlineResp(row)})
}

// DeleteOnline soft-deletes an online row.
func (h *OnlineHandler) DeleteOnline(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Online.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}
