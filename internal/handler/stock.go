package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parvezislam45/inventory/internal/service"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler { return &StockHandler{svc: svc} }

// Daily godoc
// @Summary      Daily stock summary
// @Description  All stock events recorded on the given UTC day plus the grand total of their values. Served from Redis when fresh.
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        date path string true "UTC date YYYY-MM-DD"
// @Success      200 {object} dto.DailySummaryResponse
// @Failure      422 {object} apierror.APIError
// @Router       /stock/daily/{date}/ [get]
func (h *StockHandler) Daily(c *gin.Context) {
	resp, err := h.svc.DailySummary(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History godoc
// @Summary      Full stock history
// @Description  The complete event ledger grouped by UTC date, newest date first.
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.StockHistoryGroup
// @Router       /stock-history/ [get]
func (h *StockHandler) History(c *gin.Context) {
	resp, err := h.svc.History(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BrandSummary godoc
// @Summary      Stock value by brand
// @Description  Current total units and inventory value per brand, computed from products rather than the event ledger.
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.BrandStockSummary
// @Router       /products/brand-summary/ [get]
func (h *StockHandler) BrandSummary(c *gin.Context) {
	resp, err := h.svc.BrandSummary(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
