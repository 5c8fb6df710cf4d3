package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parvezislam45/inventory/internal/apierror"
	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/service"
)

type ShopHandler struct {
	svc      service.ShopService
	invoices service.InvoiceService
}

func NewShopHandler(svc service.ShopService, invoices service.InvoiceService) *ShopHandler {
	return &ShopHandler{svc: svc, invoices: invoices}
}

// Create godoc
// @Summary      Create shop
// @Description  Registers a shop with its two negotiated discount percentages.
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateShopRequest true "Shop"
// @Success      201  {object} model.Shop
// @Failure      409  {object} apierror.APIError
// @Router       /shops/ [post]
func (h *ShopHandler) Create(c *gin.Context) {
	var req dto.CreateShopRequest
	if !bindAndValidate(c, &req) {
		return
	}
	shop, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, shop)
}

// List godoc
// @Summary      List shops
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.Shop
// @Router       /shops/ [get]
func (h *ShopHandler) List(c *gin.Context) {
	shops, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, shops)
}

// Get godoc
// @Summary      Get shop
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Shop UUID"
// @Success      200 {object} model.Shop
// @Failure      404 {object} apierror.APIError
// @Router       /shops/{id}/ [get]
func (h *ShopHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	shop, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, shop)
}

// Update godoc
// @Summary      Update shop
// @Description  Partial update. Changing a discount affects only invoices created afterwards.
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                true "Shop UUID"
// @Param        body body dto.UpdateShopRequest true "Fields to change"
// @Success      200  {object} model.Shop
// @Failure      404  {object} apierror.APIError
// @Router       /shops/{id}/ [put]
func (h *ShopHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateShopRequest
	if !bindAndValidate(c, &req) {
		return
	}
	shop, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, shop)
}

// Delete godoc
// @Summary      Delete shop
// @Tags         shops
// @Security     BearerAuth
// @Param        id path string true "Shop UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /shops/{id}/ [delete]
func (h *ShopHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Invoices godoc
// @Summary      List a shop's invoices
// @Description  Returns the shop's invoices, optionally narrowed to those containing a brand's products and/or created on a date.
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  string true  "Shop UUID"
// @Param        brand_name query string false "Brand name"
// @Param        date       query string false "UTC date YYYY-MM-DD"
// @Success      200 {array} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /shops/{id}/invoices/ [get]
func (h *ShopHandler) Invoices(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var filter dto.ShopInvoiceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.invoices.ListByShop(c.Request.Context(), id, filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
