package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/parvezislam45/inventory/internal/apierror"
	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/service"
)

type ProductHandler struct {
	svc   service.ProductService
	stock service.StockService
}

func NewProductHandler(svc service.ProductService, stock service.StockService) *ProductHandler {
	return &ProductHandler{svc: svc, stock: stock}
}

// Create godoc
// @Summary      Create product
// @Description  Creates a product with its opening stock level. Subsequent stock changes go through the restock ledger.
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateProductRequest true "Product"
// @Success      201  {object} dto.ProductResponse
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /product/ [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      List products
// @Description  Returns available products filtered by search text, category and brand.
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        search   query string false "Name substring"
// @Param        category query string false "Category UUID"
// @Param        brand    query string false "Brand UUID"
// @Param        page     query int    false "Page (default 1)"
// @Param        limit    query int    false "Page size (default 50)"
// @Success      200 {array} dto.ProductResponse
// @Router       /product/ [get]
func (h *ProductHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	// Pagination metadata travels in a header; the body stays a bare array.
	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product UUID"
// @Success      200 {object} dto.ProductResponse
// @Failure      404 {object} apierror.APIError
// @Router       /product/{id}/ [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Update product
// @Description  Partial update. Stock is not updatable here — use the restock ledger.
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                   true "Product UUID"
// @Param        body body dto.UpdateProductRequest true "Fields to change"
// @Success      200  {object} dto.ProductResponse
// @Failure      404  {object} apierror.APIError
// @Router       /product/{id}/ [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Delete product
// @Tags         products
// @Security     BearerAuth
// @Param        id path string true "Product UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /product/{id}/ [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
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

// Restock godoc
// @Summary      Append a stock event
// @Description  Records a stock delta for the product and moves its current stock accordingly. Negative deltas are corrections; the resulting stock can never go below zero.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string             true "Product UUID"
// @Param        body body dto.RestockRequest true "Stock delta"
// @Success      201  {object} dto.StockEventResponse
// @Failure      404  {object} apierror.APIError
// @Failure      422  {object} apierror.APIError
// @Router       /product/{id}/restock/ [post]
func (h *ProductHandler) Restock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.RestockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.stock.AppendEvent(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
