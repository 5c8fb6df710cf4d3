package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/service"
)

type InvoiceHandler struct{ svc service.InvoiceService }

func NewInvoiceHandler(svc service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// Create godoc
// @Summary      Create invoice
// @Description  Prices the requested lines against the shop's discount and persists the invoice atomically. Product stock is untouched.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateInvoiceRequest true "Shop, discount type and line items"
// @Success      201  {object} dto.InvoiceResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /invoice/create/ [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
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
// @Summary      List invoices
// @Description  Returns all invoices, newest first, with nested shop and items.
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.InvoiceResponse
// @Router       /invoices/ [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /invoices/{id}/ [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
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

// Delete godoc
// @Summary      Delete invoice
// @Description  Removes the invoice and its items. Does not restore product stock.
// @Tags         invoices
// @Security     BearerAuth
// @Param        id path string true "Invoice UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /invoices/{id}/ [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
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

// MarkDelivered godoc
// @Summary      Mark invoice delivered
// @Description  One-way transition. Calling it again returns the current state unchanged.
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /invoices/{id}/deliver/ [post]
func (h *InvoiceHandler) MarkDelivered(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.MarkDelivered(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListDelivered godoc
// @Summary      List delivered invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.InvoiceResponse
// @Router       /invoices/delivered/ [get]
func (h *InvoiceHandler) ListDelivered(c *gin.Context) {
	resp, err := h.svc.ListDelivered(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteDelivered godoc
// @Summary      Delete a delivered invoice
// @Description  Only invoices already marked delivered can be deleted through this endpoint.
// @Tags         invoices
// @Security     BearerAuth
// @Param        id path string true "Invoice UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Failure      422 {object} apierror.APIError
// @Router       /invoices/delivered/{id}/ [delete]
func (h *InvoiceHandler) DeleteDelivered(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteDelivered(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateItem godoc
// @Summary      Change a line item's quantity
// @Description  Re-prices the line with the invoice's frozen discount percent and recomputes invoice totals. Rejected on delivered invoices.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                     true "Order item UUID"
// @Param        body body dto.UpdateOrderItemRequest true "New quantity"
// @Success      200  {object} dto.InvoiceResponse
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /order-items/{id}/update/ [put]
func (h *InvoiceHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateOrderItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateItemQuantity(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RemoveItem godoc
// @Summary      Remove a line item
// @Description  Deletes the line and recomputes invoice totals from the remaining items. Does not restore product stock.
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Order item UUID"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Failure      409 {object} apierror.APIError
// @Router       /order-items/{id}/remove/ [delete]
func (h *InvoiceHandler) RemoveItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.RemoveItem(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
