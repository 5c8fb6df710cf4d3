package dto

import (
	"github.com/parvezislam45/inventory/internal/model"
	"github.com/parvezislam45/inventory/internal/money"
)

type InvoiceLineRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}

type CreateInvoiceRequest struct {
	ShopID       string               `json:"shop_id"       validate:"required,uuid"`
	DiscountType string               `json:"discount_type" validate:"required"`
	Items        []InvoiceLineRequest `json:"items"         validate:"required,min=1,dive"`
}

type UpdateOrderItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// ShopInvoiceFilter narrows a shop's invoice list by the brand appearing in
// its line items and/or the invoice's creation date (UTC, YYYY-MM-DD).
type ShopInvoiceFilter struct {
	BrandName string `form:"brand_name"`
	Date      string `form:"date"`
}

type OrderItemResponse struct {
	ID             string           `json:"id"`
	Product        *ProductResponse `json:"product"`
	Brand          string           `json:"brand"`
	Quantity       int              `json:"quantity"`
	TPPrice        money.Money      `json:"tp_price"`
	TotalPrice     money.Money      `json:"total_price"`
	DiscountAmount money.Money      `json:"discount_amount"`
	FinalPrice     money.Money      `json:"final_price"`
	CreatedAt      string           `json:"created_at"`
}

type InvoiceResponse struct {
	ID              string              `json:"id"`
	InvoiceNumber   string              `json:"invoice_number"`
	IsDelivered     bool                `json:"is_delivered"`
	Shop            *model.Shop         `json:"shop,omitempty"`
	DiscountType    string              `json:"discount_type"`
	Subtotal        money.Money         `json:"subtotal"`
	DiscountPercent money.Percent       `json:"discount_percent"`
	DiscountAmount  money.Money         `json:"discount_amount"`
	FinalTotal      money.Money         `json:"final_total"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       string              `json:"created_at"`
}
