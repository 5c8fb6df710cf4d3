package dto

import "github.com/parvezislam45/inventory/internal/money"

// RestockRequest carries the stock delta for one ledger append. Negative
// values are legal corrections; the service rejects deltas that would push the
// product's stock below zero.
type RestockRequest struct {
	AddedStock int `json:"added_stock" validate:"required"`
}

type StockEventResponse struct {
	ID              string      `json:"id"`
	ProductName     string      `json:"product_name"`
	PreviousStock   int         `json:"last_stock"`
	AddedStock      int         `json:"added_stock"`
	CurrentStock    int         `json:"current_stock"`
	TPPrice         money.Money `json:"tp_price"`
	TotalStockPrice money.Money `json:"total_stock_price"`
	CreatedAt       string      `json:"created_at"`
}

type DailySummaryResponse struct {
	Date            string               `json:"date"`
	Items           []StockEventResponse `json:"items"`
	GrandTotalPrice money.Money          `json:"grand_total_price"`
}

// StockHistoryGroup is one date bucket of the full ledger history, newest
// date first.
type StockHistoryGroup struct {
	Date       string               `json:"date"`
	Items      []StockEventResponse `json:"items"`
	TotalValue money.Money          `json:"total_value"`
}

// BrandStockSummary is a point-in-time aggregate over Product (current
// inventory value), not over the event ledger.
type BrandStockSummary struct {
	BrandName    string      `json:"brand_name"`
	TotalStock   int64       `json:"total_stock"`
	TotalTPPrice money.Money `json:"total_tp_price"`
}
