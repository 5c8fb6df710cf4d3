package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/parvezislam45/inventory/internal/money"
)

// StockEvent is one append-only record of a stock quantity change. Events are
// never modified or deleted. TPPrice snapshots the product's trade price at
// the moment of the change; TotalStockPrice values the delta, not the whole
// holding. Reporting groups events by the UTC calendar date of CreatedAt.
type StockEvent struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProductID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	PreviousStock   int         `gorm:"not null" json:"last_stock"`
	AddedStock      int         `gorm:"not null" json:"added_stock"`
	CurrentStock    int         `gorm:"not null" json:"current_stock"`
	TPPrice         money.Money `gorm:"type:decimal(10,2);not null;column:tp_price" json:"tp_price"`
	TotalStockPrice money.Money `gorm:"type:decimal(12,2);not null" json:"total_stock_price"`
	CreatedAt       time.Time   `gorm:"index" json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}
