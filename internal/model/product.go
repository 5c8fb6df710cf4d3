package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/parvezislam45/inventory/internal/money"
)

// Product carries two prices: TPPrice (trade/wholesale) is the basis for
// invoice line totals and stock valuation; MRPPrice (retail) is display-only
// and never enters a computed total.
//
// Stock is mutated in exactly one place — the stock ledger append — and must
// never go negative.
type Product struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProductName string      `gorm:"uniqueIndex;not null" json:"product_name"`
	Slug        string      `gorm:"uniqueIndex;not null" json:"slug"`
	Description string      `gorm:"type:varchar(2000)" json:"description"`
	TPPrice     money.Money `gorm:"type:decimal(10,2);not null;column:tp_price" json:"tp_price"`
	MRPPrice    money.Money `gorm:"type:decimal(10,2);not null;column:mrp_price" json:"mrp_price"`
	Stock       int         `gorm:"not null;default:0" json:"stock"`
	IsAvailable bool        `gorm:"not null;default:true" json:"is_available"`
	CategoryID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"category"`
	BrandID     *uuid.UUID  `gorm:"type:uuid;index" json:"brand"`
	Image       *string     `json:"image"`
	CreatedAt   time.Time   `json:"-"`
	UpdatedAt   time.Time   `json:"-"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Brand    *Brand    `gorm:"foreignKey:BrandID" json:"-"`
}
