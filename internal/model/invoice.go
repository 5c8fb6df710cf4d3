package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/parvezislam45/inventory/internal/money"
)

// DiscountType selects which of a shop's two brand discounts applies to an
// invoice. Anything outside these two values is rejected — there is no silent
// zero-percent fallback.
type DiscountType string

const (
	DiscountKazi    DiscountType = "discount_kazi"
	DiscountHarvest DiscountType = "discount_harvest"
)

func (t DiscountType) Valid() bool {
	return t == DiscountKazi || t == DiscountHarvest
}

// Invoice is created atomically with its items. DiscountPercent is resolved
// from the shop once at creation and frozen; later shop edits never change an
// existing invoice. After every mutation these identities hold exactly:
//
//	Subtotal       = Σ items.TotalPrice
//	DiscountAmount = Σ items.DiscountAmount
//	FinalTotal     = Subtotal − DiscountAmount = Σ items.FinalPrice
type Invoice struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	InvoiceNumber   string        `gorm:"type:varchar(20);uniqueIndex;not null" json:"invoice_number"`
	ShopID          uuid.UUID     `gorm:"type:uuid;not null;index" json:"-"`
	DiscountType    DiscountType  `gorm:"type:varchar(50);not null" json:"discount_type"`
	Subtotal        money.Money   `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`
	DiscountPercent money.Percent `gorm:"type:decimal(5,2);not null;default:0" json:"discount_percent"`
	DiscountAmount  money.Money   `gorm:"type:decimal(10,2);not null;default:0" json:"discount_amount"`
	FinalTotal      money.Money   `gorm:"type:decimal(10,2);not null;default:0" json:"final_total"`
	IsDelivered     bool          `gorm:"not null;default:false" json:"is_delivered"`
	CreatedAt       time.Time     `json:"created_at"`

	Shop  *Shop       `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
	Items []OrderItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is one invoice line. UnitPrice snapshots the product's TP price at
// creation; quantity mutations recompute the line with the invoice's frozen
// discount percent, never a freshly resolved one.
type OrderItem struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	InvoiceID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	ProductID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	Quantity       int         `gorm:"not null" json:"quantity"`
	UnitPrice      money.Money `gorm:"type:decimal(10,2);not null" json:"tp_price"`
	TotalPrice     money.Money `gorm:"type:decimal(10,2);not null" json:"total_price"`
	DiscountAmount money.Money `gorm:"type:decimal(10,2);not null;default:0" json:"discount_amount"`
	FinalPrice     money.Money `gorm:"type:decimal(10,2);not null" json:"final_price"`
	CreatedAt      time.Time   `json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
