package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/parvezislam45/inventory/internal/money"
)

// Shop is an invoiced customer. Each brand has its own independently
// configured discount percentage — there is no generic discount field, and
// discount is always resolved per brand at invoice-creation time.
type Shop struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ShopName         string        `gorm:"uniqueIndex;not null" json:"shop_name"`
	Address          string        `gorm:"type:varchar(2000);not null" json:"address"`
	Phone            *string       `json:"phone"`
	DiscountKazi     money.Percent `gorm:"type:decimal(5,2);not null;default:0" json:"discount_kazi"`
	DiscountHarvest  money.Percent `gorm:"type:decimal(5,2);not null;default:0" json:"discount_harvest"`
	CreatedAt        time.Time     `json:"-"`
	UpdatedAt        time.Time     `json:"-"`
}
