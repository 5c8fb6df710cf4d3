package service

import (
	"fmt"

	"github.com/parvezislam45/inventory/internal/apierror"
	"github.com/parvezislam45/inventory/internal/model"
	"github.com/parvezislam45/inventory/internal/money"
)

// ResolveDiscount maps a shop and a discount type to the shop's percentage for
// that brand. The two-field per-brand model is authoritative: anything outside
// {discount_kazi, discount_harvest} is rejected rather than defaulting to
// zero. The result is used once, at invoice creation, and frozen on the
// invoice — later shop edits never retroactively change existing invoices.
func ResolveDiscount(shop *model.Shop, t model.DiscountType) (money.Percent, error) {
	switch t {
	case model.DiscountKazi:
		return shop.DiscountKazi, nil
	case model.DiscountHarvest:
		return shop.DiscountHarvest, nil
	default:
		return money.Percent{}, fmt.Errorf("%w: %q", apierror.ErrInvalidDiscountType, string(t))
	}
}
