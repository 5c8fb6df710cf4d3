package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/parvezislam45/inventory/internal/apierror"
	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/model"
	"github.com/parvezislam45/inventory/internal/money"
	"github.com/parvezislam45/inventory/internal/repository"
)

// InvoiceService is the invoice pricing engine: atomic creation from line
// requests, per-item mutation with deterministic total recomputation, and the
// one-way delivery transition.
type InvoiceService interface {
	Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	List(ctx context.Context) ([]dto.InvoiceResponse, error)
	ListByShop(ctx context.Context, shopID uuid.UUID, filter dto.ShopInvoiceFilter) ([]dto.InvoiceResponse, error)
	ListDelivered(ctx context.Context) ([]dto.InvoiceResponse, error)
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, req dto.UpdateOrderItemRequest) (*dto.InvoiceResponse, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) (*dto.InvoiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteDelivered(ctx context.Context, id uuid.UUID) error
	MarkDelivered(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
}

type invoiceService struct {
	repo        repository.InvoiceRepository
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
}

func NewInvoiceService(
	repo repository.InvoiceRepository,
	shopRepo repository.ShopRepository,
	productRepo repository.ProductRepository,
) InvoiceService {
	return &invoiceService{repo: repo, shopRepo: shopRepo, productRepo: productRepo}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with stub repositories).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Create ───────────────────────────────────────────────────────────────────
// All-or-nothing: resolve shop, discount and every product up front, price the
// lines, then persist invoice + items in one transaction. Stock is NOT touched
// here — inventory flows only through the stock ledger.

func (s *invoiceService) Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	shopID, err := uuid.Parse(req.ShopID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid shop_id", apierror.ErrValidation)
	}
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("%w: shop %s", apierror.ErrNotFound, req.ShopID)
	}

	discountType := model.DiscountType(req.DiscountType)
	percent, err := ResolveDiscount(shop, discountType)
	if err != nil {
		return nil, err
	}
	if !percent.InRange() {
		return nil, fmt.Errorf("%w: discount percent out of range", apierror.ErrValidation)
	}

	// Price every line before opening the transaction. Unit price snapshots
	// the product's current TP price; the same frozen percent applies to every
	// line and the aggregate discount is the sum of line discounts, so the
	// invoice identities hold exactly under 2-decimal rounding.
	items := make([]model.OrderItem, 0, len(req.Items))
	subtotal := money.Zero()
	discountTotal := money.Zero()
	for _, line := range req.Items {
		pid, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid product_id", apierror.ErrValidation)
		}
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0", apierror.ErrValidation)
		}
		product, err := s.productRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("%w: product %s", apierror.ErrNotFound, line.ProductID)
		}

		totalPrice := product.TPPrice.MulQty(line.Quantity)
		discountAmount := totalPrice.ApplyPercent(percent)
		items = append(items, model.OrderItem{
			ProductID:      pid,
			Quantity:       line.Quantity,
			UnitPrice:      product.TPPrice,
			TotalPrice:     totalPrice,
			DiscountAmount: discountAmount,
			FinalPrice:     totalPrice.Sub(discountAmount),
		})
		subtotal = subtotal.Add(totalPrice)
		discountTotal = discountTotal.Add(discountAmount)
	}

	invoice := model.Invoice{
		ShopID:          shopID,
		DiscountType:    discountType,
		Subtotal:        subtotal,
		DiscountPercent: percent,
		DiscountAmount:  discountTotal,
		FinalTotal:      subtotal.Sub(discountTotal),
		Items:           items,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		number, err := s.nextInvoiceNumber(ctx, tx)
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = number
		return s.repo.Create(ctx, tx, &invoice)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: invoice number already taken", apierror.ErrConflict)
		}
		return nil, txErr
	}

	return s.response(ctx, invoice.ID)
}

// nextInvoiceNumber produces the next INV-YYYYMMDD-NNN for today (UTC). The
// sequence is zero-padded to three digits but parses width-agnostically, so
// day 1000 continues as -1000, -1001 instead of wedging on the unique index.
// Runs inside the creation transaction; a lost race on the same number is
// caught by the unique index and surfaces as a conflict.
func (s *invoiceService) nextInvoiceNumber(ctx context.Context, tx *gorm.DB) (string, error) {
	prefix := "INV-" + time.Now().UTC().Format("20060102") + "-"
	last, err := s.repo.LastInvoiceNumber(ctx, tx, prefix)
	if err != nil {
		return "", err
	}
	next := 1
	if i := strings.LastIndex(last, "-"); i >= 0 {
		if n, err := strconv.Atoi(last[i+1:]); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%03d", prefix, next), nil
}

// ── Reads ────────────────────────────────────────────────────────────────────

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	return s.response(ctx, id)
}

func (s *invoiceService) List(ctx context.Context) ([]dto.InvoiceResponse, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapInvoices(invoices), nil
}

func (s *invoiceService) ListByShop(ctx context.Context, shopID uuid.UUID, filter dto.ShopInvoiceFilter) ([]dto.InvoiceResponse, error) {
	if _, err := s.shopRepo.FindByID(ctx, shopID); err != nil {
		return nil, fmt.Errorf("%w: shop %s", apierror.ErrNotFound, shopID)
	}
	invoices, err := s.repo.ListByShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	return mapInvoices(invoices), nil
}

func (s *invoiceService) ListDelivered(ctx context.Context) ([]dto.InvoiceResponse, error) {
	invoices, err := s.repo.ListDelivered(ctx)
	if err != nil {
		return nil, err
	}
	return mapInvoices(invoices), nil
}

// ── Mutation ─────────────────────────────────────────────────────────────────
// Each mutation locks the invoice row, rewrites the affected line using the
// invoice's FROZEN discount percent, then recomputes the aggregates from the
// full current item set — never incrementally.

func (s *invoiceService) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, req dto.UpdateOrderItemRequest) (*dto.InvoiceResponse, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", apierror.ErrValidation)
	}
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: order item %s", apierror.ErrNotFound, itemID)
	}

	invoiceID := item.InvoiceID
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		invoice, err := s.repo.FindByIDForUpdateTx(tx, invoiceID)
		if err != nil {
			return fmt.Errorf("%w: invoice %s", apierror.ErrNotFound, invoiceID)
		}
		if invoice.IsDelivered {
			return fmt.Errorf("%w: delivered invoices cannot be modified", apierror.ErrConflict)
		}

		for i := range invoice.Items {
			if invoice.Items[i].ID != item.ID {
				continue
			}
			line := &invoice.Items[i]
			line.Quantity = req.Quantity
			line.TotalPrice = line.UnitPrice.MulQty(req.Quantity)
			line.DiscountAmount = line.TotalPrice.ApplyPercent(invoice.DiscountPercent)
			line.FinalPrice = line.TotalPrice.Sub(line.DiscountAmount)
			if err := s.repo.SaveItemTx(tx, line); err != nil {
				return err
			}
		}

		recomputeTotals(invoice, invoice.Items)
		return s.repo.SaveTotalsTx(tx, invoice)
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.response(ctx, invoiceID)
}

func (s *invoiceService) RemoveItem(ctx context.Context, itemID uuid.UUID) (*dto.InvoiceResponse, error) {
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: order item %s", apierror.ErrNotFound, itemID)
	}

	invoiceID := item.InvoiceID
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		invoice, err := s.repo.FindByIDForUpdateTx(tx, invoiceID)
		if err != nil {
			return fmt.Errorf("%w: invoice %s", apierror.ErrNotFound, invoiceID)
		}
		if invoice.IsDelivered {
			return fmt.Errorf("%w: delivered invoices cannot be modified", apierror.ErrConflict)
		}

		if err := s.repo.DeleteItemTx(tx, item.ID); err != nil {
			return err
		}

		remaining := make([]model.OrderItem, 0, len(invoice.Items))
		for _, it := range invoice.Items {
			if it.ID != item.ID {
				remaining = append(remaining, it)
			}
		}
		// An emptied invoice stays valid with zero totals — it is not
		// auto-deleted, preserving audit history.
		recomputeTotals(invoice, remaining)
		return s.repo.SaveTotalsTx(tx, invoice)
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.response(ctx, invoiceID)
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("%w: invoice %s", apierror.ErrNotFound, id)
	}
	return s.repo.Delete(ctx, id)
}

func (s *invoiceService) DeleteDelivered(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: invoice %s", apierror.ErrNotFound, id)
	}
	if !invoice.IsDelivered {
		return fmt.Errorf("%w: cannot delete an invoice that is not delivered", apierror.ErrValidation)
	}
	return s.repo.Delete(ctx, id)
}

// MarkDelivered is the one-way pending → delivered transition. Calling it on
// an already-delivered invoice is a no-op returning the current state, since
// the frontend calls it optimistically.
func (s *invoiceService) MarkDelivered(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: invoice %s", apierror.ErrNotFound, id)
	}
	if !invoice.IsDelivered {
		if err := s.repo.MarkDelivered(ctx, id); err != nil {
			return nil, err
		}
	}
	return s.response(ctx, id)
}

// recomputeTotals rebuilds the aggregate fields from a full item set. The
// aggregate discount is forced to the sum of line discounts so that
// Σ final_price == final_total exactly.
func recomputeTotals(invoice *model.Invoice, items []model.OrderItem) {
	subtotal := money.Zero()
	discount := money.Zero()
	for _, it := range items {
		subtotal = subtotal.Add(it.TotalPrice)
		discount = discount.Add(it.DiscountAmount)
	}
	invoice.Subtotal = subtotal
	invoice.DiscountAmount = discount
	invoice.FinalTotal = subtotal.Sub(discount)
}

// ── Mapping ──────────────────────────────────────────────────────────────────

func (s *invoiceService) response(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: invoice %s", apierror.ErrNotFound, id)
	}
	resp := mapInvoice(invoice)
	return &resp, nil
}

func mapInvoices(invoices []model.Invoice) []dto.InvoiceResponse {
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, mapInvoice(&invoices[i]))
	}
	return out
}

func mapInvoice(inv *model.Invoice) dto.InvoiceResponse {
	items := make([]dto.OrderItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		var product *dto.ProductResponse
		brandName := ""
		if it.Product != nil {
			p := mapProduct(it.Product)
			product = &p
			brandName = p.BrandName
		}
		items = append(items, dto.OrderItemResponse{
			ID:             it.ID.String(),
			Product:        product,
			Brand:          brandName,
			Quantity:       it.Quantity,
			TPPrice:        it.UnitPrice,
			TotalPrice:     it.TotalPrice,
			DiscountAmount: it.DiscountAmount,
			FinalPrice:     it.FinalPrice,
			CreatedAt:      it.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	return dto.InvoiceResponse{
		ID:              inv.ID.String(),
		InvoiceNumber:   inv.InvoiceNumber,
		IsDelivered:     inv.IsDelivered,
		Shop:            inv.Shop,
		DiscountType:    string(inv.DiscountType),
		Subtotal:        inv.Subtotal,
		DiscountPercent: inv.DiscountPercent,
		DiscountAmount:  inv.DiscountAmount,
		FinalTotal:      inv.FinalTotal,
		Items:           items,
		CreatedAt:       inv.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
