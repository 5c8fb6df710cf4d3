package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/model"
)

// InvoiceRepository is the data access contract for invoices and their line
// items. Mutation methods take an explicit *gorm.DB so services can run them
// inside one transaction (nil tx in stub-backed unit tests).
type InvoiceRepository interface {
	Create(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	// FindByIDForUpdateTx locks the invoice row so concurrent mutations of the
	// same invoice serialize.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Invoice, error)
	List(ctx context.Context) ([]model.Invoice, error)
	ListByShop(ctx context.Context, shopID uuid.UUID, filter dto.ShopInvoiceFilter) ([]model.Invoice, error)
	ListDelivered(ctx context.Context) ([]model.Invoice, error)

	// LastInvoiceNumber returns the highest invoice_number with the given
	// prefix, or "" when none exists. Runs inside the creation tx.
	LastInvoiceNumber(ctx context.Context, tx *gorm.DB, prefix string) (string, error)

	FindItemByID(ctx context.Context, id uuid.UUID) (*model.OrderItem, error)
	SaveItemTx(tx *gorm.DB, item *model.OrderItem) error
	DeleteItemTx(tx *gorm.DB, id uuid.UUID) error
	SaveTotalsTx(tx *gorm.DB, inv *model.Invoice) error
	MarkDelivered(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	DB() *gorm.DB
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository { return &invoiceRepo{db: db} }

func (r *invoiceRepo) DB() *gorm.DB { return r.db }

func (r *invoiceRepo) Create(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error {
	return tx.WithContext(ctx).Create(inv).Error
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Shop").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.created_at ASC") }).
		Preload("Items.Product").Preload("Items.Product.Brand").Preload("Items.Product.Category").
		First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	// Items are loaded separately: FOR UPDATE cannot be combined with the
	// LEFT JOINs Preload would add on some drivers.
	if err := tx.Where("invoice_id = ?", id).Order("created_at ASC").Find(&inv.Items).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.preloaded(r.db.WithContext(ctx)).Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) ListByShop(ctx context.Context, shopID uuid.UUID, filter dto.ShopInvoiceFilter) ([]model.Invoice, error) {
	q := r.db.WithContext(ctx).Model(&model.Invoice{}).Where("invoices.shop_id = ?", shopID)

	if filter.BrandName != "" {
		q = q.Joins("JOIN order_items ON order_items.invoice_id = invoices.id").
			Joins("JOIN products ON products.id = order_items.product_id").
			Joins("JOIN brands ON brands.id = products.brand_id").
			Where("brands.brand_name ILIKE ?", "%"+filter.BrandName+"%").
			Distinct("invoices.*")
	}
	if filter.Date != "" {
		q = q.Where("DATE(invoices.created_at AT TIME ZONE 'UTC') = ?", filter.Date)
	}

	var invoices []model.Invoice
	err := r.preloaded(q).Order("invoices.created_at DESC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) ListDelivered(ctx context.Context) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.preloaded(r.db.WithContext(ctx).Where("is_delivered = true")).
		Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) preloaded(q *gorm.DB) *gorm.DB {
	return q.Preload("Shop").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.created_at ASC") }).
		Preload("Items.Product").Preload("Items.Product.Brand").Preload("Items.Product.Category")
}

func (r *invoiceRepo) LastInvoiceNumber(ctx context.Context, tx *gorm.DB, prefix string) (string, error) {
	var number string
	// Longest suffix first, then lexical: "-1000" must beat "-999".
	err := tx.WithContext(ctx).Model(&model.Invoice{}).
		Select("invoice_number").
		Where("invoice_number LIKE ?", prefix+"%").
		Order("LENGTH(invoice_number) DESC, invoice_number DESC").
		Limit(1).
		Scan(&number).Error
	return number, err
}

func (r *invoiceRepo) FindItemByID(ctx context.Context, id uuid.UUID) (*model.OrderItem, error) {
	var item model.OrderItem
	if err := r.db.WithContext(ctx).Preload("Product").First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *invoiceRepo) SaveItemTx(tx *gorm.DB, item *model.OrderItem) error {
	return tx.Save(item).Error
}

func (r *invoiceRepo) DeleteItemTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.OrderItem{}, "id = ?", id).Error
}

func (r *invoiceRepo) SaveTotalsTx(tx *gorm.DB, inv *model.Invoice) error {
	return tx.Model(&model.Invoice{}).Where("id = ?", inv.ID).Updates(map[string]interface{}{
		"subtotal":        inv.Subtotal,
		"discount_amount": inv.DiscountAmount,
		"final_total":     inv.FinalTotal,
	}).Error
}

func (r *invoiceRepo) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Invoice{}).
		Where("id = ?", id).Update("is_delivered", true).Error
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Items cascade via the FK constraint; delete them explicitly as well so
	// the behavior does not depend on the DB having the constraint applied.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.OrderItem{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Invoice{}, "id = ?", id).Error
	})
}
