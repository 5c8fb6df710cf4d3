package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/model"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByIDForUpdateTx locks the product row inside tx so that concurrent
	// stock appends against the same product serialize instead of racing on
	// previous_stock.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	UpdateStockTx(tx *gorm.DB, id uuid.UUID, stock int) error

	// BrandSummary aggregates current stock and stock×tp value per brand.
	BrandSummary(ctx context.Context) ([]dto.BrandStockSummary, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Category").Preload("Brand").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("is_available = true")

	if filter.Search != "" {
		q = q.Where("product_name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		q = q.Where("category_id = ?", filter.Category)
	}
	if filter.Brand != "" {
		q = q.Where("brand_id = ?", filter.Brand)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Category").Preload("Brand").
		Order("product_name ASC").Limit(filter.Limit).Offset(offset).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) UpdateStockTx(tx *gorm.DB, id uuid.UUID, stock int) error {
	return tx.Model(&model.Product{}).Where("id = ?", id).Update("stock", stock).Error
}

func (r *productRepo) BrandSummary(ctx context.Context) ([]dto.BrandStockSummary, error) {
	var rows []dto.BrandStockSummary
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("brands.brand_name AS brand_name, COALESCE(SUM(products.stock), 0) AS total_stock, COALESCE(SUM(products.stock * products.tp_price), 0) AS total_tp_price").
		Joins("JOIN brands ON brands.id = products.brand_id").
		Where("products.is_available = true").
		Group("brands.brand_name").
		Order("brands.brand_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *productRepo) DB() *gorm.DB { return r.db }
