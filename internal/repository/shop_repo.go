package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/parvezislam45/inventory/internal/model"
)

// ShopRepository defines CRUD operations for Shop.
type ShopRepository interface {
	Create(ctx context.Context, s *model.Shop) error
	List(ctx context.Context) ([]model.Shop, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Shop, error)
	Update(ctx context.Context, s *model.Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type shopRepo struct{ db *gorm.DB }

func NewShopRepository(db *gorm.DB) ShopRepository { return &shopRepo{db: db} }

func (r *shopRepo) Create(ctx context.Context, s *model.Shop) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *shopRepo) List(ctx context.Context) ([]model.Shop, error) {
	var list []model.Shop
	err := r.db.WithContext(ctx).Order("shop_name asc").Find(&list).Error
	return list, err
}

func (r *shopRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Shop, error) {
	var s model.Shop
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *shopRepo) Update(ctx context.Context, s *model.Shop) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *shopRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Shop{}, "id = ?", id).Error
}
