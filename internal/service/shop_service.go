package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/parvezislam45/inventory/internal/apierror"
	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/model"
	"github.com/parvezislam45/inventory/internal/repository"
)

// ShopService defines CRUD for shops. Discount percentages are validated into
// [0,100] here; existing invoices keep the percent frozen at their creation.
type ShopService interface {
	Create(ctx context.Context, req dto.CreateShopRequest) (*model.Shop, error)
	List(ctx context.Context) ([]model.Shop, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Shop, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateShopRequest) (*model.Shop, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type shopService struct {
	repo repository.ShopRepository
}

func NewShopService(repo repository.ShopRepository) ShopService {
	return &shopService{repo: repo}
}

func (s *shopService) Create(ctx context.Context, req dto.CreateShopRequest) (*model.Shop, error) {
	if !req.DiscountKazi.InRange() || !req.DiscountHarvest.InRange() {
		return nil, fmt.Errorf("%w: discounts must be between 0 and 100", apierror.ErrValidation)
	}
	shop := &model.Shop{
		ShopName:        req.ShopName,
		Address:         req.Address,
		Phone:           req.Phone,
		DiscountKazi:    req.DiscountKazi,
		DiscountHarvest: req.DiscountHarvest,
	}
	if err := s.repo.Create(ctx, shop); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: a shop with that name already exists", apierror.ErrConflict)
		}
		return nil, err
	}
	return shop, nil
}

func (s *shopService) List(ctx context.Context) ([]model.Shop, error) {
	return s.repo.List(ctx)
}

func (s *shopService) GetByID(ctx context.Context, id uuid.UUID) (*model.Shop, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: shop %s", apierror.ErrNotFound, id)
	}
	return shop, nil
}

func (s *shopService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateShopRequest) (*model.Shop, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: shop %s", apierror.ErrNotFound, id)
	}
	if req.ShopName != nil {
		shop.ShopName = *req.ShopName
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Phone != nil {
		shop.Phone = req.Phone
	}
	if req.DiscountKazi != nil {
		if !req.DiscountKazi.InRange() {
			return nil, fmt.Errorf("%w: discount_kazi must be between 0 and 100", apierror.ErrValidation)
		}
		shop.DiscountKazi = *req.DiscountKazi
	}
	if req.DiscountHarvest != nil {
		if !req.DiscountHarvest.InRange() {
			return nil, fmt.Errorf("%w: discount_harvest must be between 0 and 100", apierror.ErrValidation)
		}
		shop.DiscountHarvest = *req.DiscountHarvest
	}
	if err := s.repo.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *shopService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("%w: shop %s", apierror.ErrNotFound, id)
	}
	return s.repo.Delete(ctx, id)
}
