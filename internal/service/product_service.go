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

// ProductService defines catalog operations for products. Stock is NOT
// mutable through product updates — it changes only via the stock ledger.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
}

func NewProductService(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	brandRepo repository.BrandRepository,
) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo, brandRepo: brandRepo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.TPPrice.IsNegative() || req.MRPPrice.IsNegative() {
		return nil, fmt.Errorf("%w: prices must be non-negative", apierror.ErrValidation)
	}

	categoryID, err := uuid.Parse(req.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid category id", apierror.ErrValidation)
	}
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: category %s", apierror.ErrNotFound, req.Category)
	}

	var brandID *uuid.UUID
	var brand *model.Brand
	if req.Brand != nil {
		bid, err := uuid.Parse(*req.Brand)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid brand id", apierror.ErrValidation)
		}
		brand, err = s.brandRepo.FindByID(ctx, bid)
		if err != nil {
			return nil, fmt.Errorf("%w: brand %s", apierror.ErrNotFound, *req.Brand)
		}
		brandID = &bid
	}

	product := &model.Product{
		ProductName: req.ProductName,
		Slug:        slugify(req.ProductName),
		Description: req.Description,
		TPPrice:     req.TPPrice,
		MRPPrice:    req.MRPPrice,
		Stock:       req.Stock,
		IsAvailable: true,
		CategoryID:  categoryID,
		BrandID:     brandID,
		Image:       req.Image,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: a product with that name already exists", apierror.ErrConflict)
		}
		return nil, err
	}
	product.Category = category
	product.Brand = brand
	resp := mapProduct(product)
	return &resp, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s", apierror.ErrNotFound, id)
	}
	resp := mapProduct(product)
	return &resp, nil
}

// List returns one page of products plus the unpaged match count, which the
// handler exposes as an X-Total-Count header (the body stays a bare array).
func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, int64, error) {
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, mapProduct(&products[i]))
	}
	return out, total, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s", apierror.ErrNotFound, id)
	}

	if req.ProductName != nil {
		product.ProductName = *req.ProductName
		product.Slug = slugify(*req.ProductName)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.TPPrice != nil {
		if req.TPPrice.IsNegative() {
			return nil, fmt.Errorf("%w: tp_price must be non-negative", apierror.ErrValidation)
		}
		product.TPPrice = *req.TPPrice
	}
	if req.MRPPrice != nil {
		if req.MRPPrice.IsNegative() {
			return nil, fmt.Errorf("%w: mrp_price must be non-negative", apierror.ErrValidation)
		}
		product.MRPPrice = *req.MRPPrice
	}
	if req.Category != nil {
		cid, err := uuid.Parse(*req.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid category id", apierror.ErrValidation)
		}
		category, err := s.categoryRepo.FindByID(ctx, cid)
		if err != nil {
			return nil, fmt.Errorf("%w: category %s", apierror.ErrNotFound, *req.Category)
		}
		product.CategoryID = cid
		product.Category = category
	}
	if req.Brand != nil {
		bid, err := uuid.Parse(*req.Brand)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid brand id", apierror.ErrValidation)
		}
		brand, err := s.brandRepo.FindByID(ctx, bid)
		if err != nil {
			return nil, fmt.Errorf("%w: brand %s", apierror.ErrNotFound, *req.Brand)
		}
		product.BrandID = &bid
		product.Brand = brand
	}
	if req.Image != nil {
		product.Image = req.Image
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	resp := mapProduct(product)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("%w: product %s", apierror.ErrNotFound, id)
	}
	return s.repo.Delete(ctx, id)
}

func mapProduct(p *model.Product) dto.ProductResponse {
	categoryName := ""
	if p.Category != nil {
		categoryName = p.Category.CategoryName
	}
	var brandID *string
	brandName := ""
	if p.BrandID != nil {
		id := p.BrandID.String()
		brandID = &id
	}
	if p.Brand != nil {
		brandName = p.Brand.BrandName
	}
	return dto.ProductResponse{
		ID:           p.ID.String(),
		ProductName:  p.ProductName,
		Description:  p.Description,
		MRPPrice:     p.MRPPrice,
		TPPrice:      p.TPPrice,
		Stock:        p.Stock,
		Category:     p.CategoryID.String(),
		CategoryName: categoryName,
		Brand:        brandID,
		BrandName:    brandName,
		Image:        p.Image,
	}
}
