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

// BrandService defines CRUD for brands.
type BrandService interface {
	Create(ctx context.Context, req dto.BrandRequest) (*model.Brand, error)
	List(ctx context.Context) ([]model.Brand, error)
	Update(ctx context.Context, id uuid.UUID, req dto.BrandRequest) (*model.Brand, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type brandService struct {
	repo repository.BrandRepository
}

func NewBrandService(repo repository.BrandRepository) BrandService {
	return &brandService{repo: repo}
}

func (s *brandService) Create(ctx context.Context, req dto.BrandRequest) (*model.Brand, error) {
	existing, err := s.repo.FindByName(ctx, req.BrandName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a brand with that name already exists", apierror.ErrConflict)
	}

	brand := &model.Brand{BrandName: req.BrandName, Slug: slugify(req.BrandName)}
	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) List(ctx context.Context) ([]model.Brand, error) {
	return s.repo.List(ctx)
}

func (s *brandService) Update(ctx context.Context, id uuid.UUID, req dto.BrandRequest) (*model.Brand, error) {
	brand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: brand %s", apierror.ErrNotFound, id)
	}
	if req.BrandName != brand.BrandName {
		existing, err := s.repo.FindByName(ctx, req.BrandName)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: a brand with that name already exists", apierror.ErrConflict)
		}
	}
	brand.BrandName = req.BrandName
	brand.Slug = slugify(req.BrandName)
	if err := s.repo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("%w: brand %s", apierror.ErrNotFound, id)
	}
	return s.repo.Delete(ctx, id)
}

// CategoryService defines CRUD for categories.
type CategoryService interface {
	Create(ctx context.Context, req dto.CategoryRequest) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id uuid.UUID, req dto.CategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req dto.CategoryRequest) (*model.Category, error) {
	existing, err := s.repo.FindByName(ctx, req.CategoryName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a category with that name already exists", apierror.ErrConflict)
	}

	category := &model.Category{
		CategoryName: req.CategoryName,
		Slug:         slugify(req.CategoryName),
		CatImage:     req.CatImage,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.CategoryRequest) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: category %s", apierror.ErrNotFound, id)
	}
	if req.CategoryName != category.CategoryName {
		existing, err := s.repo.FindByName(ctx, req.CategoryName)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: a category with that name already exists", apierror.ErrConflict)
		}
	}
	category.CategoryName = req.CategoryName
	category.Slug = slugify(req.CategoryName)
	if req.CatImage != nil {
		category.CatImage = req.CatImage
	}
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("%w: category %s", apierror.ErrNotFound, id)
	}
	return s.repo.Delete(ctx, id)
}
