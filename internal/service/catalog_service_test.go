package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/parvezislam45/inventory/internal/apierror"
	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/model"
	"github.com/parvezislam45/inventory/internal/money"
	"github.com/parvezislam45/inventory/internal/repository"
)

type stubBrandRepo struct {
	brands map[uuid.UUID]*model.Brand
}

func newStubBrandRepo() *stubBrandRepo {
	return &stubBrandRepo{brands: make(map[uuid.UUID]*model.Brand)}
}

func (r *stubBrandRepo) Create(_ context.Context, b *model.Brand) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.brands[b.ID] = b
	return nil
}

func (r *stubBrandRepo) List(_ context.Context) ([]model.Brand, error) {
	out := make([]model.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBrandRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Brand, error) {
	b, ok := r.brands[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubBrandRepo) FindByName(_ context.Context, name string) (*model.Brand, error) {
	for _, b := range r.brands {
		if strings.EqualFold(b.BrandName, name) {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBrandRepo) Update(_ context.Context, b *model.Brand) error {
	r.brands[b.ID] = b
	return nil
}

func (r *stubBrandRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.brands, id)
	return nil
}

var _ repository.BrandRepository = (*stubBrandRepo)(nil)

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.CategoryName, name) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

// ── Brands ───────────────────────────────────────────────────────────────────

func TestBrandCreateSlugsAndRejectsDuplicates(t *testing.T) {
	svc := NewBrandService(newStubBrandRepo())

	brand, err := svc.Create(context.Background(), dto.BrandRequest{BrandName: "Kazi Foods"})
	require.NoError(t, err)
	assert.Equal(t, "kazi-foods", brand.Slug)

	_, err = svc.Create(context.Background(), dto.BrandRequest{BrandName: "kazi foods"})
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestBrandUpdateKeepsOwnName(t *testing.T) {
	repo := newStubBrandRepo()
	svc := NewBrandService(repo)
	brand, err := svc.Create(context.Background(), dto.BrandRequest{BrandName: "Harvest"})
	require.NoError(t, err)

	// renaming to its own name is not a conflict
	updated, err := svc.Update(context.Background(), brand.ID, dto.BrandRequest{BrandName: "Harvest"})
	require.NoError(t, err)
	assert.Equal(t, "Harvest", updated.BrandName)

	_, err = svc.Update(context.Background(), uuid.New(), dto.BrandRequest{BrandName: "Other"})
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

// ── Categories ───────────────────────────────────────────────────────────────

func TestCategoryCRUD(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	cat, err := svc.Create(context.Background(), dto.CategoryRequest{CategoryName: "Dry Goods"})
	require.NoError(t, err)
	assert.Equal(t, "dry-goods", cat.Slug)

	_, err = svc.Create(context.Background(), dto.CategoryRequest{CategoryName: "dry goods"})
	assert.ErrorIs(t, err, apierror.ErrConflict)

	require.NoError(t, svc.Delete(context.Background(), cat.ID))
	err = svc.Delete(context.Background(), cat.ID)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

// ── Products ─────────────────────────────────────────────────────────────────

func newProductService(t *testing.T) (ProductService, *stubCategoryRepo, *stubBrandRepo, *stubProductRepo) {
	t.Helper()
	products := newStubProductRepo()
	categories := newStubCategoryRepo()
	brands := newStubBrandRepo()
	return NewProductService(products, categories, brands), categories, brands, products
}

func TestProductCreateResolvesRelations(t *testing.T) {
	svc, categories, brands, _ := newProductService(t)

	cat := &model.Category{CategoryName: "Staples"}
	require.NoError(t, categories.Create(context.Background(), cat))
	brand := &model.Brand{BrandName: "Kazi"}
	require.NoError(t, brands.Create(context.Background(), brand))

	bid := brand.ID.String()
	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		ProductName: "Atta 2kg",
		TPPrice:     money.RequireFromString("42.00"),
		MRPPrice:    money.RequireFromString("48.00"),
		Stock:       5,
		Category:    cat.ID.String(),
		Brand:       &bid,
	})
	require.NoError(t, err)
	assert.Equal(t, "Staples", resp.CategoryName)
	assert.Equal(t, "Kazi", resp.BrandName)
	assert.Equal(t, 5, resp.Stock)
}

func TestProductListReportsTotal(t *testing.T) {
	svc, categories, _, _ := newProductService(t)
	cat := &model.Category{CategoryName: "Staples"}
	require.NoError(t, categories.Create(context.Background(), cat))

	for _, name := range []string{"Atta 2kg", "Rice 5kg", "Oil 2L"} {
		_, err := svc.Create(context.Background(), dto.CreateProductRequest{
			ProductName: name,
			TPPrice:     money.RequireFromString("42.00"),
			MRPPrice:    money.RequireFromString("48.00"),
			Category:    cat.ID.String(),
		})
		require.NoError(t, err)
	}

	resp, total, err := svc.List(context.Background(), dto.ProductFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Len(t, resp, 3)
	assert.Equal(t, int64(3), total)
}

func TestProductCreateUnknownCategory(t *testing.T) {
	svc, _, _, _ := newProductService(t)
	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		ProductName: "Atta 2kg",
		TPPrice:     money.RequireFromString("42.00"),
		MRPPrice:    money.RequireFromString("48.00"),
		Category:    uuid.NewString(),
	})
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestProductUpdateCannotChangeStock(t *testing.T) {
	svc, categories, _, products := newProductService(t)
	cat := &model.Category{CategoryName: "Staples"}
	require.NoError(t, categories.Create(context.Background(), cat))

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		ProductName: "Atta 2kg",
		TPPrice:     money.RequireFromString("42.00"),
		MRPPrice:    money.RequireFromString("48.00"),
		Stock:       8,
		Category:    cat.ID.String(),
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	newName := "Atta 5kg"
	updated, err := svc.Update(context.Background(), id, dto.UpdateProductRequest{ProductName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Atta 5kg", updated.ProductName)
	assert.Equal(t, 8, updated.Stock)
	assert.Equal(t, 8, products.products[id].Stock)
}

// ── Shops ────────────────────────────────────────────────────────────────────

func TestShopCreateValidatesDiscountRange(t *testing.T) {
	svc := NewShopService(newStubShopRepo())

	_, err := svc.Create(context.Background(), dto.CreateShopRequest{
		ShopName:     "Corner Store",
		Address:      "12 Market Road",
		DiscountKazi: money.RequirePercentFromString("104"),
	})
	assert.ErrorIs(t, err, apierror.ErrValidation)

	shop, err := svc.Create(context.Background(), dto.CreateShopRequest{
		ShopName:        "Corner Store",
		Address:         "12 Market Road",
		DiscountKazi:    money.RequirePercentFromString("5"),
		DiscountHarvest: money.RequirePercentFromString("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, "5.00", shop.DiscountKazi.StringFixed(2))
}

func TestShopUpdatePartial(t *testing.T) {
	svc := NewShopService(newStubShopRepo())
	shop, err := svc.Create(context.Background(), dto.CreateShopRequest{
		ShopName:        "Corner Store",
		Address:         "12 Market Road",
		DiscountKazi:    money.RequirePercentFromString("5"),
		DiscountHarvest: money.RequirePercentFromString("10"),
	})
	require.NoError(t, err)

	bad := money.RequirePercentFromString("-1")
	_, err = svc.Update(context.Background(), shop.ID, dto.UpdateShopRequest{DiscountKazi: &bad})
	assert.ErrorIs(t, err, apierror.ErrValidation)

	addr := "99 New Road"
	updated, err := svc.Update(context.Background(), shop.ID, dto.UpdateShopRequest{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "99 New Road", updated.Address)
	assert.Equal(t, "5.00", updated.DiscountKazi.StringFixed(2))
}

// ── slugify ──────────────────────────────────────────────────────────────────

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Kazi Foods":       "kazi-foods",
		"  Dry  Goods!  ":  "dry-goods",
		"Rice 5kg (Promo)": "rice-5kg-promo",
		"ALLCAPS":          "allcaps",
	}
	for in, want := range cases {
		assert.Equal(t, want, slugify(in), "slugify(%q)", in)
	}
}
