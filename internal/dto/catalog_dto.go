package dto

import "github.com/parvezislam45/inventory/internal/money"

// ─── Brands ──────────────────────────────────────────────────────────────────

type BrandRequest struct {
	BrandName string `json:"brand_name" form:"brand_name" validate:"required,min=2,max=50"`
}

// ─── Categories ──────────────────────────────────────────────────────────────

// CategoryRequest arrives as multipart form data from the admin UI; cat_image
// carries the uploaded filename (file storage itself is handled elsewhere).
type CategoryRequest struct {
	CategoryName string  `json:"category_name" form:"category_name" validate:"required,min=2,max=50"`
	CatImage     *string `json:"cat_image"     form:"cat_image"`
}

// ─── Products ────────────────────────────────────────────────────────────────

// Product create/update accept both JSON and multipart form bodies; the admin
// UI posts FormData with prices as text fields.
type CreateProductRequest struct {
	ProductName string      `json:"product_name" form:"product_name" validate:"required,min=2,max=100"`
	Description string      `json:"description"  form:"description"  validate:"max=2000"`
	MRPPrice    money.Money `json:"mrp_price"    form:"mrp_price"    validate:"required"`
	TPPrice     money.Money `json:"tp_price"     form:"tp_price"     validate:"required"`
	Stock       int         `json:"stock"        form:"stock"        validate:"min=0"`
	Category    string      `json:"category"     form:"category"     validate:"required,uuid"`
	Brand       *string     `json:"brand"        form:"brand"        validate:"omitempty,uuid"`
	Image       *string     `json:"image"        form:"image"`
}

type UpdateProductRequest struct {
	ProductName *string      `json:"product_name" form:"product_name" validate:"omitempty,min=2,max=100"`
	Description *string      `json:"description"  form:"description"  validate:"omitempty,max=2000"`
	MRPPrice    *money.Money `json:"mrp_price"    form:"mrp_price"`
	TPPrice     *money.Money `json:"tp_price"     form:"tp_price"`
	Category    *string      `json:"category"     form:"category"     validate:"omitempty,uuid"`
	Brand       *string      `json:"brand"        form:"brand"        validate:"omitempty,uuid"`
	Image       *string      `json:"image"        form:"image"`
}

type ProductFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Brand    string `form:"brand"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductResponse struct {
	ID           string      `json:"id"`
	ProductName  string      `json:"product_name"`
	Description  string      `json:"description"`
	MRPPrice     money.Money `json:"mrp_price"`
	TPPrice      money.Money `json:"tp_price"`
	Stock        int         `json:"stock"`
	Category     string      `json:"category"`
	CategoryName string      `json:"category_name"`
	Brand        *string     `json:"brand"`
	BrandName    string      `json:"brand_name"`
	Image        *string     `json:"image"`
}

// ─── Shops ───────────────────────────────────────────────────────────────────

type CreateShopRequest struct {
	ShopName        string        `json:"shop_name"        validate:"required,min=2,max=100"`
	Address         string        `json:"address"          validate:"required,max=2000"`
	Phone           *string       `json:"phone"`
	DiscountKazi    money.Percent `json:"discount_kazi"`
	DiscountHarvest money.Percent `json:"discount_harvest"`
}

type UpdateShopRequest struct {
	ShopName        *string        `json:"shop_name" validate:"omitempty,min=2,max=100"`
	Address         *string        `json:"address"   validate:"omitempty,max=2000"`
	Phone           *string        `json:"phone"`
	DiscountKazi    *money.Percent `json:"discount_kazi"`
	DiscountHarvest *money.Percent `json:"discount_harvest"`
}
