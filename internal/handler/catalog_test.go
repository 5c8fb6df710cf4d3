package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/model"
	"github.com/parvezislam45/inventory/internal/service"
)

// The admin UI submits categories and products as multipart FormData, so the
// handlers must accept form bodies as well as JSON.

type captureCategoryService struct {
	created dto.CategoryRequest
}

func (s *captureCategoryService) Create(_ context.Context, req dto.CategoryRequest) (*model.Category, error) {
	s.created = req
	return &model.Category{ID: uuid.New(), CategoryName: req.CategoryName, CatImage: req.CatImage}, nil
}

func (s *captureCategoryService) List(context.Context) ([]model.Category, error) { return nil, nil }

func (s *captureCategoryService) Update(_ context.Context, _ uuid.UUID, req dto.CategoryRequest) (*model.Category, error) {
	s.created = req
	return &model.Category{CategoryName: req.CategoryName}, nil
}

func (s *captureCategoryService) Delete(context.Context, uuid.UUID) error { return nil }

var _ service.CategoryService = (*captureCategoryService)(nil)

type captureProductService struct {
	created dto.CreateProductRequest
}

func (s *captureProductService) Create(_ context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	s.created = req
	return &dto.ProductResponse{ID: uuid.NewString(), ProductName: req.ProductName}, nil
}

func (s *captureProductService) GetByID(context.Context, uuid.UUID) (*dto.ProductResponse, error) {
	return nil, nil
}

func (s *captureProductService) List(context.Context, dto.ProductFilter) ([]dto.ProductResponse, int64, error) {
	return nil, 0, nil
}

func (s *captureProductService) Update(context.Context, uuid.UUID, dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	return nil, nil
}

func (s *captureProductService) Delete(context.Context, uuid.UUID) error { return nil }

var _ service.ProductService = (*captureProductService)(nil)

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestCategoryCreateAcceptsMultipart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &captureCategoryService{}
	r := gin.New()
	r.POST("/categories/", NewCategoryHandler(svc).Create)

	body, contentType := multipartBody(t, map[string]string{
		"category_name": "Dry Goods",
		"cat_image":     "dry-goods.png",
	})
	req := httptest.NewRequest(http.MethodPost, "/categories/", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Dry Goods", svc.created.CategoryName)
	require.NotNil(t, svc.created.CatImage)
	assert.Equal(t, "dry-goods.png", *svc.created.CatImage)
}

func TestProductCreateAcceptsMultipartPrices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &captureProductService{}
	r := gin.New()
	r.POST("/product/", NewProductHandler(svc, nil).Create)

	body, contentType := multipartBody(t, map[string]string{
		"product_name": "Atta 2kg",
		"tp_price":     "42.00",
		"mrp_price":    "48.00",
		"stock":        "5",
		"category":     uuid.NewString(),
	})
	req := httptest.NewRequest(http.MethodPost, "/product/", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Atta 2kg", svc.created.ProductName)
	assert.Equal(t, "42.00", svc.created.TPPrice.StringFixed(2))
	assert.Equal(t, "48.00", svc.created.MRPPrice.StringFixed(2))
	assert.Equal(t, 5, svc.created.Stock)
}

func TestCategoryCreateStillAcceptsJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &captureCategoryService{}
	r := gin.New()
	r.POST("/categories/", NewCategoryHandler(svc).Create)

	req := httptest.NewRequest(http.MethodPost, "/categories/",
		strings.NewReader(`{"category_name":"Dry Goods"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Dry Goods", svc.created.CategoryName)
}
