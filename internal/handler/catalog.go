package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/service"
)

// ── Brands ───────────────────────────────────────────────────────────────────

type BrandHandler struct{ svc service.BrandService }

func NewBrandHandler(svc service.BrandService) *BrandHandler { return &BrandHandler{svc: svc} }

// Create godoc
// @Summary      Create brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.BrandRequest true "Brand"
// @Success      201  {object} model.Brand
// @Failure      409  {object} apierror.APIError
// @Router       /brand/ [post]
func (h *BrandHandler) Create(c *gin.Context) {
	var req dto.BrandRequest
	if !bindAndValidate(c, &req) {
		return
	}
	brand, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, brand)
}

// List godoc
// @Summary      List brands
// @Tags         brands
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.Brand
// @Router       /brand/ [get]
func (h *BrandHandler) List(c *gin.Context) {
	brands, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

// Update godoc
// @Summary      Update brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string           true "Brand UUID"
// @Param        body body dto.BrandRequest true "Brand"
// @Success      200  {object} model.Brand
// @Failure      404  {object} apierror.APIError
// @Router       /brand/{id}/ [put]
func (h *BrandHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.BrandRequest
	if !bindAndValidate(c, &req) {
		return
	}
	brand, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

// Delete godoc
// @Summary      Delete brand
// @Tags         brands
// @Security     BearerAuth
// @Param        id path string true "Brand UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /brand/{id}/ [delete]
func (h *BrandHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Categories ───────────────────────────────────────────────────────────────

type CategoryHandler struct{ svc service.CategoryService }

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// Create godoc
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CategoryRequest true "Category"
// @Success      201  {object} model.Category
// @Failure      409  {object} apierror.APIError
// @Router       /categories/ [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	category, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// List godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.Category
// @Router       /categories/ [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Update godoc
// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string              true "Category UUID"
// @Param        body body dto.CategoryRequest true "Category"
// @Success      200  {object} model.Category
// @Failure      404  {object} apierror.APIError
// @Router       /categories/{id}/ [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	category, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Delete godoc
// @Summary      Delete category
// @Tags         categories
// @Security     BearerAuth
// @Param        id path string true "Category UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /categories/{id}/ [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
