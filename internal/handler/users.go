package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/service"
)

type UserHandler struct{ svc service.UserService }

func NewUserHandler(svc service.UserService) *UserHandler { return &UserHandler{svc: svc} }

// List godoc
// @Summary      List user accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.UserResponse
// @Router       /users/ [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary      Get one account by username
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Success      200 {object} dto.UserResponse
// @Failure      404 {object} apierror.APIError
// @Router       /users/{username}/ [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.svc.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateRole godoc
// @Summary      Assign a role to an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Param        body body dto.UpdateUserRoleRequest true "New role"
// @Success      200 {object} dto.UserResponse
// @Failure      404 {object} apierror.APIError
// @Failure      422 {object} apierror.ValidationError
// @Router       /users/{username}/ [patch]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateUserRoleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user, err := h.svc.UpdateRole(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary      Delete an account
// @Tags         accounts
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /users/{username}/ [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("username")); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
