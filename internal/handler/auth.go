package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parvezislam45/inventory/internal/apierror"
	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Register godoc
// @Summary      Register a new account
// @Description  Creates a user account with the default role.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body body dto.RegisterRequest true "Account details"
// @Success      201  {object} dto.UserResponse
// @Failure      409  {object} apierror.APIError
// @Router       /accounts/register/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges username/password for a JWT token pair.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credentials"
// @Success      200  {object} dto.LoginResponse
// @Failure      401  {object} apierror.APIError
// @Router       /accounts/login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh godoc
// @Summary      Refresh token pair
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body body refreshRequest true "Refresh token"
// @Success      200  {object} dto.LoginResponse
// @Failure      401  {object} apierror.APIError
// @Router       /accounts/refresh/ [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary      Log out
// @Description  Tokens are stateless, so logout is acknowledged and the client discards its pair.
// @Tags         accounts
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /logout/ [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out."})
}
