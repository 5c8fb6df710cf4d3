package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/parvezislam45/inventory/internal/apierror"
	"github.com/parvezislam45/inventory/internal/config"
	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/model"
	"github.com/parvezislam45/inventory/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.UserRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username already taken", apierror.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username already taken", apierror.ErrConflict)
		}
		return nil, err
	}
	resp := mapUser(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if !user.IsActive {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	return s.tokenPair(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token invalid or expired")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("malformed token")
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("malformed token")
	}

	user, err := s.repo.FindByID(ctx, uid)
	if err != nil || !user.IsActive {
		return nil, errors.New("user not found or inactive")
	}

	return s.tokenPair(user)
}

func (s *authService) tokenPair(user *model.User) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         mapUser(user),
	}, nil
}

func (s *authService) generateToken(user *model.User, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func mapUser(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}
