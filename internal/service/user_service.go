package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/parvezislam45/inventory/internal/apierror"
	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/model"
	"github.com/parvezislam45/inventory/internal/repository"
)

// UserService backs the admin user screen: listing accounts and assigning
// roles. Lookup is by username, which is what the admin UI keys on.
type UserService interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	GetByUsername(ctx context.Context, username string) (*dto.UserResponse, error)
	UpdateRole(ctx context.Context, username string, req dto.UpdateUserRoleRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, username string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, mapUser(&users[i]))
	}
	return out, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := s.find(ctx, username)
	if err != nil {
		return nil, err
	}
	resp := mapUser(user)
	return &resp, nil
}

func (s *userService) UpdateRole(ctx context.Context, username string, req dto.UpdateUserRoleRequest) (*dto.UserResponse, error) {
	role := model.Role(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apierror.ErrValidation, req.Role)
	}

	user, err := s.find(ctx, username)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := mapUser(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, username string) error {
	if _, err := s.find(ctx, username); err != nil {
		return err
	}
	return s.repo.Delete(ctx, username)
}

func (s *userService) find(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %q", apierror.ErrNotFound, username)
		}
		return nil, err
	}
	return user, nil
}
