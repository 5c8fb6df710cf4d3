package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/parvezislam45/inventory/internal/apierror"
	"github.com/parvezislam45/inventory/internal/config"
	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/model"
	"github.com/parvezislam45/inventory/internal/repository"
)

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, username string) error {
	for id, u := range r.users {
		if u.Username == username {
			delete(r.users, id)
			return nil
		}
	}
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    2,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), authTestConfig())

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "shopkeeper",
		Password: "open sesame",
	})
	require.NoError(t, err)
	assert.Equal(t, string(model.RoleUser), user.Role)
	assert.True(t, user.IsActive)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "shopkeeper",
		Password: "open sesame",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), authTestConfig())

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "dup", Password: "password1"})
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), dto.RegisterRequest{Username: "dup", Password: "password2"})
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), authTestConfig())
	_, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "u1", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "u1", Password: "wrong"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.Error(t, err)
}

func TestRefreshRoundTrip(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), authTestConfig())
	_, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "u1", Password: "correct horse"})
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "u1", Password: "correct horse"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, login.User.ID, refreshed.User.ID)

	_, err = svc.Refresh(context.Background(), "not-a-token")
	assert.Error(t, err)
}
