package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/adapters/persistence/repositories"
	"nile-backoffice/internal/config"
	"nile-backoffice/internal/core/services"
	"nile-backoffice/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUserRepo serves a fixed set of users keyed by username
type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uint) error           { return gorm.ErrRecordNotFound }
func (f *fakeUserRepo) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	return 0, nil
}
func (f *fakeUserRepo) List(ctx context.Context, filter *repositories.UserFilter) ([]*models.User, int64, error) {
	return nil, 0, nil
}
func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}
func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (f *fakeUserRepo) CountByRoleID(ctx context.Context, roleID uint) (int64, error) {
	return 0, nil
}

// fakeRoleRepo has no roles
type fakeRoleRepo struct{}

func (f *fakeRoleRepo) Create(ctx context.Context, role *models.Role) error { return nil }
func (f *fakeRoleRepo) GetByID(ctx context.Context, id uint) (*models.Role, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRoleRepo) GetByName(ctx context.Context, name string) (*models.Role, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRoleRepo) Update(ctx context.Context, role *models.Role) error { return nil }
func (f *fakeRoleRepo) Delete(ctx context.Context, id uint) error           { return nil }
func (f *fakeRoleRepo) List(ctx context.Context, offset, limit int) ([]*models.Role, int64, error) {
	return nil, 0, nil
}
func (f *fakeRoleRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}

func loginTestApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := password.Hash("right-password")
	require.NoError(t, err)

	cfg := &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "auth-handler-test-secret-32-chars!!", AccessTokenMins: 15},
	}
	userRepo := &fakeUserRepo{users: map[string]*models.User{
		"reda": {
			ID:       7,
			Username: "reda",
			Password: hash,
			IsActive: true,
			RoleID:   2,
			Role:     &models.Role{ID: 2, Name: "viewer", IsActive: true},
		},
	}}

	handler := NewAuthHandler(services.NewAuthService(userRepo, &fakeRoleRepo{}, cfg))

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)
	return app
}

func TestAuthHandlerLoginWrongPassword(t *testing.T) {
	app := loginTestApp(t)

	body := `{"username":"reda","password":"wrong-password"}`
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var envelope struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Invalid credentials", envelope.Error)
}

func TestAuthHandlerLoginUnknownUser(t *testing.T) {
	app := loginTestApp(t)

	body := `{"username":"nobody","password":"whatever"}`
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}
