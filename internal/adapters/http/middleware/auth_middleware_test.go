package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/adapters/persistence/repositories"
	"nile-backoffice/internal/config"
	"nile-backoffice/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "middleware-test-secret-32-characters"

// fakeUserRepo serves a fixed set of users keyed by id
type fakeUserRepo struct {
	users map[uint]*models.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error { return nil }
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uint) error           { return nil }
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

func testApp(users map[uint]*models.User, extra ...fiber.Handler) *fiber.App {
	cfg := &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: testSecret, AccessTokenMins: 15},
	}
	repo := &fakeUserRepo{users: users}

	app := fiber.New()
	handlers := []fiber.Handler{AuthMiddleware(cfg, repo)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": CurrentUserID(c)})
	})
	app.Get("/protected", handlers...)
	return app
}

func viewerUser() *models.User {
	return &models.User{
		ID:       7,
		Username: "reda",
		RoleID:   2,
		IsActive: true,
		Role: &models.Role{
			ID:          2,
			Name:        "viewer",
			Permissions: models.ViewOnlyPermissions(),
			IsActive:    true,
		},
	}
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	app := testApp(map[uint]*models.User{7: viewerUser()})

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	app := testApp(map[uint]*models.User{7: viewerUser()})

	token, err := jwt.GenerateAccessToken(7, "reda", testSecret, 15)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareCookieToken(t *testing.T) {
	app := testApp(map[uint]*models.User{7: viewerUser()})

	token, err := jwt.GenerateAccessToken(7, "reda", testSecret, 15)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app := testApp(map[uint]*models.User{7: viewerUser()})

	token, err := jwt.GenerateAccessToken(7, "reda", testSecret, -1)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareUserGone(t *testing.T) {
	app := testApp(map[uint]*models.User{})

	token, err := jwt.GenerateAccessToken(7, "reda", testSecret, 15)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareInactiveUser(t *testing.T) {
	user := viewerUser()
	user.IsActive = false
	app := testApp(map[uint]*models.User{7: user})

	token, err := jwt.GenerateAccessToken(7, "reda", testSecret, 15)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequirePermissionGranted(t *testing.T) {
	app := testApp(map[uint]*models.User{7: viewerUser()}, RequirePermission(models.PermViewReservations))

	token, err := jwt.GenerateAccessToken(7, "reda", testSecret, 15)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequirePermissionDenied(t *testing.T) {
	app := testApp(map[uint]*models.User{7: viewerUser()}, RequirePermission(models.PermEditReservations))

	token, err := jwt.GenerateAccessToken(7, "reda", testSecret, 15)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequirePermissionInactiveRole(t *testing.T) {
	user := viewerUser()
	user.Role.IsActive = false
	app := testApp(map[uint]*models.User{7: user}, RequirePermission(models.PermViewReservations))

	token, err := jwt.GenerateAccessToken(7, "reda", testSecret, 15)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequirePermissionNoRole(t *testing.T) {
	user := viewerUser()
	user.Role = nil
	app := testApp(map[uint]*models.User{7: user}, RequirePermission(models.PermViewReservations))

	token, err := jwt.GenerateAccessToken(7, "reda", testSecret, 15)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
