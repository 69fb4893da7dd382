package services

import (
	"context"
	"testing"

	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/config"
	"nile-backoffice/internal/core/domain"
	"nile-backoffice/internal/pkg/jwt"
	"nile-backoffice/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:          "unit-test-secret-at-least-32-chars",
			AccessTokenMins: 15,
		},
	}
}

func activeUser(t *testing.T, pass string) *models.User {
	t.Helper()
	hashed, err := password.Hash(pass)
	require.NoError(t, err)
	return &models.User{
		ID:       7,
		Username: "reda",
		Email:    "reda@nile.local",
		Password: hashed,
		RoleID:   2,
		IsActive: true,
		Role:     &models.Role{ID: 2, Name: "viewer", Permissions: models.ViewOnlyPermissions(), IsActive: true},
	}
}

func TestAuthService_Login(t *testing.T) {
	userRepo := new(userRepoMock)
	roleRepo := new(roleRepoMock)
	svc := NewAuthService(userRepo, roleRepo, testConfig())

	user := activeUser(t, "secret-pass-1")
	userRepo.On("GetByUsername", mock.Anything, "reda").Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.LastLogin != nil
	})).Return(nil)

	result, err := svc.Login(context.Background(), &LoginInput{Username: "reda", Password: "secret-pass-1"})
	require.NoError(t, err)
	assert.Equal(t, "reda", result.User.Username)
	assert.Equal(t, 15*60, result.ExpiresIn)

	claims, err := jwt.ValidateAccessToken(result.AccessToken, "unit-test-secret-at-least-32-chars")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	userRepo.AssertExpectations(t)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewAuthService(userRepo, new(roleRepoMock), testConfig())

	userRepo.On("GetByUsername", mock.Anything, "reda").Return(activeUser(t, "secret-pass-1"), nil)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "reda", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewAuthService(userRepo, new(roleRepoMock), testConfig())

	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginInactiveUser(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewAuthService(userRepo, new(roleRepoMock), testConfig())

	user := activeUser(t, "secret-pass-1")
	user.IsActive = false
	userRepo.On("GetByUsername", mock.Anything, "reda").Return(user, nil)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "reda", Password: "secret-pass-1"})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_Register(t *testing.T) {
	userRepo := new(userRepoMock)
	roleRepo := new(roleRepoMock)
	svc := NewAuthService(userRepo, roleRepo, testConfig())

	viewer := &models.Role{ID: 2, Name: models.SystemRoleViewer, Permissions: models.ViewOnlyPermissions(), IsSystem: true, IsActive: true}
	userRepo.On("ExistsByUsername", mock.Anything, "newbie").Return(false, nil)
	userRepo.On("ExistsByEmail", mock.Anything, "newbie@nile.local").Return(false, nil)
	roleRepo.On("GetByName", mock.Anything, models.SystemRoleViewer).Return(viewer, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "newbie" && u.RoleID == 2 && u.IsActive && password.Verify("a-long-password", u.Password)
	})).Return(nil)

	result, err := svc.Register(context.Background(), &RegisterInput{
		Username: "newbie",
		Email:    "newbie@nile.local",
		Password: "a-long-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "newbie", result.User.Username)
	assert.Equal(t, models.SystemRoleViewer, result.User.RoleName)
	assert.NotEmpty(t, result.AccessToken)
	userRepo.AssertExpectations(t)
	roleRepo.AssertExpectations(t)
}

func TestAuthService_RegisterConflicts(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewAuthService(userRepo, new(roleRepoMock), testConfig())

	userRepo.On("ExistsByUsername", mock.Anything, "taken").Return(true, nil)

	_, err := svc.Register(context.Background(), &RegisterInput{
		Username: "taken",
		Email:    "taken@nile.local",
		Password: "a-long-password",
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestAuthService_RegisterShortPassword(t *testing.T) {
	svc := NewAuthService(new(userRepoMock), new(roleRepoMock), testConfig())

	_, err := svc.Register(context.Background(), &RegisterInput{
		Username: "newbie",
		Email:    "newbie@nile.local",
		Password: "short",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuthService_UpdatePassword(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewAuthService(userRepo, new(roleRepoMock), testConfig())

	user := activeUser(t, "old-password-1")
	userRepo.On("GetByID", mock.Anything, uint(7)).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return password.Verify("new-password-1", u.Password)
	})).Return(nil)

	err := svc.UpdatePassword(context.Background(), 7, &UpdatePasswordInput{
		OldPassword: "old-password-1",
		NewPassword: "new-password-1",
	})
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestAuthService_UpdatePasswordWrongOld(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewAuthService(userRepo, new(roleRepoMock), testConfig())

	userRepo.On("GetByID", mock.Anything, uint(7)).Return(activeUser(t, "old-password-1"), nil)

	err := svc.UpdatePassword(context.Background(), 7, &UpdatePasswordInput{
		OldPassword: "not-the-old-one",
		NewPassword: "new-password-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_UpdateProfileEmailConflict(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewAuthService(userRepo, new(roleRepoMock), testConfig())

	userRepo.On("GetByID", mock.Anything, uint(7)).Return(activeUser(t, "old-password-1"), nil)
	userRepo.On("ExistsByEmail", mock.Anything, "taken@nile.local").Return(true, nil)

	_, err := svc.UpdateProfile(context.Background(), 7, &UpdateProfileInput{Email: "taken@nile.local"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
}
