package services

import (
	"context"
	"testing"

	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/adapters/persistence/repositories"
	"nile-backoffice/internal/core/domain"
	"nile-backoffice/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserService_Create(t *testing.T) {
	userRepo := new(userRepoMock)
	roleRepo := new(roleRepoMock)
	svc := NewUserService(userRepo, roleRepo)

	userRepo.On("ExistsByUsername", mock.Anything, "amira").Return(false, nil)
	userRepo.On("ExistsByEmail", mock.Anything, "amira@nile.local").Return(false, nil)
	roleRepo.On("GetByID", mock.Anything, uint(3)).Return(&models.Role{ID: 3, Name: "operator"}, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "amira" && u.RoleID == 3 && u.IsActive && password.Verify("a-long-password", u.Password)
	})).Return(nil)

	resp, err := svc.Create(context.Background(), &CreateUserInput{
		Username: "amira",
		Email:    "amira@nile.local",
		Password: "a-long-password",
		RoleID:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, "amira", resp.Username)
	userRepo.AssertExpectations(t)
}

func TestUserService_CreateDuplicateUsername(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewUserService(userRepo, new(roleRepoMock))

	userRepo.On("ExistsByUsername", mock.Anything, "amira").Return(true, nil)

	_, err := svc.Create(context.Background(), &CreateUserInput{
		Username: "amira",
		Email:    "amira@nile.local",
		Password: "a-long-password",
		RoleID:   3,
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestUserService_CreateUnknownRole(t *testing.T) {
	userRepo := new(userRepoMock)
	roleRepo := new(roleRepoMock)
	svc := NewUserService(userRepo, roleRepo)

	userRepo.On("ExistsByUsername", mock.Anything, "amira").Return(false, nil)
	userRepo.On("ExistsByEmail", mock.Anything, "amira@nile.local").Return(false, nil)
	roleRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), &CreateUserInput{
		Username: "amira",
		Email:    "amira@nile.local",
		Password: "a-long-password",
		RoleID:   99,
	})
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestUserService_List(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewUserService(userRepo, new(roleRepoMock))

	users := []*models.User{
		{ID: 1, Username: "one"},
		{ID: 2, Username: "two"},
	}
	userRepo.On("List", mock.Anything, mock.MatchedBy(func(f *repositories.UserFilter) bool {
		return f.Offset == 0 && f.Limit == 20
	})).Return(users, int64(2), nil)

	resp, meta, err := svc.List(context.Background(), &ListUsersInput{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, int64(2), meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestUserService_UpdateOwnRoleRejected(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewUserService(userRepo, new(roleRepoMock))

	userRepo.On("GetByID", mock.Anything, uint(5)).Return(&models.User{ID: 5, RoleID: 2}, nil)

	newRole := uint(1)
	_, err := svc.Update(context.Background(), 5, 5, &UpdateUserInput{RoleID: &newRole})
	assert.ErrorIs(t, err, ErrCannotChangeOwnRole)
}

func TestUserService_UpdateSameRoleForSelfAllowed(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewUserService(userRepo, new(roleRepoMock))

	userRepo.On("GetByID", mock.Anything, uint(5)).Return(&models.User{ID: 5, RoleID: 2}, nil)
	userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	sameRole := uint(2)
	resp, err := svc.Update(context.Background(), 5, 5, &UpdateUserInput{RoleID: &sameRole, FullName: "Updated Name"})
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", resp.FullName)
}

func TestUserService_DeleteSelfRejected(t *testing.T) {
	svc := NewUserService(new(userRepoMock), new(roleRepoMock))

	err := svc.Delete(context.Background(), 4, 4)
	assert.ErrorIs(t, err, ErrCannotDeleteSelf)
}

func TestUserService_Delete(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewUserService(userRepo, new(roleRepoMock))

	userRepo.On("Delete", mock.Anything, uint(9)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 4, 9))
	userRepo.AssertExpectations(t)
}

func TestUserService_DeleteAbsentUser(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewUserService(userRepo, new(roleRepoMock))

	userRepo.On("Delete", mock.Anything, uint(999)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 1, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	userRepo.AssertExpectations(t)
}

func TestUserService_DeleteManyRejectsBatchWithSelf(t *testing.T) {
	svc := NewUserService(new(userRepoMock), new(roleRepoMock))

	_, err := svc.DeleteMany(context.Background(), 4, []uint{7, 4, 9})
	assert.ErrorIs(t, err, ErrCannotDeleteSelf)
}

func TestUserService_DeleteManyEmptyBatch(t *testing.T) {
	svc := NewUserService(new(userRepoMock), new(roleRepoMock))

	_, err := svc.DeleteMany(context.Background(), 4, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserService_DeleteMany(t *testing.T) {
	userRepo := new(userRepoMock)
	svc := NewUserService(userRepo, new(roleRepoMock))

	userRepo.On("DeleteMany", mock.Anything, []uint{7, 9}).Return(int64(2), nil)

	deleted, err := svc.DeleteMany(context.Background(), 4, []uint{7, 9})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
