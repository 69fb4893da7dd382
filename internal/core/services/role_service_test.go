package services

import (
	"context"
	"testing"

	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoleService_CreateDefaultsPermissions(t *testing.T) {
	roleRepo := new(roleRepoMock)
	svc := NewRoleService(roleRepo, new(userRepoMock))

	roleRepo.On("ExistsByName", mock.Anything, "operations").Return(false, nil)
	roleRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Role) bool {
		return r.Name == "operations" && !r.IsSystem && r.IsActive &&
			r.Permissions.Has(models.PermViewDashboard) && !r.Permissions.Has(models.PermEditUsers)
	})).Return(nil)

	role, err := svc.Create(context.Background(), &CreateRoleInput{Name: "operations"})
	require.NoError(t, err)
	assert.Equal(t, "operations", role.Name)
	roleRepo.AssertExpectations(t)
}

func TestRoleService_CreateSuppliedPermissionsKeepDashboard(t *testing.T) {
	roleRepo := new(roleRepoMock)
	svc := NewRoleService(roleRepo, new(userRepoMock))

	roleRepo.On("ExistsByName", mock.Anything, "editor").Return(false, nil)
	roleRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Role) bool {
		return r.Permissions.Has(models.PermEditReservations) &&
			r.Permissions.Has(models.PermViewDashboard) &&
			!r.Permissions.Has(models.PermEditUsers)
	})).Return(nil)

	role, err := svc.Create(context.Background(), &CreateRoleInput{
		Name:        "editor",
		Permissions: &models.PermissionSet{EditReservations: true},
	})
	require.NoError(t, err)
	assert.True(t, role.Permissions.Has(models.PermViewDashboard))
	roleRepo.AssertExpectations(t)
}

func TestRoleService_CreateDuplicateName(t *testing.T) {
	roleRepo := new(roleRepoMock)
	svc := NewRoleService(roleRepo, new(userRepoMock))

	roleRepo.On("ExistsByName", mock.Anything, "operations").Return(true, nil)

	_, err := svc.Create(context.Background(), &CreateRoleInput{Name: "operations"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
}

func TestRoleService_CreateNeverSystem(t *testing.T) {
	roleRepo := new(roleRepoMock)
	svc := NewRoleService(roleRepo, new(userRepoMock))

	roleRepo.On("ExistsByName", mock.Anything, "sneaky").Return(false, nil)
	roleRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Role) bool {
		return !r.IsSystem
	})).Return(nil)

	_, err := svc.Create(context.Background(), &CreateRoleInput{Name: "sneaky"})
	require.NoError(t, err)
	roleRepo.AssertExpectations(t)
}

func TestRoleService_UpdateSystemRoleRejected(t *testing.T) {
	roleRepo := new(roleRepoMock)
	svc := NewRoleService(roleRepo, new(userRepoMock))

	roleRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.Role{ID: 1, Name: "admin", IsSystem: true}, nil)

	name := "renamed"
	_, err := svc.Update(context.Background(), 1, &UpdateRoleInput{DisplayName: &name})
	assert.ErrorIs(t, err, domain.ErrRoleIsSystem)
}

func TestRoleService_UpdatePartial(t *testing.T) {
	roleRepo := new(roleRepoMock)
	svc := NewRoleService(roleRepo, new(userRepoMock))

	existing := &models.Role{ID: 3, Name: "operations", DisplayName: "Ops", Description: "keep me", IsActive: true}
	roleRepo.On("GetByID", mock.Anything, uint(3)).Return(existing, nil)
	roleRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	name := "Operations Team"
	role, err := svc.Update(context.Background(), 3, &UpdateRoleInput{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Operations Team", role.DisplayName)
	assert.Equal(t, "keep me", role.Description)
}

func TestRoleService_DeleteSystemRoleRejected(t *testing.T) {
	roleRepo := new(roleRepoMock)
	svc := NewRoleService(roleRepo, new(userRepoMock))

	roleRepo.On("GetByID", mock.Anything, uint(2)).Return(&models.Role{ID: 2, Name: "viewer", IsSystem: true}, nil)

	err := svc.Delete(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrRoleIsSystem)
}

func TestRoleService_DeleteReferencedRoleRejected(t *testing.T) {
	roleRepo := new(roleRepoMock)
	userRepo := new(userRepoMock)
	svc := NewRoleService(roleRepo, userRepo)

	roleRepo.On("GetByID", mock.Anything, uint(3)).Return(&models.Role{ID: 3, Name: "operations"}, nil)
	userRepo.On("CountByRoleID", mock.Anything, uint(3)).Return(int64(2), nil)

	err := svc.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrRoleReferenced)
}

func TestRoleService_Delete(t *testing.T) {
	roleRepo := new(roleRepoMock)
	userRepo := new(userRepoMock)
	svc := NewRoleService(roleRepo, userRepo)

	roleRepo.On("GetByID", mock.Anything, uint(3)).Return(&models.Role{ID: 3, Name: "operations"}, nil)
	userRepo.On("CountByRoleID", mock.Anything, uint(3)).Return(int64(0), nil)
	roleRepo.On("Delete", mock.Anything, uint(3)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 3))
	roleRepo.AssertExpectations(t)
}
