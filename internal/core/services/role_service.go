package services

import (
	"context"
	"errors"
	"log"

	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/adapters/persistence/repositories"
	"nile-backoffice/internal/core/domain"
	"nile-backoffice/internal/pkg/pagination"

	"gorm.io/gorm"
)

// RoleService handles role management business logic
type RoleService struct {
	roleRepo repositories.RoleRepository
	userRepo repositories.UserRepository
}

// NewRoleService creates a new role service
func NewRoleService(roleRepo repositories.RoleRepository, userRepo repositories.UserRepository) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		userRepo: userRepo,
	}
}

// CreateRoleInput represents role creation input
type CreateRoleInput struct {
	Name        string                `json:"name" validate:"required,min=2,max=50"`
	DisplayName string                `json:"display_name"`
	Description string                `json:"description"`
	Permissions *models.PermissionSet `json:"permissions"`
	IsActive    *bool                 `json:"is_active"`
}

// UpdateRoleInput represents role update input
type UpdateRoleInput struct {
	DisplayName *string               `json:"display_name"`
	Description *string               `json:"description"`
	Permissions *models.PermissionSet `json:"permissions"`
	IsActive    *bool                 `json:"is_active"`
}

// Create creates a new role. Omitted permissions fall back to the default
// set, which grants dashboard viewing only.
func (s *RoleService) Create(ctx context.Context, input *CreateRoleInput) (*models.Role, error) {
	exists, err := s.roleRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEntry
	}

	perms := models.DefaultPermissions()
	if input.Permissions != nil {
		perms = *input.Permissions
		// Dashboard viewing is always granted, even when the supplied
		// set omits the key.
		perms.ViewDashboard = true
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	role := &models.Role{
		Name:        input.Name,
		DisplayName: input.DisplayName,
		Description: input.Description,
		Permissions: perms,
		IsSystem:    false,
		IsActive:    isActive,
	}

	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	log.Printf("✅ Role created: %s", role.Name)
	return role, nil
}

// GetByID returns a single role
func (s *RoleService) GetByID(ctx context.Context, id uint) (*models.Role, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return role, nil
}

// List returns all roles with pagination metadata
func (s *RoleService) List(ctx context.Context, page, limit int) ([]*models.Role, *pagination.Meta, error) {
	params := pagination.Normalize(page, limit)

	roles, total, err := s.roleRepo.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, nil, err
	}

	return roles, pagination.GetMeta(params, total), nil
}

// Update updates a mutable role. System roles are immutable.
func (s *RoleService) Update(ctx context.Context, id uint, input *UpdateRoleInput) (*models.Role, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}

	if role.IsSystem {
		return nil, domain.ErrRoleIsSystem
	}

	if input.DisplayName != nil {
		role.DisplayName = *input.DisplayName
	}
	if input.Description != nil {
		role.Description = *input.Description
	}
	if input.Permissions != nil {
		role.Permissions = *input.Permissions
	}
	if input.IsActive != nil {
		role.IsActive = *input.IsActive
	}

	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}

	log.Printf("✅ Role updated: %s", role.Name)
	return role, nil
}

// Delete removes a role. System roles and roles still assigned to users
// cannot be deleted.
func (s *RoleService) Delete(ctx context.Context, id uint) error {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRoleNotFound
		}
		return err
	}

	if role.IsSystem {
		return domain.ErrRoleIsSystem
	}

	count, err := s.userRepo.CountByRoleID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrRoleReferenced
	}

	if err := s.roleRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Role deleted: %s", role.Name)
	return nil
}
