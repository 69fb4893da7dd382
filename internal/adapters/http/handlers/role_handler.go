package handlers

import (
	"errors"
	"strconv"

	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/core/domain"
	"nile-backoffice/internal/core/services"
	"nile-backoffice/internal/pkg/pagination"
	"nile-backoffice/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RoleHandler handles role management endpoints
type RoleHandler struct {
	roleService *services.RoleService
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(roleService *services.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// ListRoles lists all roles
// @Summary List roles
// @Description Get all roles
// @Tags Roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /roles [get]
func (h *RoleHandler) ListRoles(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	roles, meta, err := h.roleService.List(c.Context(), params.Page, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list roles")
	}

	return response.Success(c, "Roles retrieved successfully", fiber.Map{
		"roles": roles,
		"meta":  meta,
	})
}

// GetRole gets a role by ID
// @Summary Get role
// @Description Get a role by ID
// @Tags Roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /roles/{id} [get]
func (h *RoleHandler) GetRole(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	role, err := h.roleService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return response.NotFound(c, "Role not found")
		}
		return response.InternalServerError(c, "Failed to get role")
	}

	return response.Success(c, "Role retrieved successfully", fiber.Map{
		"role": role,
	})
}

// ListPermissions lists every permission flag a role can carry
// @Summary List permissions
// @Description Get the full closed set of permission flags
// @Tags Roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /roles/permissions [get]
func (h *RoleHandler) ListPermissions(c *fiber.Ctx) error {
	return response.Success(c, "Permissions retrieved successfully", fiber.Map{
		"permissions": models.AllPermissions(),
		"defaults":    models.DefaultPermissions(),
	})
}

// CreateRole creates a new role
// @Summary Create role
// @Description Create a new role with a permission set
// @Tags Roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateRoleInput true "Role data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /roles [post]
func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	var input services.CreateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	role, err := h.roleService.Create(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return response.Conflict(c, "Role name already exists")
		}
		return response.InternalServerError(c, "Failed to create role")
	}

	return response.Created(c, "Role created successfully", fiber.Map{
		"role": role,
	})
}

// UpdateRole updates a role
// @Summary Update role
// @Description Update a role. System roles cannot be modified.
// @Tags Roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Param body body services.UpdateRoleInput true "Role data"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /roles/{id} [put]
func (h *RoleHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.UpdateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	role, err := h.roleService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoleNotFound):
			return response.NotFound(c, "Role not found")
		case errors.Is(err, domain.ErrRoleIsSystem):
			return response.Forbidden(c, "System roles cannot be modified")
		default:
			return response.InternalServerError(c, "Failed to update role")
		}
	}

	return response.Success(c, "Role updated successfully", fiber.Map{
		"role": role,
	})
}

// DeleteRole deletes a role
// @Summary Delete role
// @Description Delete a role. System roles and roles still assigned to
// users cannot be deleted.
// @Tags Roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /roles/{id} [delete]
func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.roleService.Delete(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrRoleNotFound):
			return response.NotFound(c, "Role not found")
		case errors.Is(err, domain.ErrRoleIsSystem):
			return response.Forbidden(c, "System roles cannot be deleted")
		case errors.Is(err, domain.ErrRoleReferenced):
			return response.Conflict(c, "Role is still assigned to users")
		default:
			return response.InternalServerError(c, "Failed to delete role")
		}
	}

	return response.Success(c, "Role deleted successfully", nil)
}
