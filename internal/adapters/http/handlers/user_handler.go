package handlers

import (
	"errors"
	"strconv"
	"strings"

	"nile-backoffice/internal/adapters/http/middleware"
	"nile-backoffice/internal/core/domain"
	"nile-backoffice/internal/core/services"
	"nile-backoffice/internal/pkg/pagination"
	"nile-backoffice/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// BulkDeleteRequest carries the ids for a batch delete
type BulkDeleteRequest struct {
	IDs []uint `json:"ids"`
}

// ListUsers lists users with filters
// @Summary List users
// @Description Get users with search and filters
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search username, email or full name"
// @Param role_id query int false "Filter by role"
// @Param is_active query bool false "Filter by active flag"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	input := &services.ListUsersInput{
		Search: c.Query("search"),
		Page:   params.Page,
		Limit:  params.Limit,
	}
	if roleID, err := strconv.ParseUint(c.Query("role_id"), 10, 32); err == nil {
		id := uint(roleID)
		input.RoleID = &id
	}
	if c.Query("is_active") != "" {
		active := c.Query("is_active") == "true"
		input.IsActive = &active
	}

	users, meta, err := h.userService.List(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "Users retrieved successfully", fiber.Map{
		"users": users,
		"meta":  meta,
	})
}

// GetUser gets a user by ID
// @Summary Get user
// @Description Get a user by ID
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	user, err := h.userService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to get user")
	}

	return response.Success(c, "User retrieved successfully", fiber.Map{
		"user": user,
	})
}

// CreateUser creates a new user
// @Summary Create user
// @Description Create a new user account
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateUserInput true "User data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var input services.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return response.BadRequest(c, "Username, email and password are required")
	}
	if input.RoleID == 0 {
		return response.BadRequest(c, "Role is required")
	}

	user, err := h.userService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return response.Conflict(c, "Username or email already exists")
		case errors.Is(err, domain.ErrRoleNotFound):
			return response.BadRequest(c, "Role not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Password must be at least 8 characters")
		default:
			return response.InternalServerError(c, "Failed to create user")
		}
	}

	return response.Created(c, "User created successfully", fiber.Map{
		"user": user,
	})
}

// UpdateUser updates a user
// @Summary Update user
// @Description Update a user account
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body services.UpdateUserInput true "User data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	callerID := middleware.CurrentUserID(c)
	user, err := h.userService.Update(c.Context(), callerID, uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrRoleNotFound):
			return response.BadRequest(c, "Role not found")
		case errors.Is(err, services.ErrCannotChangeOwnRole):
			return response.BadRequest(c, "You cannot change your own role")
		case errors.Is(err, domain.ErrDuplicateEntry):
			return response.Conflict(c, "Email already in use")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Password must be at least 8 characters")
		default:
			return response.InternalServerError(c, "Failed to update user")
		}
	}

	return response.Success(c, "User updated successfully", fiber.Map{
		"user": user,
	})
}

// DeleteUser deletes a user
// @Summary Delete user
// @Description Delete a user account
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	callerID := middleware.CurrentUserID(c)
	if err := h.userService.Delete(c.Context(), callerID, uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrCannotDeleteSelf):
			return response.Forbidden(c, "You cannot delete your own account")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to delete user")
		}
	}

	return response.Success(c, "User deleted successfully", nil)
}

// BulkDeleteUsers deletes a batch of users
// @Summary Bulk delete users
// @Description Delete multiple user accounts. The batch is rejected as a
// whole if it contains the caller's own account.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BulkDeleteRequest true "User IDs"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /users/bulk-delete [post]
func (h *UserHandler) BulkDeleteUsers(c *fiber.Ctx) error {
	var req BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	callerID := middleware.CurrentUserID(c)
	deleted, err := h.userService.DeleteMany(c.Context(), callerID, req.IDs)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCannotDeleteSelf):
			return response.BadRequest(c, "You cannot delete your own account")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "No IDs provided")
		default:
			return response.InternalServerError(c, "Failed to delete users")
		}
	}

	return response.Success(c, "Users deleted successfully", fiber.Map{
		"deleted": deleted,
	})
}
