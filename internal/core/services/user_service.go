package services

import (
	"context"
	"errors"
	"log"

	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/adapters/persistence/repositories"
	"nile-backoffice/internal/core/domain"
	"nile-backoffice/internal/pkg/pagination"
	"nile-backoffice/internal/pkg/password"

	"gorm.io/gorm"
)

// User management errors
var (
	ErrCannotDeleteSelf    = errors.New("cannot delete your own account")
	ErrCannotChangeOwnRole = errors.New("cannot change your own role")
)

// UserService handles user management business logic
type UserService struct {
	userRepo repositories.UserRepository
	roleRepo repositories.RoleRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, roleRepo repositories.RoleRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// CreateUserInput represents user creation input
type CreateUserInput struct {
	Username   string `json:"username" validate:"required,min=3,max=50"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Branch     string `json:"branch"`
	Department string `json:"department"`
	RoleID     uint   `json:"role_id" validate:"required"`
	IsActive   *bool  `json:"is_active"`
}

// UpdateUserInput represents user update input (zero values are ignored)
type UpdateUserInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Branch     string `json:"branch"`
	Department string `json:"department"`
	RoleID     *uint  `json:"role_id"`
	IsActive   *bool  `json:"is_active"`
}

// ListUsersInput represents user listing filters
type ListUsersInput struct {
	Search   string
	RoleID   *uint
	IsActive *bool
	Page     int
	Limit    int
}

// Create creates a new user account
func (s *UserService) Create(ctx context.Context, input *CreateUserInput) (*models.UserResponse, error) {
	// Pre-checks mirror the unique indexes so callers get a clean conflict
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	if _, err := s.roleRepo.GetByID(ctx, input.RoleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}

	if err := password.Validate(input.Password); err != nil {
		return nil, domain.ErrInvalidInput
	}
	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	user := &models.User{
		Username:   input.Username,
		Email:      input.Email,
		Password:   hashed,
		FullName:   input.FullName,
		Phone:      input.Phone,
		Branch:     input.Branch,
		Department: input.Department,
		RoleID:     input.RoleID,
		IsActive:   isActive,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User created: %s", user.Username)
	return user.ToResponse(), nil
}

// GetByID returns a single user
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// List returns users matching the filter with pagination metadata
func (s *UserService) List(ctx context.Context, input *ListUsersInput) ([]*models.UserResponse, *pagination.Meta, error) {
	params := pagination.Normalize(input.Page, input.Limit)

	users, total, err := s.userRepo.List(ctx, &repositories.UserFilter{
		Search:   input.Search,
		RoleID:   input.RoleID,
		IsActive: input.IsActive,
		Offset:   params.Offset,
		Limit:    params.Limit,
	})
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}

	return responses, pagination.GetMeta(params, total), nil
}

// Update updates a user. A caller cannot change their own role.
func (s *UserService) Update(ctx context.Context, callerID, id uint, input *UpdateUserInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if input.RoleID != nil && *input.RoleID != user.RoleID {
		if callerID == id {
			return nil, ErrCannotChangeOwnRole
		}
		if _, err := s.roleRepo.GetByID(ctx, *input.RoleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrRoleNotFound
			}
			return nil, err
		}
		user.RoleID = *input.RoleID
		user.Role = nil
	}

	if input.Email != "" && input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateEntry
		}
		user.Email = input.Email
	}
	if input.Password != "" {
		if err := password.Validate(input.Password); err != nil {
			return nil, domain.ErrInvalidInput
		}
		hashed, err := password.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Branch != "" {
		user.Branch = input.Branch
	}
	if input.Department != "" {
		user.Department = input.Department
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// Delete removes a user. Self-deletion is rejected.
func (s *UserService) Delete(ctx context.Context, callerID, id uint) error {
	if callerID == id {
		return ErrCannotDeleteSelf
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	log.Printf("✅ User deleted: id=%d by=%d", id, callerID)
	return nil
}

// DeleteMany removes a batch of users. The whole batch is rejected if it
// contains the caller's own id.
func (s *UserService) DeleteMany(ctx context.Context, callerID uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.ErrInvalidInput
	}
	for _, id := range ids {
		if id == callerID {
			return 0, ErrCannotDeleteSelf
		}
	}

	deleted, err := s.userRepo.DeleteMany(ctx, ids)
	if err != nil {
		return 0, err
	}

	log.Printf("✅ Users deleted: %d of %d requested by=%d", deleted, len(ids), callerID)
	return deleted, nil
}
