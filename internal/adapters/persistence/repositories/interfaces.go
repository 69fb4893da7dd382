package repositories

import (
	"context"
	"time"

	"nile-backoffice/internal/adapters/persistence/models"
)

// UserFilter narrows user listings
type UserFilter struct {
	Search   string
	RoleID   *uint
	IsActive *bool
	Offset   int
	Limit    int
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	DeleteMany(ctx context.Context, ids []uint) (int64, error)
	List(ctx context.Context, filter *UserFilter) ([]*models.User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByRoleID(ctx context.Context, roleID uint) (int64, error)
}

// RoleRepository defines role repository interface
type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	GetByID(ctx context.Context, id uint) (*models.Role, error)
	GetByName(ctx context.Context, name string) (*models.Role, error)
	Update(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Role, int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// ReservationFilter narrows reservation listings
type ReservationFilter struct {
	Search   string
	Progress string
	Branch   string
	Currency string
	DateFrom *time.Time
	DateTo   *time.Time
	Offset   int
	Limit    int
}

// ReservationRepository defines reservation repository interface.
// Every read excludes soft-deleted rows.
type ReservationRepository interface {
	Create(ctx context.Context, r *models.Reservation) error
	GetByID(ctx context.Context, id uint) (*models.Reservation, error)
	List(ctx context.Context, filter *ReservationFilter) ([]*models.Reservation, int64, error)
	Update(ctx context.Context, r *models.Reservation) error
	SoftDelete(ctx context.Context, id, userID uint) error
	SoftDeleteMany(ctx context.Context, ids []uint, userID uint) (int64, error)
	ExistsByFileNumber(ctx context.Context, fileNumber string) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	CountByProgress(ctx context.Context) (map[string]int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
