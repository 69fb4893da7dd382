package repositories

import (
	"context"
	"time"

	"nile-backoffice/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// reservationRepository implements ReservationRepository
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// live scopes the query to rows that were never soft-deleted
func (r *reservationRepository) live(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Reservation{}).Where("is_deleted = ?", false)
}

// Create creates a new reservation
func (r *reservationRepository) Create(ctx context.Context, res *models.Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

// GetByID gets a live reservation by ID with its creator
func (r *reservationRepository) GetByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var res models.Reservation
	err := r.live(ctx).Preload("Creator").Where("id = ?", id).First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// List lists live reservations with filtering and pagination
func (r *reservationRepository) List(ctx context.Context, filter *ReservationFilter) ([]*models.Reservation, int64, error) {
	var items []*models.Reservation
	var total int64

	query := r.live(ctx)

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"file_number LIKE ? OR customer_name LIKE ? OR destination LIKE ? OR supplier LIKE ?",
			like, like, like, like,
		)
	}
	if filter.Progress != "" {
		query = query.Where("progress = ?", filter.Progress)
	}
	if filter.Branch != "" {
		query = query.Where("branch = ?", filter.Branch)
	}
	if filter.Currency != "" {
		query = query.Where("currency = ?", filter.Currency)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Creator").
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&items).Error

	return items, total, err
}

// Update updates a reservation
func (r *reservationRepository) Update(ctx context.Context, res *models.Reservation) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// SoftDelete flags one live reservation as deleted. A row that is absent or
// already flagged yields gorm.ErrRecordNotFound.
func (r *reservationRepository) SoftDelete(ctx context.Context, id, userID uint) error {
	now := time.Now()
	result := r.live(ctx).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted": true,
		"deleted_at": &now,
		"deleted_by": userID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDeleteMany flags a batch of live reservations in one statement
func (r *reservationRepository) SoftDeleteMany(ctx context.Context, ids []uint, userID uint) (int64, error) {
	now := time.Now()
	result := r.live(ctx).Where("id IN ?", ids).Updates(map[string]interface{}{
		"is_deleted": true,
		"deleted_at": &now,
		"deleted_by": userID,
	})
	return result.RowsAffected, result.Error
}

// ExistsByFileNumber checks a file number against all rows, deleted included,
// so a retired number is never handed out again
func (r *reservationRepository) ExistsByFileNumber(ctx context.Context, fileNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("file_number = ?", fileNumber).Count(&count).Error
	return count > 0, err
}

// CountAll counts every reservation row, deleted included. The file-number
// sequence is derived from this count.
func (r *reservationRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Reservation{}).Count(&count).Error
	return count, err
}

// CountByProgress counts live reservations grouped by progress state
func (r *reservationRepository) CountByProgress(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Progress string
		Count    int64
	}
	err := r.live(ctx).
		Select("progress, COUNT(*) as count").
		Group("progress").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Progress] = row.Count
	}
	return counts, nil
}

// CountCreatedSince counts live reservations created on or after a point in time
func (r *reservationRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.live(ctx).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
