package repositories

import (
	"context"
	"time"

	"nile-backoffice/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// DateRangeFilter is the shared list filter for the travel-operations stores:
// one free-text search, one status/type axis, and a date window on the
// domain's own date column.
type DateRangeFilter struct {
	Search   string
	Status   string
	Type     string
	DateFrom *time.Time
	DateTo   *time.Time
	Offset   int
	Limit    int
}

// ============================================================
// Trips
// ============================================================

// TripRepository handles trip data access
type TripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, t *models.Trip) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TripRepository) GetByID(ctx context.Context, id uint) (*models.Trip, error) {
	var t models.Trip
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TripRepository) List(ctx context.Context, filter *DateRangeFilter) ([]*models.Trip, int64, error) {
	var items []*models.Trip
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Trip{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("trip_number LIKE ? OR destination LIKE ? OR transport LIKE ?", like, like, like)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("start_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("start_date <= ?", *filter.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("start_date DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *TripRepository) Update(ctx context.Context, t *models.Trip) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TripRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Trip{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TripRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Trip{}).Count(&count).Error
	return count, err
}

// ============================================================
// Visas (soft delete)
// ============================================================

// VisaRepository handles visa data access
type VisaRepository struct {
	db *gorm.DB
}

// NewVisaRepository creates a new visa repository
func NewVisaRepository(db *gorm.DB) *VisaRepository {
	return &VisaRepository{db: db}
}

func (r *VisaRepository) live(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Visa{}).Where("is_deleted = ?", false)
}

func (r *VisaRepository) Create(ctx context.Context, v *models.Visa) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VisaRepository) GetByID(ctx context.Context, id uint) (*models.Visa, error) {
	var v models.Visa
	if err := r.live(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VisaRepository) List(ctx context.Context, filter *DateRangeFilter) ([]*models.Visa, int64, error) {
	var items []*models.Visa
	var total int64

	query := r.live(ctx)

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"serial_number LIKE ? OR customer_name LIKE ? OR country LIKE ? OR passport_number LIKE ?",
			like, like, like, like,
		)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
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

	err := query.Order("created_at DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *VisaRepository) Update(ctx context.Context, v *models.Visa) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// SoftDelete flags one live visa as deleted
func (r *VisaRepository) SoftDelete(ctx context.Context, id, userID uint) error {
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

// CountAll counts every visa row, deleted included (serial sequence source)
func (r *VisaRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Visa{}).Count(&count).Error
	return count, err
}

// ============================================================
// Bags
// ============================================================

// BagRepository handles bag data access
type BagRepository struct {
	db *gorm.DB
}

// NewBagRepository creates a new bag repository
func NewBagRepository(db *gorm.DB) *BagRepository {
	return &BagRepository{db: db}
}

func (r *BagRepository) Create(ctx context.Context, b *models.Bag) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BagRepository) GetByID(ctx context.Context, id uint) (*models.Bag, error) {
	var b models.Bag
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BagRepository) List(ctx context.Context, filter *DateRangeFilter) ([]*models.Bag, int64, error) {
	var items []*models.Bag
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Bag{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("tag_number LIKE ? OR customer_name LIKE ?", like, like)
	}
	if filter.Status != "" {
		query = query.Where("entry_id = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("trip_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("trip_date <= ?", *filter.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *BagRepository) Update(ctx context.Context, b *models.Bag) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BagRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Bag{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BagRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bag{}).Count(&count).Error
	return count, err
}

// ============================================================
// Balloons
// ============================================================

// BalloonRepository handles balloon ride data access
type BalloonRepository struct {
	db *gorm.DB
}

// NewBalloonRepository creates a new balloon repository
func NewBalloonRepository(db *gorm.DB) *BalloonRepository {
	return &BalloonRepository{db: db}
}

func (r *BalloonRepository) Create(ctx context.Context, b *models.Balloon) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BalloonRepository) GetByID(ctx context.Context, id uint) (*models.Balloon, error) {
	var b models.Balloon
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BalloonRepository) List(ctx context.Context, filter *DateRangeFilter) ([]*models.Balloon, int64, error) {
	var items []*models.Balloon
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Balloon{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("serial_number LIKE ? OR customer_name LIKE ? OR supplier LIKE ? OR pickup_hotel LIKE ?",
			like, like, like, like)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("ride_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("ride_date <= ?", *filter.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("ride_date DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *BalloonRepository) Update(ctx context.Context, b *models.Balloon) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BalloonRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Balloon{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BalloonRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Balloon{}).Count(&count).Error
	return count, err
}

// ============================================================
// Airport Transfers
// ============================================================

// TransferRepository handles airport transfer data access
type TransferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) Create(ctx context.Context, t *models.AirportTransfer) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransferRepository) GetByID(ctx context.Context, id uint) (*models.AirportTransfer, error) {
	var t models.AirportTransfer
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransferRepository) List(ctx context.Context, filter *DateRangeFilter) ([]*models.AirportTransfer, int64, error) {
	var items []*models.AirportTransfer
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AirportTransfer{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("customer_name LIKE ? OR flight_number LIKE ? OR driver_name LIKE ?", like, like, like)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("direction = ?", filter.Type)
	}
	if filter.DateFrom != nil {
		query = query.Where("transfer_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("transfer_date <= ?", *filter.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("transfer_date DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *TransferRepository) Update(ctx context.Context, t *models.AirportTransfer) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TransferRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AirportTransfer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
