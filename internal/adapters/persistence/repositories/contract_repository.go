package repositories

import (
	"context"

	"nile-backoffice/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ============================================================
// Hotel Contracts
// ============================================================

// HotelContractRepository handles hotel contract data access
type HotelContractRepository struct {
	db *gorm.DB
}

// NewHotelContractRepository creates a new hotel contract repository
func NewHotelContractRepository(db *gorm.DB) *HotelContractRepository {
	return &HotelContractRepository{db: db}
}

func (r *HotelContractRepository) Create(ctx context.Context, c *models.HotelContract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *HotelContractRepository) GetByID(ctx context.Context, id uint) (*models.HotelContract, error) {
	var c models.HotelContract
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *HotelContractRepository) List(ctx context.Context, filter *DateRangeFilter) ([]*models.HotelContract, int64, error) {
	var items []*models.HotelContract
	var total int64

	query := r.db.WithContext(ctx).Model(&models.HotelContract{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("contract_number LIKE ? OR hotel_name LIKE ?", like, like)
	}
	if filter.Type != "" {
		query = query.Where("meal_plan = ?", filter.Type)
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

	err := query.Order("created_at DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *HotelContractRepository) Update(ctx context.Context, c *models.HotelContract) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *HotelContractRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.HotelContract{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *HotelContractRepository) ExistsByContractNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.HotelContract{}).
		Where("contract_number = ?", number).Count(&count).Error
	return count > 0, err
}

func (r *HotelContractRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.HotelContract{}).Count(&count).Error
	return count, err
}

// ============================================================
// Packages
// ============================================================

// PackageRepository handles package data access
type PackageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository
func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) Create(ctx context.Context, p *models.Package) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PackageRepository) GetByID(ctx context.Context, id uint) (*models.Package, error) {
	var p models.Package
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PackageRepository) List(ctx context.Context, filter *DateRangeFilter) ([]*models.Package, int64, error) {
	var items []*models.Package
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Package{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR destination LIKE ?", like, like)
	}
	if filter.Status == "active" {
		query = query.Where("is_active = ?", true)
	} else if filter.Status == "inactive" {
		query = query.Where("is_active = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *PackageRepository) Update(ctx context.Context, p *models.Package) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PackageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Package{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountItineraries counts itineraries attached to a package
func (r *PackageRepository) CountItineraries(ctx context.Context, packageID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Itinerary{}).
		Where("package_id = ?", packageID).Count(&count).Error
	return count, err
}

// ============================================================
// Itineraries
// ============================================================

// ItineraryRepository handles itinerary data access
type ItineraryRepository struct {
	db *gorm.DB
}

// NewItineraryRepository creates a new itinerary repository
func NewItineraryRepository(db *gorm.DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

func (r *ItineraryRepository) Create(ctx context.Context, i *models.Itinerary) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *ItineraryRepository) GetByID(ctx context.Context, id uint) (*models.Itinerary, error) {
	var i models.Itinerary
	if err := r.db.WithContext(ctx).Preload("Package").First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *ItineraryRepository) List(ctx context.Context, filter *DateRangeFilter) ([]*models.Itinerary, int64, error) {
	var items []*models.Itinerary
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Itinerary{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR destination LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Package").Order("created_at DESC").
		Offset(filter.Offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *ItineraryRepository) Update(ctx context.Context, i *models.Itinerary) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *ItineraryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Itinerary{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ============================================================
// Tour Guide Schedules
// ============================================================

// GuideScheduleRepository handles tour guide schedule data access
type GuideScheduleRepository struct {
	db *gorm.DB
}

// NewGuideScheduleRepository creates a new guide schedule repository
func NewGuideScheduleRepository(db *gorm.DB) *GuideScheduleRepository {
	return &GuideScheduleRepository{db: db}
}

func (r *GuideScheduleRepository) Create(ctx context.Context, s *models.TourGuideSchedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *GuideScheduleRepository) GetByID(ctx context.Context, id uint) (*models.TourGuideSchedule, error) {
	var s models.TourGuideSchedule
	if err := r.db.WithContext(ctx).Preload("Trip").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GuideScheduleRepository) List(ctx context.Context, filter *DateRangeFilter) ([]*models.TourGuideSchedule, int64, error) {
	var items []*models.TourGuideSchedule
	var total int64

	query := r.db.WithContext(ctx).Model(&models.TourGuideSchedule{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("guide_name LIKE ? OR site LIKE ? OR language LIKE ?", like, like, like)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Trip").Order("date DESC").
		Offset(filter.Offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *GuideScheduleRepository) Update(ctx context.Context, s *models.TourGuideSchedule) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *GuideScheduleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TourGuideSchedule{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
