package repositories

import (
	"context"

	"nile-backoffice/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// CustomerFilter narrows customer listings
type CustomerFilter struct {
	Search      string
	Nationality string
	Offset      int
	Limit       int
}

// CustomerRepository handles customer data access
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer
func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// GetByID gets a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List lists customers with filtering and pagination
func (r *CustomerRepository) List(ctx context.Context, filter *CustomerFilter) ([]*models.Customer, int64, error) {
	var items []*models.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Customer{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"name LIKE ? OR phone LIKE ? OR email LIKE ? OR passport_number LIKE ?",
			like, like, like, like,
		)
	}
	if filter.Nationality != "" {
		query = query.Where("nationality = ?", filter.Nationality)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&items).Error

	return items, total, err
}

// Update updates a customer
func (r *CustomerRepository) Update(ctx context.Context, c *models.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes a customer
func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Customer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
