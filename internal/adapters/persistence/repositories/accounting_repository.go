package repositories

import (
	"context"

	"nile-backoffice/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ============================================================
// Ledger Accounts
// ============================================================

// AccountRepository handles ledger account data access
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *models.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	var a models.Account
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) List(ctx context.Context, filter *DateRangeFilter) ([]*models.Account, int64, error) {
	var items []*models.Account
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Account{})

	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Offset(filter.Offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *AccountRepository) Update(ctx context.Context, a *models.Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AccountRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Account{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AccountRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// CountTransactions counts ledger entries booked against an account
func (r *AccountRepository) CountTransactions(ctx context.Context, accountID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AccountTransaction{}).
		Where("account_id = ?", accountID).Count(&count).Error
	return count, err
}

// ============================================================
// Transactions
// ============================================================

// TransactionRepository handles ledger transaction data access
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *models.AccountTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uint) (*models.AccountTransaction, error) {
	var t models.AccountTransaction
	if err := r.db.WithContext(ctx).Preload("Account").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// TransactionFilter narrows the transaction listing
type TransactionFilter struct {
	Search    string
	AccountID *uint
	Direction string
	DateFrom  *string
	DateTo    *string
	Offset    int
	Limit     int
}

func (r *TransactionRepository) List(ctx context.Context, filter *TransactionFilter) ([]*models.AccountTransaction, int64, error) {
	var items []*models.AccountTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AccountTransaction{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("serial_number LIKE ? OR description LIKE ? OR reference LIKE ?", like, like, like)
	}
	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.Direction != "" {
		query = query.Where("direction = ?", filter.Direction)
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

	err := query.Preload("Account").Order("date DESC, id DESC").
		Offset(filter.Offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *TransactionRepository) Update(ctx context.Context, t *models.AccountTransaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AccountTransaction{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountAll counts every transaction row (serial sequence source)
func (r *TransactionRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AccountTransaction{}).Count(&count).Error
	return count, err
}

// ============================================================
// Safes
// ============================================================

// SafeRepository handles cash safe data access
type SafeRepository struct {
	db *gorm.DB
}

// NewSafeRepository creates a new safe repository
func NewSafeRepository(db *gorm.DB) *SafeRepository {
	return &SafeRepository{db: db}
}

func (r *SafeRepository) Create(ctx context.Context, s *models.Safe) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SafeRepository) GetByID(ctx context.Context, id uint) (*models.Safe, error) {
	var s models.Safe
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SafeRepository) List(ctx context.Context, filter *DateRangeFilter) ([]*models.Safe, int64, error) {
	var items []*models.Safe
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Safe{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR branch LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Offset(filter.Offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *SafeRepository) Update(ctx context.Context, s *models.Safe) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SafeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Safe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SafeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Safe{}).
		Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// ============================================================
// Banks
// ============================================================

// BankRepository handles bank account data access
type BankRepository struct {
	db *gorm.DB
}

// NewBankRepository creates a new bank repository
func NewBankRepository(db *gorm.DB) *BankRepository {
	return &BankRepository{db: db}
}

func (r *BankRepository) Create(ctx context.Context, b *models.Bank) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BankRepository) GetByID(ctx context.Context, id uint) (*models.Bank, error) {
	var b models.Bank
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BankRepository) List(ctx context.Context, filter *DateRangeFilter) ([]*models.Bank, int64, error) {
	var items []*models.Bank
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Bank{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR account_number LIKE ? OR iban LIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Offset(filter.Offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *BankRepository) Update(ctx context.Context, b *models.Bank) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BankRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Bank{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BankRepository) ExistsByAccountNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bank{}).
		Where("account_number = ?", number).Count(&count).Error
	return count > 0, err
}
