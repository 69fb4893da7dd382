package models

import "time"

// ============================================================
// Accounting: Accounts, Transactions, Safes, Banks
// ============================================================

// Account type values
const (
	AccountTypeAsset     = "Asset"
	AccountTypeLiability = "Liability"
	AccountTypeRevenue   = "Revenue"
	AccountTypeExpense   = "Expense"
)

// Account represents accounts table (ledger accounts)
type Account struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Type           string    `gorm:"size:20;not null" json:"type"`
	Currency       string    `gorm:"size:10" json:"currency"`
	OpeningBalance string    `gorm:"size:30" json:"opening_balance"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedBy      uint      `json:"created_by"`
	UpdatedBy      uint      `json:"updated_by"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// Transaction direction values
const (
	DirectionDebit  = "Debit"
	DirectionCredit = "Credit"
)

// AccountTransaction represents transactions table (ledger entries)
type AccountTransaction struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	SerialNumber string     `gorm:"uniqueIndex;size:20;not null" json:"serial_number"`
	Date         *time.Time `gorm:"type:date" json:"date"`
	AccountID    uint       `gorm:"index;not null" json:"account_id"`
	Direction    string     `gorm:"size:10;not null" json:"direction"`
	Amount       string     `gorm:"size:30" json:"amount"`
	Currency     string     `gorm:"size:10" json:"currency"`
	Description  string     `gorm:"type:text" json:"description"`
	Reference    string     `gorm:"size:50" json:"reference"`
	CreatedBy    uint       `json:"created_by"`
	UpdatedBy    uint       `json:"updated_by"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

func (AccountTransaction) TableName() string {
	return "transactions"
}

// Safe represents safes table (cash boxes per branch)
type Safe struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Branch    string    `gorm:"size:50" json:"branch"`
	Currency  string    `gorm:"size:10" json:"currency"`
	Balance   string    `gorm:"size:30" json:"balance"`
	CreatedBy uint      `json:"created_by"`
	UpdatedBy uint      `json:"updated_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Safe) TableName() string {
	return "safes"
}

// Bank represents banks table (bank accounts held by the agency)
type Bank struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	AccountNumber string    `gorm:"uniqueIndex;size:30;not null" json:"account_number"`
	IBAN          string    `gorm:"size:40" json:"iban"`
	Currency      string    `gorm:"size:10" json:"currency"`
	Balance       string    `gorm:"size:30" json:"balance"`
	CreatedBy     uint      `json:"created_by"`
	UpdatedBy     uint      `json:"updated_by"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Bank) TableName() string {
	return "banks"
}
