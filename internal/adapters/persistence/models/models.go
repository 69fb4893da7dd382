package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth: Roles & Users
// ============================================================

// Built-in role names seeded at startup
const (
	SystemRoleAdmin  = "admin"
	SystemRoleViewer = "viewer"
)

// Role represents roles table
type Role struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"uniqueIndex;size:50;not null" json:"name"`
	DisplayName string        `gorm:"size:100" json:"display_name"`
	Description string        `gorm:"type:text" json:"description"`
	Permissions PermissionSet `gorm:"serializer:json" json:"permissions"`
	IsSystem    bool          `gorm:"default:false" json:"is_system"`
	IsActive    bool          `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Role) TableName() string {
	return "roles"
}

// User represents users table
type User struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Username   string     `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email      string     `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password   string     `gorm:"size:255;not null" json:"-"`
	FullName   string     `gorm:"size:100" json:"full_name"`
	Phone      string     `gorm:"size:30" json:"phone"`
	Branch     string     `gorm:"size:50" json:"branch"`
	Department string     `gorm:"size:50" json:"department"`
	RoleID     uint       `gorm:"index;not null" json:"role_id"`
	IsActive   bool       `gorm:"default:true" json:"is_active"`
	LastLogin  *time.Time `json:"last_login"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID         uint       `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FullName   string     `json:"full_name"`
	Phone      string     `json:"phone"`
	Branch     string     `json:"branch"`
	Department string     `json:"department"`
	RoleID     uint       `json:"role_id"`
	RoleName   string     `json:"role_name,omitempty"`
	IsActive   bool       `json:"is_active"`
	LastLogin  *time.Time `json:"last_login"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	resp := &UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		Phone:      u.Phone,
		Branch:     u.Branch,
		Department: u.Department,
		RoleID:     u.RoleID,
		IsActive:   u.IsActive,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.CreatedAt,
	}
	if u.Role != nil {
		resp.RoleName = u.Role.Name
	}
	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Role{},
		&User{},
		// Front office
		&Reservation{},
		&Customer{},
		// Travel operations
		&Trip{},
		&Visa{},
		&Bag{},
		&Balloon{},
		&AirportTransfer{},
		// Contracting
		&HotelContract{},
		&Package{},
		&Itinerary{},
		&TourGuideSchedule{},
		// Accounting
		&Account{},
		&AccountTransaction{},
		&Safe{},
		&Bank{},
	)
}
