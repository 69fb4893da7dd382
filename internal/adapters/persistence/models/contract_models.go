package models

import "time"

// ============================================================
// Contracting: Hotel Contracts, Packages, Itineraries, Guides
// ============================================================

// HotelContract represents hotel_contracts table
type HotelContract struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ContractNumber string     `gorm:"uniqueIndex;size:30;not null" json:"contract_number"`
	HotelName      string     `gorm:"size:100;not null" json:"hotel_name"`
	RoomType       string     `gorm:"size:50" json:"room_type"`
	StartDate      *time.Time `gorm:"type:date" json:"start_date"`
	EndDate        *time.Time `gorm:"type:date" json:"end_date"`
	Rate           string     `gorm:"size:30" json:"rate"`
	Currency       string     `gorm:"size:10" json:"currency"`
	Allotment      int        `json:"allotment"`
	ReleaseDays    int        `json:"release_days"`
	MealPlan       string     `gorm:"size:30" json:"meal_plan"`
	Notes          string     `gorm:"type:text" json:"notes"`
	CreatedBy      uint       `json:"created_by"`
	UpdatedBy      uint       `json:"updated_by"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HotelContract) TableName() string {
	return "hotel_contracts"
}

// Package represents packages table
type Package struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Destination string    `gorm:"size:100" json:"destination"`
	Nights      int       `json:"nights"`
	Price       string    `gorm:"size:30" json:"price"`
	Currency    string    `gorm:"size:10" json:"currency"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedBy   uint      `json:"created_by"`
	UpdatedBy   uint      `json:"updated_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Package) TableName() string {
	return "packages"
}

// Itinerary represents itineraries table
type Itinerary struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Destination string    `gorm:"size:100" json:"destination"`
	Days        int       `json:"days"`
	Body        string    `gorm:"type:text" json:"body"`
	PackageID   *uint     `gorm:"index" json:"package_id"`
	CreatedBy   uint      `json:"created_by"`
	UpdatedBy   uint      `json:"updated_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Package *Package `gorm:"foreignKey:PackageID" json:"package,omitempty"`
}

func (Itinerary) TableName() string {
	return "itineraries"
}

// Guide schedule status values
const (
	ScheduleStatusScheduled = "Scheduled"
	ScheduleStatusDone      = "Done"
	ScheduleStatusCancelled = "Cancelled"
)

// TourGuideSchedule represents tour_guide_schedules table
type TourGuideSchedule struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	GuideName string     `gorm:"size:100;not null" json:"guide_name"`
	Language  string     `gorm:"size:30" json:"language"`
	Date      *time.Time `gorm:"type:date" json:"date"`
	Site      string     `gorm:"size:100" json:"site"`
	TripID    *uint      `gorm:"index" json:"trip_id"`
	Status    string     `gorm:"size:20;not null;default:'Scheduled'" json:"status"`
	Notes     string     `gorm:"type:text" json:"notes"`
	CreatedBy uint       `json:"created_by"`
	UpdatedBy uint       `json:"updated_by"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Trip *Trip `gorm:"foreignKey:TripID" json:"trip,omitempty"`
}

func (TourGuideSchedule) TableName() string {
	return "tour_guide_schedules"
}
