package models

import "time"

// ============================================================
// Travel operations: Trips, Visas, Bags, Balloons, Transfers
// ============================================================

// Trip status values (two-valued, flipped by toggle-status)
const (
	TripStatusActive   = "Active"
	TripStatusInactive = "Inactive"
)

// Trip represents trips table
type Trip struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	TripNumber  string     `gorm:"uniqueIndex;size:20;not null" json:"trip_number"`
	Destination string     `gorm:"size:100;not null" json:"destination"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date"`
	Transport   string     `gorm:"size:50" json:"transport"`
	Seats       int        `json:"seats"`
	Price       string     `gorm:"size:30" json:"price"`
	Currency    string     `gorm:"size:10" json:"currency"`
	Status      string     `gorm:"size:20;not null;default:'Active'" json:"status"`
	Notes       string     `gorm:"type:text" json:"notes"`
	CreatedBy   uint       `json:"created_by"`
	UpdatedBy   uint       `json:"updated_by"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Trip) TableName() string {
	return "trips"
}

// Visa status values
const (
	VisaStatusPending   = "Pending"
	VisaStatusSubmitted = "Submitted"
	VisaStatusApproved  = "Approved"
	VisaStatusRejected  = "Rejected"
)

// VisaTypes is the fixed list served by GET /api/visas/types.
var VisaTypes = []string{"Tourist", "Business", "Transit", "Work", "Student", "Residence"}

// Visa represents visas table. Deletion is soft, same scheme as Reservation.
type Visa struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	SerialNumber   string     `gorm:"uniqueIndex;size:20;not null" json:"serial_number"`
	Type           string     `gorm:"size:30;not null" json:"type"`
	Country        string     `gorm:"size:50;not null" json:"country"`
	CustomerName   string     `gorm:"size:100;not null" json:"customer_name"`
	PassportNumber string     `gorm:"size:30" json:"passport_number"`
	Status         string     `gorm:"size:20;not null;default:'Pending'" json:"status"`
	Amount         string     `gorm:"size:30" json:"amount"`
	Currency       string     `gorm:"size:10" json:"currency"`
	Notes          string     `gorm:"type:text" json:"notes"`
	CreatedBy      uint       `json:"created_by"`
	UpdatedBy      uint       `json:"updated_by"`
	IsDeleted      bool       `gorm:"index;default:false" json:"-"`
	DeletedAt      *time.Time `json:"-"`
	DeletedBy      uint       `json:"-"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Visa) TableName() string {
	return "visas"
}

// Bag entry values (two-valued, flipped by toggle-entry)
const (
	BagEntryEntered = "Entered"
	BagEntryPending = "Pending"
)

// Bag represents bags table (luggage manifests per departure)
type Bag struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TagNumber    string     `gorm:"uniqueIndex;size:20;not null" json:"tag_number"`
	CustomerName string     `gorm:"size:100;not null" json:"customer_name"`
	TripDate     *time.Time `gorm:"type:date" json:"trip_date"`
	Pieces       int        `json:"pieces"`
	Weight       string     `gorm:"size:30" json:"weight"`
	EntryID      string     `gorm:"size:20;not null;default:'Pending'" json:"entry_id"`
	Notes        string     `gorm:"type:text" json:"notes"`
	CreatedBy    uint       `json:"created_by"`
	UpdatedBy    uint       `json:"updated_by"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Bag) TableName() string {
	return "bags"
}

// Balloon status values
const (
	BalloonStatusPending   = "Pending"
	BalloonStatusConfirmed = "Confirmed"
	BalloonStatusDone      = "Done"
	BalloonStatusCancelled = "Cancelled"
)

// Balloon represents balloons table (hot-air balloon ride bookings)
type Balloon struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	SerialNumber string     `gorm:"uniqueIndex;size:20;not null" json:"serial_number"`
	CustomerName string     `gorm:"size:100;not null" json:"customer_name"`
	RideDate     *time.Time `gorm:"type:date" json:"ride_date"`
	Pax          int        `json:"pax"`
	Supplier     string     `gorm:"size:100" json:"supplier"`
	PickupHotel  string     `gorm:"size:100" json:"pickup_hotel"`
	Amount       string     `gorm:"size:30" json:"amount"`
	Currency     string     `gorm:"size:10" json:"currency"`
	Status       string     `gorm:"size:20;not null;default:'Pending'" json:"status"`
	CreatedBy    uint       `json:"created_by"`
	UpdatedBy    uint       `json:"updated_by"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Balloon) TableName() string {
	return "balloons"
}

// Transfer direction values
const (
	TransferArrival   = "Arrival"
	TransferDeparture = "Departure"
)

// AirportTransfer represents airport_transfers table
type AirportTransfer struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CustomerName string     `gorm:"size:100;not null" json:"customer_name"`
	TransferDate *time.Time `gorm:"type:date" json:"transfer_date"`
	TransferTime string     `gorm:"size:10" json:"transfer_time"`
	FlightNumber string     `gorm:"size:20" json:"flight_number"`
	Direction    string     `gorm:"size:20;not null;default:'Arrival'" json:"direction"`
	FromLocation string     `gorm:"size:100" json:"from_location"`
	ToLocation   string     `gorm:"size:100" json:"to_location"`
	VehicleType  string     `gorm:"size:50" json:"vehicle_type"`
	DriverName   string     `gorm:"size:100" json:"driver_name"`
	Pax          int        `json:"pax"`
	Amount       string     `gorm:"size:30" json:"amount"`
	Currency     string     `gorm:"size:10" json:"currency"`
	Status       string     `gorm:"size:20;not null;default:'Pending'" json:"status"`
	CreatedBy    uint       `json:"created_by"`
	UpdatedBy    uint       `json:"updated_by"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AirportTransfer) TableName() string {
	return "airport_transfers"
}
