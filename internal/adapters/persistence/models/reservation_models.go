package models

import "time"

// ============================================================
// Front office: Reservations & Customers
// ============================================================

// Reservation progress values
const (
	ProgressPending    = "Pending"
	ProgressInProgress = "In Progress"
	ProgressComplete   = "Complete"
	ProgressCancelled  = "Cancelled"
)

// FileNumberBase is the offset for auto-assigned reservation file numbers.
// The first reservation in an empty database gets "300001".
const FileNumberBase = 300000

// Reservation is the main booking file. Deletion is soft: rows are flagged,
// never removed, and every query path excludes flagged rows.
type Reservation struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	FileNumber     string `gorm:"uniqueIndex;size:20;not null" json:"file_number"`
	CustomerName   string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone  string `gorm:"size:30" json:"customer_phone"`
	Destination    string `gorm:"size:100" json:"destination"`
	Supplier       string `gorm:"size:100" json:"supplier"`
	Branch         string `gorm:"size:50" json:"branch"`
	Currency       string `gorm:"size:10" json:"currency"`
	TripDate       *time.Time `gorm:"type:date" json:"trip_date"`
	Pax            int    `json:"pax"`

	// Amount fields are free-text as entered by the back office; TotalAmount
	// is recomputed from the additive fields on every create and update.
	FlightAmount   string `gorm:"size:30" json:"flight_amount"`
	HotelAmount    string `gorm:"size:30" json:"hotel_amount"`
	TransferAmount string `gorm:"size:30" json:"transfer_amount"`
	ExtrasAmount   string `gorm:"size:30" json:"extras_amount"`
	TotalAmount    string `gorm:"size:30" json:"total_amount"`

	Progress string `gorm:"size:20;not null;default:'Pending'" json:"progress"`
	Notes    string `gorm:"type:text" json:"notes"`

	CreatedBy uint `gorm:"index" json:"created_by"`
	UpdatedBy uint `json:"updated_by"`

	IsDeleted bool       `gorm:"index;default:false" json:"-"`
	DeletedAt *time.Time `json:"-"`
	DeletedBy uint       `json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Creator *User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// ReservationResponse DTO
type ReservationResponse struct {
	ID             uint       `json:"id"`
	FileNumber     string     `json:"file_number"`
	CustomerName   string     `json:"customer_name"`
	CustomerPhone  string     `json:"customer_phone"`
	Destination    string     `json:"destination"`
	Supplier       string     `json:"supplier"`
	Branch         string     `json:"branch"`
	Currency       string     `json:"currency"`
	TripDate       *time.Time `json:"trip_date"`
	Pax            int        `json:"pax"`
	FlightAmount   string     `json:"flight_amount"`
	HotelAmount    string     `json:"hotel_amount"`
	TransferAmount string     `json:"transfer_amount"`
	ExtrasAmount   string     `json:"extras_amount"`
	TotalAmount    string     `json:"total_amount"`
	Progress       string     `json:"progress"`
	Notes          string     `json:"notes"`
	CreatedBy      uint       `json:"created_by"`
	CreatorName    string     `json:"creator_name,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (r *Reservation) ToResponse() *ReservationResponse {
	resp := &ReservationResponse{
		ID:             r.ID,
		FileNumber:     r.FileNumber,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		Destination:    r.Destination,
		Supplier:       r.Supplier,
		Branch:         r.Branch,
		Currency:       r.Currency,
		TripDate:       r.TripDate,
		Pax:            r.Pax,
		FlightAmount:   r.FlightAmount,
		HotelAmount:    r.HotelAmount,
		TransferAmount: r.TransferAmount,
		ExtrasAmount:   r.ExtrasAmount,
		TotalAmount:    r.TotalAmount,
		Progress:       r.Progress,
		Notes:          r.Notes,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.Creator != nil {
		resp.CreatorName = r.Creator.Username
	}
	return resp
}

// Customer represents customers table
type Customer struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Phone          string    `gorm:"size:30" json:"phone"`
	Email          string    `gorm:"size:100" json:"email"`
	Nationality    string    `gorm:"size:50" json:"nationality"`
	PassportNumber string    `gorm:"size:30" json:"passport_number"`
	Address        string    `gorm:"size:200" json:"address"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedBy      uint      `json:"created_by"`
	UpdatedBy      uint      `json:"updated_by"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}
