package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/adapters/persistence/repositories"
	"nile-backoffice/internal/core/domain"
	"nile-backoffice/internal/pkg/amount"
	"nile-backoffice/internal/pkg/pagination"

	"gorm.io/gorm"
)

// Reservation errors
var (
	ErrFileNumberTaken = errors.New("file number already exists")
)

// ReservationService handles reservation business logic
type ReservationService struct {
	reservationRepo repositories.ReservationRepository
}

// NewReservationService creates a new reservation service
func NewReservationService(reservationRepo repositories.ReservationRepository) *ReservationService {
	return &ReservationService{reservationRepo: reservationRepo}
}

// ReservationInput carries the writable reservation fields
type ReservationInput struct {
	FileNumber     string     `json:"file_number"`
	CustomerName   string     `json:"customer_name" validate:"required"`
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
	Progress       string     `json:"progress"`
	Notes          string     `json:"notes"`
}

// ListReservationsInput represents reservation listing filters
type ListReservationsInput struct {
	Search   string
	Progress string
	Branch   string
	Currency string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Limit    int
}

// Create creates a reservation. When no file number is supplied one is
// assigned from the running count of all reservations, deleted included,
// so retired numbers are never reissued.
func (s *ReservationService) Create(ctx context.Context, userID uint, input *ReservationInput) (*models.ReservationResponse, error) {
	if input.CustomerName == "" {
		return nil, domain.ErrInvalidInput
	}

	progress := input.Progress
	if progress == "" {
		progress = models.ProgressPending
	}
	if !validProgress(progress) {
		return nil, domain.ErrInvalidInput
	}

	// Identity is assigned only once the input is known to be valid, so
	// invalid requests cost no count or uniqueness round-trip.
	fileNumber := input.FileNumber
	if fileNumber == "" {
		count, err := s.reservationRepo.CountAll(ctx)
		if err != nil {
			return nil, err
		}
		fileNumber = strconv.FormatInt(models.FileNumberBase+count+1, 10)
	} else {
		exists, err := s.reservationRepo.ExistsByFileNumber(ctx, fileNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrFileNumberTaken
		}
	}

	reservation := &models.Reservation{
		FileNumber:     fileNumber,
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		Destination:    input.Destination,
		Supplier:       input.Supplier,
		Branch:         input.Branch,
		Currency:       input.Currency,
		TripDate:       input.TripDate,
		Pax:            input.Pax,
		FlightAmount:   input.FlightAmount,
		HotelAmount:    input.HotelAmount,
		TransferAmount: input.TransferAmount,
		ExtrasAmount:   input.ExtrasAmount,
		TotalAmount:    totalOf(input),
		Progress:       progress,
		Notes:          input.Notes,
		CreatedBy:      userID,
		UpdatedBy:      userID,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	log.Printf("✅ Reservation created: file=%s by=%d", reservation.FileNumber, userID)
	return reservation.ToResponse(), nil
}

// GetByID returns one live reservation
func (s *ReservationService) GetByID(ctx context.Context, id uint) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reservation.ToResponse(), nil
}

// List returns live reservations matching the filter
func (s *ReservationService) List(ctx context.Context, input *ListReservationsInput) ([]*models.ReservationResponse, *pagination.Meta, error) {
	params := pagination.Normalize(input.Page, input.Limit)

	reservations, total, err := s.reservationRepo.List(ctx, &repositories.ReservationFilter{
		Search:   input.Search,
		Progress: input.Progress,
		Branch:   input.Branch,
		Currency: input.Currency,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		Offset:   params.Offset,
		Limit:    params.Limit,
	})
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*models.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		responses = append(responses, r.ToResponse())
	}

	return responses, pagination.GetMeta(params, total), nil
}

// Update updates a reservation. The file number is immutable; the total
// is recomputed from the additive amount fields.
func (s *ReservationService) Update(ctx context.Context, userID, id uint, input *ReservationInput) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if input.CustomerName == "" {
		return nil, domain.ErrInvalidInput
	}
	progress := input.Progress
	if progress == "" {
		progress = reservation.Progress
	}
	if !validProgress(progress) {
		return nil, domain.ErrInvalidInput
	}

	reservation.CustomerName = input.CustomerName
	reservation.CustomerPhone = input.CustomerPhone
	reservation.Destination = input.Destination
	reservation.Supplier = input.Supplier
	reservation.Branch = input.Branch
	reservation.Currency = input.Currency
	reservation.TripDate = input.TripDate
	reservation.Pax = input.Pax
	reservation.FlightAmount = input.FlightAmount
	reservation.HotelAmount = input.HotelAmount
	reservation.TransferAmount = input.TransferAmount
	reservation.ExtrasAmount = input.ExtrasAmount
	reservation.TotalAmount = totalOf(input)
	reservation.Progress = progress
	reservation.Notes = input.Notes
	reservation.UpdatedBy = userID

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}

	return reservation.ToResponse(), nil
}

// Delete soft-deletes a reservation
func (s *ReservationService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.reservationRepo.SoftDelete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	log.Printf("✅ Reservation deleted: id=%d by=%d", id, userID)
	return nil
}

// DeleteMany soft-deletes a batch of reservations
func (s *ReservationService) DeleteMany(ctx context.Context, userID uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.ErrInvalidInput
	}

	deleted, err := s.reservationRepo.SoftDeleteMany(ctx, ids, userID)
	if err != nil {
		return 0, err
	}

	log.Printf("✅ Reservations deleted: %d of %d requested by=%d", deleted, len(ids), userID)
	return deleted, nil
}

// Duplicate copies a reservation into a fresh file with a newly assigned
// file number and its progress reset.
func (s *ReservationService) Duplicate(ctx context.Context, userID, id uint) (*models.ReservationResponse, error) {
	source, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	count, err := s.reservationRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	copy := &models.Reservation{
		FileNumber:     strconv.FormatInt(models.FileNumberBase+count+1, 10),
		CustomerName:   source.CustomerName,
		CustomerPhone:  source.CustomerPhone,
		Destination:    source.Destination,
		Supplier:       source.Supplier,
		Branch:         source.Branch,
		Currency:       source.Currency,
		TripDate:       source.TripDate,
		Pax:            source.Pax,
		FlightAmount:   source.FlightAmount,
		HotelAmount:    source.HotelAmount,
		TransferAmount: source.TransferAmount,
		ExtrasAmount:   source.ExtrasAmount,
		TotalAmount:    source.TotalAmount,
		Progress:       models.ProgressPending,
		Notes:          source.Notes,
		CreatedBy:      userID,
		UpdatedBy:      userID,
	}

	if err := s.reservationRepo.Create(ctx, copy); err != nil {
		return nil, err
	}

	log.Printf("✅ Reservation duplicated: %s -> %s by=%d", source.FileNumber, copy.FileNumber, userID)
	return copy.ToResponse(), nil
}

// ReservationStats holds the per-progress breakdown for the list header
type ReservationStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Complete   int64 `json:"complete"`
	Cancelled  int64 `json:"cancelled"`
	ThisMonth  int64 `json:"this_month"`
}

// GetStats computes the reservation counters shown above the listing
func (s *ReservationService) GetStats(ctx context.Context) (*ReservationStats, error) {
	counts, err := s.reservationRepo.CountByProgress(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	thisMonth, err := s.reservationRepo.CountCreatedSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	stats := &ReservationStats{
		Pending:    counts[models.ProgressPending],
		InProgress: counts[models.ProgressInProgress],
		Complete:   counts[models.ProgressComplete],
		Cancelled:  counts[models.ProgressCancelled],
		ThisMonth:  thisMonth,
	}
	for _, c := range counts {
		stats.Total += c
	}
	return stats, nil
}

func totalOf(input *ReservationInput) string {
	return amount.Format(amount.Sum(
		input.FlightAmount,
		input.HotelAmount,
		input.TransferAmount,
		input.ExtrasAmount,
	))
}

func validProgress(p string) bool {
	switch p {
	case models.ProgressPending, models.ProgressInProgress, models.ProgressComplete, models.ProgressCancelled:
		return true
	}
	return false
}
