package services

import (
	"context"
	"time"

	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/pkg/amount"

	"gorm.io/gorm"
)

// StatisticsService aggregates figures across the whole back office
type StatisticsService struct {
	db *gorm.DB
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(db *gorm.DB) *StatisticsService {
	return &StatisticsService{db: db}
}

// ============================================================
// Overview
// ============================================================

// OverviewData represents the main dashboard figures
type OverviewData struct {
	// Reservations
	TotalReservations     int64 `json:"total_reservations"`
	PendingReservations   int64 `json:"pending_reservations"`
	InProgressReservations int64 `json:"in_progress_reservations"`
	CompleteReservations  int64 `json:"complete_reservations"`
	CancelledReservations int64 `json:"cancelled_reservations"`
	ReservationsThisMonth int64 `json:"reservations_this_month"`

	// Other stores
	TotalCustomers int64 `json:"total_customers"`
	TotalTrips     int64 `json:"total_trips"`
	ActiveTrips    int64 `json:"active_trips"`
	PendingVisas   int64 `json:"pending_visas"`
	TotalUsers     int64 `json:"total_users"`

	// Money
	RevenueByCurrency []CurrencyRevenue `json:"revenue_by_currency"`

	// Breakdowns
	ReservationsByBranch []BranchCount  `json:"reservations_by_branch"`
	VisasByStatus        []LabelCount   `json:"visas_by_status"`
	VisasByType          []LabelCount   `json:"visas_by_type"`
	MonthlyTrend         []MonthlyPoint `json:"monthly_trend"`
	MonthlyVisaTrend     []MonthlyPoint `json:"monthly_visa_trend"`
	TopDestinations      []LabelCount   `json:"top_destinations"`
	TopSuppliers         []LabelCount   `json:"top_suppliers"`
	TopUsers             []UserCount    `json:"top_users"`
}

// CurrencyRevenue represents summed reservation totals per currency
type CurrencyRevenue struct {
	Currency string  `json:"currency"`
	Revenue  float64 `json:"revenue"`
	Count    int64   `json:"count"`
}

// BranchCount represents reservation counts per branch
type BranchCount struct {
	Branch string `json:"branch"`
	Count  int64  `json:"count"`
}

// LabelCount is a generic label/count pair
type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// MonthlyPoint represents one month in the reservation trend
type MonthlyPoint struct {
	Month   string  `json:"month"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// UserCount represents reservation counts per creating user
type UserCount struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Count    int64  `json:"count"`
}

// bounded narrows a query to the optional created_at window
func bounded(q *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at <= ?", *to)
	}
	return q
}

// GetOverview returns the full dashboard aggregation. The optional from/to
// window bounds the reservation and visa figures; store totals stay unbounded.
func (s *StatisticsService) GetOverview(ctx context.Context, from, to *time.Time) (*OverviewData, error) {
	data := &OverviewData{}

	reservations := func() *gorm.DB {
		return bounded(s.db.WithContext(ctx).Table("reservations").Where("is_deleted = 0"), from, to)
	}
	visas := func() *gorm.DB {
		return bounded(s.db.WithContext(ctx).Table("visas").Where("is_deleted = 0"), from, to)
	}

	// Reservation counts by progress
	reservations().Count(&data.TotalReservations)
	reservations().Where("progress = ?", models.ProgressPending).Count(&data.PendingReservations)
	reservations().Where("progress = ?", models.ProgressInProgress).Count(&data.InProgressReservations)
	reservations().Where("progress = ?", models.ProgressComplete).Count(&data.CompleteReservations)
	reservations().Where("progress = ?", models.ProgressCancelled).Count(&data.CancelledReservations)

	startOfMonth := time.Now().AddDate(0, 0, -time.Now().Day()+1).Truncate(24 * time.Hour)
	s.db.WithContext(ctx).Table("reservations").
		Where("is_deleted = 0 AND created_at >= ?", startOfMonth).
		Count(&data.ReservationsThisMonth)

	// Other store counts
	s.db.WithContext(ctx).Table("customers").Count(&data.TotalCustomers)
	s.db.WithContext(ctx).Table("trips").Count(&data.TotalTrips)
	s.db.WithContext(ctx).Table("trips").Where("status = ?", models.TripStatusActive).Count(&data.ActiveTrips)
	visas().Where("status = ?", models.VisaStatusPending).Count(&data.PendingVisas)
	s.db.WithContext(ctx).Table("users").Count(&data.TotalUsers)

	// Revenue per currency. Amounts are stored as text, so rows are pulled
	// and summed here instead of in SQL.
	var revRows []struct {
		Currency    string
		TotalAmount string
	}
	reservations().
		Select("currency, total_amount").
		Scan(&revRows)

	revenue := map[string]*CurrencyRevenue{}
	order := []string{}
	for _, row := range revRows {
		cur := row.Currency
		if cur == "" {
			cur = "EGP"
		}
		entry, ok := revenue[cur]
		if !ok {
			entry = &CurrencyRevenue{Currency: cur}
			revenue[cur] = entry
			order = append(order, cur)
		}
		entry.Revenue += amount.Parse(row.TotalAmount)
		entry.Count++
	}
	for _, cur := range order {
		data.RevenueByCurrency = append(data.RevenueByCurrency, *revenue[cur])
	}

	// Reservations per branch
	var branches []struct {
		Branch string
		Count  int64
	}
	reservations().
		Select("branch, COUNT(*) as count").
		Group("branch").
		Order("count DESC").
		Scan(&branches)
	for _, b := range branches {
		data.ReservationsByBranch = append(data.ReservationsByBranch, BranchCount{Branch: b.Branch, Count: b.Count})
	}

	// Visa breakdowns
	data.VisasByStatus = s.labelCounts(visas, "status")
	data.VisasByType = s.labelCounts(visas, "type")

	// Twelve month trailing trends. Counts come from SQL, revenue from
	// summing the text amounts per month.
	trend, err := s.monthlyTrend(ctx, "reservations", "total_amount")
	if err != nil {
		return nil, err
	}
	data.MonthlyTrend = trend

	visaTrend, err := s.monthlyTrend(ctx, "visas", "amount")
	if err != nil {
		return nil, err
	}
	data.MonthlyVisaTrend = visaTrend

	// Top fives
	data.TopDestinations = s.topLabelCounts(ctx, "destination")
	data.TopSuppliers = s.topLabelCounts(ctx, "supplier")

	var topUsers []struct {
		UserID   uint
		Username string
		Count    int64
	}
	s.db.WithContext(ctx).Table("reservations").
		Select("reservations.created_by as user_id, users.username, COUNT(*) as count").
		Joins("LEFT JOIN users ON reservations.created_by = users.id").
		Where("reservations.is_deleted = 0").
		Group("reservations.created_by, users.username").
		Order("count DESC").
		Limit(5).
		Scan(&topUsers)
	for _, u := range topUsers {
		data.TopUsers = append(data.TopUsers, UserCount{UserID: u.UserID, Username: u.Username, Count: u.Count})
	}

	return data, nil
}

func (s *StatisticsService) labelCounts(base func() *gorm.DB, column string) []LabelCount {
	var rows []struct {
		Label string
		Count int64
	}
	base().
		Select(column + " as label, COUNT(*) as count").
		Group(column).
		Order("count DESC").
		Scan(&rows)

	out := make([]LabelCount, len(rows))
	for i, r := range rows {
		out[i] = LabelCount{Label: r.Label, Count: r.Count}
	}
	return out
}

func (s *StatisticsService) topLabelCounts(ctx context.Context, column string) []LabelCount {
	var rows []struct {
		Label string
		Count int64
	}
	s.db.WithContext(ctx).Table("reservations").
		Select(column+" as label, COUNT(*) as count").
		Where("is_deleted = 0 AND "+column+" <> ''").
		Group(column).
		Order("count DESC").
		Limit(5).
		Scan(&rows)

	out := make([]LabelCount, len(rows))
	for i, r := range rows {
		out[i] = LabelCount{Label: r.Label, Count: r.Count}
	}
	return out
}

func (s *StatisticsService) monthlyTrend(ctx context.Context, table, amountColumn string) ([]MonthlyPoint, error) {
	since := time.Now().AddDate(0, -11, 0)
	since = time.Date(since.Year(), since.Month(), 1, 0, 0, 0, 0, since.Location())

	var rows []struct {
		Month  string
		Amount string
	}
	err := s.db.WithContext(ctx).Table(table).
		Select("DATE_FORMAT(created_at, '%Y-%m') as month, "+amountColumn+" as amount").
		Where("is_deleted = 0 AND created_at >= ?", since).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byMonth := map[string]*MonthlyPoint{}
	for _, row := range rows {
		point, ok := byMonth[row.Month]
		if !ok {
			point = &MonthlyPoint{Month: row.Month}
			byMonth[row.Month] = point
		}
		point.Count++
		point.Revenue += amount.Parse(row.Amount)
	}

	// Emit all twelve months, zero-filled
	trend := make([]MonthlyPoint, 0, 12)
	for i := 0; i < 12; i++ {
		month := since.AddDate(0, i, 0).Format("2006-01")
		if point, ok := byMonth[month]; ok {
			trend = append(trend, *point)
		} else {
			trend = append(trend, MonthlyPoint{Month: month})
		}
	}
	return trend, nil
}

// ============================================================
// Operations digest
// ============================================================

// OperationsDigest is a compact daily snapshot of the operational stores
type OperationsDigest struct {
	Date              string `json:"date"`
	PendingVisas      int64  `json:"pending_visas"`
	BagsPendingEntry  int64  `json:"bags_pending_entry"`
	BalloonsToday     int64  `json:"balloons_today"`
	TransfersToday    int64  `json:"transfers_today"`
	GuideVisitsToday  int64  `json:"guide_visits_today"`
	TripsStartingToday int64 `json:"trips_starting_today"`
}

// GetOperationsDigest returns today's operational snapshot
func (s *StatisticsService) GetOperationsDigest(ctx context.Context) (*OperationsDigest, error) {
	today := time.Now().Format("2006-01-02")
	digest := &OperationsDigest{Date: today}

	s.db.WithContext(ctx).Table("visas").
		Where("is_deleted = 0 AND status = ?", models.VisaStatusPending).
		Count(&digest.PendingVisas)
	s.db.WithContext(ctx).Table("bags").
		Where("entry_id = ?", models.BagEntryPending).
		Count(&digest.BagsPendingEntry)
	s.db.WithContext(ctx).Table("balloons").
		Where("DATE(ride_date) = ?", today).
		Count(&digest.BalloonsToday)
	s.db.WithContext(ctx).Table("airport_transfers").
		Where("DATE(transfer_date) = ?", today).
		Count(&digest.TransfersToday)
	s.db.WithContext(ctx).Table("tour_guide_schedules").
		Where("DATE(date) = ? AND status = ?", today, models.ScheduleStatusScheduled).
		Count(&digest.GuideVisitsToday)
	s.db.WithContext(ctx).Table("trips").
		Where("DATE(start_date) = ?", today).
		Count(&digest.TripsStartingToday)

	return digest, nil
}
