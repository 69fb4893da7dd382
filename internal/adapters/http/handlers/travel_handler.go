package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"nile-backoffice/internal/adapters/http/middleware"
	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/adapters/persistence/repositories"
	"nile-backoffice/internal/pkg/pagination"
	"nile-backoffice/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TravelHandler handles travel operations endpoints: trips, visas, bags,
// balloons and airport transfers
type TravelHandler struct {
	tripRepo     *repositories.TripRepository
	visaRepo     *repositories.VisaRepository
	bagRepo      *repositories.BagRepository
	balloonRepo  *repositories.BalloonRepository
	transferRepo *repositories.TransferRepository
}

// NewTravelHandler creates a new travel handler
func NewTravelHandler(
	tripRepo *repositories.TripRepository,
	visaRepo *repositories.VisaRepository,
	bagRepo *repositories.BagRepository,
	balloonRepo *repositories.BalloonRepository,
	transferRepo *repositories.TransferRepository,
) *TravelHandler {
	return &TravelHandler{
		tripRepo:     tripRepo,
		visaRepo:     visaRepo,
		bagRepo:      bagRepo,
		balloonRepo:  balloonRepo,
		transferRepo: transferRepo,
	}
}

func travelFilter(c *fiber.Ctx, params *pagination.Params) *repositories.DateRangeFilter {
	return &repositories.DateRangeFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		DateFrom: parseDateQuery(c.Query("dateFrom")),
		DateTo:   parseDateToQuery(c.Query("dateTo")),
		Offset:   params.Offset,
		Limit:    params.Limit,
	}
}

// ============================================================
// Trips
// ============================================================

// TripRequest carries the writable trip fields
type TripRequest struct {
	Destination string     `json:"destination"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Transport   string     `json:"transport"`
	Seats       int        `json:"seats"`
	Price       string     `json:"price"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
}

// ListTrips lists trips
// @Summary List trips
// @Description Get trips with search and filters
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search trip number, destination or transport"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Response
// @Router /trips [get]
func (h *TravelHandler) ListTrips(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	trips, total, err := h.tripRepo.List(c.Context(), travelFilter(c, params))
	if err != nil {
		return response.InternalServerError(c, "Failed to list trips")
	}

	return response.Success(c, "Trips retrieved successfully", fiber.Map{
		"trips": trips,
		"meta":  pagination.GetMeta(params, total),
	})
}

// GetTrip gets a trip by ID
// @Summary Get trip
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /trips/{id} [get]
func (h *TravelHandler) GetTrip(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	trip, err := h.tripRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Trip not found")
		}
		return response.InternalServerError(c, "Failed to get trip")
	}

	return response.Success(c, "Trip retrieved successfully", fiber.Map{
		"trip": trip,
	})
}

// CreateTrip creates a trip with the next trip number
// @Summary Create trip
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TripRequest true "Trip data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /trips [post]
func (h *TravelHandler) CreateTrip(c *fiber.Ctx) error {
	var req TripRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		return response.BadRequest(c, "Destination is required")
	}

	status := req.Status
	if status == "" {
		status = models.TripStatusActive
	}
	if status != models.TripStatusActive && status != models.TripStatusInactive {
		return response.BadRequest(c, "Invalid status")
	}

	count, err := h.tripRepo.CountAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to create trip")
	}

	userID := middleware.CurrentUserID(c)
	trip := &models.Trip{
		TripNumber:  "T-" + strconv.FormatInt(count+1, 10),
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Transport:   req.Transport,
		Seats:       req.Seats,
		Price:       req.Price,
		Currency:    req.Currency,
		Status:      status,
		Notes:       req.Notes,
		CreatedBy:   userID,
		UpdatedBy:   userID,
	}

	if err := h.tripRepo.Create(c.Context(), trip); err != nil {
		return response.InternalServerError(c, "Failed to create trip")
	}

	return response.Created(c, "Trip created successfully", fiber.Map{
		"trip": trip,
	})
}

// UpdateTrip updates a trip. The trip number is immutable.
// @Summary Update trip
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Param body body TripRequest true "Trip data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /trips/{id} [put]
func (h *TravelHandler) UpdateTrip(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req TripRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	trip, err := h.tripRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Trip not found")
		}
		return response.InternalServerError(c, "Failed to get trip")
	}

	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		return response.BadRequest(c, "Destination is required")
	}
	if req.Status != "" && req.Status != models.TripStatusActive && req.Status != models.TripStatusInactive {
		return response.BadRequest(c, "Invalid status")
	}

	trip.Destination = req.Destination
	trip.StartDate = req.StartDate
	trip.EndDate = req.EndDate
	trip.Transport = req.Transport
	trip.Seats = req.Seats
	trip.Price = req.Price
	trip.Currency = req.Currency
	if req.Status != "" {
		trip.Status = req.Status
	}
	trip.Notes = req.Notes
	trip.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.tripRepo.Update(c.Context(), trip); err != nil {
		return response.InternalServerError(c, "Failed to update trip")
	}

	return response.Success(c, "Trip updated successfully", fiber.Map{
		"trip": trip,
	})
}

// ToggleTripStatus flips a trip between Active and Inactive
// @Summary Toggle trip status
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /trips/{id}/toggle-status [put]
func (h *TravelHandler) ToggleTripStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	trip, err := h.tripRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Trip not found")
		}
		return response.InternalServerError(c, "Failed to get trip")
	}

	if trip.Status == models.TripStatusActive {
		trip.Status = models.TripStatusInactive
	} else {
		trip.Status = models.TripStatusActive
	}
	trip.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.tripRepo.Update(c.Context(), trip); err != nil {
		return response.InternalServerError(c, "Failed to update trip")
	}

	return response.Success(c, "Trip status updated successfully", fiber.Map{
		"trip": trip,
	})
}

// DeleteTrip deletes a trip
// @Summary Delete trip
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /trips/{id} [delete]
func (h *TravelHandler) DeleteTrip(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.tripRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Trip not found")
		}
		return response.InternalServerError(c, "Failed to delete trip")
	}

	return response.Success(c, "Trip deleted successfully", nil)
}

// ============================================================
// Visas
// ============================================================

// VisaRequest carries the writable visa fields
type VisaRequest struct {
	Type           string `json:"type"`
	Country        string `json:"country"`
	CustomerName   string `json:"customer_name"`
	PassportNumber string `json:"passport_number"`
	Status         string `json:"status"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	Notes          string `json:"notes"`
}

func validVisaType(t string) bool {
	for _, v := range models.VisaTypes {
		if v == t {
			return true
		}
	}
	return false
}

func validVisaStatus(s string) bool {
	switch s {
	case models.VisaStatusPending, models.VisaStatusSubmitted, models.VisaStatusApproved, models.VisaStatusRejected:
		return true
	}
	return false
}

// ListVisaTypes serves the fixed visa type list
// @Summary List visa types
// @Tags Visas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /visas/types [get]
func (h *TravelHandler) ListVisaTypes(c *fiber.Ctx) error {
	return response.Success(c, "Visa types retrieved successfully", fiber.Map{
		"types": models.VisaTypes,
	})
}

// ListVisas lists visas
// @Summary List visas
// @Tags Visas
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search serial, customer, country or passport"
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by visa type"
// @Success 200 {object} response.Response
// @Router /visas [get]
func (h *TravelHandler) ListVisas(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	visas, total, err := h.visaRepo.List(c.Context(), travelFilter(c, params))
	if err != nil {
		return response.InternalServerError(c, "Failed to list visas")
	}

	return response.Success(c, "Visas retrieved successfully", fiber.Map{
		"visas": visas,
		"meta":  pagination.GetMeta(params, total),
	})
}

// GetVisa gets a visa by ID
// @Summary Get visa
// @Tags Visas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visa ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visas/{id} [get]
func (h *TravelHandler) GetVisa(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	visa, err := h.visaRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Visa not found")
		}
		return response.InternalServerError(c, "Failed to get visa")
	}

	return response.Success(c, "Visa retrieved successfully", fiber.Map{
		"visa": visa,
	})
}

// CreateVisa creates a visa with the next serial number
// @Summary Create visa
// @Tags Visas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body VisaRequest true "Visa data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /visas [post]
func (h *TravelHandler) CreateVisa(c *fiber.Ctx) error {
	var req VisaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Country = strings.TrimSpace(req.Country)
	if req.CustomerName == "" || req.Country == "" {
		return response.BadRequest(c, "Customer name and country are required")
	}
	if !validVisaType(req.Type) {
		return response.BadRequest(c, "Invalid visa type")
	}

	status := req.Status
	if status == "" {
		status = models.VisaStatusPending
	}
	if !validVisaStatus(status) {
		return response.BadRequest(c, "Invalid status")
	}

	// Serial derives from the count of every row ever written, deleted
	// included, so serials are never reused.
	count, err := h.visaRepo.CountAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to create visa")
	}

	userID := middleware.CurrentUserID(c)
	visa := &models.Visa{
		SerialNumber:   strconv.FormatInt(count+1, 10),
		Type:           req.Type,
		Country:        req.Country,
		CustomerName:   req.CustomerName,
		PassportNumber: req.PassportNumber,
		Status:         status,
		Amount:         req.Amount,
		Currency:       req.Currency,
		Notes:          req.Notes,
		CreatedBy:      userID,
		UpdatedBy:      userID,
	}

	if err := h.visaRepo.Create(c.Context(), visa); err != nil {
		return response.InternalServerError(c, "Failed to create visa")
	}

	return response.Created(c, "Visa created successfully", fiber.Map{
		"visa": visa,
	})
}

// UpdateVisa updates a visa. The serial number is immutable.
// @Summary Update visa
// @Tags Visas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visa ID"
// @Param body body VisaRequest true "Visa data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visas/{id} [put]
func (h *TravelHandler) UpdateVisa(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req VisaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	visa, err := h.visaRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Visa not found")
		}
		return response.InternalServerError(c, "Failed to get visa")
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Country = strings.TrimSpace(req.Country)
	if req.CustomerName == "" || req.Country == "" {
		return response.BadRequest(c, "Customer name and country are required")
	}
	if !validVisaType(req.Type) {
		return response.BadRequest(c, "Invalid visa type")
	}
	if req.Status != "" && !validVisaStatus(req.Status) {
		return response.BadRequest(c, "Invalid status")
	}

	visa.Type = req.Type
	visa.Country = req.Country
	visa.CustomerName = req.CustomerName
	visa.PassportNumber = req.PassportNumber
	if req.Status != "" {
		visa.Status = req.Status
	}
	visa.Amount = req.Amount
	visa.Currency = req.Currency
	visa.Notes = req.Notes
	visa.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.visaRepo.Update(c.Context(), visa); err != nil {
		return response.InternalServerError(c, "Failed to update visa")
	}

	return response.Success(c, "Visa updated successfully", fiber.Map{
		"visa": visa,
	})
}

// DeleteVisa soft-deletes a visa
// @Summary Delete visa
// @Tags Visas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visa ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visas/{id} [delete]
func (h *TravelHandler) DeleteVisa(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	userID := middleware.CurrentUserID(c)
	if err := h.visaRepo.SoftDelete(c.Context(), uint(id), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Visa not found")
		}
		return response.InternalServerError(c, "Failed to delete visa")
	}

	return response.Success(c, "Visa deleted successfully", nil)
}

// ============================================================
// Bags
// ============================================================

// BagRequest carries the writable bag fields
type BagRequest struct {
	CustomerName string     `json:"customer_name"`
	TripDate     *time.Time `json:"trip_date"`
	Pieces       int        `json:"pieces"`
	Weight       string     `json:"weight"`
	EntryID      string     `json:"entry_id"`
	Notes        string     `json:"notes"`
}

// ListBags lists bags
// @Summary List bags
// @Tags Bags
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search tag number or customer"
// @Param status query string false "Filter by entry state"
// @Success 200 {object} response.Response
// @Router /bags [get]
func (h *TravelHandler) ListBags(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	bags, total, err := h.bagRepo.List(c.Context(), travelFilter(c, params))
	if err != nil {
		return response.InternalServerError(c, "Failed to list bags")
	}

	return response.Success(c, "Bags retrieved successfully", fiber.Map{
		"bags": bags,
		"meta": pagination.GetMeta(params, total),
	})
}

// GetBag gets a bag by ID
// @Summary Get bag
// @Tags Bags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bag ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bags/{id} [get]
func (h *TravelHandler) GetBag(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	bag, err := h.bagRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Bag not found")
		}
		return response.InternalServerError(c, "Failed to get bag")
	}

	return response.Success(c, "Bag retrieved successfully", fiber.Map{
		"bag": bag,
	})
}

// CreateBag creates a bag with the next tag number
// @Summary Create bag
// @Tags Bags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BagRequest true "Bag data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /bags [post]
func (h *TravelHandler) CreateBag(c *fiber.Ctx) error {
	var req BagRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return response.BadRequest(c, "Customer name is required")
	}

	entry := req.EntryID
	if entry == "" {
		entry = models.BagEntryPending
	}
	if entry != models.BagEntryEntered && entry != models.BagEntryPending {
		return response.BadRequest(c, "Invalid entry state")
	}

	count, err := h.bagRepo.CountAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to create bag")
	}

	userID := middleware.CurrentUserID(c)
	bag := &models.Bag{
		TagNumber:    strconv.FormatInt(count+1, 10),
		CustomerName: req.CustomerName,
		TripDate:     req.TripDate,
		Pieces:       req.Pieces,
		Weight:       req.Weight,
		EntryID:      entry,
		Notes:        req.Notes,
		CreatedBy:    userID,
		UpdatedBy:    userID,
	}

	if err := h.bagRepo.Create(c.Context(), bag); err != nil {
		return response.InternalServerError(c, "Failed to create bag")
	}

	return response.Created(c, "Bag created successfully", fiber.Map{
		"bag": bag,
	})
}

// UpdateBag updates a bag. The tag number is immutable.
// @Summary Update bag
// @Tags Bags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bag ID"
// @Param body body BagRequest true "Bag data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bags/{id} [put]
func (h *TravelHandler) UpdateBag(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req BagRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	bag, err := h.bagRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Bag not found")
		}
		return response.InternalServerError(c, "Failed to get bag")
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return response.BadRequest(c, "Customer name is required")
	}
	if req.EntryID != "" && req.EntryID != models.BagEntryEntered && req.EntryID != models.BagEntryPending {
		return response.BadRequest(c, "Invalid entry state")
	}

	bag.CustomerName = req.CustomerName
	bag.TripDate = req.TripDate
	bag.Pieces = req.Pieces
	bag.Weight = req.Weight
	if req.EntryID != "" {
		bag.EntryID = req.EntryID
	}
	bag.Notes = req.Notes
	bag.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.bagRepo.Update(c.Context(), bag); err != nil {
		return response.InternalServerError(c, "Failed to update bag")
	}

	return response.Success(c, "Bag updated successfully", fiber.Map{
		"bag": bag,
	})
}

// ToggleBagEntry flips a bag between Entered and Pending
// @Summary Toggle bag entry
// @Tags Bags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bag ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bags/{id}/toggle-entry [put]
func (h *TravelHandler) ToggleBagEntry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	bag, err := h.bagRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Bag not found")
		}
		return response.InternalServerError(c, "Failed to get bag")
	}

	if bag.EntryID == models.BagEntryEntered {
		bag.EntryID = models.BagEntryPending
	} else {
		bag.EntryID = models.BagEntryEntered
	}
	bag.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.bagRepo.Update(c.Context(), bag); err != nil {
		return response.InternalServerError(c, "Failed to update bag")
	}

	return response.Success(c, "Bag entry updated successfully", fiber.Map{
		"bag": bag,
	})
}

// DeleteBag deletes a bag
// @Summary Delete bag
// @Tags Bags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bag ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bags/{id} [delete]
func (h *TravelHandler) DeleteBag(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.bagRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Bag not found")
		}
		return response.InternalServerError(c, "Failed to delete bag")
	}

	return response.Success(c, "Bag deleted successfully", nil)
}

// ============================================================
// Balloons
// ============================================================

// BalloonRequest carries the writable balloon fields
type BalloonRequest struct {
	CustomerName string     `json:"customer_name"`
	RideDate     *time.Time `json:"ride_date"`
	Pax          int        `json:"pax"`
	Supplier     string     `json:"supplier"`
	PickupHotel  string     `json:"pickup_hotel"`
	Amount       string     `json:"amount"`
	Currency     string     `json:"currency"`
	Status       string     `json:"status"`
}

func validBalloonStatus(s string) bool {
	switch s {
	case models.BalloonStatusPending, models.BalloonStatusConfirmed, models.BalloonStatusDone, models.BalloonStatusCancelled:
		return true
	}
	return false
}

// ListBalloons lists balloon bookings
// @Summary List balloons
// @Tags Balloons
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search serial, customer, supplier or hotel"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Response
// @Router /balloons [get]
func (h *TravelHandler) ListBalloons(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	balloons, total, err := h.balloonRepo.List(c.Context(), travelFilter(c, params))
	if err != nil {
		return response.InternalServerError(c, "Failed to list balloons")
	}

	return response.Success(c, "Balloons retrieved successfully", fiber.Map{
		"balloons": balloons,
		"meta":     pagination.GetMeta(params, total),
	})
}

// GetBalloon gets a balloon booking by ID
// @Summary Get balloon
// @Tags Balloons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Balloon ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /balloons/{id} [get]
func (h *TravelHandler) GetBalloon(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	balloon, err := h.balloonRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Balloon not found")
		}
		return response.InternalServerError(c, "Failed to get balloon")
	}

	return response.Success(c, "Balloon retrieved successfully", fiber.Map{
		"balloon": balloon,
	})
}

// CreateBalloon creates a balloon booking with the next serial
// @Summary Create balloon
// @Tags Balloons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BalloonRequest true "Balloon data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /balloons [post]
func (h *TravelHandler) CreateBalloon(c *fiber.Ctx) error {
	var req BalloonRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return response.BadRequest(c, "Customer name is required")
	}

	status := req.Status
	if status == "" {
		status = models.BalloonStatusPending
	}
	if !validBalloonStatus(status) {
		return response.BadRequest(c, "Invalid status")
	}

	count, err := h.balloonRepo.CountAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to create balloon")
	}

	userID := middleware.CurrentUserID(c)
	balloon := &models.Balloon{
		SerialNumber: strconv.FormatInt(count+1, 10),
		CustomerName: req.CustomerName,
		RideDate:     req.RideDate,
		Pax:          req.Pax,
		Supplier:     req.Supplier,
		PickupHotel:  req.PickupHotel,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Status:       status,
		CreatedBy:    userID,
		UpdatedBy:    userID,
	}

	if err := h.balloonRepo.Create(c.Context(), balloon); err != nil {
		return response.InternalServerError(c, "Failed to create balloon")
	}

	return response.Created(c, "Balloon created successfully", fiber.Map{
		"balloon": balloon,
	})
}

// UpdateBalloon updates a balloon booking. The serial is immutable.
// @Summary Update balloon
// @Tags Balloons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Balloon ID"
// @Param body body BalloonRequest true "Balloon data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /balloons/{id} [put]
func (h *TravelHandler) UpdateBalloon(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req BalloonRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	balloon, err := h.balloonRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Balloon not found")
		}
		return response.InternalServerError(c, "Failed to get balloon")
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return response.BadRequest(c, "Customer name is required")
	}
	if req.Status != "" && !validBalloonStatus(req.Status) {
		return response.BadRequest(c, "Invalid status")
	}

	balloon.CustomerName = req.CustomerName
	balloon.RideDate = req.RideDate
	balloon.Pax = req.Pax
	balloon.Supplier = req.Supplier
	balloon.PickupHotel = req.PickupHotel
	balloon.Amount = req.Amount
	balloon.Currency = req.Currency
	if req.Status != "" {
		balloon.Status = req.Status
	}
	balloon.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.balloonRepo.Update(c.Context(), balloon); err != nil {
		return response.InternalServerError(c, "Failed to update balloon")
	}

	return response.Success(c, "Balloon updated successfully", fiber.Map{
		"balloon": balloon,
	})
}

// DeleteBalloon deletes a balloon booking
// @Summary Delete balloon
// @Tags Balloons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Balloon ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /balloons/{id} [delete]
func (h *TravelHandler) DeleteBalloon(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.balloonRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Balloon not found")
		}
		return response.InternalServerError(c, "Failed to delete balloon")
	}

	return response.Success(c, "Balloon deleted successfully", nil)
}

// ============================================================
// Airport Transfers
// ============================================================

// TransferRequest carries the writable transfer fields
type TransferRequest struct {
	CustomerName string     `json:"customer_name"`
	TransferDate *time.Time `json:"transfer_date"`
	TransferTime string     `json:"transfer_time"`
	FlightNumber string     `json:"flight_number"`
	Direction    string     `json:"direction"`
	FromLocation string     `json:"from_location"`
	ToLocation   string     `json:"to_location"`
	VehicleType  string     `json:"vehicle_type"`
	DriverName   string     `json:"driver_name"`
	Pax          int        `json:"pax"`
	Amount       string     `json:"amount"`
	Currency     string     `json:"currency"`
	Status       string     `json:"status"`
}

// ListTransfers lists airport transfers
// @Summary List transfers
// @Tags Transfers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search customer, flight or driver"
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by direction"
// @Success 200 {object} response.Response
// @Router /transfers [get]
func (h *TravelHandler) ListTransfers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	transfers, total, err := h.transferRepo.List(c.Context(), travelFilter(c, params))
	if err != nil {
		return response.InternalServerError(c, "Failed to list transfers")
	}

	return response.Success(c, "Transfers retrieved successfully", fiber.Map{
		"transfers": transfers,
		"meta":      pagination.GetMeta(params, total),
	})
}

// GetTransfer gets a transfer by ID
// @Summary Get transfer
// @Tags Transfers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transfers/{id} [get]
func (h *TravelHandler) GetTransfer(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	transfer, err := h.transferRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Transfer not found")
		}
		return response.InternalServerError(c, "Failed to get transfer")
	}

	return response.Success(c, "Transfer retrieved successfully", fiber.Map{
		"transfer": transfer,
	})
}

// CreateTransfer creates an airport transfer
// @Summary Create transfer
// @Tags Transfers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TransferRequest true "Transfer data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /transfers [post]
func (h *TravelHandler) CreateTransfer(c *fiber.Ctx) error {
	var req TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return response.BadRequest(c, "Customer name is required")
	}

	direction := req.Direction
	if direction == "" {
		direction = models.TransferArrival
	}
	if direction != models.TransferArrival && direction != models.TransferDeparture {
		return response.BadRequest(c, "Invalid direction")
	}

	userID := middleware.CurrentUserID(c)
	transfer := &models.AirportTransfer{
		CustomerName: req.CustomerName,
		TransferDate: req.TransferDate,
		TransferTime: req.TransferTime,
		FlightNumber: req.FlightNumber,
		Direction:    direction,
		FromLocation: req.FromLocation,
		ToLocation:   req.ToLocation,
		VehicleType:  req.VehicleType,
		DriverName:   req.DriverName,
		Pax:          req.Pax,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Status:       req.Status,
		CreatedBy:    userID,
		UpdatedBy:    userID,
	}
	if transfer.Status == "" {
		transfer.Status = "Pending"
	}

	if err := h.transferRepo.Create(c.Context(), transfer); err != nil {
		return response.InternalServerError(c, "Failed to create transfer")
	}

	return response.Created(c, "Transfer created successfully", fiber.Map{
		"transfer": transfer,
	})
}

// UpdateTransfer updates an airport transfer
// @Summary Update transfer
// @Tags Transfers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Param body body TransferRequest true "Transfer data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transfers/{id} [put]
func (h *TravelHandler) UpdateTransfer(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	transfer, err := h.transferRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Transfer not found")
		}
		return response.InternalServerError(c, "Failed to get transfer")
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return response.BadRequest(c, "Customer name is required")
	}
	if req.Direction != "" && req.Direction != models.TransferArrival && req.Direction != models.TransferDeparture {
		return response.BadRequest(c, "Invalid direction")
	}

	transfer.CustomerName = req.CustomerName
	transfer.TransferDate = req.TransferDate
	transfer.TransferTime = req.TransferTime
	transfer.FlightNumber = req.FlightNumber
	if req.Direction != "" {
		transfer.Direction = req.Direction
	}
	transfer.FromLocation = req.FromLocation
	transfer.ToLocation = req.ToLocation
	transfer.VehicleType = req.VehicleType
	transfer.DriverName = req.DriverName
	transfer.Pax = req.Pax
	transfer.Amount = req.Amount
	transfer.Currency = req.Currency
	if req.Status != "" {
		transfer.Status = req.Status
	}
	transfer.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.transferRepo.Update(c.Context(), transfer); err != nil {
		return response.InternalServerError(c, "Failed to update transfer")
	}

	return response.Success(c, "Transfer updated successfully", fiber.Map{
		"transfer": transfer,
	})
}

// DeleteTransfer deletes an airport transfer
// @Summary Delete transfer
// @Tags Transfers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transfers/{id} [delete]
func (h *TravelHandler) DeleteTransfer(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.transferRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Transfer not found")
		}
		return response.InternalServerError(c, "Failed to delete transfer")
	}

	return response.Success(c, "Transfer deleted successfully", nil)
}
