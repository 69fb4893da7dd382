package handlers

import (
	"errors"
	"strconv"
	"time"

	"nile-backoffice/internal/adapters/http/middleware"
	"nile-backoffice/internal/core/domain"
	"nile-backoffice/internal/core/services"
	"nile-backoffice/internal/pkg/pagination"
	"nile-backoffice/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReservationHandler handles reservation endpoints
type ReservationHandler struct {
	reservationService *services.ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// ListReservations lists reservations with filters
// @Summary List reservations
// @Description Get reservations with search and filters
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search file number, customer, destination or supplier"
// @Param progress query string false "Filter by progress"
// @Param branch query string false "Filter by branch"
// @Param currency query string false "Filter by currency"
// @Param dateFrom query string false "Created from (YYYY-MM-DD)"
// @Param dateTo query string false "Created to (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	input := &services.ListReservationsInput{
		Search:   c.Query("search"),
		Progress: c.Query("progress"),
		Branch:   c.Query("branch"),
		Currency: c.Query("currency"),
		Page:     params.Page,
		Limit:    params.Limit,
	}
	input.DateFrom = parseDateQuery(c.Query("dateFrom"))
	input.DateTo = parseDateToQuery(c.Query("dateTo"))

	reservations, meta, err := h.reservationService.List(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list reservations")
	}

	return response.Success(c, "Reservations retrieved successfully", fiber.Map{
		"reservations": reservations,
		"meta":         meta,
	})
}

// GetReservation gets a reservation by ID
// @Summary Get reservation
// @Description Get a reservation by ID
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	reservation, err := h.reservationService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Reservation not found")
		}
		return response.InternalServerError(c, "Failed to get reservation")
	}

	return response.Success(c, "Reservation retrieved successfully", fiber.Map{
		"reservation": reservation,
	})
}

// CreateReservation creates a reservation
// @Summary Create reservation
// @Description Create a reservation. When no file number is supplied one is
// assigned automatically.
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ReservationInput true "Reservation data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *fiber.Ctx) error {
	var input services.ReservationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	userID := middleware.CurrentUserID(c)
	reservation, err := h.reservationService.Create(c.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileNumberTaken):
			return response.Conflict(c, "File number already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Customer name is required and progress must be valid")
		default:
			return response.InternalServerError(c, "Failed to create reservation")
		}
	}

	return response.Created(c, "Reservation created successfully", fiber.Map{
		"reservation": reservation,
	})
}

// UpdateReservation updates a reservation
// @Summary Update reservation
// @Description Update a reservation. The file number is immutable.
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param body body services.ReservationInput true "Reservation data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) UpdateReservation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.ReservationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	userID := middleware.CurrentUserID(c)
	reservation, err := h.reservationService.Update(c.Context(), userID, uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Reservation not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Customer name is required and progress must be valid")
		default:
			return response.InternalServerError(c, "Failed to update reservation")
		}
	}

	return response.Success(c, "Reservation updated successfully", fiber.Map{
		"reservation": reservation,
	})
}

// DeleteReservation soft-deletes a reservation
// @Summary Delete reservation
// @Description Soft-delete a reservation. The file number is never reissued.
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	userID := middleware.CurrentUserID(c)
	if err := h.reservationService.Delete(c.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Reservation not found")
		}
		return response.InternalServerError(c, "Failed to delete reservation")
	}

	return response.Success(c, "Reservation deleted successfully", nil)
}

// BulkDeleteReservations soft-deletes a batch of reservations
// @Summary Bulk delete reservations
// @Description Soft-delete multiple reservations in one call
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BulkDeleteRequest true "Reservation IDs"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reservations/bulk-delete [post]
func (h *ReservationHandler) BulkDeleteReservations(c *fiber.Ctx) error {
	var req BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	userID := middleware.CurrentUserID(c)
	deleted, err := h.reservationService.DeleteMany(c.Context(), userID, req.IDs)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "No IDs provided")
		}
		return response.InternalServerError(c, "Failed to delete reservations")
	}

	return response.Success(c, "Reservations deleted successfully", fiber.Map{
		"deleted": deleted,
	})
}

// DuplicateReservation copies a reservation into a fresh file
// @Summary Duplicate reservation
// @Description Copy a reservation to a new file number with progress reset
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reservations/{id}/duplicate [post]
func (h *ReservationHandler) DuplicateReservation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	userID := middleware.CurrentUserID(c)
	reservation, err := h.reservationService.Duplicate(c.Context(), userID, uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Reservation not found")
		}
		return response.InternalServerError(c, "Failed to duplicate reservation")
	}

	return response.Created(c, "Reservation duplicated successfully", fiber.Map{
		"reservation": reservation,
	})
}

// GetReservationStats returns the reservation counters
// @Summary Reservation statistics
// @Description Per-progress counts plus the current month total
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reservations/stats [get]
func (h *ReservationHandler) GetReservationStats(c *fiber.Ctx) error {
	stats, err := h.reservationService.GetStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get reservation statistics")
	}

	return response.Success(c, "Reservation statistics retrieved successfully", stats)
}

// parseDateQuery parses a YYYY-MM-DD query value, nil when absent or invalid
func parseDateQuery(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

// parseDateToQuery parses an upper-bound date value. The bound is pushed to
// the end of the named day so records created during it are included.
func parseDateToQuery(value string) *time.Time {
	t := parseDateQuery(value)
	if t == nil {
		return nil
	}
	end := t.AddDate(0, 0, 1).Add(-time.Second)
	return &end
}
