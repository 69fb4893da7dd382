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

// ContractHandler handles contracting endpoints: hotel contracts, packages,
// itineraries and tour guide schedules
type ContractHandler struct {
	contractRepo  *repositories.HotelContractRepository
	packageRepo   *repositories.PackageRepository
	itineraryRepo *repositories.ItineraryRepository
	scheduleRepo  *repositories.GuideScheduleRepository
}

// NewContractHandler creates a new contract handler
func NewContractHandler(
	contractRepo *repositories.HotelContractRepository,
	packageRepo *repositories.PackageRepository,
	itineraryRepo *repositories.ItineraryRepository,
	scheduleRepo *repositories.GuideScheduleRepository,
) *ContractHandler {
	return &ContractHandler{
		contractRepo:  contractRepo,
		packageRepo:   packageRepo,
		itineraryRepo: itineraryRepo,
		scheduleRepo:  scheduleRepo,
	}
}

// ============================================================
// Hotel Contracts
// ============================================================

// HotelContractRequest carries the writable hotel contract fields
type HotelContractRequest struct {
	ContractNumber string     `json:"contract_number"`
	HotelName      string     `json:"hotel_name"`
	RoomType       string     `json:"room_type"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Rate           string     `json:"rate"`
	Currency       string     `json:"currency"`
	Allotment      int        `json:"allotment"`
	ReleaseDays    int        `json:"release_days"`
	MealPlan       string     `json:"meal_plan"`
	Notes          string     `json:"notes"`
}

// ListHotelContracts lists hotel contracts
// @Summary List hotel contracts
// @Tags Contracts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search contract number or hotel"
// @Success 200 {object} response.Response
// @Router /hotel-contracts [get]
func (h *ContractHandler) ListHotelContracts(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	contracts, total, err := h.contractRepo.List(c.Context(), &repositories.DateRangeFilter{
		Search:   c.Query("search"),
		Type:     c.Query("meal_plan"),
		DateFrom: parseDateQuery(c.Query("dateFrom")),
		DateTo:   parseDateToQuery(c.Query("dateTo")),
		Offset:   params.Offset,
		Limit:    params.Limit,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list hotel contracts")
	}

	return response.Success(c, "Hotel contracts retrieved successfully", fiber.Map{
		"hotel_contracts": contracts,
		"meta":            pagination.GetMeta(params, total),
	})
}

// GetHotelContract gets a hotel contract by ID
// @Summary Get hotel contract
// @Tags Contracts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contract ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hotel-contracts/{id} [get]
func (h *ContractHandler) GetHotelContract(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	contract, err := h.contractRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Hotel contract not found")
		}
		return response.InternalServerError(c, "Failed to get hotel contract")
	}

	return response.Success(c, "Hotel contract retrieved successfully", fiber.Map{
		"hotel_contract": contract,
	})
}

// CreateHotelContract creates a hotel contract
// @Summary Create hotel contract
// @Tags Contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body HotelContractRequest true "Contract data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /hotel-contracts [post]
func (h *ContractHandler) CreateHotelContract(c *fiber.Ctx) error {
	var req HotelContractRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.ContractNumber = strings.TrimSpace(req.ContractNumber)
	req.HotelName = strings.TrimSpace(req.HotelName)
	if req.ContractNumber == "" || req.HotelName == "" {
		return response.BadRequest(c, "Contract number and hotel name are required")
	}

	exists, err := h.contractRepo.ExistsByContractNumber(c.Context(), req.ContractNumber)
	if err != nil {
		return response.InternalServerError(c, "Failed to create hotel contract")
	}
	if exists {
		return response.Conflict(c, "Contract number already exists")
	}

	userID := middleware.CurrentUserID(c)
	contract := &models.HotelContract{
		ContractNumber: req.ContractNumber,
		HotelName:      req.HotelName,
		RoomType:       req.RoomType,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Rate:           req.Rate,
		Currency:       req.Currency,
		Allotment:      req.Allotment,
		ReleaseDays:    req.ReleaseDays,
		MealPlan:       req.MealPlan,
		Notes:          req.Notes,
		CreatedBy:      userID,
		UpdatedBy:      userID,
	}

	if err := h.contractRepo.Create(c.Context(), contract); err != nil {
		return response.InternalServerError(c, "Failed to create hotel contract")
	}

	return response.Created(c, "Hotel contract created successfully", fiber.Map{
		"hotel_contract": contract,
	})
}

// UpdateHotelContract updates a hotel contract. The number is immutable.
// @Summary Update hotel contract
// @Tags Contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contract ID"
// @Param body body HotelContractRequest true "Contract data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hotel-contracts/{id} [put]
func (h *ContractHandler) UpdateHotelContract(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req HotelContractRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contract, err := h.contractRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Hotel contract not found")
		}
		return response.InternalServerError(c, "Failed to get hotel contract")
	}

	req.HotelName = strings.TrimSpace(req.HotelName)
	if req.HotelName == "" {
		return response.BadRequest(c, "Hotel name is required")
	}

	contract.HotelName = req.HotelName
	contract.RoomType = req.RoomType
	contract.StartDate = req.StartDate
	contract.EndDate = req.EndDate
	contract.Rate = req.Rate
	contract.Currency = req.Currency
	contract.Allotment = req.Allotment
	contract.ReleaseDays = req.ReleaseDays
	contract.MealPlan = req.MealPlan
	contract.Notes = req.Notes
	contract.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.contractRepo.Update(c.Context(), contract); err != nil {
		return response.InternalServerError(c, "Failed to update hotel contract")
	}

	return response.Success(c, "Hotel contract updated successfully", fiber.Map{
		"hotel_contract": contract,
	})
}

// DeleteHotelContract deletes a hotel contract
// @Summary Delete hotel contract
// @Tags Contracts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contract ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hotel-contracts/{id} [delete]
func (h *ContractHandler) DeleteHotelContract(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.contractRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Hotel contract not found")
		}
		return response.InternalServerError(c, "Failed to delete hotel contract")
	}

	return response.Success(c, "Hotel contract deleted successfully", nil)
}

// ============================================================
// Packages
// ============================================================

// PackageRequest carries the writable package fields
type PackageRequest struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Nights      int    `json:"nights"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	IsActive    *bool  `json:"is_active"`
	Description string `json:"description"`
}

// ListPackages lists packages
// @Summary List packages
// @Tags Packages
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search name or destination"
// @Param status query string false "active or inactive"
// @Success 200 {object} response.Response
// @Router /packages [get]
func (h *ContractHandler) ListPackages(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	packages, total, err := h.packageRepo.List(c.Context(), &repositories.DateRangeFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list packages")
	}

	return response.Success(c, "Packages retrieved successfully", fiber.Map{
		"packages": packages,
		"meta":     pagination.GetMeta(params, total),
	})
}

// GetPackage gets a package by ID
// @Summary Get package
// @Tags Packages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /packages/{id} [get]
func (h *ContractHandler) GetPackage(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	pkg, err := h.packageRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Package not found")
		}
		return response.InternalServerError(c, "Failed to get package")
	}

	return response.Success(c, "Package retrieved successfully", fiber.Map{
		"package": pkg,
	})
}

// CreatePackage creates a package
// @Summary Create package
// @Tags Packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PackageRequest true "Package data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /packages [post]
func (h *ContractHandler) CreatePackage(c *fiber.Ctx) error {
	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	userID := middleware.CurrentUserID(c)
	pkg := &models.Package{
		Name:        req.Name,
		Destination: req.Destination,
		Nights:      req.Nights,
		Price:       req.Price,
		Currency:    req.Currency,
		IsActive:    isActive,
		Description: req.Description,
		CreatedBy:   userID,
		UpdatedBy:   userID,
	}

	if err := h.packageRepo.Create(c.Context(), pkg); err != nil {
		return response.InternalServerError(c, "Failed to create package")
	}

	return response.Created(c, "Package created successfully", fiber.Map{
		"package": pkg,
	})
}

// UpdatePackage updates a package
// @Summary Update package
// @Tags Packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Param body body PackageRequest true "Package data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /packages/{id} [put]
func (h *ContractHandler) UpdatePackage(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	pkg, err := h.packageRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Package not found")
		}
		return response.InternalServerError(c, "Failed to get package")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	pkg.Name = req.Name
	pkg.Destination = req.Destination
	pkg.Nights = req.Nights
	pkg.Price = req.Price
	pkg.Currency = req.Currency
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}
	pkg.Description = req.Description
	pkg.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.packageRepo.Update(c.Context(), pkg); err != nil {
		return response.InternalServerError(c, "Failed to update package")
	}

	return response.Success(c, "Package updated successfully", fiber.Map{
		"package": pkg,
	})
}

// DeletePackage deletes a package
// @Summary Delete package
// @Tags Packages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /packages/{id} [delete]
func (h *ContractHandler) DeletePackage(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	count, err := h.packageRepo.CountItineraries(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete package")
	}
	if count > 0 {
		return response.Conflict(c, "Package has itineraries attached")
	}

	if err := h.packageRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Package not found")
		}
		return response.InternalServerError(c, "Failed to delete package")
	}

	return response.Success(c, "Package deleted successfully", nil)
}

// ============================================================
// Itineraries
// ============================================================

// ItineraryRequest carries the writable itinerary fields
type ItineraryRequest struct {
	Title       string `json:"title"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Body        string `json:"body"`
	PackageID   *uint  `json:"package_id"`
}

// ListItineraries lists itineraries
// @Summary List itineraries
// @Tags Itineraries
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search title or destination"
// @Success 200 {object} response.Response
// @Router /itineraries [get]
func (h *ContractHandler) ListItineraries(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	itineraries, total, err := h.itineraryRepo.List(c.Context(), &repositories.DateRangeFilter{
		Search: c.Query("search"),
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list itineraries")
	}

	return response.Success(c, "Itineraries retrieved successfully", fiber.Map{
		"itineraries": itineraries,
		"meta":        pagination.GetMeta(params, total),
	})
}

// GetItinerary gets an itinerary by ID
// @Summary Get itinerary
// @Tags Itineraries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Itinerary ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /itineraries/{id} [get]
func (h *ContractHandler) GetItinerary(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	itinerary, err := h.itineraryRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Itinerary not found")
		}
		return response.InternalServerError(c, "Failed to get itinerary")
	}

	return response.Success(c, "Itinerary retrieved successfully", fiber.Map{
		"itinerary": itinerary,
	})
}

// CreateItinerary creates an itinerary
// @Summary Create itinerary
// @Tags Itineraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ItineraryRequest true "Itinerary data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /itineraries [post]
func (h *ContractHandler) CreateItinerary(c *fiber.Ctx) error {
	var req ItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return response.BadRequest(c, "Title is required")
	}

	if req.PackageID != nil {
		if _, err := h.packageRepo.GetByID(c.Context(), *req.PackageID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.BadRequest(c, "Package not found")
			}
			return response.InternalServerError(c, "Failed to create itinerary")
		}
	}

	userID := middleware.CurrentUserID(c)
	itinerary := &models.Itinerary{
		Title:       req.Title,
		Destination: req.Destination,
		Days:        req.Days,
		Body:        req.Body,
		PackageID:   req.PackageID,
		CreatedBy:   userID,
		UpdatedBy:   userID,
	}

	if err := h.itineraryRepo.Create(c.Context(), itinerary); err != nil {
		return response.InternalServerError(c, "Failed to create itinerary")
	}

	return response.Created(c, "Itinerary created successfully", fiber.Map{
		"itinerary": itinerary,
	})
}

// UpdateItinerary updates an itinerary
// @Summary Update itinerary
// @Tags Itineraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Itinerary ID"
// @Param body body ItineraryRequest true "Itinerary data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /itineraries/{id} [put]
func (h *ContractHandler) UpdateItinerary(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req ItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	itinerary, err := h.itineraryRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Itinerary not found")
		}
		return response.InternalServerError(c, "Failed to get itinerary")
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return response.BadRequest(c, "Title is required")
	}

	if req.PackageID != nil {
		if _, err := h.packageRepo.GetByID(c.Context(), *req.PackageID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.BadRequest(c, "Package not found")
			}
			return response.InternalServerError(c, "Failed to update itinerary")
		}
	}

	itinerary.Title = req.Title
	itinerary.Destination = req.Destination
	itinerary.Days = req.Days
	itinerary.Body = req.Body
	itinerary.PackageID = req.PackageID
	itinerary.Package = nil
	itinerary.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.itineraryRepo.Update(c.Context(), itinerary); err != nil {
		return response.InternalServerError(c, "Failed to update itinerary")
	}

	return response.Success(c, "Itinerary updated successfully", fiber.Map{
		"itinerary": itinerary,
	})
}

// DeleteItinerary deletes an itinerary
// @Summary Delete itinerary
// @Tags Itineraries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Itinerary ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /itineraries/{id} [delete]
func (h *ContractHandler) DeleteItinerary(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.itineraryRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Itinerary not found")
		}
		return response.InternalServerError(c, "Failed to delete itinerary")
	}

	return response.Success(c, "Itinerary deleted successfully", nil)
}

// ============================================================
// Tour Guide Schedules
// ============================================================

// GuideScheduleRequest carries the writable schedule fields
type GuideScheduleRequest struct {
	GuideName string     `json:"guide_name"`
	Language  string     `json:"language"`
	Date      *time.Time `json:"date"`
	Site      string     `json:"site"`
	TripID    *uint      `json:"trip_id"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes"`
}

func validScheduleStatus(s string) bool {
	switch s {
	case models.ScheduleStatusScheduled, models.ScheduleStatusDone, models.ScheduleStatusCancelled:
		return true
	}
	return false
}

// ListGuideSchedules lists tour guide schedules
// @Summary List guide schedules
// @Tags Guides
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search guide, site or language"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Response
// @Router /guide-schedules [get]
func (h *ContractHandler) ListGuideSchedules(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	schedules, total, err := h.scheduleRepo.List(c.Context(), &repositories.DateRangeFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		DateFrom: parseDateQuery(c.Query("dateFrom")),
		DateTo:   parseDateToQuery(c.Query("dateTo")),
		Offset:   params.Offset,
		Limit:    params.Limit,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list guide schedules")
	}

	return response.Success(c, "Guide schedules retrieved successfully", fiber.Map{
		"guide_schedules": schedules,
		"meta":            pagination.GetMeta(params, total),
	})
}

// GetGuideSchedule gets a schedule by ID
// @Summary Get guide schedule
// @Tags Guides
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /guide-schedules/{id} [get]
func (h *ContractHandler) GetGuideSchedule(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	schedule, err := h.scheduleRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Guide schedule not found")
		}
		return response.InternalServerError(c, "Failed to get guide schedule")
	}

	return response.Success(c, "Guide schedule retrieved successfully", fiber.Map{
		"guide_schedule": schedule,
	})
}

// CreateGuideSchedule creates a schedule
// @Summary Create guide schedule
// @Tags Guides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GuideScheduleRequest true "Schedule data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /guide-schedules [post]
func (h *ContractHandler) CreateGuideSchedule(c *fiber.Ctx) error {
	var req GuideScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.GuideName = strings.TrimSpace(req.GuideName)
	if req.GuideName == "" {
		return response.BadRequest(c, "Guide name is required")
	}

	status := req.Status
	if status == "" {
		status = models.ScheduleStatusScheduled
	}
	if !validScheduleStatus(status) {
		return response.BadRequest(c, "Invalid status")
	}

	userID := middleware.CurrentUserID(c)
	schedule := &models.TourGuideSchedule{
		GuideName: req.GuideName,
		Language:  req.Language,
		Date:      req.Date,
		Site:      req.Site,
		TripID:    req.TripID,
		Status:    status,
		Notes:     req.Notes,
		CreatedBy: userID,
		UpdatedBy: userID,
	}

	if err := h.scheduleRepo.Create(c.Context(), schedule); err != nil {
		return response.InternalServerError(c, "Failed to create guide schedule")
	}

	return response.Created(c, "Guide schedule created successfully", fiber.Map{
		"guide_schedule": schedule,
	})
}

// UpdateGuideSchedule updates a schedule
// @Summary Update guide schedule
// @Tags Guides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param body body GuideScheduleRequest true "Schedule data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /guide-schedules/{id} [put]
func (h *ContractHandler) UpdateGuideSchedule(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req GuideScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	schedule, err := h.scheduleRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Guide schedule not found")
		}
		return response.InternalServerError(c, "Failed to get guide schedule")
	}

	req.GuideName = strings.TrimSpace(req.GuideName)
	if req.GuideName == "" {
		return response.BadRequest(c, "Guide name is required")
	}
	if req.Status != "" && !validScheduleStatus(req.Status) {
		return response.BadRequest(c, "Invalid status")
	}

	schedule.GuideName = req.GuideName
	schedule.Language = req.Language
	schedule.Date = req.Date
	schedule.Site = req.Site
	schedule.TripID = req.TripID
	schedule.Trip = nil
	if req.Status != "" {
		schedule.Status = req.Status
	}
	schedule.Notes = req.Notes
	schedule.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.scheduleRepo.Update(c.Context(), schedule); err != nil {
		return response.InternalServerError(c, "Failed to update guide schedule")
	}

	return response.Success(c, "Guide schedule updated successfully", fiber.Map{
		"guide_schedule": schedule,
	})
}

// DeleteGuideSchedule deletes a schedule
// @Summary Delete guide schedule
// @Tags Guides
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /guide-schedules/{id} [delete]
func (h *ContractHandler) DeleteGuideSchedule(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.scheduleRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Guide schedule not found")
		}
		return response.InternalServerError(c, "Failed to delete guide schedule")
	}

	return response.Success(c, "Guide schedule deleted successfully", nil)
}
