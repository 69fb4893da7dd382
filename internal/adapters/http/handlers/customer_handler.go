package handlers

import (
	"errors"
	"strconv"
	"strings"

	"nile-backoffice/internal/adapters/http/middleware"
	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/adapters/persistence/repositories"
	"nile-backoffice/internal/pkg/pagination"
	"nile-backoffice/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	customerRepo *repositories.CustomerRepository
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerRepo *repositories.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customerRepo: customerRepo}
}

// CustomerRequest carries the writable customer fields
type CustomerRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passport_number"`
	Address        string `json:"address"`
	Notes          string `json:"notes"`
}

// ListCustomers lists customers
// @Summary List customers
// @Description Get customers with search and filters
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search name, phone or passport"
// @Param nationality query string false "Filter by nationality"
// @Success 200 {object} response.Response
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	customers, total, err := h.customerRepo.List(c.Context(), &repositories.CustomerFilter{
		Search:      c.Query("search"),
		Nationality: c.Query("nationality"),
		Offset:      params.Offset,
		Limit:       params.Limit,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list customers")
	}

	return response.Success(c, "Customers retrieved successfully", fiber.Map{
		"customers": customers,
		"meta":      pagination.GetMeta(params, total),
	})
}

// GetCustomer gets a customer by ID
// @Summary Get customer
// @Description Get a customer by ID
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	customer, err := h.customerRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		return response.InternalServerError(c, "Failed to get customer")
	}

	return response.Success(c, "Customer retrieved successfully", fiber.Map{
		"customer": customer,
	})
}

// CreateCustomer creates a customer
// @Summary Create customer
// @Description Create a new customer record
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CustomerRequest true "Customer data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	userID := middleware.CurrentUserID(c)
	customer := &models.Customer{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Nationality:    req.Nationality,
		PassportNumber: req.PassportNumber,
		Address:        req.Address,
		Notes:          req.Notes,
		CreatedBy:      userID,
		UpdatedBy:      userID,
	}

	if err := h.customerRepo.Create(c.Context(), customer); err != nil {
		return response.InternalServerError(c, "Failed to create customer")
	}

	return response.Created(c, "Customer created successfully", fiber.Map{
		"customer": customer,
	})
}

// UpdateCustomer updates a customer
// @Summary Update customer
// @Description Update a customer record
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Param body body CustomerRequest true "Customer data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	customer, err := h.customerRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		return response.InternalServerError(c, "Failed to get customer")
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.Nationality = req.Nationality
	customer.PassportNumber = req.PassportNumber
	customer.Address = req.Address
	customer.Notes = req.Notes
	customer.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.customerRepo.Update(c.Context(), customer); err != nil {
		return response.InternalServerError(c, "Failed to update customer")
	}

	return response.Success(c, "Customer updated successfully", fiber.Map{
		"customer": customer,
	})
}

// DeleteCustomer deletes a customer
// @Summary Delete customer
// @Description Delete a customer record
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.customerRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		return response.InternalServerError(c, "Failed to delete customer")
	}

	return response.Success(c, "Customer deleted successfully", nil)
}
