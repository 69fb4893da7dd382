package handlers

import (
	"nile-backoffice/internal/core/services"
	"nile-backoffice/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatisticsHandler handles the dashboard statistics endpoint
type StatisticsHandler struct {
	statsService *services.StatisticsService
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(statsService *services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statsService: statsService}
}

// GetStatistics returns the dashboard overview
// @Summary Dashboard statistics
// @Description Reservation, revenue and operations figures for the dashboard
// @Tags Statistics
// @Produce json
// @Security BearerAuth
// @Param dateFrom query string false "Window start (YYYY-MM-DD)"
// @Param dateTo query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /statistics [get]
func (h *StatisticsHandler) GetStatistics(c *fiber.Ctx) error {
	from := parseDateQuery(c.Query("dateFrom"))
	to := parseDateToQuery(c.Query("dateTo"))

	overview, err := h.statsService.GetOverview(c.Context(), from, to)
	if err != nil {
		return response.InternalServerError(c, "Failed to build statistics")
	}

	return response.Success(c, "Statistics retrieved successfully", overview)
}
