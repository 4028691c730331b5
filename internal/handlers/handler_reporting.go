package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hellodalat/hostel_backend/internal/core/ports/services"
	"github.com/hellodalat/hostel_backend/internal/middleware"
)

// reportingHandler serves the dashboard and calendar read models.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the reporting endpoints.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportingHandler(rs)
	rg.GET("/dashboard-summary", h.dashboardSummary)
	rg.GET("/upcoming-bookings", h.upcomingBookings)
	rg.GET("/calendar-data", h.calendarData)
	rg.GET("/data", h.fullData)
}

// dashboardSummary godoc
// @Summary Daily operational summary
// @Description Revenue invoiced today, occupied room count and today's pending check-ins
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /dashboard-summary [get]
func (h *reportingHandler) dashboardSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.DashboardSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// upcomingBookings godoc
// @Summary Bookings awaiting check-in
// @Tags reporting
// @Produce json
// @Success 200 {array} dto.BookingResponse
// @Failure 500 {object} map[string]string "Failed to list upcoming bookings"
// @Router /upcoming-bookings [get]
func (h *reportingHandler) upcomingBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bookings, err := h.reportingService.UpcomingBookings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list upcoming bookings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list upcoming bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// calendarData godoc
// @Summary Room map and bookings for the calendar view
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.CalendarDataResponse
// @Failure 500 {object} map[string]string "Failed to load calendar data"
// @Router /calendar-data [get]
func (h *reportingHandler) calendarData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.reportingService.CalendarData(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load calendar data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load calendar data"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// fullData godoc
// @Summary Full data document
// @Description Reloads the document from disk and returns it verbatim
// @Tags reporting
// @Produce json
// @Success 200 {object} domain.Document
// @Failure 500 {object} map[string]string "Failed to load data"
// @Router /data [get]
func (h *reportingHandler) fullData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	doc, err := h.reportingService.FullDocument(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load full document", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, doc)
}
