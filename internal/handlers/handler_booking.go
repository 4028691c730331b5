package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/hellodalat/hostel_backend/internal/apperrors"
	portssvc "github.com/hellodalat/hostel_backend/internal/core/ports/services"
	"github.com/hellodalat/hostel_backend/internal/dto"
	"github.com/hellodalat/hostel_backend/internal/middleware"
	"github.com/hellodalat/hostel_backend/internal/pdfgen"
)

// bookingHandler handles HTTP requests related to bookings.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
	invoiceService portssvc.InvoiceSvcFacade
	renderer       *pdfgen.InvoiceRenderer
}

// newBookingHandler creates a new bookingHandler.
func newBookingHandler(bs portssvc.BookingSvcFacade, is portssvc.InvoiceSvcFacade, renderer *pdfgen.InvoiceRenderer) *bookingHandler {
	return &bookingHandler{
		bookingService: bs,
		invoiceService: is,
		renderer:       renderer,
	}
}

// registerBookingRoutes registers routes related to bookings.
func registerBookingRoutes(rg *gin.RouterGroup, bs portssvc.BookingSvcFacade, is portssvc.InvoiceSvcFacade, renderer *pdfgen.InvoiceRenderer) {
	h := newBookingHandler(bs, is, renderer)

	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.listBookings)
		bookings.POST("", h.createBooking)
		bookings.GET("/:id", h.getBooking)
		bookings.PUT("/:id", h.updateBooking)
		bookings.DELETE("/:id", h.deleteBooking)
		bookings.PUT("/:id/status", h.updateBookingStatus)
		bookings.POST("/:id/payments", h.addPayment)
		bookings.POST("/:id/services", h.addService)
		bookings.GET("/:id/invoice-pdf", h.invoicePDF)
	}
	rg.GET("/available-rooms", h.availableRooms)
}

// bindErrorMessage turns a gin binding failure into a readable message.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("invalid value for field %s (%s)", fe.Field(), fe.Tag())
	}
	return "Invalid request format: " + err.Error()
}

// listBookings godoc
// @Summary List bookings
// @Description Lists all bookings, optionally filtered by a case-insensitive search over id, names, phone and email
// @Tags bookings
// @Produce json
// @Param search query string false "Search query"
// @Success 200 {array} dto.BookingResponse
// @Failure 500 {object} map[string]string "Failed to list bookings"
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	search := c.Query("search")

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), search)
	if err != nil {
		logger.Error("Failed to list bookings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// createBooking godoc
// @Summary Create a new booking
// @Description Creates a booking in status "booked" with room type snapshots from the current catalog
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create booking"
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating booking", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create booking in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	logger.Info("Booking created successfully", slog.String("booking_id", booking.BookingID))
	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// getBooking godoc
// @Summary Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to retrieve booking"
// @Router /bookings/{id} [get]
func (h *bookingHandler) getBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		logger.Error("Failed to get booking from service", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve booking"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// updateBooking godoc
// @Summary Update a booking
// @Description Merges the allow-listed fields into the booking; structural fields are not updatable here
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param booking body dto.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to update booking"
// @Router /bookings/{id} [put]
func (h *bookingHandler) updateBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), bookingID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		logger.Error("Failed to update booking in service", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// deleteBooking godoc
// @Summary Delete a booking
// @Description Removes the booking entirely; invoices and transactions referencing it are kept
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to delete booking"
// @Router /bookings/{id} [delete]
func (h *bookingHandler) deleteBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	if err := h.bookingService.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		logger.Error("Failed to delete booking in service", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// updateBookingStatus godoc
// @Summary Update a booking's status
// @Description Sets the lifecycle state; entering checked-out issues the booking's invoice
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Missing or unknown status"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Router /bookings/{id}/status [put]
func (h *bookingHandler) updateBookingStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBookingStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	booking, err := h.bookingService.UpdateBookingStatus(c.Request.Context(), bookingID, req.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		logger.Error("Failed to update booking status in service", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// addPayment godoc
// @Summary Record a payment against a booking
// @Description Appends a payment with a server-assigned timestamp; existing invoice snapshots are not refreshed
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param payment body dto.AddPaymentRequest true "Payment details"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid payment"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /bookings/{id}/payments [post]
func (h *bookingHandler) addPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	var req dto.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	booking, err := h.bookingService.AddPayment(c.Request.Context(), bookingID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to add payment in service", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// addService godoc
// @Summary Attach a catalog service to a booking
// @Description Copies the catalog entry onto the booking with the requested quantity
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param service body dto.AddServiceRequest true "Service and quantity"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Booking or service not found"
// @Failure 500 {object} map[string]string "Failed to add service"
// @Router /bookings/{id}/services [post]
func (h *bookingHandler) addService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	var req dto.AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddService", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	booking, err := h.bookingService.AddService(c.Request.Context(), bookingID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking or service not found"})
			return
		}
		logger.Error("Failed to add service in service layer", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add service"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// availableRooms godoc
// @Summary List rooms free for a date range
// @Description Returns room ids with no overlapping non-cancelled booking in [checkin, checkout)
// @Tags bookings
// @Produce json
// @Param checkin query string true "Check-in date (YYYY-MM-DD)"
// @Param checkout query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} dto.AvailableRoomsResponse
// @Failure 400 {object} map[string]string "Missing query parameters"
// @Failure 500 {object} map[string]string "Availability computation failed"
// @Router /available-rooms [get]
func (h *bookingHandler) availableRooms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	checkin := c.Query("checkin")
	checkout := c.Query("checkout")
	if checkin == "" || checkout == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkin and checkout query parameters are required"})
		return
	}

	available, rooms, err := h.bookingService.CheckAvailability(c.Request.Context(), checkin, checkout)
	if err != nil {
		logger.Error("Failed to compute availability", slog.String("error", err.Error()),
			slog.String("checkin", checkin), slog.String("checkout", checkout))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute availability"})
		return
	}
	c.JSON(http.StatusOK, dto.AvailableRoomsResponse{AvailableRooms: available, Rooms: rooms})
}

// invoicePDF godoc
// @Summary Download a booking's invoice as PDF
// @Description Issues an invoice first when none exists, then renders it as a PDF attachment
// @Tags bookings
// @Produce application/pdf
// @Param id path string true "Booking ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "PDF generation failed"
// @Router /bookings/{id}/invoice-pdf [get]
func (h *bookingHandler) invoicePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	invoice, booking, err := h.invoiceService.InvoiceForBooking(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		logger.Error("Failed to resolve invoice for PDF", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
		return
	}

	info, err := h.invoiceService.HostelInfo(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load hostel info for PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
		return
	}

	raw, err := h.renderer.Render(info, booking, invoice)
	if err != nil {
		logger.Error("Failed to render invoice PDF", slog.String("error", err.Error()), slog.String("invoice_id", invoice.InvoiceID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoice.InvoiceID))
	c.Data(http.StatusOK, "application/pdf", raw)
}
