package handlers

import (
	"errors"
	"net/http"

	"lashstudio/models"
	"lashstudio/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the public booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles the JSON POST from the booking form.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data", "details": err.Error()})
		return
	}

	resp, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data", "details": vErr.Error()})
			return
		}
		h.Logger.Error("Failed to process booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred."})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetBooking returns the details of a booking by its number. A miss is a
// plain 404, not a fault.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	number := c.Param("bookingNumber")

	b, err := h.Service.GetBookingDetails(c.Request.Context(), number)
	if err != nil {
		h.Logger.Error("Failed to fetch booking", zap.String("bookingNumber", number), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred."})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking found with this reference"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking cancels a booking by its number.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	number := c.Param("bookingNumber")

	err := h.Service.CancelBooking(c.Request.Context(), number)
	if err != nil {
		var notFound *booking.NotFoundError
		var alreadyCancelled *booking.AlreadyCancelledError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		case errors.As(err, &alreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": alreadyCancelled.Error()})
		default:
			h.Logger.Error("Failed to cancel booking", zap.String("bookingNumber", number), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}
