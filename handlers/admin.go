package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"lashstudio/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler backs the dashboard: PIN check plus booking CRUD and export.
type AdminHandler struct {
	Service booking.BookingService
	PIN     string
	Logger  *zap.Logger
}

func NewAdminHandler(svc booking.BookingService, pin string, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Service: svc, PIN: pin, Logger: logger}
}

// VerifyPIN checks the dashboard PIN. Always 200; the verdict is in the body.
func (h *AdminHandler) VerifyPIN(c *gin.Context) {
	var req struct {
		PIN string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	ok := subtle.ConstantTimeCompare([]byte(req.PIN), []byte(h.PIN)) == 1
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

// ListBookings returns all bookings for the dashboard table, newest first.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatus is the unguarded admin override for a booking's status.
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Status string `json:"status" binding:"required,oneof=confirmed cancelled completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.UpdateBookingStatus(c.Request.Context(), id, req.Status); err != nil {
		var notFound *booking.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		h.Logger.Error("Failed to update booking status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// DeleteBooking hard-deletes one booking by document ID.
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.DeleteBooking(c.Request.Context(), id); err != nil {
		var notFound *booking.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		h.Logger.Error("Failed to delete booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// DeleteAllBookings wipes the whole booking collection.
func (h *AdminHandler) DeleteAllBookings(c *gin.Context) {
	if err := h.Service.DeleteAllBookings(c.Request.Context()); err != nil {
		h.Logger.Error("Failed to delete all bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All bookings deleted"})
}
