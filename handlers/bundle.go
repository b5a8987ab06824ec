package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handler functions the route registrar wires up.
type HandlerBundle struct {
	// Public booking endpoints.
	CreateBookingHandler gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc

	// Assistant endpoint.
	ConverseHandler gin.HandlerFunc

	// Admin endpoints.
	VerifyPINHandler           gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	DeleteBookingHandler       gin.HandlerFunc
	DeleteAllBookingsHandler   gin.HandlerFunc
	ExportBookingsPDFHandler   gin.HandlerFunc
}
