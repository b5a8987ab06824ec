package routes

import (
	"net/http"
	"time"

	"lashstudio/config"
	"lashstudio/handlers"
	"lashstudio/middleware"
	"lashstudio/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the public booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("/:bookingNumber", hb.GetBookingHandler)
		api.POST("/:bookingNumber/cancel", hb.CancelBookingHandler)
	}
}

// RegisterAssistantRoutes registers the conversational endpoint.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.POST("/converse", hb.ConverseHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for the dashboard. Everything except
// the PIN check itself sits behind the PIN middleware.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/verify-pin", hb.VerifyPINHandler)

		protected := api.Group("")
		protected.Use(middleware.AdminPinMiddleware(config.AppConfig.AdminPIN))
		protected.GET("/bookings", hb.ListBookingsHandler)
		protected.GET("/bookings/export", hb.ExportBookingsPDFHandler)
		protected.PATCH("/bookings/:id/status", hb.UpdateBookingStatusHandler)
		protected.DELETE("/bookings/:id", hb.DeleteBookingHandler)
		protected.DELETE("/bookings", hb.DeleteAllBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Admin-Pin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
