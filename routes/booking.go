package routes

import (
	"github.com/gin-gonic/gin"

	"calbook/handlers"
)

// RegisterBookingRoutes registers all endpoints for the booking core.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/v1")
	{
		api.POST("/availability", h.SetAvailabilityHandler)
		api.GET("/slots", h.GetSlotsHandler)
		api.POST("/appointments", h.BookAppointmentHandler)
		api.GET("/appointments", h.ListAppointmentsHandler)
	}
}
