package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"calbook/config"
	"calbook/handlers"
	"calbook/utils"
)

// RegisterRoutes wires up all route groups on the given engine.
func RegisterRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	RegisterBookingRoutes(r, h)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"checks": utils.GetHealthStatus(),
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s", config.AppConfig.AppName),
			"version": config.AppConfig.AppVersion,
		})
	})
}
