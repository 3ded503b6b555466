package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	devicedelivery "pushadmin-backend/internal/device/delivery"
	notifdelivery "pushadmin-backend/internal/notification/delivery"
)

func SetupRoutes(r *gin.Engine, notificationHandler *notifdelivery.NotificationHandler, tokenHandler *devicedelivery.TokenHandler) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Dispatch
		api.POST("/send-notification", notificationHandler.SendNotification)
		api.GET("/notifications/:token", notificationHandler.GetNotificationsForToken)

		// Device-token registration (called by client apps)
		tokens := api.Group("/tokens")
		{
			tokens.POST("/register", tokenHandler.RegisterToken)
			tokens.DELETE("/:token", tokenHandler.UnregisterToken)
		}
	}
}
