package api

import (
	"github.com/gin-gonic/gin"

	devicedelivery "pushadmin-backend/internal/device/delivery"
	devicerepo "pushadmin-backend/internal/device/repository"
	notifdelivery "pushadmin-backend/internal/notification/delivery"
	notifusecase "pushadmin-backend/internal/notification/usecase"
)

type Handler struct {
	notificationHandler *notifdelivery.NotificationHandler
	tokenHandler        *devicedelivery.TokenHandler
}

func NewHandler(dispatchUsecase notifusecase.DispatchUsecase, tokenRepo devicerepo.FCMTokenRepository) *Handler {
	return &Handler{
		notificationHandler: notifdelivery.NewNotificationHandler(dispatchUsecase),
		tokenHandler:        devicedelivery.NewTokenHandler(tokenRepo),
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(corsMiddleware())

	SetupRoutes(r, h.notificationHandler, h.tokenHandler)

	return r.Run(addr)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
