package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	notifdto "pushadmin-backend/internal/notification/dto"
	"pushadmin-backend/internal/notification/usecase"
)

type NotificationHandler struct {
	dispatchUsecase usecase.DispatchUsecase
}

func NewNotificationHandler(dispatchUsecase usecase.DispatchUsecase) *NotificationHandler {
	return &NotificationHandler{dispatchUsecase: dispatchUsecase}
}

// SendNotification handles POST /api/send-notification.
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	var req notifdto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.dispatchUsecase.SendNotification(c.Request.Context(), req.Tokens, req.Title, req.Body)
	if err != nil {
		if errors.Is(err, usecase.ErrNoTokens) || errors.Is(err, usecase.ErrTitleBodyRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetNotificationsForToken handles GET /api/notifications/:token.
func (h *NotificationHandler) GetNotificationsForToken(c *gin.Context) {
	token := c.Param("token")

	items, err := h.dispatchUsecase.GetNotificationsForToken(token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}
