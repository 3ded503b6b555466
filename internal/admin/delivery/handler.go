package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pushadmin-backend/internal/admin/usecase"
	notifdto "pushadmin-backend/internal/notification/dto"
)

// AdminHandler serves the admin console's JSON API, consumed by the embedded
// browser UI.
type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

func (h *AdminHandler) ListTokens(c *gin.Context) {
	tokens, err := h.adminUsecase.ListTokens()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (h *AdminHandler) DeleteToken(c *gin.Context) {
	id := c.Param("id")
	if err := h.adminUsecase.DeleteToken(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "token deleted"})
}

// Send runs the send-and-reconcile flow. Dispatch-side failures come back as
// 502 since the admin console is only relaying the dispatch service's answer.
func (h *AdminHandler) Send(c *gin.Context) {
	var req notifdto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.adminUsecase.SendAndReconcile(c.Request.Context(), req.Tokens, req.Title, req.Body)
	if err != nil {
		if errors.Is(err, usecase.ErrTitleBodyMissing) || errors.Is(err, usecase.ErrNoDevices) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
