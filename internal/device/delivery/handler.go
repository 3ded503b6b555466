package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	devicerepo "pushadmin-backend/internal/device/repository"
)

type RegisterTokenRequest struct {
	Token    string `json:"token" binding:"required"`
	Platform string `json:"platform"`
}

// TokenHandler serves the device-token registration path. Registration is
// normally called by the client apps themselves, not the admin console.
type TokenHandler struct {
	tokenRepo devicerepo.FCMTokenRepository
}

func NewTokenHandler(tokenRepo devicerepo.FCMTokenRepository) *TokenHandler {
	return &TokenHandler{tokenRepo: tokenRepo}
}

func (h *TokenHandler) RegisterToken(c *gin.Context) {
	var req RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.tokenRepo.SaveToken(req.Token, req.Platform); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "token registered"})
}

func (h *TokenHandler) UnregisterToken(c *gin.Context) {
	token := c.Param("token")
	if err := h.tokenRepo.DeleteToken(token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "token removed"})
}
