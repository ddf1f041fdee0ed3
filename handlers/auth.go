package handlers

import (
	"net/http"
	"time"

	"smartmeet/config"
	"smartmeet/utils"

	"github.com/gin-gonic/gin"
)

const tokenLifetime = 24 * time.Hour

// IssueToken exchanges the service API key for a bearer token scoped to one
// client. Shells call this once at startup.
func IssueToken(c *gin.Context) {
	var input struct {
		ClientID string `json:"clientId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	apiKey := c.GetHeader("X-API-Key")
	if config.AppConfig.APIKey == "" || apiKey != config.AppConfig.APIKey {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
		return
	}

	token, err := utils.GenerateToken(input.ClientID, tokenLifetime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(tokenLifetime.Seconds())})
}
