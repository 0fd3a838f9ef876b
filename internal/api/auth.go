package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saxenaaman628/redis-quiz-service/config"
	"github.com/saxenaaman628/redis-quiz-service/internal/models"
	"github.com/saxenaaman628/redis-quiz-service/internal/utils"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler issues an admin token for the configured credentials.
func LoginHandler(auth config.Auth, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(auth.AdminUsername)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(auth.AdminPassword)) == 1
		if !userOK || !passOK {
			log.Warn("rejected admin login", zap.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		admin := models.User{ID: "admin", Username: req.Username, Role: models.RoleAdmin}
		token, err := utils.GenerateJWTToken(admin, auth.JWTSecret)
		if err != nil {
			log.Error("failed to sign token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
