package handlers

import (
	"roomyy/models"
	"roomyy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// process logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// principalFrom reads the authenticated principal set by AuthMiddleware.
// Routes without auth get a zero principal.
func principalFrom(c *gin.Context) models.Principal {
	return models.Principal{
		ID:    c.GetString("userID"),
		Admin: c.GetBool("isAdmin"),
	}
}
