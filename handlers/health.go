package handlers

import (
	"context"
	"net/http"
	"time"

	"roomyy/database"

	"github.com/gin-gonic/gin"
)

// Health reports process liveness and database reachability. The ping re-runs
// the lazy connection attempt, so a recovered database flips back to
// "connected" without a restart.
func Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	state := "connected"
	if err := database.Ping(ctx); err != nil {
		state = "disconnected"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "OK",
		"database": state,
	})
}
