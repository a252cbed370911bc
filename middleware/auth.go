package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "roomyy/database/repository/user"
	"roomyy/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const authCacheTTL = 10 * time.Minute

// AuthMiddleware validates the bearer token and attaches the authenticated
// principal (userID, isAdmin) to the request context. Token subjects are
// verified against the user store, with a Redis cache in front so repeat
// requests skip the database lookup.
func AuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		principal, err := utils.PrincipalFromToken(tokenString)
		if err != nil {
			logger.Debug("Rejected token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		if !userExists(c.Request.Context(), users, principal.ID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set("userID", principal.ID)
		c.Set("isAdmin", principal.Admin)
		c.Next()
	}
}

// userExists checks the auth cache first, then the user store. A verified id
// is cached so subsequent requests avoid the database round trip.
func userExists(ctx context.Context, users userRepo.UserRepository, id string) bool {
	cache := utils.GetAuthCacheClient()
	key := utils.AuthCachePrefix + id
	if cache != nil {
		if ok, err := cache.Exists(ctx, key).Result(); err == nil && ok > 0 {
			return true
		}
	}

	if _, err := users.GetByIDWithProjection(id, bson.M{"id": 1}); err != nil {
		return false
	}
	if cache != nil {
		cache.Set(ctx, key, "1", authCacheTTL)
	}
	return true
}
