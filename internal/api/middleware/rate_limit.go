package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-portal/backend/pkg/redis"
)

// LoginRateLimit throttles login attempts per client IP using the Redis
// fixed-window counter. With Redis disabled (nil client) the limiter is a
// pass-through.
func LoginRateLimit(cache *redis.Client, logger *zap.Logger, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache == nil {
			c.Next()
			return
		}

		key := "ratelimit:login:" + c.ClientIP()
		ok, err := cache.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// Redis trouble must not lock users out.
			logger.Warn("rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many login attempts, try again later",
			})
			return
		}
		c.Next()
	}
}
