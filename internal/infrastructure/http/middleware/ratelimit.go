package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/glueflow/automation-api/internal/domain"
	"github.com/glueflow/automation-api/internal/infrastructure/ratelimit"
	"github.com/gin-gonic/gin"
)

// RateLimit enforces the per-client sliding window at the HTTP edge.
// Authenticated requests are keyed by user id, anonymous ones by client IP.
// Limiter backend errors fail open.
func RateLimit(limiter ratelimit.Limiter, clientRPM int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientKey(c)

		result, err := limiter.Allow(c.Request.Context(), key, clientRPM)
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				domain.ErrorResponse("Rate limit exceeded",
					map[string]string{"rate_limit": "too_many_requests"}))
			return
		}

		c.Next()
	}
}

func clientKey(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		return fmt.Sprintf("ratelimit:user:%v", userID)
	}
	return fmt.Sprintf("ratelimit:ip:%s", c.ClientIP())
}
