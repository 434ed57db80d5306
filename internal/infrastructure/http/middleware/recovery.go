package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/glueflow/automation-api/internal/domain"
	"github.com/gin-gonic/gin"
)

// Recovery converts panics in the HTTP layer into envelope-shaped 500s.
// Handler panics never reach this middleware; the router already contains
// them. This guards the transport plumbing itself.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID, _ := c.Get("request_id")
				slog.Error("panic recovered",
					"error", err,
					"request_id", requestID,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"stack", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					domain.ErrorResponse("Internal server error", nil))
			}
		}()
		c.Next()
	}
}
