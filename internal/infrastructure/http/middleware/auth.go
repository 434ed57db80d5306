package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/glueflow/automation-api/internal/domain"
	"github.com/glueflow/automation-api/internal/infrastructure/jwt"
	"github.com/gin-gonic/gin"
)

// SessionAuth guards endpoints that require an authenticated session. On
// success the session claims are stored on the context under "session" and
// the user id under "user_id" for rate limit keying.
type SessionAuth struct {
	sessions *jwt.Sessions
}

func NewSessionAuth(sessions *jwt.Sessions) *SessionAuth {
	return &SessionAuth{sessions: sessions}
}

func (a *SessionAuth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				domain.ErrorResponse("Authentication required",
					map[string]string{"auth": "missing_token"}))
			return
		}

		claims, err := a.sessions.Validate(token)
		if err != nil {
			reason := "invalid_token"
			if errors.Is(err, domain.ErrSessionExpired) {
				reason = "token_expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				domain.ErrorResponse("Authentication failed",
					map[string]string{"auth": reason}))
			return
		}

		c.Set("session", claims)
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
