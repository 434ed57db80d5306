package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glueflow/automation-api/internal/domain"
	"github.com/glueflow/automation-api/internal/infrastructure/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter(sessions *jwt.Sessions) *gin.Engine {
	r := gin.New()
	auth := NewSessionAuth(sessions)
	r.GET("/protected", auth.Authenticate(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func issueTestToken(t *testing.T, sessions *jwt.Sessions) string {
	t.Helper()
	token, _, err := sessions.Issue(domain.UserInfo{
		ID: 1, FirstName: "System", LastName: "Administrator", Role: "Admin",
	})
	require.NoError(t, err)
	return token
}

func TestAuthenticateMissingToken(t *testing.T) {
	sessions := jwt.NewSessionsWithSecret("test-secret", "automation-api", time.Hour)
	r := newAuthTestRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp domain.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "missing_token", resp.Errors["auth"])
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	sessions := jwt.NewSessionsWithSecret("test-secret", "automation-api", time.Hour)
	r := newAuthTestRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	sessions := jwt.NewSessionsWithSecret("test-secret", "automation-api", time.Hour)
	r := newAuthTestRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp domain.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_token", resp.Errors["auth"])
}

func TestAuthenticateExpiredToken(t *testing.T) {
	expired := jwt.NewSessionsWithSecret("test-secret", "automation-api", -time.Minute)
	sessions := jwt.NewSessionsWithSecret("test-secret", "automation-api", time.Hour)
	r := newAuthTestRouter(sessions)

	token := issueTestToken(t, expired)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp domain.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "token_expired", resp.Errors["auth"])
}

func TestAuthenticateValidToken(t *testing.T) {
	sessions := jwt.NewSessionsWithSecret("test-secret", "automation-api", time.Hour)
	r := newAuthTestRouter(sessions)

	token := issueTestToken(t, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "1", body["user_id"])
}
