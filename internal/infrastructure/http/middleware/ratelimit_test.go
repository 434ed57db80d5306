package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glueflow/automation-api/internal/domain"
	"github.com/glueflow/automation-api/internal/infrastructure/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitTestRouter(limiter ratelimit.Limiter, rpm int) *gin.Engine {
	r := gin.New()
	r.GET("/limited", RateLimit(limiter, rpm), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRateLimitAllowsAndRejects(t *testing.T) {
	r := newRateLimitTestRouter(ratelimit.NewMemoryLimiter(), 3)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	var resp domain.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Rate limit exceeded", resp.Message)
	assert.Equal(t, "too_many_requests", resp.Errors["rate_limit"])
}

func TestRateLimitKeysByClientIP(t *testing.T) {
	r := newRateLimitTestRouter(ratelimit.NewMemoryLimiter(), 1)

	first := httptest.NewRecorder()
	req1 := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req1.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(first, req1)
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req2.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(second, req2)
	assert.Equal(t, http.StatusOK, second.Code, "different client must not share the window")
}

type failingLimiter struct{}

func (failingLimiter) Allow(ctx context.Context, key string, limit int) (*ratelimit.Result, error) {
	return nil, errors.New("backend down")
}

func TestRateLimitFailsOpen(t *testing.T) {
	r := newRateLimitTestRouter(failingLimiter{}, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
