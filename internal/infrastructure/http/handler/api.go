package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/glueflow/automation-api/internal/application"
	"github.com/glueflow/automation-api/internal/domain"
	"github.com/gin-gonic/gin"
)

// APIHandler funnels HTTP requests into the request router.
type APIHandler struct {
	router *application.Router
}

func NewAPIHandler(router *application.Router) *APIHandler {
	return &APIHandler{router: router}
}

// Endpoint builds the gin handler for one registered v2 endpoint. The
// endpoint's template path, not the concrete URL, is what the router resolves,
// so path parameters are merged into the payload instead.
func (h *APIHandler) Endpoint(ep domain.Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := map[string]any{}

		if c.Request.Method == http.MethodGet {
			for key, values := range c.Request.URL.Query() {
				if len(values) > 0 {
					payload[key] = values[0]
				}
			}
		} else if body, err := io.ReadAll(c.Request.Body); err == nil && len(body) > 0 {
			if err := json.Unmarshal(body, &payload); err != nil {
				c.JSON(http.StatusBadRequest,
					domain.ErrorResponse("Request parsing failed: invalid JSON body", nil))
				return
			}
		}

		for _, param := range c.Params {
			payload[param.Key] = param.Value
		}

		resp := h.router.RouteRequest(ep.Path, string(ep.Method), payload)
		c.JSON(statusFor(resp), resp)
	}
}

// Legacy serves pre-v2 string paths under a single wildcard route. The
// payload may be a JSON array (positional legacy form) or object.
func (h *APIHandler) Legacy() gin.HandlerFunc {
	return func(c *gin.Context) {
		legacyPath := strings.TrimPrefix(c.Param("path"), "/")

		var payload any
		if body, err := io.ReadAll(c.Request.Body); err == nil && len(body) > 0 {
			if err := json.Unmarshal(body, &payload); err != nil {
				c.JSON(http.StatusBadRequest,
					domain.ErrorResponse("Request parsing failed: invalid JSON body", nil))
				return
			}
		}

		resp := h.router.RouteRequest(legacyPath, http.MethodPost, payload)
		c.JSON(statusFor(resp), resp)
	}
}

func statusFor(resp domain.Response) int {
	if resp.Success {
		return http.StatusOK
	}
	switch {
	case strings.HasPrefix(resp.Message, "Endpoint not found"),
		strings.HasPrefix(resp.Message, "Unknown legacy endpoint"),
		strings.HasPrefix(resp.Message, "No handler registered"):
		return http.StatusNotFound
	case strings.HasPrefix(resp.Message, "Rate limit exceeded"):
		return http.StatusTooManyRequests
	case strings.HasPrefix(resp.Message, "Handler execution failed"):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
