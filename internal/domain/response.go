package domain

import (
	"time"
)

// Response is the uniform envelope returned by the router for every request.
// success == false implies errors is non-empty or message describes the
// failure; success == true implies data (if present) matches the handler's
// declared contract.
type Response struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Data      map[string]any    `json:"data,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Timestamp string            `json:"timestamp"`
}

func SuccessResponse(message string, data map[string]any) Response {
	return Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func ErrorResponse(message string, errs map[string]string) Response {
	return Response{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// ResponseFromMap interprets a mapping as a response envelope. It reports
// false when the mapping does not carry the envelope's boolean success field,
// in which case the caller should wrap the value as handler data instead.
func ResponseFromMap(m map[string]any) (Response, bool) {
	success, ok := m["success"].(bool)
	if !ok {
		return Response{}, false
	}

	resp := Response{Success: success}

	if msg, ok := m["message"].(string); ok {
		resp.Message = msg
	}
	if ts, ok := m["timestamp"].(string); ok {
		resp.Timestamp = ts
	}
	if resp.Timestamp == "" {
		resp.Timestamp = time.Now().Format(time.RFC3339)
	}
	if data, ok := m["data"].(map[string]any); ok {
		resp.Data = data
	}
	switch errs := m["errors"].(type) {
	case map[string]string:
		resp.Errors = errs
	case map[string]any:
		converted := make(map[string]string, len(errs))
		for k, v := range errs {
			if s, ok := v.(string); ok {
				converted[k] = s
			}
		}
		if len(converted) > 0 {
			resp.Errors = converted
		}
	}

	return resp, true
}
