package domain

import (
	"testing"
)

func TestSuccessResponse(t *testing.T) {
	resp := SuccessResponse("Operation completed", map[string]any{"count": 3})

	if !resp.Success {
		t.Error("expected success")
	}
	if resp.Message != "Operation completed" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Data["count"] != 3 {
		t.Errorf("unexpected data: %v", resp.Data)
	}
	if resp.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
}

func TestErrorResponse(t *testing.T) {
	resp := ErrorResponse("Request validation failed", map[string]string{"axis": "oneof"})

	if resp.Success {
		t.Error("expected failure")
	}
	if resp.Errors["axis"] != "oneof" {
		t.Errorf("unexpected errors: %v", resp.Errors)
	}
	if resp.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
}

func TestResponseFromMap(t *testing.T) {
	tests := []struct {
		name       string
		input      map[string]any
		isEnvelope bool
		success    bool
	}{
		{
			"success envelope",
			map[string]any{"success": true, "message": "ok", "data": map[string]any{"k": "v"}},
			true, true,
		},
		{
			"failure envelope with any errors",
			map[string]any{"success": false, "message": "bad", "errors": map[string]any{"auth": "invalid_credentials"}},
			true, false,
		},
		{
			"plain data, not an envelope",
			map[string]any{"state": "running"},
			false, false,
		},
		{
			"success key of wrong type",
			map[string]any{"success": "yes"},
			false, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, ok := ResponseFromMap(tt.input)
			if ok != tt.isEnvelope {
				t.Fatalf("ResponseFromMap ok = %v, want %v", ok, tt.isEnvelope)
			}
			if !ok {
				return
			}
			if resp.Success != tt.success {
				t.Errorf("success = %v, want %v", resp.Success, tt.success)
			}
			if resp.Timestamp == "" {
				t.Error("expected timestamp to be filled in")
			}
		})
	}
}

func TestResponseFromMapConvertsErrors(t *testing.T) {
	resp, ok := ResponseFromMap(map[string]any{
		"success": false,
		"errors":  map[string]any{"auth": "invalid_credentials", "count": 3},
	})
	if !ok {
		t.Fatal("expected envelope")
	}
	if resp.Errors["auth"] != "invalid_credentials" {
		t.Errorf("unexpected errors: %v", resp.Errors)
	}
	if _, found := resp.Errors["count"]; found {
		t.Errorf("non-string error value should be dropped: %v", resp.Errors)
	}
}

func TestAuthResponses(t *testing.T) {
	user := UserInfo{ID: 1, FirstName: "System", LastName: "Administrator", Role: "Admin"}

	resp := AuthenticatedResponse(user, "token-123", "2026-01-01T00:00:00Z")
	if !resp.Success {
		t.Error("expected success")
	}
	if resp.Message != "Welcome, System Administrator" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Data["session_token"] != "token-123" {
		t.Errorf("unexpected data: %v", resp.Data)
	}

	failed := AuthFailedResponse(AuthInvalidCredentials)
	if failed.Success {
		t.Error("expected failure")
	}
	if failed.Errors["auth"] != AuthInvalidCredentials {
		t.Errorf("unexpected errors: %v", failed.Errors)
	}
	if failed.Message != "Invalid credentials" {
		t.Errorf("unexpected message %q", failed.Message)
	}
}
