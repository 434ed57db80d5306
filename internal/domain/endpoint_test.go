package domain

import (
	"testing"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected Method
		wantErr  bool
	}{
		{"GET", MethodGet, false},
		{"get", MethodGet, false},
		{" post ", MethodPost, false},
		{"Put", MethodPut, false},
		{"DELETE", MethodDelete, false},
		{"PATCH", MethodPatch, false},
		{"FETCH", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMethod(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMethod(%q) expected error, got %q", tt.input, m)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMethod(%q) unexpected error: %v", tt.input, err)
			}
			if m != tt.expected {
				t.Errorf("ParseMethod(%q) = %q, want %q", tt.input, m, tt.expected)
			}
		})
	}
}

func TestEndpointKey(t *testing.T) {
	ep := Endpoint{Path: "/api/v2/robot/status", Method: MethodGet}
	if got := ep.Key(); got != "GET:/api/v2/robot/status" {
		t.Errorf("Key() = %q", got)
	}
}

func TestEndpointPathParams(t *testing.T) {
	tests := []struct {
		path     string
		expected []string
	}{
		{"/api/v2/workpieces", nil},
		{"/api/v2/workpieces/{id}", []string{"id"}},
		{"/api/v2/workpieces/{id}/execute", []string{"id"}},
		{"/api/v2/a/{first}/b/{second}", []string{"first", "second"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := Endpoint{Path: tt.path}.PathParams()
			if len(got) != len(tt.expected) {
				t.Fatalf("PathParams(%q) = %v, want %v", tt.path, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("PathParams(%q)[%d] = %q, want %q", tt.path, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestEndpointBasePath(t *testing.T) {
	ep := Endpoint{Path: "/api/v2/workpieces/{id}/execute"}
	if got := ep.BasePath(); got != "/api/v2/workpieces/execute" {
		t.Errorf("BasePath() = %q", got)
	}
}
