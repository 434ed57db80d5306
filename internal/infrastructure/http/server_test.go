package http

import (
	"testing"

	"github.com/glueflow/automation-api/internal/domain"
)

func TestRobotStatusData(t *testing.T) {
	resp := robotStatusData(domain.RobotStatus{
		ErrorState:   true,
		ErrorMessage: "robot controller not connected",
	})

	if !resp.Success {
		t.Fatalf("status reports are success envelopes: %+v", resp)
	}
	if resp.Data["error_state"] != true {
		t.Errorf("error_state = %v", resp.Data["error_state"])
	}
	if resp.Data["error_message"] != "robot controller not connected" {
		t.Errorf("error_message = %v", resp.Data["error_message"])
	}
	if _, ok := resp.Data["position"]; ok {
		t.Error("position must be omitted when unknown")
	}
}

func TestRobotStatusDataWithPosition(t *testing.T) {
	resp := robotStatusData(domain.RobotStatus{
		Position:     &domain.Position3D{X: 10, Y: 20, Z: 5},
		IsCalibrated: true,
	})

	pos, ok := resp.Data["position"].([]float64)
	if !ok {
		t.Fatalf("position = %v", resp.Data["position"])
	}
	if len(pos) != 6 || pos[0] != 10 || pos[1] != 20 || pos[2] != 5 {
		t.Errorf("position = %v", pos)
	}
	if resp.Data["is_calibrated"] != true {
		t.Errorf("is_calibrated = %v", resp.Data["is_calibrated"])
	}
}

func TestGinPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/api/v2/workpieces", "/api/v2/workpieces"},
		{"/api/v2/workpieces/{id}", "/api/v2/workpieces/:id"},
		{"/api/v2/workpieces/{id}/execute", "/api/v2/workpieces/:id/execute"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ginPath(tt.input); got != tt.expected {
				t.Errorf("ginPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
