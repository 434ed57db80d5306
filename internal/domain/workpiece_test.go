package domain

import (
	"testing"
)

func TestContourValidate(t *testing.T) {
	tests := []struct {
		name    string
		contour Contour
		wantErr bool
	}{
		{"triangle", Contour{Points: [][]float64{{0, 0}, {1, 0}, {0, 1}}, Closed: true}, false},
		{"too few points", Contour{Points: [][]float64{{0, 0}, {1, 1}}}, true},
		{"point with wrong arity", Contour{Points: [][]float64{{0, 0}, {1, 0}, {0, 1, 2}}}, true},
		{"empty", Contour{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.contour.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSprayPatternValidate(t *testing.T) {
	valid := Contour{Points: [][]float64{{0, 0}, {1, 0}, {0, 1}}}

	tests := []struct {
		name    string
		pattern SprayPattern
		wantErr bool
	}{
		{"valid", SprayPattern{ContourPaths: []Contour{valid}, SpraySpeed: 5, SprayPressure: 3}, false},
		{"speed too low", SprayPattern{SpraySpeed: 0, SprayPressure: 3}, true},
		{"speed too high", SprayPattern{SpraySpeed: 11, SprayPressure: 3}, true},
		{"pressure too high", SprayPattern{SpraySpeed: 5, SprayPressure: 10.5}, true},
		{"boundary values", SprayPattern{SpraySpeed: 10, SprayPressure: 10}, false},
		{"bad contour", SprayPattern{FillPaths: []Contour{{}}, SpraySpeed: 5, SprayPressure: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pattern.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateWorkpieceRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateWorkpieceRequest
		wantErr bool
	}{
		{"valid", CreateWorkpieceRequest{Workpiece: Workpiece{Name: "side panel", Thickness: 2.0}}, false},
		{"missing name", CreateWorkpieceRequest{Workpiece: Workpiece{Thickness: 2.0}}, true},
		{"zero thickness", CreateWorkpieceRequest{Workpiece: Workpiece{Name: "side panel"}}, true},
		{
			"bad spray pattern",
			CreateWorkpieceRequest{Workpiece: Workpiece{
				Name: "side panel", Thickness: 2.0,
				SprayPattern: &SprayPattern{SpraySpeed: 0, SprayPressure: 3},
			}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestListWorkpiecesRequestValidate(t *testing.T) {
	tests := []struct {
		status  string
		wantErr bool
	}{
		{"", false},
		{WorkpieceReady, false},
		{WorkpieceInProgress, false},
		{"shipped", true},
	}

	for _, tt := range tests {
		name := tt.status
		if name == "" {
			name = "no filter"
		}
		t.Run(name, func(t *testing.T) {
			req := ListWorkpiecesRequest{Status: tt.status}
			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
