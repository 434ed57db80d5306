package domain

import "fmt"

// Workpiece processing states.
const (
	WorkpieceDraft      = "draft"
	WorkpieceReady      = "ready"
	WorkpieceInProgress = "in_progress"
	WorkpieceCompleted  = "completed"
	WorkpieceFailed     = "failed"
)

// Contour is a closed or open polyline in workpiece coordinates.
type Contour struct {
	Points [][]float64 `json:"points"`
	Closed bool        `json:"closed"`
}

func (c Contour) Validate() error {
	if len(c.Points) < 3 {
		return fmt.Errorf("contour needs at least 3 points, got %d", len(c.Points))
	}
	for i, p := range c.Points {
		if len(p) != 2 {
			return fmt.Errorf("contour point %d must be [x, y], got %d coordinates", i, len(p))
		}
	}
	return nil
}

// SprayPattern describes the paths and parameters of one dispensing run.
type SprayPattern struct {
	ContourPaths  []Contour `json:"contour_paths,omitempty"`
	FillPaths     []Contour `json:"fill_paths,omitempty"`
	SpraySpeed    float64   `json:"spray_speed"`
	SprayPressure float64   `json:"spray_pressure"`
}

func (s SprayPattern) Validate() error {
	for _, c := range s.ContourPaths {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	for _, c := range s.FillPaths {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	if s.SpraySpeed <= 0 || s.SpraySpeed > 10 {
		return fmt.Errorf("spray_speed must be in (0, 10], got %g", s.SpraySpeed)
	}
	if s.SprayPressure <= 0 || s.SprayPressure > 10 {
		return fmt.Errorf("spray_pressure must be in (0, 10], got %g", s.SprayPressure)
	}
	return nil
}

// Workpiece is a complete production definition.
type Workpiece struct {
	ID           string        `json:"id,omitempty"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	MaterialType string        `json:"material_type,omitempty"`
	Thickness    float64       `json:"thickness"`
	Status       string        `json:"status,omitempty"`
	Contours     []Contour     `json:"contours,omitempty"`
	SprayPattern *SprayPattern `json:"spray_pattern,omitempty"`
	CreatedBy    string        `json:"created_by,omitempty"`
	CreatedAt    string        `json:"created_at,omitempty"`
}

// CreateWorkpieceRequest creates a new workpiece definition.
type CreateWorkpieceRequest struct {
	RequestMeta
	Workpiece Workpiece `json:"workpiece"`
}

func (r *CreateWorkpieceRequest) Validate() error {
	if r.Workpiece.Name == "" {
		return &ValidationError{Fields: map[string]string{"workpiece.name": "required"}}
	}
	if r.Workpiece.Thickness <= 0 {
		return &ValidationError{Fields: map[string]string{"workpiece.thickness": "gt=0"}}
	}
	if r.Workpiece.SprayPattern != nil {
		if err := r.Workpiece.SprayPattern.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r *CreateWorkpieceRequest) ToMap() (map[string]any, error) { return ToMap(r) }

// WorkpieceByIDRequest addresses a single workpiece.
type WorkpieceByIDRequest struct {
	RequestMeta
	ID string `json:"id" validate:"required"`
}

func (r *WorkpieceByIDRequest) Validate() error { return checkStruct(r) }
func (r *WorkpieceByIDRequest) ToMap() (map[string]any, error) { return ToMap(r) }

// ExecuteWorkpieceRequest starts production of a workpiece.
type ExecuteWorkpieceRequest struct {
	RequestMeta
	ID     string `json:"id" validate:"required"`
	DryRun bool   `json:"dry_run,omitempty"`
}

func (r *ExecuteWorkpieceRequest) Validate() error { return checkStruct(r) }
func (r *ExecuteWorkpieceRequest) ToMap() (map[string]any, error) { return ToMap(r) }

// ListWorkpiecesRequest lists workpieces with optional filters.
type ListWorkpiecesRequest struct {
	RequestMeta
	Status       string `json:"status,omitempty"`
	MaterialType string `json:"material_type,omitempty"`
}

func (r *ListWorkpiecesRequest) Validate() error {
	if r.Status == "" {
		return nil
	}
	switch r.Status {
	case WorkpieceDraft, WorkpieceReady, WorkpieceInProgress, WorkpieceCompleted, WorkpieceFailed:
		return nil
	}
	return &ValidationError{Fields: map[string]string{"status": "unknown status"}}
}

func (r *ListWorkpiecesRequest) ToMap() (map[string]any, error) { return ToMap(r) }
