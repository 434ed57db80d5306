package domain

// Robot axes.
const (
	AxisX  = "X"
	AxisY  = "Y"
	AxisZ  = "Z"
	AxisRX = "RX"
	AxisRY = "RY"
	AxisRZ = "RZ"
)

// Jog directions.
const (
	DirectionPositive = "positive"
	DirectionNegative = "negative"
)

// Position3D is a robot pose in cartesian space with orientation.
type Position3D struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Z  float64 `json:"z"`
	RX float64 `json:"rx"`
	RY float64 `json:"ry"`
	RZ float64 `json:"rz"`
}

func (p Position3D) ToList() []float64 {
	return []float64{p.X, p.Y, p.Z, p.RX, p.RY, p.RZ}
}

// JogRequest moves the robot one step along a single axis.
type JogRequest struct {
	RequestMeta
	Axis      string  `json:"axis" validate:"required,oneof=X Y Z RX RY RZ"`
	Direction string  `json:"direction" validate:"required,oneof=positive negative"`
	StepSize  float64 `json:"step_size" validate:"required,gt=0"`
}

func (r *JogRequest) Validate() error { return checkStruct(r) }
func (r *JogRequest) ToMap() (map[string]any, error) { return ToMap(r) }

// MoveToPositionRequest moves the robot to a named predefined position.
type MoveToPositionRequest struct {
	RequestMeta
	Position     string   `json:"position" validate:"required,oneof=home calibration login"`
	Velocity     *float64 `json:"velocity,omitempty"`
	Acceleration *float64 `json:"acceleration,omitempty"`
}

func (r *MoveToPositionRequest) Validate() error { return checkStruct(r) }
func (r *MoveToPositionRequest) ToMap() (map[string]any, error) { return ToMap(r) }

// MoveToCoordinatesRequest moves the robot to explicit coordinates.
type MoveToCoordinatesRequest struct {
	RequestMeta
	Position     *Position3D `json:"position" validate:"required"`
	Velocity     *float64    `json:"velocity,omitempty"`
	Acceleration *float64    `json:"acceleration,omitempty"`
}

func (r *MoveToCoordinatesRequest) Validate() error { return checkStruct(r) }
func (r *MoveToCoordinatesRequest) ToMap() (map[string]any, error) { return ToMap(r) }

// RobotStatus reports the robot's current state.
type RobotStatus struct {
	Position     *Position3D `json:"position,omitempty"`
	IsMoving     bool        `json:"is_moving"`
	IsCalibrated bool        `json:"is_calibrated"`
	ErrorState   bool        `json:"error_state"`
	ErrorMessage string      `json:"error_message,omitempty"`
}
