package domain

// RobotSettings is the robot's persisted configuration.
type RobotSettings struct {
	Velocity       float64 `json:"velocity"`
	Acceleration   float64 `json:"acceleration"`
	ToolOffset     float64 `json:"tool_offset"`
	WorkspaceLimit float64 `json:"workspace_limit"`
}

// CameraSettings is the camera's persisted configuration.
type CameraSettings struct {
	Index      int     `json:"index"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Exposure   float64 `json:"exposure"`
	Threshold  int     `json:"threshold"`
	SkipFrames int     `json:"skip_frames"`
}

// GlueSettings is the dispensing system's persisted configuration.
type GlueSettings struct {
	SprayWidth       float64 `json:"spray_width"`
	Pressure         float64 `json:"pressure"`
	FlowRate         float64 `json:"flow_rate"`
	FanSpeed         int     `json:"fan_speed"`
	MotorSpeed       int     `json:"motor_speed"`
	ReverseDuration  float64 `json:"reverse_duration"`
	TimeBeforeMotion float64 `json:"time_before_motion"`
}

// UpdateRobotSettingsRequest replaces the robot configuration.
type UpdateRobotSettingsRequest struct {
	RequestMeta
	Settings RobotSettings `json:"settings"`
}

func (r *UpdateRobotSettingsRequest) Validate() error {
	if r.Settings.Velocity <= 0 {
		return &ValidationError{Fields: map[string]string{"settings.velocity": "gt=0"}}
	}
	if r.Settings.Acceleration <= 0 {
		return &ValidationError{Fields: map[string]string{"settings.acceleration": "gt=0"}}
	}
	return nil
}

func (r *UpdateRobotSettingsRequest) ToMap() (map[string]any, error) { return ToMap(r) }

// UpdateCameraSettingsRequest replaces the camera configuration.
type UpdateCameraSettingsRequest struct {
	RequestMeta
	Settings CameraSettings `json:"settings"`
}

func (r *UpdateCameraSettingsRequest) Validate() error {
	if r.Settings.Width <= 0 || r.Settings.Height <= 0 {
		return &ValidationError{Fields: map[string]string{"settings.resolution": "width and height must be positive"}}
	}
	return nil
}

func (r *UpdateCameraSettingsRequest) ToMap() (map[string]any, error) { return ToMap(r) }

// UpdateGlueSettingsRequest replaces the dispensing configuration.
type UpdateGlueSettingsRequest struct {
	RequestMeta
	Settings GlueSettings `json:"settings"`
}

func (r *UpdateGlueSettingsRequest) Validate() error {
	if r.Settings.Pressure < 0 {
		return &ValidationError{Fields: map[string]string{"settings.pressure": "gte=0"}}
	}
	if r.Settings.FlowRate < 0 {
		return &ValidationError{Fields: map[string]string{"settings.flow_rate": "gte=0"}}
	}
	return nil
}

func (r *UpdateGlueSettingsRequest) ToMap() (map[string]any, error) { return ToMap(r) }
