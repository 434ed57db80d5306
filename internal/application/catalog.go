package application

import (
	"github.com/glueflow/automation-api/internal/domain"
)

// Endpoint names. Handlers, legacy mappings and groups all refer to
// endpoints through these.
const (
	AuthLogin   = "AUTH_LOGIN"
	AuthQRLogin = "AUTH_QR_LOGIN"
	AuthLogout  = "AUTH_LOGOUT"
	AuthSession = "AUTH_SESSION"
	AuthRefresh = "AUTH_REFRESH"

	SystemStart         = "SYSTEM_START"
	SystemStop          = "SYSTEM_STOP"
	SystemStatus        = "SYSTEM_STATUS"
	SystemTestRun       = "SYSTEM_TEST_RUN"
	SystemEmergencyStop = "SYSTEM_EMERGENCY_STOP"

	RobotStatus            = "ROBOT_STATUS"
	RobotJog               = "ROBOT_JOG"
	RobotMovePosition      = "ROBOT_MOVE_POSITION"
	RobotMoveCoordinates   = "ROBOT_MOVE_COORDINATES"
	RobotStop              = "ROBOT_STOP"
	RobotCalibrate         = "ROBOT_CALIBRATE"
	RobotCalibrationPoints = "ROBOT_CALIBRATION_POINTS"
	RobotPickupArea        = "ROBOT_PICKUP_AREA"

	CameraStatus          = "CAMERA_STATUS"
	CameraCapture         = "CAMERA_CAPTURE"
	CameraStream          = "CAMERA_STREAM"
	CameraCalibrate       = "CAMERA_CALIBRATE"
	CameraTestCalibration = "CAMERA_TEST_CALIBRATION"
	CameraRawMode         = "CAMERA_RAW_MODE"
	CameraWorkArea        = "CAMERA_WORK_AREA"
	CameraStopDetection   = "CAMERA_STOP_CONTOUR_DETECTION"

	WorkpiecesList      = "WORKPIECES_LIST"
	WorkpiecesCreate    = "WORKPIECES_CREATE"
	WorkpieceByID       = "WORKPIECE_BY_ID"
	WorkpieceUpdate     = "WORKPIECE_UPDATE"
	WorkpieceDelete     = "WORKPIECE_DELETE"
	WorkpieceFromCamera = "WORKPIECE_FROM_CAMERA"
	WorkpieceFromDXF    = "WORKPIECE_FROM_DXF"
	WorkpieceExecute    = "WORKPIECE_EXECUTE"

	SettingsRobotGet     = "SETTINGS_ROBOT_GET"
	SettingsRobotUpdate  = "SETTINGS_ROBOT_UPDATE"
	SettingsCameraGet    = "SETTINGS_CAMERA_GET"
	SettingsCameraUpdate = "SETTINGS_CAMERA_UPDATE"
	SettingsGlueGet      = "SETTINGS_GLUE_GET"
	SettingsGlueUpdate   = "SETTINGS_GLUE_UPDATE"

	StatsOverview   = "STATS_OVERVIEW"
	StatsProduction = "STATS_PRODUCTION"
	StatsEvents     = "STATS_EVENTS"

	GlueStatus        = "GLUE_STATUS"
	GluePrime         = "GLUE_PRIME"
	GlueDispenseStart = "GLUE_DISPENSE_START"
	GlueDispenseStop  = "GLUE_DISPENSE_STOP"
	GluePurge         = "GLUE_PURGE"
	GluePressureGet   = "GLUE_PRESSURE_GET"
	GluePressureSet   = "GLUE_PRESSURE_SET"
	GlueCalibrate     = "GLUE_CALIBRATE"
	GlueTestPattern   = "GLUE_TEST_PATTERN"
)

// CatalogEntry pairs an endpoint with its registry name.
type CatalogEntry struct {
	Name     string
	Endpoint domain.Endpoint
}

// defaultCatalog is the static, ordered declaration of every v2 endpoint.
// Runtime reflection over a constants namespace was deliberately replaced by
// this explicit table.
func defaultCatalog() []CatalogEntry {
	return []CatalogEntry{
		// Authentication
		{AuthLogin, domain.Endpoint{Path: "/api/v2/auth/login", Method: domain.MethodPost, Description: "User login with credentials", RateLimited: true}},
		{AuthQRLogin, domain.Endpoint{Path: "/api/v2/auth/qr-login", Method: domain.MethodPost, Description: "User login with QR code", RateLimited: true}},
		{AuthLogout, domain.Endpoint{Path: "/api/v2/auth/logout", Method: domain.MethodPost, Description: "User logout", RequiresAuth: true, RateLimited: true}},
		{AuthSession, domain.Endpoint{Path: "/api/v2/auth/session", Method: domain.MethodGet, Description: "Get current session information", RequiresAuth: true, RateLimited: true}},
		{AuthRefresh, domain.Endpoint{Path: "/api/v2/auth/refresh", Method: domain.MethodPost, Description: "Refresh authentication token", RequiresAuth: true, RateLimited: true}},

		// System
		{SystemStart, domain.Endpoint{Path: "/api/v2/system/start", Method: domain.MethodPost, Description: "Start system operations", RequiresAuth: true, RateLimited: true}},
		{SystemStop, domain.Endpoint{Path: "/api/v2/system/stop", Method: domain.MethodPost, Description: "Stop system operations", RequiresAuth: true, RateLimited: true}},
		{SystemStatus, domain.Endpoint{Path: "/api/v2/system/status", Method: domain.MethodGet, Description: "Get current system status", RequiresAuth: true}},
		{SystemTestRun, domain.Endpoint{Path: "/api/v2/system/test", Method: domain.MethodPost, Description: "Execute system test run", RequiresAuth: true, RateLimited: true}},
		{SystemEmergencyStop, domain.Endpoint{Path: "/api/v2/system/emergency-stop", Method: domain.MethodPost, Description: "Emergency system shutdown", RequiresAuth: true}},

		// Robot
		{RobotStatus, domain.Endpoint{Path: "/api/v2/robot/status", Method: domain.MethodGet, Description: "Get robot status and current position", RequiresAuth: true}},
		{RobotJog, domain.Endpoint{Path: "/api/v2/robot/jog", Method: domain.MethodPost, Description: "Jog robot in specified axis and direction", RequiresAuth: true, RateLimited: true}},
		{RobotMovePosition, domain.Endpoint{Path: "/api/v2/robot/move/position", Method: domain.MethodPost, Description: "Move robot to predefined position", RequiresAuth: true, RateLimited: true}},
		{RobotMoveCoordinates, domain.Endpoint{Path: "/api/v2/robot/move/coordinates", Method: domain.MethodPost, Description: "Move robot to specific coordinates", RequiresAuth: true, RateLimited: true}},
		{RobotStop, domain.Endpoint{Path: "/api/v2/robot/stop", Method: domain.MethodPost, Description: "Stop robot movement immediately", RequiresAuth: true}},
		{RobotCalibrate, domain.Endpoint{Path: "/api/v2/robot/calibration", Method: domain.MethodPost, Description: "Perform robot calibration", RequiresAuth: true, RateLimited: true}},
		{RobotCalibrationPoints, domain.Endpoint{Path: "/api/v2/robot/calibration/points", Method: domain.MethodPost, Description: "Save robot calibration points", RequiresAuth: true, RateLimited: true}},
		{RobotPickupArea, domain.Endpoint{Path: "/api/v2/robot/calibration/pickup-area", Method: domain.MethodPost, Description: "Calibrate pickup area", RequiresAuth: true, RateLimited: true}},

		// Camera
		{CameraStatus, domain.Endpoint{Path: "/api/v2/camera/status", Method: domain.MethodGet, Description: "Get camera status and settings", RequiresAuth: true}},
		{CameraCapture, domain.Endpoint{Path: "/api/v2/camera/capture", Method: domain.MethodPost, Description: "Capture image from camera", RequiresAuth: true, RateLimited: true}},
		{CameraStream, domain.Endpoint{Path: "/api/v2/camera/stream", Method: domain.MethodGet, Description: "Get latest camera frame", RequiresAuth: true}},
		{CameraCalibrate, domain.Endpoint{Path: "/api/v2/camera/calibration", Method: domain.MethodPost, Description: "Perform camera calibration", RequiresAuth: true, RateLimited: true}},
		{CameraTestCalibration, domain.Endpoint{Path: "/api/v2/camera/calibration/test", Method: domain.MethodPost, Description: "Test camera calibration", RequiresAuth: true, RateLimited: true}},
		{CameraRawMode, domain.Endpoint{Path: "/api/v2/camera/raw-mode", Method: domain.MethodPut, Description: "Toggle camera raw mode on/off", RequiresAuth: true, RateLimited: true}},
		{CameraWorkArea, domain.Endpoint{Path: "/api/v2/camera/work-area", Method: domain.MethodPost, Description: "Set camera work area points", RequiresAuth: true, RateLimited: true}},
		{CameraStopDetection, domain.Endpoint{Path: "/api/v2/camera/stop-contour-detection", Method: domain.MethodPost, Description: "Stop camera contour detection", RequiresAuth: true, RateLimited: true}},

		// Workpieces
		{WorkpiecesList, domain.Endpoint{Path: "/api/v2/workpieces", Method: domain.MethodGet, Description: "Get list of workpieces with optional filtering", RequiresAuth: true, RateLimited: true}},
		{WorkpiecesCreate, domain.Endpoint{Path: "/api/v2/workpieces", Method: domain.MethodPost, Description: "Create new workpiece", RequiresAuth: true, RateLimited: true}},
		{WorkpieceByID, domain.Endpoint{Path: "/api/v2/workpieces/{id}", Method: domain.MethodGet, Description: "Get specific workpiece by ID", RequiresAuth: true, RateLimited: true}},
		{WorkpieceUpdate, domain.Endpoint{Path: "/api/v2/workpieces/{id}", Method: domain.MethodPut, Description: "Update existing workpiece", RequiresAuth: true, RateLimited: true}},
		{WorkpieceDelete, domain.Endpoint{Path: "/api/v2/workpieces/{id}", Method: domain.MethodDelete, Description: "Delete workpiece", RequiresAuth: true, RateLimited: true}},
		{WorkpieceFromCamera, domain.Endpoint{Path: "/api/v2/workpieces/create/camera", Method: domain.MethodPost, Description: "Create workpiece from camera capture", RequiresAuth: true, RateLimited: true}},
		{WorkpieceFromDXF, domain.Endpoint{Path: "/api/v2/workpieces/create/dxf", Method: domain.MethodPost, Description: "Create workpiece from DXF file upload", RequiresAuth: true, RateLimited: true}},
		{WorkpieceExecute, domain.Endpoint{Path: "/api/v2/workpieces/{id}/execute", Method: domain.MethodPost, Description: "Execute workpiece production", RequiresAuth: true, RateLimited: true}},

		// Settings
		{SettingsRobotGet, domain.Endpoint{Path: "/api/v2/settings/robot", Method: domain.MethodGet, Description: "Get robot configuration settings", RequiresAuth: true, RateLimited: true}},
		{SettingsRobotUpdate, domain.Endpoint{Path: "/api/v2/settings/robot", Method: domain.MethodPut, Description: "Update robot configuration settings", RequiresAuth: true, RateLimited: true}},
		{SettingsCameraGet, domain.Endpoint{Path: "/api/v2/settings/camera", Method: domain.MethodGet, Description: "Get camera configuration settings", RequiresAuth: true, RateLimited: true}},
		{SettingsCameraUpdate, domain.Endpoint{Path: "/api/v2/settings/camera", Method: domain.MethodPut, Description: "Update camera configuration settings", RequiresAuth: true, RateLimited: true}},
		{SettingsGlueGet, domain.Endpoint{Path: "/api/v2/settings/glue", Method: domain.MethodGet, Description: "Get glue dispensing settings", RequiresAuth: true, RateLimited: true}},
		{SettingsGlueUpdate, domain.Endpoint{Path: "/api/v2/settings/glue", Method: domain.MethodPut, Description: "Update glue dispensing settings", RequiresAuth: true, RateLimited: true}},

		// Statistics
		{StatsOverview, domain.Endpoint{Path: "/api/v2/stats/overview", Method: domain.MethodGet, Description: "Get production statistics overview", RequiresAuth: true, RateLimited: true}},
		{StatsProduction, domain.Endpoint{Path: "/api/v2/stats/production", Method: domain.MethodGet, Description: "Get production run statistics", RequiresAuth: true, RateLimited: true}},
		{StatsEvents, domain.Endpoint{Path: "/api/v2/stats/events", Method: domain.MethodGet, Description: "Get recent system event log", RequiresAuth: true, RateLimited: true}},

		// Glue system
		{GlueStatus, domain.Endpoint{Path: "/api/v2/glue/status", Method: domain.MethodGet, Description: "Get glue system status and readings", RequiresAuth: true}},
		{GluePrime, domain.Endpoint{Path: "/api/v2/glue/prime", Method: domain.MethodPost, Description: "Prime glue dispensing system", RequiresAuth: true, RateLimited: true}},
		{GlueDispenseStart, domain.Endpoint{Path: "/api/v2/glue/dispense/start", Method: domain.MethodPost, Description: "Start glue dispensing", RequiresAuth: true, RateLimited: true}},
		{GlueDispenseStop, domain.Endpoint{Path: "/api/v2/glue/dispense/stop", Method: domain.MethodPost, Description: "Stop glue dispensing", RequiresAuth: true, RateLimited: true}},
		{GluePurge, domain.Endpoint{Path: "/api/v2/glue/purge", Method: domain.MethodPost, Description: "Purge glue system", RequiresAuth: true, RateLimited: true}},
		{GluePressureGet, domain.Endpoint{Path: "/api/v2/glue/pressure", Method: domain.MethodGet, Description: "Get glue system pressure readings", RequiresAuth: true}},
		{GluePressureSet, domain.Endpoint{Path: "/api/v2/glue/pressure/set", Method: domain.MethodPost, Description: "Set glue system pressure", RequiresAuth: true, RateLimited: true}},
		{GlueCalibrate, domain.Endpoint{Path: "/api/v2/glue/calibrate", Method: domain.MethodPost, Description: "Calibrate glue dispenser", RequiresAuth: true, RateLimited: true}},
		{GlueTestPattern, domain.Endpoint{Path: "/api/v2/glue/test-pattern", Method: domain.MethodPost, Description: "Execute test spray pattern", RequiresAuth: true, RateLimited: true}},
	}
}

func defaultGroups() []domain.EndpointGroup {
	return []domain.EndpointGroup{
		{Name: "Authentication", Endpoints: []string{AuthLogin, AuthQRLogin, AuthLogout, AuthSession, AuthRefresh}},
		{Name: "System", Endpoints: []string{SystemStart, SystemStop, SystemStatus, SystemTestRun, SystemEmergencyStop}},
		{Name: "Robot", Endpoints: []string{RobotStatus, RobotJog, RobotMovePosition, RobotMoveCoordinates, RobotStop, RobotCalibrate, RobotCalibrationPoints, RobotPickupArea}},
		{Name: "Camera", Endpoints: []string{CameraStatus, CameraCapture, CameraStream, CameraCalibrate, CameraTestCalibration, CameraRawMode, CameraWorkArea, CameraStopDetection}},
		{Name: "Workpieces", Endpoints: []string{WorkpiecesList, WorkpiecesCreate, WorkpieceByID, WorkpieceUpdate, WorkpieceDelete, WorkpieceFromCamera, WorkpieceFromDXF, WorkpieceExecute}},
		{Name: "Settings", Endpoints: []string{SettingsRobotGet, SettingsRobotUpdate, SettingsCameraGet, SettingsCameraUpdate, SettingsGlueGet, SettingsGlueUpdate}},
		{Name: "Statistics", Endpoints: []string{StatsOverview, StatsProduction, StatsEvents}},
		{Name: "Glue", Endpoints: []string{GlueStatus, GluePrime, GlueDispenseStart, GlueDispenseStop, GluePurge, GluePressureGet, GluePressureSet, GlueCalibrate, GlueTestPattern}},
	}
}

// defaultLegacyMapping translates pre-v2 string request paths to endpoint
// names. Lookups are exact-match; parameterized legacy paths such as
// "robot/jog/X/Plus" are handled by prefix converters in legacy.go before
// resolution.
func defaultLegacyMapping() map[string]string {
	return map[string]string{
		"login":        AuthLogin,
		"camera/login": AuthQRLogin,
		"logout":       AuthLogout,

		"start":          SystemStart,
		"stop":           SystemStop,
		"status":         SystemStatus,
		"test_run":       SystemTestRun,
		"emergency_stop": SystemEmergencyStop,

		"robot/status":        RobotStatus,
		"robot/jog":           RobotJog,
		"robot/move/home":     RobotMovePosition,
		"robot/move/calibPos": RobotMovePosition,
		"robot/move/login":    RobotMovePosition,
		"robot/coordinates":   RobotMoveCoordinates,
		"robot/stop":          RobotStop,
		"robot/calibrate":     RobotCalibrate,
		"robot/savePoint":     RobotCalibrationPoints,
		"robot/pickupArea":    RobotPickupArea,

		"camera/status":                 CameraStatus,
		"camera/capture":                CameraCapture,
		"camera/getLatestFrame":         CameraStream,
		"camera/calibrate":              CameraCalibrate,
		"camera/testCalibration":        CameraTestCalibration,
		"camera/rawModeOn":              CameraRawMode,
		"camera/rawModeOff":             CameraRawMode,
		"camera/saveWorkAreaPoints":     CameraWorkArea,
		"camera/STOP_CONTOUR_DETECTION": CameraStopDetection,

		"workpiece/list":    WorkpiecesList,
		"workpiece/getall":  WorkpiecesList,
		"workpiece/create":  WorkpieceFromCamera,
		"workpiece/save":    WorkpiecesCreate,
		"workpiece/get":     WorkpieceByID,
		"workpiece/update":  WorkpieceUpdate,
		"workpiece/delete":  WorkpieceDelete,
		"workpiece/dxf":     WorkpieceFromDXF,
		"workpiece/execute": WorkpieceExecute,

		"settings/robot/get":  SettingsRobotGet,
		"settings/robot/set":  SettingsRobotUpdate,
		"settings/camera/get": SettingsCameraGet,
		"settings/camera/set": SettingsCameraUpdate,
		"settings/glue/get":   SettingsGlueGet,
		"settings/glue/set":   SettingsGlueUpdate,

		"glue/status":      GlueStatus,
		"glue/prime":       GluePrime,
		"glue/start":       GlueDispenseStart,
		"glue/stop":        GlueDispenseStop,
		"glue/purge":       GluePurge,
		"glue/pressure":    GluePressureGet,
		"glue/setPressure": GluePressureSet,
		"glue/calibrate":   GlueCalibrate,
		"glue/testPattern": GlueTestPattern,
	}
}
