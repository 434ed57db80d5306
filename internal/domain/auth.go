package domain

// LoginRequest authenticates a user with credentials.
type LoginRequest struct {
	RequestMeta
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return checkStruct(r) }
func (r *LoginRequest) ToMap() (map[string]any, error) { return ToMap(r) }

// QRLoginRequest authenticates a user with scanned QR data.
type QRLoginRequest struct {
	RequestMeta
	QRData string `json:"qr_data" validate:"required"`
}

func (r *QRLoginRequest) Validate() error { return checkStruct(r) }
func (r *QRLoginRequest) ToMap() (map[string]any, error) { return ToMap(r) }

// LogoutRequest ends the session carried by the token.
type LogoutRequest struct {
	RequestMeta
	SessionToken string `json:"session_token"`
}

func (r *LogoutRequest) Validate() error { return nil }
func (r *LogoutRequest) ToMap() (map[string]any, error) { return ToMap(r) }

// UserInfo describes an authenticated user.
type UserInfo struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

func (u UserInfo) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Authentication failure reasons, surfaced in the errors map under "auth".
const (
	AuthUserNotFound       = "user_not_found"
	AuthInvalidPassword    = "invalid_password"
	AuthInvalidCredentials = "invalid_credentials"
)

var authFailureMessages = map[string]string{
	AuthUserNotFound:       "User not found",
	AuthInvalidPassword:    "Invalid password",
	AuthInvalidCredentials: "Invalid credentials",
}

// AuthenticatedResponse builds the login success envelope.
func AuthenticatedResponse(user UserInfo, token, expires string) Response {
	userMap, _ := ToMap(user)
	return SuccessResponse("Welcome, "+user.FullName(), map[string]any{
		"user":            userMap,
		"session_token":   token,
		"session_expires": expires,
	})
}

// AuthFailedResponse builds the login failure envelope for a known reason.
func AuthFailedResponse(reason string) Response {
	message, ok := authFailureMessages[reason]
	if !ok {
		message = "Authentication failed"
	}
	return ErrorResponse(message, map[string]string{"auth": reason})
}
