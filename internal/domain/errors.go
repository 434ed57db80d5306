package domain

import (
	"fmt"
	"strings"
)

var (
	ErrEndpointNotFound = fmt.Errorf("endpoint not found")
	ErrHandlerNotFound  = fmt.Errorf("handler not found")
	ErrHandlerExists    = fmt.Errorf("handler already registered")
	ErrUnknownMethod    = fmt.Errorf("unknown HTTP method")
	ErrUserNotFound     = fmt.Errorf("user not found")
	ErrInvalidPassword  = fmt.Errorf("invalid password")
	ErrSessionExpired   = fmt.Errorf("session expired")
	ErrSessionInvalid   = fmt.Errorf("session invalid")
)

// MissingParamsError reports every unresolved path parameter of a build
// attempt in a single message.
type MissingParamsError struct {
	Path   string
	Params []string
}

func (e *MissingParamsError) Error() string {
	return fmt.Sprintf("missing required path parameters for %s: %s",
		e.Path, strings.Join(e.Params, ", "))
}

// UnknownParamError is returned when a caller supplies a path parameter the
// endpoint template does not declare.
type UnknownParamError struct {
	Param string
	Path  string
}

func (e *UnknownParamError) Error() string {
	return fmt.Sprintf("parameter %q not found in path %q", e.Param, e.Path)
}

// ValidationError wraps the field-level failures of a request model.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var msgs []string
	for field, reason := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, reason))
	}
	return fmt.Sprintf("request validation failed: %s", strings.Join(msgs, "; "))
}
