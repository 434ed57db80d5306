package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Request is implemented by every typed API payload. Models round-trip
// losslessly through ToMap/DecodeRequest and JSON for all declared fields.
type Request interface {
	Validate() error
	ToMap() (map[string]any, error)
}

var validate = validator.New()

// checkStruct runs struct-tag validation and flattens failures into a
// field -> reason map.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return &ValidationError{Fields: fields}
	}
	return err
}

// RequestMeta carries the request identity fields shared by all API requests.
type RequestMeta struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version,omitempty"`
}

// EnsureMeta fills in missing identity fields.
func (m *RequestMeta) EnsureMeta() {
	if m.RequestID == "" {
		m.RequestID = uuid.New().String()
	}
	if m.Timestamp == "" {
		m.Timestamp = time.Now().Format(time.RFC3339)
	}
	if m.Version == "" {
		m.Version = "2.0"
	}
}

// ToMap converts any model to its mapping form through JSON, so the result
// always matches the model's declared wire shape.
func ToMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return m, nil
}

// DecodeRequest reconstructs a typed model from a mapping. Unknown fields are
// ignored so legacy payloads carrying extra metadata still decode.
func DecodeRequest[T any](data map[string]any) (*T, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &out, nil
}

// DecodeJSON reconstructs a typed model from its JSON form.
func DecodeJSON[T any](raw string) (*T, error) {
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &out, nil
}

// GenericRequest backs endpoints that declare no dedicated request model.
type GenericRequest struct {
	Fields map[string]any
}

func (r *GenericRequest) Validate() error { return nil }

func (r *GenericRequest) ToMap() (map[string]any, error) {
	if r.Fields == nil {
		return map[string]any{}, nil
	}
	return r.Fields, nil
}
