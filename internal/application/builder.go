package application

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/glueflow/automation-api/internal/domain"
	"github.com/google/uuid"
)

// RequestContext carries caller identity injected into built requests.
type RequestContext struct {
	RequestID    string
	Timestamp    string
	UserID       string
	SessionToken string
}

// NewRequestContext creates an anonymous context with fresh identity fields.
func NewRequestContext() RequestContext {
	return RequestContext{
		RequestID: uuid.New().String(),
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// QueryParam is one query-string pair. Parameters are a slice rather than a
// map so the produced URL is deterministic in the caller's insertion order.
type QueryParam struct {
	Key   string
	Value string
}

// RequestDescriptor is a fully built request: where to send it, how, and
// with what payload.
type RequestDescriptor struct {
	URL    string         `json:"url"`
	Method domain.Method  `json:"method"`
	Data   map[string]any `json:"data,omitempty"`
}

// Builder constructs concrete request descriptors from endpoint definitions
// and caller-supplied parameters.
type Builder struct {
	ctx      RequestContext
	registry *Registry
}

func NewBuilder() *Builder {
	return &Builder{ctx: NewRequestContext(), registry: NewRegistry()}
}

// NewBuilderWithContext creates a builder that injects the given identity
// into every built request.
func NewBuilderWithContext(ctx RequestContext) *Builder {
	if ctx.RequestID == "" {
		ctx.RequestID = uuid.New().String()
	}
	if ctx.Timestamp == "" {
		ctx.Timestamp = time.Now().Format(time.RFC3339)
	}
	return &Builder{ctx: ctx, registry: NewRegistry()}
}

// BuildURL substitutes path parameters into the endpoint's template and
// appends query parameters. Every missing required parameter is named in a
// single error.
func (b *Builder) BuildURL(ep domain.Endpoint, pathParams map[string]string, queryParams []QueryParam) (string, error) {
	built := ep.Path

	for name, value := range pathParams {
		placeholder := "{" + name + "}"
		if !strings.Contains(built, placeholder) {
			return "", &domain.UnknownParamError{Param: name, Path: ep.Path}
		}
		built = strings.ReplaceAll(built, placeholder, url.PathEscape(value))
	}

	if missing := (domain.Endpoint{Path: built}).PathParams(); len(missing) > 0 {
		return "", &domain.MissingParamsError{Path: ep.Path, Params: missing}
	}

	if len(queryParams) > 0 {
		parts := make([]string, 0, len(queryParams))
		for _, qp := range queryParams {
			parts = append(parts, fmt.Sprintf("%s=%s", qp.Key, url.QueryEscape(qp.Value)))
		}
		built += "?" + strings.Join(parts, "&")
	}

	return built, nil
}

// BuildRequest builds a full request descriptor, injecting the builder's
// context fields into the payload when they are not already present.
func (b *Builder) BuildRequest(ep domain.Endpoint, data any, pathParams map[string]string, queryParams []QueryParam) (RequestDescriptor, error) {
	built, err := b.BuildURL(ep, pathParams, queryParams)
	if err != nil {
		return RequestDescriptor{}, err
	}

	payload := map[string]any{}
	switch d := data.(type) {
	case nil:
	case domain.Request:
		m, err := d.ToMap()
		if err != nil {
			return RequestDescriptor{}, err
		}
		payload = m
	case map[string]any:
		for k, v := range d {
			payload[k] = v
		}
	default:
		return RequestDescriptor{}, fmt.Errorf("unsupported request data type %T", data)
	}

	if v, ok := payload["request_id"]; !ok || v == "" {
		payload["request_id"] = b.ctx.RequestID
	}
	if v, ok := payload["timestamp"]; !ok || v == "" {
		payload["timestamp"] = b.ctx.Timestamp
	}
	if b.ctx.UserID != "" {
		if _, ok := payload["user_id"]; !ok {
			payload["user_id"] = b.ctx.UserID
		}
	}
	if b.ctx.SessionToken != "" {
		if _, ok := payload["session_token"]; !ok {
			payload["session_token"] = b.ctx.SessionToken
		}
	}

	return RequestDescriptor{URL: built, Method: ep.Method, Data: payload}, nil
}

// Typed builders for the common operation shapes.

func (b *Builder) LoginRequest(userID, password string) (RequestDescriptor, error) {
	ep, _ := b.registry.EndpointByName(AuthLogin)
	return b.BuildRequest(ep, &domain.LoginRequest{UserID: userID, Password: password}, nil, nil)
}

func (b *Builder) JogRequest(axis, direction string, stepSize float64) (RequestDescriptor, error) {
	ep, _ := b.registry.EndpointByName(RobotJog)
	return b.BuildRequest(ep, &domain.JogRequest{Axis: axis, Direction: direction, StepSize: stepSize}, nil, nil)
}

func (b *Builder) WorkpieceGet(id string) (RequestDescriptor, error) {
	ep, _ := b.registry.EndpointByName(WorkpieceByID)
	return b.BuildRequest(ep, nil, map[string]string{"id": id}, nil)
}

func (b *Builder) WorkpieceExecute(id string) (RequestDescriptor, error) {
	ep, _ := b.registry.EndpointByName(WorkpieceExecute)
	return b.BuildRequest(ep, &domain.ExecuteWorkpieceRequest{ID: id}, map[string]string{"id": id}, nil)
}

func (b *Builder) WorkpiecesList(filters ...QueryParam) (RequestDescriptor, error) {
	ep, _ := b.registry.EndpointByName(WorkpiecesList)
	return b.BuildRequest(ep, nil, nil, filters)
}
