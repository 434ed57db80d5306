package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/glueflow/automation-api/internal/domain"
)

// Handler executes the business logic for one endpoint. Handlers may return
// a domain.Response, a map shaped like the response envelope, or any other
// value, which the router wraps as success data.
type Handler func(req domain.Request) (any, error)

// RateLimiter gates rate-limited endpoints. Implementations must be safe for
// concurrent use; the Redis and in-memory limiters in
// internal/infrastructure/ratelimit both satisfy this.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int) (bool, error)
}

// Router resolves (path, method, payload) triples to registered handlers and
// normalizes whatever comes back into the uniform response envelope. Handler
// failures and panics never propagate to the caller.
type Router struct {
	registry *Registry
	decoders map[string]requestDecoder

	limiter     RateLimiter
	clientLimit int

	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewRouter(registry *Registry) *Router {
	return &Router{
		registry: registry,
		decoders: defaultDecoders(),
		handlers: make(map[string]Handler),
	}
}

// SetRateLimiter injects the limiter consulted for rate-limited endpoints.
// Requests routed without a client id bypass limiting.
func (r *Router) SetRateLimiter(limiter RateLimiter, perMinute int) {
	r.limiter = limiter
	r.clientLimit = perMinute
}

// RegisterHandler stores a handler under its endpoint name. Registering an
// already-used name is rejected: silent overwrites mask wiring bugs.
func (r *Router) RegisterHandler(endpointName string, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("handler for %s is nil", endpointName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[endpointName]; exists {
		return fmt.Errorf("%w: %s", domain.ErrHandlerExists, endpointName)
	}
	r.handlers[endpointName] = handler
	return nil
}

// ReplaceHandler swaps the handler for an endpoint, registering it if absent.
func (r *Router) ReplaceHandler(endpointName string, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[endpointName] = handler
}

// HasHandler reports whether an endpoint has a registered handler.
func (r *Router) HasHandler(endpointName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[endpointName]
	return ok
}

// RouteRequest resolves and dispatches a request, returning the uniform
// response envelope. It never panics and never lets a handler failure escape.
func (r *Router) RouteRequest(path, method string, data any) domain.Response {
	return r.RouteRequestWithClient(context.Background(), "", path, method, data)
}

// RouteRequestWithClient is RouteRequest with a client identity for rate
// limiting. An empty clientID disables limiting for the call.
func (r *Router) RouteRequestWithClient(ctx context.Context, clientID, path, method string, data any) domain.Response {
	httpMethod, err := domain.ParseMethod(method)
	if err != nil {
		return domain.ErrorResponse(fmt.Sprintf("Unsupported HTTP method: %s", method), nil)
	}

	if !strings.HasPrefix(path, "/api/v2/") {
		return r.routeLegacy(ctx, clientID, path, data)
	}

	name, ep, ok := r.registry.FindEndpoint(path, httpMethod)
	if !ok {
		return domain.ErrorResponse(fmt.Sprintf("Endpoint not found: %s %s", httpMethod, path), nil)
	}
	return r.dispatch(ctx, clientID, name, ep, data)
}

// routeLegacy translates a legacy path and payload to v2 form and dispatches.
func (r *Router) routeLegacy(ctx context.Context, clientID, legacyPath string, data any) domain.Response {
	lookupPath := legacyPath
	if prefix, ok := LegacyJogPath(legacyPath); ok {
		lookupPath = prefix
	}

	name, ep, ok := r.registry.V2Endpoint(lookupPath)
	if !ok {
		return domain.ErrorResponse(fmt.Sprintf("Unknown legacy endpoint: %s", legacyPath), nil)
	}

	converted := ConvertLegacyData(legacyPath, data)
	return r.dispatch(ctx, clientID, name, ep, converted)
}

func (r *Router) dispatch(ctx context.Context, clientID, name string, ep domain.Endpoint, data any) domain.Response {
	if ep.RateLimited && r.limiter != nil && clientID != "" {
		allowed, err := r.limiter.Allow(ctx, "ratelimit:client:"+clientID, r.clientLimit)
		if err != nil {
			// Fail open: a broken limiter backend must not take the API down.
			slog.Warn("rate limiter unavailable", "endpoint", name, "error", err)
		} else if !allowed {
			return domain.ErrorResponse("Rate limit exceeded",
				map[string]string{"rate_limit": "too_many_requests"})
		}
	}

	r.mu.RLock()
	handler, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return domain.ErrorResponse(fmt.Sprintf("No handler registered for: %s", name), nil)
	}

	req, err := r.buildRequest(name, data)
	if err != nil {
		return domain.ErrorResponse(fmt.Sprintf("Request parsing failed: %s", err), nil)
	}
	if err := req.Validate(); err != nil {
		return domain.ErrorResponse("Request validation failed", validationFields(err))
	}

	result, err := r.invoke(name, handler, req)
	if err != nil {
		return domain.ErrorResponse(fmt.Sprintf("Handler execution failed: %s", err), nil)
	}

	return normalizeResult(result)
}

// buildRequest constructs the typed request object for an endpoint from the
// raw payload. Endpoints without a declared model receive a GenericRequest.
func (r *Router) buildRequest(name string, data any) (domain.Request, error) {
	payload, err := payloadMap(data)
	if err != nil {
		return nil, err
	}

	decoder, ok := r.decoders[name]
	if !ok {
		return &domain.GenericRequest{Fields: payload}, nil
	}

	req, err := decoder(payload)
	if err != nil {
		return nil, err
	}
	if m, ok := req.(interface{ EnsureMeta() }); ok {
		m.EnsureMeta()
	}
	return req, nil
}

func payloadMap(data any) (map[string]any, error) {
	switch d := data.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return d, nil
	case domain.Request:
		return d.ToMap()
	default:
		return nil, fmt.Errorf("payload must be a mapping, got %T", data)
	}
}

// invoke runs the handler, converting a panic into an error so routing always
// returns an envelope. No router lock is held here: handlers may block.
func (r *Router) invoke(name string, handler Handler, req domain.Request) (result any, err error) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("handler panicked", "endpoint", name, "panic", p)
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return handler(req)
}

// normalizeResult turns whatever a handler returned into the envelope shape.
func normalizeResult(result any) domain.Response {
	switch res := result.(type) {
	case domain.Response:
		return res
	case *domain.Response:
		if res != nil {
			return *res
		}
	case map[string]any:
		if resp, ok := domain.ResponseFromMap(res); ok {
			return resp
		}
		return domain.SuccessResponse("Operation completed", res)
	case nil:
		return domain.SuccessResponse("Operation completed", nil)
	}
	return domain.SuccessResponse("Operation completed", map[string]any{"result": result})
}

func validationFields(err error) map[string]string {
	if verr, ok := err.(*domain.ValidationError); ok {
		return verr.Fields
	}
	return map[string]string{"request": err.Error()}
}

type requestDecoder func(map[string]any) (domain.Request, error)

func decoderFor[T any, PT interface {
	*T
	domain.Request
}]() requestDecoder {
	return func(data map[string]any) (domain.Request, error) {
		out, err := domain.DecodeRequest[T](data)
		if err != nil {
			return nil, err
		}
		return PT(out), nil
	}
}

// defaultDecoders binds endpoints to their typed request models. Endpoints
// absent from this table carry free-form payloads.
func defaultDecoders() map[string]requestDecoder {
	return map[string]requestDecoder{
		AuthLogin:   decoderFor[domain.LoginRequest](),
		AuthQRLogin: decoderFor[domain.QRLoginRequest](),
		AuthLogout:  decoderFor[domain.LogoutRequest](),

		RobotJog:             decoderFor[domain.JogRequest](),
		RobotMovePosition:    decoderFor[domain.MoveToPositionRequest](),
		RobotMoveCoordinates: decoderFor[domain.MoveToCoordinatesRequest](),

		WorkpiecesList:   decoderFor[domain.ListWorkpiecesRequest](),
		WorkpiecesCreate: decoderFor[domain.CreateWorkpieceRequest](),
		WorkpieceByID:    decoderFor[domain.WorkpieceByIDRequest](),
		WorkpieceUpdate:  decoderFor[domain.CreateWorkpieceRequest](),
		WorkpieceDelete:  decoderFor[domain.WorkpieceByIDRequest](),
		WorkpieceExecute: decoderFor[domain.ExecuteWorkpieceRequest](),

		SettingsRobotUpdate:  decoderFor[domain.UpdateRobotSettingsRequest](),
		SettingsCameraUpdate: decoderFor[domain.UpdateCameraSettingsRequest](),
		SettingsGlueUpdate:   decoderFor[domain.UpdateGlueSettingsRequest](),
	}
}
