package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/glueflow/automation-api/internal/application"
	"github.com/glueflow/automation-api/internal/domain"
	"github.com/glueflow/automation-api/internal/infrastructure/config"
	"github.com/glueflow/automation-api/internal/infrastructure/http/handler"
	"github.com/glueflow/automation-api/internal/infrastructure/http/middleware"
	"github.com/glueflow/automation-api/internal/infrastructure/jwt"
	"github.com/glueflow/automation-api/internal/infrastructure/ratelimit"
	"github.com/glueflow/automation-api/internal/infrastructure/redis"
	"github.com/gin-gonic/gin"
)

// Server exposes the endpoint catalog over HTTP. Every registered endpoint is
// bound to a real route that funnels into the request router; legacy string
// paths are served under /legacy/*path.
type Server struct {
	engine      *gin.Engine
	config      *config.Config
	httpServer  *http.Server
	startTime   time.Time
	registry    *application.Registry
	validator   *application.Validator
	apiRouter   *application.Router
	users       *application.UserService
	sessions    *jwt.Sessions
	sessionAuth *middleware.SessionAuth
	redisClient *redis.Client
	rateLimiter ratelimit.Limiter
}

func NewServer(cfg *config.Config) (*Server, error) {
	registry := application.NewRegistry()
	apiRouter := application.NewRouter(registry)

	users := application.NewUserService(map[string]application.UserAccount{
		cfg.AdminUserID: {
			Info:     domain.UserInfo{ID: 1, FirstName: "System", LastName: "Administrator", Role: "Admin"},
			Password: cfg.AdminPassword,
		},
	})

	var sessions *jwt.Sessions
	var sessionAuth *middleware.SessionAuth
	if cfg.SessionSecret != "" {
		var err error
		sessions, err = jwt.NewSessions(cfg)
		if err != nil {
			return nil, fmt.Errorf("create session service: %w", err)
		}
		sessionAuth = middleware.NewSessionAuth(sessions)
		slog.Info("session authentication enabled")
	} else {
		slog.Warn("session secret not configured, authentication disabled")
	}

	var redisClient *redis.Client
	var rateLimiter ratelimit.Limiter
	if cfg.RateLimitEnabled {
		if cfg.RedisURL != "" {
			var err error
			redisClient, err = redis.NewClient(cfg.RedisURL)
			if err != nil {
				return nil, fmt.Errorf("create redis client: %w", err)
			}
			rateLimiter = ratelimit.NewRedisLimiter(redisClient.Client)
			slog.Info("rate limiting enabled with Redis")
		} else {
			rateLimiter = ratelimit.NewMemoryLimiter()
			slog.Warn("rate limiting enabled with in-memory limiter (not recommended for production)")
		}
	} else {
		slog.Debug("rate limiting disabled")
	}

	s := &Server{
		config:      cfg,
		startTime:   time.Now(),
		registry:    registry,
		validator:   application.NewValidator(registry),
		apiRouter:   apiRouter,
		users:       users,
		sessions:    sessions,
		sessionAuth: sessionAuth,
		redisClient: redisClient,
		rateLimiter: rateLimiter,
	}
	s.registerCoreHandlers()
	s.setupRoutes()
	return s, nil
}

// Router returns the request router so the embedding application can register
// handlers for machine operations.
func (s *Server) Router() *application.Router {
	return s.apiRouter
}

// registerCoreHandlers wires the handlers the server owns itself.
func (s *Server) registerCoreHandlers() {
	_ = s.apiRouter.RegisterHandler(application.AuthLogin,
		application.LoginHandler(s.users, tokenIssuer(s.sessions)))

	_ = s.apiRouter.RegisterHandler(application.AuthLogout, func(req domain.Request) (any, error) {
		return domain.SuccessResponse("Logged out", nil), nil
	})

	_ = s.apiRouter.RegisterHandler(application.SystemStatus, func(req domain.Request) (any, error) {
		return domain.SuccessResponse("System status", map[string]any{
			"state":   "running",
			"version": s.config.Version,
			"uptime":  time.Since(s.startTime).Truncate(time.Second).String(),
		}), nil
	})

	// Placeholder until the machine layer swaps in the real handler via
	// ReplaceHandler. Reports the controller as unreachable rather than
	// answering 404.
	_ = s.apiRouter.RegisterHandler(application.RobotStatus, func(req domain.Request) (any, error) {
		return robotStatusData(domain.RobotStatus{
			ErrorState:   true,
			ErrorMessage: "robot controller not connected",
		}), nil
	})
}

func robotStatusData(status domain.RobotStatus) domain.Response {
	data := map[string]any{
		"is_moving":     status.IsMoving,
		"is_calibrated": status.IsCalibrated,
		"error_state":   status.ErrorState,
	}
	if status.ErrorMessage != "" {
		data["error_message"] = status.ErrorMessage
	}
	if status.Position != nil {
		data["position"] = status.Position.ToList()
	}
	return domain.SuccessResponse("Robot status", data)
}

// tokenIssuer avoids handing a typed-nil *jwt.Sessions to the login handler.
func tokenIssuer(sessions *jwt.Sessions) application.TokenIssuer {
	if sessions == nil {
		return nil
	}
	return sessions
}

func (s *Server) setupRoutes() {
	if s.config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	s.engine = gin.New()
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: s.config.CORSAllowedOrigins,
		AllowedMethods: s.config.CORSAllowedMethods,
		AllowedHeaders: s.config.CORSAllowedHeaders,
	}))

	s.engine.GET("/health", handler.HealthHandler(s.startTime, s.config.Version, len(s.registry.Entries())))
	s.engine.GET("/ready", handler.ReadyHandler())

	api := handler.NewAPIHandler(s.apiRouter)

	s.engine.GET("/api/v2/docs", handler.DocsHandler(s.validator))
	s.engine.GET("/api/v2/openapi.json", handler.OpenAPIHandler(s.validator))

	for _, entry := range s.registry.Entries() {
		ep := entry.Endpoint
		chain := s.routeMiddleware(ep)
		chain = append(chain, api.Endpoint(ep))
		s.engine.Handle(string(ep.Method), ginPath(ep.Path), chain...)
	}

	// Legacy compatibility surface. Legacy clients predate session tokens, so
	// the route is unauthenticated but still rate limited.
	legacyChain := []gin.HandlerFunc{}
	if s.rateLimiter != nil {
		legacyChain = append(legacyChain, middleware.RateLimit(s.rateLimiter, s.config.RateLimitClientRPM))
	}
	legacyChain = append(legacyChain, api.Legacy())
	s.engine.POST("/legacy/*path", legacyChain...)
}

func (s *Server) routeMiddleware(ep domain.Endpoint) []gin.HandlerFunc {
	var chain []gin.HandlerFunc
	if ep.RequiresAuth && s.sessionAuth != nil {
		chain = append(chain, s.sessionAuth.Authenticate())
	}
	if ep.RateLimited && s.rateLimiter != nil {
		chain = append(chain, middleware.RateLimit(s.rateLimiter, s.config.RateLimitClientRPM))
	}
	return chain
}

// ginPath converts {name} template parameters to gin's :name form.
func ginPath(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			parts[i] = ":" + strings.Trim(p, "{}")
		}
	}
	return strings.Join(parts, "/")
}

func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: s.engine,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			return err
		}
	}
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
