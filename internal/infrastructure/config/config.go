package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port               int      `envconfig:"PORT" default:"8080"`
	Env                string   `envconfig:"ENV" default:"development"`
	LogLevel           string   `envconfig:"LOG_LEVEL" default:"debug"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	CORSAllowedMethods []string `envconfig:"CORS_ALLOWED_METHODS" default:"GET,POST,PUT,DELETE,PATCH,OPTIONS"`
	CORSAllowedHeaders []string `envconfig:"CORS_ALLOWED_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`

	SessionSecret string        `envconfig:"SESSION_SECRET"`
	SessionIssuer string        `envconfig:"SESSION_ISSUER" default:"automation-api"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"12h"`

	AdminUserID   string `envconfig:"ADMIN_USER_ID" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"pass"`

	RedisURL           string `envconfig:"REDIS_URL" default:""`
	RateLimitEnabled   bool   `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	RateLimitClientRPM int    `envconfig:"RATE_LIMIT_CLIENT_RPM" default:"120"`

	Version, Commit, BuildDate string
}

func Load(version, commit, buildDate string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.Version, cfg.Commit, cfg.BuildDate = version, commit, buildDate
	return &cfg, nil
}
