package config

import (
	"fmt"
	"net/url"
	"time"

	pkgconfig "github.com/kiran7893/talenthub-frontend/pkg/config"
	apperrors "github.com/kiran7893/talenthub-frontend/pkg/errors"
)

// Session backends.
const (
	SessionCookie = "cookie"
	SessionRedis  = "redis"
	SessionMemory = "memory"
)

// Config holds all configuration for the web frontend.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort    int    `env:"WEB_HTTP_PORT" envDefault:"8080"`

	// Remote TalentHub API
	APIURL        string        `env:"API_URL,required,notEmpty"`
	APIPathPrefix string        `env:"API_PATH_PREFIX" envDefault:"/api"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	APIMaxRetries int           `env:"API_MAX_RETRIES" envDefault:"0"`

	// Session
	SessionBackend string        `env:"SESSION_BACKEND" envDefault:"cookie"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	CookieSecure   bool          `env:"COOKIE_SECURE" envDefault:"false"`

	// Redis (SESSION_BACKEND=redis)
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Rate limiting of login and signup posts, per client IP
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`

	// TrustProxy takes the client IP from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`

	MetricsAllowedCIDRs []string `env:"METRICS_ALLOWED_CIDRS" envDefault:"127.0.0.1/32,::1/128,10.0.0.0/8,172.16.0.0/12,192.168.0.0/16" envSeparator:","`

	// OpenTelemetry
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load web config: %w: %w", apperrors.ErrConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return invalid("WEB_HTTP_PORT must be between 1 and 65535, got %d", c.HTTPPort)
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid("API_URL must be an absolute http(s) URL, got %q", c.APIURL)
	}
	if c.APITimeout <= 0 {
		return invalid("API_TIMEOUT must be positive, got %s", c.APITimeout)
	}
	if c.APIMaxRetries < 0 {
		return invalid("API_MAX_RETRIES must not be negative, got %d", c.APIMaxRetries)
	}

	switch c.SessionBackend {
	case SessionCookie, SessionMemory:
	case SessionRedis:
		if c.RedisAddr == "" {
			return invalid("REDIS_ADDR is required when SESSION_BACKEND is redis")
		}
	default:
		return invalid("SESSION_BACKEND must be cookie, redis or memory, got %q", c.SessionBackend)
	}
	if c.SessionTTL <= 0 {
		return invalid("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return invalid("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.OTELSampleRate < 0 || c.OTELSampleRate > 1 {
		return invalid("OTEL_SAMPLE_RATE must be between 0 and 1, got %g", c.OTELSampleRate)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{apperrors.ErrConfig}, args...)...)
}
