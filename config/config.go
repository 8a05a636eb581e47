// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/blogem/emma-oauth/authenticator"
	"github.com/blogem/emma-oauth/security"
)

// Config is the full process configuration.
type Config struct {
	APIKey       string        `env:"EMMA_API_KEY"`
	SharedSecret string        `env:"EMMA_SECRET"`
	RedirectURI  string        `env:"EMMA_REDIRECT_URI"`
	Timeout      time.Duration `env:"EMMA_TIMEOUT" envDefault:"60s"`

	Port         string `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"emma_oauth.db"`

	VerifyState bool          `env:"VERIFY_STATE" envDefault:"true"`
	StateTTL    time.Duration `env:"STATE_TTL" envDefault:"10m"`
	UseHTTPS    bool          `env:"USE_HTTPS" envDefault:"false"`
	AdminToken  string        `env:"ADMIN_TOKEN"`

	RateLimitRPS   int `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"10"`

	// Forwarding headers are ignored unless the service sits behind a proxy
	// you operate.
	TrustProxy        bool `env:"TRUST_PROXY" envDefault:"false"`
	TrustedProxyCount int  `env:"TRUSTED_PROXY_COUNT" envDefault:"0"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	TraceEndpoint  string `env:"TRACE_ENDPOINT"`
	AuditEnabled   bool   `env:"AUDIT_ENABLED" envDefault:"true"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadDotEnv loads variables from path into the process environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load the env vars: %w", err)
	}
	return nil
}

// Load parses the process environment and validates the Emma credentials.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given environment instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Authenticator().Validate(); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("rate limit must be positive (rps=%d, burst=%d)", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.TrustedProxyCount < 0 {
		return Config{}, fmt.Errorf("trusted proxy count must not be negative (%d)", cfg.TrustedProxyCount)
	}
	if cfg.StateTTL <= 0 {
		return Config{}, fmt.Errorf("state TTL must be positive")
	}
	return cfg, nil
}

// Authenticator returns the Emma client configuration.
func (c Config) Authenticator() authenticator.Config {
	return authenticator.Config{
		APIKey:       c.APIKey,
		SharedSecret: c.SharedSecret,
		RedirectURI:  c.RedirectURI,
		Timeout:      c.Timeout,
	}
}

// Proxy returns how client addresses are resolved from forwarding headers.
func (c Config) Proxy() security.ProxyConfig {
	return security.ProxyConfig{
		Trust:        c.TrustProxy,
		TrustedCount: c.TrustedProxyCount,
	}
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
