// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
	"time"
)

// Version is the service release version reported by the version endpoint
// and published in the build info metric.
const Version = "0.1.0"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoder: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Mode selects the router mode: debug, release, or test.
	Mode string `koanf:"mode"`

	// RateRPS caps sustained requests per second per client.
	RateRPS float64 `koanf:"rate_rps"`

	// RateBurst allows short bursts above RateRPS per client.
	RateBurst int `koanf:"rate_burst"`

	// RateIdleTTL evicts per-client limiter state after this idle period.
	RateIdleTTL time.Duration `koanf:"rate_idle_ttl"`

	// ReadTimeout bounds reading a request, headers included.
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// WriteTimeout bounds writing a response.
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// IdleTimeout bounds how long keep-alive connections may sit idle.
	IdleTimeout time.Duration `koanf:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// TrustedProxies lists addresses or CIDRs allowed to set client IP
	// headers. Empty means no proxy is trusted and the peer address is
	// used directly.
	TrustedProxies []string `koanf:"trusted_proxies"`
}

// New creates a Config using provided options. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use (e.g.,
// loading from env/files) and is currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":8080",
		Mode:            "release",
		RateRPS:         50,
		RateBurst:       100,
		RateIdleTTL:     3 * time.Minute,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
	return c
}
