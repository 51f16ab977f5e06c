// Package config loads catalogd configuration from environment variables,
// applying defaults for unset values and validating the result on startup
// to fail fast on misconfiguration.
package config

import (
	"fmt"
	"time"
)

// Config holds all catalogd settings.
type Config struct {
	Server    ServerConfig
	Rate      RateLimitConfig
	Logging   LoggingConfig
	Telemetry TelemetryConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to.
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on.
	Port int `env:"PORT" default:"8081"`

	// ReadTimeout bounds reading the request body.
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout bounds writing the response.
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"15s"`

	// IdleTimeout is the keep-alive timeout.
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the per-request middleware timeout.
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// RateLimitConfig holds request rate limiting settings.
type RateLimitConfig struct {
	// RequestsPerMinute is the sustained request rate allowed.
	RequestsPerMinute int `env:"RATE_REQUESTS_PER_MINUTE" default:"120"`

	// Burst is the number of requests allowed above the sustained rate.
	Burst int `env:"RATE_BURST" default:"20"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the output format: text or json.
	Format string `env:"LOG_FORMAT" default:"text"`
}

// TelemetryConfig holds trace export settings.
type TelemetryConfig struct {
	// OTLPEndpoint is the host:port of an OTLP/HTTP collector.
	// Trace export is disabled when empty.
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
}

// Addr returns the host:port the server binds to.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks the configuration for values that would make the process
// misbehave at runtime.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Rate.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.Rate.RequestsPerMinute)
	}
	if c.Rate.Burst <= 0 {
		return fmt.Errorf("rate burst must be positive, got %d", c.Rate.Burst)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}
