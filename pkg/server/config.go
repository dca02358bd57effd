package server

import (
	"log/slog"
	"time"

	"github.com/kestrel-web/kestrel/pkg/httpwire"
)

// Config configures a Server. Zero-value fields are filled with defaults by
// New.
type Config struct {
	// Address is the TCP bind address, "host:port".
	Address string

	// CookieName is the cookie carrying the session token.
	CookieName string

	// ReadTimeout bounds reading one request off a connection. A stalled
	// client would otherwise pin its goroutine forever.
	ReadTimeout time.Duration

	// WriteTimeout bounds writing the response.
	WriteTimeout time.Duration

	// Logger is the structured logger. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics enables Prometheus metrics when non-nil.
	Metrics *MetricsConfig

	// TracerName enables an OpenTelemetry span per dispatched request when
	// non-empty. The tracer comes from the global provider; configure that
	// in main().
	TracerName string
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Address:      "127.0.0.1:8080",
		CookieName:   httpwire.SessionCookie,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// fillDefaults completes unset fields from DefaultConfig.
func (c *Config) fillDefaults() {
	defaults := DefaultConfig()
	if c.Address == "" {
		c.Address = defaults.Address
	}
	if c.CookieName == "" {
		c.CookieName = defaults.CookieName
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = defaults.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = defaults.WriteTimeout
	}
}
