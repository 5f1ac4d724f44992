// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Storage drivers accepted by StorageConfig.Driver.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Storage   StorageConfig   `koanf:"storage"`
	Board     BoardConfig     `koanf:"board"`
	Notify    NotifyConfig    `koanf:"notify"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings. RequestTimeout bounds
// non-streaming API handlers (zero disables it); SSEHeartbeat is the
// keep-alive interval on the event stream.
type ServerConfig struct {
	Host           string          `koanf:"host"`
	Port           int             `koanf:"port"`
	ReadTimeout    time.Duration   `koanf:"read_timeout"`
	WriteTimeout   time.Duration   `koanf:"write_timeout"`
	IdleTimeout    time.Duration   `koanf:"idle_timeout"`
	RequestTimeout time.Duration   `koanf:"request_timeout"`
	SSEHeartbeat   time.Duration   `koanf:"sse_heartbeat"`
	RateLimit      RateLimitConfig `koanf:"rate_limit"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StorageConfig selects and configures the snapshot store.
type StorageConfig struct {
	Driver         string               `koanf:"driver"`
	Path           string               `koanf:"path"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// BoardConfig holds the todo engine's behavior settings.
type BoardConfig struct {
	TickInterval    time.Duration `koanf:"tick_interval"`
	ClearDueOnLeave bool          `koanf:"clear_due_on_leave"`
	DragTTL         time.Duration `koanf:"drag_ttl"`
}

// NotifyConfig holds overdue webhook settings. No webhooks are called when
// WebhookURLs is empty.
type NotifyConfig struct {
	WebhookURLs []string     `koanf:"webhook_urls"`
	Secret      string       `koanf:"secret"`
	MaxWorkers  int          `koanf:"max_workers"`
	Client      ClientConfig `koanf:"client"`
}

// ClientConfig holds outbound HTTP client settings.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token bucket settings. A zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
