package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Storage.validate(),
		c.Board.validate(),
		c.Notify.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}
	if s.SSEHeartbeat <= 0 {
		errs = append(errs, errors.New("server.sse_heartbeat must be positive"))
	}
	errs = append(errs, s.RateLimit.validate("server.rate_limit"))

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	var errs []error

	switch s.Driver {
	case StorageFile, StorageSQLite:
		if s.Path == "" {
			errs = append(errs, fmt.Errorf("storage.path must not be empty for driver %q", s.Driver))
		}
	case StorageMemory:
		// No path needed.
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be one of: file, sqlite, memory; got %q", s.Driver))
	}
	errs = append(errs, s.CircuitBreaker.validate("storage.circuit_breaker"))

	return errors.Join(errs...)
}

func (b *BoardConfig) validate() error {
	var errs []error

	if b.TickInterval <= 0 {
		errs = append(errs, errors.New("board.tick_interval must be positive"))
	}
	if b.DragTTL <= 0 {
		errs = append(errs, errors.New("board.drag_ttl must be positive"))
	}

	return errors.Join(errs...)
}

func (n *NotifyConfig) validate() error {
	if len(n.WebhookURLs) == 0 {
		return nil
	}

	var errs []error

	for i, raw := range n.WebhookURLs {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("notify.webhook_urls[%d] must be an absolute http(s) URL, got %q", i, raw))
		}
	}
	if n.MaxWorkers < 1 {
		errs = append(errs, fmt.Errorf("notify.max_workers must be >= 1, got %d", n.MaxWorkers))
	}
	errs = append(errs, n.Client.validate("notify.client"))

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	errs = append(errs,
		cl.CircuitBreaker.validate(prefix+".circuit_breaker"),
		cl.RateLimit.validate(prefix+".rate_limit"),
	)

	return errors.Join(errs...)
}

func (cb *CircuitBreakerConfig) validate(prefix string) error {
	if cb.MaxFailures < 1 {
		return fmt.Errorf("%s.max_failures must be >= 1, got %d", prefix, cb.MaxFailures)
	}
	return nil
}

func (r *RateLimitConfig) validate(prefix string) error {
	if r.RequestsPerSecond < 0 {
		return fmt.Errorf("%s.requests_per_second must not be negative, got %f", prefix, r.RequestsPerSecond)
	}
	if r.RequestsPerSecond > 0 && r.BurstSize < 1 {
		return fmt.Errorf("%s.burst_size must be >= 1 when limiting, got %d", prefix, r.BurstSize)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
