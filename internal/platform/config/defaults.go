package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultNotifyMaxWorkers = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                           "0.0.0.0",
		"server.port":                           defaultServerPort,
		"server.read_timeout":                   "5s",
		"server.write_timeout":                  "10s",
		"server.idle_timeout":                   "120s",
		"server.request_timeout":                "5s",
		"server.sse_heartbeat":                  "15s",
		"server.rate_limit.requests_per_second": 0,
		"server.rate_limit.burst_size":          0,

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":                          StorageFile,
		"storage.path":                            "data/todos.json",
		"storage.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"storage.circuit_breaker.timeout":         "10s",
		"storage.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"board.tick_interval":      "1s",
		"board.clear_due_on_leave": true,
		"board.drag_ttl":           "5m",

		"notify.webhook_urls":                           []string{},
		"notify.secret":                                 "",
		"notify.max_workers":                            defaultNotifyMaxWorkers,
		"notify.client.timeout":                         "5s",
		"notify.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"notify.client.retry.initial_interval":          "100ms",
		"notify.client.retry.max_interval":              "5s",
		"notify.client.retry.multiplier":                defaultRetryMultiplier,
		"notify.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"notify.client.circuit_breaker.timeout":         "30s",
		"notify.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"notify.client.rate_limit.requests_per_second":  0,
		"notify.client.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "taskboard",
	}
}
