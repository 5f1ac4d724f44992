package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names whose values never reach
// a log line. The request logging middleware and the masq replacer both read
// it.
var SensitiveHeaders = map[string]bool{
	"authorization":         true,
	"cookie":                true,
	"x-api-key":             true,
	"x-taskboard-signature": true,
}

// sensitiveFields are attribute keys redacted wherever they appear. The
// webhook signing secret and its HMAC are the ones this service produces.
var sensitiveFields = []string{"password", "secret", "token", "signature", "dsn"}

var sensitivePrefixes = []string{"secret_", "api_key", "webhook_secret"}

var sensitiveValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// header.payload.signature, each segment at least 10 chars so version
	// strings pass through
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	regexp.MustCompile(`sha256=[0-9a-fA-F]{64}`),
}

// redactor builds the slog ReplaceAttr hook installed by New.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, p := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(p))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
