package middleware

import (
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
)

// RateLimit returns middleware that applies one token bucket to every request
// it wraps. The board has a single owner, so the bucket is shared rather than
// keyed by client. Rejected requests get a 429 Problem Details response with a
// Retry-After hint. A zero RequestsPerSecond disables limiting.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if cfg.RequestsPerSecond <= 0 {
			return next
		}
		burst := max(cfg.BurstSize, 1)
		limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
		retryAfter := strconv.Itoa(int(math.Ceil(1 / cfg.RequestsPerSecond)))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				dto.WriteProblem(w, r, http.StatusTooManyRequests, "request rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
