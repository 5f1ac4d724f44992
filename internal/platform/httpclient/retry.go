package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
)

// jitterFraction spreads each delay uniformly over ±25%.
const jitterFraction = 0.25

// doWithRetry sends req up to maxAttempts times. Transport errors other than
// context cancellation and statuses accepted by isRetryableStatus earn
// another attempt. A Retry-After hint on 429 or 503 replaces the computed
// delay, capped at maxInterval.
//
// Requests that are not replaySafe get exactly one attempt.
//
// The final response goes into resp rather than a return value so the
// bodyclose linter does not flag every caller; closing it is the caller's
// job.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts < 1 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}
	if err := makeReplayable(req); err != nil {
		return err
	}

	attempts := 1
	if replaySafe(req) {
		attempts = c.retryCfg.maxAttempts
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, hint, lastErr); err != nil {
				return err
			}
			if err := rewind(req); err != nil {
				return err
			}
		}

		r, err := c.http.Do(req)
		switch {
		case err != nil:
			if !transient(err) {
				return err
			}
			lastErr, hint = err, 0
			continue
		case !isRetryableStatus(r.StatusCode):
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.name)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		hint = retryAfter(r, time.Now())
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}
	return lastErr
}

// replaySafe reports whether sending req more than once is harmless. A POST
// qualifies only when it carries a delivery ID.
func replaySafe(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	case http.MethodPost:
		return req.Header.Get(HeaderDeliveryID) != ""
	default:
		return false
	}
}

// makeReplayable gives req a GetBody when it has a body but no way to
// rebuild it. Requests from http.NewRequest over a bytes or strings reader
// already have one.
func makeReplayable(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return nil
	}
	b, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	}
	req.ContentLength = int64(len(b))
	req.Body, _ = req.GetBody()
	return nil
}

func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

// retryAfter reads Retry-After from a 429 or 503 as delay-seconds or an
// HTTP-date. Absent, malformed and past values yield 0.
func retryAfter(resp *http.Response, now time.Time) time.Duration {
	if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusServiceUnavailable {
		return 0
	}
	v := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return max(time.Duration(secs)*time.Second, 0)
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, hint time.Duration, lastErr error) error {
	delay := backoff(attempt, c.retryCfg)
	if hint > 0 {
		delay = min(hint, c.retryCfg.maxInterval)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying webhook request",
		slog.String("downstream", c.name),
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Bool("retry_after", hint > 0),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff returns the jittered delay before retry number attempt, counting
// the first retry as 1.
func backoff(attempt int, cfg retryConfig) time.Duration {
	base := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	base = min(base, float64(cfg.maxInterval))
	return time.Duration(max(base*(1+jitterFraction*jitter()), 0))
}

// jitter returns a uniform value in [-1, 1) from crypto/rand.
func jitter() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	u := float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
	return 2*u - 1
}

// transient reports whether a transport error may clear up on its own. A
// canceled or expired context never does.
func transient(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether a webhook receiver's status is worth
// another attempt: 408, 429 and every 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusRequestTimeout || code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
