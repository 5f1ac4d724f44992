// Package webhook delivers overdue notifications to external HTTP endpoints.
//
// Notifier implements ports.OverdueSink. NotifyOverdue only schedules the
// delivery and returns; each delivery runs on a goroutine owned by the
// Notifier and posts one signed JSON payload to every configured URL through
// the instrumented httpclient (breaker, rate limit, retry, tracing).
//
// Receivers verify the payload with:
//
//	X-Taskboard-Signature: sha256=<hex HMAC-SHA256 of the body keyed by the secret>
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskboard/internal/app/fanout"
	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// HeaderSignature carries the payload HMAC.
const HeaderSignature = "X-Taskboard-Signature"

// EventOverdue is the event name sent in every payload.
const EventOverdue = "todo.overdue"

// ErrClosed is returned by deliveries scheduled after Close.
var ErrClosed = errors.New("webhook notifier closed")

// Poster is the subset of *httpclient.Client the Notifier needs.
type Poster interface {
	PostJSON(ctx context.Context, url string, body []byte, header http.Header) (*http.Response, error)
	ports.HealthChecker
}

var (
	_ Poster              = (*httpclient.Client)(nil)
	_ ports.OverdueSink   = (*Notifier)(nil)
	_ ports.HealthChecker = (*Notifier)(nil)
)

// Payload is the JSON body posted to each webhook URL.
type Payload struct {
	Event      string    `json:"event"`
	DeliveryID string    `json:"delivery_id"`
	TodoID     int64     `json:"todo_id"`
	Title      string    `json:"title"`
	DueDate    time.Time `json:"due_date"`
	DetectedAt time.Time `json:"detected_at"`
}

// Notifier posts overdue events to a fixed set of URLs.
type Notifier struct {
	client     Poster
	urls       []string
	secret     []byte
	maxWorkers int
	logger     *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a Notifier. maxWorkers bounds concurrent posts per event. An
// empty secret disables signing.
func New(client Poster, urls []string, secret string, maxWorkers int, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Notifier{
		client:     client,
		urls:       append([]string(nil), urls...),
		secret:     []byte(secret),
		maxWorkers: maxWorkers,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// NotifyOverdue schedules delivery of event to every URL and returns
// immediately.
func (n *Notifier) NotifyOverdue(ctx context.Context, event ports.OverdueEvent) {
	if len(n.urls) == 0 {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		n.logger.WarnContext(ctx, "overdue notification dropped",
			slog.Int64("todo_id", event.TodoID),
			slog.Any("error", ErrClosed),
		)
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.Deliver(n.ctx, event); err != nil {
			n.logger.ErrorContext(n.ctx, "webhook delivery failed",
				slog.String("operation", "NotifyOverdue"),
				slog.Int64("todo_id", event.TodoID),
				slog.Any("error", err),
			)
		}
	}()
}

// Deliver posts event to every URL and waits for the results. The returned
// error joins every per-URL failure.
func (n *Notifier) Deliver(ctx context.Context, event ports.OverdueEvent) error {
	payload := Payload{
		Event:      EventOverdue,
		DeliveryID: uuid.NewString(),
		TodoID:     event.TodoID,
		Title:      event.Title,
		DueDate:    event.DueDate.UTC(),
		DetectedAt: event.DetectedAt.UTC(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	header := http.Header{}
	if len(n.secret) > 0 {
		header.Set(HeaderSignature, Sign(n.secret, body))
	}

	ctx = httpclient.WithDeliveryID(ctx, payload.DeliveryID)
	return fanout.Each(ctx, n.maxWorkers, n.urls, func(ctx context.Context, url string) error {
		return n.post(ctx, url, body, header)
	})
}

// Close stops accepting notifications and waits for in-flight deliveries.
// When ctx expires first, outstanding deliveries are canceled and ctx.Err()
// is returned.
func (n *Notifier) Close(ctx context.Context) error {
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		n.cancel()
		return nil
	case <-ctx.Done():
		n.cancel()
		<-done
		return ctx.Err()
	}
}

// Name returns the health registry identifier.
func (n *Notifier) Name() string {
	return n.client.Name()
}

// HealthCheck reports the client's breaker state.
func (n *Notifier) HealthCheck(ctx context.Context) error {
	return n.client.HealthCheck(ctx)
}

func (n *Notifier) post(ctx context.Context, url string, body []byte, header http.Header) error {
	resp, err := n.client.PostJSON(ctx, url, body, header.Clone())
	if resp != nil {
		defer n.closeBody(ctx, resp)
	}
	if err != nil {
		if resp != nil {
			return statusError(url, resp.StatusCode)
		}
		return fmt.Errorf("posting to %s: %w", url, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(url, resp.StatusCode)
	}
	n.logger.DebugContext(ctx, "webhook delivered",
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
	)
	return nil
}

func (n *Notifier) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		n.logger.WarnContext(ctx, "failed to close response body",
			slog.Any("error", err),
		)
	}
}

// statusError maps a receiver status to a domain error.
func statusError(url string, status int) error {
	if status >= http.StatusInternalServerError || status == http.StatusTooManyRequests {
		return fmt.Errorf("%s returned %d: %w", url, status, domain.ErrUnavailable)
	}
	return fmt.Errorf("%s rejected delivery with %d", url, status)
}

// Sign returns the signature header value for body.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
