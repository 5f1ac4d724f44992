package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/taskboard/internal/adapters/http"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func localServer(handler http.Handler) *adapthttp.Server {
	return adapthttp.NewServer(config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}, handler, discardLogger())
}

func TestServer_AddrBeforeAndAfterListen(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 9090}, http.NotFoundHandler(), nil)
	assert.Equal(t, "127.0.0.1:9090", s.Addr())

	s = localServer(http.NotFoundHandler())
	require.NoError(t, s.Listen())
	require.NoError(t, s.Listen())
	assert.NotEqual(t, "127.0.0.1:0", s.Addr())
	require.NoError(t, s.Shutdown(context.Background()))
}

func TestServer_ServesUntilShutdown(t *testing.T) {
	t.Parallel()

	s := localServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"columns":[]}`)
	}))
	require.NoError(t, s.Listen())

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	resp, err := http.Get("http://" + s.Addr() + "/api/v1/board")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.JSONEq(t, `{"columns":[]}`, string(body))

	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, <-errCh)
}

func TestServer_RunStopsOnCancelAndRunsHooks(t *testing.T) {
	t.Parallel()

	s := localServer(http.NotFoundHandler())

	var hookRan atomic.Bool
	s.OnShutdown(func() { hookRan.Store(true) })

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}

	// RegisterOnShutdown hooks run on their own goroutine.
	assert.Eventually(t, hookRan.Load, time.Second, 5*time.Millisecond)
}

func TestServer_RunReturnsListenError(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "256.0.0.1", Port: 1}, http.NotFoundHandler(), discardLogger())

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on 256.0.0.1:1")
}
