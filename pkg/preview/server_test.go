package preview_test

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/buildlocale/pkg/preview"
)

func freeAddr(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "unable to get free port")
	addr := l.Addr().String()
	require.NoError(t, l.Close(), "close listener")
	return addr
}

func TestServer_RunAndShutdown(t *testing.T) {
	t.Parallel()
	addr := freeAddr(t)
	srv := preview.NewServer(preview.WithAddr(addr), preview.WithShutdownTimeout(100*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	handler := preview.NewHandler(seededStore(t), nil, nil)

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, handler)
	}()

	var resp *http.Response
	var err error
	for range 50 {
		resp, err = http.Get("http://" + addr + "/dist/en.locale.json")
		if err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	require.NoError(t, err, "http get after 50 retries")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close(), "close body")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err, "run")
	case <-time.After(time.Second):
		require.Fail(t, "run did not finish")
	}
	require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
}

func TestServer_ManualShutdown(t *testing.T) {
	t.Parallel()
	addr := freeAddr(t)
	start := make(chan struct{})
	srv := preview.NewServer(
		preview.WithAddr(addr),
		preview.WithShutdownTimeout(100*time.Millisecond),
		preview.WithStartHook(func(_ *slog.Logger) { close(start) }),
	)

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(context.Background(), nil)
	}()
	<-start
	require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
	select {
	case err := <-done:
		require.NoError(t, err, "run")
	case <-time.After(time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestServer_RunTwice(t *testing.T) {
	t.Parallel()
	addr := freeAddr(t)
	start := make(chan struct{})
	srv := preview.NewServer(
		preview.WithAddr(addr),
		preview.WithStartHook(func(_ *slog.Logger) { close(start) }),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = srv.Run(ctx, nil) }()
	<-start
	require.ErrorIs(t, srv.Run(ctx, nil), preview.ErrStart)
}

func TestServer_OptionPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { preview.WithAddr("") })
	assert.Panics(t, func() { preview.WithShutdownTimeout(0) })
	assert.Panics(t, func() { preview.WithReadTimeout(-time.Second) })
	assert.Panics(t, func() { preview.WithStartHook(nil) })
}
