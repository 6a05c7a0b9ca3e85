//go:build !integration

package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestNewServer(t *testing.T) {
	server := NewServer(okHandler, "8080")

	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 5*time.Second, server.httpServer.ReadHeaderTimeout)
	assert.Equal(t, defaultShutdownTimeout, server.shutdownTimeout)

	server = NewServer(okHandler, "8080", WithShutdownTimeout(3*time.Second), WithShutdownTimeout(0))
	assert.Equal(t, 3*time.Second, server.shutdownTimeout)
}

func TestServer_RunContext(t *testing.T) {
	var hookCalled bool
	server := NewServer(okHandler, "0", WithShutdownHook(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		hookCalled = hasDeadline
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() { errChan <- server.RunContext(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errChan:
		require.NoError(t, err)
		assert.True(t, hookCalled)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunContext_ListenError(t *testing.T) {
	server := NewServer(okHandler, "invalid-port")

	select {
	case err := <-runAsync(server):
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("expected listen error")
	}
}

func TestServer_ShutdownHookError(t *testing.T) {
	boom := errors.New("flush failed")
	server := NewServer(okHandler, "0", WithShutdownHook(func(context.Context) error { return boom }))

	assert.ErrorIs(t, server.Shutdown(), boom)
}

func runAsync(s *Server) <-chan error {
	errChan := make(chan error, 1)
	go func() { errChan <- s.RunContext(context.Background()) }()
	return errChan
}
