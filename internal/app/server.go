package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultShutdownTimeout = 10 * time.Second

// Server wraps http.Server with graceful shutdown capabilities.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	onShutdown      []func(context.Context) error
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithShutdownTimeout bounds how long in-flight requests may take to finish.
func WithShutdownTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithShutdownHook runs fn after the listener is closed, within the same deadline.
func WithShutdownHook(fn func(context.Context) error) ServerOption {
	return func(s *Server) {
		s.onShutdown = append(s.onShutdown, fn)
	}
}

// NewServer creates a new Server instance.
func NewServer(handler http.Handler, port string, opts ...ServerOption) *Server {
	s := &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run starts the server and blocks until SIGINT or SIGTERM.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.RunContext(ctx)
}

// RunContext starts the server and shuts it down when ctx is done.
func (s *Server) RunContext(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		log.Info().Msg("Shutdown requested, draining connections")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server, then runs the shutdown hooks.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		errs = append(errs, err)
	}
	for _, hook := range s.onShutdown {
		if err := hook(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	log.Info().Msg("Server stopped gracefully")
	return nil
}
