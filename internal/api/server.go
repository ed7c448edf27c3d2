package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/voteagora/agora-cli/internal/domain/config"
)

const shutdownTimeout = 5 * time.Second

// Server runs the HTTP API until its context is cancelled
type Server struct {
	addr       string
	controller *Controller
	log        *slog.Logger
}

// NewServer creates a server listening on the configured address
func NewServer(cfg *config.RuntimeConfig, controller *Controller, log *slog.Logger) *Server {
	return &Server{
		addr:       cfg.ListenAddr,
		controller: controller,
		log:        log.With("component", "server"),
	}
}

// Run listens on addr (the configured address when empty) and blocks until
// ctx is cancelled or the listener fails
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = s.addr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.controller.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting server", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.log.Info("Shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
