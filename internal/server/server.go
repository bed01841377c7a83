// Package server assembles the vaultd HTTP daemon: vault, journal and
// daily-note services behind a gin router, with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	config *Config
	svc    *Services
	server *http.Server
}

func New(config *Config) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	svc, err := NewServices(config)
	if err != nil {
		return nil, err
	}

	handler, err := SetupRoutes(svc, config)
	if err != nil {
		svc.Close()
		return nil, fmt.Errorf("setup routes: %w", err)
	}

	return &Server{
		config: config,
		svc:    svc,
		server: &http.Server{
			Addr:    config.HTTP.Addr,
			Handler: handler,
		},
	}, nil
}

// Start runs the server until ctx is cancelled. The vault-wide lock is
// held for the duration so a second daemon cannot serve the same vault.
func (s *Server) Start(ctx context.Context) error {
	slog.Info("vaultd server start", "addr", s.config.HTTP.Addr, "vault", s.svc.Vault.Root())
	defer slog.Info("vaultd server stop")

	if err := s.svc.Vault.Lock(); err != nil {
		return err
	}
	defer func() {
		if err := s.svc.Vault.Unlock(); err != nil {
			slog.Warn("vault unlock", "error", err)
		}
	}()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := s.runHTTPServer(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Stop(shutdownCtx)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return s.svc.Close()
}

func (s *Server) runHTTPServer() error {
	if s.config.HTTP.TLSEnabled() {
		slog.Info("server listening with tls", "addr", s.config.HTTP.Addr)
		return s.server.ListenAndServeTLS(s.config.HTTP.CertFile, s.config.HTTP.KeyFile)
	}
	slog.Info("server listening", "addr", s.config.HTTP.Addr)
	return s.server.ListenAndServe()
}
