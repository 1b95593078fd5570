// SPDX-License-Identifier: MIT

// Package api serves the resolved pipeline configuration to operators and
// pipeline components over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ManuGH/seqconf/internal/config"
	seqlog "github.com/ManuGH/seqconf/internal/log"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server exposes the configuration holder over HTTP.
type Server struct {
	holder *config.Holder
	logger zerolog.Logger
}

// New creates an API server backed by the given configuration holder.
func New(holder *config.Holder) *Server {
	return &Server{
		holder: holder,
		logger: seqlog.WithComponent("api"),
	}
}

// Router builds the chi router with the canonical middleware stack applied.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(recoverer)
	r.Use(requestID)
	r.Use(accessLog)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Get("/api/config", s.handleConfig)
	r.Get("/api/profiles", s.handleProfiles)
	r.Get("/api/tools", s.handleTools)
	r.Post("/internal/config/reload", s.handleReload)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// ListenAndServe runs the API server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info().Str("addr", addr).Msg("api server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
