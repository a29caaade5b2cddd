// internal/server/server.go
// Package server serves the dashboard over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/mwiater/fraudlens/internal/logging"
	"github.com/mwiater/fraudlens/internal/selection"
)

const shutdownTimeout = 10 * time.Second

// Config holds server-specific configuration.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	ChartHeight  int
	AssetsHost   string
}

// Server renders the dashboard for each request from the selection it carries.
type Server struct {
	cfg     Config
	options selection.Options
	router  chi.Router
}

// New builds the server and its routes.
func New(cfg Config) *Server {
	s := &Server{
		cfg:     cfg,
		options: selection.Available(),
		router:  chi.NewRouter(),
	}

	s.router.Use(middleware.RealIP)
	s.router.Use(requestID)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/options", s.handleOptions)
		r.Get("/dashboard", s.handleDashboardQuery)
		r.Post("/dashboard", s.handleDashboardBody)
	})
	s.router.Get("/charts/performance.png", s.handlePerformancePNG)
	s.router.Get("/charts/fairness.png", s.handleFairnessPNG)
	s.router.Get("/export.xlsx", s.handleWorkbook)

	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// HTTPServer returns an http.Server for the configured address and timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := s.HTTPServer()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.LogEvent("dashboard listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve %s: %w", srv.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logging.LogEvent("shutting down dashboard")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
