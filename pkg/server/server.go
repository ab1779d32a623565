// Package server exposes a route tree over HTTP. The connection
// machinery is net/http and chi; this package only glues the resolver to
// it and carries the observability middleware.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/strata-dev/strata/internal/config"
	"github.com/strata-dev/strata/pkg/router"
)

// Server hosts the page handler plus health and metrics endpoints.
type Server struct {
	cfg  *config.Config
	http *http.Server
}

// New assembles the HTTP server for a route tree. Each server carries
// its own metrics registry, so building several servers in one process
// never trips duplicate registration.
func New(cfg *config.Config, r *router.Router) *Server {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(MetricsConfig{Registry: registry})
	handler := NewHandler(r, metrics)

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	// The page handler recovers its own panics; Recoverer backstops the
	// health and metrics endpoints and any middleware above them.
	mux.Use(chimw.Recoverer)

	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.Handle("/*", handler)

	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:              cfg.Address(),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.http.Addr
}

// ListenAndServe blocks serving requests until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
