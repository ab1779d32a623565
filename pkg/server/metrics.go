package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "strata").
	Namespace string

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Metrics holds the Prometheus metrics for page serving.
type Metrics struct {
	pagesRendered  prometheus.Counter
	notFound       prometheus.Counter
	renderErrors   prometheus.Counter
	renderDuration prometheus.Histogram
}

// NewMetrics registers and returns the page-serving metrics.
func NewMetrics(cfg MetricsConfig) *Metrics {
	if cfg.Namespace == "" {
		cfg.Namespace = "strata"
	}
	if cfg.Buckets == nil {
		cfg.Buckets = prometheus.DefBuckets
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(cfg.Registry)

	return &Metrics{
		pagesRendered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "pages_rendered_total",
			Help:      "Total pages rendered successfully.",
		}),
		notFound: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "not_found_total",
			Help:      "Total requests that matched no route.",
		}),
		renderErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "render_errors_total",
			Help:      "Total requests that failed during rendering.",
		}),
		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent resolving and rendering a page.",
			Buckets:   cfg.Buckets,
		}),
	}
}
