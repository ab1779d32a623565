package server

import (
	"io"
	"log"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/strata-dev/strata/pkg/router"
	"github.com/strata-dev/strata/pkg/routepath"
)

// InternalErrorBody is the literal response body for hard failures.
const InternalErrorBody = "Internal Server Error"

// tracerName identifies strata spans.
const tracerName = "strata"

// Handler serves pages from a route tree over HTTP. Every matched path
// renders a full HTML document; unmatched paths get the literal
// not-found body; hard failures get the literal error body.
type Handler struct {
	router  *router.Router
	metrics *Metrics
	tracer  trace.Tracer
}

// NewHandler builds the page-serving handler. metrics may be nil to
// disable instrumentation.
func NewHandler(r *router.Router, metrics *Metrics) *Handler {
	return &Handler{
		router:  r,
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()

	ctx, span := h.tracer.Start(req.Context(), "strata.render",
		trace.WithAttributes(attribute.String("http.path", req.URL.Path)))
	defer span.End()

	// Allocation and page panics stop here, not the process.
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic serving %s: %v", req.URL.Path, rec)
			span.SetStatus(codes.Error, "panic")
			h.writeError(w)
		}
	}()

	if err := routepath.Validate(req.URL.Path); err != nil {
		log.Printf("invalid path %q: %v", req.URL.Path, err)
		span.SetStatus(codes.Error, err.Error())
		h.writeError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	matched, err := h.router.Render(ctx, w, req.URL.Path)
	if h.metrics != nil {
		h.metrics.renderDuration.Observe(time.Since(start).Seconds())
	}

	switch {
	case err != nil:
		// The route was selected but did not render; the page buffer
		// means nothing partial reached the wire yet.
		log.Printf("render %s: %v", req.URL.Path, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if h.metrics != nil {
			h.metrics.renderErrors.Inc()
		}
		h.writeError(w)

	case !matched:
		span.SetAttributes(attribute.Bool("strata.matched", false))
		if h.metrics != nil {
			h.metrics.notFound.Inc()
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, router.NotFoundBody)

	default:
		span.SetAttributes(attribute.Bool("strata.matched", true))
		if h.metrics != nil {
			h.metrics.pagesRendered.Inc()
		}
	}
}

// writeError writes the generic error response. Best effort: if the
// response has already started this degrades to appended body text.
func (h *Handler) writeError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	io.WriteString(w, InternalErrorBody)
}
