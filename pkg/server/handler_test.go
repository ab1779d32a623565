package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/strata-dev/strata/pkg/mem"
	"github.com/strata-dev/strata/pkg/render"
	"github.com/strata-dev/strata/pkg/router"
)

func testRouter() *router.Router {
	return router.New(
		&router.Route{
			Path: "/",
			Page: func(alloc *mem.Arena, params router.Params) render.Component {
				return render.Text("home")
			},
			Layout: func(alloc *mem.Arena, child render.Component) render.Component {
				return render.El("main", nil, child)
			},
			Children: []*router.Route{
				{
					Path: "/users/[id]",
					Page: func(alloc *mem.Arena, params router.Params) render.Component {
						return render.Text("user " + params["id"])
					},
				},
				{
					Path: "/broken",
					Page: func(alloc *mem.Arena, params router.Params) render.Component {
						return render.ComponentFunc(func(w io.Writer) error {
							return errors.New("boom")
						})
					},
				},
				{
					Path: "/panics",
					Page: func(alloc *mem.Arena, params router.Params) render.Component {
						panic("page exploded")
					},
				},
			},
		},
	)
}

func newTestHandler() *Handler {
	metrics := NewMetrics(MetricsConfig{Registry: prometheus.NewRegistry()})
	return NewHandler(testRouter(), metrics)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandlerRendersPage(t *testing.T) {
	rec := get(t, newTestHandler(), "/")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!DOCTYPE html>\n") {
		t.Errorf("body missing document preamble: %q", body)
	}
	if !strings.Contains(body, "<main>home</main>") {
		t.Errorf("body = %q", body)
	}
}

func TestHandlerDynamicRoute(t *testing.T) {
	rec := get(t, newTestHandler(), "/users/42")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "user 42") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandlerNotFound(t *testing.T) {
	rec := get(t, newTestHandler(), "/does/not/exist")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if rec.Body.String() != router.NotFoundBody {
		t.Errorf("body = %q, want %q", rec.Body.String(), router.NotFoundBody)
	}
}

func TestHandlerRenderError(t *testing.T) {
	rec := get(t, newTestHandler(), "/broken")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if rec.Body.String() != InternalErrorBody {
		t.Errorf("body = %q, want %q", rec.Body.String(), InternalErrorBody)
	}
}

func TestHandlerPagePanic(t *testing.T) {
	rec := get(t, newTestHandler(), "/panics")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if rec.Body.String() != InternalErrorBody {
		t.Errorf("body = %q, want %q", rec.Body.String(), InternalErrorBody)
	}
}

func TestHandlerInvalidPath(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.URL.Path = `/a\b`
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if rec.Body.String() != InternalErrorBody {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandlerTrailingSlash(t *testing.T) {
	rec := get(t, newTestHandler(), "/users/42/")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, trailing slash should still match", rec.Code)
	}
}

func TestMetricsCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(MetricsConfig{Registry: reg})
	h := NewHandler(testRouter(), metrics)

	get(t, h, "/")
	get(t, h, "/missing")
	get(t, h, "/broken")

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}

	counts := map[string]float64{}
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			if m.GetCounter() != nil {
				counts[fam.GetName()] += m.GetCounter().GetValue()
			}
		}
	}

	if counts["strata_pages_rendered_total"] != 1 {
		t.Errorf("pages_rendered_total = %v, want 1", counts["strata_pages_rendered_total"])
	}
	if counts["strata_not_found_total"] != 1 {
		t.Errorf("not_found_total = %v, want 1", counts["strata_not_found_total"])
	}
	if counts["strata_render_errors_total"] != 1 {
		t.Errorf("render_errors_total = %v, want 1", counts["strata_render_errors_total"])
	}
}
