package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/strata-dev/strata/internal/config"
)

func newTestServer() *Server {
	return New(config.New(), testRouter())
}

func TestServerAddr(t *testing.T) {
	if got := newTestServer().Addr(); got != "localhost:3000" {
		t.Errorf("Addr() = %q, want localhost:3000", got)
	}
}

func TestServerHealthz(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	s := newTestServer()

	// Render one page, then the scrape must show the counter.
	rec := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("page status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "strata_pages_rendered_total 1") {
		t.Errorf("scrape missing render counter:\n%s", rec.Body.String())
	}
}

func TestServerRoutesPagesThroughWildcard(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/7", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "user 7") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestServerTwoInstancesShareNoRegistry(t *testing.T) {
	// Each server owns its metrics registry; building two must not
	// panic with duplicate registration.
	_ = newTestServer()
	_ = newTestServer()
}
