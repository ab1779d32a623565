package strata

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/strata-dev/strata/pkg/mem"
	"github.com/strata-dev/strata/pkg/render"
	"github.com/strata-dev/strata/pkg/router"
)

func testApp(t *testing.T) *App {
	t.Helper()

	home := func(alloc *mem.Arena, params router.Params) render.Component {
		return render.El("h1", nil, render.Text("home"))
	}
	about := func(alloc *mem.Arena, params router.Params) render.Component {
		return render.El("h1", nil, render.Text("about"))
	}
	user := func(alloc *mem.Arena, params router.Params) render.Component {
		return render.El("h1", nil, render.Text("user "+params["id"]))
	}
	shell := func(alloc *mem.Arena, child render.Component) render.Component {
		return render.El("body", nil, child)
	}

	return New(nil,
		&router.Route{Path: "/", Page: home, Layout: shell, Children: []*router.Route{
			{Path: "/about", Page: about},
			{Path: "/users/[id]", Page: user},
		}},
	)
}

func TestAppRender(t *testing.T) {
	app := testApp(t)

	var buf bytes.Buffer
	matched, err := app.Router().Render(context.Background(), &buf, "/about")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !matched {
		t.Fatal("expected /about to match")
	}
	want := "<!DOCTYPE html>\n<body><h1>about</h1></body>"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAppDefaultAddr(t *testing.T) {
	app := testApp(t)
	if got := app.Addr(); got != "localhost:3000" {
		t.Errorf("Addr() = %q, want localhost:3000", got)
	}
}

func TestAppExport(t *testing.T) {
	app := testApp(t)
	dir := t.TempDir()

	results, err := app.Export(context.Background(), dir)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	// Static routes only; /users/[id] needs a live parameter.
	if len(results) != 2 {
		t.Fatalf("exported %d routes, want 2", len(results))
	}

	data, err := os.ReadFile(filepath.Join(dir, "about", "index.html"))
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>\n") {
		t.Errorf("export missing document preamble: %q", data)
	}
	if !strings.Contains(string(data), "<h1>about</h1>") {
		t.Errorf("export missing page body: %q", data)
	}
}

func TestRunExportMode(t *testing.T) {
	app := testApp(t)
	dir := t.TempDir()

	t.Setenv(ExportDirEnv, dir)
	if err := app.Run(); err != nil {
		t.Fatalf("Run in export mode: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		t.Errorf("expected root export: %v", err)
	}
}
