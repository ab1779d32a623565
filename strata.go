// Package strata is the public API for the Strata page server.
//
// An application declares a route tree, wraps it in an App, and serves it:
//
//	app := strata.New(cfg,
//	    &router.Route{Path: "/", Page: home, Layout: shell, Children: []*router.Route{
//	        {Path: "/users/[id]", Page: userProfile},
//	    }},
//	)
//	log.Fatal(app.ListenAndServe())
//
// The same App can render every static route to disk with Export, which
// is what `strata export` builds on.
package strata

import (
	"context"
	"os"

	"github.com/strata-dev/strata/internal/config"
	"github.com/strata-dev/strata/internal/export"
	"github.com/strata-dev/strata/pkg/router"
	"github.com/strata-dev/strata/pkg/server"
)

// Config is re-exported so applications only import the root package.
type Config = config.Config

// LoadConfig reads strata.json starting from the working directory and
// walking up to the project root.
func LoadConfig() (*Config, error) {
	return config.LoadFromWorkingDir()
}

// App ties a route tree to its configuration and HTTP surface.
type App struct {
	cfg    *config.Config
	router *router.Router
	server *server.Server
}

// New builds an App from a configuration and the application's root
// routes. A nil cfg gets the documented defaults.
func New(cfg *Config, roots ...*router.Route) *App {
	if cfg == nil {
		cfg = config.New()
	}
	rt := router.New(roots...)
	return &App{
		cfg:    cfg,
		router: rt,
		server: server.New(cfg, rt),
	}
}

// Router exposes the resolved route tree, mainly for tests and tooling.
func (a *App) Router() *router.Router {
	return a.router
}

// Addr returns the address the app will listen on.
func (a *App) Addr() string {
	return a.server.Addr()
}

// ListenAndServe blocks serving the app until Shutdown or failure.
func (a *App) ListenAndServe() error {
	return a.server.ListenAndServe()
}

// ExportDirEnv is set by `strata export` to ask the application binary
// to write a static export and exit instead of serving.
const ExportDirEnv = "STRATA_EXPORT_DIR"

// Run serves the app, or performs a one-shot static export when
// ExportDirEnv is set. Applications that want `strata export` to work
// call Run from main instead of ListenAndServe.
func (a *App) Run() error {
	if dir := os.Getenv(ExportDirEnv); dir != "" {
		_, err := a.Export(context.Background(), dir)
		return err
	}
	return a.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// Export renders every static page route into outDir, one
// <route>/index.html per page. Dynamic routes are skipped; they need a
// live server to bind parameters.
func (a *App) Export(ctx context.Context, outDir string) ([]export.Result, error) {
	if outDir == "" {
		outDir = a.cfg.OutputPath()
	}
	return export.Routes(ctx, a.router, outDir)
}
