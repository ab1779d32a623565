package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/strata-dev/strata/internal/config"
	"github.com/strata-dev/strata/internal/dev"
	"github.com/strata-dev/strata/pkg/pagegen"
)

func devCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long: `Build and run the application with file watching and live reload.

On every source change the pages directory is re-normalized, the
project is rebuilt, the application restarted, and connected browsers
told to reload over a websocket endpoint served one port above the app.

Browsers connect through the reload client, served next to the
endpoint. Add it to a layout during development:

  <script src="http://localhost:3001/client.js"></script>

Examples:
  strata dev`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(cmd.Context())
		},
	}

	return cmd
}

func runDev(ctx context.Context) error {
	if err := requireGo(); err != nil {
		return err
	}

	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	printBanner()
	info("dev")
	fmt.Println()

	if _, err := pagegen.NormalizeDir(cfg.PagesPath()); err != nil {
		return err
	}

	runner := dev.NewRunner(dev.RunnerConfig{ProjectDir: cfg.Dir()})
	if res := runner.Build(ctx); !res.Success {
		errorMsg("Build failed")
		info("%s", res.Output)
		return res.Err
	}
	if err := runner.Start(ctx); err != nil {
		return err
	}
	defer runner.Stop()

	// Live reload endpoint one port above the app.
	reload := dev.NewReloadServer()
	reloadAddr := cfg.Host + ":" + strconv.Itoa(cfg.Port+1)
	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/reload", reload.HandleWebSocket)
		mux.HandleFunc("/client.js", reload.HandleClientScript)
		if err := http.ListenAndServe(reloadAddr, mux); err != nil {
			warn("Reload endpoint stopped: %v", err)
		}
	}()

	watcher := dev.NewWatcher(dev.WatcherConfig{
		Paths:    []string{cfg.Dir()},
		Ignore:   dev.DefaultIgnore,
		Debounce: time.Duration(cfg.Dev.DebounceMS) * time.Millisecond,
	})
	watcher.OnChange(func(c dev.Change) {
		info("Changed: %s", c.Path)
		if _, err := pagegen.NormalizeDir(cfg.PagesPath()); err != nil {
			errorMsg("Normalize failed: %v", err)
			reload.NotifyError(err.Error())
			return
		}
		if err := runner.Restart(ctx); err != nil {
			errorMsg("Rebuild failed: %v", err)
			reload.NotifyError(err.Error())
			return
		}
		reload.NotifyReload(c.Path)
	})
	defer watcher.Stop()

	success("Serving http://%s (reload ws://%s/reload)", cfg.Address(), reloadAddr)

	if err := watcher.Start(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
