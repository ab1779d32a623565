package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/strata-dev/strata/internal/config"
	"github.com/strata-dev/strata/internal/dev"
	"github.com/strata-dev/strata/pkg/pagegen"
)

func serveCmd() *cobra.Command {
	var skipGen bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build and run the application",
		Long: `Normalize page entry points, compile the project, and run it in
the foreground.

The application binary owns the route tree; serve is a thin build-and-
exec wrapper around it. Use --skip-gen when pages are already
normalized.

Examples:
  strata serve
  strata serve --skip-gen`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), skipGen)
		},
	}

	cmd.Flags().BoolVar(&skipGen, "skip-gen", false, "Skip page entry-point normalization")

	return cmd
}

func runServe(ctx context.Context, skipGen bool) error {
	if err := requireGo(); err != nil {
		return err
	}

	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if !skipGen {
		if _, err := pagegen.NormalizeDir(cfg.PagesPath()); err != nil {
			return err
		}
	}

	printBanner()
	info("Building %s...", cfg.Name)

	runner := dev.NewRunner(dev.RunnerConfig{ProjectDir: cfg.Dir()})
	if res := runner.Build(ctx); !res.Success {
		errorMsg("Build failed")
		return res.Err
	}

	success("Listening on http://%s", cfg.Address())

	if err := runner.Start(ctx); err != nil {
		return err
	}
	defer runner.Stop()
	return runner.Wait()
}
