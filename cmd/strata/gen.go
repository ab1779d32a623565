package main

import (
	"github.com/spf13/cobra"

	"github.com/strata-dev/strata/internal/config"
	"github.com/strata-dev/strata/pkg/pagegen"
)

func genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <type>",
		Short: "Generate code",
		Long: `Generate or normalize code in a Strata project.

Types:
  pages   Normalize page entry points under the pages directory

Examples:
  strata gen pages              # Normalize app/pages/**/*.go
  strata gen pages --dir site   # Normalize a different directory`,
	}

	cmd.AddCommand(genPagesCmd())

	return cmd
}

func genPagesCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Normalize page entry points",
		Long: `Rewrite Page functions in the pages directory to the canonical
entry-point shape.

A context-style or parameterless Page function is renamed to PageImpl
and a wrapper taking an allocator and raw parameters is appended.
Sources already in the canonical shape are left untouched, so the
command is idempotent and safe to run on every build.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenPages(dir)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Pages directory (default from strata.json)")

	return cmd
}

func runGenPages(dir string) error {
	if dir == "" {
		cfg, err := config.LoadFromWorkingDir()
		if err != nil {
			return err
		}
		dir = cfg.PagesPath()
	}

	info("Normalizing %s...", dir)

	results, err := pagegen.NormalizeDir(dir)
	if err != nil {
		return err
	}

	changed := 0
	for _, res := range results {
		if res.Changed {
			changed++
			success("%s (%s)", res.Path, res.Mode)
		}
	}
	if changed == 0 {
		info("All %d page files already normalized", len(results))
	} else {
		success("Rewrote %d of %d page files", changed, len(results))
	}
	return nil
}
