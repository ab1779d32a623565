package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/strata-dev/strata/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┌┬┐┬─┐┌─┐┌┬┐┌─┐
  ╚═╗ │ ├┬┘├─┤ │ ├─┤
  ╚═╝ ┴ ┴└─┴ ┴ ┴ ┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "strata",
		Short: "Declarative page routing and rendering for Go",
		Long: `Strata renders HTML pages from a declarative route tree.

Routes declare full-path patterns with [param] segments and compose
layouts from the root of the tree down to the matched page. The CLI
wraps the build and serve workflow:

  • strata gen pages   Normalize page entry points in app/pages
  • strata serve       Build and run the application
  • strata dev         Serve with file watching and live reload
  • strata export      Render static routes to disk, optionally to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		devCmd(),
		genCmd(),
		exportCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var serr *errors.StrataError
		if stderrors.As(err, &serr) {
			fmt.Fprintln(os.Stderr, serr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the Strata ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// requireGo fails early when the Go toolchain is missing, before any
// command tries to build the project.
func requireGo() error {
	if _, err := exec.LookPath("go"); err != nil {
		return errors.Newf(errors.CategoryCLI, "go toolchain not found in PATH").
			WithSuggestion("Install Go from https://go.dev/dl/").
			Wrap(err)
	}
	return nil
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
