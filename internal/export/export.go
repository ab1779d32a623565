// Package export renders the static routes of a tree to files and
// optionally publishes the result to an S3 bucket.
package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/strata-dev/strata/internal/errors"
	"github.com/strata-dev/strata/pkg/router"
)

// Result describes one exported route.
type Result struct {
	// Path is the route path (e.g., "/about").
	Path string

	// File is the file the route was written to.
	File string

	// Bytes is the size of the rendered document.
	Bytes int
}

// Routes renders every static route of rt into outDir. Each route lands
// at <outDir><path>/index.html so the export serves from any static
// file host. Dynamic routes are skipped; they need a request to bind
// their parameters.
func Routes(ctx context.Context, rt *router.Router, outDir string) ([]Result, error) {
	var results []Result

	for _, path := range rt.StaticPaths() {
		var buf bytes.Buffer
		matched, err := rt.Render(ctx, &buf, path)
		if err != nil {
			return nil, errors.New("E060").
				WithDetail("Rendering " + path + " failed").
				Wrap(err)
		}
		if !matched {
			// A static path came from the tree itself; not matching
			// would mean the tree changed mid-export.
			return nil, errors.New("E060").
				WithDetail("Route " + path + " did not match its own pattern")
		}

		file := targetFile(outDir, path)
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, errors.New("E060").Wrap(err)
		}
		if err := os.WriteFile(file, buf.Bytes(), 0o644); err != nil {
			return nil, errors.New("E060").Wrap(err)
		}

		results = append(results, Result{Path: path, File: file, Bytes: buf.Len()})
	}

	return results, nil
}

// targetFile maps a route path to its output file.
func targetFile(outDir, path string) string {
	if path == "/" {
		return filepath.Join(outDir, "index.html")
	}
	return filepath.Join(outDir, filepath.FromSlash(path[1:]), "index.html")
}
