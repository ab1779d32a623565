package pagegen

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/strata-dev/strata/internal/errors"
)

// FileResult reports what happened to one scanned file.
type FileResult struct {
	// Path is the source file path.
	Path string

	// Mode is the detected parameter convention.
	Mode Mode

	// Changed reports whether the file was rewritten on disk.
	Changed bool
}

// NormalizeDir runs Normalize over every Go source under dir, rewriting
// files in place when the rewrite changes them. Test files are skipped.
// I/O failures are hard errors; unrecognized page shapes are not.
func NormalizeDir(dir string) ([]FileResult, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.New("E022").
			WithDetail("Pages directory " + dir + " does not exist").
			WithSuggestion("Check paths.pages in strata.json").
			Wrap(err)
	}

	var results []FileResult

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		res, err := NormalizeFile(path)
		if err != nil {
			return err
		}
		results = append(results, res)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// NormalizeFile normalizes a single source file in place.
func NormalizeFile(path string) (FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, errors.New("E020").WithDetail("Reading " + path + " failed").Wrap(err)
	}

	res := Normalize(string(data))
	out := FileResult{Path: path, Mode: res.Mode, Changed: res.Changed}
	if !res.Changed {
		return out, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return FileResult{}, errors.New("E021").WithDetail("Stat " + path + " failed").Wrap(err)
	}
	if err := os.WriteFile(path, []byte(res.Source), info.Mode().Perm()); err != nil {
		return FileResult{}, errors.New("E021").WithDetail("Writing " + path + " failed").Wrap(err)
	}
	return out, nil
}
