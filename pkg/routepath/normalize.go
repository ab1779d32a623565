// Package routepath normalizes and validates request paths before they
// reach the router. Route patterns are normalized with the same rules so
// a pattern and a request that differ only by a trailing slash agree.
package routepath

import (
	"errors"
	"strings"
)

// Path validation errors.
var (
	ErrBackslashInPath = errors.New("path contains backslash")
	ErrNullByteInPath  = errors.New("path contains null byte")
)

// Normalize trims a single trailing slash from p unless p is the root.
// Normalize is idempotent: Normalize(Normalize(p)) == Normalize(p).
func Normalize(p string) string {
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		return p[:len(p)-1]
	}
	return p
}

// Validate rejects paths the router must never see. Callers convert a
// validation failure into the generic error response.
func Validate(p string) error {
	if strings.Contains(p, "\\") {
		return ErrBackslashInPath
	}
	if strings.Contains(p, "\x00") || strings.Contains(strings.ToUpper(p), "%00") {
		return ErrNullByteInPath
	}
	return nil
}
