package router

import (
	"strings"

	"github.com/strata-dev/strata/pkg/mem"
)

// isDynamic reports whether a pattern segment is a bracketed placeholder.
// The length check keeps a bare "[]" static.
func isDynamic(seg string) bool {
	return len(seg) > 2 && seg[0] == '[' && seg[len(seg)-1] == ']'
}

// splitPath splits a path into segments, discarding the empty token a
// leading slash produces.
func splitPath(p string) []string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Match walks pattern and path segments in lock-step. Dynamic segments
// bind the corresponding path token under the bracket-stripped name;
// static segments require byte equality. A segment-count mismatch in
// either direction is no match.
//
// On a match with at least one dynamic segment the returned map is drawn
// from alloc and holds the captured parameters; a purely static match
// returns a nil map. Absence of a match is a boolean, never an error.
//
// A pattern with no dynamic segments degenerates to exact path equality,
// so no separate equality fallback exists.
func Match(alloc *mem.Arena, pattern, path string) (Params, bool) {
	patSegs := splitPath(pattern)
	pathSegs := splitPath(path)

	if len(patSegs) != len(pathSegs) {
		return nil, false
	}

	var params Params
	for i, seg := range patSegs {
		if isDynamic(seg) {
			if params == nil {
				params = alloc.Params()
			}
			// Duplicate names in one pattern: last write wins.
			params[seg[1:len(seg)-1]] = pathSegs[i]
			continue
		}
		if seg != pathSegs[i] {
			return nil, false
		}
	}

	return params, true
}
