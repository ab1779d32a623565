package router

import (
	"context"
	"io"

	"github.com/strata-dev/strata/pkg/mem"
	"github.com/strata-dev/strata/pkg/routepath"
)

// DocumentPreamble is written before every rendered page.
const DocumentPreamble = "<!DOCTYPE html>\n"

// NotFoundBody is the literal response body for unmatched paths.
const NotFoundBody = "Not found"

// Router resolves request paths against a declared route tree and renders
// the matching page. The tree is read-only after New, so one Router serves
// arbitrarily many concurrent requests.
type Router struct {
	roots []*Route
}

// New builds a router over root routes, tried in declaration order.
func New(roots ...*Route) *Router {
	return &Router{roots: roots}
}

// Render resolves path and, on a match, writes the document preamble and
// the rendered page to w. It reports whether any route matched.
//
// The page renders into an arena buffer first; only a fully rendered page
// reaches w. A failed render therefore surfaces as an error with nothing
// written, never as a truncated document.
func (r *Router) Render(ctx context.Context, w io.Writer, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	alloc := mem.New()
	defer alloc.Release()

	path = routepath.Normalize(path)

	for _, route := range r.roots {
		matched, err := r.resolve(ctx, alloc, w, path, route, nil)
		if matched || err != nil {
			return matched, err
		}
	}
	return false, nil
}

// resolve attempts one route, depth-first. The layouts chain carries the
// layouts of every ancestor, root-first.
func (r *Router) resolve(ctx context.Context, alloc *mem.Arena, w io.Writer, path string, route *Route, layouts []LayoutFunc) (bool, error) {
	pattern := routepath.Normalize(route.Path)

	if route.Page != nil {
		if params, ok := Match(alloc, pattern, path); ok {
			return true, r.renderMatch(ctx, alloc, w, route, params, layouts)
		}
	}

	if len(route.Children) == 0 {
		return false, nil
	}

	childLayouts := layouts
	if route.Layout != nil {
		// Copy so siblings never observe each other's appends.
		childLayouts = make([]LayoutFunc, len(layouts), len(layouts)+1)
		copy(childLayouts, layouts)
		childLayouts = append(childLayouts, route.Layout)
	}

	for _, child := range route.Children {
		matched, err := r.resolve(ctx, alloc, w, path, child, childLayouts)
		if matched || err != nil {
			return matched, err
		}
	}
	return false, nil
}

// renderMatch runs the page, folds layouts around it, and writes the
// document. The route's own layout sits closest to the content; inherited
// layouts wrap outward so the root ancestor's layout is outermost.
func (r *Router) renderMatch(ctx context.Context, alloc *mem.Arena, w io.Writer, route *Route, params Params, layouts []LayoutFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	comp := route.Page(alloc, params)
	if route.Layout != nil {
		comp = route.Layout(alloc, comp)
	}
	for i := len(layouts) - 1; i >= 0; i-- {
		comp = layouts[i](alloc, comp)
	}

	buf := alloc.Buffer()
	if err := comp.Render(buf); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := io.WriteString(w, DocumentPreamble); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// RenderOrNotFound is the top-level driver: it renders the first matching
// root route, or writes the literal not-found body when nothing matches.
func (r *Router) RenderOrNotFound(ctx context.Context, w io.Writer, path string) (bool, error) {
	matched, err := r.Render(ctx, w, path)
	if err != nil {
		return matched, err
	}
	if !matched {
		if _, werr := io.WriteString(w, NotFoundBody); werr != nil {
			return false, werr
		}
	}
	return matched, nil
}
