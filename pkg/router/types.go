package router

import (
	"github.com/strata-dev/strata/pkg/mem"
	"github.com/strata-dev/strata/pkg/render"
)

// Params maps a dynamic segment name to the request text it captured.
// A Params value is created per successful match, owned by that request,
// and returned to the pool when the request finishes.
type Params = map[string]string

// PageFunc produces the page content for a matched route. This is the
// canonical page entry signature; `strata gen pages` rewrites other
// authoring shapes into it.
type PageFunc func(alloc *mem.Arena, params Params) render.Component

// LayoutFunc wraps child content in surrounding structure. Layouts are
// pure: one component in, a new component out.
type LayoutFunc func(alloc *mem.Arena, child render.Component) render.Component

// Route binds a path pattern to a page, an optional layout, and optional
// child routes. Patterns mix static segments with bracketed dynamic ones,
// e.g. "/users/[id]/posts/[slug]"; a segment is either wholly static or
// wholly dynamic.
//
// A Route tree is declared once at startup and must not be mutated
// afterwards; it is shared by every request without locking.
type Route struct {
	// Path is the pattern this route matches.
	Path string

	// Page renders the route's content. Nil for grouping-only nodes
	// that exist to carry a layout and children.
	Page PageFunc

	// Layout wraps this route's page and every descendant page.
	Layout LayoutFunc

	// Children are tried in declaration order when this route itself
	// does not match.
	Children []*Route
}
