package router

import "github.com/strata-dev/strata/pkg/routepath"

// Walk visits every route in the tree depth-first, in declaration order.
func (r *Router) Walk(fn func(*Route)) {
	for _, root := range r.roots {
		walkRoute(root, fn)
	}
}

func walkRoute(route *Route, fn func(*Route)) {
	fn(route)
	for _, child := range route.Children {
		walkRoute(child, fn)
	}
}

// StaticPaths returns the normalized paths of every page-bearing route
// whose pattern has no dynamic segments. These are the routes a static
// export can render without inventing parameter values.
func (r *Router) StaticPaths() []string {
	var paths []string
	r.Walk(func(route *Route) {
		if route.Page == nil {
			return
		}
		pattern := routepath.Normalize(route.Path)
		for _, seg := range splitPath(pattern) {
			if isDynamic(seg) {
				return
			}
		}
		paths = append(paths, pattern)
	})
	return paths
}
