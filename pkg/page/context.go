// Package page defines the per-render page context handed to page
// implementations by the generated entry points.
package page

import "github.com/strata-dev/strata/pkg/mem"

// Context bundles the allocator and bound route parameters for one page
// render. A Context lives for a single call into a page implementation;
// the generated entry point creates it and releases it on every exit path.
type Context struct {
	arena  *mem.Arena
	params map[string]string
}

// NewContext builds a page context from an allocator and route parameters.
// The params map stays owned by the resolver; the context only borrows it.
func NewContext(alloc *mem.Arena, params map[string]string) *Context {
	return &Context{arena: alloc, params: params}
}

// Arena returns the allocator bound to this render.
func (c *Context) Arena() *mem.Arena {
	return c.arena
}

// Param returns the captured value for a route parameter, or "" if the
// parameter was not bound.
func (c *Context) Param(name string) string {
	return c.params[name]
}

// Params returns the bound parameter map. May be nil for static routes.
func (c *Context) Params() map[string]string {
	return c.params
}

// Release detaches the context from its allocator and parameters. The
// context must not be used afterwards.
func (c *Context) Release() {
	c.arena = nil
	c.params = nil
}

// DefaultArena returns the process-wide allocator used by pages that
// declare no parameters.
func DefaultArena() *mem.Arena {
	return mem.Default()
}
