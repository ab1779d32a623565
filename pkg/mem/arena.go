// Package mem provides the per-request scratch allocator used by pages,
// layouts, and the resolver. Buffers and parameter maps are drawn from
// process-wide pools and handed back when the owning request finishes.
package mem

import (
	"bytes"
	"sync"
)

var bufPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

var paramsPool = sync.Pool{
	New: func() any { return make(map[string]string, 4) },
}

// Arena hands out pooled scratch values and tracks them so a single
// Release returns everything at once. An Arena is owned by one request
// and must not be shared across requests.
type Arena struct {
	mu      sync.Mutex
	track   bool
	buffers []*bytes.Buffer
	params  []map[string]string
}

// New creates a tracking arena. Call Release when the request is done.
func New() *Arena {
	return &Arena{track: true}
}

// defaultArena is shared by pages that declare no parameters at all.
// It does not track allocations, so values it hands out are reclaimed by
// the garbage collector rather than returned to the pools. That keeps it
// safe to share across concurrent requests.
var defaultArena = &Arena{}

// Default returns the process-wide default arena.
func Default() *Arena {
	return defaultArena
}

// Buffer returns an empty scratch buffer.
func (a *Arena) Buffer() *bytes.Buffer {
	buf := bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	if a.track {
		a.mu.Lock()
		a.buffers = append(a.buffers, buf)
		a.mu.Unlock()
	}
	return buf
}

// Params returns an empty parameter map.
func (a *Arena) Params() map[string]string {
	m := paramsPool.Get().(map[string]string)
	clear(m)
	if a.track {
		a.mu.Lock()
		a.params = append(a.params, m)
		a.mu.Unlock()
	}
	return m
}

// Release returns every tracked value to its pool. The arena may be
// reused afterwards. Releasing the default arena is a no-op.
func (a *Arena) Release() {
	if !a.track {
		return
	}
	a.mu.Lock()
	buffers := a.buffers
	params := a.params
	a.buffers = nil
	a.params = nil
	a.mu.Unlock()

	for _, buf := range buffers {
		buf.Reset()
		bufPool.Put(buf)
	}
	for _, m := range params {
		clear(m)
		paramsPool.Put(m)
	}
}
