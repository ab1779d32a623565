// Package dev provides the development-mode file watcher and the
// browser live-reload channel. Neither touches the route tree; a change
// only tells connected browsers to refresh.
package dev

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Change represents a detected file change.
type Change struct {
	Path string
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories to watch.
	Paths []string

	// Ignore patterns to skip (globs matched against the base name).
	Ignore []string

	// Debounce is the polling interval.
	Debounce time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	"*_test.go",
	".git",
	"dist",
	"tmp",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls the configured paths for modified files.
type Watcher struct {
	config   WatcherConfig
	mu       sync.Mutex
	onChange func(Change)
	running  bool
	stopCh   chan struct{}
	modTimes map[string]time.Time
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 250 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	return &Watcher{
		config:   config,
		modTimes: make(map[string]time.Time),
	}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	w.scan(false)

	ticker := time.NewTicker(w.config.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.scan(true)
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// scan walks the watched paths. When notify is true, new or modified
// files are reported through the callback.
func (w *Watcher) scan(notify bool) {
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()

	var changes []Change

	for _, root := range w.config.Paths {
		filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if w.ignored(p) {
					return filepath.SkipDir
				}
				return nil
			}
			if w.ignored(p) {
				return nil
			}

			w.mu.Lock()
			last, seen := w.modTimes[p]
			mod := info.ModTime()
			if !seen || mod.After(last) {
				w.modTimes[p] = mod
				if notify {
					changes = append(changes, Change{Path: p})
				}
			}
			w.mu.Unlock()
			return nil
		})
	}

	if callback != nil && notify {
		for _, c := range changes {
			callback(c)
		}
	}
}

// ignored reports whether a path matches an ignore pattern.
func (w *Watcher) ignored(p string) bool {
	base := filepath.Base(p)
	for _, pattern := range w.config.Ignore {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
		if strings.Contains(p, string(filepath.Separator)+pattern+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
