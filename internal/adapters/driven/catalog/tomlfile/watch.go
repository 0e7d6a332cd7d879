package tomlfile

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/menugen/internal/logger"
)

// DefaultDebounce collapses the bursts of events editors emit on save.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reports changes to a single catalog file.
// The parent directory is watched so editors that replace the file
// by renaming a temporary one are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
}

// NewWatcher creates a watcher for the catalog file at path.
func NewWatcher(path string) *Watcher {
	return &Watcher{path: filepath.Clean(path), debounce: DefaultDebounce}
}

// SetDebounce overrides the quiet period before onChange fires.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Watch blocks until ctx is cancelled, calling onChange once per burst of
// relevant events. onChange runs on the watching goroutine.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Debug("watching catalog %s", w.path)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.handleEvent(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("catalog watcher: %v", err)

		case <-timer.C:
			logger.Debug("catalog %s changed", w.path)
			onChange()
		}
	}
}

// handleEvent reports whether event touches the catalog file in a way that
// may change its contents. Attribute-only changes are ignored.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename)
}
