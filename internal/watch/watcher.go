// Package watch reports changes to C and C++ sources below a set of roots.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Options controls which changes are reported.
type Options struct {
	Extensions []string      // lower-case, with leading dot
	Exclude    []string      // directory base names that are never watched
	Debounce   time.Duration // quiet period before a batch is reported
}

// Watcher monitors source trees for file changes.
type Watcher struct {
	opts   Options
	logger *slog.Logger
	Ready  chan struct{}

	newWatcher func() (*fsnotify.Watcher, error)
}

// NewWatcher creates a new Watcher.
func NewWatcher(opts Options, logger *slog.Logger) *Watcher {
	return &Watcher{
		opts:       opts,
		logger:     logger.With("component", "watcher"),
		Ready:      make(chan struct{}),
		newWatcher: fsnotify.NewWatcher,
	}
}

// Watch starts monitoring roots. Once a burst of relevant changes has been
// quiet for the debounce period, trigger is called with the most recently
// changed path. It blocks until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context, roots []string, trigger func(path string)) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, root := range roots {
		if err := w.addRecursive(watcher, root); err != nil {
			return err
		}
	}

	w.logger.Info("Watching for changes", "roots", roots)
	if w.Ready != nil {
		close(w.Ready)
	}

	var (
		mu      sync.Mutex
		timer   *time.Timer
		pending string
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path, relevant := w.handleEvent(watcher, event)
			if !relevant {
				continue
			}
			mu.Lock()
			pending = path
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.opts.Debounce, func() {
				mu.Lock()
				p := pending
				mu.Unlock()
				if ctx.Err() == nil {
					trigger(p)
				}
			})
			mu.Unlock()
		}
	}
}

// handleEvent processes a single fsnotify event. New directories are added to
// the watcher; changes to source files are reported as relevant.
func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return "", false
	}

	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if !w.skipDir(event.Name, "") {
				if err := w.addRecursive(watcher, event.Name); err != nil {
					w.logger.Error("Failed to watch new directory", "path", event.Name, "error", err)
				}
			}
			return "", false
		}
	}

	return event.Name, w.IsSource(event.Name)
}

// IsSource reports whether path has one of the watched extensions.
func (w *Watcher) IsSource(path string) bool {
	return slices.Contains(w.opts.Extensions, strings.ToLower(filepath.Ext(path)))
}

func (w *Watcher) skipDir(path, root string) bool {
	if path == root {
		return false
	}
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") || slices.Contains(w.opts.Exclude, base)
}

// addRecursive adds the given path and all its subdirectories to the watcher.
func (w *Watcher) addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if w.skipDir(path, root) {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}
