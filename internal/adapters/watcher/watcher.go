// Package watcher implements source file watching for re-indexing on change.
package watcher

import (
	"context"
	"errors"
	"iter"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/scenecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements source watching using fsnotify.
// Editors save scenes by writing a temp file and renaming it over the original,
// so the parent directories are watched and events are filtered by path.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	events    chan ports.WatchEvent

	mu      sync.RWMutex
	sources map[string]string // cleaned absolute path -> path as given
}

// NewWatcher creates a new source watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Join(domain.ErrWatchFailed, zerr.Wrap(err, "create fsnotify watcher"))
	}
	return &Watcher{
		fsWatcher: w,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		sources:   make(map[string]string),
	}, nil
}

// Start begins watching the given source files.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	dirs := make(map[string]bool)

	w.mu.Lock()
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.mu.Unlock()
			return errors.Join(domain.ErrWatchFailed, zerr.With(zerr.Wrap(err, "resolve source path"), "path", p))
		}
		w.sources[abs] = p
		dirs[filepath.Dir(abs)] = true
	}
	w.mu.Unlock()

	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return errors.Join(domain.ErrWatchFailed, zerr.With(zerr.Wrap(err, "watch directory"), "dir", dir))
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of source change events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// processEvents converts raw fsnotify events for watched sources to ports.WatchEvent.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := w.convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: file system error: " + err.Error())
		}
	}
}

// convertEvent maps an fsnotify event to a watch event if it concerns a watched source.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return ports.WatchEvent{}, false
	}

	w.mu.RLock()
	path, watched := w.sources[abs]
	w.mu.RUnlock()
	if !watched {
		return ports.WatchEvent{}, false
	}

	switch {
	case event.Has(fsnotify.Write):
		return ports.WatchEvent{Path: path, Operation: ports.OpWrite}, true
	case event.Has(fsnotify.Create):
		return ports.WatchEvent{Path: path, Operation: ports.OpCreate}, true
	case event.Has(fsnotify.Remove):
		return ports.WatchEvent{Path: path, Operation: ports.OpRemove}, true
	case event.Has(fsnotify.Rename):
		return ports.WatchEvent{Path: path, Operation: ports.OpRename}, true
	default:
		return ports.WatchEvent{}, false
	}
}
