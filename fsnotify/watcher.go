// Package fsnotify watches documentation source files for changes.
package fsnotify

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/optdoc"
)

// Ensure Watcher implements optdoc.SourceWatcher at compile time.
var _ optdoc.SourceWatcher = (*Watcher)(nil)

// Watcher implements optdoc.SourceWatcher on top of fsnotify.
//
// It watches the parent directory of every file rather than the file itself,
// so files replaced by rename (as editors and build tools do) keep being
// reported.
type Watcher struct {
	w     *fsnotify.Watcher
	files map[string]optdoc.SourceKind
}

// NewWatcher starts watching the files in paths.
func NewWatcher(paths map[optdoc.SourceKind]string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	files := make(map[string]optdoc.SourceKind, len(paths))
	dirs := make(map[string]struct{})
	for kind, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
		}
		files[abs] = kind
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, optdoc.Errorf(optdoc.EIO, "watch %s: %w", dir, err)
		}
	}

	return &Watcher{w: w, files: files}, nil
}

// Next blocks until a watched file is written or created and returns its
// kind. Events for other files in the same directories are skipped.
func (w *Watcher) Next(ctx context.Context) (optdoc.SourceKind, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case event, ok := <-w.w.Events:
			if !ok {
				return "", optdoc.Errorf(optdoc.EINTERNAL, "watcher closed")
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if kind, ok := w.files[filepath.Clean(event.Name)]; ok {
				return kind, nil
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return "", optdoc.Errorf(optdoc.EINTERNAL, "watcher closed")
			}
			return "", optdoc.Errorf(optdoc.EIO, "watch: %w", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.w.Close()
}
