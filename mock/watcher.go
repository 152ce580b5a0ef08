package mock

import (
	"context"

	"github.com/fwojciec/optdoc"
)

var _ optdoc.SourceWatcher = (*SourceWatcher)(nil)

// SourceWatcher is a mock implementation of optdoc.SourceWatcher.
type SourceWatcher struct {
	NextFn  func(ctx context.Context) (optdoc.SourceKind, error)
	CloseFn func() error
}

func (w *SourceWatcher) Next(ctx context.Context) (optdoc.SourceKind, error) {
	return w.NextFn(ctx)
}

func (w *SourceWatcher) Close() error {
	return w.CloseFn()
}
