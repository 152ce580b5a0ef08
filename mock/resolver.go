package mock

import "github.com/fwojciec/optdoc"

var _ optdoc.PathResolver = (*PathResolver)(nil)

// PathResolver is a mock implementation of optdoc.PathResolver.
type PathResolver struct {
	ResolvePathFn func(kind optdoc.SourceKind) (string, error)
}

func (r *PathResolver) ResolvePath(kind optdoc.SourceKind) (string, error) {
	return r.ResolvePathFn(kind)
}
