package mock

import "github.com/fwojciec/optdoc"

var _ optdoc.DocSource = (*DocSource)(nil)

// DocSource is a mock implementation of optdoc.DocSource.
type DocSource struct {
	KindFn          func() optdoc.SourceKind
	AllKeysFn       func() []string
	LookupFn        func(name string) (optdoc.DocEntry, bool)
	SearchFn        func(q optdoc.Query) []optdoc.DocEntry
	SearchLiberalFn func(q optdoc.Query) []optdoc.DocEntry
	RefreshFn       func() (bool, error)
	LenFn           func() int
	FingerprintFn   func() uint64
}

func (s *DocSource) Kind() optdoc.SourceKind {
	return s.KindFn()
}

func (s *DocSource) AllKeys() []string {
	return s.AllKeysFn()
}

func (s *DocSource) Lookup(name string) (optdoc.DocEntry, bool) {
	return s.LookupFn(name)
}

func (s *DocSource) Search(q optdoc.Query) []optdoc.DocEntry {
	return s.SearchFn(q)
}

func (s *DocSource) SearchLiberal(q optdoc.Query) []optdoc.DocEntry {
	return s.SearchLiberalFn(q)
}

func (s *DocSource) Refresh() (bool, error) {
	return s.RefreshFn()
}

func (s *DocSource) Len() int {
	return s.LenFn()
}

func (s *DocSource) Fingerprint() uint64 {
	return s.FingerprintFn()
}
