// Package inmem provides the in-memory documentation store.
package inmem

import (
	"maps"
	"slices"
	"sync"

	"github.com/fwojciec/optdoc"
	"github.com/fwojciec/optdoc/xxhash"
)

// Compile-time interface verification.
var _ optdoc.DocSource = (*Store)(nil)

// Store implements optdoc.DocSource with a map from option name to record.
//
// The map is never modified in place. Refresh builds a complete new map and
// swaps it in, so readers see either the old set or the new one.
type Store struct {
	kind     optdoc.SourceKind
	resolver optdoc.PathResolver
	loader   optdoc.OptionLoader

	mu          sync.RWMutex
	options     map[string]optdoc.OptionDocumentation
	fingerprint uint64
}

// NewStore creates an empty Store for kind. Refresh resolves the source
// file through resolver and reads it with loader.
func NewStore(kind optdoc.SourceKind, resolver optdoc.PathResolver, loader optdoc.OptionLoader) *Store {
	return &Store{
		kind:        kind,
		resolver:    resolver,
		loader:      loader,
		options:     map[string]optdoc.OptionDocumentation{},
		fingerprint: xxhash.KeySetFingerprint(slices.Values([]string(nil))),
	}
}

// Kind returns the source kind of the store.
func (s *Store) Kind() optdoc.SourceKind {
	return s.kind
}

// AllKeys returns every option name in map iteration order.
func (s *Store) AllKeys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Collect(maps.Keys(s.options))
}

// Lookup returns a copy of the record stored under name.
func (s *Store) Lookup(name string) (optdoc.DocEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	opt, ok := s.options[name]
	if !ok {
		return optdoc.DocEntry{}, false
	}
	return s.entry(opt), true
}

// Search returns copies of every record whose name starts with q.
func (s *Store) Search(q optdoc.Query) []optdoc.DocEntry {
	return s.filter(q.IsPrefixOf)
}

// SearchLiberal returns copies of every record whose name contains q.
func (s *Store) SearchLiberal(q optdoc.Query) []optdoc.DocEntry {
	return s.filter(q.IsContainedIn)
}

func (s *Store) filter(match func(name string) bool) []optdoc.DocEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []optdoc.DocEntry
	for name, opt := range s.options {
		if match(name) {
			entries = append(entries, s.entry(opt))
		}
	}
	return entries
}

func (s *Store) entry(opt optdoc.OptionDocumentation) optdoc.DocEntry {
	return optdoc.DocEntry{Kind: s.kind, Option: opt.Clone()}
}

// Refresh reloads the source file and replaces the held set.
// Reports whether the new set has exactly the same option names as the old
// one, whether or not any record changed. On error the held set is kept.
func (s *Store) Refresh() (bool, error) {
	path, err := s.resolver.ResolvePath(s.kind)
	if err != nil {
		return false, err
	}

	options, err := s.loader.LoadOptions(path)
	if err != nil {
		return false, err
	}
	fingerprint := xxhash.KeySetFingerprint(maps.Keys(options))

	s.mu.Lock()
	old := s.options
	s.options = options
	s.fingerprint = fingerprint
	s.mu.Unlock()

	return sameKeys(old, options), nil
}

// Len returns the number of options held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.options)
}

// Fingerprint returns the key set fingerprint of the held options.
func (s *Store) Fingerprint() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fingerprint
}

func sameKeys(a, b map[string]optdoc.OptionDocumentation) bool {
	if len(a) != len(b) {
		return false
	}
	for key := range a {
		if _, ok := b[key]; !ok {
			return false
		}
	}
	return true
}
