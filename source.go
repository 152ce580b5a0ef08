package optdoc

import "context"

// DocSource represents a documentation set held in memory for one source kind.
//
// Refresh replaces the whole set at once. Implementations must leave the
// previous set untouched when Refresh fails.
type DocSource interface {
	// Kind returns the source kind attached to every result.
	Kind() SourceKind

	// AllKeys returns every option name currently held, in no particular order.
	AllKeys() []string

	// Lookup returns the record stored under name.
	Lookup(name string) (DocEntry, bool)

	// Search returns every record whose name starts with q.
	Search(q Query) []DocEntry

	// SearchLiberal returns every record whose name contains q.
	SearchLiberal(q Query) []DocEntry

	// Refresh reloads the documentation set from its source file.
	// Reports whether the set of option names is unchanged.
	Refresh() (bool, error)

	// Len returns the number of options held.
	Len() int

	// Fingerprint returns an order-independent hash of the option names held.
	Fingerprint() uint64
}

// PathResolver locates the JSON documentation file for a source kind.
type PathResolver interface {
	// ResolvePath returns the file path for kind.
	// Returns EINVALID if no path is configured.
	ResolvePath(kind SourceKind) (string, error)
}

// OptionLoader reads and normalizes a JSON documentation file.
type OptionLoader interface {
	// LoadOptions returns the options in the file keyed by option name.
	// Returns EIO if the file cannot be read and EPARSE if it is malformed.
	LoadOptions(path string) (map[string]OptionDocumentation, error)
}

// SourceWatcher reports changes to documentation source files.
type SourceWatcher interface {
	// Next blocks until the file of some source kind has been written.
	Next(ctx context.Context) (SourceKind, error)

	// Close stops watching.
	Close() error
}
