// Package slog provides logging decorators for optdoc services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/optdoc"
)

// Ensure LoggingDocSource implements optdoc.DocSource.
var _ optdoc.DocSource = (*LoggingDocSource)(nil)

// LoggingDocSource wraps a DocSource with logging of refreshes and searches.
type LoggingDocSource struct {
	next   optdoc.DocSource
	logger *slog.Logger
}

// NewLoggingDocSource creates a new LoggingDocSource.
func NewLoggingDocSource(next optdoc.DocSource, logger *slog.Logger) *LoggingDocSource {
	return &LoggingDocSource{next: next, logger: logger}
}

// Kind delegates to the wrapped source.
func (s *LoggingDocSource) Kind() optdoc.SourceKind {
	return s.next.Kind()
}

// AllKeys delegates to the wrapped source.
func (s *LoggingDocSource) AllKeys() []string {
	return s.next.AllKeys()
}

// Lookup delegates to the wrapped source.
func (s *LoggingDocSource) Lookup(name string) (optdoc.DocEntry, bool) {
	return s.next.Lookup(name)
}

// Search delegates to the wrapped source and logs the query.
func (s *LoggingDocSource) Search(q optdoc.Query) (entries []optdoc.DocEntry) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"kind", string(s.next.Kind()),
			"query", string(q),
			"count", len(entries),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Search(q)
}

// SearchLiberal delegates to the wrapped source and logs the query.
func (s *LoggingDocSource) SearchLiberal(q optdoc.Query) (entries []optdoc.DocEntry) {
	defer func(begin time.Time) {
		s.logger.Info("liberal search",
			"kind", string(s.next.Kind()),
			"query", string(q),
			"count", len(entries),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SearchLiberal(q)
}

// Refresh delegates to the wrapped source and logs the outcome.
func (s *LoggingDocSource) Refresh() (unchanged bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("refresh",
			"kind", string(s.next.Kind()),
			"count", s.next.Len(),
			"unchanged", unchanged,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Refresh()
}

// Len delegates to the wrapped source.
func (s *LoggingDocSource) Len() int {
	return s.next.Len()
}

// Fingerprint delegates to the wrapped source.
func (s *LoggingDocSource) Fingerprint() uint64 {
	return s.next.Fingerprint()
}
