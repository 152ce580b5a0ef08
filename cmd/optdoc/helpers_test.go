package main_test

import (
	"bytes"
	"context"
	"sort"

	"github.com/fwojciec/optdoc"
	main "github.com/fwojciec/optdoc/cmd/optdoc"
	"github.com/fwojciec/optdoc/mock"
)

// fakeSource returns a mock DocSource serving opts with real query semantics.
func fakeSource(kind optdoc.SourceKind, opts ...optdoc.OptionDocumentation) *mock.DocSource {
	filter := func(match func(string) bool) []optdoc.DocEntry {
		var out []optdoc.DocEntry
		for _, o := range opts {
			if match(o.Name()) {
				out = append(out, optdoc.DocEntry{Kind: kind, Option: o.Clone()})
			}
		}
		return out
	}
	return &mock.DocSource{
		KindFn: func() optdoc.SourceKind { return kind },
		AllKeysFn: func() []string {
			keys := make([]string, 0, len(opts))
			for _, o := range opts {
				keys = append(keys, o.Name())
			}
			// Reverse order to make sure callers sort.
			sort.Sort(sort.Reverse(sort.StringSlice(keys)))
			return keys
		},
		LookupFn: func(name string) (optdoc.DocEntry, bool) {
			for _, o := range opts {
				if o.Name() == name {
					return optdoc.DocEntry{Kind: kind, Option: o.Clone()}, true
				}
			}
			return optdoc.DocEntry{}, false
		},
		SearchFn: func(q optdoc.Query) []optdoc.DocEntry {
			return filter(q.IsPrefixOf)
		},
		SearchLiberalFn: func(q optdoc.Query) []optdoc.DocEntry {
			return filter(q.IsContainedIn)
		},
		LenFn:         func() int { return len(opts) },
		FingerprintFn: func() uint64 { return 0xabc },
	}
}

func opt(desc, typ string, loc ...string) optdoc.OptionDocumentation {
	return optdoc.OptionDocumentation{Description: desc, Type: typ, Location: loc}
}

func newDeps(sources ...optdoc.DocSource) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Sources: sources,
	}, stdout, stderr
}
