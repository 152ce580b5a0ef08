package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/fwojciec/optdoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	entries := searchSources(deps.Sources, c.Query, c.Liberal)

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stdout, "No options match %q.\n", c.Query)
		return nil
	}

	if c.Names {
		for _, e := range entries {
			fmt.Fprintln(deps.Stdout, e.Option.Name())
		}
		return nil
	}

	fmt.Fprint(deps.Stdout, optdoc.FormatEntries(entries))
	return nil
}

// searchSources runs the query against every source and sorts the combined
// results by name, then by the order of sources.
func searchSources(sources []optdoc.DocSource, query string, liberal bool) []optdoc.DocEntry {
	q := optdoc.NewQuery(query)

	var entries []optdoc.DocEntry
	for _, src := range sources {
		var found []optdoc.DocEntry
		if liberal {
			found = src.SearchLiberal(q)
		} else {
			found = src.Search(q)
		}
		entries = append(entries, found...)
	}

	slices.SortStableFunc(entries, func(a, b optdoc.DocEntry) int {
		return cmp.Compare(a.Option.Name(), b.Option.Name())
	})
	return entries
}
