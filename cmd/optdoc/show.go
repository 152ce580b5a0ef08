package main

import (
	"fmt"

	"github.com/fwojciec/optdoc"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	var found []optdoc.DocEntry
	for _, src := range deps.Sources {
		if e, ok := src.Lookup(c.Name); ok {
			found = append(found, e)
		}
	}

	if len(found) == 0 {
		fmt.Fprintf(deps.Stderr, "error: option %q not found. Use 'optdoc search' to find option names.\n", c.Name)
		return optdoc.Errorf(optdoc.ENOTFOUND, "option %q not found", c.Name)
	}

	for _, e := range found {
		fmt.Fprintf(deps.Stdout, "%s option\n", e.Kind.Label())
		if e.Option.ReadOnly {
			fmt.Fprintln(deps.Stdout, "read-only")
		}
		fmt.Fprint(deps.Stdout, optdoc.FormatEntry(e))
	}
	return nil
}
