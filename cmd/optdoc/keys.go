package main

import (
	"fmt"
	"slices"
)

// Run executes the keys command.
func (c *KeysCmd) Run(deps *Dependencies) error {
	if c.Fingerprint {
		for _, src := range deps.Sources {
			fmt.Fprintf(deps.Stdout, "%s  %d  %016x\n", src.Kind(), src.Len(), src.Fingerprint())
		}
		return nil
	}

	var keys []string
	for _, src := range deps.Sources {
		keys = append(keys, src.AllKeys()...)
	}
	slices.Sort(keys)
	keys = slices.Compact(keys)

	for _, key := range keys {
		fmt.Fprintln(deps.Stdout, key)
	}
	return nil
}
