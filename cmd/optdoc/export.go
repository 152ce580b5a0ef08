package main

import (
	"fmt"

	"github.com/fwojciec/optdoc"
	"github.com/fwojciec/optdoc/fs"
	optjson "github.com/fwojciec/optdoc/json"
)

// Run executes the export command.
// When an option name exists in several sources, the first source wins.
func (c *ExportCmd) Run(deps *Dependencies) error {
	opts := make(map[string]optdoc.OptionDocumentation)
	for _, e := range searchSources(deps.Sources, c.Query, c.Liberal) {
		name := e.Option.Name()
		if _, ok := opts[name]; !ok {
			opts[name] = e.Option
		}
	}

	data, err := optjson.Marshal(opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optdoc.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		_, err = deps.Stdout.Write(data)
		return err
	}

	f := fs.NewExportFile(c.Output)
	if err := f.Write(data); err != nil {
		_ = f.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", optdoc.ErrorMessage(err))
		return err
	}
	if err := f.Commit(); err != nil {
		_ = f.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", optdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d options to %s\n", len(opts), c.Output)
	return nil
}
