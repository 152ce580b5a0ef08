package main

import (
	"fmt"

	"github.com/fwojciec/optdoc"
	"golang.org/x/time/rate"
)

// Run executes the watch command. Each change to a watched file reloads the
// matching source, at most once per interval. Reload failures are reported
// and the previously loaded options stay in place.
func (c *WatchCmd) Run(deps *Dependencies) error {
	sources := make(map[optdoc.SourceKind]optdoc.DocSource, len(deps.Sources))
	for _, src := range deps.Sources {
		sources[src.Kind()] = src
	}

	watcher, err := deps.NewWatcher(deps.Paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", optdoc.ErrorMessage(err))
		return err
	}
	defer watcher.Close()

	limiter := rate.NewLimiter(rate.Every(c.Interval), 1)

	for _, src := range deps.Sources {
		fmt.Fprintf(deps.Stdout, "Watching %s options (%d loaded)\n", src.Kind().Label(), src.Len())
	}

	for {
		kind, err := watcher.Next(deps.Ctx)
		if err != nil {
			if deps.Ctx.Err() != nil {
				return nil
			}
			fmt.Fprintf(deps.Stderr, "error: %s\n", optdoc.ErrorMessage(err))
			return err
		}

		src, ok := sources[kind]
		if !ok {
			continue
		}

		if err := limiter.Wait(deps.Ctx); err != nil {
			if deps.Ctx.Err() != nil {
				return nil
			}
			return err
		}

		unchanged, err := src.Refresh()
		switch {
		case err != nil:
			fmt.Fprintf(deps.Stderr, "error: reload %s options: %s\n", kind.Label(), optdoc.ErrorMessage(err))
		case unchanged:
			fmt.Fprintf(deps.Stdout, "Reloaded %s options (%d, names unchanged)\n", kind.Label(), src.Len())
		default:
			fmt.Fprintf(deps.Stdout, "Reloaded %s options (%d, names changed)\n", kind.Label(), src.Len())
		}
	}
}
