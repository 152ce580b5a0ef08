package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/optdoc"
	"github.com/fwojciec/optdoc/env"
	optfsnotify "github.com/fwojciec/optdoc/fsnotify"
	"github.com/fwojciec/optdoc/inmem"
	optjson "github.com/fwojciec/optdoc/json"
	optslog "github.com/fwojciec/optdoc/slog"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Resolver locates the documentation file of each kind.
	Resolver optdoc.PathResolver

	// Loader reads documentation files.
	Loader optdoc.OptionLoader

	// NewWatcher creates the watcher used by the watch command.
	NewWatcher func(paths map[optdoc.SourceKind]string) (optdoc.SourceWatcher, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Resolver: env.NewResolver(),
		Loader:   optjson.NewLoader(),
		NewWatcher: func(paths map[optdoc.SourceKind]string) (optdoc.SourceWatcher, error) {
			w, err := optfsnotify.NewWatcher(paths)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		NewWatcher: m.NewWatcher,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("optdoc"),
		kong.Description("Search NixOS and Home Manager option documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'optdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	kinds, err := cli.Kinds()
	if err != nil {
		return err
	}

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	deps.Paths = make(map[optdoc.SourceKind]string, len(kinds))
	for _, kind := range kinds {
		path, err := m.Resolver.ResolvePath(kind)
		if err != nil {
			if name, verr := env.Var(kind); verr == nil {
				fmt.Fprintf(stderr, "Hint: set %s to the options.json produced by the %s documentation build\n", name, kind.Label())
			}
			return err
		}
		deps.Paths[kind] = path

		var src optdoc.DocSource = inmem.NewStore(kind, m.Resolver, m.Loader)
		if logger != nil {
			src = optslog.NewLoggingDocSource(src, logger)
		}
		deps.Sources = append(deps.Sources, src)
	}

	if err := refreshSources(ctx, deps.Sources); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", optdoc.ErrorMessage(err))
		return err
	}

	return kongCtx.Run(deps)
}

// refreshSources loads every source concurrently. Each source is refreshed
// by exactly one goroutine.
func refreshSources(ctx context.Context, sources []optdoc.DocSource) error {
	g, _ := errgroup.WithContext(ctx)
	for _, src := range sources {
		g.Go(func() error {
			_, err := src.Refresh()
			return err
		})
	}
	return g.Wait()
}
