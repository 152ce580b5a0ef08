package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/optdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Sources []optdoc.DocSource

	// Paths holds the resolved documentation file of each selected kind.
	Paths      map[optdoc.SourceKind]string
	NewWatcher func(paths map[optdoc.SourceKind]string) (optdoc.SourceWatcher, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Kind  string `short:"k" enum:"all,nixos,home-manager" default:"all" help:"Option set to use (all, nixos, home-manager)"`
	Debug bool   `help:"Log refreshes and searches to stderr"`

	Keys   KeysCmd   `cmd:"" help:"List all option names"`
	Search SearchCmd `cmd:"" help:"Search options by name"`
	Show   ShowCmd   `cmd:"" help:"Show a single option"`
	Export ExportCmd `cmd:"" help:"Export matching options as JSON"`
	Watch  WatchCmd  `cmd:"" help:"Reload option files when they change"`
}

// Kinds returns the source kinds selected by the --kind flag.
func (c *CLI) Kinds() ([]optdoc.SourceKind, error) {
	if c.Kind == "" || c.Kind == "all" {
		return optdoc.SourceKinds(), nil
	}
	kind, err := optdoc.ParseSourceKind(c.Kind)
	if err != nil {
		return nil, err
	}
	return []optdoc.SourceKind{kind}, nil
}

// KeysCmd is the "keys" subcommand.
type KeysCmd struct {
	Fingerprint bool `short:"f" help:"Print the option count and key set fingerprint of each source instead"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   string `arg:"" optional:"" help:"Option name prefix (case-insensitive)"`
	Liberal bool   `short:"l" help:"Match anywhere in the name instead of only the prefix"`
	Names   bool   `short:"n" help:"Print only option names"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name string `arg:"" help:"Full option name"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Query   string `arg:"" optional:"" help:"Option name prefix (case-insensitive)"`
	Liberal bool   `short:"l" help:"Match anywhere in the name instead of only the prefix"`
	Output  string `short:"o" type:"path" help:"Write to this file instead of stdout"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Interval time.Duration `short:"i" default:"1s" help:"Minimum time between reloads"`
}
