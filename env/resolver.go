// Package env resolves documentation file paths from the process environment.
package env

import (
	"os"

	"github.com/fwojciec/optdoc"
)

// Environment variables naming the JSON documentation file of each kind.
const (
	NixOSPathVar       = "NIXOS_JSON_OPTIONS_PATH"
	HomeManagerPathVar = "HOME_MANAGER_JSON_OPTIONS_PATH"
)

// Var returns the environment variable holding the file path for kind.
// Returns EINVALID for unknown kinds.
func Var(kind optdoc.SourceKind) (string, error) {
	switch kind {
	case optdoc.SourceNixOS:
		return NixOSPathVar, nil
	case optdoc.SourceHomeManager:
		return HomeManagerPathVar, nil
	default:
		return "", optdoc.Errorf(optdoc.EINVALID, "unknown source kind %q", kind)
	}
}

// Ensure Resolver implements optdoc.PathResolver.
var _ optdoc.PathResolver = (*Resolver)(nil)

// Resolver implements optdoc.PathResolver by reading environment variables.
type Resolver struct {
	// LookupEnv reads a variable. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// NewResolver creates a Resolver backed by the process environment.
func NewResolver() *Resolver {
	return &Resolver{LookupEnv: os.LookupEnv}
}

// ResolvePath returns the value of the variable for kind.
// An unset or empty variable is EINVALID.
func (r *Resolver) ResolvePath(kind optdoc.SourceKind) (string, error) {
	name, err := Var(kind)
	if err != nil {
		return "", err
	}

	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	path, ok := lookup(name)
	if !ok || path == "" {
		return "", optdoc.Errorf(optdoc.EINVALID, "%s is not set", name)
	}
	return path, nil
}

// Ensure Static implements optdoc.PathResolver.
var _ optdoc.PathResolver = Static(nil)

// Static resolves paths from a fixed table.
type Static map[optdoc.SourceKind]string

// ResolvePath returns the configured path for kind.
func (s Static) ResolvePath(kind optdoc.SourceKind) (string, error) {
	path, ok := s[kind]
	if !ok || path == "" {
		return "", optdoc.Errorf(optdoc.EINVALID, "no documentation path configured for %s", kind.Label())
	}
	return path, nil
}
