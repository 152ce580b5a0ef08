package optdoc

import (
	"slices"
	"strings"
)

// OptionDocumentation is the canonical documentation record for a single
// configuration option, independent of which schema it was decoded from.
type OptionDocumentation struct {
	Description string   `json:"description"`
	ReadOnly    bool     `json:"readOnly"`
	Location    []string `json:"loc"`
	Type        string   `json:"type"`
}

// Name returns the dotted option name derived from the location.
func (o OptionDocumentation) Name() string {
	return strings.Join(o.Location, ".")
}

// Clone returns a copy that shares no memory with o.
func (o OptionDocumentation) Clone() OptionDocumentation {
	o.Location = slices.Clone(o.Location)
	return o
}

// SourceKind identifies the option schema a documentation set was built from.
type SourceKind string

// SourceKind constants.
const (
	SourceNixOS       SourceKind = "nixos"
	SourceHomeManager SourceKind = "home-manager"
)

// SourceKinds returns every known source kind in display order.
func SourceKinds() []SourceKind {
	return []SourceKind{SourceNixOS, SourceHomeManager}
}

// ParseSourceKind returns the SourceKind named by s.
// Returns EINVALID for unknown names.
func ParseSourceKind(s string) (SourceKind, error) {
	for _, kind := range SourceKinds() {
		if string(kind) == s {
			return kind, nil
		}
	}
	return "", Errorf(EINVALID, "unknown source kind %q", s)
}

// Label returns a human-readable name for the source kind.
func (k SourceKind) Label() string {
	switch k {
	case SourceNixOS:
		return "NixOS"
	case SourceHomeManager:
		return "Home Manager"
	default:
		return string(k)
	}
}

// DocEntry is a search result: a copy of a record tagged with the kind of
// the store that holds it.
type DocEntry struct {
	Kind   SourceKind          `json:"kind"`
	Option OptionDocumentation `json:"option"`
}
