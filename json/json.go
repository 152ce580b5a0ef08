// Package json decodes the option documentation dumps written by the NixOS
// and Home Manager documentation builds, and encodes the canonical export
// shape.
package json

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/fwojciec/optdoc"
)

// Ensure Loader implements optdoc.OptionLoader at compile time.
var _ optdoc.OptionLoader = (*Loader)(nil)

// Loader implements optdoc.OptionLoader by reading a JSON file from disk.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadOptions reads the file at path and normalizes its records.
func (l *Loader) LoadOptions(path string) (map[string]optdoc.OptionDocumentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, optdoc.Errorf(optdoc.EIO, "read options file: %w", err)
	}
	return Parse(data)
}

// description is the documentation text of an option. The builds emit it
// either as a bare string or as {"text": ..., "_type": ...}.
type description struct {
	Text   string
	Format string
}

// UnmarshalJSON accepts a string or an object. Any other value, or an
// object that does not decode, yields an empty description rather than
// an error.
func (d *description) UnmarshalJSON(data []byte) error {
	*d = description{}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		d.Text = text
		return nil
	}

	var v struct {
		Text   string `json:"text"`
		Format string `json:"_type"`
	}
	if err := json.Unmarshal(data, &v); err == nil {
		d.Text = v.Text
		d.Format = v.Format
	}
	return nil
}

// rawOption is a single record as written by the documentation builds.
type rawOption struct {
	Description description `json:"description"`
	ReadOnly    bool        `json:"readOnly"`
	Location    []string    `json:"loc"`
	Type        string      `json:"type"`
}

func (r rawOption) canonical() optdoc.OptionDocumentation {
	loc := r.Location
	if loc == nil {
		loc = []string{}
	}
	return optdoc.OptionDocumentation{
		Description: r.Description.Text,
		ReadOnly:    r.ReadOnly,
		Location:    loc,
		Type:        r.Type,
	}
}

// Parse normalizes a JSON object mapping option names to raw records.
// Missing fields default to their zero values. Returns EPARSE if data is not
// a JSON object of records; no partial result is returned.
func Parse(data []byte) (map[string]optdoc.OptionDocumentation, error) {
	var raw map[string]rawOption
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, optdoc.Errorf(optdoc.EPARSE, "decode options: %w", err)
	}
	if raw == nil {
		return nil, optdoc.Errorf(optdoc.EPARSE, "decode options: top-level value must be an object")
	}

	opts := make(map[string]optdoc.OptionDocumentation, len(raw))
	for name, r := range raw {
		opts[name] = r.canonical()
	}
	return opts, nil
}

// Marshal encodes options in the canonical export shape, keyed by name.
// Keys are written in sorted order.
func Marshal(opts map[string]optdoc.OptionDocumentation) ([]byte, error) {
	if opts == nil {
		opts = map[string]optdoc.OptionDocumentation{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(opts); err != nil {
		return nil, optdoc.Errorf(optdoc.EINTERNAL, "encode options: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes options written by Marshal.
// Returns EPARSE if data is not a JSON object of canonical records.
func Unmarshal(data []byte) (map[string]optdoc.OptionDocumentation, error) {
	var opts map[string]optdoc.OptionDocumentation
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, optdoc.Errorf(optdoc.EPARSE, "decode exported options: %w", err)
	}
	if opts == nil {
		return nil, optdoc.Errorf(optdoc.EPARSE, "decode exported options: top-level value must be an object")
	}
	for name, opt := range opts {
		if opt.Location == nil {
			opt.Location = []string{}
			opts[name] = opt
		}
	}
	return opts, nil
}
