package json_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/optdoc"
	optjson "github.com/fwojciec/optdoc/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("decodes a bare string description", func(t *testing.T) {
		t.Parallel()

		opts, err := optjson.Parse([]byte(`{
			"services.foo.enable": {
				"description": "Whether to enable foo.",
				"readOnly": false,
				"loc": ["services", "foo", "enable"],
				"type": "boolean"
			}
		}`))

		require.NoError(t, err)
		require.Len(t, opts, 1)
		assert.Equal(t, optdoc.OptionDocumentation{
			Description: "Whether to enable foo.",
			Location:    []string{"services", "foo", "enable"},
			Type:        "boolean",
		}, opts["services.foo.enable"])
	})

	t.Run("flattens a structured description to its text", func(t *testing.T) {
		t.Parallel()

		opts, err := optjson.Parse([]byte(`{
			"programs.git.enable": {
				"description": {"_type": "mdDoc", "text": "Whether to enable Git."},
				"readOnly": true,
				"loc": ["programs", "git", "enable"],
				"type": "boolean"
			}
		}`))

		require.NoError(t, err)
		opt := opts["programs.git.enable"]
		assert.Equal(t, "Whether to enable Git.", opt.Description)
		assert.True(t, opt.ReadOnly)
	})

	t.Run("accepts a structured description without a format", func(t *testing.T) {
		t.Parallel()

		opts, err := optjson.Parse([]byte(`{"a": {"description": {"text": "D"}}}`))

		require.NoError(t, err)
		assert.Equal(t, "D", opts["a"].Description)
	})

	t.Run("defaults every missing field", func(t *testing.T) {
		t.Parallel()

		opts, err := optjson.Parse([]byte(`{"a": {}}`))

		require.NoError(t, err)
		assert.Equal(t, optdoc.OptionDocumentation{
			Description: "",
			ReadOnly:    false,
			Location:    []string{},
			Type:        "",
		}, opts["a"])
	})

	t.Run("tolerates malformed descriptions", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			desc string
		}{
			{name: "number", desc: `42`},
			{name: "array", desc: `["a", "b"]`},
			{name: "null", desc: `null`},
			{name: "object with wrong text type", desc: `{"text": 5, "_type": "mdDoc"}`},
			{name: "empty object", desc: `{}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				data := fmt.Sprintf(`{"a": {"description": %s, "type": "string"}}`, tt.desc)

				opts, err := optjson.Parse([]byte(data))

				require.NoError(t, err)
				assert.Empty(t, opts["a"].Description)
				assert.Equal(t, "string", opts["a"].Type)
			})
		}
	})

	t.Run("produces one record per entry", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("{")
		for i := range 50 {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, `"services.s%d.enable": {"loc": ["services", "s%d", "enable"]}`, i, i)
		}
		b.WriteString("}")

		opts, err := optjson.Parse([]byte(b.String()))

		require.NoError(t, err)
		assert.Len(t, opts, 50)
		for name, opt := range opts {
			assert.Equal(t, name, opt.Name())
		}
	})

	t.Run("accepts an empty object", func(t *testing.T) {
		t.Parallel()

		opts, err := optjson.Parse([]byte(`{}`))

		require.NoError(t, err)
		assert.Empty(t, opts)
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			data string
		}{
			{name: "truncated", data: `{"a": {"type": "boolean"`},
			{name: "not json", data: `services.foo.enable`},
			{name: "array", data: `[{"type": "boolean"}]`},
			{name: "string", data: `"options"`},
			{name: "null", data: `null`},
			{name: "record is not an object", data: `{"a": 5}`},
			{name: "readOnly has wrong type", data: `{"a": {"readOnly": "yes"}}`},
			{name: "loc has wrong type", data: `{"a": {"loc": "services.foo"}}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				opts, err := optjson.Parse([]byte(tt.data))

				assert.Nil(t, opts)
				assert.Equal(t, optdoc.EPARSE, optdoc.ErrorCode(err))
			})
		}
	})
}

func TestLoader_LoadOptions(t *testing.T) {
	t.Parallel()

	t.Run("reads and normalizes a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "options.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"services.foo.enable": {"type": "boolean", "loc": ["services", "foo", "enable"]}
		}`), 0644))

		opts, err := optjson.NewLoader().LoadOptions(path)

		require.NoError(t, err)
		require.Contains(t, opts, "services.foo.enable")
		assert.Equal(t, "boolean", opts["services.foo.enable"].Type)
	})

	t.Run("returns EIO for a missing file", func(t *testing.T) {
		t.Parallel()

		opts, err := optjson.NewLoader().LoadOptions(filepath.Join(t.TempDir(), "missing.json"))

		assert.Nil(t, opts)
		assert.Equal(t, optdoc.EIO, optdoc.ErrorCode(err))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("returns EPARSE for a malformed file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "options.json")
		require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

		_, err := optjson.NewLoader().LoadOptions(path)

		assert.Equal(t, optdoc.EPARSE, optdoc.ErrorCode(err))
	})
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	t.Run("writes the canonical field names", func(t *testing.T) {
		t.Parallel()

		data, err := optjson.Marshal(map[string]optdoc.OptionDocumentation{
			"services.foo.enable": {
				Description: "Whether to enable <foo>.",
				ReadOnly:    true,
				Location:    []string{"services", "foo", "enable"},
				Type:        "boolean",
			},
		})

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"services.foo.enable": {
				"description": "Whether to enable <foo>.",
				"readOnly": true,
				"loc": ["services", "foo", "enable"],
				"type": "boolean"
			}
		}`, string(data))
		assert.Contains(t, string(data), "<foo>")
	})

	t.Run("writes an empty object for nil", func(t *testing.T) {
		t.Parallel()

		data, err := optjson.Marshal(nil)

		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(data))
	})

	t.Run("round-trips through Unmarshal", func(t *testing.T) {
		t.Parallel()

		opts, err := optjson.Parse([]byte(`{
			"a.b": {"description": {"text": "D", "_type": "T"}, "loc": ["a", "b"], "type": "string"},
			"c": {}
		}`))
		require.NoError(t, err)

		data, err := optjson.Marshal(opts)
		require.NoError(t, err)

		got, err := optjson.Unmarshal(data)

		require.NoError(t, err)
		assert.Equal(t, opts, got)
	})
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("rejects a structured description", func(t *testing.T) {
		t.Parallel()

		_, err := optjson.Unmarshal([]byte(`{"a": {"description": {"text": "D"}}}`))

		assert.Equal(t, optdoc.EPARSE, optdoc.ErrorCode(err))
	})

	t.Run("rejects null", func(t *testing.T) {
		t.Parallel()

		_, err := optjson.Unmarshal([]byte(`null`))

		assert.Equal(t, optdoc.EPARSE, optdoc.ErrorCode(err))
	})
}
