package templex

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseData(t *testing.T) {
	t.Run("json with comments and trailing commas", func(t *testing.T) {
		raw := []byte(`{
			// the user
			"name": "Ann",
			"n": 3,
			"xs": [1, 2,],
		}`)

		data, err := ParseData(raw, DataFormatJSON)
		require.NoError(t, err)
		assert.Equal(t, "Ann", data["name"])
		assert.Equal(t, json.Number("3"), data["n"])

		out, err := MustNew().Render(context.Background(), "{{name}} {{n}} {{xs}}", data)
		require.NoError(t, err)
		assert.Equal(t, "Ann 3 [1, 2]", out)
	})

	t.Run("yaml", func(t *testing.T) {
		raw := []byte("user:\n  name: Bob\n  admin: true\nitems:\n  - a\n  - b\n")

		data, err := ParseData(raw, DataFormatYAML)
		require.NoError(t, err)

		v, err := NewContext(data).Resolve("user.name")
		require.NoError(t, err)
		assert.Equal(t, "Bob", v.String())

		v, err = NewContext(data).Resolve("items.1")
		require.NoError(t, err)
		assert.Equal(t, "b", v.String())
	})

	t.Run("empty input", func(t *testing.T) {
		data, err := ParseData([]byte("  \n"), DataFormatYAML)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("top level must be a mapping", func(t *testing.T) {
		_, err := ParseData([]byte(`[1, 2]`), DataFormatJSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgDataNotMapping)

		_, err = ParseData([]byte("- a\n"), DataFormatYAML)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgDataNotMapping)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseData([]byte(`{"a": `), DataFormatJSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgDataParseFailed)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := ParseData([]byte(`a`), "toml")
		require.Error(t, err)

		format, _ := ErrorMetadata(err, MetaKeyFormat)
		assert.Equal(t, "toml", format)
	})
}

func TestDataFormatForPath(t *testing.T) {
	assert.Equal(t, DataFormatYAML, DataFormatForPath("ctx.yaml"))
	assert.Equal(t, DataFormatYAML, DataFormatForPath("CTX.YML"))
	assert.Equal(t, DataFormatJSON, DataFormatForPath("ctx.jsonc"))
	assert.Equal(t, DataFormatJSON, DataFormatForPath("ctx.json"))
	assert.Equal(t, DataFormatJSON, DataFormatForPath("ctx"))
}

func TestLoadDataFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ctx.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\n"), 0o644))

	data, err := LoadDataFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file", data["name"])

	_, err = LoadDataFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgDataReadFailed)
}
