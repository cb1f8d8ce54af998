package source

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatOf("data.yaml"))
	assert.Equal(t, FormatYAML, FormatOf("DATA.YML"))
	assert.Equal(t, FormatJSON, FormatOf("data.json"))
	assert.Equal(t, FormatJSON, FormatOf("data"))
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"json": FormatJSON, "YAML": FormatYAML, "yml": FormatYAML} {
		got, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseFormat("toml")
	require.Error(t, err)
}

func TestDecodeJSON_KeepsNumbers(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"range":[100, 2.5], "name":"x"}`))
	require.NoError(t, err)
	m := v.(map[string]any)
	assert.Equal(t, []any{json.Number("100"), json.Number("2.5")}, m["range"])
	assert.Equal(t, "x", m["name"])
}

func TestDecodeJSON_RejectsTrailingData(t *testing.T) {
	_, err := DecodeJSON([]byte(`{} {}`))
	require.Error(t, err)
	_, err = DecodeJSON([]byte(`{`))
	require.Error(t, err)
}

func TestDecodeYAML_Normalizes(t *testing.T) {
	v, err := DecodeYAML([]byte("objects:\n  - a: a\n    b: 1\n  - a: a\n"))
	require.NoError(t, err)
	m := v.(map[string]any)
	objs := m["objects"].([]any)
	require.Len(t, objs, 2)
	assert.Equal(t, map[string]any{"a": "a", "b": 1}, objs[0])
}

func TestDecodeYAML_NonStringKeysAreKept(t *testing.T) {
	v, err := DecodeYAML([]byte("name: x\n1: extra\ntrue: y\nnested:\n  2: z\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":   "x",
		"1":      "extra",
		"true":   "y",
		"nested": map[string]any{"2": "z"},
	}, v)
}

func TestDecodeYAML_Empty(t *testing.T) {
	v, err := DecodeYAML(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestNormalize(t *testing.T) {
	plain := map[string]any{"a": []any{"x", json.Number("1")}}
	got, err := Normalize(plain)
	require.NoError(t, err)
	assert.Equal(t, plain, got)

	type form struct {
		FirstName string   `json:"firstName"`
		Tags      []string `json:"tags"`
	}
	got, err = Normalize(form{FirstName: "foo", Tags: []string{"t"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"firstName": "foo", "tags": []any{"t"}}, got)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "d.yaml")
	require.NoError(t, os.WriteFile(p, []byte("firstName: foo\n"), 0o644))
	v, err := ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"firstName": "foo"}, v)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = ReadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}
