package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument_JSON(t *testing.T) {
	raw, err := decodeDocument([]byte(`{"imports":{"lib":"/lib.js"}}`), "json")
	require.NoError(t, err)

	obj, ok := raw.(map[string]any)
	require.True(t, ok)
	imports, ok := obj["imports"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/lib.js", imports["lib"])
}

func TestDecodeDocument_YAML(t *testing.T) {
	doc := []byte("imports:\n  lib: /lib.js\nscopes:\n  /app/:\n    lib: /app/lib.js\n")

	raw, err := decodeDocument(doc, "yaml")
	require.NoError(t, err)

	obj, ok := raw.(map[string]any)
	require.True(t, ok, "normalized YAML must be map[string]any, got %T", raw)
	scopes, ok := obj["scopes"].(map[string]any)
	require.True(t, ok)
	body, ok := scopes["/app/"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/app/lib.js", body["lib"])
}

func TestDecodeDocument_UnknownFormat(t *testing.T) {
	_, err := decodeDocument([]byte(`{}`), "toml")
	assert.Error(t, err)
}

func TestDecodeDocument_BadInput(t *testing.T) {
	_, err := decodeDocument([]byte(`{"imports":`), "json")
	assert.Error(t, err)

	_, err = decodeDocument([]byte(":\n:\n"), "yaml")
	assert.Error(t, err)
}

func TestNormalizeYAML(t *testing.T) {
	in := map[any]any{
		"imports": map[any]any{"lib": "/lib.js"},
		3:         "numeric key",
	}

	out, ok := normalizeYAML(in).(map[string]any)
	require.True(t, ok)

	imports, ok := out["imports"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/lib.js", imports["lib"])
	assert.Equal(t, "numeric key", out["3"])
}

func TestDetectFormat(t *testing.T) {
	orig := flagFormat
	defer func() { flagFormat = orig }()

	flagFormat = "auto"
	assert.Equal(t, "yaml", detectFormat("map.yaml"))
	assert.Equal(t, "yaml", detectFormat("map.yml"))
	assert.Equal(t, "json", detectFormat("map.json"))
	assert.Equal(t, "json", detectFormat("-"))

	flagFormat = "yaml"
	assert.Equal(t, "yaml", detectFormat("map.json"))
}
