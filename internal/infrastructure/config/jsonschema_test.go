package config

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_UsesTOMLNames(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc struct {
		Title      string                     `json:"title"`
		Properties map[string]json.RawMessage `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "Pinboard Configuration", doc.Title)
	for _, key := range []string{"database", "logging", "browser", "refresh", "retry", "search", "organize", "appearance"} {
		assert.Contains(t, doc.Properties, key)
	}
	assert.Contains(t, string(doc.Properties["refresh"]), "timeout_ms")
}

func TestWriteSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), schemaName)
	require.NoError(t, WriteSchemaFile(path))
	assert.FileExists(t, path)
}
