// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistryFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templates.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRegistry_Valid(t *testing.T) {
	path := writeRegistryFile(t, `{
		"version": "1.0",
		"lastUpdated": "2025-08-01",
		"templates": [
			{
				"id": "KASH001",
				"displayName": "Kashmir Valley Escape",
				"keywords": ["kashmir", "srinagar"],
				"rawText": "name,days\nKashmir,3"
			}
		]
	}`)

	reg, err := LoadRegistry(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0", reg.Version)
	require.Len(t, reg.Templates, 1)
	assert.Equal(t, "KASH001", reg.Templates[0].ID)
	assert.Equal(t, []string{"kashmir", "srinagar"}, reg.Templates[0].Keywords)
	assert.NotEmpty(t, reg.Templates[0].RawText)
}

func TestLoadRegistry_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing version",
			content: `{"templates": []}`,
		},
		{
			name: "bad template id",
			content: `{
				"version": "1.0",
				"templates": [
					{"id": "lowercase1", "displayName": "X", "rawText": "x"}
				]
			}`,
		},
		{
			name: "missing raw text",
			content: `{
				"version": "1.0",
				"templates": [
					{"id": "KASH001", "displayName": "X"}
				]
			}`,
		},
		{
			name: "unknown field",
			content: `{
				"version": "1.0",
				"templates": [],
				"extra": true
			}`,
		},
		{
			name:    "not json at all",
			content: `version: 1.0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRegistryFile(t, tt.content)
			_, err := LoadRegistry(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
