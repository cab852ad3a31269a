// internal/generator/python_test.go
package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-scaffold/internal/parser"
)

func TestPythonBuilder_Build(t *testing.T) {
	b := createBuilder(t, LanguagePython)
	rec := &parser.Record{
		ServerCode:   "print('hi')",
		Dependencies: map[string]string{"httpx": ">=0.27.0"},
	}

	st, err := b.Build(testRequest(LanguagePython), rec)
	require.NoError(t, err)

	entry := fileContent(t, st, "server.py")
	assert.Contains(t, entry, "# weather-server v1.0.0")
	assert.Contains(t, entry, "print('hi')")

	pyproject := fileContent(t, st, "pyproject.toml")
	assert.Contains(t, pyproject, `name = "weather-server"`)
	assert.Contains(t, pyproject, `"mcp>=1.2.0"`)
	assert.Contains(t, pyproject, `"httpx>=0.27.0"`)

	requirements := fileContent(t, st, "requirements.txt")
	assert.Contains(t, requirements, "mcp>=1.2.0")
	assert.Contains(t, requirements, "httpx>=0.27.0")
}

func TestPipRequirement(t *testing.T) {
	tests := []struct {
		name     string
		pkg      string
		version  string
		expected string
	}{
		{name: "constraint kept as is", pkg: "mcp", version: ">=1.2.0", expected: "mcp>=1.2.0"},
		{name: "bare version pinned", pkg: "httpx", version: "0.27.0", expected: "httpx==0.27.0"},
		{name: "empty version", pkg: "requests", version: "", expected: "requests"},
		{name: "compatible release operator", pkg: "pydantic", version: "~=2.0", expected: "pydantic~=2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pipRequirement(tt.pkg, tt.version))
		})
	}
}
