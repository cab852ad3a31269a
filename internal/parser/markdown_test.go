// internal/parser/markdown_test.go
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-scaffold/internal/common/errors"
	"mcp-scaffold/internal/common/logger"
	"mcp-scaffold/pkg/catalog"
)

// ==========================
// Test Helper Functions
// ==========================

func createMarkdownStrategy(t *testing.T, language string) *MarkdownStrategy {
	return NewMarkdownStrategy(language, catalog.Default(), logger.NewTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestMarkdownStrategy_Parse_Success(t *testing.T) {
	tests := []struct {
		name           string
		language       string
		raw            string
		validateRecord func(t *testing.T, rec *Record)
	}{
		{
			name:     "tagged code block with documented sections",
			language: "typescript",
			raw: "## Overview\n\nA weather server.\n\n## Installation\n\nnpm install\n\n" +
				"## Usage\n\nnpm start\n\n```typescript\nconst s = new Server();\n```\n",
			validateRecord: func(t *testing.T, rec *Record) {
				assert.Equal(t, "const s = new Server();\n", rec.ServerCode)
				assert.Contains(t, rec.Readme, "A weather server.")
				assert.Contains(t, rec.InstallInstructions, "npm install")
				assert.Contains(t, rec.UsageExample, "npm start")
			},
		},
		{
			name:     "server code section wins over language blocks",
			language: "typescript",
			raw: "## Server Code\n\n```typescript\nconst fromSection = 1;\n```\n\n" +
				"```typescript\nconst stray = 2;\n```\n",
			validateRecord: func(t *testing.T, rec *Record) {
				assert.Equal(t, "const fromSection = 1;\n", rec.ServerCode)
			},
		},
		{
			name:     "alias fence tag resolves for the language",
			language: "typescript",
			raw:      "Some prose.\n\n```ts\nconst s = 1;\n```\n",
			validateRecord: func(t *testing.T, rec *Record) {
				assert.Equal(t, "const s = 1;\n", rec.ServerCode)
			},
		},
		{
			name:     "untagged block used when no tagged block matches",
			language: "python",
			raw:      "## Notes\n\nDetails.\n\n```\nprint('hi')\n```\n",
			validateRecord: func(t *testing.T, rec *Record) {
				assert.Equal(t, "print('hi')\n", rec.ServerCode)
			},
		},
		{
			name:     "loose code line fallback without any fences",
			language: "python",
			raw: "## Overview\n\nText only.\n\n" +
				"import asyncio  # bootstraps the event loop used by the stdio transport layer\nrun()\n",
			validateRecord: func(t *testing.T, rec *Record) {
				assert.Contains(t, rec.ServerCode, "import asyncio")
				assert.Contains(t, rec.ServerCode, "run()")
			},
		},
		{
			name:     "missing documentation filled with defaults",
			language: "python",
			raw:      "```python\nprint('hi')\n```\n",
			validateRecord: func(t *testing.T, rec *Record) {
				assert.Equal(t, "print('hi')\n", rec.ServerCode)
				assert.NotEmpty(t, rec.Readme)
				assert.Equal(t, "pip install -r requirements.txt", rec.InstallInstructions)
				assert.Equal(t, "python server.py", rec.UsageExample)
			},
		},
		{
			name:     "whole text as last resort",
			language: "java",
			raw:      "## Overview\n\nNothing that looks like code here.\n",
			validateRecord: func(t *testing.T, rec *Record) {
				assert.Contains(t, rec.ServerCode, "Nothing that looks like code here.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := createMarkdownStrategy(t, tt.language).Parse(tt.raw)
			require.NoError(t, err)
			require.NotNil(t, rec)
			tt.validateRecord(t, rec)
		})
	}
}

func TestMarkdownStrategy_Parse_EmptyInput(t *testing.T) {
	rec, err := createMarkdownStrategy(t, "typescript").Parse("   \n  ")
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.Equal(t, errors.ErrCodeParseFailed, errors.CodeOf(err))
}

// ==========================
// Section Extraction Tests
// ==========================

func TestExtractSections(t *testing.T) {
	text := "## Overview\n\nfirst body\n\n## Usage Example\n\nsecond body\n\n## Overview\n\nduplicate\n"
	sections := extractSections(text)

	assert.Equal(t, "first body", sections["overview"])
	assert.Equal(t, "second body", sections["usage-example"])
	// First occurrence of a duplicated header wins.
	assert.NotContains(t, sections["overview"], "duplicate")
}

func TestExtractCodeBlocks(t *testing.T) {
	text := "```python\nfirst\n```\n\n```python\nsecond\n```\n\n```\nuntagged\n```\n"
	blocks := extractCodeBlocks(text)

	assert.Equal(t, "first\n", blocks["python"])
	assert.Equal(t, "untagged\n", blocks["unknown"])
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "usage-example", normalizeHeader("  Usage   Example "))
	assert.Equal(t, "installation", normalizeHeader("Installation"))
}
