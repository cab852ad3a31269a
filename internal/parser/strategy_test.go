// internal/parser/strategy_test.go
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mcp-scaffold/internal/common/logger"
	"mcp-scaffold/pkg/catalog"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "fenced json block selects json",
			raw:      "prose\n```json\n{\"serverCode\": \"x\"}\n```\n",
			expected: "json",
		},
		{
			name:     "bare object selects json",
			raw:      `  {"serverCode": "x"}  `,
			expected: "json",
		},
		{
			name:     "markdown headers select markdown",
			raw:      "## Overview\n\nsome text\n",
			expected: "markdown",
		},
		{
			name:     "any code fence selects markdown",
			raw:      "text\n```python\nprint('hi')\n```\n",
			expected: "markdown",
		},
		{
			name:     "bare code selects plaintext",
			raw:      "const s = new Server();",
			expected: "plaintext",
		},
		{
			name:     "fenced json beats markdown headers",
			raw:      "## Result\n```json\n{\"serverCode\": \"x\"}\n```\n",
			expected: "json",
		},
		{
			name:     "empty input still selects plaintext",
			raw:      "",
			expected: "plaintext",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Select(tt.raw, "typescript", catalog.Default(), logger.NewTestLogger(t))
			assert.Equal(t, tt.expected, s.Name())
		})
	}
}
