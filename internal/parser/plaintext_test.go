// internal/parser/plaintext_test.go
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-scaffold/internal/common/errors"
)

func TestPlainTextStrategy_Parse(t *testing.T) {
	tests := []struct {
		name        string
		language    string
		raw         string
		expectError bool
		expected    *Record
	}{
		{
			name:     "code taken verbatim with synthesized docs",
			language: "typescript",
			raw:      "  const s = new Server();\n  s.start();  ",
			expected: &Record{
				ServerCode:          "const s = new Server();\n  s.start();",
				Readme:              defaultReadme("typescript"),
				InstallInstructions: "npm install\nnpm run build",
				UsageExample:        "npm start",
			},
		},
		{
			name:     "python defaults",
			language: "python",
			raw:      "print('hi')",
			expected: &Record{
				ServerCode:          "print('hi')",
				Readme:              defaultReadme("python"),
				InstallInstructions: "pip install -r requirements.txt",
				UsageExample:        "python server.py",
			},
		},
		{
			name:        "empty input fails",
			language:    "java",
			raw:         "   \n ",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NewPlainTextStrategy(tt.language).Parse(tt.raw)
			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, errors.ErrCodeParseFailed, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rec)
		})
	}
}
