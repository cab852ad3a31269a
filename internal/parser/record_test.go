// internal/parser/record_test.go
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_HasContent(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected bool
	}{
		{name: "server code only", record: Record{ServerCode: "x"}, expected: true},
		{name: "readme only", record: Record{Readme: "# R"}, expected: true},
		{name: "manifest only", record: Record{Manifest: "{}"}, expected: true},
		{name: "empty record", record: Record{}, expected: false},
		{name: "whitespace everywhere", record: Record{ServerCode: "  ", Readme: "\n"}, expected: false},
		{
			name:     "dependencies alone do not count",
			record:   Record{Dependencies: map[string]string{"axios": "^1.0.0"}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.HasContent())
		})
	}
}

func TestValidateCandidate(t *testing.T) {
	tests := []struct {
		name        string
		candidate   map[string]interface{}
		expectError bool
	}{
		{
			name:      "minimal valid candidate",
			candidate: map[string]interface{}{"serverCode": "x"},
		},
		{
			name: "dependencies must map to strings",
			candidate: map[string]interface{}{
				"serverCode":   "x",
				"dependencies": map[string]interface{}{"axios": 1},
			},
			expectError: true,
		},
		{
			name:        "serverCode must be a string",
			candidate:   map[string]interface{}{"serverCode": 42},
			expectError: true,
		},
		{
			name:        "contentless candidate rejected",
			candidate:   map[string]interface{}{"dependencies": map[string]interface{}{"axios": "^1.0.0"}},
			expectError: true,
		},
		{
			name: "unknown fields tolerated",
			candidate: map[string]interface{}{
				"serverCode": "x",
				"confidence": 0.95,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCandidate(tt.candidate)
			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
