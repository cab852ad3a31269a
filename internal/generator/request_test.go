// internal/generator/request_test.go
package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-scaffold/internal/common/errors"
)

// ==========================
// Slug Tests
// ==========================

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "spaces and punctuation", input: "Weather Tools!", expected: "weather-tools"},
		{name: "already a slug", input: "weather-server", expected: "weather-server"},
		{name: "mixed case", input: "MyServer", expected: "myserver"},
		{name: "leading and trailing junk", input: "  --My Server--  ", expected: "my-server"},
		{name: "consecutive separators collapse", input: "a__b  c", expected: "a-b-c"},
		{name: "digits preserved", input: "Server 2000", expected: "server-2000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestEnsureServerSuffix(t *testing.T) {
	assert.Equal(t, "weather-server", EnsureServerSuffix("weather-server"))
	assert.Equal(t, "weather-tools-server", EnsureServerSuffix("weather-tools"))
	assert.Equal(t, "myserver", EnsureServerSuffix("myserver"))
}

// ==========================
// Parse Tests
// ==========================

func TestParseLanguage(t *testing.T) {
	for _, valid := range []string{"typescript", "Python", " JAVA "} {
		_, err := ParseLanguage(valid)
		assert.NoError(t, err, valid)
	}
	_, err := ParseLanguage("rust")
	assert.Error(t, err)
}

func TestParseTransport(t *testing.T) {
	for _, valid := range []string{"stdio", "SSE"} {
		_, err := ParseTransport(valid)
		assert.NoError(t, err, valid)
	}
	_, err := ParseTransport("websocket")
	assert.Error(t, err)
}

// ==========================
// Validation Tests
// ==========================

func validRequest() *Request {
	return &Request{
		Description: "A weather server",
		Language:    LanguageTypeScript,
		Transport:   TransportStdio,
		OutputDir:   "/tmp/servers",
		ProjectName: "weather-server",
	}
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(r *Request)
		expectError bool
	}{
		{name: "valid request", mutate: func(r *Request) {}},
		{name: "empty description", mutate: func(r *Request) { r.Description = " " }, expectError: true},
		{name: "unknown language", mutate: func(r *Request) { r.Language = "rust" }, expectError: true},
		{name: "unknown transport", mutate: func(r *Request) { r.Transport = "ws" }, expectError: true},
		{name: "relative output dir", mutate: func(r *Request) { r.OutputDir = "servers" }, expectError: true},
		{name: "project name with spaces", mutate: func(r *Request) { r.ProjectName = "my server" }, expectError: true},
		{name: "project name with uppercase", mutate: func(r *Request) { r.ProjectName = "MyServer" }, expectError: true},
		{name: "empty project name", mutate: func(r *Request) { r.ProjectName = "" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			err := req.Validate()
			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
