package generator

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"mcp-scaffold/internal/common/errors"
)

// Language is one of the supported target languages.
type Language string

const (
	LanguageTypeScript Language = "typescript"
	LanguagePython     Language = "python"
	LanguageJava       Language = "java"
)

func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageTypeScript:
		return LanguageTypeScript, nil
	case LanguagePython:
		return LanguagePython, nil
	case LanguageJava:
		return LanguageJava, nil
	default:
		return "", fmt.Errorf("unsupported language %q (expected typescript, python or java)", s)
	}
}

// Transport is how the generated server talks to its client.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportSSE   Transport = "sse"
)

func ParseTransport(s string) (Transport, error) {
	switch Transport(strings.ToLower(strings.TrimSpace(s))) {
	case TransportStdio:
		return TransportStdio, nil
	case TransportSSE:
		return TransportSSE, nil
	default:
		return "", fmt.Errorf("unsupported transport %q (expected stdio or sse)", s)
	}
}

var slugRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// Request describes one generation attempt.
type Request struct {
	Description string
	Language    Language
	Transport   Transport
	OutputDir   string
	ProjectName string
}

func (r *Request) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return errors.NewInvalidRequestError("description must not be empty")
	}
	if _, err := ParseLanguage(string(r.Language)); err != nil {
		return errors.NewInvalidRequestError(err.Error())
	}
	if _, err := ParseTransport(string(r.Transport)); err != nil {
		return errors.NewInvalidRequestError(err.Error())
	}
	if !filepath.IsAbs(r.OutputDir) {
		return errors.NewInvalidRequestError(fmt.Sprintf("output directory %q must be absolute", r.OutputDir))
	}
	if !slugRe.MatchString(r.ProjectName) {
		return errors.NewInvalidRequestError(fmt.Sprintf("project name %q must match [a-z0-9-]+", r.ProjectName))
	}
	return nil
}

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a free-form name into a filesystem-safe slug:
// "Weather Tools!" becomes "weather-tools".
func Slugify(name string) string {
	slug := nonSlugRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// EnsureServerSuffix appends "-server" to names that do not already end with
// it: "weather-server" is unchanged, "weather-tools" becomes
// "weather-tools-server".
func EnsureServerSuffix(name string) string {
	if strings.HasSuffix(name, "server") {
		return name
	}
	return name + "-server"
}
