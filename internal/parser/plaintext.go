package parser

import (
	"strings"

	"mcp-scaffold/internal/common/errors"
)

// PlainTextStrategy treats the entire trimmed input as server code verbatim
// and synthesizes the auxiliary fields. It fails only on empty input.
type PlainTextStrategy struct {
	language string
}

func NewPlainTextStrategy(language string) *PlainTextStrategy {
	return &PlainTextStrategy{language: language}
}

func (s *PlainTextStrategy) Name() string { return "plaintext" }

func (s *PlainTextStrategy) Parse(raw string) (*Record, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errors.NewParseFailedError(s.Name(), "response is empty")
	}

	return &Record{
		ServerCode:          trimmed,
		Readme:              defaultReadme(s.language),
		InstallInstructions: defaultInstallInstructions(s.language),
		UsageExample:        defaultUsageExample(s.language),
	}, nil
}
