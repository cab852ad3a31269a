package parser

import (
	"regexp"
	"strings"

	"mcp-scaffold/internal/common/logger"
	"mcp-scaffold/pkg/catalog"
)

// Strategy is one algorithm for turning a raw response into a Record. Parse
// returns a PARSE_FAILED error when no usable content can be recovered.
type Strategy interface {
	Name() string
	Parse(raw string) (*Record, error)
}

var (
	fencedJSONRe     = regexp.MustCompile("(?s)```json\\s*\\n(.*?)```")
	markdownHeaderRe = regexp.MustCompile(`(?m)^##\s+\S`)
	fencedBlockRe    = regexp.MustCompile("(?s)```([a-zA-Z0-9+#._-]*)[^\n]*\n(.*?)```")
)

// Select inspects the raw text and commits to exactly one extraction strategy
// before parsing begins. The decision is a deterministic single-pass textual
// heuristic, in priority order: structured JSON, markdown/mixed, plain text.
func Select(raw, language string, cat *catalog.LanguageCatalog, log logger.Logger) Strategy {
	trimmed := strings.TrimSpace(raw)

	if fencedJSONRe.MatchString(raw) ||
		(strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}")) {
		return NewJSONStrategy(log)
	}
	if markdownHeaderRe.MatchString(raw) || strings.Contains(raw, "```") {
		return NewMarkdownStrategy(language, cat, log)
	}
	return NewPlainTextStrategy(language)
}
