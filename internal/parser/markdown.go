package parser

import (
	"regexp"
	"strings"

	"mcp-scaffold/internal/common/errors"
	"mcp-scaffold/internal/common/logger"
	"mcp-scaffold/pkg/catalog"
)

// Header aliases: several common section names map to the same record field.
var (
	readmeAliases  = []string{"readme", "overview", "about", "description"}
	installAliases = []string{"installation", "install", "setup", "getting-started"}
	usageAliases   = []string{"usage", "usage-example", "example", "examples", "quick-start"}
	serverAliases  = []string{"server-code", "code", "implementation", "server"}
)

// looseCodeRe matches a line beginning with an import/definition keyword
// followed by at least 50 characters. Used as the last code-detection fallback.
var looseCodeRe = regexp.MustCompile(`(?m)^(?:import|from|def|class|function|const|export|public|package)\b.{50,}`)

var sectionHeaderRe = regexp.MustCompile(`(?m)^##\s+(.+)$`)

// MarkdownStrategy recovers a Record from a mixed markdown response: fenced
// code blocks keyed by language tag plus second-level header sections. It never
// reports failure once any non-blank text was supplied; missing documentation
// fields are synthesized with generic boilerplate.
type MarkdownStrategy struct {
	language string
	catalog  *catalog.LanguageCatalog
	logger   logger.Logger
}

func NewMarkdownStrategy(language string, cat *catalog.LanguageCatalog, log logger.Logger) *MarkdownStrategy {
	return &MarkdownStrategy{language: language, catalog: cat, logger: log}
}

func (s *MarkdownStrategy) Name() string { return "markdown" }

func (s *MarkdownStrategy) Parse(raw string) (*Record, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.NewParseFailedError(s.Name(), "response is empty")
	}

	blocks := extractCodeBlocks(raw)
	sections := extractSections(raw)

	rec := &Record{
		ServerCode:          s.resolveServerCode(raw, blocks, sections),
		Readme:              firstSection(sections, readmeAliases),
		InstallInstructions: firstSection(sections, installAliases),
		UsageExample:        firstSection(sections, usageAliases),
	}

	// Documentation gaps are filled rather than left absent.
	if strings.TrimSpace(rec.Readme) == "" {
		rec.Readme = defaultReadme(s.language)
	}
	if strings.TrimSpace(rec.InstallInstructions) == "" {
		rec.InstallInstructions = defaultInstallInstructions(s.language)
	}
	if strings.TrimSpace(rec.UsageExample) == "" {
		rec.UsageExample = defaultUsageExample(s.language)
	}

	return rec, nil
}

// resolveServerCode applies the fallback chain: a "Server Code" section's
// embedded block, then sectioned content, then any supported-language block,
// then the untagged block, then the loose code-line pattern, and finally the
// entire raw text.
func (s *MarkdownStrategy) resolveServerCode(raw string, blocks map[string]string, sections map[string]string) string {
	for _, alias := range serverAliases {
		section, ok := sections[alias]
		if !ok {
			continue
		}
		if inner := extractCodeBlocks(section); len(inner) > 0 {
			for _, code := range inner {
				if strings.TrimSpace(code) != "" {
					return code
				}
			}
		}
		if strings.TrimSpace(section) != "" {
			return stripFences(section)
		}
	}

	for _, lang := range s.catalog.Languages {
		for _, tag := range lang.FenceTags {
			if code, ok := blocks[tag]; ok && strings.TrimSpace(code) != "" {
				return code
			}
		}
	}

	if code, ok := blocks["unknown"]; ok && strings.TrimSpace(code) != "" {
		return code
	}

	if loc := looseCodeRe.FindStringIndex(raw); loc != nil {
		s.logger.Debug("server code recovered via loose code pattern", map[string]interface{}{
			"offset": loc[0],
		})
		return raw[loc[0]:]
	}

	return raw
}

// extractCodeBlocks returns every fenced block keyed by its declared language
// tag, lowercased, defaulting to "unknown" when untagged. The first block per
// tag wins.
func extractCodeBlocks(text string) map[string]string {
	blocks := make(map[string]string)
	for _, m := range fencedBlockRe.FindAllStringSubmatch(text, -1) {
		tag := strings.ToLower(strings.TrimSpace(m[1]))
		if tag == "" {
			tag = "unknown"
		}
		if _, exists := blocks[tag]; !exists {
			blocks[tag] = m[2]
		}
	}
	return blocks
}

// extractSections returns every second-level header section keyed by its
// normalized name: lowercased, runs of whitespace collapsed to single hyphens.
func extractSections(text string) map[string]string {
	sections := make(map[string]string)

	headers := sectionHeaderRe.FindAllStringSubmatchIndex(text, -1)
	for i, h := range headers {
		name := normalizeHeader(text[h[2]:h[3]])
		bodyStart := h[1]
		bodyEnd := len(text)
		if i+1 < len(headers) {
			bodyEnd = headers[i+1][0]
		}
		if _, exists := sections[name]; !exists {
			sections[name] = strings.TrimSpace(text[bodyStart:bodyEnd])
		}
	}

	return sections
}

func normalizeHeader(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	return strings.Join(fields, "-")
}

func firstSection(sections map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if body, ok := sections[alias]; ok && strings.TrimSpace(body) != "" {
			return body
		}
	}
	return ""
}

// stripFences removes fence delimiter lines from sectioned content so the
// section text can serve as code.
func stripFences(section string) string {
	lines := strings.Split(section, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
