package generator

import (
	"fmt"
	"strings"

	"mcp-scaffold/internal/common/config"
	"mcp-scaffold/internal/common/errors"
	"mcp-scaffold/internal/common/logger"
	"mcp-scaffold/internal/parser"
	"mcp-scaffold/internal/templates"
	"mcp-scaffold/pkg/catalog"
)

// Builder turns a validated request plus an extracted record into the concrete
// project structure for one target language.
type Builder interface {
	Language() Language
	Build(req *Request, rec *parser.Record) (*Structure, error)
}

// ForLanguage returns the builder for the requested language, backed by the
// shared template registry and language catalog.
func ForLanguage(lang Language, reg *templates.Registry, cat *catalog.LanguageCatalog, cfg config.GeneratorConfig, log logger.Logger) (Builder, error) {
	profile, ok := cat.Profile(string(lang))
	if !ok {
		return nil, errors.NewInvalidRequestError(fmt.Sprintf("language %q is not in the catalog", lang))
	}

	base := baseBuilder{
		registry: reg,
		profile:  profile,
		cfg:      cfg,
		logger:   log,
	}
	switch lang {
	case LanguageTypeScript:
		return &typescriptBuilder{base}, nil
	case LanguagePython:
		return &pythonBuilder{base}, nil
	case LanguageJava:
		return &javaBuilder{base}, nil
	default:
		return nil, errors.NewInvalidRequestError(fmt.Sprintf("no builder registered for language %q", lang))
	}
}

// baseBuilder carries the pieces every language builder shares.
type baseBuilder struct {
	registry *templates.Registry
	profile  *catalog.LanguageProfile
	cfg      config.GeneratorConfig
	logger   logger.Logger
}

// detectCategory picks the template category by scanning the server code and
// additional file contents for capability keywords. All three keywords select
// the full-capability template; exactly one selects its dedicated template;
// anything else falls back to the minimal one.
func detectCategory(rec *parser.Record) templates.Category {
	var sb strings.Builder
	sb.WriteString(rec.ServerCode)
	for path, content := range rec.AdditionalFiles {
		sb.WriteString(path)
		if text, ok := content.(string); ok {
			sb.WriteString(text)
		}
	}
	haystack := strings.ToLower(sb.String())

	hasTools := strings.Contains(haystack, "tools")
	hasResources := strings.Contains(haystack, "resources")
	hasPrompts := strings.Contains(haystack, "prompts")

	switch {
	case hasTools && hasResources && hasPrompts:
		return templates.CategoryAdvanced
	case hasTools && !hasResources && !hasPrompts:
		return templates.CategoryTools
	case hasResources && !hasTools && !hasPrompts:
		return templates.CategoryResources
	case hasPrompts && !hasTools && !hasResources:
		return templates.CategoryPrompts
	default:
		return templates.CategoryBasic
	}
}

// renderEntry renders the language entry file. SERVER_CODE is only supplied
// when the record actually carries code, so an empty extraction leaves a
// visible marker in the output instead of a silently blank file.
func (b *baseBuilder) renderEntry(req *Request, rec *parser.Record) (string, error) {
	category := detectCategory(rec)

	vars := map[string]string{
		"SERVER_NAME":        req.ProjectName,
		"SERVER_VERSION":     b.cfg.DefaultProjectVersion,
		"SERVER_DESCRIPTION": req.Description,
		"TRANSPORT":          string(req.Transport),
	}
	if strings.TrimSpace(rec.ServerCode) != "" {
		vars["SERVER_CODE"] = rec.ServerCode
	}

	name := templates.TemplateName(b.profile.ID, category)
	b.logger.Debug("rendering entry file", map[string]interface{}{
		"template": name,
		"entry":    b.profile.EntryFile,
	})
	return b.registry.Render(name, vars)
}

// buildReadme assembles the project readme. A readme from the record is used
// as the base; otherwise a header is generated from the request. Installation
// and usage sections are appended when the record supplies them and the base
// text does not already contain them.
func (b *baseBuilder) buildReadme(req *Request, rec *parser.Record) string {
	var sb strings.Builder
	if strings.TrimSpace(rec.Readme) != "" {
		sb.WriteString(strings.TrimRight(rec.Readme, "\n"))
		sb.WriteString("\n")
	} else {
		sb.WriteString("# " + req.ProjectName + "\n\n" + req.Description + "\n")
	}

	if install := strings.TrimSpace(rec.InstallInstructions); install != "" && !strings.Contains(sb.String(), install) {
		sb.WriteString("\n## Installation\n\n```\n" + install + "\n```\n")
	}
	if usage := strings.TrimSpace(rec.UsageExample); usage != "" && !strings.Contains(sb.String(), usage) {
		sb.WriteString("\n## Usage\n\n```\n" + usage + "\n```\n")
	}
	return sb.String()
}
