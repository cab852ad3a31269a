package templates

import (
	"regexp"

	"mcp-scaffold/internal/common/errors"
	"mcp-scaffold/internal/common/logger"
)

// placeholderRe matches {{NAME}} markers, tolerating whitespace inside the braces.
var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// knownOptionalPlaceholders are silently replaced with the empty string when
// left unresolved. Any other leftover marker is replaced with a visible
// comment so required gaps stay detectable in the output.
var knownOptionalPlaceholders = map[string]bool{
	"USAGE_EXAMPLE":        true,
	"INSTALL_INSTRUCTIONS": true,
	"EXTRA_SETUP":          true,
	"SERVER_DESCRIPTION":   true,
}

// commentPrefixes maps a template's language to the comment marker used for
// visible missing-variable placeholders.
var commentPrefixes = map[string]string{
	"typescript": "//",
	"java":       "//",
	"python":     "#",
}

// Registry is the process-wide template catalogue. It is populated once at
// startup and never mutated afterwards, so concurrent reads are safe.
type Registry struct {
	templates map[string]Template
	logger    logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	return &Registry{
		templates: make(map[string]Template),
		logger:    log,
	}
}

// Register adds a template. Call only during startup, before the registry is shared.
func (r *Registry) Register(t Template) {
	r.templates[t.Name] = t
}

// Lookup returns the template registered under name.
func (r *Registry) Lookup(name string) (Template, bool) {
	t, ok := r.templates[name]
	return t, ok
}

// Names returns every registered template name.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	return names
}

// Render substitutes every {{NAME}} marker with the corresponding variable.
// Markers without a variable survive the first pass; the post-substitution
// scan then empties known-optional ones and turns everything else into a
// visible comment naming the missing variable. Rendering never fails on
// missing data — only on an unregistered template name.
func (r *Registry) Render(name string, vars map[string]string) (string, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return "", errors.NewTemplateNotFoundError(name)
	}

	out := placeholderRe.ReplaceAllStringFunc(tmpl.Body, func(marker string) string {
		varName := placeholderRe.FindStringSubmatch(marker)[1]
		if val, ok := vars[varName]; ok {
			return val
		}
		return marker
	})

	out = placeholderRe.ReplaceAllStringFunc(out, func(marker string) string {
		varName := placeholderRe.FindStringSubmatch(marker)[1]
		if knownOptionalPlaceholders[varName] {
			return ""
		}
		r.logger.Warn("template variable missing", map[string]interface{}{
			"template": name,
			"variable": varName,
		})
		return missingComment(tmpl.Language, varName)
	})

	return out, nil
}

func missingComment(language, varName string) string {
	prefix, ok := commentPrefixes[language]
	if !ok {
		prefix = "//"
	}
	return prefix + " MISSING: " + varName
}
