package templates

// Category identifies which capability mix a template scaffolds.
type Category string

const (
	CategoryBasic     Category = "basic"
	CategoryTools     Category = "tools"
	CategoryResources Category = "resources"
	CategoryPrompts   Category = "prompts"
	CategoryAdvanced  Category = "advanced"
)

// Template is a named per-language, per-category body with {{PLACEHOLDER}}
// markers. Instances are process-wide, read-only, and registered once at
// startup.
type Template struct {
	Name         string
	Language     string
	Category     Category
	Body         string
	Placeholders []string
}

// TemplateName is the registry key convention: "<language>-<category>".
func TemplateName(language string, category Category) string {
	return language + "-" + string(category)
}
