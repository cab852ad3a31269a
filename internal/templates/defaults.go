package templates

import "mcp-scaffold/internal/common/logger"

// NewDefaultRegistry builds the registry with every built-in template. Called
// once at startup; the result is shared read-only across generation requests.
func NewDefaultRegistry(log logger.Logger) *Registry {
	r := NewRegistry(log)
	for _, set := range [][]Template{typescriptTemplates, pythonTemplates, javaTemplates} {
		for _, t := range set {
			r.Register(t)
		}
	}
	return r
}
