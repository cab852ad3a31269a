// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"os"
	"path"
)

func LoadCatalog(filePath string) (*LanguageCatalog, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cat LanguageCatalog
	err = json.Unmarshal(data, &cat)
	return &cat, err
}

// Default returns the compiled-in catalog used when no catalog file is configured.
func Default() *LanguageCatalog {
	return &LanguageCatalog{
		Version: "1.0",
		Languages: []LanguageProfile{
			{
				ID:               "typescript",
				DisplayName:      "TypeScript",
				EntryFile:        "src/index.ts",
				ManifestFile:     "package.json",
				FrameworkPackage: "@modelcontextprotocol/sdk",
				FrameworkVersion: "^1.0.0",
				Directories:      []string{"src", "build"},
				CommentPrefix:    "//",
				FenceTags:        []string{"typescript", "ts", "javascript", "js"},
			},
			{
				ID:               "python",
				DisplayName:      "Python",
				EntryFile:        "server.py",
				ManifestFile:     "pyproject.toml",
				FrameworkPackage: "mcp",
				FrameworkVersion: ">=1.2.0",
				Directories:      []string{"."},
				CommentPrefix:    "#",
				FenceTags:        []string{"python", "py"},
			},
			{
				ID:               "java",
				DisplayName:      "Java",
				EntryFile:        "src/main/java/McpServer.java",
				ManifestFile:     "pom.xml",
				FrameworkPackage: "io.modelcontextprotocol.sdk:mcp",
				FrameworkVersion: "0.9.0",
				Directories:      []string{"src/main/java", "src/main/resources"},
				CommentPrefix:    "//",
				FenceTags:        []string{"java"},
			},
		},
	}
}

// Profile returns the profile for a language ID.
func (c *LanguageCatalog) Profile(id string) (*LanguageProfile, bool) {
	for i := range c.Languages {
		if c.Languages[i].ID == id {
			return &c.Languages[i], true
		}
	}
	return nil, false
}

// EntryFileNames returns the base names of every known entry file. The
// materializer uses these to recognize a main entry in a project structure.
func (c *LanguageCatalog) EntryFileNames() []string {
	names := make([]string, 0, len(c.Languages))
	for _, lang := range c.Languages {
		names = append(names, path.Base(lang.EntryFile))
	}
	return names
}
