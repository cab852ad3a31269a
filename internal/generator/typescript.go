package generator

import (
	"encoding/json"
	"strings"

	"mcp-scaffold/internal/parser"
)

type typescriptBuilder struct {
	baseBuilder
}

func (b *typescriptBuilder) Language() Language { return LanguageTypeScript }

func (b *typescriptBuilder) Build(req *Request, rec *parser.Record) (*Structure, error) {
	entry, err := b.renderEntry(req, rec)
	if err != nil {
		return nil, err
	}

	manifest := rec.Manifest
	if strings.TrimSpace(manifest) == "" {
		manifest, err = b.packageJSON(req, rec)
		if err != nil {
			return nil, err
		}
	}

	st := NewStructure()
	st.Directories = append(st.Directories, b.profile.Directories...)
	st.AddFile(b.profile.EntryFile, entry)
	st.AddFile(b.profile.ManifestFile, manifest)
	st.AddFile("README.md", b.buildReadme(req, rec))
	st.AddFile("tsconfig.json", tsconfigBody)
	st.AddFile(".gitignore", "node_modules/\nbuild/\n")
	st.MergeAdditional(rec.AdditionalFiles)
	return st, nil
}

// packageManifest mirrors the package.json layout of an MCP server published
// as an ES module with a compiled build/ output.
type packageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Type            string            `json:"type"`
	Main            string            `json:"main"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
	Author          string            `json:"author,omitempty"`
}

func (b *typescriptBuilder) packageJSON(req *Request, rec *parser.Record) (string, error) {
	scripts := map[string]string{
		"build": "tsc",
		"start": "node build/index.js",
	}
	for name, cmd := range rec.Scripts {
		scripts[name] = cmd
	}

	deps := make(map[string]string, len(rec.Dependencies)+1)
	for name, version := range rec.Dependencies {
		deps[name] = version
	}
	// The framework pin always wins over whatever the record suggested.
	deps[b.profile.FrameworkPackage] = b.profile.FrameworkVersion

	devDeps := map[string]string{
		"typescript":  "^5.3.0",
		"@types/node": "^20.0.0",
	}
	for name, version := range rec.DevDependencies {
		devDeps[name] = version
	}

	m := packageManifest{
		Name:            req.ProjectName,
		Version:         b.cfg.DefaultProjectVersion,
		Description:     req.Description,
		Type:            "module",
		Main:            "build/index.js",
		Scripts:         scripts,
		Dependencies:    deps,
		DevDependencies: devDeps,
		Author:          b.cfg.DefaultAuthor,
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

const tsconfigBody = `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "Node16",
    "moduleResolution": "Node16",
    "outDir": "./build",
    "rootDir": "./src",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true,
    "forceConsistentCasingInFileNames": true
  },
  "include": ["src/**/*"]
}
`
