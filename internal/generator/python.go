package generator

import (
	"fmt"
	"sort"
	"strings"

	"mcp-scaffold/internal/parser"
)

type pythonBuilder struct {
	baseBuilder
}

func (b *pythonBuilder) Language() Language { return LanguagePython }

func (b *pythonBuilder) Build(req *Request, rec *parser.Record) (*Structure, error) {
	entry, err := b.renderEntry(req, rec)
	if err != nil {
		return nil, err
	}

	requirements := b.requirementLines(rec)

	manifest := rec.Manifest
	if strings.TrimSpace(manifest) == "" {
		manifest = b.pyproject(req, requirements)
	}

	st := NewStructure()
	st.Directories = append(st.Directories, b.profile.Directories...)
	st.AddFile(b.profile.EntryFile, entry)
	st.AddFile(b.profile.ManifestFile, manifest)
	st.AddFile("requirements.txt", strings.Join(requirements, "\n")+"\n")
	st.AddFile("README.md", b.buildReadme(req, rec))
	st.AddFile(".gitignore", "__pycache__/\n*.pyc\n.venv/\n")
	st.MergeAdditional(rec.AdditionalFiles)
	return st, nil
}

// requirementLines merges the record's dependencies with the framework pin
// into sorted pip requirement specifiers.
func (b *pythonBuilder) requirementLines(rec *parser.Record) []string {
	specs := make(map[string]string, len(rec.Dependencies)+1)
	for name, version := range rec.Dependencies {
		specs[name] = version
	}
	specs[b.profile.FrameworkPackage] = b.profile.FrameworkVersion

	lines := make([]string, 0, len(specs))
	for name, version := range specs {
		lines = append(lines, pipRequirement(name, version))
	}
	sort.Strings(lines)
	return lines
}

// pipRequirement joins a package name with its version constraint, inserting
// "==" when the constraint is a bare version number.
func pipRequirement(name, version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return name
	}
	if strings.ContainsAny(string(version[0]), "=<>!~") {
		return name + version
	}
	return name + "==" + version
}

func (b *pythonBuilder) pyproject(req *Request, requirements []string) string {
	deps := make([]string, 0, len(requirements))
	for _, line := range requirements {
		deps = append(deps, fmt.Sprintf("    %q,", line))
	}
	return fmt.Sprintf(`[project]
name = %q
version = %q
description = %q
requires-python = ">=3.10"
dependencies = [
%s
]
`, req.ProjectName, b.cfg.DefaultProjectVersion, req.Description, strings.Join(deps, "\n"))
}
