package generator

import (
	"fmt"
	"sort"
	"strings"

	"mcp-scaffold/internal/parser"
)

type javaBuilder struct {
	baseBuilder
}

func (b *javaBuilder) Language() Language { return LanguageJava }

func (b *javaBuilder) Build(req *Request, rec *parser.Record) (*Structure, error) {
	entry, err := b.renderEntry(req, rec)
	if err != nil {
		return nil, err
	}

	manifest := rec.Manifest
	if strings.TrimSpace(manifest) == "" {
		manifest = b.pom(req, rec)
	}

	st := NewStructure()
	st.Directories = append(st.Directories, b.profile.Directories...)
	st.AddFile(b.profile.EntryFile, entry)
	st.AddFile(b.profile.ManifestFile, manifest)
	st.AddFile("README.md", b.buildReadme(req, rec))
	st.AddFile(".gitignore", "target/\n")
	st.MergeAdditional(rec.AdditionalFiles)
	return st, nil
}

func (b *javaBuilder) pom(req *Request, rec *parser.Record) string {
	frameworkGroup, frameworkArtifact := splitCoordinates(b.profile.FrameworkPackage)

	var extra strings.Builder
	names := make([]string, 0, len(rec.Dependencies))
	for name := range rec.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		group, artifact := splitCoordinates(name)
		if group == "" {
			// Not Maven coordinates; nothing sensible to emit.
			b.logger.Warn("skipping dependency without maven coordinates", map[string]interface{}{
				"dependency": name,
			})
			continue
		}
		if group == frameworkGroup && artifact == frameworkArtifact {
			continue
		}
		fmt.Fprintf(&extra, `        <dependency>
            <groupId>%s</groupId>
            <artifactId>%s</artifactId>
            <version>%s</version>
        </dependency>
`, group, artifact, rec.Dependencies[name])
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
         xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
    <modelVersion>4.0.0</modelVersion>

    <groupId>com.example</groupId>
    <artifactId>%s</artifactId>
    <version>%s</version>
    <packaging>jar</packaging>

    <description>%s</description>

    <properties>
        <maven.compiler.source>17</maven.compiler.source>
        <maven.compiler.target>17</maven.compiler.target>
        <project.build.sourceEncoding>UTF-8</project.build.sourceEncoding>
    </properties>

    <dependencies>
        <dependency>
            <groupId>%s</groupId>
            <artifactId>%s</artifactId>
            <version>%s</version>
        </dependency>
%s    </dependencies>
</project>
`, req.ProjectName, b.cfg.DefaultProjectVersion, xmlEscape(req.Description),
		frameworkGroup, frameworkArtifact, b.profile.FrameworkVersion, extra.String())
}

// splitCoordinates splits "group:artifact" Maven coordinates. The second value
// is empty when no colon is present.
func splitCoordinates(name string) (string, string) {
	group, artifact, ok := strings.Cut(name, ":")
	if !ok {
		return "", ""
	}
	return group, artifact
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
