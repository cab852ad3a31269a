package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mcp-scaffold/internal/common/errors"
	"mcp-scaffold/internal/common/logger"
	"mcp-scaffold/internal/generator"
	"mcp-scaffold/pkg/catalog"
)

// Materializer writes a generated project structure to disk. It validates the
// structure before touching the filesystem, then writes best-effort: every
// file is attempted even after earlier ones fail, and all failures are
// reported together. Successfully written files are never rolled back.
type Materializer struct {
	entryNames []string
	logger     logger.Logger
}

func NewMaterializer(cat *catalog.LanguageCatalog, log logger.Logger) *Materializer {
	return &Materializer{
		entryNames: cat.EntryFileNames(),
		logger:     log,
	}
}

// Materialize writes the structure under outputPath. Validation failures
// return before any directory or file is created. Write failures are
// aggregated into a single error listing every affected path.
func (m *Materializer) Materialize(outputPath string, st *generator.Structure) error {
	if err := m.validate(st); err != nil {
		return err
	}

	var failures []errors.FileFailure

	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		// Nothing below can succeed without the project root.
		return errors.NewMaterializationError([]errors.FileFailure{
			{Path: outputPath, Reason: err.Error()},
		})
	}

	for _, dir := range st.Directories {
		if err := os.MkdirAll(filepath.Join(outputPath, dir), 0o755); err != nil {
			failures = append(failures, errors.FileFailure{Path: dir, Reason: err.Error()})
		}
	}

	for _, relPath := range st.SortedFilePaths() {
		content, ok := st.Files[relPath].(string)
		if !ok {
			failures = append(failures, errors.FileFailure{
				Path:   relPath,
				Reason: fmt.Sprintf("content is %T, expected string", st.Files[relPath]),
			})
			continue
		}

		absPath := filepath.Join(outputPath, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
			failures = append(failures, errors.FileFailure{Path: relPath, Reason: err.Error()})
			continue
		}
		if err := os.WriteFile(absPath, []byte(content), 0o644); err != nil {
			failures = append(failures, errors.FileFailure{Path: relPath, Reason: err.Error()})
			continue
		}
		m.logger.Debug("wrote file", map[string]interface{}{
			"path": absPath,
		})
	}

	if len(failures) > 0 {
		return errors.NewMaterializationError(failures)
	}
	return nil
}

// validate enforces the minimum shape of a writable structure: at least one
// file, and a recognizable entry file somewhere in the file set.
func (m *Materializer) validate(st *generator.Structure) error {
	if len(st.Files) == 0 {
		return errors.NewStructureValidationError("structure contains no files")
	}
	if !m.hasEntryFile(st) {
		return errors.NewStructureValidationError(
			fmt.Sprintf("no entry file found; expected one of %s", strings.Join(m.entryNames, ", ")))
	}
	return nil
}

func (m *Materializer) hasEntryFile(st *generator.Structure) bool {
	for path := range st.Files {
		base := filepath.Base(path)
		for _, name := range m.entryNames {
			if base == name {
				return true
			}
		}
	}
	return false
}
