// internal/scaffold/materializer_test.go
package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-scaffold/internal/common/errors"
	"mcp-scaffold/internal/common/logger"
	"mcp-scaffold/internal/generator"
	"mcp-scaffold/pkg/catalog"
)

// ==========================
// Test Helper Functions
// ==========================

func createMaterializer(t *testing.T) *Materializer {
	return NewMaterializer(catalog.Default(), logger.NewTestLogger(t))
}

func createStructure() *generator.Structure {
	st := generator.NewStructure()
	st.Directories = []string{"src", "build"}
	st.AddFile("src/index.ts", "const s = new Server();\n")
	st.AddFile("package.json", "{}\n")
	st.AddFile("README.md", "# readme\n")
	return st
}

func readFile(t *testing.T, path string) string {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestMaterializer_Materialize_Success(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "weather-server")

	err := createMaterializer(t).Materialize(out, createStructure())
	require.NoError(t, err)

	assert.Equal(t, "const s = new Server();\n", readFile(t, filepath.Join(out, "src/index.ts")))
	assert.Equal(t, "{}\n", readFile(t, filepath.Join(out, "package.json")))
	assert.DirExists(t, filepath.Join(out, "build"))
}

func TestMaterializer_Materialize_CreatesNestedParents(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "java-server")

	st := generator.NewStructure()
	st.AddFile("src/main/java/McpServer.java", "public class McpServer {}\n")

	require.NoError(t, createMaterializer(t).Materialize(out, st))
	assert.FileExists(t, filepath.Join(out, "src/main/java/McpServer.java"))
}

// ==========================
// Validation Tests
// ==========================

func TestMaterializer_Materialize_RejectsEmptyStructure(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "empty")

	err := createMaterializer(t).Materialize(out, generator.NewStructure())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeStructureValidationFailed, errors.CodeOf(err))

	// Validation failure means nothing was created.
	assert.NoDirExists(t, out)
}

func TestMaterializer_Materialize_RejectsMissingEntryFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "no-entry")

	st := generator.NewStructure()
	st.AddFile("README.md", "# readme\n")

	err := createMaterializer(t).Materialize(out, st)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeStructureValidationFailed, errors.CodeOf(err))
	assert.NoDirExists(t, out)
}

// ==========================
// Partial Failure Tests
// ==========================

func TestMaterializer_Materialize_NonStringContentFailsOnlyThatFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "partial")

	st := createStructure()
	st.Files["weird.bin"] = 42
	st.Files["also-bad.bin"] = map[string]interface{}{"nested": true}

	err := createMaterializer(t).Materialize(out, st)
	require.Error(t, err)

	var matErr *errors.MaterializationError
	require.ErrorAs(t, err, &matErr)
	require.Len(t, matErr.Failures, 2)

	paths := []string{matErr.Failures[0].Path, matErr.Failures[1].Path}
	assert.ElementsMatch(t, []string{"weird.bin", "also-bad.bin"}, paths)

	// Every other file was still written.
	assert.FileExists(t, filepath.Join(out, "src/index.ts"))
	assert.FileExists(t, filepath.Join(out, "package.json"))
	assert.FileExists(t, filepath.Join(out, "README.md"))
	assert.NoFileExists(t, filepath.Join(out, "weird.bin"))
}

func TestMaterializer_Materialize_NoRollbackOnFailure(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "no-rollback")

	st := createStructure()
	st.Files["bad.bin"] = []byte("raw") // not a string

	err := createMaterializer(t).Materialize(out, st)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeMaterializationFailed, errors.CodeOf(err))

	// Files written before the failure stay on disk.
	assert.FileExists(t, filepath.Join(out, "README.md"))
}

func TestMaterializationError_Messages(t *testing.T) {
	err := errors.NewMaterializationError([]errors.FileFailure{
		{Path: "b.txt", Reason: "second"},
		{Path: "a.txt", Reason: "first"},
	})

	msgs := err.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "a.txt: first", msgs[0])
	assert.Equal(t, "b.txt: second", msgs[1])
}
