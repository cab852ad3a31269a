package generator

import "sort"

// Structure is the full set of directories and file contents to write for one
// generation request. It is derived from a request and a parsed record, used
// once, then discarded.
//
// File values are declared as interface{} because additionalFiles from a model
// response may carry non-string content; such entries travel through the
// structure and surface as per-file materialization failures instead of being
// silently dropped.
type Structure struct {
	Directories []string
	Files       map[string]interface{}
}

func NewStructure() *Structure {
	return &Structure{
		Files: make(map[string]interface{}),
	}
}

// AddFile sets the content for a relative path. Later additions may overwrite
// generated defaults; this is permitted, not an error.
func (s *Structure) AddFile(path string, content string) {
	s.Files[path] = content
}

// MergeAdditional merges extra files from the parsed record last, so they win
// over generated defaults.
func (s *Structure) MergeAdditional(files map[string]interface{}) {
	for path, content := range files {
		s.Files[path] = content
	}
}

// SortedFilePaths returns every file path in deterministic order. The
// materializer writes files one at a time in this order.
func (s *Structure) SortedFilePaths() []string {
	paths := make([]string, 0, len(s.Files))
	for path := range s.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
