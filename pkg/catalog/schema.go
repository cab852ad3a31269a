// pkg/catalog/schema.go
package catalog

type LanguageCatalog struct {
	Version   string            `json:"version"`
	Languages []LanguageProfile `json:"languages"`
}

// LanguageProfile describes the filesystem conventions of one target language.
type LanguageProfile struct {
	ID               string   `json:"id"`
	DisplayName      string   `json:"displayName"`
	EntryFile        string   `json:"entryFile"`
	ManifestFile     string   `json:"manifestFile"`
	FrameworkPackage string   `json:"frameworkPackage"`
	FrameworkVersion string   `json:"frameworkVersion"`
	Directories      []string `json:"directories"`
	CommentPrefix    string   `json:"commentPrefix"`
	FenceTags        []string `json:"fenceTags"`
}
