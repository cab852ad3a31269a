package parser

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"mcp-scaffold/internal/common/errors"
)

// Record holds the structured fields recovered from one model response. A
// Record is created once per generation attempt and never mutated afterwards.
type Record struct {
	ServerCode          string                 `json:"serverCode"`
	Readme              string                 `json:"readme,omitempty"`
	InstallInstructions string                 `json:"installInstructions,omitempty"`
	UsageExample        string                 `json:"usageExample,omitempty"`
	Manifest            string                 `json:"manifest,omitempty"`
	Dependencies        map[string]string      `json:"dependencies,omitempty"`
	DevDependencies     map[string]string      `json:"devDependencies,omitempty"`
	Scripts             map[string]string      `json:"scripts,omitempty"`
	AdditionalFiles     map[string]interface{} `json:"additionalFiles,omitempty"`
}

// HasContent reports whether the record carries anything usable. An empty
// record everywhere signals extraction failure, not a valid empty project.
func (r *Record) HasContent() bool {
	if strings.TrimSpace(r.ServerCode) != "" {
		return true
	}
	for _, field := range []string{r.Manifest, r.Readme, r.InstallInstructions, r.UsageExample} {
		if strings.TrimSpace(field) != "" {
			return true
		}
	}
	return false
}

// recordSchema is the JSON schema a candidate object must satisfy before it
// can become a Record: string fields must be strings, dependency/script fields
// must be string-to-string mappings when present.
var recordSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"serverCode":          map[string]interface{}{"type": "string"},
		"readme":              map[string]interface{}{"type": "string"},
		"installInstructions": map[string]interface{}{"type": "string"},
		"usageExample":        map[string]interface{}{"type": "string"},
		"manifest":            map[string]interface{}{"type": "string"},
		"dependencies": map[string]interface{}{
			"type":                 "object",
			"additionalProperties": map[string]interface{}{"type": "string"},
		},
		"devDependencies": map[string]interface{}{
			"type":                 "object",
			"additionalProperties": map[string]interface{}{"type": "string"},
		},
		"scripts": map[string]interface{}{
			"type":                 "object",
			"additionalProperties": map[string]interface{}{"type": "string"},
		},
		"additionalFiles": map[string]interface{}{"type": "object"},
	},
}

// validateCandidate checks one decoded JSON object against the record schema
// and the content rule. A failure here is a candidate rejection, not a fatal
// error, as long as another candidate remains.
func validateCandidate(candidate map[string]interface{}) error {
	schemaLoader := gojsonschema.NewGoLoader(recordSchema)
	documentLoader := gojsonschema.NewGoLoader(candidate)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.NewSchemaValidationError(err.Error())
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, resultErr := range result.Errors() {
			msgs = append(msgs, resultErr.String())
		}
		return errors.NewSchemaValidationError(strings.Join(msgs, "; "))
	}

	rec, err := recordFromMap(candidate)
	if err != nil {
		return errors.NewSchemaValidationError(err.Error())
	}
	if !rec.HasContent() {
		return errors.NewSchemaValidationError("record is empty: serverCode and all textual fields are blank")
	}
	return nil
}

// recordFromMap decodes an already schema-validated object into a Record.
func recordFromMap(candidate map[string]interface{}) (*Record, error) {
	data, err := json.Marshal(candidate)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	// additionalFiles values stay untyped on purpose: a non-string value is
	// surfaced later as a per-file materialization failure, not dropped here.
	return &rec, nil
}
