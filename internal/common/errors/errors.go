// Package errors provides standardized error handling for the scaffolding pipeline.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Extraction errors
	ErrCodeParseFailed            ErrorCode = "PARSE_FAILED"
	ErrCodeSchemaValidationFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"

	// Template errors
	ErrCodeTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"

	// Generation / scaffolding errors
	ErrCodeInvalidRequest            ErrorCode = "INVALID_REQUEST"
	ErrCodeStructureValidationFailed ErrorCode = "STRUCTURE_VALIDATION_FAILED"
	ErrCodeMaterializationFailed     ErrorCode = "MATERIALIZATION_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewParseFailedError reports that no strategy could recover a usable record.
func NewParseFailedError(strategy, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeParseFailed,
		Message:   "No usable content could be recovered from the response",
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"strategy": strategy},
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaValidationError reports a structurally valid object whose fields did
// not match the expected types. Callers treat this as a candidate rejection; it
// is fatal only when no candidate validates.
func NewSchemaValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaValidationFailed,
		Message:   "Extracted object does not satisfy the response schema",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateNotFoundError reports a render target missing from the registry.
// This indicates a builder/registry mismatch, not a user error.
func NewTemplateNotFoundError(templateName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateNotFound,
		Message:   "Template not found in registry",
		Details:   fmt.Sprintf("template: %s", templateName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError reports a generation request that fails its invariants.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Generation request is invalid",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStructureValidationError reports an assembled project structure that lacks
// required files. Raised before any filesystem I/O.
func NewStructureValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStructureValidationFailed,
		Message:   "Project structure validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Materialization Errors
// ==========================

// FileFailure records a single path that could not be written and why.
type FileFailure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// MaterializationError aggregates every per-file failure from one
// materialization attempt. Files that did succeed remain on disk; there is no
// automatic rollback.
type MaterializationError struct {
	Failures  []FileFailure `json:"failures"`
	Timestamp time.Time     `json:"timestamp"`
}

func (e *MaterializationError) Error() string {
	paths := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		paths[i] = f.Path
	}
	return fmt.Sprintf("StandardError[%s]: %d file(s) could not be written: %s",
		ErrCodeMaterializationFailed, len(e.Failures), strings.Join(paths, ", "))
}

// Messages returns one human-readable line per failed file, sorted by path.
func (e *MaterializationError) Messages() []string {
	out := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		out[i] = fmt.Sprintf("%s: %s", f.Path, f.Reason)
	}
	sort.Strings(out)
	return out
}

// NewMaterializationError creates the aggregate error for a set of failures.
func NewMaterializationError(failures []FileFailure) *MaterializationError {
	return &MaterializationError{
		Failures:  failures,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Utility Functions
// ==========================

// CodeOf extracts the error code from any pipeline error, or empty string.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	var matErr *MaterializationError
	if errors.As(err, &matErr) {
		return ErrCodeMaterializationFailed
	}
	return ""
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "PARSE") || strings.Contains(codeStr, "SCHEMA"):
		return "EXTRACTION"
	case strings.Contains(codeStr, "TEMPLATE"):
		return "TEMPLATE"
	case strings.Contains(codeStr, "STRUCTURE") || strings.Contains(codeStr, "MATERIALIZATION"):
		return "SCAFFOLD"
	case strings.Contains(codeStr, "REQUEST"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
