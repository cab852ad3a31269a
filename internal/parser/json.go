package parser

import (
	"encoding/json"
	"strings"

	"mcp-scaffold/internal/common/errors"
	"mcp-scaffold/internal/common/logger"
)

// JSONStrategy recovers a Record from a structured JSON response. It tries, in
// order: the interior of a ```json fence, every balanced-brace substring of
// the full text, and finally the whole trimmed text as one object. Every
// candidate must pass the schema-validity check before acceptance.
type JSONStrategy struct {
	logger logger.Logger
}

func NewJSONStrategy(log logger.Logger) *JSONStrategy {
	return &JSONStrategy{logger: log}
}

func (s *JSONStrategy) Name() string { return "json" }

func (s *JSONStrategy) Parse(raw string) (*Record, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.NewParseFailedError(s.Name(), "response is empty")
	}

	// 1. Fenced ```json block
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		if rec, err := s.tryCandidate(m[1]); err == nil {
			return rec, nil
		} else {
			s.logger.Debug("fenced json block rejected", map[string]interface{}{
				"reason": err.Error(),
			})
		}
	}

	// 2. Every balanced-brace substring, in order of discovery
	for _, candidate := range scanBalancedObjects(raw) {
		rec, err := s.tryCandidate(candidate)
		if err == nil {
			return rec, nil
		}
		s.logger.Debug("brace-scan candidate rejected", map[string]interface{}{
			"reason": err.Error(),
		})
	}

	// 3. The entire trimmed text as one object
	if rec, err := s.tryCandidate(strings.TrimSpace(raw)); err == nil {
		return rec, nil
	}

	return nil, errors.NewParseFailedError(s.Name(), "no schema-valid JSON object found in response")
}

// tryCandidate parses one candidate substring and runs the mandatory
// schema-validity check. A syntactically valid but schema-incompatible object
// is rejected so the next candidate can be tried.
func (s *JSONStrategy) tryCandidate(text string) (*Record, error) {
	var candidate map[string]interface{}
	if err := json.Unmarshal([]byte(text), &candidate); err != nil {
		return nil, errors.NewSchemaValidationError("not a JSON object: " + err.Error())
	}
	if err := validateCandidate(candidate); err != nil {
		return nil, err
	}
	return recordFromMap(candidate)
}

// scanBalancedObjects walks the text once with an integer depth counter and an
// optional start marker, collecting every top-level balanced-brace substring.
// An unmatched closing brace resets the counter so noise before a valid object
// cannot poison the scan. Worst case is linear in input length.
func scanBalancedObjects(text string) []string {
	var candidates []string
	depth := 0
	start := -1

	for i, ch := range text {
		switch ch {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 && start >= 0 {
				candidates = append(candidates, text[start:i+1])
				start = -1
			}
			if depth < 0 {
				depth = 0
				start = -1
			}
		}
	}

	return candidates
}
