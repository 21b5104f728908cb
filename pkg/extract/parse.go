package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseError indicates the model's structured output could not be parsed.
// It is fatal for the current document: no partial extraction is accepted.
type ParseError struct {
	Message string
	Raw     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model output parse error: %s", e.Message)
}

// Is implements errors.Is support for ParseError.
func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}

// decodeArray parses model output expected to be a JSON array of T. It
// tolerates markdown fences and an object wrapper around the array, and
// makes one repair attempt on malformed JSON before giving up.
func decodeArray[T any](content string) ([]T, error) {
	cleaned := stripFences(content)
	if cleaned == "" {
		return nil, &ParseError{Message: "empty output", Raw: content}
	}

	if items, ok := tryDecode[T](cleaned); ok {
		return items, nil
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		return nil, &ParseError{Message: err.Error(), Raw: content}
	}
	if items, ok := tryDecode[T](repaired); ok {
		return items, nil
	}

	return nil, &ParseError{Message: "output is not a JSON array", Raw: content}
}

// tryDecode accepts either a bare array or an object whose single array
// value holds the items (some providers wrap arrays in an object for
// json_schema response formats).
func tryDecode[T any](s string) ([]T, bool) {
	var items []T
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		return items, true
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &wrapper); err != nil {
		return nil, false
	}
	for _, raw := range wrapper {
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, true
		}
	}
	return nil, false
}

// stripFences removes surrounding markdown code fences and a leading
// language token from model output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if idx := strings.Index(s, "\n"); idx >= 0 && !strings.HasPrefix(strings.TrimSpace(s[:idx]), "[") && !strings.HasPrefix(strings.TrimSpace(s[:idx]), "{") {
			// First fence line is a language token like "json".
			s = s[idx+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
