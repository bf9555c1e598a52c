package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sanitizer failure modes, from "nothing that looks like JSON" to "JSON
// object without the agreed shape".
var (
	ErrNoJSONFound      = errors.New("no JSON object found in model output")
	ErrUnbalancedOutput = errors.New("unbalanced braces in model output")
	ErrMalformedJSON    = errors.New("model output is not valid JSON")
	ErrMissingFilesKey  = errors.New("model output has no 'files' mapping")
)

// Sanitize extracts the first balanced JSON object from raw model output.
// Models wrap their answers in markdown fences, lead with commentary and
// sometimes emit triple double-quotes; all of that is stripped before the
// object is cut out by a brace-depth scan. The scan is deliberately naive
// about braces inside string literals: real model output that trips it also
// fails to parse, and the parse error is the clearer one.
func Sanitize(text string) (string, error) {
	candidate := strings.TrimSpace(fencedContent(text))

	// A near-empty result means the fences held nothing useful, for example
	// a bare ``` ``` pair. Fall back to the whole output minus the fences.
	if len(candidate) < 5 && len(text) > 10 {
		candidate = strings.TrimSpace(strings.ReplaceAll(text, "```", ""))
	}

	candidate = strings.ReplaceAll(candidate, `"""`, `"`)

	start := strings.Index(candidate, "{")
	if start == -1 {
		return "", fmt.Errorf("%w: %s", ErrNoJSONFound, head(candidate, 200))
	}
	candidate = candidate[start:]

	depth := 0
	for i := 0; i < len(candidate); i++ {
		switch candidate[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return candidate[:i+1], nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnbalancedOutput, head(candidate, 200))
}

// fencedContent returns the content of the first complete ``` fence pair,
// with a fence-info "json" tag stripped, or the whole text when no complete
// pair exists.
func fencedContent(text string) string {
	open := strings.Index(text, "```")
	if open == -1 {
		return text
	}
	rest := text[open+3:]
	end := strings.Index(rest, "```")
	if end == -1 {
		return text
	}
	inner := rest[:end]
	if len(inner) >= 4 && strings.EqualFold(inner[:4], "json") {
		inner = inner[4:]
	}
	return inner
}

// ParseFiles sanitizes raw model output and returns its files mapping. Values
// that are themselves JSON objects or arrays are re-rendered as indented
// JSON; any other non-string value is stringified. The model not following
// the contract is never the caller's problem: every deviation maps to one of
// the package's sentinel errors.
func ParseFiles(raw string) (map[string]string, error) {
	clean, err := Sanitize(raw)
	if err != nil {
		return nil, err
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(clean), &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	rawFiles, ok := top["files"]
	if !ok {
		return nil, ErrMissingFilesKey
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(rawFiles, &entries); err != nil {
		return nil, fmt.Errorf("%w: 'files' is not an object", ErrMissingFilesKey)
	}

	files := make(map[string]string, len(entries))
	for path, entry := range entries {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			files[path] = s
			continue
		}

		var v interface{}
		if err := json.Unmarshal(entry, &v); err != nil {
			return nil, fmt.Errorf("%w: file %q: %v", ErrMalformedJSON, path, err)
		}
		switch v.(type) {
		case map[string]interface{}, []interface{}:
			pretty, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return nil, err
			}
			files[path] = string(pretty)
		default:
			files[path] = fmt.Sprintf("%v", v)
		}
	}

	return files, nil
}

func head(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
