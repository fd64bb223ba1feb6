package dashboard

import (
	"bytes"
	"encoding/json"
	"strings"
)

// IsJSONViewable reports whether a string value is worth opening in a JSON
// viewer: it must start with '{' or '[' and decode to an object or array.
// Plain numbers, booleans and quoted strings are not flagged.
func IsJSONViewable(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}

	// Scalars never qualify, even though they parse.
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return false
	}

	var decoded any
	if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
		return false
	}
	switch decoded.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

// PrettyJSON re-indents a JSON string with two spaces, keeping numbers
// and key order as written. Invalid JSON is returned unchanged.
func PrettyJSON(s string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(s)), "", "  "); err != nil {
		return s
	}
	return buf.String()
}
