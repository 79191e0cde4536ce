package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StringList normalizes a client-submitted list field (tags, colors,
// sizes). The second return value is false when the field was absent,
// which callers treat as "no update". Normalization never fails: any
// input degrades to some string slice.
//
// Sequences pass through unchanged apart from element stringification;
// strings are parsed as a JSON array when they start with '[' and split
// on commas otherwise (or when the JSON parse fails); any other scalar
// becomes a single-element list of its string form.
func StringList(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case nil:
		return nil, false
	case []string:
		return v, true
	case []any:
		return stringifyAll(v), true
	case string:
		return splitList(v), true
	default:
		return []string{scalarString(v)}, true
	}
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}

	if strings.HasPrefix(s, "[") {
		var arr []any
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			return stringifyAll(arr)
		}
		// Malformed JSON falls through to the comma split.
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func stringifyAll(elems []any) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		if s, ok := e.(string); ok {
			out[i] = s
			continue
		}
		out[i] = scalarString(e)
	}
	return out
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	case nil:
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
