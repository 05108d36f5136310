package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ToNumber coerces a decoded JSON value to float64. Unparsable values come
// back as 0 so no non-numeric macro ever reaches storage.
func ToNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// StripCodeFences removes a surrounding markdown code fence from an LLM
// reply, e.g. ```json ... ```, leaving the payload for the JSON decoder.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 && !strings.ContainsAny(s[:i], "{[") {
		// drop a language tag like "json" on the fence line
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
