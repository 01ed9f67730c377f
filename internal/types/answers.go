// Package types provides type definitions for structured data used throughout the ideafit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// QuizAnswers is the raw, untrusted answer set submitted by the quiz client.
// Values are either a single string token or a list of string tokens
// (multi-select questions). Anything else is ignored by the readers below.
type QuizAnswers map[string]any

// StringOr returns the answer for key as a string, or fallback when the
// answer is absent or not a plain string.
func (a QuizAnswers) StringOr(key, fallback string) string {
	v, ok := a[key]
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return fallback
	}
	return s
}

// StringList returns the answer for key as a list of strings. Single string
// answers are wrapped in a one-element list. Absent or malformed answers
// return an empty (non-nil) list.
func (a QuizAnswers) StringList(key string) []string {
	v, ok := a[key]
	if !ok {
		return []string{}
	}

	switch val := v.(type) {
	case string:
		if val == "" {
			return []string{}
		}
		return []string{val}
	case []string:
		out := make([]string, 0, len(val))
		for _, s := range val {
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		// JSON-decoded multi-selects arrive as []any
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
