package bridge

import (
	"fmt"
	"strings"
)

// Argument extraction helpers shared by providers. Arguments arrive as the
// decoded JSON the driving model produced, so numbers are float64 and
// anything may be missing.

// RequiredString returns a non-empty string argument or an error naming it.
func RequiredString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing %s", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("invalid %s", key)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("missing %s", key)
	}
	return s, nil
}

// OptionalString returns a string argument or fallback when absent or empty.
func OptionalString(args map[string]any, key, fallback string) string {
	v, ok := args[key]
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}

// OptionalInt returns an integer argument or fallback. JSON numbers decode
// as float64; plain ints are accepted for in-process callers.
func OptionalInt(args map[string]any, key string, fallback int) int {
	v, ok := args[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return fallback
	}
}

// OptionalStrings returns a string-slice argument, tolerating []any from
// decoded JSON. Missing or malformed values yield nil.
func OptionalStrings(args map[string]any, key string) []string {
	v, ok := args[key]
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
