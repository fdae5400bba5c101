package validator

import (
	"fmt"
	"strings"
)

// present reports whether v is set to a non-empty value. Missing keys,
// nulls, empty strings, false and zero all count as absent.
func present(v any) bool {
	switch typed := v.(type) {
	case nil:
		return false
	case string:
		return typed != ""
	case bool:
		return typed
	case float64:
		return typed != 0
	case int:
		return typed != 0
	case int64:
		return typed != 0
	case uint64:
		return typed != 0
	default:
		return true
	}
}

func asArray(v any) ([]any, bool) {
	items, ok := v.([]any)
	return items, ok
}

func asMapping(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// text renders a scalar for a message. Absent values render empty.
func text(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// truncate keeps the first n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// distinct returns the values of items as strings, dropping absent entries
// and duplicates while keeping first-seen order.
func distinct(items []any) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if !present(item) {
			continue
		}
		s := text(item)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// missingFrom returns the entries of want that are not in have.
func missingFrom(want, have []string) []string {
	set := make(map[string]bool, len(have))
	for _, h := range have {
		set[h] = true
	}
	var missing []string
	for _, w := range want {
		if !set[w] {
			missing = append(missing, w)
		}
	}
	return missing
}

func joinList(values []string) string {
	return strings.Join(values, ", ")
}
