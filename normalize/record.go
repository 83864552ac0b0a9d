// ABOUTME: Loosely typed field bag decoded from external platforms
// ABOUTME: Accessors apply falsy-means-absent rules to untyped JSON values
package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Record is one external record: an optional id plus a bag of untyped JSON
// values keyed by the source's field names.
type Record struct {
	ID          string         `json:"id"`
	Fields      map[string]any `json:"fields"`
	CreatedTime string         `json:"createdTime,omitempty"`
}

// Value returns the raw field value, nil when absent.
func (r Record) Value(key string) any {
	if r.Fields == nil {
		return nil
	}
	return r.Fields[key]
}

// Text returns the field rendered as a string and whether it was present.
// Empty strings, zero, NaN, false, empty arrays and objects count as absent.
func (r Record) Text(key string) (string, bool) {
	return textOf(r.Value(key))
}

// TextOr returns Text or fallback when the field is absent.
func (r Record) TextOr(key, fallback string) string {
	if s, ok := r.Text(key); ok {
		return s
	}
	return fallback
}

// Number returns the field when it is a JSON number. Strings are not coerced.
func (r Record) Number(key string) (float64, bool) {
	n, ok := r.Value(key).(float64)
	if !ok || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// Truthy reports whether the field holds a non-empty, non-zero value.
func (r Record) Truthy(key string) bool {
	return truthy(r.Value(key))
}

// String returns the field only when it is a JSON string.
func (r Record) String(key string) (string, bool) {
	s, ok := r.Value(key).(string)
	return s, ok
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	default:
		// Arrays and objects are always truthy at the source
		return true
	}
}

func textOf(v any) (string, bool) {
	if !truthy(v) {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return "true", true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case int:
		return strconv.Itoa(x), true
	case []any:
		// Linked-record and multi-select fields arrive as lists
		parts := make([]string, 0, len(x))
		for _, item := range x {
			if s, ok := textOf(item); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ", "), true
	default:
		return "", false
	}
}
