package schema

import "math"

// Record is one decoded entry of a section: a JSON/YAML object keyed by field
// name. Accessors assume the record has already passed Validate for the
// schema that declares the field; on a validated record they never misfire.
type Record map[string]any

// String returns the string value of field name.
func (r Record) String(name string) string {
	s, _ := r[name].(string)
	return s
}

// StringOrNil returns the string value of field name and whether it was
// present and non-null.
func (r Record) StringOrNil(name string) (string, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns the integer value of field name.
func (r Record) Int(name string) int {
	n, _ := asInt(r[name])
	return n
}

// IntOrNil returns the integer value of field name and whether it was present
// and non-null.
func (r Record) IntOrNil(name string) (int, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return 0, false
	}
	return asInt(v)
}

// Strings returns the string-list value of field name. Both []string and
// []any element forms are handled; on a validated record every element is a
// string.
func (r Record) Strings(name string) []string {
	switch items := r[name].(type) {
	case []string:
		return items
	case []any:
		out := make([]string, 0, len(items))
		for _, el := range items {
			if s, ok := el.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Has reports whether field name is present and non-null.
func (r Record) Has(name string) bool {
	v, ok := r[name]
	return ok && v != nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}
