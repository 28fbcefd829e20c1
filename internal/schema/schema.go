// Package schema provides field-level validation of raw section records
// against declared field schemas.
package schema

import "math"

// Kind identifies the set of runtime types a field accepts.
type Kind int

const (
	// String accepts a string value.
	String Kind = iota
	// Integer accepts an integral number (JSON numbers arrive as float64).
	Integer
	// StringOrNil accepts a string or an explicit null.
	StringOrNil
	// IntegerOrNil accepts an integral number or an explicit null.
	IntegerOrNil
	// StringList accepts a list whose elements are all strings.
	StringList
)

// String returns the schema-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case StringOrNil:
		return "string-or-null"
	case IntegerOrNil:
		return "integer-or-null"
	case StringList:
		return "list-of-string"
	default:
		return "unknown"
	}
}

// Field declares one schema entry: a field name and its accepted type set.
// Optional fields may be absent entirely; when present they are still
// type-checked.
type Field struct {
	Name     string
	Kind     Kind
	Optional bool
}

// Schema is an ordered list of field declarations. The slice order is the
// declaration order: validation walks it front to back and reports the first
// violation it finds, so error messages are reproducible for a given schema
// regardless of map iteration or document order.
type Schema []Field

// Validate checks rec against the schema. It returns a *MissingFieldError for
// the first absent required field or a *TypeFieldError for the first field
// whose runtime type is outside its accepted set, in declaration order. The
// record is never mutated.
func (s Schema) Validate(rec Record, section string) error {
	for _, f := range s {
		v, ok := rec[f.Name]
		if !ok {
			if f.Optional {
				continue
			}
			return &MissingFieldError{Section: section, Field: f.Name}
		}
		if err := checkField(section, f, v); err != nil {
			return err
		}
	}
	return nil
}

func checkField(section string, f Field, v any) error {
	switch f.Kind {
	case String:
		if _, ok := v.(string); !ok {
			return typeErr(section, f, v)
		}
	case StringOrNil:
		if v == nil {
			return nil
		}
		if _, ok := v.(string); !ok {
			return typeErr(section, f, v)
		}
	case Integer:
		if !isIntegral(v) {
			return typeErr(section, f, v)
		}
	case IntegerOrNil:
		if v == nil {
			return nil
		}
		if !isIntegral(v) {
			return typeErr(section, f, v)
		}
	case StringList:
		switch items := v.(type) {
		case []string:
			return nil
		case []any:
			for _, el := range items {
				if _, ok := el.(string); !ok {
					return &TypeFieldError{
						Section:  section,
						Field:    f.Name,
						Expected: f.Kind.String(),
						Actual:   "list containing " + TypeName(el),
					}
				}
			}
		default:
			return typeErr(section, f, v)
		}
	}
	return nil
}

func typeErr(section string, f Field, v any) *TypeFieldError {
	return &TypeFieldError{
		Section:  section,
		Field:    f.Name,
		Expected: f.Kind.String(),
		Actual:   TypeName(v),
	}
}

// isIntegral reports whether v is an integer-valued number. JSON decoding
// produces float64, YAML decoding produces int; both are accepted as long as
// the value has no fractional part.
func isIntegral(v any) bool {
	switch n := v.(type) {
	case int, int32, int64:
		return true
	case float64:
		return n == math.Trunc(n)
	default:
		return false
	}
}

// TypeName names the runtime type of a decoded document value the way the
// schema language talks about it (string, integer, number, list, object,
// boolean, null).
func TypeName(v any) string {
	switch n := v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int32, int64:
		return "integer"
	case float64:
		if n == math.Trunc(n) {
			return "integer"
		}
		return "number"
	case []any, []string:
		return "list"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
