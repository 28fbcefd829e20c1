package schema

import "fmt"

// MissingFieldError reports a required field absent from a section record.
type MissingFieldError struct {
	Section string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Section, e.Field)
}

// TypeFieldError reports a field whose runtime type is outside the schema's
// accepted set. An empty Field means the violation is about the shape of the
// section entry itself rather than one of its fields (for example a section
// whose entry is a string where an object was declared).
type TypeFieldError struct {
	Section  string
	Field    string
	Expected string
	Actual   string
}

func (e *TypeFieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: expected %s, got %s", e.Section, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: field %q: expected %s, got %s", e.Section, e.Field, e.Expected, e.Actual)
}
