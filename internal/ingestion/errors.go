package ingestion

import "fmt"

// NotFoundError reports a source document path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source document not found: %s", e.Path)
}

// ParseError reports a source document that could not be parsed.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse source document %s: %v", e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NotAnObjectError reports a source document whose top level is not an
// object.
type NotAnObjectError struct {
	Path   string
	Actual string
}

func (e *NotAnObjectError) Error() string {
	return fmt.Sprintf("%s: top-level structure must be an object, got %s", e.Path, e.Actual)
}
