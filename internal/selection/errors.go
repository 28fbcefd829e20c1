package selection

import "fmt"

// NegativeCountError reports a first-N selection with N below zero.
type NegativeCountError struct {
	Section string
	Count   int
}

func (e *NegativeCountError) Error() string {
	return fmt.Sprintf("%s: selection count must be non-negative, got %d", e.Section, e.Count)
}

// NonIntegerIndexError reports an explicit index list containing a value that
// is not an integer.
type NonIntegerIndexError struct {
	Section string
	Value   any
}

func (e *NonIntegerIndexError) Error() string {
	return fmt.Sprintf("%s: selection index must be an integer, got %#v", e.Section, e.Value)
}

// IndexOutOfRangeError reports an explicit index outside the collection's
// valid range.
type IndexOutOfRangeError struct {
	Section string
	Index   int
	Length  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: selection index %d out of range [0, %d)", e.Section, e.Index, e.Length)
}

// InvalidSelectionTypeError reports a selection specification whose shape is
// neither a count nor an index list.
type InvalidSelectionTypeError struct {
	Section string
	Value   any
}

func (e *InvalidSelectionTypeError) Error() string {
	return fmt.Sprintf("%s: invalid selection specification %#v: want a count or an index list", e.Section, e.Value)
}
