// Package selection reduces an ordered collection to the subset a caller
// asked for: everything, the first N entries, or an explicit index list.
package selection

import (
	"fmt"
	"strings"
)

// Spec is a selection specification for one collection section. The zero
// value selects every item. Use the constructors rather than filling fields
// by hand; a Spec with both Count and Indices set is rejected by Apply.
type Spec struct {
	// Count keeps the first *Count items when set.
	Count *int
	// Indices picks items by position, in the order given, when non-nil.
	// Duplicates are allowed and produce duplicate output.
	Indices []int
}

// All selects every item in source order.
func All() Spec {
	return Spec{}
}

// First selects the first n items. Values of n beyond the collection length
// select the whole collection.
func First(n int) Spec {
	return Spec{Count: &n}
}

// AtIndices selects items by position in the exact order given.
func AtIndices(indices ...int) Spec {
	if indices == nil {
		indices = []int{}
	}
	return Spec{Indices: indices}
}

// IsAll reports whether the spec selects every item.
func (s Spec) IsAll() bool {
	return s.Count == nil && s.Indices == nil
}

// String renders the spec the way the CLI accepts it.
func (s Spec) String() string {
	switch {
	case s.Count != nil:
		return fmt.Sprintf("%d", *s.Count)
	case s.Indices != nil:
		parts := make([]string, len(s.Indices))
		for i, idx := range s.Indices {
			parts[i] = fmt.Sprintf("%d", idx)
		}
		return strings.Join(parts, ",")
	default:
		return "all"
	}
}

// Apply returns the subset of items the spec selects. Source order is
// preserved for the all and first-N forms; the explicit index form follows
// the specification's own order. A count larger than len(items) is clipped
// silently. section names the collection in error messages.
func Apply[T any](items []T, spec Spec, section string) ([]T, error) {
	if spec.Count != nil && spec.Indices != nil {
		return nil, &InvalidSelectionTypeError{Section: section, Value: spec}
	}

	switch {
	case spec.Count != nil:
		n := *spec.Count
		if n < 0 {
			return nil, &NegativeCountError{Section: section, Count: n}
		}
		if n > len(items) {
			n = len(items)
		}
		return items[:n], nil

	case spec.Indices != nil:
		out := make([]T, 0, len(spec.Indices))
		for _, idx := range spec.Indices {
			if idx < 0 || idx >= len(items) {
				return nil, &IndexOutOfRangeError{Section: section, Index: idx, Length: len(items)}
			}
			out = append(out, items[idx])
		}
		return out, nil

	default:
		return items, nil
	}
}
