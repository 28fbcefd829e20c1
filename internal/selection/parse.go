package selection

import (
	"math"
	"strconv"
	"strings"
)

// Parse builds a Spec from a decoded document value. Accepted shapes are an
// absent value (select everything), an integral count, and a list of integral
// indices; anything else, strings included, is an
// *InvalidSelectionTypeError. Count sign and index range are not checked
// here, Apply enforces them against the actual collection.
func Parse(section string, raw any) (Spec, error) {
	switch v := raw.(type) {
	case nil:
		return All(), nil
	case int:
		return First(v), nil
	case int64:
		return First(int(v)), nil
	case float64:
		if v != math.Trunc(v) {
			return Spec{}, &InvalidSelectionTypeError{Section: section, Value: v}
		}
		return First(int(v)), nil
	case []int:
		return AtIndices(v...), nil
	case []any:
		indices := make([]int, 0, len(v))
		for _, el := range v {
			idx, ok := asIndex(el)
			if !ok {
				return Spec{}, &NonIntegerIndexError{Section: section, Value: el}
			}
			indices = append(indices, idx)
		}
		return AtIndices(indices...), nil
	default:
		return Spec{}, &InvalidSelectionTypeError{Section: section, Value: raw}
	}
}

// ParseString builds a Spec from the CLI form: "all", a bare count such as
// "3", or a comma-separated index list such as "0,2,2". A single index is
// written with a trailing comma ("2,") to distinguish it from a count.
func ParseString(section, s string) (Spec, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return All(), nil
	}

	if !strings.Contains(s, ",") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Spec{}, &InvalidSelectionTypeError{Section: section, Value: s}
		}
		return First(n), nil
	}

	tokens := strings.Split(s, ",")
	if last := len(tokens) - 1; strings.TrimSpace(tokens[last]) == "" {
		tokens = tokens[:last]
	}
	indices := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		idx, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return Spec{}, &NonIntegerIndexError{Section: section, Value: tok}
		}
		indices = append(indices, idx)
	}
	return AtIndices(indices...), nil
}

func asIndex(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}
