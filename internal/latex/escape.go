package latex

import "strings"

// Escape escapes special LaTeX characters in text
// Special characters: \ { } $ & % # ^ _ ~
func Escape(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2) // Pre-allocate space for potential escaping

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// EscapeURL escapes the characters that break an \href target. URLs keep
// their structural characters (/, ?, =, ~), only % and # need escaping
// inside the argument.
func EscapeURL(url string) string {
	if url == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(url) + 4)

	for _, r := range url {
		switch r {
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
