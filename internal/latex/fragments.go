package latex

import "fmt"

// LineBreak forces a line break within a block.
const LineBreak = `\\`

// Bold wraps text in bold styling. The text must already be escaped.
func Bold(text string) string {
	return fmt.Sprintf(`\textbf{%s}`, text)
}

// Italic wraps text in italic styling. The text must already be escaped.
func Italic(text string) string {
	return fmt.Sprintf(`\textit{%s}`, text)
}

// Href emits a hyperlink with the given target and visible label. Callers
// escape the target with EscapeURL and the label with Escape.
func Href(target, label string) string {
	return fmt.Sprintf(`\href{%s}{%s}`, target, label)
}

// Item emits one entry of an itemized list.
func Item(text string) string {
	return fmt.Sprintf(`\item %s`, text)
}

// BeginItemize opens a compact itemized list. The tightened item separation
// matches the one-page layout the document class is designed for.
func BeginItemize() string {
	return `\begin{itemize} \itemsep -6pt {}`
}

// EndItemize closes an itemized list.
func EndItemize() string {
	return `\end{itemize}`
}

// BeginSection opens a named section container.
func BeginSection(title string) string {
	return fmt.Sprintf(`\begin{rSection}{%s}`, title)
}

// EndSection closes a section container.
func EndSection() string {
	return `\end{rSection}`
}

// BeginDocument opens the document environment.
func BeginDocument() string {
	return `\begin{document}`
}

// EndDocument closes the document environment.
func EndDocument() string {
	return `\end{document}`
}

// VSpace inserts vertical space measured in em units.
func VSpace(em float64) string {
	return fmt.Sprintf(`\vspace{%gem}`, em)
}
