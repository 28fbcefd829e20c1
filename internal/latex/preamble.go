package latex

import "fmt"

// DocumentClass declares the document class.
func DocumentClass(name string) string {
	return fmt.Sprintf(`\documentclass{%s}`, name)
}

// UsePackage includes a package.
func UsePackage(name string) string {
	return fmt.Sprintf(`\usepackage{%s}`, name)
}

// Margins sets the page margins in inches via the geometry package.
func Margins(left, top, right, bottom float64) string {
	return fmt.Sprintf(`\usepackage[left=%gin, top=%gin, right=%gin, bottom=%gin]{geometry}`,
		left, top, right, bottom)
}

// NewCommand defines a one-argument command with the given expansion.
func NewCommand(name, expansion string) string {
	return fmt.Sprintf(`\newcommand{\%s}[1]{%s}`, name, expansion)
}

// IndentCommand defines the \tab helper for standard indentation.
func IndentCommand() string {
	return NewCommand("tab", `\hspace{0.2667\textwidth}`)
}

// NoIndentCommand defines the \itab helper for flush alignment.
func NoIndentCommand() string {
	return NewCommand("itab", `\hspace{0em}`)
}

// FootnoteCommand defines \blfootnote, a footnote without a reference mark.
func FootnoteCommand() string {
	return `\newcommand\blfootnote[1]{%
  \begingroup
  \renewcommand\thefootnote{}\footnote{#1}%
  \addtocounter{footnote}{-1}%
  \endgroup
}`
}
