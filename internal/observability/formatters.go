// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-typesetter/internal/ingestion"
	"github.com/jonathan/resume-typesetter/internal/schema"
	"github.com/jonathan/resume-typesetter/internal/sections"
	"github.com/jonathan/resume-typesetter/internal/selection"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSourceOutline outputs a per-section summary of the loaded source
// document: how many entries each registered section carries, or that its
// data key is absent.
func (p *Printer) PrintSourceOutline(tree ingestion.Tree) {
	if tree == nil {
		return
	}

	var sb strings.Builder
	for _, desc := range sections.Descriptors() {
		value, ok := tree[desc.DataKey]
		switch {
		case !ok:
			sb.WriteString(fmt.Sprintf("%-14s absent\n", desc.Name))
		case desc.Singleton:
			sb.WriteString(fmt.Sprintf("%-14s 1 record\n", desc.Name))
		default:
			if list, isList := value.([]any); isList {
				sb.WriteString(fmt.Sprintf("%-14s %d entries\n", desc.Name, len(list)))
			} else {
				sb.WriteString(fmt.Sprintf("%-14s malformed (%s)\n", desc.Name, schema.TypeName(value)))
			}
		}
	}

	p.printBox("SOURCE DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRequest outputs the resolved render request: the section order that
// will be assembled and the selection applied to each selectable section.
func (p *Printer) PrintRequest(order []string, selections map[string]selection.Spec) {
	if len(order) == 0 {
		order = sections.NaturalOrder()
	}

	var sb strings.Builder
	sb.WriteString("Order:\n")
	count := min(len(order), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, order[i]))
	}
	if len(order) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(order)-maxItemsToShow))
	}

	if len(selections) > 0 {
		sb.WriteString("\nSelections:\n")
		for _, name := range order {
			spec, ok := selections[name]
			if !ok {
				continue
			}
			desc, registered := sections.Lookup(name)
			note := ""
			if registered && !desc.Selectable {
				note = " (ignored: fixed section)"
			}
			sb.WriteString(fmt.Sprintf("  %s → %s%s\n", name, spec.String(), note))
		}
	}

	p.printBox("RENDER REQUEST", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the assembly totals and where the generated files
// landed. pdfPath may be empty when no PDF was requested.
func (p *Printer) PrintResult(fragments int, bytes int, texPath, pdfPath string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fragments: %d\n", fragments))
	sb.WriteString(fmt.Sprintf("Bytes:     %d\n", bytes))
	sb.WriteString(fmt.Sprintf("Source:    %s\n", texPath))
	if pdfPath != "" {
		sb.WriteString(fmt.Sprintf("PDF:       %s\n", pdfPath))
	}

	p.printBox("ASSEMBLY COMPLETE", strings.TrimSuffix(sb.String(), "\n"))
}
