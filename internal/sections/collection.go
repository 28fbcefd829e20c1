package sections

import (
	"github.com/jonathan/resume-typesetter/internal/latex"
	"github.com/jonathan/resume-typesetter/internal/schema"
)

// renderCollection emits a titled section container holding one block per
// record. An empty record set emits nothing at all, not even the heading.
// With itemList set the entry blocks are gathered into a single compact
// itemized list (projects, certificates); otherwise each block stands on its
// own (experience, education).
func renderCollection(buf *latex.Buffer, title string, itemList bool, records []schema.Record, block func(schema.Record) []string) {
	if len(records) == 0 {
		return
	}

	buf.Append(latex.BeginSection(title))
	if itemList {
		buf.Append(latex.VSpace(-1.75))
		buf.Append(latex.BeginItemize())
	}
	for _, rec := range records {
		buf.Append(block(rec)...)
	}
	if itemList {
		buf.Append(latex.EndItemize())
	}
	buf.Append(latex.EndSection())
}

// bulletBlock emits a compact itemized list for an entry's bullets. Absent
// or empty bullets emit nothing, empty containers are never produced.
func bulletBlock(bullets []string) []string {
	if len(bullets) == 0 {
		return nil
	}

	out := make([]string, 0, len(bullets)+2)
	out = append(out, latex.BeginItemize())
	for _, b := range bullets {
		out = append(out, latex.Item(latex.Escape(b)))
	}
	return append(out, latex.EndItemize())
}
