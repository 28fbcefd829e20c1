package sections

import (
	"github.com/jonathan/resume-typesetter/internal/latex"
	"github.com/jonathan/resume-typesetter/internal/schema"
)

var interestsSchema = schema.Schema{
	{Name: "items", Kind: schema.StringList},
}

// renderInterests emits each item group as its own comma-joined line, with a
// blank line between groups so each group sets as its own paragraph.
func renderInterests(buf *latex.Buffer, records []schema.Record) {
	if len(records) == 0 {
		return
	}

	buf.Append(latex.BeginSection("INTERESTS"))
	for i, rec := range records {
		if i > 0 {
			buf.Append("")
		}
		buf.Append(joinItems(rec.Strings("items")))
	}
	buf.Append(latex.EndSection())
}
