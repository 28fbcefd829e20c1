package sections

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-typesetter/internal/latex"
	"github.com/jonathan/resume-typesetter/internal/schema"
)

var skillsSchema = schema.Schema{
	{Name: "category", Kind: schema.String},
	{Name: "items", Kind: schema.StringList},
}

// renderSkills emits a two-column table associating each category with its
// comma-joined items, in category declaration order. The column spec bolds
// the category column. No entries means no section at all.
func renderSkills(buf *latex.Buffer, records []schema.Record) {
	if len(records) == 0 {
		return
	}

	buf.Append(latex.BeginSection("SKILLS"))
	buf.Append(`\begin{tabular}{ @{} >{\bfseries}l @{\hspace{6ex}} p{0.8\textwidth} }`)
	for _, rec := range records {
		category := latex.Escape(rec.String("category"))
		buf.Append(fmt.Sprintf(`%s & %s%s`, category, joinItems(rec.Strings("items")), latex.LineBreak))
	}
	buf.Append(`\end{tabular}`)
	buf.Append(latex.EndSection())
}

func joinItems(items []string) string {
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = latex.Escape(item)
	}
	return strings.Join(escaped, ", ")
}
