package sections

import (
	"fmt"

	"github.com/jonathan/resume-typesetter/internal/latex"
	"github.com/jonathan/resume-typesetter/internal/schema"
)

// Projects and certificates share one entry shape: a named item with a short
// description and an optional external link.
var portfolioSchema = schema.Schema{
	{Name: "name", Kind: schema.String},
	{Name: "bullets", Kind: schema.StringList},
	{Name: "link", Kind: schema.StringOrNil, Optional: true},
}

func renderProjects(buf *latex.Buffer, records []schema.Record) {
	renderCollection(buf, "PROJECTS", true, records, portfolioItem)
}

func renderCertificates(buf *latex.Buffer, records []schema.Record) {
	renderCollection(buf, "CERTIFICATIONS", true, records, portfolioItem)
}

// portfolioItem emits one list item: the bold name, the first bullet as the
// description, and a trailing "(See more here)" link when the entry has one.
// A missing link produces no link markup at all.
func portfolioItem(rec schema.Record) []string {
	name := latex.Bold(latex.Escape(rec.String("name")))

	desc := ""
	if bullets := rec.Strings("bullets"); len(bullets) > 0 {
		desc = latex.Escape(bullets[0])
	}
	if link, ok := rec.StringOrNil("link"); ok && link != "" {
		see := latex.Href(latex.EscapeURL(link), "(See more here)")
		if desc != "" {
			desc += " " + see
		} else {
			desc = see
		}
	}

	if desc == "" {
		return []string{latex.Item(name)}
	}
	return []string{latex.Item(fmt.Sprintf("%s {%s}", name, desc))}
}
