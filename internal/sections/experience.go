package sections

import (
	"fmt"

	"github.com/jonathan/resume-typesetter/internal/latex"
	"github.com/jonathan/resume-typesetter/internal/schema"
)

// ongoingMarker replaces a null end date or end year.
const ongoingMarker = "Present"

var experienceSchema = schema.Schema{
	{Name: "company", Kind: schema.String},
	{Name: "role", Kind: schema.String},
	{Name: "start_date", Kind: schema.String},
	{Name: "end_date", Kind: schema.StringOrNil},
	{Name: "location", Kind: schema.String},
	{Name: "bullets", Kind: schema.StringList},
}

func renderExperience(buf *latex.Buffer, records []schema.Record) {
	renderCollection(buf, "PROFESSIONAL EXPERIENCE", false, records, experienceBlock)
}

// experienceBlock emits one position: a bold role with its right-aligned
// period, the company with its italic location, and the bullets when there
// are any.
func experienceBlock(rec schema.Record) []string {
	role := latex.Escape(rec.String("role"))
	company := latex.Escape(rec.String("company"))
	location := latex.Escape(rec.String("location"))

	start := latex.Escape(rec.String("start_date"))
	end := ongoingMarker
	if v, ok := rec.StringOrNil("end_date"); ok {
		end = latex.Escape(v)
	}

	frags := []string{
		fmt.Sprintf(`%s \hfill %s - %s%s`, latex.Bold(role), start, end, latex.LineBreak),
		fmt.Sprintf(`%s \hfill %s`, company, latex.Italic(location)),
		latex.VSpace(-0.5),
	}
	return append(frags, bulletBlock(rec.Strings("bullets"))...)
}
