package sections

import (
	"fmt"
	"strconv"

	"github.com/jonathan/resume-typesetter/internal/latex"
	"github.com/jonathan/resume-typesetter/internal/schema"
)

var educationSchema = schema.Schema{
	{Name: "school", Kind: schema.String},
	{Name: "degree", Kind: schema.String},
	{Name: "subject", Kind: schema.String},
	{Name: "start_year", Kind: schema.Integer},
	{Name: "end_year", Kind: schema.IntegerOrNil},
	{Name: "location", Kind: schema.String},
	{Name: "bullets", Kind: schema.StringList},
}

func renderEducation(buf *latex.Buffer, records []schema.Record) {
	renderCollection(buf, "EDUCATION", false, records, educationBlock)
}

// educationBlock mirrors the experience block shape: bold degree and subject
// with the right-aligned year span, then the school with its italic location.
func educationBlock(rec schema.Record) []string {
	degree := latex.Escape(rec.String("degree"))
	subject := latex.Escape(rec.String("subject"))
	school := latex.Escape(rec.String("school"))
	location := latex.Escape(rec.String("location"))

	start := strconv.Itoa(rec.Int("start_year"))
	end := ongoingMarker
	if year, ok := rec.IntOrNil("end_year"); ok {
		end = strconv.Itoa(year)
	}

	frags := []string{
		fmt.Sprintf(`%s \hfill %s - %s%s`, latex.Bold(degree+" "+subject), start, end, latex.LineBreak),
		fmt.Sprintf(`%s \hfill %s`, school, latex.Italic(location)),
		latex.VSpace(-0.5),
	}
	return append(frags, bulletBlock(rec.Strings("bullets"))...)
}
