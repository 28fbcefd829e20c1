package sections

import (
	"fmt"

	"github.com/jonathan/resume-typesetter/internal/latex"
	"github.com/jonathan/resume-typesetter/internal/schema"
)

// HeaderName is the registry identifier of the header section. The assembler
// treats it specially: the header is always emitted before the body opens.
const HeaderName = "header"

var headerSchema = schema.Schema{
	{Name: "first_name", Kind: schema.String},
	{Name: "last_name", Kind: schema.String},
	{Name: "email", Kind: schema.String},
	{Name: "phone", Kind: schema.String},
	{Name: "location", Kind: schema.String},
	{Name: "linkedin", Kind: schema.StringOrNil, Optional: true},
}

// renderHeader emits the contact block: the full name, the phone/location
// address line, and the email address line with an optional LinkedIn link.
// The document class prints these when the document body opens.
func renderHeader(buf *latex.Buffer, records []schema.Record) {
	if len(records) == 0 {
		return
	}
	rec := records[0]

	first := latex.Escape(rec.String("first_name"))
	last := latex.Escape(rec.String("last_name"))
	phone := latex.Escape(rec.String("phone"))
	location := latex.Escape(rec.String("location"))
	email := rec.String("email")

	buf.Append(fmt.Sprintf(`\name{%s %s}`, first, last))
	buf.Append(fmt.Sprintf(`\address{%s %s %s}`, phone, latex.LineBreak, location))

	emailLink := latex.Href("mailto:"+latex.EscapeURL(email), latex.Escape(email))
	if linkedin, ok := rec.StringOrNil("linkedin"); ok && linkedin != "" {
		profileLink := latex.Href(latex.EscapeURL(linkedin), latex.Escape(linkedin))
		buf.Append(fmt.Sprintf(`\address{%s %s %s}`, emailLink, latex.LineBreak, profileLink))
	} else {
		buf.Append(fmt.Sprintf(`\address{%s}`, emailLink))
	}
}
