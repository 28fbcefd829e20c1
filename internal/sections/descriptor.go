// Package sections defines the document's section set: the field schema each
// section's entries must satisfy, the renderer that turns validated entries
// into output fragments, and the registry that binds section names to both
// for uniform dispatch.
package sections

import (
	"github.com/jonathan/resume-typesetter/internal/latex"
	"github.com/jonathan/resume-typesetter/internal/schema"
)

// Descriptor binds a section identifier to everything needed to emit that
// section: the key holding its data in the source document, the heading of
// its container, the field schema, and the renderer. Descriptors are
// constructed once at process start and are read-only afterwards.
type Descriptor struct {
	// Name is the identifier callers use in section orders and selections.
	Name string
	// DataKey is the top-level key of the section's data in the source
	// document. It usually matches Name; experience is the exception.
	DataKey string
	// Title is the heading of the section container.
	Title string
	// Singleton marks sections whose data is a single object rather than a
	// list of entries.
	Singleton bool
	// Selectable marks sections that honor selection specifications. Fixed
	// sections ignore any specification supplied for them.
	Selectable bool
	// Schema is applied to every entry (for a singleton, to the one record).
	Schema schema.Schema
	// Render emits the section's fragments for validated records. Rendering
	// cannot fail: every failure mode is caught by validation first.
	Render func(*latex.Buffer, []schema.Record)
}

// Validate checks a single record against the section's schema.
func (d Descriptor) Validate(rec schema.Record) error {
	return d.Schema.Validate(rec, d.Name)
}
