// Package assembly drives document generation: it walks the source tree
// through validation, selection, and rendering, enforcing the document
// lifecycle as a state machine. The buffer moves strictly forward through
// preamble, header, body, and finalization; illegal transitions fail fast
// instead of silently reordering output.
package assembly

import (
	"github.com/jonathan/resume-typesetter/internal/ingestion"
	"github.com/jonathan/resume-typesetter/internal/latex"
	"github.com/jonathan/resume-typesetter/internal/schema"
	"github.com/jonathan/resume-typesetter/internal/sections"
	"github.com/jonathan/resume-typesetter/internal/selection"
)

// State is the assembler's position in the document lifecycle.
type State int

const (
	StateEmpty State = iota
	StatePreambleWritten
	StateHeaderWritten
	StateBodyOpen
	StateBodyClosed
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePreambleWritten:
		return "preamble written"
	case StateHeaderWritten:
		return "header written"
	case StateBodyOpen:
		return "body open"
	case StateBodyClosed:
		return "body closed"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// documentClass is the LaTeX class the preamble declares. The typesetting
// layer stages the matching .cls file next to the generated source.
const documentClass = "resume"

// Assembler owns one document's buffer and source tree. Each section's data
// is fetched and validated at most once per assembler; repeated references
// reuse the cached validated records. An Assembler is single-use and not safe
// for concurrent access: build one per document.
type Assembler struct {
	tree  ingestion.Tree
	buf   *latex.Buffer
	state State
	cache map[string][]schema.Record
}

// New returns an assembler for the given source tree, in the empty state.
func New(tree ingestion.Tree) *Assembler {
	return &Assembler{
		tree:  tree,
		buf:   latex.NewBuffer(),
		cache: make(map[string][]schema.Record),
	}
}

// State returns the assembler's current lifecycle state.
func (a *Assembler) State() State {
	return a.state
}

// Fragments returns a copy of the emitted fragments in order.
func (a *Assembler) Fragments() []string {
	return a.buf.Fragments()
}

// Source renders the buffer as LaTeX source.
func (a *Assembler) Source() string {
	return a.buf.String()
}

// WritePreamble emits the document class, page geometry, and the reusable
// command definitions. Empty -> PreambleWritten.
func (a *Assembler) WritePreamble() error {
	if a.state != StateEmpty {
		return &StateError{Op: "write preamble", State: a.state}
	}

	a.buf.Append(
		latex.DocumentClass(documentClass),
		latex.Margins(0.4, 0.4, 0.4, 0.4),
		latex.FootnoteCommand(),
		latex.IndentCommand(),
		latex.NoIndentCommand(),
	)
	a.state = StatePreambleWritten
	return nil
}

// WriteHeader validates and emits the header section. The header always
// precedes the body: its declarations must be in place before the document
// environment opens. PreambleWritten -> HeaderWritten.
func (a *Assembler) WriteHeader() error {
	if a.state != StatePreambleWritten {
		return &StateError{Op: "write header", State: a.state}
	}

	desc, _ := sections.Lookup(sections.HeaderName)
	records, err := a.fetchValidated(desc)
	if err != nil {
		return err
	}

	desc.Render(a.buf, records)
	a.state = StateHeaderWritten
	return nil
}

// OpenBody opens the document environment. HeaderWritten -> BodyOpen.
func (a *Assembler) OpenBody() error {
	if a.state != StateHeaderWritten {
		return &StateError{Op: "open body", State: a.state}
	}

	a.buf.Append(latex.BeginDocument())
	a.state = StateBodyOpen
	return nil
}

// RenderSection validates, selects, and emits one body section. The section's
// records are validated in full before any fragment is emitted, so a failed
// section leaves the buffer untouched. Selection specifications are honored
// for selectable sections and ignored for fixed ones. The assembler stays in
// BodyOpen.
func (a *Assembler) RenderSection(name string, spec selection.Spec) error {
	if a.state != StateBodyOpen {
		return &StateError{Op: "render section", State: a.state}
	}
	if name == sections.HeaderName {
		return &StateError{Op: "render header", State: a.state}
	}

	desc, ok := sections.Lookup(name)
	if !ok {
		return &UnknownSectionError{Section: name}
	}

	records, err := a.fetchValidated(desc)
	if err != nil {
		return err
	}

	subset := records
	if desc.Selectable {
		subset, err = selection.Apply(records, spec, name)
		if err != nil {
			return err
		}
	}

	desc.Render(a.buf, subset)
	return nil
}

// CloseBody closes the document environment. BodyOpen -> BodyClosed.
func (a *Assembler) CloseBody() error {
	if a.state != StateBodyOpen {
		return &StateError{Op: "close body", State: a.state}
	}

	a.buf.Append(latex.EndDocument())
	a.state = StateBodyClosed
	return nil
}

// Finalize hands the completed source to fin. The transition happens before
// the hand-off, so the finalizer runs at most once per document even when it
// fails; a failed finalization is surfaced, not retried. A nil finalizer
// completes the lifecycle without an external hand-off.
// BodyClosed -> Finalized.
func (a *Assembler) Finalize(fin Finalizer) error {
	if a.state != StateBodyClosed {
		return &StateError{Op: "finalize", State: a.state}
	}

	a.state = StateFinalized
	if fin != nil {
		return fin.Finalize(a.buf.String())
	}
	return nil
}

// fetchValidated returns the section's validated records, reading and
// validating the source data on first use and the cache afterwards. The
// whole record set is validated before anything is returned, a section is
// never partially accepted.
func (a *Assembler) fetchValidated(desc sections.Descriptor) ([]schema.Record, error) {
	if records, ok := a.cache[desc.Name]; ok {
		return records, nil
	}

	value, ok := a.tree[desc.DataKey]
	if !ok {
		return nil, &MissingSectionError{Section: desc.Name, DataKey: desc.DataKey}
	}

	records, err := shapeRecords(desc, value)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := desc.Validate(rec); err != nil {
			return nil, err
		}
	}

	a.cache[desc.Name] = records
	return records, nil
}

// shapeRecords checks the section value's top-level shape: one object for a
// singleton section, a list of objects otherwise.
func shapeRecords(desc sections.Descriptor, value any) ([]schema.Record, error) {
	if desc.Singleton {
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, &schema.TypeFieldError{
				Section:  desc.Name,
				Expected: "object",
				Actual:   schema.TypeName(value),
			}
		}
		return []schema.Record{schema.Record(obj)}, nil
	}

	list, ok := value.([]any)
	if !ok {
		return nil, &schema.TypeFieldError{
			Section:  desc.Name,
			Expected: "list",
			Actual:   schema.TypeName(value),
		}
	}
	records := make([]schema.Record, 0, len(list))
	for _, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, &schema.TypeFieldError{
				Section:  desc.Name,
				Expected: "object",
				Actual:   schema.TypeName(el),
			}
		}
		records = append(records, schema.Record(obj))
	}
	return records, nil
}
