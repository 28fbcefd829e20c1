package assembly

import (
	"github.com/jonathan/resume-typesetter/internal/ingestion"
	"github.com/jonathan/resume-typesetter/internal/sections"
	"github.com/jonathan/resume-typesetter/internal/selection"
)

// Request describes one document to assemble: which sections appear, in what
// order, and how each selectable section's entries are narrowed.
type Request struct {
	// Sections is the requested section order. Empty means the registry's
	// full natural order. The header renders before the body wherever it
	// appears in this list.
	Sections []string
	// Selections holds per-section selection specifications. A missing entry
	// means "all". Specifications for fixed sections are ignored.
	Selections map[string]selection.Spec
}

// Assemble runs the full document lifecycle against the source tree: request
// validation, preamble, header, body sections in requested order, body close,
// and the finalizer hand-off. On success the returned assembler holds the
// complete fragment sequence; on failure no assembler is returned and nothing
// was handed to fin. fin may be nil when no external finalization is wanted.
func Assemble(tree ingestion.Tree, req Request, fin Finalizer) (*Assembler, error) {
	order, err := bodyOrder(req)
	if err != nil {
		return nil, err
	}

	a := New(tree)
	if err := a.WritePreamble(); err != nil {
		return nil, err
	}
	if err := a.WriteHeader(); err != nil {
		return nil, err
	}
	if err := a.OpenBody(); err != nil {
		return nil, err
	}
	for _, name := range order {
		if err := a.RenderSection(name, req.Selections[name]); err != nil {
			return nil, err
		}
	}
	if err := a.CloseBody(); err != nil {
		return nil, err
	}
	if err := a.Finalize(fin); err != nil {
		return nil, err
	}
	return a, nil
}

// bodyOrder resolves the requested order to the body's section sequence. The
// whole request is checked up front: an unknown name anywhere in the order or
// the selections fails the assembly before any rendering work starts. The
// header is dropped from the body sequence since it renders ahead of it.
func bodyOrder(req Request) ([]string, error) {
	requested := req.Sections
	if len(requested) == 0 {
		requested = sections.NaturalOrder()
	}

	order := make([]string, 0, len(requested))
	for _, name := range requested {
		if _, ok := sections.Lookup(name); !ok {
			return nil, &UnknownSectionError{Section: name}
		}
		if name == sections.HeaderName {
			continue
		}
		order = append(order, name)
	}

	for name := range req.Selections {
		if _, ok := sections.Lookup(name); !ok {
			return nil, &UnknownSectionError{Section: name}
		}
	}

	return order, nil
}
