package assembly

import "fmt"

// UnknownSectionError reports a requested section name with no registry
// entry.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section %q", e.Section)
}

// MissingSectionError reports a registered section whose data key is absent
// from the source document.
type MissingSectionError struct {
	Section string
	DataKey string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("section %q: source document has no %q entry", e.Section, e.DataKey)
}

// StateError reports an operation invoked in the wrong lifecycle state, such
// as rendering a section before the preamble or finalizing twice. These are
// programmer errors: the assembler fails fast instead of reordering or
// dropping output.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s: document is %s", e.Op, e.State)
}
