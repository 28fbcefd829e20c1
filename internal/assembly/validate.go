package assembly

import (
	"github.com/jonathan/resume-typesetter/internal/ingestion"
	"github.com/jonathan/resume-typesetter/internal/sections"
)

// ValidateSource checks the whole source document against the registry
// without emitting anything: every registered section present in the tree
// must satisfy its shape and field schema, and the header must be present.
// Sections other than the header may be absent; a document only renders what
// it carries. Returns the first violation in registry order.
func ValidateSource(tree ingestion.Tree) error {
	a := New(tree)
	for _, desc := range sections.Descriptors() {
		if _, ok := tree[desc.DataKey]; !ok {
			if desc.Name == sections.HeaderName {
				return &MissingSectionError{Section: desc.Name, DataKey: desc.DataKey}
			}
			continue
		}
		if _, err := a.fetchValidated(desc); err != nil {
			return err
		}
	}
	return nil
}
