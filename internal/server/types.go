package server

import (
	"github.com/go-playground/validator/v10"
)

// Render output formats.
const (
	FormatTex       = "tex"
	FormatFragments = "fragments"
)

// RenderRequest is the payload of POST /render: the source document inline,
// plus the optional section order, per-section selections (in their
// document forms: a count or an index list; omit for everything), and
// output format.
type RenderRequest struct {
	Source     map[string]any `json:"source" validate:"required"`
	Sections   []string       `json:"sections,omitempty"`
	Selections map[string]any `json:"selections,omitempty"`
	Format     string         `json:"format,omitempty" validate:"omitempty,oneof=tex fragments"`
	// Strict runs the JSON Schema lint over the source before assembly.
	Strict bool `json:"strict,omitempty"`
}

// RenderResponse carries one assembled document.
type RenderResponse struct {
	RenderID  string   `json:"render_id"`
	Format    string   `json:"format"`
	Tex       string   `json:"tex,omitempty"`
	Fragments []string `json:"fragments,omitempty"`
}

// SectionInfo describes one registry entry for GET /sections.
type SectionInfo struct {
	Name       string `json:"name"`
	DataKey    string `json:"data_key"`
	Title      string `json:"title,omitempty"`
	Singleton  bool   `json:"singleton"`
	Selectable bool   `json:"selectable"`
}

// SectionsResponse lists the registry in natural document order.
type SectionsResponse struct {
	Sections []SectionInfo `json:"sections"`
}

// Validate validates the RenderRequest using the validator.
func (r *RenderRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
