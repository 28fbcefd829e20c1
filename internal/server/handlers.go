package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-typesetter/internal/assembly"
	"github.com/jonathan/resume-typesetter/internal/ingestion"
	"github.com/jonathan/resume-typesetter/internal/schemas"
	"github.com/jonathan/resume-typesetter/internal/sections"
	"github.com/jonathan/resume-typesetter/internal/selection"
)

// handleRender assembles one document from an inline source tree. The
// request is validated in full before any assembly work: payload shape,
// optional strict schema lint, then section order and selections inside
// Assemble itself.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid render request: "+err.Error())
		return
	}

	if req.Strict {
		if s.schemaPath == "" {
			s.errorResponse(w, http.StatusBadRequest, "strict mode requested but the server has no schema configured")
			return
		}
		if err := schemas.ValidateTree(s.schemaPath, req.Source); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	specs := make(map[string]selection.Spec, len(req.Selections))
	for name, raw := range req.Selections {
		spec, err := selection.Parse(name, raw)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		specs[name] = spec
	}

	asm, err := assembly.Assemble(ingestion.Tree(req.Source), assembly.Request{
		Sections:   req.Sections,
		Selections: specs,
	}, nil)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := RenderResponse{
		RenderID: uuid.NewString(),
		Format:   req.Format,
	}
	if resp.Format == "" {
		resp.Format = FormatTex
	}
	switch resp.Format {
	case FormatFragments:
		resp.Fragments = asm.Fragments()
	default:
		resp.Tex = asm.Source()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleSections lists the section registry in natural order.
func (s *Server) handleSections(w http.ResponseWriter, _ *http.Request) {
	descriptors := sections.Descriptors()
	resp := SectionsResponse{Sections: make([]SectionInfo, 0, len(descriptors))}
	for _, d := range descriptors {
		resp.Sections = append(resp.Sections, SectionInfo{
			Name:       d.Name,
			DataKey:    d.DataKey,
			Title:      d.Title,
			Singleton:  d.Singleton,
			Selectable: d.Selectable,
		})
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
