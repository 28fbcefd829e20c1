package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-typesetter/internal/assembly"
	"github.com/jonathan/resume-typesetter/internal/schema"
	"github.com/jonathan/resume-typesetter/internal/schemas"
	"github.com/jonathan/resume-typesetter/internal/selection"
)

// HTTPStatus returns the appropriate HTTP status code for an error from the
// assembly pipeline. Malformed requests (unknown sections, bad selection
// shapes) map to 400; requests that are well-formed but cannot be satisfied
// by the supplied document (missing sections, field violations, out-of-range
// indices) map to 422.
func HTTPStatus(err error) int {
	switch {
	case errors.As(err, new(*assembly.UnknownSectionError)),
		errors.As(err, new(*selection.InvalidSelectionTypeError)),
		errors.As(err, new(*selection.NonIntegerIndexError)),
		errors.As(err, new(*selection.NegativeCountError)):
		return http.StatusBadRequest
	case errors.As(err, new(*assembly.MissingSectionError)),
		errors.As(err, new(*schema.MissingFieldError)),
		errors.As(err, new(*schema.TypeFieldError)),
		errors.As(err, new(*selection.IndexOutOfRangeError)),
		errors.As(err, new(*schemas.ValidationError)):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
