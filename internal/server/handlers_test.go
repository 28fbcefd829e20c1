package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-typesetter/internal/schemas"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	schemaPath := schemas.ResolveSchemaPath(schemas.DefaultSchemaPath)
	require.NotEmpty(t, schemaPath, "resume schema should be locatable from the package directory")
	return New(Config{Port: 0, SchemaPath: schemaPath})
}

func doJSON(t *testing.T, s *Server, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func renderSource() map[string]any {
	return map[string]any{
		"header": map[string]any{
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"email":      "ada@example.com",
			"phone":      "555-0100",
			"location":   "London, UK",
		},
		"professional_experience": []any{
			map[string]any{
				"company":    "Analytical Engines Ltd",
				"role":       "Engineer",
				"start_date": "Jan 1840",
				"end_date":   nil,
				"location":   "London",
				"bullets":    []any{"Wrote the first program"},
			},
			map[string]any{
				"company":    "Babbage & Co",
				"role":       "Manager",
				"start_date": "Jan 1835",
				"end_date":   "Dec 1839",
				"location":   "London",
				"bullets":    []any{"Ran the shop"},
			},
		},
	}
}

func TestHandleRender_DefaultTexFormat(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/render", RenderRequest{
		Source:   renderSource(),
		Sections: []string{"header", "experience"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp RenderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RenderID)
	assert.Equal(t, FormatTex, resp.Format)
	assert.Contains(t, resp.Tex, `\documentclass{resume}`)
	assert.Contains(t, resp.Tex, "Analytical Engines Ltd")
	assert.Empty(t, resp.Fragments)
}

func TestHandleRender_FragmentsFormat(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/render", RenderRequest{
		Source:   renderSource(),
		Sections: []string{"header", "experience"},
		Format:   FormatFragments,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp RenderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, FormatFragments, resp.Format)
	assert.NotEmpty(t, resp.Fragments)
	assert.Empty(t, resp.Tex)
}

func TestHandleRender_SelectionNarrowsOutput(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/render", RenderRequest{
		Source:     renderSource(),
		Sections:   []string{"header", "experience"},
		Selections: map[string]any{"experience": 1},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp RenderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Tex, "Analytical Engines Ltd")
	assert.NotContains(t, resp.Tex, "Babbage")
}

func TestHandleRender_InvalidJSON(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON payload")
}

func TestHandleRender_MissingSource(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/render", map[string]any{"sections": []string{"header"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid render request")
}

func TestHandleRender_UnknownSection(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/render", RenderRequest{
		Source:   renderSource(),
		Sections: []string{"header", "garnish"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `unknown section "garnish"`)
}

func TestHandleRender_FieldViolation(t *testing.T) {
	s := testServer(t)

	source := renderSource()
	source["header"].(map[string]any)["email"] = 42

	rec := doJSON(t, s, http.MethodPost, "/render", RenderRequest{
		Source:   source,
		Sections: []string{"header"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `field \"email\"`)
}

func TestHandleRender_IndexOutOfRange(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/render", RenderRequest{
		Source:     renderSource(),
		Sections:   []string{"header", "experience"},
		Selections: map[string]any{"experience": []any{5}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "out of range")
}

func TestHandleRender_BadSelectionShape(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/render", RenderRequest{
		Source:     renderSource(),
		Sections:   []string{"header", "experience"},
		Selections: map[string]any{"experience": map[string]any{"first": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid selection specification")
}

func TestHandleRender_StrictModePassesValidDocument(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/render", RenderRequest{
		Source:   renderSource(),
		Sections: []string{"header"},
		Strict:   true,
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestHandleRender_StrictModeRejectsViolations(t *testing.T) {
	s := testServer(t)

	source := renderSource()
	delete(source["header"].(map[string]any), "email")

	rec := doJSON(t, s, http.MethodPost, "/render", RenderRequest{
		Source:   source,
		Sections: []string{"header"},
		Strict:   true,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}

func TestHandleRender_StrictModeWithoutSchema(t *testing.T) {
	s := New(Config{Port: 0})

	rec := doJSON(t, s, http.MethodPost, "/render", RenderRequest{
		Source: renderSource(),
		Strict: true,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no schema configured")
}

func TestHandleSections(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodGet, "/sections", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SectionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Sections)
	assert.Equal(t, "header", resp.Sections[0].Name)
	assert.True(t, resp.Sections[0].Singleton)

	names := make([]string, 0, len(resp.Sections))
	for _, info := range resp.Sections {
		names = append(names, info.Name)
	}
	assert.Contains(t, names, "experience")
	assert.Contains(t, names, "interests")
}

func TestHandleHealth(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestMiddleware_RequestIDAssigned(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodGet, "/sections", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestMiddleware_RequestIDEchoed(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/sections", nil)
	req.Header.Set("X-Request-ID", "my-trace-id")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "my-trace-id", rec.Header().Get("X-Request-ID"))
}

func TestMiddleware_RateLimitHeaders(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodGet, "/sections", nil)
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestMiddleware_CORSPreflight(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/render", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
