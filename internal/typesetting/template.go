package typesetting

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

// The document class ships inside the binary so generated documents compile
// anywhere without a separate template install.
//
//go:embed resume.cls
var templateFS embed.FS

// TemplateName is the class file staged next to every generated document.
const TemplateName = "resume.cls"

// StageTemplate writes the embedded document class into dir so pdflatex can
// resolve \documentclass{resume} during compilation. An up-to-date copy is
// left alone.
func StageTemplate(dir string) error {
	want, err := templateFS.ReadFile(TemplateName)
	if err != nil {
		return fmt.Errorf("reading embedded template: %w", err)
	}

	path := filepath.Join(dir, TemplateName)
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, want) {
		return nil
	}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		return fmt.Errorf("staging template %s: %w", path, err)
	}
	return nil
}
