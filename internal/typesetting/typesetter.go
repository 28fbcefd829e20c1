// Package typesetting turns assembled LaTeX source into files on disk: the
// .tex document, the staged document class it depends on, and optionally the
// compiled PDF.
package typesetting

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultOutputDir is where generated documents land when the caller
	// does not choose a directory.
	DefaultOutputDir = "outputs"
	// DefaultJobName is the base name of the generated files.
	DefaultJobName = "resume"
)

// Typesetter writes a completed document to disk. It satisfies the
// assembler's finalizer contract: Finalize receives the full LaTeX source
// exactly once per document.
type Typesetter struct {
	// OutputDir receives the .tex, the staged class file, and the PDF.
	OutputDir string
	// JobName is the base name for generated files, without extension.
	JobName string
	// PDF runs pdflatex after the source is written.
	PDF bool
	// KeepAux leaves pdflatex's auxiliary files in place after compilation.
	KeepAux bool
}

// TexPath returns the path of the generated LaTeX source file.
func (t *Typesetter) TexPath() string {
	return filepath.Join(t.outputDir(), t.jobName()+".tex")
}

// PDFPath returns the path the compiled PDF lands at.
func (t *Typesetter) PDFPath() string {
	return filepath.Join(t.outputDir(), t.jobName()+".pdf")
}

// Finalize stages the document class, writes the source, and compiles it when
// PDF output was requested. The .tex file is written before compilation is
// attempted, so a failed compile still leaves the source on disk for
// inspection.
func (t *Typesetter) Finalize(source string) error {
	dir := t.outputDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	if err := StageTemplate(dir); err != nil {
		return err
	}

	texPath := t.TexPath()
	if err := os.WriteFile(texPath, []byte(source), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", texPath, err)
	}

	if !t.PDF {
		return nil
	}

	if _, _, err := Compile(texPath, dir); err != nil {
		return err
	}
	if !t.KeepAux {
		CleanupAux(dir, t.jobName())
	}
	return nil
}

func (t *Typesetter) outputDir() string {
	if t.OutputDir == "" {
		return DefaultOutputDir
	}
	return t.OutputDir
}

func (t *Typesetter) jobName() string {
	if t.JobName == "" {
		return DefaultJobName
	}
	return t.JobName
}
