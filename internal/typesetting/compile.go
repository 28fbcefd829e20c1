package typesetting

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CompilationTimeout bounds a single pdflatex run. Resume-sized documents
// compile in well under a second; anything near the limit is a hung engine.
const CompilationTimeout = 30 * time.Second

// Compile runs pdflatex on texPath with workDir as the output directory and
// returns the path of the produced PDF together with the engine log. The
// document class must already be staged in workDir. pdflatex exiting nonzero
// while still producing a PDF is reported as a CompilationError alongside the
// path, since the PDF may be incomplete.
func Compile(texPath, workDir string) (pdfPath string, logOutput string, err error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return "", "", &CompilationError{
			Message: "pdflatex not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), CompilationTimeout)
	defer cancel()

	// nonstopmode keeps the engine from waiting on interactive prompts when
	// the source has a problem.
	cmd := exec.CommandContext(ctx, "pdflatex", "-interaction=nonstopmode", "-output-directory", workDir, texPath)
	cmd.Dir = workDir

	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output

	runErr := cmd.Run()
	logOutput = output.String()

	base := strings.TrimSuffix(filepath.Base(texPath), ".tex")
	pdfPath = filepath.Join(workDir, base+".pdf")
	if _, statErr := os.Stat(pdfPath); statErr != nil {
		return "", logOutput, &CompilationError{
			Message:   fmt.Sprintf("no PDF was produced for %s", texPath),
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	if runErr != nil {
		return pdfPath, logOutput, &CompilationError{
			Message:   "pdflatex reported errors, the PDF may be incomplete",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}
	return pdfPath, logOutput, nil
}

// CleanupAux removes the auxiliary files pdflatex leaves next to the PDF.
// Missing files are not an error.
func CleanupAux(workDir, jobName string) {
	for _, ext := range []string{".aux", ".log", ".out", ".toc", ".lof", ".lot"} {
		_ = os.Remove(filepath.Join(workDir, jobName+ext))
	}
}
