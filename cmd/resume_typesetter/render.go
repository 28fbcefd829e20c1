package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-typesetter/internal/assembly"
	"github.com/jonathan/resume-typesetter/internal/config"
	"github.com/jonathan/resume-typesetter/internal/ingestion"
	"github.com/jonathan/resume-typesetter/internal/observability"
	"github.com/jonathan/resume-typesetter/internal/schemas"
	"github.com/jonathan/resume-typesetter/internal/selection"
	"github.com/jonathan/resume-typesetter/internal/typesetting"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Assemble a resume document into LaTeX (and optionally a PDF)",
	Long: `Loads a structured resume document, validates each requested section
against its field schema, applies per-section selections, and writes the
assembled LaTeX source. With --pdf the source is also compiled.`,
	RunE: runRender,
}

var (
	renderSourceFile string
	renderConfigFile string
	renderOutputDir  string
	renderJobName    string
	renderPDF        bool
	renderKeepAux    bool
	renderSections   []string
	renderSelects    []string
	renderSchemaFile string
	renderStrict     bool
	renderVerbose    bool
	renderWatch      bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderSourceFile, "source", "s", "", "Path to the source document (JSON or YAML)")
	renderCmd.Flags().StringVarP(&renderConfigFile, "config", "c", "", "Path to a JSON or TOML config file with defaults")
	renderCmd.Flags().StringVarP(&renderOutputDir, "out", "o", "", "Output directory (default \"outputs\")")
	renderCmd.Flags().StringVar(&renderJobName, "job-name", "", "Base name of the generated files (default \"resume\")")
	renderCmd.Flags().BoolVar(&renderPDF, "pdf", false, "Compile the PDF with pdflatex after writing the source")
	renderCmd.Flags().BoolVar(&renderKeepAux, "keep-aux", false, "Keep pdflatex auxiliary files after compilation")
	renderCmd.Flags().StringSliceVar(&renderSections, "sections", nil, "Section order (default: full registry order)")
	renderCmd.Flags().StringArrayVar(&renderSelects, "select", nil, "Per-section selection, e.g. --select experience=2 --select projects=0,2 (repeatable)")
	renderCmd.Flags().StringVar(&renderSchemaFile, "schema", "", "Path to the JSON Schema used with --strict")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "Lint the source against the JSON Schema before assembling")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print detailed debug information")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "Re-render whenever the source document changes")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Source:    renderSourceFile,
		OutputDir: renderOutputDir,
		Schema:    renderSchemaFile,
		JobName:   renderJobName,
		PDF:       renderPDF,
		KeepAux:   renderKeepAux,
		Sections:  renderSections,
		Verbose:   renderVerbose,
	}

	if renderConfigFile != "" {
		fileCfg, err := config.LoadConfig(renderConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Source == "" {
		return fmt.Errorf("a source document is required: pass --source or set 'source' in the config file")
	}

	// CLI selections override config-file selections per section.
	flagSelects, err := parseSelectEntries(renderSelects)
	if err != nil {
		return err
	}
	merged := make(map[string]string, len(cfg.Selections)+len(flagSelects))
	for name, spec := range cfg.Selections {
		merged[name] = spec
	}
	for name, spec := range flagSelects {
		merged[name] = spec
	}
	specs, err := buildSpecs(merged)
	if err != nil {
		return err
	}

	if err := renderOnce(cfg, specs, os.Stdout); err != nil {
		return err
	}
	if renderWatch {
		return watchAndRender(cfg, specs, os.Stdout)
	}
	return nil
}

// parseSelectEntries splits repeated --select flags of the form
// "section=spec" into a map. A later entry for the same section wins.
func parseSelectEntries(entries []string) (map[string]string, error) {
	out := make(map[string]string, len(entries))
	for _, entry := range entries {
		name, spec, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --select %q: want section=spec, e.g. experience=2", entry)
		}
		out[name] = spec
	}
	return out, nil
}

// buildSpecs parses CLI-form selection strings into selection specs.
func buildSpecs(selects map[string]string) (map[string]selection.Spec, error) {
	specs := make(map[string]selection.Spec, len(selects))
	for name, raw := range selects {
		spec, err := selection.ParseString(name, raw)
		if err != nil {
			return nil, err
		}
		specs[name] = spec
	}
	return specs, nil
}

// renderOnce runs one full assembly of the configured source document.
func renderOnce(cfg config.Config, specs map[string]selection.Spec, out io.Writer) error {
	tree, err := ingestion.Load(cfg.Source)
	if err != nil {
		return err
	}

	if renderStrict {
		schemaPath := cfg.Schema
		if schemaPath == "" {
			schemaPath = schemas.ResolveSchemaPath(schemas.DefaultSchemaPath)
		}
		if schemaPath == "" {
			return fmt.Errorf("--strict requires a schema: pass --schema or run from the repository root")
		}
		if err := schemas.ValidateTree(schemaPath, map[string]any(tree)); err != nil {
			return err
		}
	}

	var printer *observability.Printer
	if cfg.Verbose {
		printer = observability.NewPrinter(out)
		printer.PrintSourceOutline(tree)
		printer.PrintRequest(cfg.Sections, specs)
	}

	ts := &typesetting.Typesetter{
		OutputDir: cfg.OutputDir,
		JobName:   cfg.JobName,
		PDF:       cfg.PDF,
		KeepAux:   cfg.KeepAux,
	}

	asm, err := assembly.Assemble(tree, assembly.Request{
		Sections:   cfg.Sections,
		Selections: specs,
	}, ts)
	if err != nil {
		return err
	}

	source := asm.Source()
	pdfPath := ""
	if cfg.PDF {
		pdfPath = ts.PDFPath()
	}
	if printer != nil {
		printer.PrintResult(len(asm.Fragments()), len(source), ts.TexPath(), pdfPath)
	}

	_, _ = fmt.Fprintf(out, "Assembled %d fragments\n", len(asm.Fragments()))
	_, _ = fmt.Fprintf(out, "Output: %s\n", ts.TexPath())
	if pdfPath != "" {
		_, _ = fmt.Fprintf(out, "PDF: %s\n", pdfPath)
	}
	return nil
}

// watchAndRender re-renders whenever the source document changes, until
// interrupted. Render failures are reported and watching continues: a
// half-saved document should not kill the loop.
func watchAndRender(cfg config.Config, specs map[string]selection.Spec, out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	sourceAbs, err := filepath.Abs(cfg.Source)
	if err != nil {
		return fmt.Errorf("failed to resolve source path: %w", err)
	}
	// Watch the directory, not the file: editors replace files on save,
	// which drops a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(sourceAbs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(sourceAbs), err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	_, _ = fmt.Fprintf(out, "Watching %s for changes (Ctrl-C to stop)\n", cfg.Source)

	// Debounce: editors fire several events per save.
	var pending *time.Timer
	renders := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			changed, err := filepath.Abs(event.Name)
			if err != nil || changed != sourceAbs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case renders <- struct{}{}:
				default:
				}
			})
		case <-renders:
			_, _ = fmt.Fprintf(out, "Change detected, re-rendering %s\n", cfg.Source)
			if err := renderOnce(cfg, specs, out); err != nil {
				_, _ = fmt.Fprintf(out, "Render failed: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			_, _ = fmt.Fprintf(out, "Watch error: %v\n", err)
		case <-stop:
			_, _ = fmt.Fprintln(out, "Stopped watching")
			return nil
		}
	}
}
