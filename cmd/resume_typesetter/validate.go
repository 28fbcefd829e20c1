package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-typesetter/internal/assembly"
	"github.com/jonathan/resume-typesetter/internal/ingestion"
	"github.com/jonathan/resume-typesetter/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <document> [document...]",
	Short: "Validate source documents without rendering",
	Long: `Checks each document twice: a JSON Schema lint that reports every
structural violation at once, then the same per-section field validation the
render pipeline applies, which reports the first violation in schema order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var validateSchemaFile string

func init() {
	validateCmd.Flags().StringVar(&validateSchemaFile, "schema", "", "Path to the JSON Schema (default: the bundled resume schema)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	schemaPath := validateSchemaFile
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.DefaultSchemaPath)
	}
	if schemaPath == "" {
		return fmt.Errorf("schema not found: pass --schema or run from the repository root")
	}

	// One goroutine per document; results land in their own slot so output
	// order matches argument order.
	results := make([]error, len(args))
	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			results[i] = validateFile(schemaPath, path)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, path := range args {
		if results[i] != nil {
			failed++
			_, _ = fmt.Fprintf(os.Stdout, "FAIL  %s\n      %v\n", path, results[i])
		} else {
			_, _ = fmt.Fprintf(os.Stdout, "OK    %s\n", path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
	}
	return nil
}

// validateFile loads one document and checks it against the JSON Schema and
// the per-section field schemas.
func validateFile(schemaPath, path string) error {
	tree, err := ingestion.Load(path)
	if err != nil {
		return err
	}
	if err := schemas.ValidateTree(schemaPath, map[string]any(tree)); err != nil {
		return err
	}
	return assembly.ValidateSource(tree)
}
