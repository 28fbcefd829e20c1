package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-typesetter/internal/sections"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the registered sections",
	Long:  "Lists every section the renderer knows, in natural document order: its name, the source-document key holding its data, and whether it accepts selections.",
	RunE:  runSections,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(_ *cobra.Command, _ []string) error {
	listSections(os.Stdout)
	return nil
}

func listSections(out io.Writer) {
	_, _ = fmt.Fprintf(out, "%-14s %-24s %-10s %s\n", "NAME", "SOURCE KEY", "KIND", "SELECTABLE")
	for _, d := range sections.Descriptors() {
		kind := "collection"
		if d.Singleton {
			kind = "singleton"
		}
		selectable := "no"
		if d.Selectable {
			selectable = "yes"
		}
		_, _ = fmt.Fprintf(out, "%-14s %-24s %-10s %s\n", d.Name, d.DataKey, kind, selectable)
	}
}
