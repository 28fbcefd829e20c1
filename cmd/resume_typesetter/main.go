// Package main provides the entry point for the resume typesetter CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_typesetter",
	Short: "Resume Typesetter",
	Long:  "Resume Typesetter turns a structured resume document into a formatted LaTeX resume, with per-section schema validation and per-entry selection.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
