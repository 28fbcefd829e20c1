package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-typesetter/internal/schemas"
	"github.com/jonathan/resume-typesetter/internal/server"
)

var (
	servePort       int
	serveSchemaFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the render pipeline: POST /render, GET /sections, GET /health. Each request gets its own assembler.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveSchemaFile, "schema", "", "Path to the JSON Schema for strict-mode requests (default: the bundled resume schema, if found)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	schemaPath := serveSchemaFile
	if schemaPath == "" {
		// Strict mode stays unavailable when the schema cannot be located;
		// plain renders do not need it.
		schemaPath = schemas.ResolveSchemaPath(schemas.DefaultSchemaPath)
	}

	srv := server.New(server.Config{
		Port:       servePort,
		SchemaPath: schemaPath,
	})
	return srv.Start()
}
