// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/jonathan/resume-typesetter/internal/sections"
	"github.com/jonathan/resume-typesetter/internal/selection"
)

// Config represents the CLI configuration that can be loaded from a JSON or
// TOML file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Source    string `json:"source,omitempty" toml:"source,omitempty"`         // Path to the source document (JSON or YAML)
	OutputDir string `json:"output_dir,omitempty" toml:"output_dir,omitempty"` // Directory for generated files
	Schema    string `json:"schema,omitempty" toml:"schema,omitempty"`         // Path to the JSON Schema used for linting

	// Output
	JobName string `json:"job_name,omitempty" toml:"job_name,omitempty"` // Base name of the generated files
	PDF     bool   `json:"pdf,omitempty" toml:"pdf,omitempty"`           // Compile the PDF after writing the source
	KeepAux bool   `json:"keep_aux,omitempty" toml:"keep_aux,omitempty"` // Keep pdflatex auxiliary files

	// Document
	Sections   []string          `json:"sections,omitempty" toml:"sections,omitempty"`     // Requested section order
	Selections map[string]string `json:"selections,omitempty" toml:"selections,omitempty"` // Per-section selection in CLI form ("all", "3", "0,2,2")

	// Behavior
	Verbose bool `json:"verbose,omitempty" toml:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON or TOML file, chosen by
// extension (.toml is TOML, everything else is JSON).
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if filepath.Ext(path) == ".toml" {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
		return &cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Source != "" {
		if _, err := os.Stat(c.Source); os.IsNotExist(err) {
			return fmt.Errorf("config error: source document not found: %s", c.Source)
		}
	}
	if c.Schema != "" {
		if _, err := os.Stat(c.Schema); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.Schema)
		}
	}

	for _, name := range c.Sections {
		if _, ok := sections.Lookup(name); !ok {
			return fmt.Errorf("config error: unknown section %q in 'sections'", name)
		}
	}
	for name, spec := range c.Selections {
		if _, ok := sections.Lookup(name); !ok {
			return fmt.Errorf("config error: unknown section %q in 'selections'", name)
		}
		if _, err := selection.ParseString(name, spec); err != nil {
			return fmt.Errorf("config error: invalid selection for %q: %w", name, err)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Source == "" {
		result.Source = defaults.Source
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Schema == "" {
		result.Schema = defaults.Schema
	}
	if result.JobName == "" {
		result.JobName = defaults.JobName
	}
	if len(result.Sections) == 0 {
		result.Sections = defaults.Sections
	}
	if len(result.Selections) == 0 {
		result.Selections = defaults.Selections
	}

	// Boolean fields: true wins, a config file cannot switch a flag off
	result.PDF = result.PDF || defaults.PDF
	result.KeepAux = result.KeepAux || defaults.KeepAux
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
