// Package ingestion loads source documents from disk into the generic tree
// the assembler consumes. It validates file presence, syntax, and the
// top-level shape; everything below the top level is the schema layer's
// responsibility.
package ingestion

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-typesetter/internal/schema"
)

// Tree is a parsed source document: section data keyed by section data key.
type Tree map[string]any

// Load reads and parses the source document at path. YAML documents are
// recognized by their .yaml/.yml extension; everything else is parsed as
// JSON.
func Load(path string) (Tree, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return LoadJSON(path)
	}
}

// LoadJSON reads and parses a JSON source document.
func LoadJSON(path string) (Tree, error) {
	content, err := read(path)
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := json.Unmarshal(content, &decoded); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}
	return asTree(path, decoded)
}

// LoadYAML reads and parses a YAML source document.
func LoadYAML(path string) (Tree, error) {
	content, err := read(path)
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := yaml.Unmarshal(content, &decoded); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}
	return asTree(path, decoded)
}

func read(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("reading source document %s: %w", path, err)
	}
	return content, nil
}

func asTree(path string, decoded any) (Tree, error) {
	root, ok := decoded.(map[string]any)
	if !ok {
		return nil, &NotAnObjectError{Path: path, Actual: schema.TypeName(decoded)}
	}
	return Tree(root), nil
}
