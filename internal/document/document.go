// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document reads and writes the document object model the
// engine consumes. The enclosing application's container layer produces
// this model; here it is serialized as YAML for CLI use.
package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/incipit-engine/internal/rewrite"
	"github.com/pdiddy/incipit-engine/pkg/types"
)

// Load reads a document model from a YAML file.
func Load(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	var doc types.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = filepath.Base(path)
	}
	return &doc, nil
}

// Save writes a rewritten document to a YAML file.
func Save(path string, doc *types.RewrittenDocument) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// WritePreview streams preview records as a YAML list to w.
func WritePreview(w io.Writer, records []rewrite.PreviewRecord) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(records)
}
