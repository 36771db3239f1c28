// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journals provides the static journal abbreviation table.
// The table is loaded once, treated as immutable, and safely shared
// across concurrent document passes.
package journals

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed journals.yaml
var embeddedTable []byte

// Entry is one full-name to abbreviation mapping.
type Entry struct {
	Name   string `json:"name" yaml:"name"`
	Abbrev string `json:"abbrev" yaml:"abbrev"`
}

// Table maps normalized journal names to their standard abbreviations.
// Lookup is case-insensitive and exact on the normalized name. A Table
// is never mutated after construction.
type Table struct {
	entries map[string]Entry
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table built from the embedded data. The embedded
// table is validated at build time by tests, so a parse failure here is
// a packaging bug.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := parse(embeddedTable)
		if err != nil {
			panic(fmt.Sprintf("journals: embedded table invalid: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Load reads a table from a YAML file with the same shape as the
// embedded data.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading journal table: %w", err)
	}
	t, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing journal table %s: %w", path, err)
	}
	return t, nil
}

func parse(data []byte) (*Table, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	t := &Table{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Name == "" || e.Abbrev == "" {
			return nil, fmt.Errorf("entry missing name or abbrev: %+v", e)
		}
		t.entries[Normalize(e.Name)] = e
	}
	return t, nil
}

// Normalize lowercases a journal name, collapses interior whitespace,
// strips a leading article, and trims surrounding punctuation.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.Trim(name, ".,;: ")
	name = strings.Join(strings.Fields(name), " ")
	name = strings.TrimPrefix(name, "the ")
	return name
}

// Lookup returns the abbreviation for name and whether it was found.
func (t *Table) Lookup(name string) (string, bool) {
	e, ok := t.entries[Normalize(name)]
	if !ok {
		return "", false
	}
	return e.Abbrev, true
}

// Abbreviate returns the standard abbreviation for name, or name
// unchanged, byte for byte, when the table has no entry for it.
func (t *Table) Abbreviate(name string) string {
	if abbrev, ok := t.Lookup(name); ok {
		return abbrev
	}
	return name
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns all entries sorted by full name.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
