// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journals

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	table := Default()
	if table.Len() < 20 {
		t.Errorf("embedded table has %d entries, want at least 20", table.Len())
	}

	abbrev, ok := table.Lookup("American Journal of Psychiatry")
	if !ok || abbrev != "Am J Psychiatry" {
		t.Errorf("Lookup = %q/%v, want Am J Psychiatry/true", abbrev, ok)
	}
}

func TestLookupNormalization(t *testing.T) {
	table := Default()
	for _, name := range []string{
		"american journal of psychiatry",
		"AMERICAN JOURNAL OF PSYCHIATRY",
		"  American  Journal of Psychiatry. ",
	} {
		if abbrev, ok := table.Lookup(name); !ok || abbrev != "Am J Psychiatry" {
			t.Errorf("Lookup(%q) = %q/%v, want Am J Psychiatry/true", name, abbrev, ok)
		}
	}

	// Leading article is ignored: "The Lancet" and "Lancet" are the
	// same entry.
	if abbrev, ok := table.Lookup("Lancet"); !ok || abbrev != "Lancet" {
		t.Errorf(`Lookup("Lancet") = %q/%v`, abbrev, ok)
	}
}

func TestAbbreviatePassthrough(t *testing.T) {
	table := Default()
	name := "Journal of Nonexistent Studies"
	if got := table.Abbreviate(name); got != name {
		t.Errorf("Abbreviate(%q) = %q, want input unchanged", name, got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journals.yaml")
	data := "- name: Journal of Testing\n  abbrev: J Test\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 1 {
		t.Errorf("Len = %d, want 1", table.Len())
	}
	if abbrev, ok := table.Lookup("journal of testing"); !ok || abbrev != "J Test" {
		t.Errorf("Lookup = %q/%v", abbrev, ok)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: want error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("- name: Orphan Entry\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("entry without abbrev: want error")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Lancet", "lancet"},
		{"  British  Medical Journal. ", "british medical journal"},
		{"JAMA", "jama"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEntriesSorted(t *testing.T) {
	entries := Default().Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Name > entries[i].Name {
			t.Fatalf("entries not sorted: %q before %q", entries[i-1].Name, entries[i].Name)
		}
	}
}
