// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/incipit-engine/internal/rewrite"
	"github.com/pdiddy/incipit-engine/pkg/types"
)

const sampleDoc = `name: osheroff-draft
sentences:
  - anchor_id: a1
    text: Recent findings suggest otherwise.
    marker_offset: 34
endnotes:
  - index: 1
    anchor_id: a1
    text: "Smith, John. The Great Work. Journal of Psychiatry 12 (2020): 45-60."
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.yaml")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "osheroff-draft" {
		t.Errorf("Name = %q, want osheroff-draft", doc.Name)
	}
	if len(doc.Sentences) != 1 || doc.Sentences[0].AnchorID != "a1" {
		t.Errorf("Sentences = %+v", doc.Sentences)
	}
	if doc.Sentences[0].MarkerOffset != 34 {
		t.Errorf("MarkerOffset = %d, want 34", doc.Sentences[0].MarkerOffset)
	}
	if len(doc.Endnotes) != 1 || doc.Endnotes[0].Index != 1 {
		t.Errorf("Endnotes = %+v", doc.Endnotes)
	}
}

func TestLoadNameDefaultsToFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unnamed.yaml")
	content := strings.Replace(sampleDoc, "name: osheroff-draft\n", "", 1)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "unnamed.yaml" {
		t.Errorf("Name = %q, want unnamed.yaml", doc.Name)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: want error")
	}

	path := filepath.Join(t.TempDir(), "garbage.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml: want error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	out := &types.RewrittenDocument{
		Name: "osheroff-draft",
		Sentences: []types.BodySentence{
			{AnchorID: "a1", Text: "Recent findings suggest otherwise.<b>Recent findings suggest</b> [REF_NOTE_1]"},
		},
		Notes: []types.RewrittenNote{
			{Index: 1, Text: "John Smith, The Great Work, Journal of Psychiatry 12 (2020): 45–60."},
		},
		Bookmarks: []types.PageBookmark{
			{BodyAnchorID: "a1", TargetNoteIndex: 1, Label: "REF_NOTE_1", ID: 10000},
		},
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := Save(path, out); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got types.RewrittenDocument
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Name != out.Name {
		t.Errorf("Name = %q, want %q", got.Name, out.Name)
	}
	if len(got.Notes) != 1 || got.Notes[0].Text != out.Notes[0].Text {
		t.Errorf("Notes = %+v", got.Notes)
	}
	if len(got.Bookmarks) != 1 || got.Bookmarks[0].ID != 10000 {
		t.Errorf("Bookmarks = %+v", got.Bookmarks)
	}
}

func TestWritePreview(t *testing.T) {
	records := []rewrite.PreviewRecord{
		{
			BodyAnchorID: "a1",
			NoteIndex:    1,
			Before:       "Smith, John. The Great Work.",
			After:        "John Smith, The Great Work.",
			SourceType:   types.SourceOther,
		},
	}

	var buf bytes.Buffer
	if err := WritePreview(&buf, records); err != nil {
		t.Fatal(err)
	}

	var got []rewrite.PreviewRecord
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].After != records[0].After {
		t.Errorf("round trip = %+v", got)
	}
}
