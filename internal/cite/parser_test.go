// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strings"
	"testing"

	"github.com/pdiddy/incipit-engine/pkg/types"
)

func TestParseJournal(t *testing.T) {
	raw := "Smith, John. The Great Work. Journal of Psychiatry 12 (2020): 45-60."
	c := Parse(raw)

	if c.SourceType != types.SourceJournalArticle {
		t.Fatalf("SourceType = %q, want %q", c.SourceType, types.SourceJournalArticle)
	}
	if len(c.Authors) != 1 || c.Authors[0].Family != "Smith" || c.Authors[0].Given != "John" {
		t.Errorf("Authors = %+v, want [Smith, John]", c.Authors)
	}
	if c.Title != "The Great Work" {
		t.Errorf("Title = %q, want %q", c.Title, "The Great Work")
	}
	if c.Container != "Journal of Psychiatry" {
		t.Errorf("Container = %q, want %q", c.Container, "Journal of Psychiatry")
	}
	if c.Volume != "12" || c.Year != 2020 {
		t.Errorf("Volume/Year = %q/%d, want 12/2020", c.Volume, c.Year)
	}
	if c.Pages != "45–60" {
		t.Errorf("Pages = %q, want %q (hyphen normalized to en-dash)", c.Pages, "45–60")
	}
	if c.RawText != raw {
		t.Errorf("RawText = %q, want original input", c.RawText)
	}
	if c.Confidence < 0.8 {
		t.Errorf("Confidence = %v, want >= 0.8", c.Confidence)
	}
}

func TestParseJournalMedical(t *testing.T) {
	raw := "Stone AA. Law, Psychiatry, and Morality. American Journal of Psychiatry. 1984;141(2):190-197."
	c := Parse(raw)

	if c.SourceType != types.SourceJournalArticle {
		t.Fatalf("SourceType = %q, want journal-article", c.SourceType)
	}
	if len(c.Authors) != 1 || c.Authors[0].Family != "Stone" || c.Authors[0].Given != "AA" {
		t.Errorf("Authors = %+v, want [Stone AA]", c.Authors)
	}
	if c.Container != "American Journal of Psychiatry" {
		t.Errorf("Container = %q", c.Container)
	}
	if c.Year != 1984 || c.Volume != "141" || c.Issue != "2" {
		t.Errorf("Year/Volume/Issue = %d/%q/%q, want 1984/141/2", c.Year, c.Volume, c.Issue)
	}
	if c.Pages != "190–197" {
		t.Errorf("Pages = %q, want 190–197", c.Pages)
	}
}

func TestParseJournalEtAl(t *testing.T) {
	c := Parse("Smith, John, et al. The Great Work. Journal of Psychiatry 12 (2020): 45-60.")
	if !c.EtAl {
		t.Error("EtAl = false, want true")
	}
	if len(c.Authors) != 1 || c.Authors[0].Family != "Smith" {
		t.Errorf("Authors = %+v, want [Smith, John]", c.Authors)
	}
	if c.Title != "The Great Work" {
		t.Errorf("Title = %q", c.Title)
	}
}

func TestParseBook(t *testing.T) {
	c := Parse("Smith, John. The Great Work (Boston: Houghton Mifflin, 1985), 44.")

	if c.SourceType != types.SourceBook {
		t.Fatalf("SourceType = %q, want book", c.SourceType)
	}
	if c.Title != "The Great Work" {
		t.Errorf("Title = %q, want The Great Work", c.Title)
	}
	if c.Container != "Boston: Houghton Mifflin" {
		t.Errorf("Container = %q, want Boston: Houghton Mifflin", c.Container)
	}
	if c.Year != 1985 || c.Pages != "44" {
		t.Errorf("Year/Pages = %d/%q, want 1985/44", c.Year, c.Pages)
	}
}

func TestParseChapter(t *testing.T) {
	c := Parse(`Jones, Mary. "A Difficult Case," in Clinical Tales.`)

	if c.SourceType != types.SourceChapter {
		t.Fatalf("SourceType = %q, want chapter", c.SourceType)
	}
	if c.Title != "A Difficult Case" {
		t.Errorf("Title = %q, want A Difficult Case", c.Title)
	}
	if c.Container != "Clinical Tales" {
		t.Errorf("Container = %q, want Clinical Tales", c.Container)
	}
	if len(c.Authors) != 1 || c.Authors[0].Family != "Jones" {
		t.Errorf("Authors = %+v", c.Authors)
	}
}

func TestParseLegal(t *testing.T) {
	raw := "Osheroff v. Chestnut Lodge, 490 A.2d 720 (Md. 1985)."
	c := Parse(raw)

	if c.SourceType != types.SourceLegalCase {
		t.Fatalf("SourceType = %q, want legal-case", c.SourceType)
	}
	if !strings.HasPrefix(c.Title, "Osheroff v. Chestnut Lodge") {
		t.Errorf("Title = %q, want full case reference", c.Title)
	}
	if c.Year != 1985 {
		t.Errorf("Year = %d, want 1985", c.Year)
	}
	if c.RawText != raw {
		t.Errorf("RawText = %q, want original input", c.RawText)
	}
}

func TestParseArchival(t *testing.T) {
	c := Parse("Osheroff Papers, Box 7, Chestnut Lodge Archives.")

	if c.SourceType != types.SourceArchival {
		t.Fatalf("SourceType = %q, want archival-document", c.SourceType)
	}
	if c.Title != "Osheroff Papers" {
		t.Errorf("Title = %q, want Osheroff Papers", c.Title)
	}
}

func TestParseArbitration(t *testing.T) {
	c := Parse("Osheroff Arbitration Tapes, Tape 3.")

	if c.SourceType != types.SourceArbitration {
		t.Fatalf("SourceType = %q, want arbitration-document", c.SourceType)
	}
	if c.Title != "Osheroff Arbitration Tapes" {
		t.Errorf("Title = %q", c.Title)
	}
}

func TestParsePersonalArchive(t *testing.T) {
	c := Parse("Klerman Personal Archive, Correspondence File.")
	if c.SourceType != types.SourcePersonal {
		t.Fatalf("SourceType = %q, want personal-archive", c.SourceType)
	}
	if c.Title != "Klerman Personal Archive" {
		t.Errorf("Title = %q", c.Title)
	}
}

func TestParseTranscript(t *testing.T) {
	c := Parse("Klerman Deposition, Oct 15, 1985.")

	if c.SourceType != types.SourceArchival {
		t.Fatalf("SourceType = %q, want archival-document", c.SourceType)
	}
	if c.Title != "Klerman Deposition" {
		t.Errorf("Title = %q, want Klerman Deposition", c.Title)
	}
	if c.Year != 1985 {
		t.Errorf("Year = %d, want 1985 (trailing year is not a page reference)", c.Year)
	}
	if c.Pages != "" {
		t.Errorf("Pages = %q, want empty", c.Pages)
	}
}

func TestParseGeneric(t *testing.T) {
	c := Parse("Klerman, Gerald. Letter to the editor.")

	if c.SourceType != types.SourceOther {
		t.Fatalf("SourceType = %q, want other", c.SourceType)
	}
	if len(c.Authors) != 1 || c.Authors[0].Family != "Klerman" || c.Authors[0].Given != "Gerald" {
		t.Errorf("Authors = %+v", c.Authors)
	}
	if c.Title != "Letter to the editor" {
		t.Errorf("Title = %q", c.Title)
	}
}

// TestParseFallback verifies that unmatchable input degrades to a
// raw-text-only citation without error, for any input at all.
func TestParseFallback(t *testing.T) {
	inputs := []string{
		"completely unstructured scribble",
		"",
		"   ",
		"...",
		"1985",
		"p. 12",
		`"`,
		"v.",
	}
	for _, raw := range inputs {
		c := Parse(raw)
		if c.RawText != raw {
			t.Errorf("Parse(%q).RawText = %q, want input preserved", raw, c.RawText)
		}
		if c.Confidence != 0 {
			t.Errorf("Parse(%q).Confidence = %v, want 0", raw, c.Confidence)
		}
		if !c.Degraded() {
			t.Errorf("Parse(%q) not degraded: %+v", raw, c)
		}
		if len(c.Authors) != 0 || c.Title != "" || c.Container != "" {
			t.Errorf("Parse(%q) populated structured fields: %+v", raw, c)
		}
	}
}

// TestParsePriority checks the tie-breaks between overlapping shapes.
func TestParsePriority(t *testing.T) {
	// "Tape 3" alone would match the archival shape; the arbitration
	// shape outranks it.
	c := Parse("Osheroff Arbitration Videos, Tape 3.")
	if c.SourceType != types.SourceArbitration {
		t.Errorf("SourceType = %q, want arbitration-document", c.SourceType)
	}

	// A book publication block outranks the quoted-chapter shape.
	c = Parse(`Smith, John. "The Case," in Psychiatry on Trial (New York: Basic Books, 1984), 22.`)
	if c.SourceType != types.SourceBook {
		t.Errorf("SourceType = %q, want book", c.SourceType)
	}

	// "X Personal Archive, ..." also matches the generic archival
	// "X Archives?, ..." pattern; the dedicated shape must claim it.
	c = Parse("Klerman Personal Archive, Correspondence File.")
	if c.SourceType != types.SourcePersonal {
		t.Errorf("SourceType = %q, want personal-archive", c.SourceType)
	}
}

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Smith, John. The Great Work. Journal 12", []string{"Smith, John", "The Great Work", "Journal 12"}},
		{"Smith, J. A. The Work", []string{"Smith, J. A. The Work"}},
		{"Smith, John, et al. The Work", []string{"Smith, John, et al", "The Work"}},
		{"One segment only", []string{"One segment only"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := splitSegments(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitSegments(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitSegments(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"published in 1985", 1985},
		{"(2020): 45", 2020},
		{"volume 141", 0},
		{"in 1776", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := extractYear(tt.in); got != tt.want {
			t.Errorf("extractYear(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
