// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import "fmt"

// Warning records a per-entry soft failure: the parser could not
// populate structured fields and the note fell back to its raw text.
// Warnings never abort a pass.
type Warning struct {
	NoteIndex int    `json:"note_index" yaml:"note_index"`
	Reason    string `json:"reason" yaml:"reason"`
}

func (w Warning) String() string {
	return fmt.Sprintf("note %d: %s", w.NoteIndex, w.Reason)
}

// Report accumulates the outcome of one document pass.
type Report struct {
	// NotesTotal is the number of endnotes visited.
	NotesTotal int `json:"notes_total" yaml:"notes_total"`

	// NotesRewritten is the number rendered by the style.
	NotesRewritten int `json:"notes_rewritten" yaml:"notes_rewritten"`

	// Warnings lists degraded entries that passed through unchanged.
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Degraded returns the number of entries that fell back to raw text.
func (r *Report) Degraded() int {
	return len(r.Warnings)
}

func (r *Report) addWarning(index int, reason string) {
	r.Warnings = append(r.Warnings, Warning{NoteIndex: index, Reason: reason})
}
