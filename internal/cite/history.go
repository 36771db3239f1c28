// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import "github.com/pdiddy/incipit-engine/pkg/types"

// Form is the 3-way classification of an endnote entry.
type Form string

const (
	// FormFull renders all available structured fields.
	FormFull Form = "full"

	// FormShort renders author surname and short title only.
	FormShort Form = "short"

	// FormIbid suppresses citation fields; only the style's Ibid marker
	// and a changed page number are rendered.
	FormIbid Form = "ibid"
)

// Decision is the tracker's verdict for one entry.
type Decision struct {
	Form Form

	// FirstIndex is the note index where this source was first cited in
	// full. Equal to the entry's own index for full-form decisions.
	// Numbered-reference styles render repeats against this index.
	FirstIndex int

	// PagesChanged reports whether an Ibid-eligible entry cites
	// different pages than the immediately preceding entry.
	PagesChanged bool
}

// Tracker walks the endnote list in strict ascending index order and
// classifies each entry as full, short, or Ibid based on the citation
// history of the pass. State is scoped to one document pass and must
// not be shared across documents; within a pass the tracker is strictly
// sequential and must not be used concurrently.
type Tracker struct {
	lastKey   types.CitationKey
	lastPages string
	seen      map[types.CitationKey]int
}

// NewTracker creates an empty history for one document pass.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[types.CitationKey]int)}
}

// Classify decides the citation form for entry and advances the history.
// Entries must be presented in ascending index order. Citations with an
// empty key (no derivable identity) never match previous entries and are
// always classified full.
func (t *Tracker) Classify(entry types.EndnoteEntry) Decision {
	key := entry.Citation.Key()

	d := Decision{Form: FormFull, FirstIndex: entry.Index}
	switch {
	case key != "" && key == t.lastKey:
		d.Form = FormIbid
		d.FirstIndex = t.seen[key]
		d.PagesChanged = entry.Citation.Pages != t.lastPages
	case key != "":
		if first, ok := t.seen[key]; ok {
			d.Form = FormShort
			d.FirstIndex = first
		}
	}

	t.lastKey = key
	t.lastPages = entry.Citation.Pages
	if key != "" {
		if _, ok := t.seen[key]; !ok {
			t.seen[key] = entry.Index
		}
	}
	return d
}
