// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BodySentence is one body-text sentence containing a citation marker.
// The enclosing application's document layer produces these; the engine
// treats them as the interface boundary to the document container.
type BodySentence struct {
	// AnchorID identifies the citation-marker location within this sentence.
	AnchorID string `json:"anchor_id" yaml:"anchor_id"`

	// Text is the sentence text, without the marker itself.
	Text string `json:"text" yaml:"text"`

	// MarkerOffset is the byte offset within Text where the citation
	// marker sits. Offset 0 means the marker opens the sentence.
	MarkerOffset int `json:"marker_offset" yaml:"marker_offset"`
}

// Endnote is one raw endnote as handed to the engine.
type Endnote struct {
	// Index is the 1-based endnote number in document order.
	Index int `json:"index" yaml:"index"`

	// AnchorID references the body sentence citing this note.
	AnchorID string `json:"anchor_id" yaml:"anchor_id"`

	// Text is the raw endnote text.
	Text string `json:"text" yaml:"text"`
}

// Document is the object model the engine processes: the ordered endnotes
// plus the body sentences containing their citation markers.
type Document struct {
	// Name identifies the document (e.g. original filename).
	Name string `json:"name" yaml:"name"`

	Sentences []BodySentence `json:"sentences" yaml:"sentences"`
	Endnotes  []Endnote      `json:"endnotes" yaml:"endnotes"`
}

// RewrittenNote is one endnote after style rendering.
type RewrittenNote struct {
	// Index is the 1-based endnote number, unchanged from the input.
	Index int `json:"index" yaml:"index"`

	// Text is the style-rendered citation text (or the original raw text
	// when rendering fell back to passthrough).
	Text string `json:"text" yaml:"text"`

	// Incipit is the extracted contextual phrase, possibly empty.
	Incipit IncipitPhrase `json:"incipit" yaml:"incipit"`

	// Bookmark links this note back to its body citation location.
	Bookmark PageBookmark `json:"bookmark" yaml:"bookmark"`
}

// RewrittenDocument is the result of a non-preview pass: the same document
// model with inline markers inserted and endnotes rewritten.
type RewrittenDocument struct {
	Name string `json:"name" yaml:"name"`

	// Sentences carry the body text with the inline incipit+bookmark
	// marker inserted at each citation location.
	Sentences []BodySentence `json:"sentences" yaml:"sentences"`

	// Notes holds the rewritten endnotes in ascending index order.
	Notes []RewrittenNote `json:"notes" yaml:"notes"`

	// Bookmarks lists every page bookmark registered during the pass.
	Bookmarks []PageBookmark `json:"bookmarks" yaml:"bookmarks"`
}
