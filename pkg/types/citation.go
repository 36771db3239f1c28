// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the incipit engine:
// citations, endnotes, incipit phrases, bookmarks, and configuration.
package types

import (
	"fmt"
	"regexp"
	"strings"
)

// SourceType classifies the kind of source a citation refers to.
type SourceType string

const (
	SourceJournalArticle SourceType = "journal-article"
	SourceBook           SourceType = "book"
	SourceChapter        SourceType = "chapter"
	SourceLegalCase      SourceType = "legal-case"
	SourceArchival       SourceType = "archival-document"
	SourcePersonal       SourceType = "personal-archive"
	SourceArbitration    SourceType = "arbitration-document"
	SourceOther          SourceType = "other"
)

// Author represents a single cited author.
type Author struct {
	// Family is the family (last) name.
	Family string `json:"family" yaml:"family"`

	// Given is the given name(s) or initials, possibly empty.
	Given string `json:"given,omitempty" yaml:"given,omitempty"`

	// Suffix is a generational suffix like "Jr." or "III", possibly empty.
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// GivenFirst renders the author as "Given Family, Suffix".
func (a Author) GivenFirst() string {
	s := strings.TrimSpace(a.Given + " " + a.Family)
	if a.Suffix != "" {
		s += ", " + a.Suffix
	}
	return s
}

// FamilyFirst renders the author as "Family, Given, Suffix".
func (a Author) FamilyFirst() string {
	s := a.Family
	if a.Given != "" {
		s += ", " + a.Given
	}
	if a.Suffix != "" {
		s += ", " + a.Suffix
	}
	return s
}

// Citation holds the structured fields parsed from one raw endnote.
// RawText always retains the original unparsed string so that rendering
// can fall back to passthrough when structured fields are missing.
type Citation struct {
	// Authors lists the cited authors in source order.
	Authors []Author `json:"authors,omitempty" yaml:"authors,omitempty"`

	// EtAl records an "et al." marker found after the author block.
	EtAl bool `json:"et_al,omitempty" yaml:"et_al,omitempty"`

	// Title is the work title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Container is the journal, book, or collection holding the work.
	Container string `json:"container,omitempty" yaml:"container,omitempty"`

	// Year is the publication year, 0 when unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	Volume string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue  string `json:"issue,omitempty" yaml:"issue,omitempty"`
	Pages  string `json:"pages,omitempty" yaml:"pages,omitempty"`

	// SourceType classifies the citation shape that matched.
	SourceType SourceType `json:"source_type" yaml:"source_type"`

	// RawText is the original endnote text. Never discarded.
	RawText string `json:"raw_text" yaml:"raw_text"`

	// Confidence is the winning shape's match confidence in [0,1].
	// Zero means no shape matched and only RawText is populated.
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Degraded reports whether parsing produced no usable structured fields.
func (c Citation) Degraded() bool {
	return c.Title == "" && len(c.Authors) == 0
}

// EndnoteEntry pairs a parsed citation with its position in the document.
type EndnoteEntry struct {
	// Index is the 1-based endnote number, matching document numbering.
	Index int `json:"index" yaml:"index"`

	// Citation holds the parsed fields for this note.
	Citation Citation `json:"citation" yaml:"citation"`

	// BodyAnchorID references the body-text location citing this note.
	BodyAnchorID string `json:"body_anchor_id" yaml:"body_anchor_id"`

	// RenderedForm is attached by the engine after rendering.
	RenderedForm string `json:"rendered_form,omitempty" yaml:"rendered_form,omitempty"`
}

// CitationKey is the derived identity used for repeat detection. Two
// entries sharing a key are "the same source" for Ibid/short-form purposes.
// The empty key never matches anything, including itself.
type CitationKey string

var nonWordRe = regexp.MustCompile(`\W+`)

// keyTitlePrefixLen bounds the normalized title prefix used in keys.
const keyTitlePrefixLen = 25

// Key derives the CitationKey from the first author's family name, a
// normalized title prefix, and the year. Citations without a title have
// no identity and return the empty key.
func (c Citation) Key() CitationKey {
	if c.Title == "" {
		return ""
	}
	auth := "noauth"
	if len(c.Authors) > 0 {
		auth = strings.ToLower(nonWordRe.ReplaceAllString(c.Authors[0].Family, ""))
	}
	title := strings.ToLower(nonWordRe.ReplaceAllString(c.Title, ""))
	if len(title) > keyTitlePrefixLen {
		title = title[:keyTitlePrefixLen]
	}
	return CitationKey(fmt.Sprintf("%s_%s_%d", auth, title, c.Year))
}

// IncipitPhrase is the bounded contextual phrase preceding a citation marker.
type IncipitPhrase struct {
	// Words holds the collected tokens in body-text order.
	Words []string `json:"words" yaml:"words"`

	// Truncated is true when collection stopped before reaching the
	// configured word count (sentence start, boundary punctuation, or an
	// opening quotation mark).
	Truncated bool `json:"truncated" yaml:"truncated"`
}

// Text joins the phrase words with single spaces.
func (p IncipitPhrase) Text() string {
	return strings.Join(p.Words, " ")
}

// Empty reports whether the phrase has no words.
func (p IncipitPhrase) Empty() bool {
	return len(p.Words) == 0
}

// PageBookmark links a body citation location to its rewritten endnote.
// Created once per endnote during rewriting and never mutated.
type PageBookmark struct {
	// BodyAnchorID is the body-text location of the citation marker.
	BodyAnchorID string `json:"body_anchor_id" yaml:"body_anchor_id"`

	// TargetNoteIndex is the 1-based index of the rewritten endnote.
	TargetNoteIndex int `json:"target_note_index" yaml:"target_note_index"`

	// Label is the bookmark name, unique within the document
	// (e.g. "REF_NOTE_3").
	Label string `json:"label" yaml:"label"`

	// ID is the numeric bookmark identifier allocated by the rewriter.
	ID int `json:"id" yaml:"id"`
}
