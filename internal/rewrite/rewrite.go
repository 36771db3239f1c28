// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rewrite orchestrates the citation transformation pass: it
// walks a document's endnotes in order, classifies and renders each
// citation, extracts incipits, and emits page bookmarks.
package rewrite

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/pdiddy/incipit-engine/internal/cite"
	"github.com/pdiddy/incipit-engine/internal/incipit"
	"github.com/pdiddy/incipit-engine/internal/journals"
	"github.com/pdiddy/incipit-engine/internal/style"
	"github.com/pdiddy/incipit-engine/pkg/types"
)

// bookmarkIDBase is the first numeric bookmark id allocated in a pass,
// clear of the id ranges word processors allocate themselves.
const bookmarkIDBase = 10000

// bookmarkLabel formats the document-unique bookmark name for a note.
func bookmarkLabel(index int) string {
	return fmt.Sprintf("REF_NOTE_%d", index)
}

// Engine runs citation transformation passes. An Engine holds only
// read-only state (the journal table and a logger) and is safe to share
// across concurrent passes over independent documents. Within a single
// document, processing is strictly sequential.
type Engine struct {
	journals *journals.Table
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an engine sharing the given journal table.
func NewEngine(table *journals.Table, opts ...Option) *Engine {
	e := &Engine{journals: table, logger: zap.NewNop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// noteResult is the per-endnote outcome shared by Process and Preview.
type noteResult struct {
	index    int
	anchorID string
	before   string
	after    string
	citation types.Citation
	incipit  types.IncipitPhrase
	bookmark types.PageBookmark
	sentence types.BodySentence
}

// Process runs the full non-preview pass: endnote text rewritten per
// style, inline incipit+bookmark markers inserted at each citation
// location, and page bookmarks registered. The input document is never
// mutated; a single malformed citation falls back to its raw text and
// is reported, never aborting the pass.
func (e *Engine) Process(doc *types.Document, cfg types.StyleConfig) (*types.RewrittenDocument, *Report, error) {
	results, report, err := e.run(doc, cfg)
	if err != nil {
		return nil, nil, err
	}

	out := &types.RewrittenDocument{Name: doc.Name}
	rewritten := make(map[string]types.BodySentence, len(results))
	for _, res := range results {
		sent := res.sentence
		sent.Text = insertMarker(sent.Text, sent.MarkerOffset, inlineMarker(res.incipit, cfg.Emphasis, res.bookmark.Label))
		rewritten[res.anchorID] = sent

		out.Notes = append(out.Notes, types.RewrittenNote{
			Index:    res.index,
			Text:     res.after,
			Incipit:  res.incipit,
			Bookmark: res.bookmark,
		})
		out.Bookmarks = append(out.Bookmarks, res.bookmark)
	}

	// Sentences keep their input order; untouched sentences copy through.
	for _, s := range doc.Sentences {
		if r, ok := rewritten[s.AnchorID]; ok {
			out.Sentences = append(out.Sentences, r)
		} else {
			out.Sentences = append(out.Sentences, s)
		}
	}

	e.logger.Info("pass complete",
		zap.String("document", doc.Name),
		zap.String("style", string(cfg.Style)),
		zap.Int("notes", report.NotesTotal),
		zap.Int("degraded", report.Degraded()))
	return out, report, nil
}

// PreviewRecord is one before/after pair from a preview pass.
type PreviewRecord struct {
	BodyAnchorID string              `json:"body_anchor_id" yaml:"body_anchor_id"`
	NoteIndex    int                 `json:"note_index" yaml:"note_index"`
	Before       string              `json:"before" yaml:"before"`
	After        string              `json:"after" yaml:"after"`
	SourceType   types.SourceType    `json:"source_type" yaml:"source_type"`
	Key          types.CitationKey   `json:"key,omitempty" yaml:"key,omitempty"`
	Incipit      types.IncipitPhrase `json:"incipit" yaml:"incipit"`
}

// Preview runs the identical pipeline as Process but emits before/after
// records instead of a rewritten document. The input is untouched.
func (e *Engine) Preview(doc *types.Document, cfg types.StyleConfig) ([]PreviewRecord, *Report, error) {
	results, report, err := e.run(doc, cfg)
	if err != nil {
		return nil, nil, err
	}

	records := make([]PreviewRecord, len(results))
	for i, res := range results {
		records[i] = PreviewRecord{
			BodyAnchorID: res.anchorID,
			NoteIndex:    res.index,
			Before:       res.before,
			After:        res.after,
			SourceType:   res.citation.SourceType,
			Key:          res.citation.Key(),
			Incipit:      res.incipit,
		}
	}
	return records, report, nil
}

// run validates configuration and structure, then executes the
// sequential per-note pipeline. All validation happens before the first
// note is touched, so failures are always atomic.
func (e *Engine) run(doc *types.Document, cfg types.StyleConfig) ([]noteResult, *Report, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, nil, err
	}

	renderer, err := style.NewRenderer(cfg.Style, e.journals)
	if err != nil {
		// Unreachable after ValidateConfig; kept so renderer
		// construction cannot silently pass an unknown code.
		return nil, nil, &ConfigurationError{Field: "citation_style", Value: string(cfg.Style), Reason: err.Error()}
	}

	if len(doc.Endnotes) == 0 {
		return nil, nil, &StructureError{Reason: "document has no endnote anchors"}
	}

	sentences := make(map[string]types.BodySentence, len(doc.Sentences))
	for _, s := range doc.Sentences {
		sentences[s.AnchorID] = s
	}

	notes := make([]types.Endnote, len(doc.Endnotes))
	copy(notes, doc.Endnotes)
	sort.Slice(notes, func(i, j int) bool { return notes[i].Index < notes[j].Index })

	for _, n := range notes {
		if _, ok := sentences[n.AnchorID]; !ok {
			return nil, nil, &StructureError{
				NoteIndex: n.Index,
				AnchorID:  n.AnchorID,
				Reason:    "anchor references a body location that does not exist",
			}
		}
	}

	tracker := cite.NewTracker()
	report := &Report{}
	var results []noteResult
	nextBookmarkID := bookmarkIDBase

	for _, n := range notes {
		report.NotesTotal++
		sentence := sentences[n.AnchorID]

		citation := cite.Parse(n.Text)
		entry := types.EndnoteEntry{Index: n.Index, Citation: citation, BodyAnchorID: n.AnchorID}
		decision := tracker.Classify(entry)

		rendered, renderErr := renderer.Render(citation, decision)
		if renderErr != nil {
			// Degraded parse: pass the original text through unchanged.
			rendered = n.Text
			report.addWarning(n.Index, "citation did not match any known shape; raw text retained")
			e.logger.Debug("degraded entry",
				zap.Int("note", n.Index),
				zap.Error(renderErr))
		} else {
			report.NotesRewritten++
		}

		phrase := incipit.Extract(sentence.Text, sentence.MarkerOffset, cfg.IncipitWordCount)

		bookmark := types.PageBookmark{
			BodyAnchorID:    n.AnchorID,
			TargetNoteIndex: n.Index,
			Label:           bookmarkLabel(n.Index),
			ID:              nextBookmarkID,
		}
		nextBookmarkID++

		e.logger.Debug("note classified",
			zap.Int("note", n.Index),
			zap.String("form", string(decision.Form)),
			zap.String("source_type", string(citation.SourceType)))

		results = append(results, noteResult{
			index:    n.Index,
			anchorID: n.AnchorID,
			before:   n.Text,
			after:    rendered,
			citation: citation,
			incipit:  phrase,
			bookmark: bookmark,
			sentence: sentence,
		})
	}

	return results, report, nil
}

// ValidateConfig checks the processing parameters. It returns a
// *ConfigurationError describing the first invalid field.
func ValidateConfig(cfg types.StyleConfig) error {
	if _, err := style.ForStyle(cfg.Style); err != nil {
		return &ConfigurationError{
			Field:  "citation_style",
			Value:  string(cfg.Style),
			Reason: "must be one of chicago, turabian, bluebook, ama, oxford, oscola, mhra, vancouver",
		}
	}
	if cfg.IncipitWordCount < types.MinIncipitWords || cfg.IncipitWordCount > types.MaxIncipitWords {
		return &ConfigurationError{
			Field:  "word_count",
			Value:  fmt.Sprintf("%d", cfg.IncipitWordCount),
			Reason: fmt.Sprintf("must be between %d and %d", types.MinIncipitWords, types.MaxIncipitWords),
		}
	}
	if cfg.Emphasis != types.EmphasisBold && cfg.Emphasis != types.EmphasisItalic {
		return &ConfigurationError{
			Field:  "format_style",
			Value:  string(cfg.Emphasis),
			Reason: "must be bold or italic",
		}
	}
	return nil
}

// inlineMarker composes the inline text inserted at the citation
// location: the emphasized incipit followed by the bookmark reference.
// An empty incipit yields the bookmark reference alone.
func inlineMarker(p types.IncipitPhrase, emphasis types.Emphasis, label string) string {
	ref := "[" + label + "]"
	if p.Empty() {
		return ref
	}
	tagOpen, tagClose := "<b>", "</b>"
	if emphasis == types.EmphasisItalic {
		tagOpen, tagClose = "<i>", "</i>"
	}
	return tagOpen + p.Text() + tagClose + " " + ref
}

// insertMarker splices marker into text at offset, clamping offsets
// outside the text.
func insertMarker(text string, offset int, marker string) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	return text[:offset] + marker + text[offset:]
}
