// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package style renders structured citations according to one of the
// eight supported citation styles. Styles form a fixed closed set; each
// holds its ordering, punctuation, and abbreviation policy as data and
// shares a single rendering path.
package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/incipit-engine/internal/cite"
	"github.com/pdiddy/incipit-engine/internal/journals"
	"github.com/pdiddy/incipit-engine/pkg/types"
)

// ErrUnknownStyle reports an unsupported style code.
var ErrUnknownStyle = errors.New("unknown citation style")

// ErrInsufficientFields reports that the citation has no structured
// fields and the style cannot render it. Callers fall back to the raw
// endnote text.
var ErrInsufficientFields = errors.New("citation has no structured fields")

// AuthorOrder selects how author names are ordered in full-form notes.
type AuthorOrder int

const (
	// GivenFirst renders every author as "Given Family".
	GivenFirst AuthorOrder = iota

	// FamilyFirstLead inverts only the first author ("Family, Given");
	// later authors stay given-first.
	FamilyFirstLead

	// FamilyFirstAll renders every author family-first.
	FamilyFirstAll
)

// Policy holds one style's rendering rules as data.
type Policy struct {
	Code types.StyleCode

	// Order is the author-name ordering convention.
	Order AuthorOrder

	// Initials compresses given names to initials ("Smith J").
	Initials bool

	// FieldSep joins the non-publication fields of a full note.
	FieldSep string

	// ParenPub parenthesizes the publication block (container/year).
	ParenPub bool

	// Numbered marks numbered-reference styles; repeats render as a
	// cross-reference to the first occurrence's note number instead of
	// Ibid/short forms.
	Numbered bool

	// Legal marks legal styles: page-reference and incipit insertion
	// only, no author reordering, no abbreviation substitution.
	Legal bool

	// Ibid is the style's repeat marker.
	Ibid string

	// Abbreviate enables journal-name substitution.
	Abbreviate bool
}

// policies is the closed set of supported styles. Dispatch is by the
// validated style code only; there is no open registration.
var policies = map[types.StyleCode]Policy{
	types.StyleChicago: {
		Code: types.StyleChicago, Order: GivenFirst, FieldSep: ", ",
		ParenPub: true, Ibid: "Ibid.", Abbreviate: true,
	},
	types.StyleTurabian: {
		Code: types.StyleTurabian, Order: FamilyFirstLead, FieldSep: ", ",
		ParenPub: false, Ibid: "Ibid.", Abbreviate: true,
	},
	types.StyleBluebook: {
		Code: types.StyleBluebook, Legal: true, FieldSep: ", ", Ibid: "Id.",
	},
	types.StyleAMA: {
		Code: types.StyleAMA, Order: FamilyFirstAll, Initials: true,
		FieldSep: ". ", Numbered: true, Abbreviate: true,
	},
	types.StyleOxford: {
		Code: types.StyleOxford, Order: GivenFirst, FieldSep: ", ",
		ParenPub: true, Ibid: "ibid.", Abbreviate: true,
	},
	types.StyleOSCOLA: {
		Code: types.StyleOSCOLA, Legal: true, FieldSep: ", ", Ibid: "ibid",
	},
	types.StyleMHRA: {
		Code: types.StyleMHRA, Order: GivenFirst, FieldSep: ", ",
		ParenPub: true, Ibid: "Ibid.", Abbreviate: true,
	},
	types.StyleVancouver: {
		Code: types.StyleVancouver, Order: FamilyFirstAll, Initials: true,
		FieldSep: ". ", Numbered: true, Abbreviate: true,
	},
}

// ForStyle returns the policy for code.
func ForStyle(code types.StyleCode) (Policy, error) {
	p, ok := policies[code]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q", ErrUnknownStyle, code)
	}
	return p, nil
}

// Renderer renders citations under one style policy. A Renderer is
// immutable and safe for concurrent use across document passes; the
// journal table it holds is read-only shared state.
type Renderer struct {
	policy   Policy
	journals *journals.Table
}

// NewRenderer builds a renderer for the given style code.
func NewRenderer(code types.StyleCode, table *journals.Table) (*Renderer, error) {
	p, err := ForStyle(code)
	if err != nil {
		return nil, err
	}
	return &Renderer{policy: p, journals: table}, nil
}

// Policy returns the renderer's style policy.
func (r *Renderer) Policy() Policy {
	return r.policy
}

// Render produces the endnote text for a citation under the tracker's
// decision. The incipit/emphasis wrapper is applied by the caller, not
// here. ErrInsufficientFields is returned when the citation carries no
// structured fields and the style needs them.
func (r *Renderer) Render(c types.Citation, d cite.Decision) (string, error) {
	if r.policy.Legal {
		return r.renderLegal(c, d), nil
	}
	if c.Degraded() {
		return "", ErrInsufficientFields
	}

	switch d.Form {
	case cite.FormIbid:
		return r.renderIbid(c, d), nil
	case cite.FormShort:
		return r.renderShort(c, d), nil
	default:
		return r.renderFull(c), nil
	}
}

// renderLegal keeps legal citations intact: the raw text passes through
// unchanged on first citation, and repeats use the style's marker with
// no reordering or abbreviation, preserving citation validity.
func (r *Renderer) renderLegal(c types.Citation, d cite.Decision) string {
	switch d.Form {
	case cite.FormIbid:
		out := r.policy.Ibid
		if d.PagesChanged && c.Pages != "" {
			out += ", " + c.Pages
		}
		return out
	case cite.FormShort:
		short, _, _ := strings.Cut(c.RawText, ",")
		return withPages(strings.TrimSpace(short), c.Pages)
	default:
		return c.RawText
	}
}

func (r *Renderer) renderIbid(c types.Citation, d cite.Decision) string {
	if r.policy.Numbered {
		return r.renderRepeatRef(c, d)
	}
	out := r.policy.Ibid
	if d.PagesChanged && c.Pages != "" {
		out += ", " + c.Pages
	}
	return out
}

func (r *Renderer) renderShort(c types.Citation, d cite.Decision) string {
	if r.policy.Numbered {
		return r.renderRepeatRef(c, d)
	}

	short := cite.ShortTitle(c.Title)
	switch c.SourceType {
	case types.SourceArchival, types.SourcePersonal, types.SourceArbitration:
		// Collection titles are already short identifiers.
		short = c.Title
	}

	var out string
	if len(c.Authors) > 0 {
		out = c.Authors[0].Family + ", " + short
	} else {
		out = short
	}
	return withPages(out, c.Pages)
}

// renderRepeatRef is the numbered-reference repeat form: a reference to
// the note where the source was first cited in full.
func (r *Renderer) renderRepeatRef(c types.Citation, d cite.Decision) string {
	out := fmt.Sprintf("See reference %d", d.FirstIndex)
	if c.Pages != "" {
		out += ", " + c.Pages
	}
	return out + "."
}

func (r *Renderer) renderFull(c types.Citation) string {
	switch c.SourceType {
	case types.SourceArchival, types.SourcePersonal, types.SourceArbitration:
		return withPages(strings.TrimRight(c.Container, "."), c.Pages)
	}

	var fields []string
	if a := r.formatAuthors(c); a != "" {
		fields = append(fields, a)
	}
	if c.Title != "" {
		fields = append(fields, c.Title)
	}

	out := strings.Join(fields, r.policy.FieldSep)
	pub, pagesDone := r.formatPublication(c)
	if pub != "" {
		if r.policy.ParenPub && (c.SourceType == types.SourceBook || c.SourceType == types.SourceChapter) {
			out += " (" + pub + ")"
		} else {
			out += r.policy.FieldSep + pub
		}
	}
	if pagesDone {
		return closePeriod(out)
	}
	return withPages(out, c.Pages)
}

// formatPublication assembles the container/volume/issue/year block.
// pagesDone reports that the page reference was folded into the block
// (journal conventions put pages after the year, colon-separated).
func (r *Renderer) formatPublication(c types.Citation) (pub string, pagesDone bool) {
	container := c.Container
	if r.policy.Abbreviate && c.SourceType == types.SourceJournalArticle {
		container = r.journals.Abbreviate(container)
	}

	switch c.SourceType {
	case types.SourceJournalArticle:
		if container == "" {
			return "", false
		}
		if r.policy.Numbered {
			// "J Abbrev. 2020;12(3):45-60"
			out := container + "."
			if c.Year != 0 {
				out += fmt.Sprintf(" %d", c.Year)
			}
			if c.Volume != "" {
				out += ";" + c.Volume
				if c.Issue != "" {
					out += "(" + c.Issue + ")"
				}
			}
			if c.Pages != "" {
				out += ":" + c.Pages
				pagesDone = true
			}
			return out, pagesDone
		}
		// "Journal 12, no. 3 (2020): 45-60"
		out := container
		if c.Volume != "" {
			out += " " + c.Volume
		}
		if c.Issue != "" {
			out += ", no. " + c.Issue
		}
		if c.Year != 0 {
			if r.policy.ParenPub {
				out += fmt.Sprintf(" (%d)", c.Year)
				if c.Pages != "" {
					out += ": " + c.Pages
					pagesDone = true
				}
			} else {
				out += fmt.Sprintf(", %d", c.Year)
			}
		}
		return out, pagesDone
	case types.SourceBook, types.SourceChapter:
		out := container
		if c.SourceType == types.SourceChapter && container != "" {
			out = "in " + container
		}
		if c.Year != 0 && !strings.Contains(container, fmt.Sprintf("%d", c.Year)) {
			if out != "" {
				out += ", "
			}
			out += fmt.Sprintf("%d", c.Year)
		}
		return out, false
	default:
		if container != "" && c.Year != 0 {
			return fmt.Sprintf("%s, %d", container, c.Year), false
		}
		if container != "" {
			return container, false
		}
		if c.Year != 0 {
			return fmt.Sprintf("%d", c.Year), false
		}
		return "", false
	}
}

// formatAuthors renders the author list under the policy's ordering.
func (r *Renderer) formatAuthors(c types.Citation) string {
	if len(c.Authors) == 0 {
		return ""
	}

	names := make([]string, len(c.Authors))
	for i, a := range c.Authors {
		names[i] = r.formatAuthor(a, i)
	}

	var out string
	switch {
	case r.policy.Initials:
		out = strings.Join(names, ", ")
	case len(names) == 1:
		out = names[0]
	case len(names) == 2:
		out = names[0] + " and " + names[1]
	default:
		out = strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}

	if c.EtAl {
		out += ", et al."
	}
	return out
}

func (r *Renderer) formatAuthor(a types.Author, pos int) string {
	if r.policy.Initials {
		return strings.TrimSpace(a.Family + " " + initialsOf(a.Given))
	}
	switch r.policy.Order {
	case FamilyFirstAll:
		return a.FamilyFirst()
	case FamilyFirstLead:
		if pos == 0 {
			return a.FamilyFirst()
		}
		return a.GivenFirst()
	default:
		return a.GivenFirst()
	}
}

// initialsOf compresses a given name to bare initials: "John A." -> "JA".
// Names already in initials form ("AA") pass through whole.
func initialsOf(given string) string {
	var b strings.Builder
	for _, part := range strings.Fields(given) {
		part = strings.TrimRight(part, ".")
		if part == "" {
			continue
		}
		if len(part) <= 3 && part == strings.ToUpper(part) {
			b.WriteString(part)
			continue
		}
		r := rune(part[0])
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// withPages appends a comma-separated page reference, the note-form
// convention shared by every non-numbered style here.
func withPages(text, pages string) string {
	text = strings.TrimRight(strings.TrimSpace(text), ",")
	if pages == "" {
		return closePeriod(text)
	}
	return text + ", " + pages + "."
}

func closePeriod(text string) string {
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ".") {
		text += "."
	}
	return text
}
