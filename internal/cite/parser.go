// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite parses raw endnote text into structured citations and
// classifies repeat citations across a document pass.
package cite

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/incipit-engine/pkg/types"
)

// shapeParser attempts to match one citation shape against a note body.
// A confidence of zero means the shape did not match. Shapes are tried
// in declaration order; the order doubles as the tie-break priority
// (archival > personal-archive > arbitration > transcript > legal >
// journal > book > generic). Personal-archive bodies are carved out of
// the generic archival patterns so the dedicated shape always wins them.
type shapeParser struct {
	name  string
	parse func(body string) (types.Citation, float64)
}

var shapeParsers = []shapeParser{
	{"archival", parseArchival},
	{"personal-archive", parsePersonalArchive},
	{"arbitration", parseArbitration},
	{"transcript", parseTranscript},
	{"legal", parseLegal},
	{"journal", parseJournal},
	{"book", parseBook},
	{"chapter", parseChapter},
	{"generic", parseGeneric},
}

// Parse converts a raw endnote string into a Citation. It never fails:
// when no shape matches, the result carries only RawText (and zero
// confidence) so downstream rendering can fall back to passthrough.
func Parse(raw string) types.Citation {
	cleaned := CleanText(raw)
	body, pages := splitTrailingPages(cleaned)

	var best types.Citation
	var bestConf float64
	for _, sp := range shapeParsers {
		c, conf := sp.parse(body)
		if conf > bestConf {
			best, bestConf = c, conf
		}
	}

	if bestConf == 0 {
		return types.Citation{RawText: raw, SourceType: types.SourceOther}
	}

	best.RawText = raw
	best.Confidence = bestConf
	if best.Pages == "" {
		best.Pages = pages
	}
	if best.Year == 0 {
		best.Year = extractYear(body)
	}
	return best
}

// Archival shapes: "Osheroff Papers, Box 12", "Chestnut Lodge Archives, ...".
var archivalRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.+?),\s*(Box|Folder|Tape|Reel|Carton)\s+\d+`),
	regexp.MustCompile(`(?i)^(.+?\s+Papers)\s*,\s*(.+)$`),
	regexp.MustCompile(`(?i)^(.+?\s+Archives?)\s*,\s*(.+)$`),
	regexp.MustCompile(`(?i)^(.+?\s+Collection)\s*,\s*(.+)$`),
}

func parseArchival(body string) (types.Citation, float64) {
	// Personal archives have their own shape and source type; the
	// generic "X Archives, ..." pattern must not claim them.
	if personalArchiveRe.MatchString(body) {
		return types.Citation{}, 0
	}
	for _, re := range archivalRes {
		m := re.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		c := types.Citation{
			Title:      strings.TrimSpace(m[1]),
			Container:  body,
			SourceType: types.SourceArchival,
		}
		return c, 0.9
	}
	return types.Citation{}, 0
}

var personalArchiveRe = regexp.MustCompile(`(?i)^(.+?)\s+Personal\s+Archive(?:,\s*(.+))?$`)

func parsePersonalArchive(body string) (types.Citation, float64) {
	m := personalArchiveRe.FindStringSubmatch(body)
	if m == nil {
		return types.Citation{}, 0
	}
	c := types.Citation{
		Title:      strings.TrimSpace(m[1]) + " Personal Archive",
		Container:  body,
		SourceType: types.SourcePersonal,
	}
	return c, 0.9
}

var arbitrationRe = regexp.MustCompile(`(?i)^(.+?\s+Arbitration\s+(?:Videos?|Tapes?|Transcripts?|Hearings?))(?:,\s*(.+))?$`)

func parseArbitration(body string) (types.Citation, float64) {
	m := arbitrationRe.FindStringSubmatch(body)
	if m == nil {
		return types.Citation{}, 0
	}
	c := types.Citation{
		Title:      strings.TrimSpace(m[1]),
		Container:  body,
		SourceType: types.SourceArbitration,
	}
	return c, 0.92
}

var transcriptRe = regexp.MustCompile(`\b(Deposition|Testimony|Transcript)\b`)

// parseTranscript handles notes like "Klerman Deposition, Oct 15, 1985".
func parseTranscript(body string) (types.Citation, float64) {
	if !transcriptRe.MatchString(body) {
		return types.Citation{}, 0
	}
	head, _, _ := strings.Cut(body, ",")
	c := types.Citation{
		Title:      strings.TrimSpace(head),
		Container:  body,
		SourceType: types.SourceArchival,
	}
	return c, 0.85
}

var legalRe = regexp.MustCompile(`\s+v\.\s+`)

// parseLegal matches case names like "Osheroff v. Chestnut Lodge". The
// whole note body becomes the title so legal styles can keep it intact.
func parseLegal(body string) (types.Citation, float64) {
	if !legalRe.MatchString(body) {
		return types.Citation{}, 0
	}
	c := types.Citation{
		Title:      body,
		SourceType: types.SourceLegalCase,
	}
	return c, 0.8
}

var (
	// journalTailRe matches "Container 12 (2020): 45-60" publication data.
	journalTailRe = regexp.MustCompile(`^(.+?)\s+(\d+)(?:\s*\((\d+[^)]*)\))?\s*\((\d{4})\):?\s*(\d+(?:\x{2013}\d+)?)?$`)

	// journalMedTailRe matches "Container. 2020;12(3):45-60" data.
	journalMedTailRe = regexp.MustCompile(`^(.+?)[.,]?\s+(\d{4})\s*;\s*(\d+)(?:\((\d+[^)]*)\))?\s*(?::\s*(\d+(?:\x{2013}\d+)?))?$`)
)

// parseJournal handles the standard shape "Author, Title, Container vol
// (year): pages" and the medical variant "Author. Title. Container.
// year;vol:pages". Confidence scales with how many field groups matched.
func parseJournal(body string) (types.Citation, float64) {
	segments := splitSegments(body)
	if len(segments) < 2 {
		return types.Citation{}, 0
	}

	c := types.Citation{SourceType: types.SourceJournalArticle}
	rest := segments[len(segments)-1]

	if authors, etAl, ok := authorBlock(segments[0]); ok && len(segments) >= 3 {
		c.Authors, c.EtAl = authors, etAl
		c.Title = segments[1]
		rest = strings.Join(segments[2:], ". ")
	} else {
		c.Title = segments[0]
		rest = strings.Join(segments[1:], ". ")
	}

	matched := false
	if m := journalTailRe.FindStringSubmatch(rest); m != nil {
		c.Container = strings.TrimRight(strings.TrimSpace(m[1]), ",.")
		c.Volume = m[2]
		c.Issue = m[3]
		c.Year, _ = strconv.Atoi(m[4])
		c.Pages = m[5]
		matched = true
	} else if m := journalMedTailRe.FindStringSubmatch(rest); m != nil {
		c.Container = strings.TrimRight(strings.TrimSpace(m[1]), ",.")
		c.Year, _ = strconv.Atoi(m[2])
		c.Volume = m[3]
		c.Issue = m[4]
		c.Pages = m[5]
		matched = true
	}
	if !matched {
		return types.Citation{}, 0
	}

	conf := 0.3
	for _, ok := range []bool{len(c.Authors) > 0, c.Title != "", c.Container != "", c.Year != 0} {
		if ok {
			conf += 0.14
		}
	}
	return c, conf
}

// bookPubRe matches a "City: Publisher, year" publication block.
var bookPubRe = regexp.MustCompile(`\(?([A-Z][A-Za-z\s.]*:\s*[^,()]+),\s*(\d{4})\)?`)

func parseBook(body string) (types.Citation, float64) {
	m := bookPubRe.FindStringSubmatchIndex(body)
	if m == nil {
		return types.Citation{}, 0
	}
	c := types.Citation{SourceType: types.SourceBook}
	c.Container = strings.TrimSpace(body[m[2]:m[3]])
	c.Year, _ = strconv.Atoi(body[m[4]:m[5]])

	prePub := strings.TrimRight(strings.TrimSpace(body[:m[0]]), ".,")
	segments := splitSegments(prePub)
	switch {
	case len(segments) >= 2:
		// "Author. Title" with a period separator.
		if authors, etAl, ok := authorBlock(segments[0]); ok {
			c.Authors, c.EtAl = authors, etAl
			c.Title = strings.Join(segments[1:], ". ")
		} else {
			c.Title = strings.Join(segments, ". ")
		}
	case len(segments) == 1:
		// "Family, Given, Title" with comma separators.
		parts := strings.SplitN(segments[0], ",", 3)
		if len(parts) == 3 {
			if authors, etAl, ok := authorBlock(parts[0] + "," + parts[1]); ok {
				c.Authors, c.EtAl = authors, etAl
				c.Title = strings.TrimSpace(parts[2])
				break
			}
		}
		c.Title = segments[0]
	}
	if c.Title == "" {
		return types.Citation{}, 0
	}
	return c, 0.75
}

// chapterRe matches a quoted chapter title followed by its container,
// e.g. `"The Case," in Psychiatry on Trial`.
var chapterRe = regexp.MustCompile(`^"(.+?),?"\s+in\s+(.+)$`)

func parseChapter(body string) (types.Citation, float64) {
	segments := splitSegments(body)
	c := types.Citation{SourceType: types.SourceChapter}
	rest := body
	if len(segments) >= 2 {
		if authors, etAl, ok := authorBlock(segments[0]); ok {
			c.Authors, c.EtAl = authors, etAl
			rest = strings.Join(segments[1:], ". ")
		}
	}
	m := chapterRe.FindStringSubmatch(rest)
	if m == nil {
		return types.Citation{}, 0
	}
	c.Title = strings.TrimSpace(m[1])
	c.Container = strings.TrimRight(strings.TrimSpace(m[2]), ".,")
	return c, 0.7
}

// parseGeneric is the lowest-priority shape: an author block followed by
// a title. Anything less structured stays unparsed so that rendering
// falls back to the raw text.
func parseGeneric(body string) (types.Citation, float64) {
	segments := splitSegments(body)
	if len(segments) < 2 || !strings.Contains(segments[0], ",") {
		return types.Citation{}, 0
	}
	authors, etAl, ok := authorBlock(segments[0])
	if !ok {
		return types.Citation{}, 0
	}
	c := types.Citation{
		Authors:    authors,
		EtAl:       etAl,
		Title:      strings.Join(segments[1:], ". "),
		SourceType: types.SourceOther,
	}
	return c, 0.25
}

var yearRe = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)

// extractYear finds the first 4-digit year (19xx or 20xx) in the text.
func extractYear(text string) int {
	m := yearRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0
	}
	y, _ := strconv.Atoi(m[1])
	return y
}

// initialRe matches single-letter author initials like "A." or "J." so
// they can be protected from period-based splitting.
var initialRe = regexp.MustCompile(`\b([A-Z])\.`)

// splitSegments splits a note body into segments at period boundaries,
// avoiding false splits on common abbreviations and author initials.
func splitSegments(text string) []string {
	safe := strings.ReplaceAll(text, "e.g.", "e\x00g\x00")
	safe = strings.ReplaceAll(safe, "i.e.", "i\x00e\x00")
	safe = initialRe.ReplaceAllString(safe, "${1}\x00")

	parts := strings.Split(safe, ". ")

	var result []string
	for _, p := range parts {
		p = strings.ReplaceAll(p, "e\x00g\x00", "e.g.")
		p = strings.ReplaceAll(p, "i\x00e\x00", "i.e.")
		p = strings.ReplaceAll(p, "\x00", ".")
		p = strings.TrimRight(p, ".")
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
