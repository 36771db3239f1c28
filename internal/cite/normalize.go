// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"regexp"
	"strings"
)

var (
	// pageLabelRe matches "p. " / "pp. " immediately before digits,
	// following a space, comma, or opening paren.
	pageLabelRe = regexp.MustCompile(`(?:^|([\s(,]))p{1,2}\.\s*(\d)`)

	// numRangeRe matches a hyphenated numeric range like "45-60".
	numRangeRe = regexp.MustCompile(`(\d)-(\d)`)

	// trailingPagesRe matches a trailing page reference like ", 45" or
	// ". 45–60." at the end of a note.
	trailingPagesRe = regexp.MustCompile(`[,.]\s*(\d+(?:[-\x{2013}]\d+)?)\.?$`)

	leadingArticleRe = regexp.MustCompile(`^(?:The|A|An)\s+`)
)

// CleanText normalizes an endnote string before shape matching: drops
// "p."/"pp." labels before page digits, converts hyphenated numeric
// ranges to en-dashes, and collapses whitespace.
func CleanText(text string) string {
	text = pageLabelRe.ReplaceAllString(text, "${1}${2}")
	text = numRangeRe.ReplaceAllString(text, "$1–$2")
	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}

// yearLikeRe matches a bare number that reads as a publication year,
// which a trailing "..., 1985" is far more likely to be than a page.
var yearLikeRe = regexp.MustCompile(`^(?:19|20)\d{2}$`)

// splitTrailingPages removes a trailing page reference from text and
// returns the remaining body and the page string (empty if none).
func splitTrailingPages(text string) (body, pages string) {
	m := trailingPagesRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text, ""
	}
	pages = text[m[2]:m[3]]
	if yearLikeRe.MatchString(pages) {
		return text, ""
	}
	body = strings.TrimRight(strings.TrimSpace(text[:m[0]]), ".,")
	return body, pages
}

// shortTitleMaxWords caps derived short titles.
const shortTitleMaxWords = 5

// ShortTitle derives the short-form title: subtitle stripped at the
// first colon, leading article removed, capped at five words.
func ShortTitle(title string) string {
	if title == "" {
		return ""
	}
	short := title
	if i := strings.Index(short, ":"); i >= 0 {
		short = short[:i]
	}
	short = leadingArticleRe.ReplaceAllString(strings.TrimSpace(short), "")
	words := strings.Fields(short)
	if len(words) > shortTitleMaxWords {
		words = words[:shortTitleMaxWords]
	}
	return strings.Join(words, " ")
}
