// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"regexp"
	"strings"

	"github.com/pdiddy/incipit-engine/pkg/types"
)

var (
	etAlRe = regexp.MustCompile(`(?i)[,\s]*\bet\s+al\.?\s*$`)

	// initialsRe matches an AMA-style initials token like "J" or "JA".
	initialsRe = regexp.MustCompile(`^[A-Z]{1,3}\.?$`)

	authorSepRe = regexp.MustCompile(`;\s*|\s+and\s+|\s+&\s+`)
)

var nameSuffixes = map[string]bool{
	"Jr": true, "Jr.": true, "Sr": true, "Sr.": true,
	"II": true, "III": true, "IV": true,
}

// maxAuthorSegment bounds how long a segment may be and still be taken
// for an author list rather than a title.
const maxAuthorSegment = 120

// authorBlock parses a candidate author segment like "Smith, John and
// Jones, Mary" or "Smith J, Jones M, et al." into Author values. ok is
// false when the segment does not look like an author list, in which
// case callers should treat it as part of the title.
func authorBlock(segment string) (authors []types.Author, etAl bool, ok bool) {
	segment = strings.TrimSpace(segment)
	if segment == "" || len(segment) > maxAuthorSegment {
		return nil, false, false
	}

	if etAlRe.MatchString(segment) {
		etAl = true
		segment = strings.TrimSpace(etAlRe.ReplaceAllString(segment, ""))
		segment = strings.TrimRight(segment, ",")
	}
	if segment == "" {
		// Bare "et al." is not an author list.
		return nil, false, false
	}

	for _, part := range authorSepRe.Split(segment, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		// "Smith J, Jones M" splits on the commas between names; a comma
		// followed by a given name belongs to one author. Handle the
		// initials form first since it has no commas within a name.
		if sub := splitInitialsList(part); sub != nil {
			authors = append(authors, sub...)
			continue
		}
		a, nameOK := parseOneAuthor(part)
		if !nameOK {
			return nil, false, false
		}
		authors = append(authors, a)
	}
	if len(authors) == 0 {
		return nil, false, false
	}
	return authors, etAl, true
}

// splitInitialsList handles AMA-style lists like "Smith J, Jones MA"
// where commas separate whole names. Returns nil when part is not in
// that form.
func splitInitialsList(part string) []types.Author {
	pieces := strings.Split(part, ",")
	var out []types.Author
	for _, p := range pieces {
		fields := strings.Fields(strings.TrimSpace(p))
		if len(fields) != 2 || !initialsRe.MatchString(fields[1]) {
			return nil
		}
		if !startsUpper(fields[0]) {
			return nil
		}
		out = append(out, types.Author{
			Family: fields[0],
			Given:  strings.TrimRight(fields[1], "."),
		})
	}
	return out
}

// parseOneAuthor splits a single name on the first comma into
// family/given, recognizing generational suffixes in either position.
func parseOneAuthor(name string) (types.Author, bool) {
	name = strings.TrimSpace(name)
	if name == "" || !startsUpper(name) {
		return types.Author{}, false
	}

	family, rest, found := strings.Cut(name, ",")
	if !found {
		// Comma-less single token ("Osheroff"): family only.
		if len(strings.Fields(name)) == 1 {
			return types.Author{Family: name}, true
		}
		return types.Author{}, false
	}

	a := types.Author{Family: strings.TrimSpace(family)}
	for _, piece := range strings.Split(rest, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		if nameSuffixes[piece] {
			a.Suffix = piece
			continue
		}
		if a.Given == "" {
			a.Given = piece
		} else {
			a.Given += " " + piece
		}
	}
	if a.Given == "" && a.Suffix == "" {
		return types.Author{}, false
	}
	return a, true
}

func startsUpper(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}
