// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package incipit extracts the bounded contextual phrase that opens the
// sentence containing a citation marker.
package incipit

import (
	"strings"

	"github.com/pdiddy/incipit-engine/pkg/types"
)

// Abbreviations whose trailing period does not end a sentence.
var abbreviations = map[string]bool{
	"Dr": true, "Mr": true, "Ms": true, "Mrs": true,
	"Prof": true, "Rev": true, "Sen": true, "Rep": true,
	"v": true, "St": true, "No": true,
}

const (
	openQuotes  = "\"'“‘"
	closeQuotes = "\"'”’"
)

// Extract produces the incipit for a citation marker at markerOffset in
// sentenceText. It walks backward from the marker to the nearest
// sentence boundary or opening quotation mark, then collects up to
// wordCount tokens forward from that point. Truncated is set whenever
// fewer than wordCount tokens were available, including the edge case
// of a marker at the very start of its sentence, which yields an empty
// phrase and never an error.
func Extract(sentenceText string, markerOffset, wordCount int) types.IncipitPhrase {
	if markerOffset > len(sentenceText) {
		markerOffset = len(sentenceText)
	}
	if markerOffset < 0 {
		markerOffset = 0
	}
	before := sentenceText[:markerOffset]

	current := before[sentenceStart(before):]
	current = strings.TrimLeft(current, openQuotes+" \t")

	words := strings.Fields(current)
	if len(words) == 0 {
		return types.IncipitPhrase{Truncated: true}
	}

	truncated := len(words) < wordCount
	if len(words) > wordCount {
		words = words[:wordCount]
	}

	selected := make([]string, len(words))
	copy(selected, words)
	selected[len(selected)-1] = trimTrailing(selected[len(selected)-1], selected)

	return types.IncipitPhrase{Words: selected, Truncated: truncated}
}

// sentenceStart returns the offset in text where the sentence containing
// its end begins: just after the last sentence-boundary punctuation
// (ignoring honorific abbreviations and initials) or the last opening
// quotation mark, whichever is nearer the end.
func sentenceStart(text string) int {
	start := 0
	runes := []rune(text)
	byteOff := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		size := len(string(r))

		switch {
		case r == '.' || r == '?' || r == '!':
			// Boundary only when followed by whitespace then an
			// uppercase letter, matching prose sentence breaks.
			j := i + 1
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
				j++
			}
			if j > i+1 && j < len(runes) && runes[j] >= 'A' && runes[j] <= 'Z' {
				if r != '.' || !abbrevBefore(runes, i) {
					start = byteLen(runes[:j])
				}
			}
		case strings.ContainsRune(openQuotes, r) && r != '\'':
			// A quote that opens a quoted sentence starts the window
			// there. Mid-sentence quotes stay inside the window so a
			// paired closing quote can be preserved. Apostrophes inside
			// words are skipped.
			k := i - 1
			for k >= 0 && (runes[k] == ' ' || runes[k] == '\t') {
				k--
			}
			if k < 0 || runes[k] == '.' || runes[k] == '?' || runes[k] == '!' {
				start = byteOff + size
			}
		}
		byteOff += size
	}
	return start
}

// abbrevBefore reports whether the word ending at runes[dot] is an
// abbreviation or a single initial, so its period is not a boundary.
func abbrevBefore(runes []rune, dot int) bool {
	end := dot
	begin := end
	for begin > 0 && isWordRune(runes[begin-1]) {
		begin--
	}
	word := string(runes[begin:end])
	if abbreviations[word] {
		return true
	}
	// Single uppercase initials like "J".
	return len(word) == 1 && word[0] >= 'A' && word[0] <= 'Z'
}

func isWordRune(r rune) bool {
	return r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func byteLen(runes []rune) int {
	return len(string(runes))
}

// trimTrailing strips trailing punctuation from the final phrase word,
// keeping one closing quotation mark when its opening partner appears
// earlier in the phrase window. The stripped tail itself is excluded
// from the partner scan, so an unpaired closing quote never survives.
func trimTrailing(last string, window []string) string {
	trimmed := strings.TrimRight(last, ".,;:!?"+closeQuotes)
	removed := last[len(trimmed):]
	if removed == "" || !strings.ContainsAny(removed, closeQuotes) {
		return trimmed
	}
	scan := make([]string, 0, len(window))
	scan = append(scan, window[:len(window)-1]...)
	scan = append(scan, trimmed)
	for _, w := range scan {
		if strings.ContainsAny(w, openQuotes) {
			for _, r := range removed {
				if strings.ContainsRune(closeQuotes, r) {
					return trimmed + string(r)
				}
			}
		}
	}
	return trimmed
}
