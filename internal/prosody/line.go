// Package prosody implements the tonal-template and rhyme-scheme engine:
// splitting raw poem text into lines, classifying its form, inferring the
// governing tonal template, matching each line against it (with rescue
// exceptions), checking rhyme, arbitrating ambiguous candidates, and
// scoring the result. The engine is a pure function of its inputs — no
// I/O, no shared mutable state — per the package's concurrency model.
package prosody

import (
	"regexp"
	"strings"
)

// cjk reports whether r falls in one of the Unicode ranges the engine
// treats as a poem character: CJK Unified Ideographs, Extension A,
// Compatibility Ideographs, and Supplementary-Plane blocks B-F.
func cjk(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // Extension A
		return true
	case r >= 0xF900 && r <= 0xFAFF: // Compatibility Ideographs
		return true
	case r >= 0x20000 && r <= 0x2FA1F: // Extension B through Compatibility Supplement
		return true
	default:
		return false
	}
}

var parenSpans = regexp.MustCompile(`（[^）]*）|\([^)]*\)|【[^】]*】|〔[^〕]*〕|\[[^\]]*\]`)

// sentenceDelimiters mirrors textnorm's list; duplicated here (rather than
// imported) because C3's splitting policy treats the delimiter set as part
// of its own branch logic, not a generic normalization helper.
var sentenceDelimiters = []string{"。", "！", "？", "；", "，"}

func splitBySentence(text string) []string {
	for _, d := range sentenceDelimiters {
		text = strings.ReplaceAll(text, d, "\n")
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = keepCJK(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func keepCJK(text string) string {
	var b strings.Builder
	for _, r := range text {
		if cjk(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func countCJK(text string) int {
	n := 0
	for _, r := range text {
		if cjk(r) {
			n++
		}
	}
	return n
}

// SplitLines implements C3: it turns raw poem text into an ordered list of
// lines, tolerant of multi-line, one-line, and two-line source layouts.
// The branches are tried in order and the first one that produces a valid
// line count (4 or 8) wins; line lengths are not compared here.
func SplitLines(text string) (lines []string, ok bool) {
	text = parenSpans.ReplaceAllString(text, "")

	// Branch 1: already broken into lines by '\n'.
	rawLines := strings.Split(text, "\n")
	if len(rawLines) == 4 || len(rawLines) == 8 {
		cleaned := make([]string, len(rawLines))
		allNonEmpty := true
		for i, l := range rawLines {
			cleaned[i] = keepCJK(l)
			if cleaned[i] == "" {
				allNonEmpty = false
			}
		}
		if allNonEmpty {
			return cleaned, true
		}
	}

	// Branch 2: exactly two physical lines, each holding half the poem;
	// split each by sentence punctuation and expect 8 fragments total.
	if len(rawLines) == 2 {
		var fragments []string
		for _, l := range rawLines {
			fragments = append(fragments, splitBySentence(l)...)
		}
		if len(fragments) == 8 {
			return fragments, true
		}
	}

	// Branch 3: one physical line (or no '\n' at all); split by
	// sentence-ending punctuation.
	if len(rawLines) == 1 {
		fragments := splitBySentence(rawLines[0])
		if len(fragments) == 4 || len(fragments) == 8 {
			return fragments, true
		}
	}

	// Branch 4: no punctuation-based split worked; fall back to a raw CJK
	// character count and slice into uniform 5- or 7-character fragments
	// if the total is exactly one of the recognized poem sizes.
	total := countCJK(text)
	bare := keepCJK(text)
	switch total {
	case 20:
		return sliceUniform(bare, 5, 4), true
	case 28:
		return sliceUniform(bare, 7, 4), true
	case 40:
		return sliceUniform(bare, 5, 8), true
	case 56:
		return sliceUniform(bare, 7, 8), true
	}

	return nil, false
}

func sliceUniform(text string, lineLen, lineCount int) []string {
	runes := []rune(text)
	lines := make([]string, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		lines = append(lines, string(runes[i*lineLen:(i+1)*lineLen]))
	}
	return lines
}
