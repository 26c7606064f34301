package textnorm

import "strings"

// sentenceDelimiters are the punctuation marks internal/prosody's line
// splitter (C3) treats as a verse boundary, same list as the teacher's
// classifier/type.go splitBySentence.
var sentenceDelimiters = []string{"。", "！", "？", "；", "，"}

// SplitSentences splits text on the fullwidth Chinese marks in
// sentenceDelimiters, trimming and dropping empty fragments. Grounded on
// classifier/type.go's expandParagraphs/splitBySentence.
func SplitSentences(text string) []string {
	for _, delim := range sentenceDelimiters {
		text = strings.ReplaceAll(text, delim, "\n")
	}
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}

// punctuation is the set of marks StripPunctuation removes, same list as
// the teacher's classifier/type.go removePunctuation plus the fullwidth
// ellipsis and interpunct it already covered.
const punctuation = `，。！？；：""''（）《》【】、·—…,.!?;:'"()[]{}/-`

// StripPunctuation removes punctuation and surrounding whitespace from a
// line, leaving the bare character sequence the engine scores.
func StripPunctuation(text string) string {
	result := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)
	return strings.TrimSpace(result)
}

// NormalizeText trims and collapses internal whitespace runs to a single
// space, same behavior as the teacher's classifier/normalize.go.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	return strings.Join(strings.Fields(text), " ")
}
