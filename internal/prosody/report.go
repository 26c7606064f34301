package prosody

import (
	"fmt"
	"strings"

	"github.com/palemoky/prosody-scorer/internal/rhyme"
	"github.com/palemoky/prosody-scorer/internal/textnorm"
)

// ErrorKind enumerates the non-fatal conditions spec.md §7 calls out; the
// engine surfaces them alongside a best-effort result rather than failing.
type ErrorKind string

const (
	ErrParseLineLength  ErrorKind = "parse-line-length"
	ErrUnknownRhyme     ErrorKind = "unknown-rhyme"
	ErrAmbiguousOpening ErrorKind = "ambiguous-template"
	ErrRecordMalformed  ErrorKind = "record-malformed"
)

// Result is the engine's structured output: everything the scorer and the
// text report both derive from, so neither has to re-parse the other's
// output (see DESIGN.md's note on spec.md §9's report/score coupling).
type Result struct {
	Lines        []string
	DeclaredForm Form
	ObservedForm Form
	DominantLen  int
	Book         rhyme.Book
	Candidate    Candidate
	Errors       []ErrorKind
}

// Report renders Result as the annotated line-by-line text spec.md §4.8
// describes: each character followed by a mark glyph, the line's observed
// rhyme status, and a trailing note for any rescued position.
func Report(r Result) string {
	if len(r.Lines) == 0 {
		return "解析失败：无法按五言或七言切分诗句。"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "体裁：%s（判定：%s，韵书：%s）\n", r.DeclaredForm, r.ObservedForm, r.Book)

	rhymeByLine := map[int]RhymeVerdict{}
	for _, v := range r.Candidate.Rhyme.Verdicts {
		rhymeByLine[v.LineIndex] = v
	}

	for i, line := range r.Lines {
		runes := []rune(line)
		verdict := LineVerdict{}
		if i < len(r.Candidate.LineVerdicts) {
			verdict = r.Candidate.LineVerdicts[i]
		}

		var out strings.Builder
		for j, ch := range runes {
			out.WriteRune(ch)
			out.WriteRune(markGlyph(ch, j, verdict, r.Book))
		}

		note := ""
		switch verdict.Rescue {
		case RescueSelf:
			note = "（自救）"
		case RescueCoupletPending:
			note = "（拗，对句救）"
		}

		rhymeNote := ""
		if v, ok := rhymeByLine[i]; ok {
			switch {
			case v.Rhymes && v.Neighbor:
				rhymeNote = "  韵：邻韵"
			case v.Rhymes:
				rhymeNote = "  韵：叶"
			default:
				rhymeNote = "  韵：否"
			}
		}

		fmt.Fprintf(&b, "%2d. %s%s%s\n    %s\n", i+1, out.String(), note, rhymeNote, textnorm.Gloss(line))
	}

	if !r.Candidate.Rhyme.OK {
		b.WriteString("韵部：未能判定（韵脚字均不在所选韵书中）\n")
	}

	for _, e := range r.Errors {
		fmt.Fprintf(&b, "提示：%s\n", e)
	}

	return b.String()
}

// markGlyph picks the per-character annotation glyph, the fixed four-symbol
// alphabet spec.md §4.8 specifies: 〇 correct, ● incorrect, ◎ polyphonic
// (always credited as a wildcard match, so a poly character only ever shows
// up here, never as ●), � rare/unknown. Rescue credit already lives inside
// v.Marks (MatchLine picked the rescuing pattern precisely because it
// matched), so a rescued position renders exactly like any other correct
// position; the rescue itself is surfaced separately by Report's trailing
// note, not by a distinct glyph.
func markGlyph(ch rune, pos int, v LineVerdict, book rhyme.Book) rune {
	if pos >= len(v.Marks) {
		return ' '
	}
	t := rhyme.CharTone(ch, book)
	if t == rhyme.Unknown {
		return '�'
	}
	if !v.Marks[pos] {
		return '●'
	}
	if t == rhyme.Poly {
		return '◎'
	}
	return '〇'
}
