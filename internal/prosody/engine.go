package prosody

import (
	"github.com/palemoky/prosody-scorer/internal/rhyme"
	"github.com/palemoky/prosody-scorer/internal/textnorm"
)

// Output is the top-level result of scoring one poem: the three scores
// under the caller's selected rhyme book, the same rhyme score recomputed
// under the other two books (spec.md §6's output record carries all
// three), the structured Result for callers that want the detail, and any
// non-fatal errors encountered along the way.
type Output struct {
	Scores
	RhymeScorePingshui float64
	RhymeScoreXin      float64
	RhymeScoreTong     float64
	Result             Result
	Report             string
}

// Score implements the engine's single pure entry point: it runs C3
// through C10 over one poem's raw text and its declared form, under the
// caller's selected rhyme book. detailed controls whether the text report
// (C9) is rendered — callers scoring a large batch typically skip it.
func Score(content, title, instruct string, book rhyme.Book, detailed bool) Output {
	declared, _ := ParseDeclaredForm(instruct)

	// internal/rhyme's character tables are keyed by simplified script, so
	// a poem typed in traditional characters is normalized first; a
	// conversion failure falls back to the original text rather than
	// failing the whole score, per spec.md §7's local-error philosophy.
	if simplified, err := textnorm.ToSimplified(content); err == nil {
		content = simplified
	}

	lines, ok := SplitLines(content)
	if !ok {
		out := Output{
			Result: Result{
				DeclaredForm: declared,
				Book:         book,
				Errors:       []ErrorKind{ErrParseLineLength},
			},
		}
		out.Scores.Form = lengthOnlyFormScore(countCJK(content), declared)
		if detailed {
			out.Report = Report(out.Result)
		}
		return out
	}

	observedForm, dominantLen := ClassifyForm(lines, title)
	candidate := Arbitrate(lines, book)

	result := Result{
		Lines:        lines,
		DeclaredForm: declared,
		ObservedForm: observedForm,
		DominantLen:  dominantLen,
		Book:         book,
		Candidate:    candidate,
	}
	if !candidate.Rhyme.OK {
		result.Errors = append(result.Errors, ErrUnknownRhyme)
	}

	out := Output{
		Result: result,
		Scores: scoreResult(result),
	}

	for _, other := range []rhyme.Book{rhyme.Pingshui, rhyme.Xin, rhyme.Tong} {
		c := candidate
		if other != book {
			c = Arbitrate(lines, other)
		}
		score := RhymeScore(c.Rhyme, len(lines))
		switch other {
		case rhyme.Pingshui:
			out.RhymeScorePingshui = score
		case rhyme.Xin:
			out.RhymeScoreXin = score
		case rhyme.Tong:
			out.RhymeScoreTong = score
		}
	}

	if detailed {
		out.Report = Report(result)
	}
	return out
}

// scoreResult is Score's internal helper so the success path doesn't
// recompute the parse-line-length fallback branch Score already handles.
func scoreResult(r Result) Scores {
	return Scores{
		Form:  FormScore(r.Lines, r.DeclaredForm),
		Tone:  ToneScore(r.Candidate),
		Rhyme: RhymeScore(r.Candidate.Rhyme, len(r.Lines)),
	}
}
