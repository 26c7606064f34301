package prosody

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/prosody-scorer/internal/rhyme"
)

func observedOf(tones ...rhyme.Tone) []rhyme.Tone { return tones }

func TestInferOpeningCore2WhenLine1Rhymes(t *testing.T) {
	// A poem whose lines exactly match core 2's cycle (2, 4, 1, 2): line 1
	// rhymes (core 2's fifth position is the rhyme), so only cores {2, 4}
	// are candidates, and only core 2's own pattern fits line 1 exactly.
	line1 := applyPattern(ExpectedPattern(2, 5, rhyme.Level))
	line2 := applyPattern(ExpectedPattern(duiOf(2), 5, rhyme.Level))
	line3 := applyPattern(ExpectedPattern(adhereOf(duiOf(2)), 5, rhyme.Level))
	line4 := applyPattern(ExpectedPattern(duiOf(adhereOf(duiOf(2))), 5, rhyme.Level))

	opening := InferOpening([][]rhyme.Tone{line1, line2, line3, line4}, rhyme.Level, true, 5, rhyme.Level)
	assert.Equal(t, 2, opening)
}

func TestInferOpeningNonRhymingLine1(t *testing.T) {
	line1 := applyPattern(ExpectedPattern(1, 5, rhyme.Level))
	line2 := applyPattern(ExpectedPattern(duiOf(1), 5, rhyme.Level))
	line3 := applyPattern(ExpectedPattern(adhereOf(duiOf(1)), 5, rhyme.Level))
	line4 := applyPattern(ExpectedPattern(duiOf(adhereOf(duiOf(1))), 5, rhyme.Level))

	opening := InferOpening([][]rhyme.Tone{line1, line2, line3, line4}, rhyme.Level, false, 5, rhyme.Level)
	assert.Equal(t, 1, opening)
}

func TestInferOpeningFallsBackOnAmbiguousLine1(t *testing.T) {
	// All four lines are wildcards: every candidate core remains
	// consistent throughout, so the fallback (first remaining candidate,
	// or the last when line 1's tail is poly/unknown) decides.
	wildcard := []rhyme.Tone{rhyme.Poly, rhyme.Poly, rhyme.Poly, rhyme.Poly, rhyme.Poly}
	lines := [][]rhyme.Tone{wildcard, wildcard, wildcard, wildcard}

	openingKnownTail := InferOpening(lines, rhyme.Level, true, 5, rhyme.Level)
	openingPolyTail := InferOpening(lines, rhyme.Level, true, 5, rhyme.Poly)
	assert.NotEqual(t, openingKnownTail, openingPolyTail, "a poly/unknown line-1 tail should flip the fallback candidate")
}

// applyPattern turns an Expect pattern into a concrete observed tone
// sequence, resolving Either to Level arbitrarily (a line-consistency
// check never distinguishes between tied Either readings).
func applyPattern(pattern []Expect) []rhyme.Tone {
	out := make([]rhyme.Tone, len(pattern))
	for i, e := range pattern {
		switch e {
		case Lvl:
			out[i] = rhyme.Level
		case Obl:
			out[i] = rhyme.Oblique
		default:
			out[i] = rhyme.Level
		}
	}
	return out
}
