package prosody

import "github.com/palemoky/prosody-scorer/internal/rhyme"

// Rescue is the 3-valued carry flag threaded from one line to the next
// within a couplet (spec.md §4.5): it must be reset at the start of every
// odd line index.
type Rescue int

const (
	RescueNone Rescue = iota
	RescueSelf
	RescueCoupletPending
)

// LineVerdict is C6's structured output for one line: the per-position
// correctness vector of the best-fitting candidate pattern, its mismatch
// count, and the outgoing rescue carry.
type LineVerdict struct {
	Marks      []bool
	Mismatches int
	Rescue     Rescue
}

func toneMatches(expect Expect, observed rhyme.Tone) bool {
	switch expect {
	case Either:
		return true
	case Lvl:
		return observed == rhyme.Level || observed == rhyme.Poly || observed == rhyme.Unknown
	default: // Obl
		return observed == rhyme.Oblique || observed == rhyme.Poly || observed == rhyme.Unknown
	}
}

func scoreCandidate(pattern []Expect, observed []rhyme.Tone) (marks []bool, mismatches int) {
	marks = make([]bool, len(pattern))
	for i, e := range pattern {
		ok := toneMatches(e, observed[i])
		marks[i] = ok
		if !ok {
			mismatches++
		}
	}
	return marks, mismatches
}

// MatchLine implements C6: given one line's observed per-position tones,
// the core template that governs it, the line length, the rhyme
// direction, and the rescue carry from the previous line, it picks the
// best-fitting candidate pattern and returns the structured verdict plus
// the outgoing carry.
func MatchLine(observed []rhyme.Tone, core, lineLen int, dir rhyme.Tone, carryIn Rescue) LineVerdict {
	if carryIn == RescueCoupletPending {
		// This line is the dui-partner of a couplet-rescue line; per
		// spec.md §4.5 its candidates are restricted to the rescuing
		// pattern alone.
		pattern := rescuePartnerPattern(core, lineLen, dir)
		marks, mismatches := scoreCandidate(pattern, observed)
		return LineVerdict{Marks: marks, Mismatches: mismatches, Rescue: RescueNone}
	}

	type candidate struct {
		pattern []Expect
		rescue  Rescue
	}
	candidates := []candidate{{pattern: ExpectedPattern(core, lineLen, dir), rescue: RescueNone}}
	if selfRescueApplicable(core) {
		candidates = append(candidates, candidate{pattern: selfRescuePattern(core, lineLen, dir), rescue: RescueSelf})
	}
	// Couplet rescue requires a dui-partner line below to supply the
	// compensating oblique tone (spec.md §4.5); an oblique-rhyme poem's
	// couplets don't have that structural slot, so the candidate is
	// excluded entirely rather than just scored worse.
	if coupletRescueApplicable(core) && dir == rhyme.Level {
		candidates = append(candidates, candidate{pattern: coupletRescuePattern(core, lineLen, dir), rescue: RescueCoupletPending})
	}

	var bestMarks []bool
	bestMismatches := len(observed) + 1
	var bestRescue Rescue
	for _, c := range candidates {
		marks, mismatches := scoreCandidate(c.pattern, observed)
		if mismatches < bestMismatches {
			bestMarks, bestMismatches, bestRescue = marks, mismatches, c.rescue
		}
	}
	return LineVerdict{Marks: bestMarks, Mismatches: bestMismatches, Rescue: bestRescue}
}
