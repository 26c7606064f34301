package prosody

import "github.com/palemoky/prosody-scorer/internal/rhyme"

// candidateCores lists the two opening cores compatible with a poem whose
// line 1 does, or doesn't, rhyme: core 2/4 end on the rhyme tone and core
// 1/3 don't, under either direction, since ExpectedPattern mirrors every
// fixed position (the final one included) for dir=Oblique.
func candidateCores(line1Rhymes bool, dir rhyme.Tone) []int {
	rhymingCores := []int{2, 4}
	nonRhymingCores := []int{1, 3}
	if line1Rhymes {
		return rhymingCores
	}
	return nonRhymingCores
}

// lineConsistent reports whether the observed tones of one line could
// plausibly have been produced by the given core (accepting its rescue
// variants too), i.e. there is no fixed position where the observed tone
// directly contradicts every candidate pattern for that core.
func lineConsistent(core, lineLen int, dir rhyme.Tone, observed []rhyme.Tone) bool {
	patterns := [][]Expect{ExpectedPattern(core, lineLen, dir)}
	if selfRescueApplicable(core) {
		patterns = append(patterns, selfRescuePattern(core, lineLen, dir))
	}
	if coupletRescueApplicable(core) {
		patterns = append(patterns, coupletRescuePattern(core, lineLen, dir))
	}
	for _, p := range patterns {
		_, mismatches := scoreCandidate(p, observed)
		if mismatches == 0 {
			return true
		}
	}
	return false
}

// InferOpening implements C5: given the poem's per-line observed tones,
// whether line 1 is believed to rhyme, and the rhyme direction, it
// determines which of the four opening cores governs the poem (the
// opening id, per spec.md, is core + line-length; see OpeningID).
//
// It walks the poem line by line, eliminating candidate cores whose
// implied pattern (under the dui/adhere cycle) contradicts that line's
// observed tones, stopping as soon as one candidate remains. If the whole
// poem is exhausted without disambiguation, it falls back to the first
// remaining candidate — unless line 1's rhyme-position character is
// polyphonic or unknown, in which case it flips to the other candidate,
// mirroring the original tool's _check_real_first policy of swapping
// between a rhyming/non-rhyming reading when the tail character could be
// either.
func InferOpening(linesObserved [][]rhyme.Tone, dir rhyme.Tone, line1Rhymes bool, lineLen int, line1Tail rhyme.Tone) int {
	candidates := candidateCores(line1Rhymes, dir)
	remaining := append([]int(nil), candidates...)

	for lineIdx, observed := range linesObserved {
		if len(remaining) <= 1 {
			break
		}
		var next []int
		for _, startCore := range remaining {
			cycle := CoreCycle(startCore, lineIdx+1)
			if lineConsistent(cycle[lineIdx], lineLen, dir, observed) {
				next = append(next, startCore)
			}
		}
		if len(next) > 0 {
			remaining = next
		}
		// If every candidate was eliminated by this line, keep the prior
		// set rather than collapsing to nothing — a later line may still
		// disambiguate, and an empty set would make the fallback below
		// meaningless.
	}

	if len(remaining) == 1 {
		return remaining[0]
	}
	if len(remaining) == 0 {
		remaining = candidates
	}
	if line1Tail == rhyme.Poly || line1Tail == rhyme.Unknown {
		return remaining[len(remaining)-1]
	}
	return remaining[0]
}
