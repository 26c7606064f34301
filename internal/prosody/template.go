package prosody

import "github.com/palemoky/prosody-scorer/internal/rhyme"

// Expect is the expected tone at one position of a template: Either means
// the position is permissive (classical 一三五不论), Lvl/Obl are the
// positions spec.md calls "fixed" (二四六分明).
type Expect int

const (
	Either Expect = iota
	Lvl
	Obl
)

// core holds the five fixed/permissive positions of one of the four
// canonical 5-character openings, core id 1..4:
//
//	1: 仄仄平平仄  oblique-start, non-rhyme
//	2: 平平仄仄平  level-start,   rhyme
//	3: 平平平仄仄  level-start,   non-rhyme
//	4: 仄仄仄平平  oblique-start, rhyme
//
// Position 1 and 3 are always Either (classical 一三不论); this is the
// "base template" every line's expected pattern is ultimately derived
// from, whether the line itself is 5 or 7 characters long.
var coreTemplates = [5][5]Expect{
	1: {Either, Obl, Either, Lvl, Obl},
	2: {Either, Lvl, Either, Obl, Lvl},
	3: {Either, Lvl, Either, Obl, Obl},
	4: {Either, Obl, Either, Lvl, Lvl},
}

// coreOf7 maps a 7-character opening id (5..8) to the core id whose shape
// forms its trailing five positions, per the classical rule that a
// 7-character template is built by prefixing the analogous 5-character
// template with two characters of opposite tone to its first position:
//
//	5: 仄仄平平平仄仄 (core 3, oblique-start, non-rhyme)
//	6: 平平仄仄仄平平 (core 4, level-start,   rhyme)
//	7: 平平仄仄平平仄 (core 1, level-start,   non-rhyme)
//	8: 仄仄平平仄仄平 (core 2, oblique-start, rhyme)
var coreOf7 = map[int]int{5: 3, 6: 4, 7: 1, 8: 2}

func openingCore(opening int) (core int, lineLen int) {
	if opening >= 1 && opening <= 4 {
		return opening, 5
	}
	return coreOf7[opening], 7
}

// OpeningID returns the spec.md "opening id" (1..8) for a given core and
// line length, the inverse of openingCore.
func OpeningID(core, lineLen int) int {
	if lineLen == 5 {
		return core
	}
	for id, c := range coreOf7 {
		if c == core {
			return id
		}
	}
	return 0
}

func invert(e Expect) Expect {
	switch e {
	case Lvl:
		return Obl
	case Obl:
		return Lvl
	default:
		return Either
	}
}

func invertPattern(p [5]Expect) [5]Expect {
	return [5]Expect{invert(p[0]), invert(p[1]), invert(p[2]), invert(p[3]), invert(p[4])}
}

// embed7 re-expresses a 5-position core pattern as the expected pattern of
// a 7-character line: the two leading positions are always permissive
// (they are never among the checked positions 4, 6, 7 per spec.md §4.4),
// and core positions 2..5 land at full-line positions 4..7.
func embed7(core [5]Expect) [7]Expect {
	return [7]Expect{Either, Either, Either, core[1], core[2], core[3], core[4]}
}

// ExpectedPattern returns the expected tone pattern for a line of the
// given length using the given opening core, under rhyme direction dir
// (Level or Oblique — Oblique mirrors every fixed position, producing the
// oblique-rhyme template family; see DESIGN.md's Open Question note).
func ExpectedPattern(core, lineLen int, dir rhyme.Tone) []Expect {
	p := coreTemplates[core]
	if dir == rhyme.Oblique {
		p = invertPattern(p)
	}
	if lineLen == 5 {
		return p[:]
	}
	e7 := embed7(p)
	return e7[:]
}

// selfRescueApplicable reports whether core's non-rhyming level-start
// shape (core 3, or its 7-character embedding core-of-7 5) admits the
// classical 平平仄平仄 self-rescue: position 3 trades places with the
// normally-fixed position 4.
func selfRescueApplicable(core int) bool { return core == 3 }

// coupletRescueApplicable reports whether core's non-rhyming
// oblique-start shape (core 1, or 7-character core-of-7 7) admits the
// relaxed "position 4 may also be oblique" couplet-rescue variant, whose
// partner line must then answer with rescuePartnerPattern.
func coupletRescueApplicable(core int) bool { return core == 1 }

// selfRescuePattern returns the self-rescue variant of core 3's pattern:
// 平平仄平仄 instead of 平平平仄仄— position 3 becomes fixed-oblique,
// position 4 becomes fixed-level.
func selfRescuePattern(core, lineLen int, dir rhyme.Tone) []Expect {
	p := coreTemplates[core]
	p[2], p[3] = Obl, Lvl
	if dir == rhyme.Oblique {
		p = invertPattern(p)
	}
	if lineLen == 5 {
		return p[:]
	}
	e7 := embed7(p)
	return e7[:]
}

// coupletRescuePattern returns core 1's relaxed variant: position 4
// (normally fixed level) may also be oblique, the classical 仄仄平仄仄
// half-deviation that obliges the next line to answer with
// rescuePartnerPattern.
func coupletRescuePattern(core, lineLen int, dir rhyme.Tone) []Expect {
	p := coreTemplates[core]
	p[3] = Obl
	if dir == rhyme.Oblique {
		p = invertPattern(p)
	}
	if lineLen == 5 {
		return p[:]
	}
	e7 := embed7(p)
	return e7[:]
}

// rescuePartnerPattern is the pattern core 2's line must use when the
// preceding line (its dui-partner, core 1) used coupletRescuePattern: the
// normally-permissive position 3 becomes fixed-level (avoiding 孤平, lone
// level tone) and the normally-fixed-oblique position 4 becomes
// fixed-level too, while position 5 (the rhyme) stays exactly as core 2
// requires.
func rescuePartnerPattern(core, lineLen int, dir rhyme.Tone) []Expect {
	p := coreTemplates[core]
	p[2], p[3] = Lvl, Lvl
	if dir == rhyme.Oblique {
		p = invertPattern(p)
	}
	if lineLen == 5 {
		return p[:]
	}
	e7 := embed7(p)
	return e7[:]
}

// duiOf and adhereOf implement the classical 对 (opposition within a
// couplet) and 粘 (adhesion between couplets) rules as a two-entry
// successor map over the four cores, matching spec.md's "two cyclic
// successor maps" (one per parity of line index).
func duiOf(core int) int {
	switch core {
	case 1:
		return 2
	case 2:
		return 4
	case 3:
		return 4
	default:
		return 2
	}
}

func adhereOf(core int) int {
	switch core {
	case 2:
		return 3
	case 4:
		return 1
	default:
		return core
	}
}

// CoreCycle generates the core id used by every line of a poem of
// lineCount lines, given the opening core used for line 1: odd lines
// (after the first) adhere to the previous line, even lines oppose it.
func CoreCycle(startCore, lineCount int) []int {
	cores := make([]int, lineCount)
	cores[0] = startCore
	for i := 1; i < lineCount; i++ {
		lineNum := i + 1
		if lineNum%2 == 0 {
			cores[i] = duiOf(cores[i-1])
		} else {
			cores[i] = adhereOf(cores[i-1])
		}
	}
	return cores
}
