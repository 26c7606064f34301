package prosody

import "github.com/palemoky/prosody-scorer/internal/rhyme"

// Candidate is one full reading of a poem: a line length / rhyme-direction
// pair, the opening it inferred, and the per-line and rhyme verdicts that
// reading produced.
type Candidate struct {
	LineLen      int
	Direction    rhyme.Tone
	Opening      int
	LineVerdicts []LineVerdict
	Rhyme        RhymeResult
}

// totalMarks sums the correctness bitmask across every line.
func (c Candidate) totalMarks() int {
	n := 0
	for _, v := range c.LineVerdicts {
		for _, m := range v.Marks {
			if m {
				n++
			}
		}
	}
	return n
}

// rhymeVariety reports how many distinct Pingshui classes (as returned by
// rhyme.Classes) the rhyme characters of lines 2 onward collectively span;
// a tighter, more consistent rhyme scheme uses fewer. Under the other
// books, or when the rhyme check failed, it is 1 if the rhyme check
// succeeded and 0 otherwise.
func (c Candidate) rhymeVariety(lastChars []rune, book rhyme.Book) int {
	if book != rhyme.Pingshui || !c.Rhyme.OK {
		if c.Rhyme.OK {
			return 1
		}
		return 0
	}
	groups := map[int]bool{}
	for _, v := range c.Rhyme.Verdicts {
		if v.LineIndex == 0 {
			continue
		}
		for _, cl := range rhyme.Classes(lastChars[v.LineIndex], book) {
			groups[cl] = true
		}
	}
	if len(groups) == 0 {
		return 0
	}
	return len(groups)
}

// buildCandidate runs C5-C7 for one (lineLen, direction) reading of a poem
// already known to have lineCount lines of exactly lineLen characters.
func buildCandidate(lines []string, lineLen int, dir rhyme.Tone, book rhyme.Book) Candidate {
	lineCount := len(lines)
	observed := make([][]rhyme.Tone, lineCount)
	lastChars := make([]rune, lineCount)
	for i, l := range lines {
		runes := []rune(l)
		observed[i] = make([]rhyme.Tone, len(runes))
		for j, r := range runes {
			observed[i][j] = rhyme.CharTone(r, book)
		}
		lastChars[i] = runes[len(runes)-1]
	}

	rhymeResult := CheckRhyme(lastChars, book)
	line1Tail := observed[0][len(observed[0])-1]
	line1Rhymes := false
	for _, v := range rhymeResult.Verdicts {
		if v.LineIndex == 0 {
			line1Rhymes = v.Rhymes
		}
	}

	opening := InferOpening(observed, dir, line1Rhymes, lineLen, line1Tail)
	cores := CoreCycle(opening, lineCount)

	verdicts := make([]LineVerdict, lineCount)
	carry := RescueNone
	for i, core := range cores {
		lineNum := i + 1
		in := RescueNone
		if lineNum%2 == 0 {
			in = carry
		}
		v := MatchLine(observed[i], core, lineLen, dir, in)
		verdicts[i] = v
		if lineNum%2 != 0 {
			carry = v.Rescue
		}
	}

	return Candidate{
		LineLen:      lineLen,
		Direction:    dir,
		Opening:      OpeningID(opening, lineLen),
		LineVerdicts: verdicts,
		Rhyme:        rhymeResult,
	}
}

// Arbitrate implements C8: it builds a full candidate reading for both
// rhyme directions (per spec.md §4.7 — a poem whose rhyme characters are
// all polyphonic or unknown can plausibly be read either way) and selects
// the winner by total correct marks, then rhyme count (both compared
// highest-first), then rhyme variety (fewer distinct classes wins).
func Arbitrate(lines []string, book rhyme.Book) Candidate {
	counts := make([]int, len(lines))
	for i, l := range lines {
		counts[i] = countCJK(l)
	}
	lineLen, _ := modeOf(counts)

	lastChars := make([]rune, len(lines))
	for i, l := range lines {
		runes := []rune(l)
		lastChars[i] = runes[len(runes)-1]
	}

	candidates := []Candidate{
		buildCandidate(lines, lineLen, rhyme.Level, book),
		buildCandidate(lines, lineLen, rhyme.Oblique, book),
	}

	best := candidates[0]
	bestVariety := best.rhymeVariety(lastChars, book)
	for _, c := range candidates[1:] {
		variety := c.rhymeVariety(lastChars, book)
		if better(c, best, variety, bestVariety) {
			best, bestVariety = c, variety
		}
	}
	return best
}

// better reports whether candidate a beats candidate b under C8's
// comparator: more total correct marks wins; ties go to more rhymed lines;
// remaining ties go to lower rhyme variety.
func better(a, b Candidate, varietyA, varietyB int) bool {
	if a.totalMarks() != b.totalMarks() {
		return a.totalMarks() > b.totalMarks()
	}
	if a.Rhyme.RhymeCount() != b.Rhyme.RhymeCount() {
		return a.Rhyme.RhymeCount() > b.Rhyme.RhymeCount()
	}
	return varietyA < varietyB
}
