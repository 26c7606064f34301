package prosody

import "github.com/palemoky/prosody-scorer/internal/rhyme"

// RhymeVerdict is C7's structured result for one rhyme position.
type RhymeVerdict struct {
	LineIndex int // 0-based index into the poem's line list
	Rhymes    bool
	Neighbor  bool // true if this line only rhymes via a Pingshui neighbor class (line 1 only)
}

// RhymeResult is the full structured output of C7.
type RhymeResult struct {
	MainClass int
	Direction rhyme.Tone // Level or Oblique: the tone category the main rhyme class belongs to
	Verdicts  []RhymeVerdict
	OK        bool // false means rhyme_unknown: every mandatory position was unknown
}

// RhymeCount reports how many mandatory rhyme positions (line 1 excluded,
// since it is an optional bonus position) actually rhyme.
func (r RhymeResult) RhymeCount() int {
	n := 0
	for _, v := range r.Verdicts {
		if v.LineIndex != 0 && v.Rhymes {
			n++
		}
	}
	return n
}

// mandatoryRhymeLines returns the 0-based indices of a poem's mandatory
// rhyme positions: line 2, 4, and (for 6+ line poems) every further even
// line, per spec.md's "Treat lines beyond 8 as extra rhyme positions"
// open-question decision.
func mandatoryRhymeLines(lineCount int) []int {
	var idx []int
	for i := 1; i < lineCount; i += 2 {
		idx = append(idx, i)
	}
	return idx
}

// CheckRhyme implements C7: it determines the poem's main rhyme class
// from the mandatory rhyme-position characters and verifies each
// rhyme-position line against it, extending the optional-rhyme leniency
// (neighbor classes) to line 1 only, and only under the archaic book.
func CheckRhyme(lastChars []rune, book rhyme.Book) RhymeResult {
	mandatory := mandatoryRhymeLines(len(lastChars))

	tally := map[int]int{}
	for _, i := range mandatory {
		for _, c := range rhyme.Classes(lastChars[i], book) {
			tally[normalizeClass(c)]++
		}
	}
	if len(tally) == 0 {
		return RhymeResult{OK: false}
	}

	mainClass := bestClass(tally)
	direction := classDirection(lastChars, mandatory, book, mainClass)

	verdicts := make([]RhymeVerdict, 0, len(mandatory)+1)
	for _, i := range mandatory {
		verdicts = append(verdicts, RhymeVerdict{
			LineIndex: i,
			Rhymes:    classSetContains(rhyme.Classes(lastChars[i], book), mainClass),
		})
	}

	// Line 1 is an optional rhyme position, checked with the neighbor
	// allowance (archaic book only, per spec.md §3 and §4.6).
	classes := rhyme.Classes(lastChars[0], book)
	direct := classSetContains(classes, mainClass)
	neighbor := false
	if !direct && book == rhyme.Pingshui {
		for _, c := range classes {
			if rhyme.SameRhyme(c, mainClass) {
				neighbor = true
				break
			}
		}
	}
	verdicts = append(verdicts, RhymeVerdict{LineIndex: 0, Rhymes: direct || neighbor, Neighbor: neighbor})

	return RhymeResult{MainClass: mainClass, Direction: direction, Verdicts: verdicts, OK: true}
}

// classDirection recovers the rhyme direction (Level or Oblique) of the
// winning main class. Under the archaic book the class id alone determines
// it (level classes are 1..30); under a modern book the id is unsigned, so
// it scans the mandatory characters for a reading whose class matches and
// reports that reading's sign.
func classDirection(lastChars []rune, mandatory []int, book rhyme.Book, mainClass int) rhyme.Tone {
	if book == rhyme.Pingshui {
		if t := rhyme.ToneOfPingshuiClass(mainClass); t == rhyme.Level || t == rhyme.Oblique {
			return t
		}
		return rhyme.Level
	}
	for _, i := range mandatory {
		for _, c := range rhyme.Classes(lastChars[i], book) {
			if normalizeClass(c) == mainClass {
				if c >= 0 {
					return rhyme.Level
				}
				return rhyme.Oblique
			}
		}
	}
	return rhyme.Level
}

// normalizeClass strips the tone sign modern-book classes carry (see
// internal/rhyme.Classes) so the main-class tally counts a class
// regardless of which reading produced it.
func normalizeClass(signed int) int {
	if signed < 0 {
		return -signed
	}
	return signed
}

func classSetContains(classes []int, target int) bool {
	for _, c := range classes {
		if normalizeClass(c) == target {
			return true
		}
	}
	return false
}

// bestClass picks the most frequent class, breaking ties by smallest id,
// per spec.md §3's main-rhyme-class invariant.
func bestClass(tally map[int]int) int {
	best, bestCount := 0, -1
	for class, count := range tally {
		if count > bestCount || (count == bestCount && class < best) {
			best, bestCount = class, count
		}
	}
	return best
}
