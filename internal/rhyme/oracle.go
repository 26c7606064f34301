package rhyme

import (
	"sort"

	"github.com/mozillazg/go-pinyin"
)

// Classes returns every rhyme-class id a character is attested in under the
// given book. A single-reading character returns one id; a polyphonic one
// returns several. An empty slice means the book has no entry for it.
//
// Pingshui ids are the raw 1..106 class numbers (see types.go). Xin and Tong
// ids are signed the way the original rhythm module encodes them: positive
// for a level-tone reading, negative for oblique, so a caller can recover
// both the class and its tone from one int without a second lookup.
func Classes(char rune, book Book) []int {
	switch book {
	case Pingshui:
		classes := archaicClasses[char]
		if len(classes) == 0 {
			return nil
		}
		return append([]int(nil), classes...)
	case Xin, Tong:
		return modernClasses(char, book)
	default:
		return nil
	}
}

// CharTone returns the tonal super-category of a character under a book,
// aggregating across every reading. A character with both level and oblique
// readings in the book is Poly.
func CharTone(char rune, book Book) Tone {
	classes := Classes(char, book)
	if len(classes) == 0 {
		return Unknown
	}
	var sawLevel, sawOblique bool
	for _, class := range classes {
		var t Tone
		if book == Pingshui {
			t = ToneOfPingshuiClass(class)
		} else if class > 0 {
			t = Level
		} else {
			t = Oblique
		}
		switch t {
		case Level:
			sawLevel = true
		case Oblique:
			sawOblique = true
		}
	}
	switch {
	case sawLevel && sawOblique:
		return Poly
	case sawLevel:
		return Level
	case sawOblique:
		return Oblique
	default:
		return Unknown
	}
}

// NeighborClasses returns the other Pingshui LEVEL class ids that share a
// Cilin (19-class) group with class, via cilinOfLevelClass. It is the basis
// of the line-1 neighbor-rhyme allowance: two level-class rhyme words that
// differ under Pingshui but land in the same Cilin group are treated as
// compatible for an opening line. Returns nil if class isn't a Pingshui
// level class (1..30) or has no recorded Cilin group.
func NeighborClasses(class int) []int {
	groups, ok := cilinOfLevelClass[class]
	if !ok {
		return nil
	}
	inGroup := make(map[int]bool, len(groups))
	for _, g := range groups {
		inGroup[g] = true
	}
	seen := map[int]bool{}
	var out []int
	for lvl, gs := range cilinOfLevelClass {
		if lvl == class {
			continue
		}
		for _, g := range gs {
			if inGroup[g] && !seen[lvl] {
				seen[lvl] = true
				out = append(out, lvl)
				break
			}
		}
	}
	sort.Ints(out)
	return out
}

// SameRhyme reports whether two Pingshui level classes are either identical
// or Cilin neighbors — the test spec.md's line-1 neighbor-rhyme allowance
// wants applied when checking whether an opening line's tail rhymes with
// the poem's main class.
func SameRhyme(a, b int) bool {
	if a == b {
		return true
	}
	for _, n := range NeighborClasses(a) {
		if n == b {
			return true
		}
	}
	return false
}

// modernClasses derives a character's Xin/Tong rhyme classes at lookup time
// from its pinyin, rather than from a precomputed dictionary: it asks
// go-pinyin for every reading (Heteronym), keeps the final, and maps the
// final through the book's final→class table (pinyinfinal.go). Tone digits
// 1-2 are level, 3-4 are oblique; a final reported without a tone digit
// (neutral tone) is treated as level, matching the original rhythm module's
// default.
func modernClasses(char rune, book Book) []int {
	table := finalClassTable(book)
	if table == nil {
		return nil
	}
	args := pinyin.NewArgs()
	args.Heteronym = true
	args.Style = pinyin.FinalsTone3
	readings := pinyin.Pinyin(string(char), args)
	if len(readings) == 0 {
		return nil
	}
	seen := map[int]bool{}
	var out []int
	for _, reading := range readings[0] {
		final, level := splitFinalTone(reading)
		class, ok := table[final]
		if !ok {
			continue
		}
		signed := class
		if !level {
			signed = -class
		}
		if !seen[signed] {
			seen[signed] = true
			out = append(out, signed)
		}
	}
	return out
}

// splitFinalTone strips a trailing ASCII tone digit (go-pinyin's
// FinalsTone3 style) off a reading, returning the bare final and whether
// the reading's tone is level (1st/2nd, or unmarked neutral).
func splitFinalTone(reading string) (final string, level bool) {
	if reading == "" {
		return "", true
	}
	last := reading[len(reading)-1]
	if last < '1' || last > '5' {
		return reading, true
	}
	final = reading[:len(reading)-1]
	switch last {
	case '1', '2', '5':
		return final, true
	default:
		return final, false
	}
}
