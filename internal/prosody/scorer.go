package prosody

// Scores holds the three [0,100] numbers C10 derives from a Result under
// one rhyme book. The rhyme score recomputed under every book lives on
// Output, not here.
type Scores struct {
	Form  float64
	Tone  float64
	Rhyme float64
}

// FormScore implements C10's form-score rule: 50 points if the declared
// line length matches the dominant observed length, 50 more if the
// declared jueju/lüshi category matches the observed line count.
func FormScore(lines []string, declared Form) float64 {
	n := len(lines)
	if n == 0 {
		return 0
	}
	counts := make([]int, n)
	for i, l := range lines {
		counts[i] = countCJK(l)
	}
	mode, _ := modeOf(counts)

	var score float64
	if declared.LineLen() != 0 && declared.LineLen() == mode {
		score += 50
	}
	declaredJueju := declared.IsJueju()
	observedJueju := n == 4
	observedLvshi := n >= 7 && n <= 9
	if (declaredJueju && observedJueju) || (!declaredJueju && declared != Reject && observedLvshi) {
		score += 50
	}
	return score
}

// lengthOnlyFormScore implements spec.md §7's parse-line-length fallback:
// when the text can't be split into lines at all, the form score is
// computed from the raw character count alone, scoring 50 if it equals the
// declared form's expected total and 0 otherwise.
func lengthOnlyFormScore(totalLen int, declared Form) float64 {
	lineLen := declared.LineLen()
	if lineLen == 0 {
		return 0
	}
	lineCount := 8
	if declared.IsJueju() {
		lineCount = 4
	}
	if totalLen == lineLen*lineCount {
		return 50
	}
	return 0
}

// ToneScore implements C10's tone-score rule: the fraction of positions
// across every line that matched their expected tone (rescued positions
// count as matches, per spec.md §4.5's rescue-credit invariant), as a
// percentage.
func ToneScore(c Candidate) float64 {
	total, correct := 0, 0
	for _, v := range c.LineVerdicts {
		for _, m := range v.Marks {
			total++
			if m {
				correct++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(correct) / float64(total)
}

// RhymeScore implements C10's rhyme-score rule: a quatrain's denominator is
// its 2 mandatory rhyme positions (2/2 -> 100, 1/2 -> 50, 0/2 -> 0); an
// 8-line poem scores 25 points per rhymed mandatory position; a poem of any
// other length (spec.md's Open Question: 7-9 line lüshi are never
// truncated) scores linearly against its own mandatory-position count.
func RhymeScore(r RhymeResult, lineCount int) float64 {
	if !r.OK {
		return 0
	}
	denom := len(mandatoryRhymeLines(lineCount))
	if denom == 0 {
		return 0
	}
	count := r.RhymeCount()
	switch lineCount {
	case 4:
		switch count {
		case 2:
			return 100
		case 1:
			return 50
		default:
			return 0
		}
	case 8:
		score := 25 * float64(count)
		if score > 100 {
			score = 100
		}
		return score
	default:
		score := 100 * float64(count) / float64(denom)
		if score > 100 {
			score = 100
		}
		return score
	}
}

