package prosody

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/prosody-scorer/internal/rhyme"
)

func TestReportEmptyLinesYieldsFailureMessage(t *testing.T) {
	assert.Contains(t, Report(Result{}), "解析失败")
}

func TestReportDengGuanQueLou(t *testing.T) {
	lines := []string{"白日依山尽", "黄河入海流", "欲穷千里目", "更上一层楼"}
	candidate := Arbitrate(lines, rhyme.Pingshui)
	result := Result{
		Lines:        lines,
		DeclaredForm: FiveQiJueju,
		ObservedForm: FiveQiJueju,
		Book:         rhyme.Pingshui,
		Candidate:    candidate,
	}

	report := Report(result)
	assert.Contains(t, report, "五言绝句")
	assert.Contains(t, report, "平水韵")
	for _, line := range lines {
		firstChar := string([]rune(line)[0])
		assert.Contains(t, report, firstChar)
	}
	// Each poem line renders as two report lines (the marked characters,
	// then a pinyin gloss line), so mandatory rhyme lines 2 and 4 land at
	// reportLines[3] and [7]: index 0 is the header, 1-2 are line 1's pair.
	reportLines := strings.Split(report, "\n")
	require.GreaterOrEqual(t, len(reportLines), 8)
	assert.Contains(t, reportLines[3], "韵：叶")
	assert.Contains(t, reportLines[7], "韵：叶")
}

func TestReportIncludesErrorHints(t *testing.T) {
	result := Result{
		Lines:        []string{"甲甲甲甲甲", "乙乙乙乙乙", "丙丙丙丙丙", "丁丁丁丁丁"},
		DeclaredForm: FiveQiJueju,
		ObservedForm: FiveQiJueju,
		Errors:       []ErrorKind{ErrUnknownRhyme},
	}
	report := Report(result)
	assert.Contains(t, report, "提示："+string(ErrUnknownRhyme))
}

func TestMarkGlyphCorrectAndIncorrect(t *testing.T) {
	matched := LineVerdict{Marks: []bool{true}, Rescue: RescueNone}
	mismatched := LineVerdict{Marks: []bool{false}, Rescue: RescueNone}
	assert.Equal(t, '〇', markGlyph('甲', 0, matched, rhyme.Pingshui), "matched level fixture")
	assert.Equal(t, '〇', markGlyph('戊', 0, matched, rhyme.Pingshui), "matched oblique fixture; 〇 marks any correct position, not just level")
	assert.Equal(t, '●', markGlyph('甲', 0, mismatched, rhyme.Pingshui))
}

func TestMarkGlyphRescuedPositionRendersAsCorrect(t *testing.T) {
	// A rescued position is correct by construction (MatchLine only sets
	// Rescue on the candidate it picked because that candidate matched),
	// so it renders identically to an ordinary match; the rescue itself
	// surfaces via Report's trailing note, not a distinct glyph.
	v := LineVerdict{Marks: []bool{true}, Rescue: RescueSelf}
	assert.Equal(t, '〇', markGlyph('甲', 0, v, rhyme.Pingshui))
}

func TestMarkGlyphPolyIsAlwaysCorrectAndDistinct(t *testing.T) {
	matched := LineVerdict{Marks: []bool{true}, Rescue: RescueNone}
	assert.Equal(t, '◎', markGlyph('子', 0, matched, rhyme.Pingshui), "子 is the polyphonic fixture")
}

func TestMarkGlyphUnknownIsRareRegardlessOfMatch(t *testing.T) {
	matched := LineVerdict{Marks: []bool{true}, Rescue: RescueNone}
	mismatched := LineVerdict{Marks: []bool{false}, Rescue: RescueNone}
	assert.Equal(t, '�', markGlyph('龘', 0, matched, rhyme.Pingshui))
	assert.Equal(t, '�', markGlyph('龘', 0, mismatched, rhyme.Pingshui), "unknown characters show � even when the position nominally mismatched")
}
