package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	text := "床前明月光，疑是地上霜。举头望明月，低头思故乡。"
	got := SplitSentences(text)
	assert.Equal(t, []string{"床前明月光", "疑是地上霜", "举头望明月", "低头思故乡"}, got)
}

func TestSplitSentencesDropsEmptyFragments(t *testing.T) {
	got := SplitSentences("春眠不觉晓，，处处闻啼鸟。")
	assert.Equal(t, []string{"春眠不觉晓", "处处闻啼鸟"}, got)
}

func TestSplitSentencesEmptyInput(t *testing.T) {
	assert.Empty(t, SplitSentences(""))
}

func TestStripPunctuation(t *testing.T) {
	assert.Equal(t, "春眠不觉晓", StripPunctuation("春眠不觉晓，"))
	assert.Equal(t, "李白的诗", StripPunctuation("《李白的诗》"))
	assert.Equal(t, "", StripPunctuation("，。！？"))
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "春眠 不觉晓", NormalizeText("  春眠   不觉晓  "))
	assert.Equal(t, "", NormalizeText("   "))
	assert.Equal(t, "单行", NormalizeText("单行"))
}
