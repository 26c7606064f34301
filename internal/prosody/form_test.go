package prosody

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeclaredForm(t *testing.T) {
	tests := []struct {
		instruct string
		want     Form
		ok       bool
	}{
		{"五言绝句", FiveQiJueju, true},
		{"七言绝句", SevenQiJueju, true},
		{"五言律诗", FiveLuLvshi, true},
		{"七言律诗", SevenLuLvshi, true},
		{"词", Reject, false},
		{"", Reject, false},
	}
	for _, tt := range tests {
		got, ok := ParseDeclaredForm(tt.instruct)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.ok, ok)
	}
}

func TestFormLineLenAndIsJueju(t *testing.T) {
	assert.Equal(t, 5, FiveQiJueju.LineLen())
	assert.Equal(t, 7, SevenQiJueju.LineLen())
	assert.Equal(t, 5, FiveLuLvshi.LineLen())
	assert.Equal(t, 7, SevenLuLvshi.LineLen())
	assert.Equal(t, 0, Reject.LineLen())

	assert.True(t, FiveQiJueju.IsJueju())
	assert.True(t, SevenQiJueju.IsJueju())
	assert.False(t, FiveLuLvshi.IsJueju())
	assert.False(t, SevenLuLvshi.IsJueju())
}

func TestClassifyFormJueju(t *testing.T) {
	lines := []string{"白日依山尽", "黄河入海流", "欲穷千里目", "更上一层楼"}
	form, dominant := ClassifyForm(lines, "登鹳雀楼")
	assert.Equal(t, FiveQiJueju, form)
	assert.Equal(t, 5, dominant)
}

func TestClassifyFormLvshi(t *testing.T) {
	lines := []string{
		"甲甲甲甲甲", "乙乙乙乙乙", "丙丙丙丙丙", "丁丁丁丁丁",
		"壬壬壬壬壬", "戊戊戊戊戊", "己己己己己", "庚庚庚庚庚",
	}
	form, dominant := ClassifyForm(lines, "")
	assert.Equal(t, FiveLuLvshi, form)
	assert.Equal(t, 5, dominant)
}

func TestClassifyFormRejectsCycleTitle(t *testing.T) {
	lines := []string{"白日依山尽", "黄河入海流", "欲穷千里目", "更上一层楼"}
	form, _ := ClassifyForm(lines, "饮酒二十首")
	assert.Equal(t, Reject, form)
}

func TestClassifyFormRejectsCiTitle(t *testing.T) {
	lines := []string{"白日依山尽", "黄河入海流", "欲穷千里目", "更上一层楼"}
	form, _ := ClassifyForm(lines, "水调歌头")
	assert.Equal(t, Reject, form)
}

func TestClassifyFormRejectsWrongLineCount(t *testing.T) {
	lines := []string{"白日依山尽", "黄河入海流", "欲穷千里目"}
	form, _ := ClassifyForm(lines, "")
	assert.Equal(t, Reject, form)
}

func TestIsCycleTitleWhitelist(t *testing.T) {
	// 春江花月夜二首 is deliberately NOT whitelisted despite the name: it is
	// a genuine two-poem cycle, so it is still rejected as a cycle title.
	assert.True(t, IsCycleTitle("春江花月夜二首"))
	assert.True(t, IsCycleTitle("饮酒二十首"))
	assert.True(t, IsCycleTitle("咏怀古迹五首其三"))
	assert.False(t, IsCycleTitle("登鹳雀楼"))
}
