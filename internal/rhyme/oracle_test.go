package rhyme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassesPingshui(t *testing.T) {
	tests := []struct {
		name string
		char rune
		want []int
	}{
		{name: "静夜思 rhyme char 光", char: '光', want: []int{22}},
		{name: "静夜思 rhyme char 乡", char: '乡', want: []int{22}},
		{name: "登鹳雀楼 rhyme char 楼", char: '楼', want: []int{26}},
		{name: "unlisted character", char: '龘', want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classes(tt.char, Pingshui))
		})
	}
}

func TestTonePingshui(t *testing.T) {
	require.Equal(t, Level, CharTone('光', Pingshui))
	require.Equal(t, Oblique, CharTone('月', Pingshui), "月 is historically entering, oblique")
	require.Equal(t, Unknown, CharTone('龘', Pingshui))
}

func TestClassesModernDerivedFromPinyin(t *testing.T) {
	// 光 (guāng) -> final "uang", tone 1 -> level, class 10 in Xin.
	classes := Classes('光', Xin)
	require.NotEmpty(t, classes)
	assert.Contains(t, classes, 10)

	// 月 (yuè) -> final "ve"/"ue", tone 4 -> oblique, so the signed class
	// returned must be negative.
	moon := Classes('月', Xin)
	require.NotEmpty(t, moon)
	for _, c := range moon {
		assert.Negative(t, c)
	}
}

func TestToneModernAggregatesHeteronyms(t *testing.T) {
	// 还 has two readings (hái and huán), both second tone and so both
	// level; whichever go-pinyin's heteronym list returns, Tone must
	// never panic and must return a defined category.
	tone := CharTone('还', Xin)
	assert.NotEqual(t, Tone(-1), tone, "Tone should always return a defined category or Unknown")
}

func TestNeighborClasses(t *testing.T) {
	// cilinOfLevelClass maps level classes 9 and 10 onto overlapping Cilin
	// groups {5,10} and {3,5}; they share group 5, so each should appear
	// in the other's neighbor list.
	neighbors9 := NeighborClasses(9)
	assert.Contains(t, neighbors9, 10)

	neighbors1 := NeighborClasses(1)
	assert.NotContains(t, neighbors1, 9)
}

func TestSameRhyme(t *testing.T) {
	assert.True(t, SameRhyme(22, 22))
	assert.True(t, SameRhyme(9, 10), "classes 9 and 10 share Cilin group 5")
	assert.False(t, SameRhyme(1, 26))
}

func TestParseBook(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		want Book
	}{
		{name: "pingshui", ok: true, want: Pingshui},
		{name: "", ok: true, want: Pingshui},
		{name: "xin", ok: true, want: Xin},
		{name: "tong", ok: true, want: Tong},
		{name: "cilin", ok: false},
		{name: "bogus", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseBook(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.name)
		}
	}
}

func TestPingshuiClassName(t *testing.T) {
	assert.Equal(t, "阳", PingshuiClassName(22))
	assert.Equal(t, "尤", PingshuiClassName(26))
	assert.Equal(t, "筱", PingshuiClassName(RisingStart+16))
	assert.Equal(t, "", PingshuiClassName(0))
	assert.Equal(t, "", PingshuiClassName(107))
}
