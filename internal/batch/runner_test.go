package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/prosody-scorer/internal/dataset"
	"github.com/palemoky/prosody-scorer/internal/rhyme"
)

func TestRunPreservesInputOrder(t *testing.T) {
	records := []dataset.Record{
		{Content: "白日依山尽，黄河入海流。欲穷千里目，更上一层楼。", Instruct: "五言绝句", Title: "登鹳雀楼"},
		{Content: "床前明月光，疑是地上霜。举头望明月，低头思故乡。", Instruct: "五言绝句", Title: "静夜思"},
		{Content: "春眠不觉晓，处处闻啼鸟。夜来风雨声，花落知多少。", Instruct: "五言绝句", Title: "春晓"},
	}

	results, errs := Run(records, Options{Workers: 2, Book: rhyme.Pingshui})
	assert.Empty(t, errs)
	require.Len(t, results, 3)
	assert.Equal(t, "登鹳雀楼", results[0].Title)
	assert.Equal(t, "静夜思", results[1].Title)
	assert.Equal(t, "春晓", results[2].Title)
}

func TestRunScoresEveryRecord(t *testing.T) {
	records := []dataset.Record{
		{Content: "白日依山尽，黄河入海流。欲穷千里目，更上一层楼。", Instruct: "五言绝句"},
	}
	results, errs := Run(records, Options{Workers: 1, Book: rhyme.Pingshui})
	assert.Empty(t, errs)
	require.Len(t, results, 1)
	assert.Equal(t, 100.0, results[0].FormatScore)
	assert.Equal(t, 100.0, results[0].RhymeScore)
}

func TestRunDefaultsWorkersWhenNonPositive(t *testing.T) {
	records := []dataset.Record{
		{Content: "白日依山尽，黄河入海流。欲穷千里目，更上一层楼。", Instruct: "五言绝句"},
	}
	results, errs := Run(records, Options{Workers: 0, Book: rhyme.Pingshui})
	assert.Empty(t, errs)
	assert.Len(t, results, 1)
}

func TestRunCollectsPerRecordErrorsWithoutAborting(t *testing.T) {
	records := []dataset.Record{
		{Content: "甲乙丙丁戊己庚辛壬癸子丑寅卯辰巳", Instruct: "五言绝句"}, // unparseable line length
		{Content: "白日依山尽，黄河入海流。欲穷千里目，更上一层楼。", Instruct: "五言绝句"},
	}
	results, errs := Run(records, Options{Workers: 2, Book: rhyme.Pingshui})
	require.Len(t, results, 2)
	require.Len(t, errs, 1)
	assert.Equal(t, 0, errs[0].Index)
	assert.Equal(t, 100.0, results[1].FormatScore)
}

func TestRunDetailedPopulatesReport(t *testing.T) {
	records := []dataset.Record{
		{Content: "白日依山尽，黄河入海流。欲穷千里目，更上一层楼。", Instruct: "五言绝句"},
	}
	results, _ := Run(records, Options{Workers: 1, Book: rhyme.Pingshui, Detailed: true})
	assert.NotEmpty(t, results[0].Report)
}

func TestRunEmptyInput(t *testing.T) {
	results, errs := Run(nil, Options{Workers: 2, Book: rhyme.Pingshui})
	assert.Empty(t, results)
	assert.Empty(t, errs)
}
