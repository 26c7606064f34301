package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadJSONLValidRecords(t *testing.T) {
	content := `{"content":"床前明月光","instruct":"五言绝句","title":"静夜思"}
{"content":"白日依山尽","instruct":"五言绝句","title":"登鹳雀楼"}
`
	path := writeTempFile(t, "dataset.jsonl", content)

	records, errs, err := ReadJSONL(path)
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, records, 2)
	assert.Equal(t, "静夜思", records[0].Title)
	assert.Equal(t, "登鹳雀楼", records[1].Title)
}

func TestReadJSONLSkipsBlankLines(t *testing.T) {
	content := "{\"content\":\"甲乙丙丁戊\",\"instruct\":\"五言绝句\"}\n\n   \n"
	path := writeTempFile(t, "dataset.jsonl", content)

	records, errs, err := ReadJSONL(path)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Len(t, records, 1)
}

func TestReadJSONLCollectsMalformedLinesWithoutAborting(t *testing.T) {
	content := "{\"content\":\"甲乙丙丁戊\",\"instruct\":\"五言绝句\"}\n" +
		"not valid json\n" +
		"{\"content\":\"乙丙丁戊己\",\"instruct\":\"五言绝句\"}\n"
	path := writeTempFile(t, "dataset.jsonl", content)

	records, errs, err := ReadJSONL(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Line)
}

func TestReadJSONLMissingFile(t *testing.T) {
	_, _, err := ReadJSONL(filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.Error(t, err)
}

func TestWriteJSONLThenReadBackRoundTrips(t *testing.T) {
	scored := []ScoredRecord{
		{
			Record:      Record{Content: "白日依山尽", Instruct: "五言绝句", Title: "登鹳雀楼"},
			FormatScore: 100, PingzeScore: 100, RhymeScore: 100,
		},
	}
	path := filepath.Join(t.TempDir(), "out.jsonl")
	require.NoError(t, WriteJSONL(path, scored))

	records, errs, err := ReadJSONL(path)
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, records, 1)
	assert.Equal(t, "白日依山尽", records[0].Content)
	assert.Equal(t, "登鹳雀楼", records[0].Title)
}

func TestWriteJSONLDoesNotEscapeHTML(t *testing.T) {
	scored := []ScoredRecord{
		{Record: Record{Content: "春<江>花月夜", Instruct: "五言绝句"}},
	}
	path := filepath.Join(t.TempDir(), "out.jsonl")
	require.NoError(t, WriteJSONL(path, scored))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "春<江>花月夜", "SetEscapeHTML(false) should leave angle brackets untouched")
}
