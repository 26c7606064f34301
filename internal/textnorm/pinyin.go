package textnorm

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

var glossArgs = pinyin.NewArgs()

func init() {
	glossArgs.Style = pinyin.Tone
	glossArgs.Heteronym = false
}

// Gloss renders a line of Chinese text as space-separated toned pinyin, for
// the `--detailed-output` per-character annotation in the report (C9). This
// is a display aid only: rhyme-class lookups go through internal/rhyme's
// oracle, not through this package.
func Gloss(text string) string {
	if text == "" {
		return ""
	}
	result := pinyin.Pinyin(text, glossArgs)
	parts := make([]string, 0, len(result))
	for _, item := range result {
		if len(item) > 0 {
			parts = append(parts, item[0])
		}
	}
	return strings.Join(parts, " ")
}
