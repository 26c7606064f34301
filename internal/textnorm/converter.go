// Package textnorm prepares raw poem text for the prosody engine: script
// conversion (traditional to simplified, since the rhyme tables are keyed
// by simplified characters) and whitespace/punctuation normalization.
package textnorm

import (
	"fmt"

	"github.com/liuzl/gocc"
)

// s2t and t2s are initialized once in init() and are safe for concurrent
// use; gocc.OpenCC.Convert is thread-safe.
var (
	s2t *gocc.OpenCC
	t2s *gocc.OpenCC
)

func init() {
	var err error

	s2t, err = gocc.New("s2t")
	if err != nil {
		panic(fmt.Sprintf("failed to initialize s2t converter: %v", err))
	}

	t2s, err = gocc.New("t2s")
	if err != nil {
		panic(fmt.Sprintf("failed to initialize t2s converter: %v", err))
	}
}

// ToSimplified converts traditional Chinese text to simplified.
// internal/prosody.Score runs this on the poem content before line
// splitting, since internal/rhyme's character tables are keyed by
// simplified characters; a poem typed entirely in traditional script still
// resolves correctly.
func ToSimplified(text string) (string, error) {
	return t2s.Convert(text)
}

// ToTraditional converts simplified Chinese text to traditional. The
// counterpart to ToSimplified; kept for callers that want to render a
// traditional-script view of a poem already normalized to simplified.
func ToTraditional(text string) (string, error) {
	return s2t.Convert(text)
}
