package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGloss(t *testing.T) {
	assert.Equal(t, "lǐ bái", Gloss("李白"))
	assert.Equal(t, "zhōng guó", Gloss("中国"))
}

func TestGlossEmptyInput(t *testing.T) {
	assert.Equal(t, "", Gloss(""))
}
