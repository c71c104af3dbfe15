package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomWord_FromBank(t *testing.T) {
	bank := map[string]bool{}
	for _, w := range wordBank {
		bank[w] = true
	}

	for i := 0; i < 50; i++ {
		word := RandomWord()
		assert.True(t, bank[word], "unexpected word %q", word)
	}
}

func TestWordBank_UppercaseAlphabetic(t *testing.T) {
	for _, w := range wordBank {
		assert.NotEmpty(t, w)
		for _, r := range w {
			assert.True(t, r >= 'A' && r <= 'Z', "word %q has non-uppercase rune %q", w, r)
		}
	}
}
