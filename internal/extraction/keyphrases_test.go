package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeyPhrasesRanksByFrequency(t *testing.T) {
	text := "distributed systems, event sourcing, distributed systems, caching, distributed systems"

	phrases := ExtractKeyPhrases(text, 2)
	assert.Len(t, phrases, 2)
	assert.Equal(t, "distributed systems", phrases[0].Phrase)
	assert.Greater(t, phrases[0].Score, phrases[1].Score)
}

func TestExtractKeyPhrasesCapsLength(t *testing.T) {
	phrases := ExtractKeyPhrases("highly scalable fault tolerant streaming ingestion platform", 5)
	for _, p := range phrases {
		words := 1
		for _, r := range p.Phrase {
			if r == ' ' {
				words++
			}
		}
		assert.LessOrEqual(t, words, maxPhraseWords)
	}
}

func TestExtractKeyPhrasesStableTieBreak(t *testing.T) {
	phrases := ExtractKeyPhrases("alpha, beta, alpha, beta", 2)
	assert.Len(t, phrases, 2)
	assert.Equal(t, "alpha", phrases[0].Phrase)
	assert.Equal(t, "beta", phrases[1].Phrase)
}

func TestExtractKeyPhrasesEdgeCases(t *testing.T) {
	assert.Nil(t, ExtractKeyPhrases("some text here", 0))
	assert.Nil(t, ExtractKeyPhrases("some text here", -3))
	assert.Nil(t, ExtractKeyPhrases("", 5))
}
