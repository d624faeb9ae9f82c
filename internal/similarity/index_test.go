package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/lexicon"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	lex, err := lexicon.Load()
	require.NoError(t, err)
	return NewIndex(lex)
}

func TestSimilarReturnsRankedMatches(t *testing.T) {
	idx := newTestIndex(t)

	matches, err := idx.Similar("python", 5)
	require.NoError(t, err)
	require.Len(t, matches, 5)

	for i, m := range matches {
		assert.NotEqual(t, "python", m.Name)
		assert.Greater(t, m.Score, 0.0)
		assert.LessOrEqual(t, m.Score, 1.0+1e-9)
		if i > 0 {
			assert.GreaterOrEqual(t, matches[i-1].Score, m.Score)
		}
	}
}

func TestSimilarResolvesSynonyms(t *testing.T) {
	idx := newTestIndex(t)

	byAlias, err := idx.Similar("k8s", 3)
	require.NoError(t, err)
	byName, err := idx.Similar("kubernetes", 3)
	require.NoError(t, err)
	assert.Equal(t, byName, byAlias)
}

func TestSimilarInvalidLimit(t *testing.T) {
	idx := newTestIndex(t)

	_, err := idx.Similar("python", 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)
	_, err = idx.Similar("python", -2)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestSimilarUnknownTermWithoutOverlap(t *testing.T) {
	idx := newTestIndex(t)

	matches, err := idx.Similar("zzqwxvy", 3)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSimilarDeterministic(t *testing.T) {
	idx := newTestIndex(t)

	first, err := idx.Similar("docker", 10)
	require.NoError(t, err)
	second, err := idx.Similar("docker", 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBetween(t *testing.T) {
	idx := newTestIndex(t)

	assert.InDelta(t, 1.0, idx.Between("python", "python"), 1e-9)
	assert.Equal(t, idx.Between("python", "javascript"), idx.Between("javascript", "python"))
	assert.Equal(t, 0.0, idx.Between("python", "zzqwxvy"))
	assert.Equal(t, 0.0, idx.Between("zzqwxvy", "python"))
}
