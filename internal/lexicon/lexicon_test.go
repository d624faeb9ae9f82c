package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
)

func TestLoad_EmbeddedTable(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, lex.Version())
	// The table is meant to span hundreds of skills across categories.
	assert.Greater(t, lex.Len(), 150)
}

func TestLoad_RejectsInvalidData(t *testing.T) {
	bad := []byte(`{"version": "x", "skills": [{"name": "python"}]}`)

	_, err := load(bad, skillsSchemaJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestLoad_RejectsDuplicateNames(t *testing.T) {
	dup := []byte(`{
		"version": "x",
		"skills": [
			{"name": "python", "category": "Programming", "synonyms": [], "keywords": ["a"]},
			{"name": "python", "category": "Programming", "synonyms": [], "keywords": ["b"]}
		]
	}`)

	_, err := load(dup, skillsSchemaJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLookup_SynonymsResolveToCanonical(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)

	for token, want := range map[string]string{
		"golang":           "go",
		"k8s":              "kubernetes",
		"Machine Learning": "machine-learning",
		"machine-learning": "machine-learning",
		"ReactJS":          "react",
		"Node":             "node.js",
		"postgres":         "postgresql",
	} {
		entry, ok := lex.Lookup(token)
		require.True(t, ok, "expected %q to resolve", token)
		assert.Equal(t, want, entry.Name)
	}

	_, ok := lex.Lookup("definitely-not-a-skill")
	assert.False(t, ok)
}

func TestMatchAll_WordBoundaries(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)

	found := lex.MatchAll(textproc.Fold("We are hiring a Go developer who knows Google Cloud"))
	assert.Contains(t, found, "go")
	assert.Contains(t, found, "gcp")

	// "go" must not match inside an unrelated longer word.
	found = lex.MatchAll(textproc.Fold("governance and golf are words, not skills"))
	assert.NotContains(t, found, "go")
}

func TestMatchAll_MultiWordFlexibleSeparators(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)

	for _, text := range []string{
		"hands-on machine learning work",
		"hands-on machine-learning work",
	} {
		found := lex.MatchAll(textproc.Fold(text))
		assert.Contains(t, found, "machine-learning", "text: %s", text)
	}
}

func TestCategoryOf_LexiconAndFallback(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)

	assert.Equal(t, types.CategoryProgramming, lex.CategoryOf("python"))
	assert.Equal(t, types.CategoryCloud, lex.CategoryOf("docker"))
	assert.Equal(t, types.CategoryDataAI, lex.CategoryOf("machine-learning"))

	// Fallback: not in the lexicon, categorized by substring keywords.
	assert.Equal(t, types.CategoryDataAI, lex.CategoryOf("reinforcement learning"))
	assert.Equal(t, types.CategoryDatabase, lex.CategoryOf("timescaledb"))
	assert.Equal(t, types.CategoryOther, lex.CategoryOf("basket weaving"))
}

func TestEntries_StableOrder(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)

	first := lex.Entries()[0].Name
	again, err := Load()
	require.NoError(t, err)
	assert.Equal(t, first, again.Entries()[0].Name)
}
