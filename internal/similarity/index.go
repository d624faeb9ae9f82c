// Package similarity ranks lexicon skills against each other with a
// TF-IDF model built over the skill descriptions. The index is computed
// once at startup and is read-only afterwards, so it is safe for
// concurrent use.
package similarity

import (
	"errors"
	"math"
	"sort"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/textproc"
)

// ErrInvalidLimit is returned when a caller asks for a non-positive
// number of matches.
var ErrInvalidLimit = errors.New("similarity: limit must be positive")

// maxVocabulary bounds the feature space. The most frequent terms
// across the corpus are kept; ties break alphabetically so two builds
// over the same lexicon produce identical vectors.
const maxVocabulary = 500

// Match is one ranked neighbor of a query skill.
type Match struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Index holds L2-normalized TF-IDF vectors, one per lexicon skill.
type Index struct {
	names   []string
	byName  map[string]int
	vectors []map[int]float64

	vocab map[string]int
	idf   []float64

	lex *lexicon.Lexicon
}

// NewIndex builds the TF-IDF index from the lexicon's skill
// descriptions. Terms are unigrams and bigrams of content tokens; the
// vocabulary is capped at the most frequent terms.
func NewIndex(lex *lexicon.Lexicon) *Index {
	entries := lex.Entries()
	idx := &Index{
		names:   make([]string, len(entries)),
		byName:  make(map[string]int, len(entries)),
		vectors: make([]map[int]float64, len(entries)),
		lex:     lex,
	}

	docs := make([][]string, len(entries))
	totals := make(map[string]int)
	for i, entry := range entries {
		idx.names[i] = entry.Name
		idx.byName[entry.Name] = i
		docs[i] = docTerms(entry.Description)
		for _, term := range docs[i] {
			totals[term]++
		}
	}

	idx.vocab = buildVocabulary(totals)
	idx.idf = make([]float64, len(idx.vocab))

	df := make([]int, len(idx.vocab))
	for _, terms := range docs {
		seen := make(map[int]bool)
		for _, term := range terms {
			if dim, ok := idx.vocab[term]; ok && !seen[dim] {
				seen[dim] = true
				df[dim]++
			}
		}
	}
	n := float64(len(docs))
	for dim, count := range df {
		// Smoothed idf keeps terms present in every document from
		// zeroing out.
		idx.idf[dim] = math.Log((1+n)/(1+float64(count))) + 1
	}

	for i, terms := range docs {
		idx.vectors[i] = normalize(idx.vectorize(terms))
	}
	return idx
}

// Similar returns up to limit skills most similar to the query term,
// ranked by cosine similarity, best first. The query itself is never
// in the results. Equal scores order alphabetically. An unknown term
// is still vectorized against the corpus vocabulary, so near-miss
// queries degrade to keyword matching instead of failing; a query with
// no vocabulary overlap yields an empty slice.
func (idx *Index) Similar(term string, limit int) ([]Match, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	exclude := -1
	var query map[int]float64
	if name, ok := idx.lex.Canonical(term); ok {
		exclude = idx.byName[name]
		query = idx.vectors[exclude]
	} else {
		query = normalize(idx.vectorize(docTerms(term)))
	}
	if len(query) == 0 {
		return []Match{}, nil
	}

	matches := make([]Match, 0, len(idx.names))
	for i, vec := range idx.vectors {
		if i == exclude {
			continue
		}
		if score := dot(query, vec); score > 0 {
			matches = append(matches, Match{Name: idx.names[i], Score: score})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Name < matches[j].Name
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// Between returns the cosine similarity of two skills, or 0 when either
// is unknown to the lexicon.
func (idx *Index) Between(a, b string) float64 {
	ia, ok := idx.resolve(a)
	if !ok {
		return 0
	}
	ib, ok := idx.resolve(b)
	if !ok {
		return 0
	}
	return dot(idx.vectors[ia], idx.vectors[ib])
}

func (idx *Index) resolve(term string) (int, bool) {
	name, ok := idx.lex.Canonical(term)
	if !ok {
		return 0, false
	}
	i, ok := idx.byName[name]
	return i, ok
}

// vectorize maps terms into the index's feature space with raw term
// frequency times idf. Terms outside the vocabulary are dropped.
func (idx *Index) vectorize(terms []string) map[int]float64 {
	vec := make(map[int]float64)
	for _, term := range terms {
		if dim, ok := idx.vocab[term]; ok {
			vec[dim] += idx.idf[dim]
		}
	}
	return vec
}

// docTerms produces the unigram and bigram terms of a description.
func docTerms(text string) []string {
	tokens := textproc.ContentTokens(text)
	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// buildVocabulary keeps the most frequent terms, breaking frequency
// ties alphabetically, and assigns each a stable dimension.
func buildVocabulary(totals map[string]int) map[string]int {
	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totals[terms[i]] != totals[terms[j]] {
			return totals[terms[i]] > totals[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxVocabulary {
		terms = terms[:maxVocabulary]
	}
	sort.Strings(terms)
	vocab := make(map[string]int, len(terms))
	for dim, term := range terms {
		vocab[term] = dim
	}
	return vocab
}

func normalize(vec map[int]float64) map[int]float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	for dim, v := range vec {
		vec[dim] = v / norm
	}
	return vec
}

func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	// Sum in sorted dimension order: map iteration order is randomized,
	// and floating-point addition is not associative, so an unordered
	// sum would make equal inputs produce results differing by an ulp.
	dims := make([]int, 0, len(a))
	for dim := range a {
		dims = append(dims, dim)
	}
	sort.Ints(dims)
	var sum float64
	for _, dim := range dims {
		sum += a[dim] * b[dim]
	}
	return sum
}
