// Package semantic scores whole-document similarity between a resume
// and a job description.
package semantic

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/textproc"
)

// Similarity returns the cosine similarity of the two texts' content
// term frequencies, in [0, 1]. Stop words and short tokens are ignored
// so boilerplate does not inflate the score. Either text having no
// content terms yields 0. The measure is symmetric.
func Similarity(a, b string) float64 {
	va := termFrequencies(a)
	vb := termFrequencies(b)
	if len(va) == 0 || len(vb) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for term, fa := range va {
		normA += fa * fa
		if fb, ok := vb[term]; ok {
			dot += fa * fb
		}
	}
	for _, fb := range vb {
		normB += fb * fb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func termFrequencies(text string) map[string]float64 {
	freq := make(map[string]float64)
	for _, tok := range textproc.ContentTokens(text) {
		freq[tok]++
	}
	return freq
}
