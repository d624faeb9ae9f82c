package textproc

import (
	"strings"
	"unicode"
)

// isTokenRune reports whether r belongs inside a skill token. Plus, hash
// and dot stay in so "c++", "c#" and "node.js" tokenize as single terms.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.'
}

// Tokenize splits text into lowercase tokens, keeping the punctuation
// that is part of technology names. Trailing dots are dropped so a
// sentence-final "Docker." tokenizes as "docker" while "node.js" keeps
// its interior dot.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if isTokenRune(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// Fold lowercases text and rewrites it as its tokens joined by single
// spaces. Hyphens fold to spaces so "full-stack" and "full stack" fold
// identically, and trailing dots are dropped the same way Tokenize drops
// them. The result is suitable for whole-word containment checks via
// ContainsTerm.
func Fold(text string) string {
	return strings.Join(Tokenize(text), " ")
}

// ContainsTerm reports whether the folded term occurs in folded text on
// whole-word boundaries: "go" is found in "go developer" but never
// inside "google". Both arguments must already be folded.
func ContainsTerm(foldedText, foldedTerm string) bool {
	if foldedTerm == "" || foldedText == "" {
		return false
	}
	hay := " " + foldedText + " "
	needle := " " + foldedTerm + " "
	return strings.Contains(hay, needle)
}

// IsNumeric reports whether the token is digits only.
func IsNumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
