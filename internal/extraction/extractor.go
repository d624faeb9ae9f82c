// Package extraction turns free-form resume and job-description text
// into canonical skill sets, and detects experience levels, document
// sections and key phrases.
package extraction

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
)

// phraseStageCap bounds how much text the contextual-phrase and
// heuristic stages scan per call, for latency. Lexicon direct matching
// always sees the whole document.
const phraseStageCap = 1000

// Extractor applies an ordered list of extraction strategies to text
// and unions their results. It holds only the read-only lexicon, so one
// Extractor serves any number of concurrent callers.
type Extractor struct {
	lex *lexicon.Lexicon
}

// New returns an Extractor backed by the given lexicon.
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract returns the canonical skill set found in rawText. Empty text
// yields an empty set, never an error. Each strategy is best-effort: a
// strategy that finds nothing (or fails) contributes the empty set
// rather than aborting the pipeline.
func (e *Extractor) Extract(rawText string) types.SkillSet {
	norm := textproc.Normalize(rawText)
	if norm == "" {
		return types.NewSkillSet()
	}

	folded := textproc.Fold(norm)
	capped := capRunes(rawText, phraseStageCap)

	passes := []func() []string{
		func() []string { return e.lex.MatchAll(folded) },
		func() []string { return patternMatches(norm) },
		func() []string { return e.contextMatches(capped) },
		func() []string { return e.heuristicMatches(capped) },
	}

	var candidates []string
	for _, pass := range passes {
		candidates = append(candidates, runStrategy(pass)...)
	}
	return e.cleanup(candidates)
}

// runStrategy runs one extraction pass, converting a panic into an
// empty contribution so a misbehaving heuristic degrades gracefully
// instead of failing the whole extraction.
func runStrategy(pass func() []string) (found []string) {
	defer func() {
		if r := recover(); r != nil {
			found = nil
		}
	}()
	return pass()
}

// cleanup canonicalizes and filters raw candidates. Lexicon membership
// overrides the stop-word filter: a token that resolves in the lexicon
// is always kept under its canonical name. Everything else must be at
// least two characters, not purely numeric, and neither an English stop
// word nor generic resume/JD vocabulary.
func (e *Extractor) cleanup(candidates []string) types.SkillSet {
	kept := make([]string, 0, len(candidates))
	for _, raw := range candidates {
		if name, ok := e.lex.Canonical(raw); ok {
			kept = append(kept, name)
			continue
		}
		token := strings.ToLower(strings.Trim(raw, "-."))
		if len(token) < 2 || textproc.IsNumeric(token) || textproc.IsStopWord(token) || documentStopWords[token] {
			continue
		}
		kept = append(kept, token)
	}
	return types.NewSkillSet(kept...)
}

// capRunes truncates s to at most n runes.
func capRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
