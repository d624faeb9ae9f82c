package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/textproc"
)

// KeyPhrase is a recurring content phrase and its frequency-based
// score.
type KeyPhrase struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

var chunkDelimiter = regexp.MustCompile(`[,;:!?()\n]+`)

const maxPhraseWords = 4

// ExtractKeyPhrases returns up to topN phrases ranked by frequency,
// with a mild boost for longer phrases. Candidates are maximal runs of
// content tokens between punctuation, capped at four words. Ties break
// alphabetically so output is stable. A non-positive topN yields nil.
func ExtractKeyPhrases(text string, topN int) []KeyPhrase {
	if topN <= 0 || text == "" {
		return nil
	}

	counts := make(map[string]int)
	for _, chunk := range chunkDelimiter.Split(text, -1) {
		var run []string
		flush := func() {
			if len(run) == 0 {
				return
			}
			if len(run) > maxPhraseWords {
				run = run[:maxPhraseWords]
			}
			counts[strings.Join(run, " ")]++
			run = nil
		}
		for _, tok := range textproc.Tokenize(chunk) {
			if len(tok) < 2 || textproc.IsStopWord(tok) || textproc.IsNumeric(tok) {
				flush()
				continue
			}
			run = append(run, tok)
		}
		flush()
	}

	phrases := make([]KeyPhrase, 0, len(counts))
	for phrase, count := range counts {
		words := strings.Count(phrase, " ") + 1
		score := float64(count) * (1.0 + 0.1*float64(words-1))
		phrases = append(phrases, KeyPhrase{Phrase: phrase, Score: score})
	}
	sort.Slice(phrases, func(i, j int) bool {
		if phrases[i].Score != phrases[j].Score {
			return phrases[i].Score > phrases[j].Score
		}
		return phrases[i].Phrase < phrases[j].Phrase
	})
	if len(phrases) > topN {
		phrases = phrases[:topN]
	}
	return phrases
}
