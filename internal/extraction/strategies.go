package extraction

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/textproc"
)

// multiWordPatterns map common multi-word technical phrases, in any of
// their spaced or hyphenated spellings, to one canonical name.
var multiWordPatterns = []struct {
	re        *regexp.Regexp
	canonical string
}{
	{regexp.MustCompile(`(?i)\bfull[-\s]?stack\b`), "full-stack"},
	{regexp.MustCompile(`(?i)\bdev[-\s]?ops\b`), "devops"},
	{regexp.MustCompile(`(?i)\bmachine[-\s]+learning\b`), "machine-learning"},
	{regexp.MustCompile(`(?i)\bdeep[-\s]+learning\b`), "deep-learning"},
	{regexp.MustCompile(`(?i)\bnatural[-\s]+language[-\s]+processing\b`), "natural-language-processing"},
	{regexp.MustCompile(`(?i)\bcomputer[-\s]+vision\b`), "computer-vision"},
	{regexp.MustCompile(`(?i)\bdata[-\s]+science\b`), "data-science"},
	{regexp.MustCompile(`(?i)\bdata[-\s]+analysis\b`), "data-analysis"},
	{regexp.MustCompile(`(?i)\bdata[-\s]+engineering\b`), "data-engineering"},
	{regexp.MustCompile(`(?i)\bweb[-\s]+development\b`), "web-development"},
	{regexp.MustCompile(`(?i)\bci[-\s/]?cd\b`), "ci-cd"},
	{regexp.MustCompile(`(?i)\bversion[-\s]+control\b`), "version-control"},
	{regexp.MustCompile(`(?i)\bunit[-\s]+test(?:s|ing)?\b`), "unit-testing"},
	{regexp.MustCompile(`(?i)\breact[-\s]+native\b`), "react-native"},
	{regexp.MustCompile(`(?i)\bnode[.\s-]?js\b`), "node.js"},
	{regexp.MustCompile(`(?i)\bobjective[-\s]+c\b`), "objective-c"},
}

// patternMatches scans the full normalized text for known multi-word
// phrases and emits their canonical hyphenated names.
func patternMatches(norm string) []string {
	var found []string
	for _, p := range multiWordPatterns {
		if p.re.MatchString(norm) {
			found = append(found, p.canonical)
		}
	}
	return found
}

// contextTrigger captures the object of phrases that introduce skills,
// such as "experience with X, Y and Z" or "proficient in X".
var contextTrigger = regexp.MustCompile(`(?i)\b(?:experience (?:with|in|using)|knowledge of|proficien(?:t|cy) (?:with|in)|expertise in|skilled in|familiar(?:ity)? with|worked with|hands-on with|background in)\s+([^.;:\n]+)`)

// listTrigger captures explicit skill lists such as "Skills: X, Y, Z".
var listTrigger = regexp.MustCompile(`(?im)^\s*(?:technical skills|skills|technologies|tech stack|stack|tools)\s*:\s*([^.;\n]+)`)

var listSplitter = regexp.MustCompile(`(?i)\s*(?:,|/|\band\b|\bor\b|&)\s*`)

// contextMatches extracts skills named after trigger phrases. The
// captured tail is split on list separators, and only parts the lexicon
// recognizes are kept; this stage trades recall for precision, so an
// unknown phrase object is dropped rather than guessed at.
func (e *Extractor) contextMatches(text string) []string {
	var found []string
	collect := func(groups [][]string) {
		for _, m := range groups {
			for _, part := range listSplitter.Split(m[1], -1) {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				if name, ok := e.lex.Canonical(part); ok {
					found = append(found, name)
				}
			}
		}
	}
	collect(contextTrigger.FindAllStringSubmatch(text, -1))
	collect(listTrigger.FindAllStringSubmatch(text, -1))
	return found
}

var bulletLine = regexp.MustCompile(`(?m)^\s*[•·*-]\s*(.+)$`)

// indicatorWords mark a chunk as likely naming a technology; the token
// immediately preceding the indicator is taken as the candidate, as in
// "the Django framework" or "GraphQL API".
var indicatorWords = map[string]bool{
	"framework": true, "frameworks": true,
	"library": true, "libraries": true,
	"platform": true, "platforms": true,
	"language": true, "languages": true,
	"database": true, "databases": true,
	"server": true, "servers": true,
	"cloud": true, "api": true, "apis": true, "sdk": true,
}

// heuristicMatches is the supplementary, recall-oriented stage: it
// collects capitalized or dotted tokens, the leading words of bulleted
// lines, and tokens adjacent to indicator words. Its output goes
// through cleanup like everything else, so noise is filtered there.
func (e *Extractor) heuristicMatches(text string) []string {
	var found []string

	for _, word := range strings.Fields(text) {
		if candidateWord(word) {
			found = append(found, strings.ToLower(strings.Trim(word, ".,;:()")))
		}
	}

	for _, m := range bulletLine.FindAllStringSubmatch(text, -1) {
		words := strings.Fields(m[1])
		if len(words) > 5 {
			words = words[:5]
		}
		for _, word := range words {
			if candidateWord(word) {
				found = append(found, strings.ToLower(strings.Trim(word, ".,;:()")))
			}
		}
	}

	tokens := textproc.Tokenize(text)
	for i, tok := range tokens {
		if indicatorWords[tok] && i > 0 && !textproc.IsStopWord(tokens[i-1]) {
			found = append(found, tokens[i-1])
		}
	}

	return found
}

// candidateWord reports whether a raw whitespace-delimited word looks
// like a technology name: it starts with an uppercase letter or
// contains an interior dot, and carries at least one letter.
func candidateWord(word string) bool {
	trimmed := strings.Trim(word, ".,;:()")
	if trimmed == "" {
		return false
	}
	hasLetter := false
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return false
	}
	for _, r := range trimmed {
		if unicode.IsUpper(r) {
			return true
		}
		break
	}
	return strings.Contains(trimmed, ".")
}
