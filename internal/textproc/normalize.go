// Package textproc provides the text normalization and tokenization
// primitives shared by the extraction and similarity layers.
package textproc

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`(?i)\bhttps?://\S+|\bwww\.\S+`)
	emailPattern      = regexp.MustCompile(`\S+@\S+`)
	disallowedPattern = regexp.MustCompile(`[^\w\s\-+#.,;:@]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize strips noise from raw text: URLs, email addresses, and any
// character outside the allow-list (word characters, hyphen, plus, hash,
// period, comma, semicolon, colon, at-sign). Runs of whitespace collapse
// to single spaces and the result is trimmed. Characters significant to
// skill tokens (".", "+", "#", "-") always survive, so "Node.js", "C++"
// and "C#" pass through intact. Never fails: all-noise input yields "".
func Normalize(text string) string {
	text = urlPattern.ReplaceAllString(text, " ")
	text = emailPattern.ReplaceAllString(text, " ")
	text = disallowedPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
