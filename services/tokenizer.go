package services

import (
	"regexp"
	"strings"
)

// tokenSplitPattern matches runs of whitespace and the punctuation users
// habitually type into the search box (commas, quotes, brackets, slashes).
// Hyphens are kept so reference numbers like "REF-104233" survive intact.
var tokenSplitPattern = regexp.MustCompile(`[\s,;:.!?/\\()\[\]{}"'` + "`" + `]+`)

// NormalizeQuery turns raw query text into the lowercased token sequence
// every matcher works with. Empty input yields an empty slice. The
// operation is idempotent: normalizing the joined output reproduces the
// same tokens.
func NormalizeQuery(text string) []string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	var tokens []string
	for _, p := range tokenSplitPattern.Split(text, -1) {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// TokensToString joins normalized tokens back into a canonical query string
func TokensToString(tokens []string) string {
	return strings.Join(tokens, " ")
}
