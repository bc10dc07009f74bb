package nlp

import "strings"

// keywordRule is one entry of an ordered first-match-wins keyword check. The
// precedence of these checks is part of the contract, so each rule set is an
// explicit slice rather than a chain of ifs.
type keywordRule struct {
	keywords []string
	category EmotionCategory
	glyph    string
}

// containsAny reports whether the lowercased text contains any of the given
// keywords as a substring. Substring semantics are deliberate and inherited:
// "harm" matches inside "harmless". Known false-positive source, kept as-is.
func containsAny(textLower string, keywords []string) bool {
	for _, w := range keywords {
		if strings.Contains(textLower, w) {
			return true
		}
	}
	return false
}
