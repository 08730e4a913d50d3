package themes

import (
	"strings"
	"unicode"
)

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isWordRune keeps Unicode letters, combining marks, numbers and underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r) || r == '_'
}

// stripPunctuation drops every rune that is neither a word rune nor
// whitespace. Whitespace survives so token boundaries are preserved.
func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

// Tokenize lowercases text, strips punctuation and splits on whitespace runs.
// "Don't" becomes "dont"; "well-being" becomes "wellbeing".
func Tokenize(text string) []string {
	return strings.Fields(stripPunctuation(strings.ToLower(text)))
}
