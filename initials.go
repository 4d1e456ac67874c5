package avatar

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fallbackInitial is returned when the cleaned name contains no words.
const fallbackInitial = "VK"

// Initial derives a one- or two-letter uppercase initial from a name.
// Punctuation, symbols, digits and control characters are stripped before
// the name is split into words. A single word yields its first letter; two
// or more words yield the first letters of the first and last word. Names
// that clean down to nothing yield the fixed fallback "VK".
func Initial(name string) string {
	words := strings.Fields(strings.Map(stripRune, name))

	switch len(words) {
	case 0:
		return fallbackInitial
	case 1:
		return upper(firstGrapheme(words[0]))
	default:
		return upper(firstGrapheme(words[0])) + upper(firstGrapheme(words[len(words)-1]))
	}
}

// stripRune drops punctuation (P), symbols (S), control/other (C) and
// numbers (N); everything else passes through untouched.
func stripRune(r rune) rune {
	if unicode.In(r, unicode.P, unicode.S, unicode.C, unicode.N) {
		return -1
	}
	return r
}

// firstGrapheme returns the first user-perceived character of a word as a
// single unit, so accented and multi-codepoint letters are never split.
func firstGrapheme(word string) string {
	g, _, _, _ := uniseg.FirstGraphemeClusterInString(word, -1)
	return g
}

// upper uppercases a grapheme with full Unicode case mapping. A fresh Caser
// is created per call because cases.Caser is not safe for concurrent use.
func upper(g string) string {
	return cases.Upper(language.Und).String(g)
}
