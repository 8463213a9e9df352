// Package titles turns free-text model output into a clean list of titles.
package titles

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// quotePairs lists the opening/closing quote characters stripped from the
// ends of a title. Only a matching pair is removed, and only once.
var quotePairs = map[rune]rune{
	'"':      '"',
	'\'':     '\'',
	'\u201c': '\u201d',
	'\u2018': '\u2019',
}

// Normalize splits a comma-separated blob into titles: trimmed, unquoted,
// deduplicated case-insensitively in first-occurrence order, and title-cased
// by uppercasing the first letter of each word. The rest of each word is left
// as the model wrote it.
//
// It never fails. Blank input yields an empty, non-nil slice.
func Normalize(blob string) []string {
	result := make([]string, 0)
	if strings.TrimSpace(blob) == "" {
		return result
	}

	seen := make(map[string]struct{})
	for _, token := range strings.Split(blob, ",") {
		title := cleanToken(token)
		if title == "" {
			continue
		}

		// Key on the cased form: some letters only collide once upper-cased.
		cased := titleCase(title)
		key := strings.ToLower(cased)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		result = append(result, cased)
	}
	return result
}

// Join renders a title list back into the comma-separated form Normalize reads.
func Join(titles []string) string {
	return strings.Join(titles, ", ")
}

// cleanToken trims whitespace and removes one surrounding quote pair.
// Spacing inside the title is kept as written.
func cleanToken(token string) string {
	token = strings.TrimSpace(token)
	token = stripQuotes(token)
	return strings.TrimSpace(token)
}

func stripQuotes(s string) string {
	open, openSize := utf8.DecodeRuneInString(s)
	closing, ok := quotePairs[open]
	if !ok {
		return s
	}
	if len(s) == openSize {
		return ""
	}
	last, lastSize := utf8.DecodeLastRuneInString(s)
	if last != closing {
		return s
	}
	return s[openSize : len(s)-lastSize]
}

// titleCase uppercases the first rune of every space-separated word.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
