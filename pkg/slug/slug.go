// Package slug derives URL- and storage-safe identifiers from user-entered
// display names. Custom catalog items get their ids from here, so the rules
// are deliberately small and stable: lowercase, strip accents, collapse
// everything else into hyphens.
package slug

import (
	"strconv"
	"strings"
	"unicode"
)

// Fallback is used when a name reduces to nothing (empty input, all symbols).
const Fallback = "item"

var transliterations = map[rune]string{
	'á': "a", 'à': "a", 'ä': "a", 'â': "a", 'ã': "a", 'å': "a",
	'é': "e", 'è': "e", 'ë': "e", 'ê': "e",
	'í': "i", 'ì': "i", 'ï': "i", 'î': "i",
	'ó': "o", 'ò': "o", 'ö': "o", 'ô': "o", 'õ': "o",
	'ú': "u", 'ù': "u", 'ü': "u", 'û': "u",
	'ñ': "n", 'ç': "c",
	'æ': "ae", 'œ': "oe", 'ß': "ss",
}

// Make lowercases the name, transliterates accented characters, replaces
// every non-alphanumeric run with a single hyphen and trims leading and
// trailing hyphens. An empty result falls back to Fallback.
func Make(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(name) {
		if repl, ok := transliterations[r]; ok {
			b.WriteString(repl)
			lastHyphen = false
			continue
		}
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) && r < 128 {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	s := strings.Trim(b.String(), "-")
	if s == "" {
		return Fallback
	}
	return s
}

// MakeUnique derives a slug from name and, when taken reports a collision,
// appends an increasing numeric suffix until the result is free.
func MakeUnique(name string, taken func(string) bool) string {
	base := Make(name)
	if !taken(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if !taken(candidate) {
			return candidate
		}
	}
}
