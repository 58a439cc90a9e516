package grammar

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^a-z0-9\s]+`)

// tokenize lowercases s, strips non-word characters, and splits on
// whitespace (§6: "Input is lowercased and non-word characters are
// stripped before parsing").
func tokenize(s string) []string {
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, " ")
	fields := strings.Fields(s)
	return stripPoliteWords(fields)
}

var politeWords = map[string]bool{
	"please": true, "will": true, "can": true, "could": true, "you": true,
}

// stripPoliteWords drops optional polite wrappers (please, will/can/could
// you) wherever they occur — they carry no semantic content.
func stripPoliteWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if politeWords[tok] {
			continue
		}
		out = append(out, tok)
	}
	return out
}
