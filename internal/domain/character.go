package domain

import "strings"

// CharacterSet is an ordered set of canonical character names: order follows
// first appearance in the input, duplicates are collapsed.
type CharacterSet []string

// ParseCharacters turns a comma-separated free-text declaration into the
// canonical set of character names. Pieces are trimmed, single-character
// pieces are dropped, words are capitalized, and nicknames are resolved to
// canonical names. An empty input yields an empty set.
func ParseCharacters(raw string) CharacterSet {
	set := CharacterSet{}
	seen := make(map[string]struct{})
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if len(piece) <= 1 {
			continue
		}
		name := canonicalName(capitalizeWords(piece))
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		set = append(set, name)
	}
	return set
}

// capitalizeWords uppercases the first letter of every space-delimited word
// and lowercases the rest. ASCII only; the space character is the sole word
// boundary. Alias rules match against this exact capitalization.
func capitalizeWords(s string) string {
	b := []byte(s)
	prev := byte(' ')
	for i, c := range b {
		if prev == ' ' {
			if 'a' <= c && c <= 'z' {
				c -= 'a' - 'A'
			}
		} else if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
		prev = c
	}
	return string(b)
}
