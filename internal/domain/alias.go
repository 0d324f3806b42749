package domain

import "strings"

// exactAliases maps shorthand tokens, post-capitalization, to canonical
// character names. Checked only after the substring rules below.
var exactAliases = map[string]string{
	"G&w":   "Game & Watch",
	"G & W": "Game & Watch",
	"Dk":    "Donkey Kong",
}

// canonicalName resolves nicknames and partial spellings of a capitalized
// token to the character's canonical name. Rules run in priority order,
// first match wins; an unmatched token passes through unchanged, so the
// function is total.
func canonicalName(token string) string {
	if strings.Contains(token, "Game") || strings.Contains(token, "Watch") {
		return "Game & Watch"
	}
	// TODO: Banjo-Kazooie is its own character; remapping it means migrating
	// members already holding the "Game & Watch" roles this rule produced.
	if strings.Contains(token, "Banjo") || strings.Contains(token, "Kazooie") {
		return "Game & Watch"
	}
	if strings.Contains(token, "Rosalina") {
		return "Rosalina & Luma"
	}
	if (strings.Contains(token, "Pyra") && strings.Contains(token, "Mythra")) || strings.Contains(token, "Aegis") {
		return "Aegis"
	}
	if canonical, ok := exactAliases[token]; ok {
		return canonical
	}
	return token
}
