package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"game substring", "Game And Watch", "Game & Watch"},
		{"watch substring", "Mr Watch", "Game & Watch"},
		{"banjo maps to game and watch", "Banjo", "Game & Watch"},
		{"kazooie maps to game and watch", "Kazooie", "Game & Watch"},
		{"rosalina substring", "Rosalina And Luma", "Rosalina & Luma"},
		{"pyra and mythra together", "Pyra Mythra", "Aegis"},
		{"pyra alone passes through", "Pyra", "Pyra"},
		{"mythra alone passes through", "Mythra", "Mythra"},
		{"aegis substring", "The Aegis", "Aegis"},
		{"dk abbreviation", "Dk", "Donkey Kong"},
		{"g&w as capitalized from input", "G&w", "Game & Watch"},
		{"g & w spaced form", "G & W", "Game & Watch"},
		{"no rule matches", "Mario", "Mario"},
		{"empty token passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalName(tt.token))
		})
	}
}

// The substring rules outrank the exact alias table, and checks are case
// sensitive against the parser's capitalization. "G&w" carries neither
// "Game" nor "Watch", so it must fall through to the exact table.
func TestCanonicalName_RulePriority(t *testing.T) {
	// "Banjo Game" hits the Game rule before the Banjo rule; both target the
	// same name, so priority is only observable through the Rosalina case.
	assert.Equal(t, "Game & Watch", canonicalName("Watch Rosalina"))
	assert.Equal(t, "Game & Watch", canonicalName("Banjo Rosalina"))
	assert.Equal(t, "Game & Watch", canonicalName("G&w"))
	// Lowercase substrings do not match.
	assert.Equal(t, "gamer", canonicalName("gamer"))
}
