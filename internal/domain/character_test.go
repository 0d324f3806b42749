package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCharacters(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want CharacterSet
	}{
		{
			name: "empty input yields empty set",
			raw:  "",
			want: CharacterSet{},
		},
		{
			name: "single name is capitalized",
			raw:  "MARIO",
			want: CharacterSet{"Mario"},
		},
		{
			name: "each space delimited word is capitalized",
			raw:  "mario luigi",
			want: CharacterSet{"Mario Luigi"},
		},
		{
			name: "pieces are trimmed",
			raw:  "  mario ,   luigi  ",
			want: CharacterSet{"Mario", "Luigi"},
		},
		{
			name: "single character pieces are dropped",
			raw:  "m, luigi, ,x",
			want: CharacterSet{"Luigi"},
		},
		{
			name: "duplicates collapse keeping first seen order",
			raw:  "Mario, Luigi, mario",
			want: CharacterSet{"Mario", "Luigi"},
		},
		{
			name: "aliases collapsing to the same name dedupe too",
			raw:  "rosalina, Rosalina And Luma",
			want: CharacterSet{"Rosalina & Luma"},
		},
		{
			name: "aliases apply after capitalization",
			raw:  "rosalina,  Pyra Mythra, dk",
			want: CharacterSet{"Rosalina & Luma", "Aegis", "Donkey Kong"},
		},
		{
			name: "trailing comma is harmless",
			raw:  "mario,",
			want: CharacterSet{"Mario"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCharacters(tt.raw))
		})
	}
}

func TestCapitalizeWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mario", "Mario"},
		{"MARIO", "Mario"},
		{"mArIo lUiGi", "Mario Luigi"},
		{"g&w", "G&w"},
		{"g & w", "G & W"},
		{"donkey  kong", "Donkey  Kong"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, capitalizeWords(tt.in), "input %q", tt.in)
	}
}
