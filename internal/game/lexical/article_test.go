package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithArticle(t *testing.T) {
	cases := map[string]string{
		"Axe":  "an Axe",
		"Boat": "a Boat",
		"Cat":  "a Cat",
		"Egg":  "an Egg",
		"cat":  "a cat",
		"orb":  "an orb",
	}
	for noun, want := range cases {
		assert.Equal(t, want, WithArticle(noun))
	}
}

func TestWithArticle_Blank(t *testing.T) {
	assert.Equal(t, "", WithArticle(""))
	assert.Equal(t, "  ", WithArticle("  "))
}

func TestEqualFold_ASCIIOnly(t *testing.T) {
	assert.True(t, EqualFold("Magic Wand", "magic wand"))
	assert.False(t, EqualFold("axe", "axes"))
	assert.False(t, EqualFold("Éclair", "éclair"))
}
