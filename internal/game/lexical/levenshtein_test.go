package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLevenshtein_KnownDistances(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"axe", "axe", 0},
		{"axe", "ax", 1},
		{"wand", "want", 1},
		{"flaw", "lawn", 2},
	}
	for _, tc := range cases {
		got, err := Levenshtein(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s -> %s", tc.a, tc.b)
	}
}

func TestLevenshtein_BlankInputIsInvalid(t *testing.T) {
	_, err := Levenshtein("   ", "\t")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Levenshtein("", "axe")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Levenshtein("axe", " ")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPropertyLevenshteinSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.StringMatching(`[a-z]{1,12}`).Draw(t, "a")
		b := rapid.StringMatching(`[a-z]{1,12}`).Draw(t, "b")
		ab, err := Levenshtein(a, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ba, err := Levenshtein(b, a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ab != ba {
			t.Fatalf("distance(%q,%q)=%d but distance(%q,%q)=%d", a, b, ab, b, a, ba)
		}
		if (ab == 0) != (a == b) {
			t.Fatalf("distance(%q,%q)=%d violates identity", a, b, ab)
		}
	})
}
