package telnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestColorize(t *testing.T) {
	assert.Equal(t, "\033[31mdanger\033[0m", Colorize(Red, "danger"))
}

func TestColorize_EmptyColor(t *testing.T) {
	assert.Equal(t, "plain", Colorize("", "plain"))
}

// Property: a colored string starts with the color and ends with Reset.
func TestPropertyColorizeWrapsText(t *testing.T) {
	colors := []string{Red, Green, Blue, Yellow, Cyan, Magenta, White, Bold, Dim, BrightBlack, BrightGreen}
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 .,!?]{0,50}`).Draw(t, "text")
		color := rapid.SampledFrom(colors).Draw(t, "color")
		assert.Equal(t, color+text+Reset, Colorize(color, text))
	})
}
