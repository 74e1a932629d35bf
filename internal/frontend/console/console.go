// Package console plays the adventure on a local terminal: lipgloss
// styled output, word wrapping and a typewriter effect on stdout, with
// line input from stdin.
package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/cory-johannsen/adventure/internal/game/engine"
)

// ClearScreen homes the cursor and erases the display.
const ClearScreen = "\033[H\033[2J"

// Option configures an IO.
type Option func(*IO)

// WithDelay sets the pause between printed characters. Zero prints whole strings.
func WithDelay(d time.Duration) Option {
	return func(c *IO) {
		c.delay = d
	}
}

// WithWrapWidth wraps output at the given column. Zero disables wrapping.
func WithWrapWidth(n int) Option {
	return func(c *IO) {
		c.wrapWidth = n
	}
}

// WithSleep replaces time.Sleep for the typewriter effect.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *IO) {
		c.sleep = sleep
	}
}

// IO implements engine.InputOutput on a terminal.
type IO struct {
	in        *bufio.Reader
	out       io.Writer
	styles    map[engine.Style]lipgloss.Style
	delay     time.Duration
	wrapWidth int
	sleep     func(time.Duration)
}

// New creates a console IO reading lines from in and writing to out.
// Colors follow the capabilities lipgloss detects for out.
//
// Precondition: in and out must be non-nil.
func New(in io.Reader, out io.Writer, opts ...Option) *IO {
	c := &IO{
		in:     bufio.NewReader(in),
		out:    out,
		styles: Styles(lipgloss.NewRenderer(out)),
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Styles returns the console style for each output style, bound to r.
func Styles(r *lipgloss.Renderer) map[engine.Style]lipgloss.Style {
	return map[engine.Style]lipgloss.Style{
		engine.StyleDescription: r.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
		engine.StyleEvent:       r.NewStyle().Foreground(lipgloss.Color("212")),
		engine.StyleItems:       r.NewStyle().Foreground(lipgloss.Color("86")),
		engine.StyleInventory:   r.NewStyle().Foreground(lipgloss.Color("39")),
		engine.StyleResponse:    r.NewStyle().Foreground(lipgloss.Color("255")),
		engine.StyleError:       r.NewStyle().Foreground(lipgloss.Color("196")),
		engine.StyleHelp:        r.NewStyle().Foreground(lipgloss.Color("250")),
		engine.StylePrompt:      r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Write styles text and prints it, one character at a time when a delay
// is configured.
func (c *IO) Write(style engine.Style, text string, newLine bool) error {
	if newLine {
		text += "\n"
	}
	width := c.wrapWidth
	// Wrapping drops trailing spaces, which a prompt needs.
	if style == engine.StylePrompt {
		width = 0
	}
	return c.typewrite(Render(c.styles[style], text, width))
}

// Render wraps text at width (when positive) and applies style to each
// line separately, so line breaks stay outside escape sequences and
// lines are not padded to a common width.
func Render(style lipgloss.Style, text string, width int) string {
	if width > 0 {
		text = wordwrap.String(text, width)
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// typewrite prints s rune by rune with the configured delay. Escape
// sequences are written whole and without a pause.
func (c *IO) typewrite(s string) error {
	if c.delay <= 0 {
		_, err := io.WriteString(c.out, s)
		return err
	}
	for len(s) > 0 {
		n := escapeLen(s)
		if n == 0 {
			_, n = utf8.DecodeRuneInString(s)
		}
		if _, err := io.WriteString(c.out, s[:n]); err != nil {
			return err
		}
		if s[0] != '\033' {
			c.sleep(c.delay)
		}
		s = s[n:]
	}
	return nil
}

// escapeLen returns the length of the CSI sequence at the start of s, or 0.
func escapeLen(s string) int {
	if len(s) < 2 || s[0] != '\033' || s[1] != '[' {
		return 0
	}
	for i := 2; i < len(s); i++ {
		if s[i] >= 0x40 && s[i] <= 0x7e {
			return i + 1
		}
	}
	return 0
}

// Input reads one line, without its line ending. A final line without a
// line ending is returned before io.EOF.
func (c *IO) Input() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Clear erases the terminal.
func (c *IO) Clear() error {
	_, err := io.WriteString(c.out, ClearScreen)
	return err
}
