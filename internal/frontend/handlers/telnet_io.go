package handlers

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/cory-johannsen/adventure/internal/frontend/telnet"
	"github.com/cory-johannsen/adventure/internal/game/engine"
)

// Palette maps output styles to ANSI color sequences. Styles without an
// entry are written uncolored.
type Palette map[engine.Style]string

// DefaultPalette returns the colors used for Telnet sessions.
func DefaultPalette() Palette {
	return Palette{
		engine.StyleDescription: telnet.BrightYellow,
		engine.StyleEvent:       telnet.Magenta,
		engine.StyleItems:       telnet.Cyan,
		engine.StyleInventory:   telnet.Green,
		engine.StyleResponse:    telnet.White,
		engine.StyleError:       telnet.Red,
		engine.StyleHelp:        telnet.BrightCyan,
		engine.StylePrompt:      telnet.Bold,
	}
}

// TelnetIO adapts a Telnet connection to engine.InputOutput.
type TelnetIO struct {
	conn      *telnet.Conn
	palette   Palette
	wrapWidth int
}

// NewTelnetIO wraps conn. A wrapWidth of zero disables word wrapping; a
// nil palette disables color.
//
// Precondition: conn must be non-nil.
func NewTelnetIO(conn *telnet.Conn, palette Palette, wrapWidth int) *TelnetIO {
	return &TelnetIO{conn: conn, palette: palette, wrapWidth: wrapWidth}
}

// Write colors text for its style and sends it with NVT line endings.
// Trailing line breaks are kept outside the color sequence.
func (t *TelnetIO) Write(style engine.Style, text string, newLine bool) error {
	body := strings.TrimRight(text, "\n")
	tail := text[len(body):]
	if newLine {
		tail += "\n"
	}
	// Wrapping drops trailing spaces, which a prompt needs.
	if t.wrapWidth > 0 && style != engine.StylePrompt {
		body = wordwrap.String(body, t.wrapWidth)
	}
	if body != "" {
		body = telnet.Colorize(t.palette[style], body)
	}
	if style == engine.StylePrompt && tail == "" {
		return t.conn.WritePrompt(body)
	}
	return t.conn.WriteText(body + tail)
}

// Input reads the next line from the client.
func (t *TelnetIO) Input() (string, error) {
	return t.conn.ReadLine()
}

// Clear sends the ANSI clear-screen sequence.
func (t *TelnetIO) Clear() error {
	return t.conn.Write([]byte(telnet.ClearScreen))
}
