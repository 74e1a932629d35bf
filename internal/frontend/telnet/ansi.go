// Package telnet serves adventure sessions over raw Telnet connections.
// Output is styled with ANSI escape sequences; input is filtered of IAC
// negotiation before it reaches the game.
package telnet

// ANSI escape sequences used when styling game output.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"

	BrightBlack  = "\033[90m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"

	// ClearScreen homes the cursor and erases the display.
	ClearScreen = "\033[H\033[2J"
)

// Colorize wraps text with the given ANSI color code and a reset suffix.
// An empty color returns text unchanged.
//
// Postcondition: Returns text wrapped with the color code and Reset.
func Colorize(color, text string) string {
	if color == "" {
		return text
	}
	return color + text + Reset
}
