package engine

// Style tags a piece of output with its meaning so that frontends can
// colour it.
type Style int

// Output styles.
const (
	StyleDescription Style = iota
	StyleEvent
	StyleItems
	StyleInventory
	StyleResponse
	StyleError
	StyleHelp
	StylePrompt
)

var styleNames = [...]string{
	StyleDescription: "description",
	StyleEvent:       "event",
	StyleItems:       "items",
	StyleInventory:   "inventory",
	StyleResponse:    "response",
	StyleError:       "error",
	StyleHelp:        "help",
	StylePrompt:      "prompt",
}

// String returns the lower-case name of the style.
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "unknown"
	}
	return styleNames[s]
}

// InputOutput is the boundary between the game loop and the player.
type InputOutput interface {
	// Write emits text in the given style, followed by a line break when newLine is set.
	Write(style Style, text string, newLine bool) error
	// Input blocks until the player enters a line and returns it without the line break.
	Input() (string, error)
	// Clear wipes the display.
	Clear() error
}

// Recorder observes dispatched commands.
type Recorder interface {
	// CommandHandled is called once per non-blank line with the handler that ran,
	// or HandlerUnknown.
	CommandHandled(handler string)
}

// HandlerUnknown is reported to the Recorder for lines that match no command.
const HandlerUnknown = "unknown"
