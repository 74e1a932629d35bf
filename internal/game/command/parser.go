package command

import (
	"strings"

	"github.com/cory-johannsen/adventure/internal/game/lexical"
)

// ParseResult holds the parsed command name and arguments from a text line.
type ParseResult struct {
	// Raw is the input line with surrounding whitespace removed.
	Raw string
	// Command is the first word of the input, lowercased.
	Command string
	// Args are the remaining words after the command, lowercased.
	Args []string
}

// Object returns the arguments joined by single spaces, naming a
// direction or an item such as "magic wand".
func (p ParseResult) Object() string {
	return strings.Join(p.Args, " ")
}

// Parse splits a text line into a command and arguments. Only ASCII letters
// are lowercased so that parsing does not depend on locale.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty.
func Parse(line string) ParseResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return ParseResult{}
	}

	lowered := lexical.Lower(line)
	fields := strings.Fields(lowered)
	result := ParseResult{
		Raw:     line,
		Command: fields[0],
	}
	if len(fields) == 1 {
		return result
	}

	result.Args = fields[1:]
	return result
}
