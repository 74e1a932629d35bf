package engine

import (
	"io"
	"strings"
)

type written struct {
	Style   Style
	Text    string
	NewLine bool
}

// scriptedIO replays inputs in order and returns io.EOF once they run out.
type scriptedIO struct {
	inputs   []string
	writes   []written
	clears   int
	writeErr error
}

func newScriptedIO(inputs ...string) *scriptedIO {
	return &scriptedIO{inputs: inputs}
}

func (s *scriptedIO) Write(style Style, text string, newLine bool) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes = append(s.writes, written{Style: style, Text: text, NewLine: newLine})
	return nil
}

func (s *scriptedIO) Input() (string, error) {
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	line := s.inputs[0]
	s.inputs = s.inputs[1:]
	return line, nil
}

func (s *scriptedIO) Clear() error {
	s.clears++
	return nil
}

func (s *scriptedIO) count(style Style, text string) int {
	n := 0
	for _, w := range s.writes {
		if w.Style == style && w.Text == text {
			n++
		}
	}
	return n
}

func (s *scriptedIO) transcript() string {
	var b strings.Builder
	for _, w := range s.writes {
		b.WriteString(w.Text)
		if w.NewLine {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (s *scriptedIO) reset() {
	s.writes = nil
}

type countingRecorder struct {
	handled []string
}

func (c *countingRecorder) CommandHandled(handler string) {
	c.handled = append(c.handled, handler)
}
