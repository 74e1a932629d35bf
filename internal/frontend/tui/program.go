package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cory-johannsen/adventure/internal/game/engine"
)

const inputQueue = 16

// PlayFunc runs a game against the given IO until it ends.
type PlayFunc func(ctx context.Context, io engine.InputOutput) error

// programIO implements engine.InputOutput by messaging a running program.
type programIO struct {
	prog  *tea.Program
	lines <-chan string
	done  <-chan struct{}
}

func (p *programIO) Write(style engine.Style, text string, newLine bool) error {
	select {
	case <-p.done:
		return io.ErrClosedPipe
	default:
	}
	p.prog.Send(outputMsg{style: style, text: text, newLine: newLine})
	return nil
}

// Input returns io.EOF once the program has exited.
func (p *programIO) Input() (string, error) {
	select {
	case line := <-p.lines:
		return line, nil
	case <-p.done:
		return "", io.EOF
	}
}

func (p *programIO) Clear() error {
	p.prog.Send(clearMsg{})
	return nil
}

// Run shows the interface and plays the game through it. The program
// exits when the game ends or the player presses Ctrl+C or Esc.
//
// Postcondition: Returns the game's error; leaving the interface early
// is not an error.
func Run(ctx context.Context, title string, play PlayFunc, opts ...tea.ProgramOption) error {
	lines := make(chan string, inputQueue)
	done := make(chan struct{})

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	prog := tea.NewProgram(NewModel(title, lines), opts...)

	result := make(chan error, 1)
	go func() {
		err := play(ctx, &programIO{prog: prog, lines: lines, done: done})
		prog.Send(finishedMsg{err: err})
		result <- err
	}()

	_, runErr := prog.Run()
	close(done)
	playErr := <-result

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("running interface: %w", runErr)
	}
	if errors.Is(playErr, io.EOF) || errors.Is(playErr, io.ErrClosedPipe) {
		return nil
	}
	return playErr
}
