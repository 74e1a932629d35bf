// Package tui plays the adventure in a full-screen bubbletea interface:
// a scrolling transcript above a command line.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cory-johannsen/adventure/internal/frontend/console"
	"github.com/cory-johannsen/adventure/internal/game/engine"
)

const placeholder = "What do you do?"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	echoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	frameStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2)
)

// outputMsg carries one engine write into the program.
type outputMsg struct {
	style   engine.Style
	text    string
	newLine bool
}

// clearMsg empties the transcript.
type clearMsg struct{}

// finishedMsg reports that the game loop returned.
type finishedMsg struct{ err error }

// Model is the bubbletea model. Entered lines are queued, in order, on
// the channel passed to NewModel.
type Model struct {
	title      string
	transcript strings.Builder
	viewport   viewport.Model
	input      textinput.Model
	styles     map[engine.Style]lipgloss.Style
	lines      chan<- string
	ready      bool
	width      int
}

// NewModel creates the model.
//
// Precondition: lines must be non-nil and should be buffered.
func NewModel(title string, lines chan<- string) *Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = echoStyle.Render(engine.Prompt)
	ti.CharLimit = 200
	ti.Focus()

	return &Model{
		title:    title,
		viewport: viewport.New(80, 20),
		input:    ti,
		styles:   console.Styles(lipgloss.DefaultRenderer()),
		lines:    lines,
	}
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update applies one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width - frameStyle.GetHorizontalPadding()
		m.viewport.Width = m.width
		m.viewport.Height = max(msg.Height-4, 1)
		m.input.Width = max(m.width-len(engine.Prompt)-1, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case outputMsg:
		// The command line is always visible, so prompts are not echoed.
		if msg.style == engine.StylePrompt {
			return m, nil
		}
		text := msg.text
		if msg.newLine {
			text += "\n"
		}
		m.transcript.WriteString(console.Render(m.styles[msg.style], text, m.width))
		m.refresh()
		return m, nil

	case clearMsg:
		m.transcript.Reset()
		m.refresh()
		return m, nil

	case finishedMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			m.transcript.WriteString(echoStyle.Render(engine.Prompt+line) + "\n")
			m.submit(line)
			m.refresh()
			return m, nil
		}
	}

	var tiCmd, vpCmd tea.Cmd
	m.input, tiCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

// submit queues line for the game loop. Lines entered while the queue
// is full are discarded rather than blocking the interface.
func (m *Model) submit(line string) {
	select {
	case m.lines <- line:
	default:
		m.transcript.WriteString(m.styles[engine.StyleError].Render("Slow down!") + "\n")
	}
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.transcript.String())
	m.viewport.GotoBottom()
}

// Transcript returns everything shown so far.
func (m *Model) Transcript() string {
	return m.transcript.String()
}

// View renders the title, the transcript and the command line.
func (m *Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	return frameStyle.Render(
		titleStyle.Render(m.title) + "\n" +
			m.viewport.View() + "\n" +
			m.input.View(),
	)
}
