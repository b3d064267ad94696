package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/scanparse"
	"github.com/msto63/scanparse/ast"
	splog "github.com/msto63/scanparse/core/log"
)

// Entry represents one expression and its outcome in the session history
type Entry struct {
	Input  string
	Levels [][]string
	Err    error
}

// Model is the REPL TUI model
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	err     error
	history []Entry

	// Components
	input    textinput.Model
	viewport viewport.Model

	engine *scanparse.Engine
}

// NewModel creates a new REPL model
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "Enter an expression, e.g. ab12 + (c*3)"
	ti.Focus()
	ti.CharLimit = 4000
	ti.Width = 76

	engine, err := scanparse.NewEngine(scanparse.Options{
		Logger:   splog.New().WithOutput(io.Discard),
		Renderer: ast.NewRenderer(ast.RenderOptions{}),
	})

	return Model{
		input:  ti,
		engine: engine,
		err:    err,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line != "" {
				m.history = append(m.history, m.parseEntry(line))
				m.input.Reset()
				m.updateContent()
				m.viewport.GotoBottom()
			}
			return m, nil

		case "ctrl+l":
			m.history = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-7)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - 7
		}
		m.input.Width = msg.Width - 8
		m.updateContent()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// parseEntry processes one input line into a history entry
func (m Model) parseEntry(line string) Entry {
	result, err := m.engine.ProcessLine(context.Background(), line)
	if err != nil {
		return Entry{Input: line, Err: err}
	}
	if result.Blank {
		return Entry{Input: line}
	}
	return Entry{Input: line, Levels: result.Levels}
}

// updateContent rebuilds the viewport content from the history
func (m *Model) updateContent() {
	var s strings.Builder

	for i, entry := range m.history {
		if i > 0 {
			s.WriteString("\n")
		}

		s.WriteString(PromptStyle.Render("> " + entry.Input))
		s.WriteString("\n")

		if entry.Err != nil {
			s.WriteString(ErrorStyle.Render(entry.Err.Error()))
			s.WriteString("\n")
			continue
		}

		for _, level := range entry.Levels {
			s.WriteString(TreeStyle.Render(strings.Join(level, " ")))
			s.WriteString("\n")
		}
	}

	m.viewport.SetContent(s.String())
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("initialization failed: %v", m.err))
	}

	var s strings.Builder

	s.WriteString(TitleStyle.Render("scanparse"))
	s.WriteString("\n")
	s.WriteString(BoxStyle.Width(m.width - 2).Render(m.viewport.View()))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")
	s.WriteString(HintStyle.Render("Enter: parse · Ctrl+L: clear · Ctrl+C: quit"))

	return s.String()
}
