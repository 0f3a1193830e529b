// Package repl implements the interactive read–eval–print loop as a
// bubbletea program: a single input line with history navigation and fuzzy
// symbol completion, printing each result into a scrollback transcript.
package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iamlisp/go-iamlisp/internal/config"
	"github.com/iamlisp/go-iamlisp/pkg/iamlisp"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Model is the bubbletea model of the REPL session.
type Model struct {
	engine  *iamlisp.Engine
	input   textinput.Model
	history *History
	cfg     config.Config

	transcript []string
	histIdx    int
	pending    string

	candidates []string
	selected   int

	quitting bool
}

// NewModel creates a REPL model around an engine. History is loaded from
// the configured path if one is set.
func NewModel(engine *iamlisp.Engine, cfg config.Config) Model {
	input := textinput.New()
	input.Prompt = promptStyle.Render(cfg.Prompt)
	input.Focus()

	history := NewHistory(cfg.History)
	_ = history.Load()

	return Model{
		engine:  engine,
		input:   input,
		history: history,
		cfg:     cfg,
		histIdx: history.Len(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.clearCompletion()
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyUp:
		m.navigateHistory(-1)
		return m, nil
	case tea.KeyDown:
		m.navigateHistory(1)
		return m, nil
	case tea.KeyTab:
		m.cycleCompletion(1)
		return m, nil
	case tea.KeyShiftTab:
		m.cycleCompletion(-1)
		return m, nil
	case tea.KeyEscape:
		m.clearCompletion()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshCompletion()
	return m, cmd
}

// submit evaluates the current line and appends the outcome to the
// transcript.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.clearCompletion()
	if line == "" {
		return m, nil
	}

	_ = m.history.Append(line)
	m.histIdx = m.history.Len()

	m.transcript = append(m.transcript, m.cfg.Prompt+line)
	if out, err := m.engine.Eval(line); err != nil {
		m.transcript = append(m.transcript, errorStyle.Render(err.Error()))
	} else {
		m.transcript = append(m.transcript, resultStyle.Render(out))
	}

	m.input.SetValue("")
	return m, nil
}

// navigateHistory moves through past entries; moving past the newest entry
// restores the line that was being typed.
func (m *Model) navigateHistory(delta int) {
	if m.history.Len() == 0 {
		return
	}
	if m.histIdx == m.history.Len() && delta < 0 {
		m.pending = m.input.Value()
	}

	idx := m.histIdx + delta
	switch {
	case idx < 0:
		idx = 0
	case idx >= m.history.Len():
		idx = m.history.Len()
	}
	m.histIdx = idx

	if idx == m.history.Len() {
		m.input.SetValue(m.pending)
	} else {
		m.input.SetValue(m.history.At(idx))
	}
	m.input.CursorEnd()
	m.clearCompletion()
}

func (m *Model) refreshCompletion() {
	m.candidates = complete(m.input.Value(), m.engine.Symbols())
	m.selected = 0
}

func (m *Model) cycleCompletion(delta int) {
	if len(m.candidates) == 0 {
		m.refreshCompletion()
		if len(m.candidates) == 0 {
			return
		}
	}
	m.input.SetValue(applyCompletion(m.input.Value(), m.candidates[m.selected]))
	m.input.CursorEnd()
	m.selected = (m.selected + delta + len(m.candidates)) % len(m.candidates)
}

func (m *Model) clearCompletion() {
	m.candidates = nil
	m.selected = 0
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	for _, line := range m.transcript {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if m.quitting {
		return sb.String()
	}
	sb.WriteString(m.input.View())
	sb.WriteByte('\n')
	if hint := candidateHint(m.candidates, m.selected); hint != "" {
		sb.WriteString(hintStyle.Render(hint))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Run starts an interactive session: the prelude scripts named by the
// configuration are evaluated first, then the loop runs until Ctrl+D.
func Run(engine *iamlisp.Engine, cfg config.Config) error {
	for _, path := range cfg.Prelude {
		if _, err := engine.EvalFile(path); err != nil {
			return fmt.Errorf("failed to load prelude %s: %w", path, err)
		}
	}

	program := tea.NewProgram(NewModel(engine, cfg))
	_, err := program.Run()
	return err
}
