// Package ui is the full-screen bubbletea front-end for the calculator. It
// drives the same operation set, engine, and formatter as the line session;
// only the presentation differs.
package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hiraku/calq/internal/calc"
	"github.com/hiraku/calq/internal/log"
	"github.com/hiraku/calq/internal/session"
)

type phase int

const (
	phaseSelect phase = iota
	phaseOperand
	phaseContinue
)

const maxLogLines = 3

// LogMsg carries a captured log record into the model.
type LogMsg struct {
	Level   string
	Message string
}

// Model is the Bubble Tea model for the calculator TUI
type Model struct {
	phase      phase
	input      string
	transcript []string
	logs       []string

	op        calc.Op
	prompts   []string
	promptIdx int
	operands  []float64

	width  int
	height int
	styles session.Styles
}

// NewModel creates a TUI model starting at operation selection.
func NewModel(styles session.Styles) Model {
	return Model{
		phase:  phaseSelect,
		styles: styles,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit(m.input)
		case "backspace":
			if len(m.input) > 0 {
				runes := []rune(m.input)
				m.input = string(runes[:len(runes)-1])
			}
			return m, nil
		default:
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
				m.input += msg.String()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LogMsg:
		m.logs = append(m.logs, fmt.Sprintf("%-5s %s", msg.Level, msg.Message))
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
	}

	return m, nil
}

// submit consumes the current input line and advances the phase machine.
func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	m.input = ""
	token := strings.ToLower(strings.TrimSpace(line))
	m.say(m.currentPrompt() + ": " + token)

	switch m.phase {
	case phaseSelect:
		return m.submitOperation(token)
	case phaseOperand:
		return m.submitOperand(token)
	case phaseContinue:
		return m.submitContinue(token)
	}
	return m, nil
}

func (m Model) submitOperation(token string) (tea.Model, tea.Cmd) {
	if token == "" {
		m.sayError("please enter an operation")
		return m, nil
	}
	if token == "help" {
		m.say(session.HelpTable(m.styles))
		return m, nil
	}

	op, err := calc.ParseOp(token)
	if err != nil {
		m.sayError(fmt.Sprintf("unknown operation %q; valid operations: %s",
			token, strings.Join(calc.Tokens(), ", ")))
		return m, nil
	}

	m.op = op
	m.prompts = op.Prompts()
	m.promptIdx = 0
	m.operands = m.operands[:0]
	m.phase = phaseOperand
	return m, nil
}

func (m Model) submitOperand(token string) (tea.Model, tea.Cmd) {
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		m.sayError("invalid number format")
		return m, nil
	}

	m.operands = append(m.operands, value)
	m.promptIdx++
	if m.promptIdx < len(m.prompts) {
		return m, nil
	}

	result, evalErr := calc.Evaluate(m.op, m.operands...)
	if evalErr != nil {
		var domainErr *calc.DomainError
		if errors.As(evalErr, &domainErr) {
			log.Debug("domain error", "operation", m.op.String(), "reason", domainErr.Reason)
		}
		m.sayError(evalErr.Error())
	} else {
		m.say(m.styles.Result.Render(session.FormatCalculation(m.op, m.operands, result)))
	}
	m.phase = phaseContinue
	return m, nil
}

func (m Model) submitContinue(token string) (tea.Model, tea.Cmd) {
	switch token {
	case "yes", "y":
		m.say(m.styles.Separator.Render(strings.Repeat("─", 40)))
		m.phase = phaseSelect
		return m, nil
	case "no", "n":
		m.say("Goodbye!")
		return m, tea.Quit
	default:
		m.sayError("please answer yes or no")
		return m, nil
	}
}

// say appends to the transcript, splitting multi-line text.
func (m *Model) say(text string) {
	m.transcript = append(m.transcript, strings.Split(text, "\n")...)
}

func (m *Model) sayError(text string) {
	m.say(m.styles.Error.Render(text))
}

func (m Model) currentPrompt() string {
	switch m.phase {
	case phaseOperand:
		return m.prompts[m.promptIdx]
	case phaseContinue:
		return "Do you want to perform another calculation? (yes/no)"
	default:
		return "Select an operation (or 'help')"
	}
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Banner.Render("calq — interactive calculator"))
	b.WriteString("\n\n")

	transcript := m.transcript
	if limit := m.transcriptHeight(); len(transcript) > limit {
		transcript = transcript[len(transcript)-limit:]
	}
	for _, line := range transcript {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Prompt.Render(m.currentPrompt()))
	b.WriteString(": ")
	b.WriteString(m.input)
	b.WriteString("█")

	if len(m.logs) > 0 && log.IsDebugEnabled() {
		b.WriteString("\n\n")
		for _, line := range m.logs {
			b.WriteString(m.styles.Separator.Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// transcriptHeight is how many transcript lines fit above the prompt.
func (m Model) transcriptHeight() int {
	if m.height == 0 {
		// No WindowSizeMsg yet (or non-interactive); show a generous tail.
		return 100
	}
	reserved := 4 + 1 // banner block + prompt line
	if len(m.logs) > 0 && log.IsDebugEnabled() {
		reserved += len(m.logs) + 2
	}
	if m.height <= reserved {
		return 1
	}
	return m.height - reserved
}
