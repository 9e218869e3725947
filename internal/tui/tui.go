package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blueflashxs/bdtk/internal/apperr"
	"github.com/blueflashxs/bdtk/internal/reorg"
)

// --- Styles ---
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	nameStyle    = lipgloss.NewStyle()
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// Runner executes the whole reorganization, including the file write, and
// returns the result for display.
type Runner func() (*reorg.Result, error)

// --- Messages ---
type resultMsg struct{ result *reorg.Result }

type errorMsg struct{ err error }

func (e errorMsg) Error() string { return e.err.Error() }

// --- Model ---
type Model struct {
	run     Runner
	spinner spinner.Model
	state   state
	result  *reorg.Result
	err     error
}

type state int

const (
	stateProcessing state = iota
	stateSummary
	stateError
)

func New(run Runner) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		run:     run,
		spinner: s,
		state:   stateProcessing,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runReorg)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case resultMsg:
		m.state = stateSummary
		m.result = msg.result
		return m, tea.Quit

	case errorMsg:
		m.state = stateError
		m.err = msg
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		if m.state == stateProcessing {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case stateProcessing:
		return fmt.Sprintf("%s Reorganizing...", m.spinner.View())
	case stateError:
		return errorStyle.Render("Error: ", m.err.Error())
	case stateSummary:
		return m.renderSummary()
	default:
		return ""
	}
}

func (m *Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Reorganization Summary"))
	b.WriteString("\n\n")

	hasContent := false
	if len(m.result.Moved) > 0 {
		hasContent = true
		b.WriteString(successStyle.Render("Moved:"))
		b.WriteString("\n")
		for _, name := range m.result.Moved {
			b.WriteString(fmt.Sprintf("  %s\n", nameStyle.Render(name)))
		}
	}
	if len(m.result.Skipped) > 0 {
		hasContent = true
		b.WriteString(errorStyle.Render("Skipped:"))
		b.WriteString("\n")
		for _, name := range m.result.Skipped {
			b.WriteString(fmt.Sprintf("  %s\n", nameStyle.Render(name)))
			for _, e := range m.result.Errors[name] {
				b.WriteString(faintStyle.Render(fmt.Sprintf("    %s", e)))
				b.WriteString("\n")
			}
		}
	}
	if len(m.result.Warnings) > 0 {
		hasContent = true
		b.WriteString(warnStyle.Render("Warnings:"))
		b.WriteString("\n")
		for _, w := range m.result.Warnings {
			b.WriteString(fmt.Sprintf("  %s\n", w))
		}
	}

	if !hasContent {
		b.WriteString(faintStyle.Render("Nothing to do."))
	}

	return b.String()
}

func (m *Model) runReorg() tea.Msg {
	result, err := m.run()
	if err != nil {
		// The TUI is about to exit, so the stack trace can go straight
		// to stderr.
		if e, ok := err.(*apperr.DetailedError); ok {
			fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", e.Stack)
		}
		return errorMsg{err}
	}
	return resultMsg{result: result}
}
