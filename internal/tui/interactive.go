// Package tui lets the user pick the snapshot time interactively.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/fluxconv/internal/timesel"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

// pageSize is the number of instants shown at once.
const pageSize = 12

type model struct {
	caseDir  string
	times    []timesel.Instant
	cursor   int
	offset   int
	chosen   bool
	canceled bool
}

func newModel(caseDir string, times []timesel.Instant) model {
	return model{caseDir: caseDir, times: times}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.canceled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.times)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		if len(m.times) > 0 {
			m.cursor = len(m.times) - 1
		}
	case "enter", " ":
		if len(m.times) == 0 {
			m.canceled = true
		} else {
			m.chosen = true
		}
		return m, tea.Quit
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+pageSize {
		m.offset = m.cursor - pageSize + 1
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(cyan.Bold(true).Render("fluxconv"))
	b.WriteString(dim.Render("  select time"))
	b.WriteString("\n  ")
	b.WriteString(dimmer.Render(m.caseDir))
	b.WriteString("\n\n")

	if len(m.times) == 0 {
		b.WriteString(dim.Render("  no times available"))
		b.WriteString("\n")
	}

	end := min(m.offset+pageSize, len(m.times))
	for i := m.offset; i < end; i++ {
		name := m.times[i].Name
		if i == m.cursor {
			b.WriteString(green.Render("  > "))
			b.WriteString(white.Bold(true).Render(name))
		} else {
			b.WriteString("    ")
			b.WriteString(dim.Render(name))
		}
		b.WriteString("\n")
	}
	if len(m.times) > pageSize {
		b.WriteString(dimmer.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.times))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimmer.Render("  ↑↓ navigate  enter select  q cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m model) result() (timesel.Instant, error) {
	if !m.chosen || len(m.times) == 0 {
		return timesel.Instant{}, timesel.ErrNoTimes
	}
	return m.times[m.cursor], nil
}

// PickTime shows the times and blocks until one is chosen. Cancelling
// returns timesel.ErrNoTimes.
func PickTime(caseDir string, times []timesel.Instant, opts ...tea.ProgramOption) (timesel.Instant, error) {
	p := tea.NewProgram(newModel(caseDir, times), opts...)
	final, err := p.Run()
	if err != nil {
		return timesel.Instant{}, fmt.Errorf("time picker: %w", err)
	}
	return final.(model).result()
}
