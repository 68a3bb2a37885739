package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Meng-Best/task-planning-system-sub001/internal/worktime"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
)

type workloadModel struct {
	report     workloadReport
	cursor     int // selected row index
	scroll     int // first visible row
	termHeight int
}

func (m workloadModel) visibleRows() int {
	// Reserve lines for: title(1) + header(1) + footer(2).
	available := m.termHeight - 4
	if available < 1 {
		return 1
	}
	if available > len(m.report.Rows) {
		return len(m.report.Rows)
	}
	return available
}

func (m workloadModel) maxScroll() int {
	max := len(m.report.Rows) - m.visibleRows()
	if max < 0 {
		return 0
	}
	return max
}

// ensureCursorVisible adjusts scroll so the cursor stays in view.
func (m workloadModel) ensureCursorVisible() workloadModel {
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+m.visibleRows() {
		m.scroll = m.cursor - m.visibleRows() + 1
	}
	if m.scroll > m.maxScroll() {
		m.scroll = m.maxScroll()
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
	return m
}

func (m workloadModel) Init() tea.Cmd {
	return nil
}

func (m workloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termHeight = msg.Height
		return m.ensureCursorVisible(), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m.ensureCursorVisible(), nil
		case "down", "j":
			if m.cursor < len(m.report.Rows)-1 {
				m.cursor++
			}
			return m.ensureCursorVisible(), nil
		case "home", "g":
			m.cursor = 0
			return m.ensureCursorVisible(), nil
		case "end", "G":
			m.cursor = len(m.report.Rows) - 1
			return m.ensureCursorVisible(), nil
		}
	}
	return m, nil
}

func (m workloadModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.report.Title))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-10s  %-24s  %6s  %10s  %6s",
		"CODE", "NAME", "TASKS", "WORKED", m.report.MetricLabel)))
	b.WriteString("\n")

	last := m.scroll + m.visibleRows()
	if last > len(m.report.Rows) {
		last = len(m.report.Rows)
	}
	for i := m.scroll; i < last; i++ {
		row := m.report.Rows[i]
		line := fmt.Sprintf("%-10s  %-24s  %6d  %10s  %6s",
			row.Code, row.Name, row.TaskCount, worktime.FormatMinutes(row.Worked), row.Metric)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("up/down: move  q: quit"))
	return b.String()
}

// runWorkloadTable shows the report interactively on a terminal and
// falls back to a static table otherwise.
func runWorkloadTable(cmd *cobra.Command, report workloadReport) error {
	out := cmd.OutOrStdout()

	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printWorkloadTable(out, report)
	}

	m := workloadModel{report: report, termHeight: 40}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
