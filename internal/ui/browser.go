package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/astroplanners/astroplan"
)

// Browser is a bubbletea model that lets the user walk through the rows of
// an observability table and inspect the per-target summary.
type Browser struct {
	table  *astroplan.ObservabilityTable
	months [][]string // pre-formatted month names per target, may be nil

	cursor int
	width  int
	height int
}

// NewBrowser builds the interactive table browser. months may be nil when
// the months-observable query was not run.
func NewBrowser(table *astroplan.ObservabilityTable, months [][]string) *Browser {
	return &Browser{table: table, months: months}
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.table.Rows)-1 {
				b.cursor++
			}
		case "home", "g":
			b.cursor = 0
		case "end", "G":
			b.cursor = len(b.table.Rows) - 1
		}
	}
	return b, nil
}

// View implements tea.Model.
func (b *Browser) View() string {
	var s strings.Builder

	obs := b.table.Observer
	s.WriteString(headerStyle.Render(fmt.Sprintf("Observability · %s (%.4f°, %.4f°)",
		obs.Name, obs.Latitude, obs.Longitude)))
	s.WriteString("\n\n")

	nameWidth := len("Target")
	for _, r := range b.table.Rows {
		if len(r.TargetName) > nameWidth {
			nameWidth = len(r.TargetName)
		}
	}

	s.WriteString(dimStyle.Render(fmt.Sprintf("  %-*s  %-5s  %-6s  %s",
		nameWidth, "Target", "Ever", "Always", "Fraction")))
	s.WriteByte('\n')

	for i, r := range b.table.Rows {
		marker := "  "
		if i == b.cursor {
			marker = "> "
		}
		s.WriteString(marker)
		s.WriteString(renderRow(r, nameWidth, i == b.cursor))
		s.WriteByte('\n')
	}

	s.WriteByte('\n')
	s.WriteString(b.detailView())
	s.WriteString("\n\n")
	s.WriteString(dimStyle.Render("↑/↓ move · q quit"))

	return s.String()
}

// detailView expands the selected row.
func (b *Browser) detailView() string {
	if b.cursor >= len(b.table.Rows) {
		return ""
	}
	r := b.table.Rows[b.cursor]

	var lines []string
	lines = append(lines, headerStyle.Render(r.TargetName))
	lines = append(lines, fmt.Sprintf("observable in %.1f%% of %d samples",
		r.FractionObservable*100, len(b.table.Times)))

	if b.months != nil && b.cursor < len(b.months) {
		if len(b.months[b.cursor]) == 0 {
			lines = append(lines, badStyle.Render("no observable months"))
		} else {
			lines = append(lines, "months: "+strings.Join(b.months[b.cursor], ", "))
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("60")).
		Padding(0, 1)
	return box.Render(strings.Join(lines, "\n"))
}
