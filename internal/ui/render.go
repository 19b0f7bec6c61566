// Package ui renders observability results in the terminal: a styled
// static table for one-shot output and an interactive browser.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/astroplanners/astroplan"
)

// Result colors.
const (
	colorGood   = "#7CFC00" // lawn green - observable
	colorBad    = "#FF6347" // tomato - not observable
	colorPartly = "#FFD700" // gold - partly observable
	colorDim    = "#444444"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGood))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorBad))
	partStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPartly))
)

// RenderTable renders the observability table as styled text, one row per
// target.
func RenderTable(tab *astroplan.ObservabilityTable) string {
	var b strings.Builder

	nameWidth := len("Target")
	for _, r := range tab.Rows {
		if len(r.TargetName) > nameWidth {
			nameWidth = len(r.TargetName)
		}
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %-5s  %-6s  %s",
		nameWidth, "Target", "Ever", "Always", "Fraction")))
	b.WriteByte('\n')

	for _, r := range tab.Rows {
		b.WriteString(renderRow(r, nameWidth, false))
		b.WriteByte('\n')
	}

	if len(tab.Times) > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d samples  %s … %s",
			len(tab.Times),
			tab.Times[0].Format("2006-01-02 15:04 MST"),
			tab.Times[len(tab.Times)-1].Format("2006-01-02 15:04 MST"))))
		b.WriteByte('\n')
	}

	return b.String()
}

func renderRow(r astroplan.TargetObservability, nameWidth int, selected bool) string {
	style := fractionStyle(r)

	name := fmt.Sprintf("%-*s", nameWidth, r.TargetName)
	if selected {
		name = lipgloss.NewStyle().Bold(true).Reverse(true).Render(name)
	}

	return fmt.Sprintf("%s  %-5s  %-6s  %s",
		name,
		yesNo(r.EverObservable),
		yesNo(r.AlwaysObservable),
		style.Render(fmt.Sprintf("%5.1f%%  %s", r.FractionObservable*100, fractionBar(r.FractionObservable))))
}

func fractionStyle(r astroplan.TargetObservability) lipgloss.Style {
	switch {
	case r.AlwaysObservable:
		return goodStyle
	case r.EverObservable:
		return partStyle
	default:
		return badStyle
	}
}

func yesNo(v bool) string {
	if v {
		return goodStyle.Render("yes")
	}
	return badStyle.Render("no")
}

// fractionBar draws a 10-cell bar for a fraction in [0, 1].
func fractionBar(f float64) string {
	const cells = 10
	filled := int(f*cells + 0.5)
	if filled > cells {
		filled = cells
	}
	return strings.Repeat("█", filled) + dimStyle.Render(strings.Repeat("░", cells-filled))
}
