package main

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Bold(true).Foreground(colorAccent)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

// renderTable draws rows under headers. highlight is the index of a row to
// emphasise, or -1.
func renderTable(headers []string, rows [][]string, highlight int) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == highlight:
				return bestStyle
			default:
				return cellStyle
			}
		}).
		String()
}

func formatBits(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatLevel(v int) string {
	if v < 0 {
		return "-"
	}
	return strconv.Itoa(v)
}
