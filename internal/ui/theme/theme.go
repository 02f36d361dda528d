// Package theme holds the lipgloss styles used by brightpath reports.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette, bright but readable on dark terminals.
var (
	Primary   = lipgloss.Color("#8B5CF6") // purple
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F97316") // orange
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	TextDim   = lipgloss.Color("#94A3B8")
	Border    = lipgloss.Color("#334155")
)

// Report text.
var (
	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(22)

	Muted = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Cheer = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Level and reward highlights.
var (
	LevelUp = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	LevelDown = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Coins = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Panel frames a block of report lines.
var Panel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)

// Row renders a label/value pair on one line.
func Row(label, value string) string {
	return Label.Render(label) + value
}
