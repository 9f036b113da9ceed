package tui

import "github.com/charmbracelet/lipgloss"

// styles carries every lipgloss style the view needs, built once from the
// configured theme colors.
type styles struct {
	title       lipgloss.Style
	panel       lipgloss.Style
	activePanel lipgloss.Style
	header      lipgloss.Style

	ringFilled lipgloss.Style
	ringEmpty  lipgloss.Style
	clock      lipgloss.Style
	marker     lipgloss.Style

	status   lipgloss.Style
	accent   lipgloss.Style
	taskDone lipgloss.Style
	cursor   lipgloss.Style

	banner   lipgloss.Style
	particle lipgloss.Style
	help     lipgloss.Style
}

func newStyles(accentHex, dimHex string) styles {
	accent := lipgloss.Color(accentHex)
	dim := lipgloss.Color(dimHex)
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(accent).
			Padding(0, 1),

		panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),

		activePanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		ringFilled: lipgloss.NewStyle().Foreground(accent),
		ringEmpty:  lipgloss.NewStyle().Foreground(dim),
		clock:      lipgloss.NewStyle().Bold(true),
		marker:     lipgloss.NewStyle().Bold(true).Foreground(accent),

		status:   lipgloss.NewStyle().Foreground(dim),
		accent:   lipgloss.NewStyle().Foreground(accent),
		taskDone: lipgloss.NewStyle().Foreground(dim).Strikethrough(true),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(accent),

		banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(accent).
			Padding(0, 2),
		particle: lipgloss.NewStyle().Foreground(accent),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
