package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flowstate-dev/focusring/internal/core"
	"github.com/flowstate-dev/focusring/internal/render"
	"github.com/flowstate-dev/focusring/pkg/models"
)

// Layout constants. The ring radius is in rows; the chart height in cells.
const (
	ringRadius  = 6
	chartHeight = 12
	minBodyWide = 84
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Starting focusring..."
	}

	title := m.styles.title.Render(" focusring ")
	counter := m.styles.status.Render(fmt.Sprintf(" %d completed · %d focus min", m.stats.Completed, m.stats.FocusMinutes))
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, counter)
	helpBar := m.styles.help.Render(m.help.View(m.keys))

	var body string
	if m.celebrating != nil {
		body = m.renderCelebration()
	} else {
		body = m.renderPanels()
	}

	return header + "\n\n" + body + "\n" + helpBar
}

func (m Model) renderPanels() string {
	timer := m.panelStyle(panelTimer).Render(m.renderTimerPanel())
	if m.width < minBodyWide {
		curve := m.panelStyle(panelCurve).Render(m.renderCurvePanel(m.width - 6))
		tasks := m.panelStyle(panelTasks).Render(m.renderTasksPanel(m.width - 6))
		return lipgloss.JoinVertical(lipgloss.Left, timer, curve, tasks)
	}

	sideWidth := m.width - lipgloss.Width(timer) - 4
	if sideWidth < 24 {
		sideWidth = 24
	}
	curve := m.panelStyle(panelCurve).Render(m.renderCurvePanel(sideWidth))
	tasks := m.panelStyle(panelTasks).Render(m.renderTasksPanel(sideWidth))
	side := lipgloss.JoinVertical(lipgloss.Left, curve, tasks)
	return lipgloss.JoinHorizontal(lipgloss.Top, timer, side)
}

func (m Model) panelStyle(p panel) lipgloss.Style {
	if m.activePanel == p {
		return m.styles.activePanel
	}
	return m.styles.panel
}

// renderTimerPanel draws the countdown ring with the mm:ss readout inside,
// plus the duration selector and break line underneath.
func (m Model) renderTimerPanel() string {
	remaining := m.session.Remaining(m.now)
	ring := render.Ring{
		Radius:   ringRadius,
		Fraction: m.arcFraction(),
		Label:    clockString(remaining),
	}

	var b strings.Builder
	for i, row := range ring.Render() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.colorizeRing(row))
	}

	state := "idle"
	switch {
	case m.session.Running():
		state = "focusing"
	case m.session.Completed():
		state = "complete · press r"
	case m.session.Elapsed(m.now) > 0:
		state = "paused"
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.accent.Render(fmt.Sprintf("◀ %d min ▶", m.durationMinutes())))
	b.WriteString(m.styles.status.Render("  " + state))
	b.WriteByte('\n')
	b.WriteString(m.styles.status.Render(fmt.Sprintf("break: %s (b: %s)", breakLabel(m.breakMin), m.breakOptionsLabel())))
	return b.String()
}

func (m Model) colorizeRing(row string) string {
	var b strings.Builder
	for _, r := range row {
		switch r {
		case '●':
			b.WriteString(m.styles.ringFilled.Render(string(r)))
		case '·':
			b.WriteString(m.styles.ringEmpty.Render(string(r)))
		case ' ':
			b.WriteByte(' ')
		default:
			b.WriteString(m.styles.clock.Render(string(r)))
		}
	}
	return b.String()
}

// renderCurvePanel plots the productivity curve with the progress marker,
// tinted left to right across the theme ramp.
func (m Model) renderCurvePanel(width int) string {
	cells := width - 2
	if cells < 16 {
		cells = 16
	}
	rows := render.Chart(m.curve, m.arcFraction(), cells, chartHeight)
	ramp := render.Ramp(m.cfg.Theme.Accent, m.cfg.Theme.Dim, cells)

	var b strings.Builder
	b.WriteString(m.styles.header.Render("Productivity curve"))
	b.WriteByte('\n')
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for ci, r := range []rune(row) {
			switch r {
			case ' ':
				b.WriteByte(' ')
			case render.MarkerRune:
				b.WriteString(m.styles.marker.Render(string(r)))
			default:
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ramp[ci])).Render(string(r)))
			}
		}
	}
	return b.String()
}

func (m Model) renderTasksPanel(width int) string {
	var b strings.Builder
	b.WriteString(m.styles.header.Render("Tasks"))
	b.WriteByte('\n')

	list := m.tasks.Tasks()
	if len(list) == 0 && !m.adding {
		b.WriteString(m.styles.status.Render("nothing yet, press a to add"))
	}
	maxText := width - 8
	if maxText < 8 {
		maxText = 8
	}
	for i, t := range list {
		b.WriteByte('\n')
		cursor := "  "
		if m.activePanel == panelTasks && i == m.taskCursor && !m.adding {
			cursor = m.styles.cursor.Render("> ")
		}
		box := "☐"
		text := t.Text
		if r := []rune(text); len(r) > maxText {
			text = string(r[:maxText-1]) + "…"
		}
		if t.Done {
			box = "✓"
			text = m.styles.taskDone.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s%s %s", cursor, box, text))
	}

	if m.adding {
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
	}
	return b.String()
}

// renderCelebration replaces the panel body with the completion overlay:
// falling particles behind a centered banner.
func (m Model) renderCelebration() string {
	w := m.width
	h := m.height - 5
	if h < 8 {
		h = 8
	}

	grid := m.celebrating.grid(w, h)
	banner := m.styles.banner.Render("Session complete!")
	sub := m.styles.status.Render(breakSuggestion(m.breakMin))

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = m.styles.particle.Render(strings.TrimRight(string(row), " "))
	}
	overlay := strings.Join(lines, "\n")

	center := lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
		banner+"\n\n"+sub)

	// Particles draw over the placed banner block's blank rows.
	return mergeLines(center, overlay)
}

// mergeLines lays the second block over the first, filling only blank cells
// so the banner stays readable through the particle field.
func mergeLines(base, over string) string {
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(over, "\n")
	for i := range baseLines {
		if i >= len(overLines) {
			break
		}
		if strings.TrimSpace(stripANSI(baseLines[i])) == "" {
			baseLines[i] = overLines[i]
		}
	}
	return strings.Join(baseLines, "\n")
}

func clockString(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func breakLabel(breakMin int) string {
	if breakMin == models.BreakNone {
		return "none"
	}
	return fmt.Sprintf("%d min", breakMin)
}

func breakSuggestion(breakMin int) string {
	if breakMin == models.BreakNone {
		return "straight on to the next one"
	}
	return fmt.Sprintf("time for a %d minute break", breakMin)
}

// stripANSI removes escape sequences so blankness checks see the text only.
func stripANSI(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		switch {
		case inSeq:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inSeq = false
			}
		case r == 0x1b:
			inSeq = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// breakOptionsLabel lists the recommendation row for the current duration.
func (m Model) breakOptionsLabel() string {
	opts := core.BreakOptions(m.durationMinutes())
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = breakLabel(o)
	}
	return strings.Join(parts, " / ")
}
