package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flowstate-dev/focusring/internal/core"
	"github.com/flowstate-dev/focusring/pkg/models"
)

// frameMsg is one step of the per-frame loop. It carries the generation
// captured when the tick was scheduled; a stale generation means the loop
// was cancelled in the meantime and the message is dropped without
// rescheduling.
type frameMsg struct {
	gen int
	now time.Time
}

// scheduleFrame arms the next tick for the current generation.
func (m Model) scheduleFrame() tea.Cmd {
	gen := m.gen
	return tea.Tick(frameInterval, func(ts time.Time) tea.Msg {
		return frameMsg{gen: gen, now: ts}
	})
}

// cancelFrames invalidates every scheduled tick. Cancelling an already-idle
// loop just bumps the generation again, which is harmless.
func (m *Model) cancelFrames() {
	m.gen++
}

// loopCmd keeps the frame chain alive while anything animates: a running
// session or an active celebration.
func (m Model) loopCmd() tea.Cmd {
	if m.session.Running() || m.celebrating != nil {
		return m.scheduleFrame()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		return m.stepFrame(msg)

	case tea.KeyMsg:
		if m.adding {
			return m.updateTaskInput(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// stepFrame advances the world by one frame: timer progress, the one-shot
// completion transition, and particle physics.
func (m Model) stepFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}
	m.now = msg.now

	var cmds []tea.Cmd
	if m.session.Advance(msg.now) {
		m.stats.Completed++
		m.stats.FocusMinutes += int(m.session.Total().Minutes())
		m.celebrating = newCelebration(msg.now, m.width, m.rng, m.cfg.Celebration.ReducedMotion)
		m.logger.Debugf("session complete: total=%s sessions=%d", m.session.Total(), m.stats.Completed)
		chime := m.chime
		cmds = append(cmds, func() tea.Msg {
			chime.Play()
			return nil
		})
	}

	if m.celebrating != nil {
		m.celebrating.step()
		if m.celebrating.expired(msg.now) {
			m.celebrating = nil
			m.cancelFrames()
		}
	}

	if cmd := m.loopCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelFrames()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.StartPause):
		return m.toggleRunning(time.Now())

	case key.Matches(msg, m.keys.Reset):
		m.resetSession()
		return m, m.loopCmd()

	case key.Matches(msg, m.keys.PrevDuration):
		m.cycleDuration(-1)
		return m, m.loopCmd()

	case key.Matches(msg, m.keys.NextDuration):
		m.cycleDuration(1)
		return m, m.loopCmd()

	case key.Matches(msg, m.keys.CycleBreak):
		m.cycleBreak()
		return m, nil

	case key.Matches(msg, m.keys.FocusNext):
		m.activePanel = (m.activePanel + 1) % panelCount
		return m, nil

	case key.Matches(msg, m.keys.AddTask):
		m.activePanel = panelTasks
		m.adding = true
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Confirm):
		if m.activePanel == panelTasks {
			m.toggleTaskAtCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.activePanel == panelTasks && m.taskCursor > 0 {
			m.taskCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.activePanel == panelTasks && m.taskCursor < m.tasks.Len()-1 {
			m.taskCursor++
		}
		return m, nil
	}

	return m, nil
}

// updateTaskInput routes keys to the task text field while it is open.
func (m Model) updateTaskInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		// Whitespace-only text is rejected silently; the field stays open so
		// the user can type something real or escape out.
		if _, ok := m.tasks.Add(m.input.Value()); ok {
			m.adding = false
			m.input.Blur()
			m.input.Reset()
			m.taskCursor = m.tasks.Len() - 1
		} else {
			m.input.Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// toggleRunning starts an idle session or pauses a running one. Both paths
// cancel any in-flight tick first so exactly one frame chain is active.
func (m Model) toggleRunning(now time.Time) (tea.Model, tea.Cmd) {
	if m.session.Running() {
		m.session.Pause(now)
		m.cancelFrames()
		return m, m.loopCmd()
	}
	if m.session.Completed() {
		// A finished run stays terminal until reset or a duration change.
		return m, nil
	}
	m.session.Start(now)
	m.now = now
	m.cancelFrames()
	return m, m.scheduleFrame()
}

// resetSession returns the timer to idle with zero elapsed. Configuration
// and the celebration overlay are untouched; the overlay lives out its own
// fixed duration.
func (m *Model) resetSession() {
	m.session.Reset()
	m.cancelFrames()
	m.now = time.Now()
}

// cycleDuration moves the duration selection by delta presets. Changing the
// duration stops the loop, zeroes elapsed, regenerates the curve, and clears
// the break selection.
func (m *Model) cycleDuration(delta int) {
	n := len(core.Durations)
	m.durIdx = (m.durIdx + delta%n + n) % n
	minutes := core.Durations[m.durIdx]

	m.session.SetTotal(time.Duration(minutes) * time.Minute)
	m.curve = core.SampleCurve(minutes)
	m.breakMin = models.BreakNone
	m.cancelFrames()
	m.now = time.Now()
}

// cycleBreak steps through the break options recommended for the current
// duration, ending on the explicit no-break choice before wrapping.
func (m *Model) cycleBreak() {
	opts := core.BreakOptions(m.durationMinutes())
	for i, opt := range opts {
		if opt == m.breakMin {
			m.breakMin = opts[(i+1)%len(opts)]
			return
		}
	}
	m.breakMin = opts[0]
}

func (m *Model) toggleTaskAtCursor() {
	list := m.tasks.Tasks()
	if m.taskCursor < 0 || m.taskCursor >= len(list) {
		return
	}
	m.tasks.Toggle(list[m.taskCursor].ID)
}
