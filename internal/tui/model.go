// Package tui implements the interactive focusring terminal interface: the
// countdown ring, the productivity curve with its progress marker, the task
// checklist, and the completion celebration, composed as a single bubbletea
// program.
package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flowstate-dev/focusring/internal/audio"
	"github.com/flowstate-dev/focusring/internal/core"
	"github.com/flowstate-dev/focusring/internal/log"
	"github.com/flowstate-dev/focusring/internal/render"
	"github.com/flowstate-dev/focusring/pkg/models"
)

// frameRate drives both the countdown ring refresh and the particle
// animation.
const frameRate = 30

const frameInterval = time.Second / frameRate

// Panel focus order.
type panel int

const (
	panelTimer panel = iota
	panelCurve
	panelTasks
	panelCount
)

// Model is the bubbletea model for the focusring session view.
type Model struct {
	cfg    *models.GlobalConfig
	logger log.Logger
	chime  audio.Player

	// Domain state.
	session  *core.Session
	tasks    *core.TaskList
	stats    models.SessionStats
	curve    []models.CurvePoint
	durIdx   int // index into core.Durations
	breakMin int // selected break, models.BreakNone when unset

	// Frame loop. gen is bumped to cancel scheduled ticks: a frameMsg
	// carrying an older generation is dropped without rescheduling.
	gen int
	now time.Time

	// View state.
	width       int
	height      int
	activePanel panel
	taskCursor  int
	adding      bool
	input       textinput.Model
	keys        keyMap
	help        help.Model
	styles      styles
	rng         *rand.Rand
	celebrating *celebration
}

// New builds the session view from the loaded configuration. The chime and
// logger may be silent implementations; the model never checks them for nil.
func New(cfg *models.GlobalConfig, logger log.Logger, chime audio.Player) Model {
	input := textinput.New()
	input.Placeholder = "what are you working on?"
	input.CharLimit = 120
	input.Width = 38

	durIdx := core.DurationIndex(cfg.DefaultDurationMin)
	minutes := core.Durations[durIdx]

	return Model{
		cfg:      cfg,
		logger:   logger,
		chime:    chime,
		session:  core.NewSession(time.Duration(minutes) * time.Minute),
		tasks:    core.NewTaskList(),
		curve:    core.SampleCurve(minutes),
		durIdx:   durIdx,
		breakMin: models.BreakNone,
		now:      time.Now(),
		input:    input,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   newStyles(cfg.Theme.Accent, cfg.Theme.Dim),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// durationMinutes is the currently selected session length.
func (m Model) durationMinutes() int {
	return core.Durations[m.durIdx]
}

// arcFraction is the elapsed share of the session at the latest frame time.
func (m Model) arcFraction() float64 {
	return render.ArcFraction(m.session.Elapsed(m.now), m.session.Total())
}
