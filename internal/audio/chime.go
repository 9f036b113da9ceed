// Package audio plays the synthesized celebration chime through the system
// speaker. The chime is the only fallible external dependency in focusring:
// any failure to initialize or play is swallowed, leaving the celebration
// silent but otherwise intact.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/flowstate-dev/focusring/internal/log"
)

const chimeSampleRate = beep.SampleRate(44100)

// Player plays the session-completion cue.
type Player interface {
	// Play fires the chime and returns immediately. It never blocks on the
	// audio device and never reports an error; a player whose speaker could
	// not be initialized does nothing.
	Play()
	// Enabled reports whether sound is configured on.
	Enabled() bool
}

type chime struct {
	logger  log.Logger
	enabled bool

	once  sync.Once
	ready bool

	// Injectable for tests; default to the real speaker.
	initSpeaker func(sr beep.SampleRate, bufferSize int) error
	playFn      func(s ...beep.Streamer)
}

// NewChime returns a Player that synthesizes a short rising three-tone sweep.
// The speaker is initialized lazily on the first Play; if initialization
// fails the player stays silent for the rest of the process.
func NewChime(logger log.Logger, enabled bool) Player {
	return &chime{
		logger:      logger,
		enabled:     enabled,
		initSpeaker: speaker.Init,
		playFn:      speaker.Play,
	}
}

func (c *chime) Enabled() bool {
	return c.enabled
}

func (c *chime) Play() {
	if !c.enabled {
		return
	}
	c.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				c.logger.Debugf("audio init panicked: %v", r)
				c.ready = false
			}
		}()
		if err := c.initSpeaker(chimeSampleRate, chimeSampleRate.N(time.Second/10)); err != nil {
			c.logger.Debugf("audio init failed: %v", err)
			return
		}
		c.ready = true
	})
	if !c.ready {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Debugf("audio play panicked: %v", r)
		}
	}()
	c.playFn(&effects.Volume{
		Streamer: celebrationCue(),
		Base:     2,
		Volume:   -1,
	})
}

// celebrationCue is the completion sound: three sine sweeps walking up a
// C-major arpeggio, each with an attack/decay gain envelope. The streamer is
// finite and self-terminating, so the mixer releases it once drained.
func celebrationCue() beep.Streamer {
	return beep.Seq(
		newSweep(523.25, 659.25, 160*time.Millisecond),
		newSweep(659.25, 783.99, 160*time.Millisecond),
		newSweep(783.99, 1046.50, 320*time.Millisecond),
	)
}

// sweep is a beep.Streamer producing a sine tone whose frequency glides
// linearly from one pitch to another over a fixed duration.
type sweep struct {
	fromHz, toHz float64
	total        int
	pos          int
	phase        float64
}

func newSweep(fromHz, toHz float64, d time.Duration) *sweep {
	return &sweep{
		fromHz: fromHz,
		toHz:   toHz,
		total:  chimeSampleRate.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			break
		}
		t := float64(s.pos) / float64(s.total)
		freq := s.fromHz + (s.toHz-s.fromHz)*t
		s.phase += 2 * math.Pi * freq / float64(chimeSampleRate)
		v := math.Sin(s.phase) * envelope(t)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *sweep) Err() error { return nil }

// envelope shapes the tone gain: a short linear attack, then a linear decay
// to silence so consecutive sweeps never click.
func envelope(t float64) float64 {
	const attack = 0.12
	if t < attack {
		return t / attack
	}
	return (1 - t) / (1 - attack)
}
