package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/harmonica"
)

// celebrationDuration is how long the completion overlay stays up.
const celebrationDuration = 4200 * time.Millisecond

// particleCount is the fixed number of falling glyphs per celebration.
const particleCount = 36

// particleGlyphs are the shape sets a particle cycles through while falling;
// cycling stands in for rotation. Each set is one glyph size/family.
var particleGlyphs = [][]rune{
	{'✦', '✧', '·'},
	{'★', '✶', '☆'},
	{'❋', '✻', '✽'},
	{'◆', '◈', '◇'},
	{'*', '+', '·'},
}

// particle is one falling glyph. Particles are render-only: they touch no
// timer or task state.
type particle struct {
	phys   *harmonica.Projectile
	glyphs []rune
	delay  int // frames until release
	frame  int // frames since release, drives glyph cycling
}

// celebration is the transient completion overlay. It exists only between a
// natural session completion and celebrationDuration later.
type celebration struct {
	startedAt time.Time
	particles []*particle
}

// newCelebration spawns the overlay. Particle placement is randomized but
// purely decorative; reduced motion skips the particles and keeps the
// banner.
func newCelebration(now time.Time, width int, rng *rand.Rand, reducedMotion bool) *celebration {
	c := &celebration{startedAt: now}
	if reducedMotion {
		return c
	}
	if width < 2 {
		width = 2
	}
	for i := 0; i < particleCount; i++ {
		c.particles = append(c.particles, &particle{
			phys: harmonica.NewProjectile(
				harmonica.FPS(frameRate),
				harmonica.Point{X: float64(rng.Intn(width)), Y: 0},
				harmonica.Vector{X: (rng.Float64() - 0.5) * 6, Y: rng.Float64() * 4},
				harmonica.TerminalGravity,
			),
			glyphs: particleGlyphs[rng.Intn(len(particleGlyphs))],
			delay:  rng.Intn(frameRate),
		})
	}
	return c
}

// step advances every released particle one frame and counts down the
// release delays of the rest.
func (c *celebration) step() {
	for _, p := range c.particles {
		if p.delay > 0 {
			p.delay--
			continue
		}
		p.phys.Update()
		p.frame++
	}
}

// expired reports whether the overlay has outlived its fixed duration.
func (c *celebration) expired(now time.Time) bool {
	return now.Sub(c.startedAt) >= celebrationDuration
}

// grid rasterizes the particles into a width×height rune grid.
func (c *celebration) grid(width, height int) [][]rune {
	rows := make([][]rune, height)
	for y := range rows {
		line := make([]rune, width)
		for x := range line {
			line[x] = ' '
		}
		rows[y] = line
	}
	for _, p := range c.particles {
		if p.delay > 0 {
			continue
		}
		pos := p.phys.Position()
		x, y := int(pos.X), int(pos.Y)
		if x < 0 || y < 0 || x >= width || y >= height {
			continue
		}
		rows[y][x] = p.glyphs[(p.frame/3)%len(p.glyphs)]
	}
	return rows
}
