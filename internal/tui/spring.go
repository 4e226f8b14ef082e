package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Headline pop-in spring parameters.
const (
	springInterval  = time.Second / 30
	springStiffness = 120.0
	springDamping   = 12.0
	springRest      = 0.002
	// maxLetterSpacing is the spacing of a fully collapsed headline.
	maxLetterSpacing = 3
	faintBelow       = 0.9
)

// springTickMsg advances the headline animation. Ticks whose gen no longer
// matches the spring belong to a superseded chain and are dropped.
type springTickMsg struct {
	gen int
}

// headlineSpring animates the headline from collapsed (0) to settled (1)
// each time its key changes.
type headlineSpring struct {
	key      string
	gen      int
	pos, vel float64
	settled  bool
}

// Reset restarts the animation when key differs from the current one.
// It reports whether a restart happened.
func (h *headlineSpring) Reset(key string) bool {
	if h.key == key {
		return false
	}
	h.key = key
	h.gen++
	h.pos, h.vel = 0, 0
	h.settled = false
	return true
}

// Step integrates one frame of a damped spring toward 1.
func (h *headlineSpring) Step(dt time.Duration) {
	if h.settled {
		return
	}
	secs := dt.Seconds()
	accel := -springStiffness*(h.pos-1) - springDamping*h.vel
	h.vel += accel * secs
	h.pos += h.vel * secs
	if math.Abs(h.pos-1) < springRest && math.Abs(h.vel) < springRest {
		h.pos, h.vel = 1, 0
		h.settled = true
	}
}

// Settled reports whether the headline has come to rest.
func (h *headlineSpring) Settled() bool {
	return h.settled
}

// Spacing maps the spring position to extra letter spacing.
func (h *headlineSpring) Spacing() int {
	spread := math.Round((1 - math.Min(h.pos, 1)) * maxLetterSpacing)
	return int(math.Max(spread, 0))
}

// Faint reports whether the headline is still fading in.
func (h *headlineSpring) Faint() bool {
	return h.pos < faintBelow
}

// Generation returns the id of the current animation chain.
func (h *headlineSpring) Generation() int {
	return h.gen
}

func springTick(gen int) tea.Cmd {
	return tea.Tick(springInterval, func(time.Time) tea.Msg { return springTickMsg{gen: gen} })
}
