package tui

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Starfield tuning.
const (
	starfieldInterval  = 80 * time.Millisecond
	starfieldMaxStars  = 220
	starfieldCellsPer  = 16 // one star per this many cells
	starfieldMinHeight = 3

	baseBrightness = 0.6
	twinkleRange   = 0.6
	twinkleFloor   = 0.1
	twinkleSpeed   = 0.002
	driftRange     = 0.6
	driftSpeedX    = 0.0007
	driftSpeedY    = 0.0006
)

// starfieldTickMsg advances the starfield animation.
type starfieldTickMsg time.Time

// star is one twinkling point. Coordinates are in terminal cells.
type star struct {
	x, y    float64
	twinkle float64 // amplitude of the brightness oscillation
	offset  float64 // phase offset
	drift   float64 // jitter amplitude in cells
}

// Starfield is a self-contained twinkling background band. It owns its stars
// and its animation clock and takes no input from the status controller.
type Starfield struct {
	width, height int
	elapsed       time.Duration
	stars         []star
	rng           *rand.Rand
}

// NewStarfield returns a starfield of the given size. The seed makes layouts
// reproducible in tests.
func NewStarfield(width, height int, seed uint64) *Starfield {
	s := &Starfield{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	s.Resize(width, height)
	return s
}

// Resize reseeds the stars for a new area.
func (s *Starfield) Resize(width, height int) {
	s.width = max(width, 1)
	s.height = max(height, starfieldMinHeight)

	count := min(starfieldMaxStars, s.width*s.height/starfieldCellsPer)
	s.stars = make([]star, count)
	for i := range s.stars {
		s.stars[i] = star{
			x:       s.rng.Float64() * float64(s.width),
			y:       s.rng.Float64() * float64(s.height),
			twinkle: s.rng.Float64()*twinkleRange + twinkleFloor,
			offset:  s.rng.Float64() * 2 * math.Pi,
			drift:   (s.rng.Float64() - 0.5) * driftRange,
		}
	}
}

// StarCount returns the number of stars currently in the field.
func (s *Starfield) StarCount() int {
	return len(s.stars)
}

// Init starts the animation clock.
func (s *Starfield) Init() tea.Cmd {
	return starfieldTick()
}

// Update advances the animation on its own tick and schedules the next one.
func (s *Starfield) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(starfieldTickMsg); !ok {
		return nil
	}
	s.elapsed += starfieldInterval
	return starfieldTick()
}

func starfieldTick() tea.Cmd {
	return tea.Tick(starfieldInterval, func(t time.Time) tea.Msg { return starfieldTickMsg(t) })
}

// View renders the current frame.
func (s *Starfield) View() string {
	grid := make([][]rune, s.height)
	bright := make([][]bool, s.height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", s.width))
		bright[y] = make([]bool, s.width)
	}

	ms := float64(s.elapsed.Milliseconds())
	for _, st := range s.stars {
		level := baseBrightness + math.Sin(ms*twinkleSpeed+st.offset)*st.twinkle
		jx := math.Sin(ms*driftSpeedX+st.offset) * st.drift
		jy := math.Cos(ms*driftSpeedY+st.offset) * st.drift
		x := clampCell(int(st.x+jx), s.width)
		y := clampCell(int(st.y+jy), s.height)

		glyph := starGlyph(level)
		if glyph == ' ' {
			continue
		}
		grid[y][x] = glyph
		bright[y][x] = level > 0.75 //nolint:mnd // Brightness threshold.
	}

	brightStyle := lipgloss.NewStyle().Foreground(ColorStar)
	dimStyle := lipgloss.NewStyle().Foreground(ColorStarDim)

	lines := make([]string, s.height)
	for y, row := range grid {
		var sb strings.Builder
		for x, r := range row {
			switch {
			case r == ' ':
				sb.WriteRune(r)
			case bright[y][x]:
				sb.WriteString(brightStyle.Render(string(r)))
			default:
				sb.WriteString(dimStyle.Render(string(r)))
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// starGlyph maps a brightness level to a glyph.
func starGlyph(level float64) rune {
	switch {
	case level > 0.95: //nolint:mnd // Brightness band.
		return '✦'
	case level > 0.7: //nolint:mnd // Brightness band.
		return '*'
	case level > 0.35: //nolint:mnd // Brightness band.
		return '·'
	default:
		return ' '
	}
}

func clampCell(v, size int) int {
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}
