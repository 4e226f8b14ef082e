package tui

import (
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	tickerInterval = 120 * time.Millisecond
	// tickerReverseDelay holds the second row still for this many frames.
	tickerReverseDelay = 40
	chipSeparator      = "   "
)

// tickerPhrases scroll across the bottom of the screen.
//
//nolint:gochecknoglobals // Read-only content.
var tickerPhrases = []string{
	"cleanse your cache",
	"hydrate your aura",
	"back up your feelings",
	"ask your emails for consent",
	"debug your destiny",
	"speak kindly to your browser tabs",
	"update your boundaries",
	"perform a soft reboot of your soul",
	"charge your crystals and your phone",
	"reinstall karma v2.0",
}

// tickerTickMsg advances the marquee.
type tickerTickMsg time.Time

// Ticker is a two-row marquee of advice chips scrolling in opposite
// directions. It owns its own frame counter.
type Ticker struct {
	width   int
	frame   int
	forward []rune
	reverse []rune
}

// NewTicker builds a ticker for the given width.
func NewTicker(width int) *Ticker {
	reversed := slices.Clone(tickerPhrases)
	slices.Reverse(reversed)
	return &Ticker{
		width:   max(width, 1),
		forward: []rune(chipLine(tickerPhrases)),
		reverse: []rune(chipLine(reversed)),
	}
}

func chipLine(phrases []string) string {
	chips := make([]string, len(phrases))
	for i, p := range phrases {
		chips[i] = "✦ " + p
	}
	return strings.Join(chips, chipSeparator) + chipSeparator
}

// SetWidth changes the visible width.
func (t *Ticker) SetWidth(width int) {
	t.width = max(width, 1)
}

// Init starts the marquee clock.
func (t *Ticker) Init() tea.Cmd {
	return tickerTick()
}

// Update advances the marquee on its own tick.
func (t *Ticker) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tickerTickMsg); !ok {
		return nil
	}
	t.frame++
	return tickerTick()
}

func tickerTick() tea.Cmd {
	return tea.Tick(tickerInterval, func(ts time.Time) tea.Msg { return tickerTickMsg(ts) })
}

// Rows returns the two unstyled marquee rows for the current frame.
func (t *Ticker) Rows() (string, string) {
	top := window(t.forward, t.frame, t.width)

	shift := max(t.frame-tickerReverseDelay, 0)
	// Scrolling right is scrolling left by a negative amount.
	bottom := window(t.reverse, -shift, t.width)
	return top, bottom
}

// View renders both rows.
func (t *Ticker) View() string {
	top, bottom := t.Rows()
	return ChipStyle.Render(top) + "\n" + ChipStyle.Render(bottom)
}

// window returns width runes of the looping line starting at offset.
func window(line []rune, offset, width int) string {
	n := len(line)
	if n == 0 {
		return ""
	}
	start := ((offset % n) + n) % n
	out := make([]rune, width)
	for i := range out {
		out[i] = line[(start+i)%n]
	}
	return string(out)
}
