package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/retrograde/internal/retrograde"
)

// Color palette.
const (
	ColorHeader  = lipgloss.Color("213") // fuchsia
	ColorBorder  = lipgloss.Color("99")  // indigo
	ColorLabel   = lipgloss.Color("245")
	ColorValue   = lipgloss.Color("255")
	ColorMuted   = lipgloss.Color("241")
	ColorError   = lipgloss.Color("217") // rose
	ColorStar    = lipgloss.Color("231")
	ColorStarDim = lipgloss.Color("238")
	ColorChip    = lipgloss.Color("153")
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2) //nolint:mnd // Box padding.

	InfoCardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	ChipStyle = lipgloss.NewStyle().Foreground(ColorChip)
)

// tonePalettes holds the three-stop headline gradient for each tone.
//
//nolint:gochecknoglobals // Read-only lookup table.
var tonePalettes = map[retrograde.Tone][3]lipgloss.Color{
	retrograde.ToneConsulting:  {"117", "219", "147"}, // cyan, fuchsia, indigo
	retrograde.ToneUnavailable: {"228", "217", "216"}, // yellow, rose, orange
	retrograde.ToneYes:         {"207", "123", "105"}, // fuchsia, cyan, indigo
	retrograde.ToneNo:          {"121", "115", "117"}, // emerald, teal, sky
}

// gradientText colors s in three equal bands using the tone's palette.
func gradientText(s string, tone retrograde.Tone) string {
	palette, ok := tonePalettes[tone]
	if !ok {
		return HeaderStyle.Render(s)
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}

	var sb strings.Builder
	band := (len(runes) + len(palette) - 1) / len(palette)
	for start := 0; start < len(runes); start += band {
		end := min(start+band, len(runes))
		style := lipgloss.NewStyle().Bold(true).Foreground(palette[start/band])
		sb.WriteString(style.Render(string(runes[start:end])))
	}
	return sb.String()
}
