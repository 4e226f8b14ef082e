package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	heroTitle    = "IS MERCURY IN RETROGRADE?"
	heroSubtitle = "The only question your inbox needs answered today."
	footerNotice = "Cosmic Customer Support. No refunds for karmic lessons."
)

// RenderHero renders the static banner above the answer card.
func RenderHero(width int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorHeader).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 2) //nolint:mnd // Title padding.

	block := lipgloss.JoinVertical(lipgloss.Center,
		title.Render(spaceLetters(heroTitle, 1)),
		MutedStyle.Italic(true).Render(heroSubtitle),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// RenderFooter renders the copyright line for year.
func RenderFooter(width, year int) string {
	line := MutedStyle.Render(fmt.Sprintf("Copyright © %d %s", year, footerNotice))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}
