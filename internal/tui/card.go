package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/retrograde/internal/retrograde"
)

// Layout constants.
const (
	borderPadding    = 2
	boxChrome        = 6 // border + horizontal padding of BoxStyle
	infoCardMinWidth = 18
	infoCardCount    = 3
	infoCardGap      = 1
)

// RenderCard renders a boxed, styled summary of p sized to width.
func RenderCard(p retrograde.Presentation, width int) string {
	return renderCard(p, width, cardExtras{})
}

// cardExtras carries the animated pieces only the interactive model has.
type cardExtras struct {
	headlineSpacing int
	headlineFaint   bool
	spinner         string
}

func renderCard(p retrograde.Presentation, width int, extras cardExtras) string {
	inner := max(width-boxChrome, infoCardMinWidth)
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	var sb strings.Builder

	headline := gradientText(spaceLetters(p.Headline, extras.headlineSpacing), p.Tone)
	if extras.headlineFaint {
		headline = lipgloss.NewStyle().Faint(true).Render(headline)
	}
	sb.WriteString(center.Render(headline))
	sb.WriteString("\n\n")
	sb.WriteString(center.Render(p.Subtext))
	sb.WriteString("\n\n")
	sb.WriteString(MutedStyle.Render(strings.Repeat("─", inner)))
	sb.WriteString("\n\n")
	sb.WriteString(renderInfoCards(p, inner))

	if extras.spinner != "" {
		sb.WriteString("\n\n")
		sb.WriteString(center.Render(extras.spinner))
	}
	if p.ErrorDetail != "" {
		sb.WriteString("\n\n")
		sb.WriteString(center.Render(ErrorStyle.Render("Error: " + p.ErrorDetail)))
	}

	return BoxStyle.Width(width - borderPadding).Render(sb.String())
}

// renderInfoCards lays the three date cards side by side, or stacked when
// the terminal is too narrow.
func renderInfoCards(p retrograde.Presentation, width int) string {
	fields := []retrograde.DateField{p.Today, p.PeriodStart, p.PeriodEnd}

	cardWidth := (width - infoCardGap*(infoCardCount-1)) / infoCardCount
	stacked := cardWidth < infoCardMinWidth
	if stacked {
		cardWidth = width
	}

	cards := make([]string, 0, len(fields))
	for _, f := range fields {
		cards = append(cards, renderInfoCard(f, cardWidth-borderPadding))
	}

	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	gap := strings.Repeat(" ", infoCardGap)
	joined := make([]string, 0, len(cards)*2-1)
	for i, c := range cards {
		if i > 0 {
			joined = append(joined, gap)
		}
		joined = append(joined, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...)
}

func renderInfoCard(f retrograde.DateField, width int) string {
	content := LabelStyle.Render(strings.ToUpper(f.Label)) + "\n" +
		ValueStyle.Render(f.Value) + "\n" +
		MutedStyle.Render(f.Note)
	return InfoCardStyle.Width(width).Render(content)
}

// spaceLetters inserts n spaces between runes.
func spaceLetters(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	gap := strings.Repeat(" ", n)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, gap)
}

// RenderPlain renders p as unstyled text.
func RenderPlain(p retrograde.Presentation) string {
	var sb strings.Builder
	sb.WriteString(p.Headline)
	sb.WriteString("\n")
	sb.WriteString(p.Subtext)
	sb.WriteString("\n\n")
	for _, f := range []retrograde.DateField{p.Today, p.PeriodStart, p.PeriodEnd} {
		sb.WriteString(f.Label)
		sb.WriteString(": ")
		sb.WriteString(f.Value)
		sb.WriteString(" (")
		sb.WriteString(f.Note)
		sb.WriteString(")\n")
	}
	if p.ErrorDetail != "" {
		sb.WriteString("Error: ")
		sb.WriteString(p.ErrorDetail)
		sb.WriteString("\n")
	}
	return sb.String()
}
