package retrograde

import (
	"fmt"

	"golang.org/x/text/language"
)

// Headline sentinels, one per presentation branch.
const (
	HeadlineConsulting  = "Consulting the cosmos…"
	HeadlineUnavailable = "The stars ghosted us."
	HeadlineYes         = "YES"
	HeadlineNo          = "NO"
)

const (
	subtextConsulting  = "Buffering your destiny. Please do not close your third eye."
	subtextUnavailable = "Our divination API is having an existential moment. Try again soon."
	subtextYes         = "Hide your texts, back up your vibes, and don't sign anything unless it's a crystal delivery."
	subtextNo          = "Mercury is behaving… suspiciously well. Celebrate by sending one (1) risk-free email."

	placeholderLoading = "•••"
	placeholderUnknown = "Unknown"
	placeholderToday   = "Now-ish"
	noteNoSign         = "Mercury is somewhere shiny"
)

// Tone selects the palette a presentation layer should use for the headline.
type Tone int

const (
	ToneConsulting Tone = iota
	ToneUnavailable
	ToneYes
	ToneNo
)

// String returns the tone name.
func (t Tone) String() string {
	switch t {
	case ToneConsulting:
		return "consulting"
	case ToneUnavailable:
		return "unavailable"
	case ToneYes:
		return "yes"
	case ToneNo:
		return "no"
	default:
		return "unknown"
	}
}

// DateField is one labeled date card.
type DateField struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Note  string `json:"note"`
}

// Presentation is the UI-ready summary of a State.
type Presentation struct {
	Headline         string    `json:"headline"`
	Subtext          string    `json:"subtext"`
	IsRetrogradeTrue bool      `json:"is_retrograde_true"`
	Tone             Tone      `json:"-"`
	Today            DateField `json:"today"`
	PeriodStart      DateField `json:"period_start"`
	PeriodEnd        DateField `json:"period_end"`
	// ErrorDetail holds the raw failure text, empty unless the state is Failed.
	ErrorDetail string `json:"error_detail,omitempty"`
}

// DerivePresentation maps state to its presentation. It is pure: the same
// state and locale always produce the same result.
func DerivePresentation(state State, locale language.Tag) Presentation {
	var p Presentation
	var meta Meta
	retro := false

	switch s := state.(type) {
	case Failed:
		p.Headline = HeadlineUnavailable
		p.Subtext = fmt.Sprintf("%s (%s)", subtextUnavailable, s.Message)
		p.Tone = ToneUnavailable
		p.ErrorDetail = s.Message
	case Resolved:
		meta = s.Meta
		retro = s.Retrograde != nil && *s.Retrograde
		if retro {
			p.Headline = HeadlineYes
			p.Subtext = subtextYes
			p.Tone = ToneYes
		} else {
			p.Headline = HeadlineNo
			p.Subtext = subtextNo
			p.Tone = ToneNo
		}
	default:
		p.Headline = HeadlineConsulting
		p.Subtext = subtextConsulting
		p.Tone = ToneConsulting
	}
	p.IsRetrogradeTrue = retro

	_, loading := state.(Loading)
	p.Today, p.PeriodStart, p.PeriodEnd = deriveDateFields(meta, retro, loading, locale)
	return p
}

// deriveDateFields relabels the period bounds depending on retro. The values
// themselves are always PeriodStart and PeriodEnd.
func deriveDateFields(meta Meta, retro, loading bool, locale language.Tag) (today, start, end DateField) {
	today = DateField{Label: "Today", Value: placeholderToday, Note: noteNoSign}
	if meta.Date != "" {
		today.Value = FormatDateLabel(meta.Date, locale)
	}
	if meta.Sign != "" {
		today.Note = "Mercury in " + meta.Sign
	}

	if retro {
		start = DateField{Label: "Began", Note: "You felt it, admit it."}
		end = DateField{Label: "Ends", Note: "Release the chaos."}
	} else {
		start = DateField{Label: "Next starts", Note: "Brace your inbox."}
		end = DateField{Label: "Last ended", Note: "We survived… barely."}
	}
	start.Value = displayValue(meta.PeriodStart, loading, locale)
	end.Value = displayValue(meta.PeriodEnd, loading, locale)

	if loading {
		today.Value = placeholderLoading
	}
	return today, start, end
}

func displayValue(raw string, loading bool, locale language.Tag) string {
	switch {
	case loading:
		return placeholderLoading
	case raw == "":
		return placeholderUnknown
	default:
		return FormatDateLabel(raw, locale)
	}
}
