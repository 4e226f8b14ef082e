package retrograde

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestDerivePresentation_Headlines(t *testing.T) {
	tests := []struct {
		name         string
		state        State
		wantHeadline string
		wantTone     Tone
		wantTrue     bool
	}{
		{"loading", Loading{}, HeadlineConsulting, ToneConsulting, false},
		{"failed", Failed{Message: "boom"}, HeadlineUnavailable, ToneUnavailable, false},
		{"resolved true", Resolved{Retrograde: Bool(true)}, HeadlineYes, ToneYes, true},
		{"resolved false", Resolved{Retrograde: Bool(false)}, HeadlineNo, ToneNo, false},
		{"resolved unknown", Resolved{}, HeadlineNo, ToneNo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DerivePresentation(tt.state, language.English)
			assert.Equal(t, tt.wantHeadline, p.Headline)
			assert.Equal(t, tt.wantTone, p.Tone)
			assert.Equal(t, tt.wantTrue, p.IsRetrogradeTrue)
			assert.NotEmpty(t, p.Subtext)
		})
	}
}

func TestDerivePresentation_FailedIncludesMessage(t *testing.T) {
	p := DerivePresentation(Failed{Message: "dial tcp: connection refused"}, language.English)
	assert.Contains(t, p.Subtext, "existential moment")
	assert.Contains(t, p.Subtext, "dial tcp: connection refused")
	assert.Equal(t, "dial tcp: connection refused", p.ErrorDetail)
}

func TestDerivePresentation_LoadingPlaceholders(t *testing.T) {
	p := DerivePresentation(Loading{}, language.English)
	assert.Equal(t, "Today", p.Today.Label)
	assert.Equal(t, "•••", p.Today.Value)
	assert.Equal(t, "•••", p.PeriodStart.Value)
	assert.Equal(t, "•••", p.PeriodEnd.Value)
	assert.Empty(t, p.ErrorDetail)
}

func TestDerivePresentation_NegativeBranchLabels(t *testing.T) {
	state := Resolved{
		Retrograde: Bool(false),
		Meta:       Meta{Date: "2024-03-01", PeriodStart: "2024-01-10", PeriodEnd: "2024-04-01"},
	}

	p := DerivePresentation(state, language.English)

	assert.Equal(t, HeadlineNo, p.Headline)
	assert.Equal(t, "Mar 1, 2024", p.Today.Value)
	assert.Equal(t, "Mercury is somewhere shiny", p.Today.Note)
	assert.Equal(t, "Next starts", p.PeriodStart.Label)
	assert.Equal(t, "Jan 10, 2024", p.PeriodStart.Value)
	assert.Equal(t, "Last ended", p.PeriodEnd.Label)
	assert.Equal(t, "Apr 1, 2024", p.PeriodEnd.Value)
}

func TestDerivePresentation_UnknownUsesNegativeLabels(t *testing.T) {
	p := DerivePresentation(Resolved{Meta: Meta{Sign: "Leo"}}, language.English)

	assert.Equal(t, "Now-ish", p.Today.Value)
	assert.Equal(t, "Mercury in Leo", p.Today.Note)
	assert.Equal(t, "Next starts", p.PeriodStart.Label)
	assert.Equal(t, "Unknown", p.PeriodStart.Value)
	assert.Equal(t, "Unknown", p.PeriodEnd.Value)
}

func TestDerivePresentation_Deterministic(t *testing.T) {
	state := Resolved{Retrograde: Bool(true), Meta: Meta{Date: "2024-03-01", Sign: "Pisces"}}
	assert.Equal(t, DerivePresentation(state, language.English), DerivePresentation(state, language.English))
}

func TestSnapshotOf(t *testing.T) {
	assert.Equal(t, Snapshot{Loading: true}, SnapshotOf(Loading{}))

	failed := SnapshotOf(Failed{Message: "nope"})
	assert.False(t, failed.Loading)
	if assert.NotNil(t, failed.Error) {
		assert.Equal(t, "nope", *failed.Error)
	}
	assert.Nil(t, failed.Meta)
	assert.Nil(t, failed.Retrograde)

	resolved := SnapshotOf(Resolved{Meta: Meta{Sign: "Aries"}})
	assert.Nil(t, resolved.Retrograde)
	assert.Nil(t, resolved.Error)
	if assert.NotNil(t, resolved.Meta) {
		assert.Equal(t, "Aries", resolved.Meta.Sign)
	}
}
