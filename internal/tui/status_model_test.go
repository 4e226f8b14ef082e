package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rshade/retrograde/internal/retrograde"
)

type stubFetcher struct {
	resp  retrograde.Response
	err   error
	block bool
}

func (f stubFetcher) Fetch(ctx context.Context, _ string) (retrograde.Response, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.resp, f.err
}

func fixedNow() time.Time {
	return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.Local)
}

func newTestModel(t *testing.T, fetcher retrograde.Fetcher, decorations bool) StatusModel {
	t.Helper()
	controller := retrograde.NewController(fetcher, retrograde.WithDateProvider(fixedNow))
	m := NewStatusModel(context.Background(), controller, StatusModelOptions{
		Locale:      language.English,
		Decorations: decorations,
		Now:         fixedNow,
		StarSeed:    42,
	})
	t.Cleanup(m.Teardown)
	return m
}

// runStart executes the start command produced by Init and returns its message.
func runStart(t *testing.T, m StatusModel) tea.Msg {
	t.Helper()
	msgCh := make(chan tea.Msg, 1)
	go func() { msgCh <- m.startStatus()() }()
	select {
	case msg := <-msgCh:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("start command did not return")
		return nil
	}
}

func TestStatusModel_InitialView(t *testing.T) {
	m := newTestModel(t, stubFetcher{block: true}, false)

	assert.IsType(t, retrograde.Loading{}, m.State())
	view := m.View()
	assert.Contains(t, view, "TODAY")
	assert.Contains(t, view, "•••")
	assert.Contains(t, view, "q to quit")
	assert.NotNil(t, m.Init())
}

func TestStatusModel_ResolvedYes(t *testing.T) {
	m := newTestModel(t, stubFetcher{resp: retrograde.Response{
		"is_retrograde": true,
		"sign":          "Pisces",
		"retrograde":    map[string]any{"starts": "2024-02-28", "ends": "2024-03-15"},
	}}, false)

	msg := runStart(t, m)
	require.IsType(t, statusSettledMsg{}, msg)

	updated, cmd := m.Update(msg)
	assert.NotNil(t, cmd, "headline change should restart the spring")
	sm := updated.(StatusModel)

	resolved, ok := sm.State().(retrograde.Resolved)
	require.True(t, ok)
	assert.Equal(t, retrograde.Bool(true), resolved.Retrograde)

	// Let the headline settle so letters are not spaced apart.
	for range 200 {
		sm.headline.Step(springInterval)
	}
	view := sm.View()
	assert.Contains(t, view, "YES")
	assert.Contains(t, view, "Mercury in Pisces")
	assert.Contains(t, view, "BEGAN")
	assert.Contains(t, view, "Feb 28, 2024")
	assert.Contains(t, view, "Mar 15, 2024")
}

func TestStatusModel_Failed(t *testing.T) {
	m := newTestModel(t, stubFetcher{err: errors.New("dial tcp: no route to host")}, false)

	updated, _ := m.Update(runStart(t, m))
	sm := updated.(StatusModel)

	require.IsType(t, retrograde.Failed{}, sm.State())
	assert.Contains(t, sm.View(), "no route to host")
}

func TestStatusModel_QuitStopsController(t *testing.T) {
	m := newTestModel(t, stubFetcher{block: true}, true)

	msgCh := make(chan tea.Msg, 1)
	go func() { msgCh <- m.startStatus()() }()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	select {
	case msg := <-msgCh:
		assert.Nil(t, msg, "teardown must not produce a state message")
	case <-time.After(5 * time.Second):
		t.Fatal("start command did not unblock after quit")
	}

	sm := updated.(StatusModel)
	assert.IsType(t, retrograde.Loading{}, sm.State())
	assert.Empty(t, sm.View())
}

func TestStatusModel_IgnoresSecondSettle(t *testing.T) {
	m := newTestModel(t, stubFetcher{block: true}, false)

	first, _ := m.Update(statusSettledMsg{state: retrograde.Resolved{Retrograde: retrograde.Bool(false)}})
	second, _ := first.Update(statusSettledMsg{state: retrograde.Failed{Message: "late"}})

	assert.IsType(t, retrograde.Resolved{}, second.(StatusModel).State())
}

func TestStatusModel_DecoratedView(t *testing.T) {
	m := newTestModel(t, stubFetcher{block: true}, true)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := updated.(StatusModel).View()

	assert.Contains(t, view, "Copyright © 2024")
	assert.Contains(t, view, "✦ cleanse your cache")
}

func TestStatusModel_DecorationTicks(t *testing.T) {
	m := newTestModel(t, stubFetcher{block: true}, true)

	_, cmd := m.Update(tickerTickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.ticker.frame)

	_, cmd = m.Update(starfieldTickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, starfieldInterval, m.starfield.elapsed)
}

func TestStatusModel_StaleSpringTickDropped(t *testing.T) {
	m := newTestModel(t, stubFetcher{block: true}, false)
	loadingGen := m.headline.Generation()

	updated, cmd := m.Update(statusSettledMsg{state: retrograde.Resolved{Retrograde: retrograde.Bool(true)}})
	require.NotNil(t, cmd)
	sm := updated.(StatusModel)
	require.NotEqual(t, loadingGen, sm.headline.Generation())

	// A tick left over from the loading headline must not advance the new one.
	_, cmd = sm.Update(springTickMsg{gen: loadingGen})
	assert.Nil(t, cmd)
	assert.Equal(t, maxLetterSpacing, sm.headline.Spacing())

	_, cmd = sm.Update(springTickMsg{gen: sm.headline.Generation()})
	assert.NotNil(t, cmd, "the current chain keeps ticking until the spring settles")
}

func TestStatusModel_StartFailureQuits(t *testing.T) {
	m := newTestModel(t, nil, false)

	msg := runStart(t, m)
	require.IsType(t, statusStartFailedMsg{}, msg)

	updated, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	sm := updated.(StatusModel)
	require.ErrorIs(t, sm.StartErr(), retrograde.ErrNilFetcher)
	assert.IsType(t, retrograde.Loading{}, sm.State(), "the view must not report a state the controller never reached")
	assert.IsType(t, retrograde.Loading{}, m.controller.State())
}
