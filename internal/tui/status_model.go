package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/rshade/retrograde/internal/logging"
	"github.com/rshade/retrograde/internal/retrograde"
)

// Default dimensions until the first WindowSizeMsg arrives.
const (
	defaultWidth     = 80
	defaultHeight    = 24
	starfieldHeight  = 5
	maxContentWidth  = 100
	minContentWidth  = 30
	defaultStarSeed  = 1
	keyQuit          = "q"
	keyEsc           = "esc"
	keyCtrlC         = "ctrl+c"
	footerTopPadding = "\n"
)

// statusSettledMsg carries the controller's terminal state into the model.
type statusSettledMsg struct {
	state retrograde.State
}

// statusStartFailedMsg reports that the controller refused to start.
type statusStartFailedMsg struct {
	err error
}

// StatusModelOptions configures a StatusModel.
type StatusModelOptions struct {
	Locale      language.Tag
	Decorations bool
	// Now supplies the footer year; defaults to the system clock.
	Now retrograde.DateProvider
	// StarSeed fixes the starfield layout; zero uses a default seed.
	StarSeed uint64
}

// StatusModel is the Bubble Tea model for the retrograde screen. It mounts one
// controller: Init starts it and quitting stops it.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type StatusModel struct {
	ctx        context.Context
	cancel     context.CancelFunc
	controller *retrograde.Controller

	state  retrograde.State
	locale language.Tag
	now    retrograde.DateProvider

	decorations bool
	loading     *LoadingState
	starfield   *Starfield
	ticker      *Ticker
	headline    *headlineSpring

	width    int
	height   int
	quitting bool
	startErr error
}

// NewStatusModel creates the model around controller. The controller must not
// have been started.
func NewStatusModel(ctx context.Context, controller *retrograde.Controller, opts StatusModelOptions) StatusModel {
	ctx, cancel := context.WithCancel(ctx)

	now := opts.Now
	if now == nil {
		now = retrograde.SystemDate
	}
	seed := opts.StarSeed
	if seed == 0 {
		seed = defaultStarSeed
	}

	m := StatusModel{
		ctx:         ctx,
		cancel:      cancel,
		controller:  controller,
		state:       retrograde.Loading{},
		locale:      opts.Locale,
		now:         now,
		decorations: opts.Decorations,
		loading:     NewLoadingState(),
		headline:    &headlineSpring{},
		width:       defaultWidth,
		height:      defaultHeight,
	}
	if m.decorations {
		m.starfield = NewStarfield(defaultWidth, starfieldHeight, seed)
		m.ticker = NewTicker(defaultWidth)
	}
	m.headline.Reset(m.presentation().Headline)
	return m
}

// Init starts the status request and every animation clock.
func (m StatusModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.startStatus(), m.loading.Init(), springTick(m.headline.Generation())}
	if m.decorations {
		cmds = append(cmds, m.starfield.Init(), m.ticker.Init())
	}
	return tea.Batch(cmds...)
}

// startStatus starts the controller and waits for its terminal transition.
// The wait ends silently when the model is torn down first. A controller that
// refuses to start never leaves Loading, so the program quits and StartErr
// reports why instead of the view inventing a Failed state.
func (m StatusModel) startStatus() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		if err := controller.Start(ctx); err != nil {
			logger := logging.FromContext(ctx)
			logger.Error().Err(err).Msg("could not start status request")
			return statusStartFailedMsg{err: err}
		}
		select {
		case <-controller.Done():
			return statusSettledMsg{state: controller.State()}
		case <-ctx.Done():
			return nil
		}
	}
}

// Update handles messages and updates the model state.
func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case keyQuit, keyEsc, keyCtrlC:
			m.Teardown()
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case statusStartFailedMsg:
		m.Teardown()
		m.quitting = true
		m.startErr = msg.err
		return m, tea.Quit

	case statusSettledMsg:
		if m.quitting || retrograde.IsTerminal(m.state) {
			return m, nil
		}
		m.state = msg.state
		if m.headline.Reset(m.presentation().Headline) {
			return m, springTick(m.headline.Generation())
		}
		return m, nil

	case springTickMsg:
		if msg.gen != m.headline.Generation() {
			return m, nil
		}
		m.headline.Step(springInterval)
		if m.headline.Settled() {
			return m, nil
		}
		return m, springTick(msg.gen)

	case starfieldTickMsg:
		if m.starfield == nil {
			return m, nil
		}
		return m, m.starfield.Update(msg)

	case tickerTickMsg:
		if m.ticker == nil {
			return m, nil
		}
		return m, m.ticker.Update(msg)
	}

	if _, loading := m.state.(retrograde.Loading); loading {
		return m, m.loading.Update(msg)
	}
	return m, nil
}

// Teardown stops the controller and releases the model context. It is safe
// to call more than once.
func (m StatusModel) Teardown() {
	m.controller.Stop()
	m.cancel()
}

func (m *StatusModel) resize(width, height int) {
	m.width = width
	m.height = height
	if m.starfield != nil {
		m.starfield.Resize(m.contentWidth(), starfieldHeight)
	}
	if m.ticker != nil {
		m.ticker.SetWidth(width)
	}
}

func (m StatusModel) contentWidth() int {
	return max(min(m.width, maxContentWidth), minContentWidth)
}

func (m StatusModel) presentation() retrograde.Presentation {
	return retrograde.DerivePresentation(m.state, m.locale)
}

// StartErr returns the error that kept the controller from starting, if any.
func (m StatusModel) StartErr() error {
	return m.startErr
}

// State returns the state currently shown.
func (m StatusModel) State() retrograde.State {
	return m.state
}

// View renders the screen.
func (m StatusModel) View() string {
	if m.quitting {
		return ""
	}

	extras := cardExtras{
		headlineSpacing: m.headline.Spacing(),
		headlineFaint:   m.headline.Faint(),
	}
	if _, loading := m.state.(retrograde.Loading); loading {
		extras.spinner = RenderLoading(m.loading)
	}
	card := renderCard(m.presentation(), m.contentWidth(), extras)

	var sb strings.Builder
	if m.decorations {
		sb.WriteString(RenderHero(m.width))
		sb.WriteString("\n")
		sb.WriteString(m.starfield.View())
		sb.WriteString("\n")
	}
	sb.WriteString(card)
	sb.WriteString("\n")
	if m.decorations {
		sb.WriteString(m.ticker.View())
		sb.WriteString("\n")
		sb.WriteString(footerTopPadding)
		sb.WriteString(RenderFooter(m.width, m.now().Year()))
		sb.WriteString("\n")
	}
	sb.WriteString(MutedStyle.Render("q to quit"))
	return sb.String()
}
