package retrograde

import (
	"context"
	"errors"
	"sync"

	"github.com/rshade/retrograde/internal/logging"
)

// Controller owns the status request of one mount. It starts in Loading,
// moves to Failed or Resolved exactly once, and never changes state after Stop.
type Controller struct {
	fetcher  Fetcher
	now      DateProvider
	onChange func(Snapshot)

	mu      sync.Mutex
	state   State
	date    string
	started bool
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// Option configures a Controller.
type Option func(*Controller)

// WithDateProvider overrides the clock used to derive the request date.
func WithDateProvider(p DateProvider) Option {
	return func(c *Controller) {
		if p != nil {
			c.now = p
		}
	}
}

// WithOnChange registers a callback invoked once, after the terminal transition.
// It runs on the request goroutine.
func WithOnChange(fn func(Snapshot)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// NewController creates a controller in the Loading state.
func NewController(fetcher Fetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		now:     SystemDate,
		state:   Loading{},
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start issues the single status request in the background and returns
// immediately. The request is bound to ctx and to Stop; cancellation by
// either produces no state transition.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return ErrAlreadyStarted
	}
	if c.fetcher == nil {
		return ErrNilFetcher
	}
	c.started = true
	if c.stopped {
		return nil
	}

	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.date = RequestDate(c.now())

	go c.run(reqCtx, c.date)
	return nil
}

func (c *Controller) run(ctx context.Context, date string) {
	logger := logging.FromContext(ctx)
	defer c.releaseRequest()

	resp, err := c.fetcher.Fetch(ctx, date)

	var next State
	switch {
	case err != nil && errors.Is(ctx.Err(), context.Canceled):
		logger.Debug().Str("date", date).Msg("status request cancelled")
		return
	case err != nil:
		logger.Warn().Err(err).Str("date", date).Msg("status request failed")
		next = Failed{Message: failureMessage(err)}
	default:
		resolved := Normalize(resp, date)
		logger.Debug().
			Str("date", date).
			Interface("retrograde", resolved.Retrograde).
			Str("sign", resolved.Meta.Sign).
			Msg("status resolved")
		next = resolved
	}

	if !c.settle(next) {
		logger.Debug().Str("date", date).Msg("dropping late status after stop")
		return
	}
	if c.onChange != nil {
		c.onChange(SnapshotOf(next))
	}
}

// settle applies the terminal transition unless the controller was stopped.
func (c *Controller) settle(next State) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped || IsTerminal(c.state) {
		return false
	}
	c.state = next
	close(c.done)
	return true
}

// releaseRequest frees the request context once the goroutine finishes.
func (c *Controller) releaseRequest() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
}

// Stop tears the mount down: the in-flight request is cancelled and any
// late result is discarded. Stop is idempotent.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	c.stopped = true
	if c.cancel != nil {
		c.cancel()
	}
}

// State returns the current request state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the presentation view of the current state.
func (c *Controller) Snapshot() Snapshot {
	return SnapshotOf(c.State())
}

// RequestDate returns the date sent with the request, or "" before Start.
func (c *Controller) RequestDate() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.date
}

// Done is closed once the terminal transition has been applied. It is never
// closed for a mount that was stopped before settling.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}
