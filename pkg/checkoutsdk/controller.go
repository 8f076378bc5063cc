package checkoutsdk

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// DefaultCurrency is applied when the create form leaves currency blank.
const DefaultCurrency = "INR"

// Controller owns a single checkout session: the five-state lifecycle, the
// bearer token, and the expiry clock. One controller drives one payment
// attempt at a time; Reset discards the session for a fresh attempt.
//
// Network-backed operations are attempted at most once per call and guarded
// against duplicate in-flight invocations. State never advances on failure,
// so the caller may retry the same operation.
type Controller struct {
	client *Client
	logger *slog.Logger

	mu       sync.Mutex
	session  CheckoutSession
	clock    *ExpiryClock
	inflight map[string]bool

	// gen is bumped by Reset. An in-flight result whose generation no longer
	// matches is dropped instead of being applied to the new session.
	gen uint64

	// frozen is set by the expiry signal and blocks further submits.
	frozen bool
}

// NewController creates a controller in the idle state. logger may be nil, in
// which case slog.Default is used.
func NewController(client *Client, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Controller{
		client:   client,
		logger:   logger,
		inflight: make(map[string]bool),
	}
	c.clock = c.newClockLocked()
	return c
}

// Session returns a copy of the current session for rendering. The copy is
// detached: mutating it has no effect on the controller.
func (c *Controller) Session() CheckoutSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Remaining reports the time left on the session deadline, zero when no
// deadline is tracked or it has passed.
func (c *Controller) Remaining() time.Duration {
	c.mu.Lock()
	clock := c.clock
	c.mu.Unlock()
	return clock.Remaining()
}

// OnTick registers a countdown callback on the expiry clock. Must be called
// before LoadInfo starts the clock.
func (c *Controller) OnTick(fn func(remaining time.Duration)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock.OnTick(fn)
}

// SelectMethod marks one of the last resolved options as the active payment
// method. Purely local; no network call. Reselecting while MethodSelected is
// allowed, moving past that is not.
func (c *Controller) SelectMethod(code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.State != StateInfoLoaded && c.session.State != StateMethodSelected {
		return fmt.Errorf("select method in state %s: %w", c.session.State, ErrInvalidState)
	}

	if !c.hasOptionLocked(code) {
		return fmt.Errorf("method %q not in resolved options: %w", code, ErrInvalidSelection)
	}

	c.session.SelectedMethod = code
	c.session.State = StateMethodSelected
	c.logger.Debug("payment method selected",
		"checkout_id", c.session.CheckoutID,
		"method", code,
	)
	return nil
}

// Back regresses the session exactly one state. Only the selection and
// submission steps can be walked back; a session never re-enters Created
// once a checkout identifier exists, and Confirmed is terminal.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.session.State {
	case StateMethodSelected:
		c.session.SelectedMethod = ""
		c.session.State = StateInfoLoaded
		return nil
	case StateSubmitted:
		c.session.Transaction = nil
		c.session.Payload = nil
		c.session.State = StateMethodSelected
		return nil
	default:
		return fmt.Errorf("back from state %s: %w", c.session.State, ErrInvalidState)
	}
}

// Reset discards the session and returns the controller to the idle state.
// Always available, idempotent. Any in-flight operation result is dropped and
// no residual expiry tick fires into the new session.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock.Stop()
	c.gen++
	c.session = CheckoutSession{State: StateIdle}
	c.inflight = make(map[string]bool)
	c.frozen = false
	c.clock = c.newClockLocked()
}

// ============================================================================
// internals
// ============================================================================

// beginOp registers a network operation as in flight. Caller must hold c.mu.
// The returned generation must be passed to the matching apply step so a
// post-Reset result is dropped.
func (c *Controller) beginOp(op string) (uint64, error) {
	if c.inflight[op] {
		return 0, fmt.Errorf("%s: %w", op, ErrSessionBusy)
	}
	c.inflight[op] = true
	return c.gen, nil
}

// endOp clears the in-flight flag for op. Safe after a Reset: the flag map
// was replaced, so the delete is a no-op.
func (c *Controller) endOp(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, op)
}

// staleErr is returned when an operation completed after the session it
// belonged to was reset.
func staleErr(op string) error {
	return fmt.Errorf("%s: session was reset mid-flight: %w", op, ErrInvalidState)
}

func (c *Controller) hasOptionLocked(code string) bool {
	for _, opt := range c.session.Options {
		if opt.Code == code {
			return true
		}
	}
	return false
}

func (c *Controller) snapshotLocked() CheckoutSession {
	snap := c.session

	if len(c.session.Options) > 0 {
		snap.Options = make([]PaymentMethodOption, len(c.session.Options))
		copy(snap.Options, c.session.Options)
	}

	if c.session.Transaction != nil {
		tx := *c.session.Transaction
		tx.Links = cloneLinks(tx.Links)
		snap.Transaction = &tx
	}

	if c.session.Payload != nil {
		snap.Payload = clonePayload(c.session.Payload)
	}

	return snap
}

// newClockLocked builds an expiry clock bound to the current generation so a
// stale clock can never freeze a newer session.
func (c *Controller) newClockLocked() *ExpiryClock {
	gen := c.gen
	return NewExpiryClock(func() { c.expire(gen) })
}

// expire is the clock's expiration signal. It freezes further submits; it
// never mutates the session state itself.
func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return
	}

	c.frozen = true
	if c.session.State < StateSubmitted {
		c.logger.Warn("checkout session expired before submission",
			"checkout_id", c.session.CheckoutID,
			"state", c.session.State.String(),
		)
	}
}
