package checkoutsdk

import (
	"sync"
	"time"
)

// defaultTickInterval is how often the clock recomputes remaining time.
const defaultTickInterval = time.Second

// ExpiryClock converts an absolute session deadline into a live countdown and
// raises exactly one expiration signal. Each tick recomputes remaining time
// from the wall clock against the stored deadline rather than decrementing a
// counter, so the countdown stays correct across process suspension.
//
// The clock never touches session state itself; it only invokes the callbacks
// it was constructed with. Starting a running clock restarts it from the new
// deadline. Stop is idempotent, and no tick or expiry callback fires after
// Stop returns once the running goroutine has observed it.
type ExpiryClock struct {
	mu       sync.Mutex
	deadline time.Time
	stop     chan struct{}
	fired    bool

	// interval is overridable in tests; defaults to one second.
	interval time.Duration

	onExpire func()
	onTick   func(remaining time.Duration)
}

// NewExpiryClock creates a stopped clock. onExpire is invoked exactly once
// when the deadline passes; it may be nil.
func NewExpiryClock(onExpire func()) *ExpiryClock {
	return &ExpiryClock{
		interval: defaultTickInterval,
		onExpire: onExpire,
	}
}

// OnTick registers a per-tick callback reporting the remaining duration, for
// rendering a countdown. Must be called before Start.
func (c *ExpiryClock) OnTick(fn func(remaining time.Duration)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTick = fn
}

// Start begins ticking towards deadline. A clock that is already running is
// restarted from the new deadline; a clock that already fired is re-armed.
func (c *ExpiryClock) Start(deadline time.Time) {
	c.mu.Lock()
	if c.stop != nil {
		close(c.stop)
	}
	stop := make(chan struct{})
	c.stop = stop
	c.deadline = deadline
	c.fired = false
	interval := c.interval
	c.mu.Unlock()

	go c.run(stop, interval)
}

// Stop cancels the countdown. Safe to call at any time, any number of times.
// The deadline is retained so Expired keeps answering correctly.
func (c *ExpiryClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

// Expired reports whether the deadline has passed. It answers from the wall
// clock, not just the fired flag, so a deadline that lapsed between ticks is
// still reported as expired.
func (c *ExpiryClock) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fired {
		return true
	}
	return !c.deadline.IsZero() && !time.Now().Before(c.deadline)
}

// Remaining returns the time left until the deadline, zero once it has
// passed or when no deadline is set.
func (c *ExpiryClock) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deadline.IsZero() {
		return 0
	}
	remaining := time.Until(c.deadline)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c *ExpiryClock) run(stop chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			emit, alive := c.evaluate(stop, now)
			if emit != nil {
				emit()
			}
			if !alive {
				return
			}
		}
	}
}

// evaluate decides, under the lock, what this tick does: report remaining
// time, fire the expiry signal, or nothing. alive is false once this
// goroutine should exit, either because it was superseded by a restart or
// Stop, or because the deadline just fired.
func (c *ExpiryClock) evaluate(stop chan struct{}, now time.Time) (emit func(), alive bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != stop || c.fired {
		return nil, false
	}

	remaining := c.deadline.Sub(now)
	if remaining > 0 {
		if fn := c.onTick; fn != nil {
			return func() { fn(remaining) }, true
		}
		return nil, true
	}

	c.fired = true
	c.stop = nil
	return c.onExpire, false
}
