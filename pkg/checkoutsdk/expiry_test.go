package checkoutsdk

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Expiry tests run with a shortened tick interval so they finish in
// milliseconds while asserting the same once-only semantics.

func TestExpiryFiresExactlyOnce(t *testing.T) {
	t.Parallel()

	var fires atomic.Int32
	fired := make(chan time.Time, 4)

	clock := NewExpiryClock(func() {
		fires.Add(1)
		fired <- time.Now()
	})
	clock.interval = 20 * time.Millisecond

	var ticksAfterFire atomic.Int32
	clock.OnTick(func(time.Duration) {
		if fires.Load() > 0 {
			ticksAfterFire.Add(1)
		}
	})

	start := time.Now()
	clock.Start(start.Add(200 * time.Millisecond))

	select {
	case at := <-fired:
		elapsed := at.Sub(start)
		require.GreaterOrEqual(t, elapsed, 150*time.Millisecond)
		require.LessOrEqual(t, elapsed, 400*time.Millisecond)
	case <-time.After(2 * time.Second):
		t.Fatal("expiration signal never fired")
	}

	// Give any stray goroutine time to misbehave
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int32(1), fires.Load())
	require.Equal(t, int32(0), ticksAfterFire.Load())
	require.True(t, clock.Expired())
}

func TestExpiryStopPreventsFiring(t *testing.T) {
	t.Parallel()

	var fires atomic.Int32
	clock := NewExpiryClock(func() { fires.Add(1) })
	clock.interval = 10 * time.Millisecond

	clock.Start(time.Now().Add(60 * time.Millisecond))
	time.Sleep(20 * time.Millisecond)
	clock.Stop()
	clock.Stop() // idempotent

	time.Sleep(150 * time.Millisecond)
	require.Equal(t, int32(0), fires.Load())
}

func TestExpiryRestartUsesNewDeadline(t *testing.T) {
	t.Parallel()

	var fires atomic.Int32
	clock := NewExpiryClock(func() { fires.Add(1) })
	clock.interval = 10 * time.Millisecond

	clock.Start(time.Now().Add(40 * time.Millisecond))
	clock.Start(time.Now().Add(5 * time.Second)) // reload pushed the deadline out

	time.Sleep(150 * time.Millisecond)
	require.Equal(t, int32(0), fires.Load())
	require.False(t, clock.Expired())
	require.Positive(t, clock.Remaining())

	clock.Stop()
}

func TestExpiredAnswersFromWallClockBetweenTicks(t *testing.T) {
	t.Parallel()

	// A deadline that lapses between ticks must still read as expired; the
	// submit guard cannot wait for the next tick.
	clock := NewExpiryClock(nil)
	clock.interval = time.Hour

	clock.Start(time.Now().Add(10 * time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	require.True(t, clock.Expired())
	require.Zero(t, clock.Remaining())
	clock.Stop()
}

func TestExpiryTickReportsRemaining(t *testing.T) {
	t.Parallel()

	remainings := make(chan time.Duration, 16)
	clock := NewExpiryClock(nil)
	clock.interval = 10 * time.Millisecond
	clock.OnTick(func(remaining time.Duration) {
		select {
		case remainings <- remaining:
		default:
		}
	})

	deadline := time.Now().Add(500 * time.Millisecond)
	clock.Start(deadline)
	defer clock.Stop()

	select {
	case remaining := <-remainings:
		require.Positive(t, remaining)
		require.LessOrEqual(t, remaining, 500*time.Millisecond)
	case <-time.After(2 * time.Second):
		t.Fatal("no tick observed")
	}
}

func TestRemainingZeroWithoutDeadline(t *testing.T) {
	t.Parallel()

	clock := NewExpiryClock(nil)
	require.Zero(t, clock.Remaining())
	require.False(t, clock.Expired())
}
