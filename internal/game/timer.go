package game

import (
	"sync/atomic"
	"time"
)

// Countdown drives the per-question clock. A background goroutine decrements
// the shared remaining-seconds value once per interval; the session reads it
// and writes the paused/canceled flags. No field has two writers, except that
// Grant adds time while ticking is suspended for the pause window.
type Countdown struct {
	interval  time.Duration
	remaining atomic.Int64
	paused    atomic.Bool

	cancel chan struct{}
	done   chan struct{}
}

// NewCountdown builds a timer ticking at interval (1s when zero; tests use
// shorter ticks).
func NewCountdown(interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{interval: interval}
}

// Start resets the clock to seconds and launches the tick goroutine. Any
// previous goroutine is canceled and joined first, so only one ever
// decrements the counter.
func (c *Countdown) Start(seconds int) {
	c.Cancel()
	c.remaining.Store(int64(seconds))
	c.paused.Store(false)
	c.cancel = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(c.cancel, c.done)
}

func (c *Countdown) run(cancel <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			if c.paused.Load() {
				continue
			}
			if c.remaining.Load() <= 0 {
				// Expired. The session polls Remaining and treats 0 as
				// expiry, but a pause grant may still add time back, so
				// keep waiting instead of exiting.
				continue
			}
			c.remaining.Add(-1)
		}
	}
}

// Pause suspends ticking without stopping the goroutine.
func (c *Countdown) Pause() { c.paused.Store(true) }

// Resume reverses Pause.
func (c *Countdown) Resume() { c.paused.Store(false) }

// Grant adds seconds to the remaining budget. Only called while paused.
func (c *Countdown) Grant(seconds int) { c.remaining.Add(int64(seconds)) }

// Remaining reports the seconds left, clamped at zero.
func (c *Countdown) Remaining() int {
	if v := c.remaining.Load(); v > 0 {
		return int(v)
	}
	return 0
}

// Cancel stops the tick goroutine and waits for it to exit. Safe to call
// repeatedly and before Start.
func (c *Countdown) Cancel() {
	if c.cancel == nil {
		return
	}
	select {
	case <-c.cancel:
	default:
		close(c.cancel)
	}
	<-c.done
	c.cancel = nil
	c.done = nil
}
