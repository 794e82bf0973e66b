package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testTick = 10 * time.Millisecond

func TestCountdownReachesZeroAndStops(t *testing.T) {
	c := NewCountdown(testTick)
	c.Start(3)
	defer c.Cancel()

	assert.Eventually(t, func() bool { return c.Remaining() == 0 }, time.Second, testTick)

	// Stays at zero until more time is granted.
	time.Sleep(5 * testTick)
	assert.Equal(t, 0, c.Remaining())
}

func TestCountdownGrantAfterExpiryResumesTicking(t *testing.T) {
	c := NewCountdown(testTick)
	c.Start(1)
	defer c.Cancel()

	assert.Eventually(t, func() bool { return c.Remaining() == 0 }, time.Second, testTick)

	// A pause arriving in the same poll window as expiry still grants time
	// the clock must burn through.
	c.Pause()
	c.Grant(3)
	assert.Equal(t, 3, c.Remaining())
	c.Resume()

	assert.Eventually(t, func() bool { return c.Remaining() < 3 }, time.Second, testTick)
	assert.Eventually(t, func() bool { return c.Remaining() == 0 }, time.Second, testTick)
}

func TestCountdownPauseFreezesRemaining(t *testing.T) {
	c := NewCountdown(testTick)
	c.Start(50)
	defer c.Cancel()

	c.Pause()
	before := c.Remaining()
	time.Sleep(10 * testTick)
	assert.Equal(t, before, c.Remaining(), "no decrement while paused")

	c.Resume()
	assert.Eventually(t, func() bool { return c.Remaining() < before }, time.Second, testTick)
}

func TestCountdownGrantAddsTime(t *testing.T) {
	c := NewCountdown(testTick)
	c.Start(5)
	defer c.Cancel()

	c.Pause()
	base := c.Remaining()
	c.Grant(60)
	assert.Equal(t, base+60, c.Remaining())
}

func TestCountdownCancelJoinsAndRestarts(t *testing.T) {
	c := NewCountdown(testTick)
	c.Start(100)
	c.Cancel()
	c.Cancel() // idempotent

	remaining := c.Remaining()
	time.Sleep(5 * testTick)
	assert.Equal(t, remaining, c.Remaining(), "no ticks after cancel")

	// Start replaces any prior run cleanly.
	c.Start(7)
	defer c.Cancel()
	assert.Eventually(t, func() bool { return c.Remaining() < 7 }, time.Second, testTick)
}

func TestCountdownStartCancelsPriorRun(t *testing.T) {
	c := NewCountdown(testTick)
	c.Start(100)
	c.Start(10)
	defer c.Cancel()

	// Only one goroutine decrements: remaining tracks the second start.
	assert.LessOrEqual(t, c.Remaining(), 10)
}
