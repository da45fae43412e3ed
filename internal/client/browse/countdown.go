package browse

import (
	"sync"
	"time"
)

// DeleteDelay is how long a pending delete can still be cancelled.
const DeleteDelay = 5 * time.Second

type stopper interface {
	Stop() bool
}

// DeleteCountdown is the delayed-delete state machine: idle or pending
// one file. Trigger starts the countdown; triggering the same file again
// (or Cancel, or Close) while pending cancels it; triggering a different
// file replaces the pending one. When the countdown expires the delete
// callback fires exactly once, on the timer goroutine.
type DeleteCountdown struct {
	delay time.Duration
	del   func(id int64)

	// timer seam for tests
	afterFunc func(d time.Duration, f func()) stopper

	mu        sync.Mutex
	timer     stopper
	pendingID int64
	pending   bool
	closed    bool
	seq       uint64
}

// NewDeleteCountdown builds an idle countdown. delay <= 0 means
// DeleteDelay.
func NewDeleteCountdown(delay time.Duration, del func(id int64)) *DeleteCountdown {
	if delay <= 0 {
		delay = DeleteDelay
	}
	return &DeleteCountdown{
		delay: delay,
		del:   del,
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// Trigger requests deletion of id. Returns true when a countdown is now
// pending for id, false when the call cancelled an already-pending
// countdown for the same id (or the countdown is closed).
func (c *DeleteCountdown) Trigger(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	if c.pending && c.pendingID == id {
		c.cancelLocked()
		return false
	}
	if c.pending {
		c.cancelLocked()
	}
	c.pending = true
	c.pendingID = id
	c.seq++
	seq := c.seq
	c.timer = c.afterFunc(c.delay, func() { c.fire(seq) })
	return true
}

// Cancel aborts any pending countdown.
func (c *DeleteCountdown) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

// Pending returns the file awaiting deletion, if any.
func (c *DeleteCountdown) Pending() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingID, c.pending
}

// Close cancels any pending countdown and refuses further triggers.
func (c *DeleteCountdown) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.closed = true
}

func (c *DeleteCountdown) cancelLocked() {
	if !c.pending {
		return
	}
	c.pending = false
	c.seq++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// fire runs on timer expiry. The sequence check makes expiry and
// cancellation race-free: a timer that lost the race is a no-op.
func (c *DeleteCountdown) fire(seq uint64) {
	c.mu.Lock()
	if c.closed || !c.pending || c.seq != seq {
		c.mu.Unlock()
		return
	}
	id := c.pendingID
	c.pending = false
	c.timer = nil
	c.mu.Unlock()
	c.del(id)
}
