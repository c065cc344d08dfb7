// Package timer schedules one-shot callbacks against simulation time.
//
// Callbacks never run on their own goroutine. They fire synchronously from
// Advance, which the game loop calls once per tick, so a callback observes
// the same single-threaded world as every system.
package timer

import (
	"sort"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

type entry struct {
	handle Handle
	owner  any
	due    time.Duration
	fn     func()
}

// Clock is a manual simulation clock with owner-indexed one-shot timers.
type Clock struct {
	now     time.Duration
	next    Handle
	pending []*entry
	owners  map[any][]Handle
}

func NewClock() *Clock {
	return &Clock{owners: make(map[any][]Handle)}
}

// Now returns the elapsed simulation time. While a callback is firing it
// reports that callback's due time.
func (c *Clock) Now() time.Duration {
	if c == nil {
		return 0
	}
	return c.now
}

// Pending reports how many callbacks are still scheduled.
func (c *Clock) Pending() int {
	if c == nil {
		return 0
	}
	return len(c.pending)
}

// After schedules fn to run once delay has elapsed. owner may be nil; a
// non-nil owner lets CancelOwner invalidate every timer it started.
func (c *Clock) After(owner any, delay time.Duration, fn func()) Handle {
	if c == nil || fn == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	c.next++
	e := &entry{handle: c.next, owner: owner, due: c.now + delay, fn: fn}

	// keep pending ordered by due time, then by scheduling order
	i := sort.Search(len(c.pending), func(i int) bool {
		return c.pending[i].due > e.due
	})
	c.pending = append(c.pending, nil)
	copy(c.pending[i+1:], c.pending[i:])
	c.pending[i] = e

	if owner != nil {
		if c.owners == nil {
			c.owners = make(map[any][]Handle)
		}
		c.owners[owner] = append(c.owners[owner], e.handle)
	}
	return e.handle
}

// Cancel removes a pending callback. It reports false when the handle
// already fired or was cancelled.
func (c *Clock) Cancel(h Handle) bool {
	if c == nil || h == 0 {
		return false
	}
	for i, e := range c.pending {
		if e.handle != h {
			continue
		}
		c.pending = append(c.pending[:i], c.pending[i+1:]...)
		c.forget(e)
		return true
	}
	return false
}

// CancelOwner drops every pending callback scheduled for owner and returns
// how many were dropped.
func (c *Clock) CancelOwner(owner any) int {
	if c == nil || owner == nil {
		return 0
	}
	handles := c.owners[owner]
	if len(handles) == 0 {
		return 0
	}
	dropped := 0
	kept := c.pending[:0]
	for _, e := range c.pending {
		if e.owner == owner {
			dropped++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(c.pending); i++ {
		c.pending[i] = nil
	}
	c.pending = kept
	delete(c.owners, owner)
	return dropped
}

// Advance moves the clock forward by dt and fires every callback that came
// due, in due order. Callbacks scheduled while firing are measured from the
// firing callback's due time and fire in the same Advance if they fall
// inside the window.
func (c *Clock) Advance(dt time.Duration) {
	if c == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	target := c.now + dt
	for len(c.pending) > 0 && c.pending[0].due <= target {
		e := c.pending[0]
		c.pending[0] = nil
		c.pending = c.pending[1:]
		c.forget(e)
		c.now = e.due
		e.fn()
	}
	c.now = target
}

// Reset drops all timers and rewinds the clock to zero.
func (c *Clock) Reset() {
	if c == nil {
		return
	}
	c.now = 0
	c.pending = nil
	c.owners = make(map[any][]Handle)
}

func (c *Clock) forget(e *entry) {
	if e.owner == nil {
		return
	}
	handles := c.owners[e.owner]
	for i, h := range handles {
		if h == e.handle {
			handles = append(handles[:i], handles[i+1:]...)
			break
		}
	}
	if len(handles) == 0 {
		delete(c.owners, e.owner)
		return
	}
	c.owners[e.owner] = handles
}
