package hosttest

import (
	"sort"
	"time"

	"github.com/1broseidon/popframe/host"
)

// Clock is a manual-advance scheduler for deterministic debounce tests.
type Clock struct {
	now    time.Duration
	timers []*fakeTimer
}

// NewClock returns a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// AfterFunc implements host.Scheduler.
func (c *Clock) AfterFunc(d time.Duration, fn func()) host.Timer {
	t := &fakeTimer{clock: c, when: c.now + d, fn: fn, armed: true}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward, firing due timers in deadline order.
func (c *Clock) Advance(d time.Duration) {
	target := c.now + d
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.now = next.when
		next.armed = false
		next.fn()
	}
	c.now = target
}

// Now returns the current clock reading.
func (c *Clock) Now() time.Duration {
	return c.now
}

func (c *Clock) nextDue(limit time.Duration) *fakeTimer {
	var due []*fakeTimer
	for _, t := range c.timers {
		if t.armed && t.when <= limit {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool { return due[i].when < due[j].when })
	return due[0]
}

type fakeTimer struct {
	clock *Clock
	when  time.Duration
	fn    func()
	armed bool
}

func (t *fakeTimer) Stop() bool {
	was := t.armed
	t.armed = false
	return was
}

func (t *fakeTimer) Reset(d time.Duration) bool {
	was := t.armed
	t.when = t.clock.now + d
	t.armed = true
	return was
}
