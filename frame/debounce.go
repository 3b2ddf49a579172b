package frame

import (
	"time"

	"github.com/1broseidon/popframe/host"
)

// debouncer coalesces bursts of calls into a single trailing-edge
// invocation: each call reschedules the timer, and when the quiet period
// finally elapses the most recent call's function runs once.
type debouncer struct {
	sched host.Scheduler
	delay time.Duration

	timer   host.Timer
	pending func()
}

func newDebouncer(sched host.Scheduler, delay time.Duration) *debouncer {
	return &debouncer{sched: sched, delay: delay}
}

// call schedules fn to run after the quiet period, replacing any
// previously pending function.
func (d *debouncer) call(fn func()) {
	d.pending = fn
	if d.timer == nil {
		d.timer = d.sched.AfterFunc(d.delay, d.fire)
		return
	}
	// The timer always runs fire, which reads the latest pending
	// function, so re-arming a fired timer is safe.
	d.timer.Reset(d.delay)
}

func (d *debouncer) fire() {
	fn := d.pending
	d.pending = nil
	if fn != nil {
		fn()
	}
}

// stop drops the pending call, if any.
func (d *debouncer) stop() {
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
	}
}
