package host

import "time"

// SystemScheduler schedules deferred calls on the runtime timer heap.
// Tests substitute a manual clock instead.
type SystemScheduler struct{}

func (SystemScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
