package frame

import (
	"testing"
	"time"

	"github.com/1broseidon/popframe/host/hosttest"
)

func TestDebounce_CoalescesBursts(t *testing.T) {
	clock := hosttest.NewClock()
	d := newDebouncer(clock, 500*time.Millisecond)

	fired := 0
	last := ""
	call := func(tag string) {
		d.call(func() {
			fired++
			last = tag
		})
	}

	// Five rapid calls inside the quiet period.
	for i, tag := range []string{"a", "b", "c", "d", "e"} {
		call(tag)
		clock.Advance(time.Duration(i) * 10 * time.Millisecond)
	}

	if fired != 0 {
		t.Fatalf("nothing should fire before the quiet period, fired=%d", fired)
	}

	clock.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("expected exactly one coalesced invocation, got %d", fired)
	}
	if last != "e" {
		t.Fatalf("expected the latest call's function to run, got %q", last)
	}
}

func TestDebounce_SeparateQuietPeriodsFireSeparately(t *testing.T) {
	clock := hosttest.NewClock()
	d := newDebouncer(clock, 100*time.Millisecond)

	fired := 0
	d.call(func() { fired++ })
	clock.Advance(200 * time.Millisecond)
	d.call(func() { fired++ })
	clock.Advance(200 * time.Millisecond)

	if fired != 2 {
		t.Fatalf("expected two invocations across quiet periods, got %d", fired)
	}
}

func TestDebounce_StopDropsPending(t *testing.T) {
	clock := hosttest.NewClock()
	d := newDebouncer(clock, 100*time.Millisecond)

	fired := 0
	d.call(func() { fired++ })
	d.stop()
	clock.Advance(time.Second)

	if fired != 0 {
		t.Fatalf("stopped debouncer must not fire, got %d", fired)
	}

	// still usable afterwards
	d.call(func() { fired++ })
	clock.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("expected debouncer to re-arm after stop, got %d", fired)
	}
}
