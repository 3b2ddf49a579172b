// Package frame manages the lifecycle and visibility of anchored child
// frames: it tracks logical frame identity across create/reuse cycles,
// positions frames through the placement solver, and runs the auto-hide
// and debounced auto-update policies on host activity events.
package frame

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/1broseidon/popframe/anchor"
	"github.com/1broseidon/popframe/geometry"
	"github.com/1broseidon/popframe/host"
	"github.com/1broseidon/popframe/placement"
)

// DefaultUpdateDelay is the quiet period of the auto-update debounce.
const DefaultUpdateDelay = 500 * time.Millisecond

// Controller owns the registry of managed frames and applies the
// per-command visibility policy. All methods must be called from the
// host's event thread.
type Controller struct {
	sys   host.WindowSystem
	sched host.Scheduler
	log   *slog.Logger

	reg *registry
	deb *debouncer

	// overrides are the default parameter overrides applied when a
	// MakeOrReuse call supplies none, typically loaded from config.
	overrides []Override

	cancelActivity func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the structured logger. Without it the controller
// logs nowhere.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithUpdateDelay sets the auto-update debounce quiet period.
func WithUpdateDelay(d time.Duration) Option {
	return func(c *Controller) { c.deb.delay = d }
}

// WithParamOverrides sets default frame parameter overrides used by
// MakeOrReuse calls that pass none of their own.
func WithParamOverrides(ov []Override) Option {
	return func(c *Controller) { c.overrides = ov }
}

// New creates a controller bound to a host window system and scheduler.
func New(sys host.WindowSystem, sched host.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		sys:   sys,
		sched: sched,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		reg:   newRegistry(),
		deb:   newDebouncer(sched, DefaultUpdateDelay),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MakeBuffer creates a content buffer with the standard content-local
// settings plus any caller extras (extras win per key).
func (c *Controller) MakeBuffer(name string, extra map[string]string) (host.BufferID, error) {
	locals := ContentLocals()
	for k, v := range extra {
		locals[k] = v
	}
	buf, err := c.sys.MakeBuffer(name, locals)
	if err != nil {
		return "", fmt.Errorf("make content buffer %q: %w", name, err)
	}
	return buf, nil
}

// MakeOptions carries the optional arguments of MakeOrReuse.
type MakeOptions struct {
	// ParentBuffer is the buffer the anchor region belongs to. Empty
	// means the host's currently active buffer.
	ParentBuffer host.BufferID

	// ParentFrame is the frame to attach the child to. Nil means the
	// frame hosting the parent buffer's active view.
	ParentFrame host.Frame

	// Overrides replace the controller-level default overrides for
	// this call.
	Overrides []Override
}

// MakeOrReuse returns the managed frame for (name, content), creating
// the underlying window if none exists or reusing it when its handle is
// still alive, its parent linkage is unchanged, and its surface is a
// single pane. The returned record keeps its identity across calls.
func (c *Controller) MakeOrReuse(name string, place PlaceFn, content host.BufferID, opts MakeOptions) (*Record, error) {
	rec, found := c.reg.find(name, content)

	parentBuffer := opts.ParentBuffer
	if parentBuffer == "" {
		if found {
			// Repeat calls never silently rebind the parent buffer.
			parentBuffer = rec.parentBuffer
		} else {
			parentBuffer = c.sys.ActiveBuffer()
		}
	}

	parentFrame := opts.ParentFrame
	if parentFrame == nil {
		if view, ok := c.sys.ViewOf(parentBuffer); ok {
			parentFrame, _ = c.sys.FrameOf(view)
		}
	}

	overrides := opts.Overrides
	if overrides == nil {
		overrides = c.overrides
	}
	params, err := MergeParams(DefaultParams(), overrides)
	if err != nil {
		return nil, err
	}

	var fr host.Frame
	if found && c.reusable(rec, parentFrame) {
		fr = rec.frame
		fr.ClearRenderCache()
		fr.Redraw()
		c.log.Debug("reusing frame", "name", name)
	} else {
		// A stale or structurally incompatible handle is destroyed and
		// replaced; the record keeps its identity. A name collision
		// with a different content buffer drops the old handle too.
		stale := rec
		if stale == nil {
			stale, _ = c.reg.lookup(name)
		}
		if stale != nil && stale.frame != nil && stale.frame.Alive() {
			stale.frame.Destroy()
		}
		fr, err = c.sys.CreateFrame(parentFrame, params)
		if err != nil {
			return nil, fmt.Errorf("create frame %q: %w", name, err)
		}
		c.log.Debug("created frame", "name", name, "recreated", rec != nil)

		// Hosts leak global settings into fresh child frames; re-apply
		// whatever the merged target lost.
		if diff := DiffParams(fr.Parameters(), params); len(diff) > 0 {
			fr.ApplyParameters(params)
		}
	}

	fr.ShowBuffer(content)
	fr.ResetScroll()

	if rec == nil {
		rec = &Record{name: name}
		c.reg.put(rec)
	}
	rec.content = content
	rec.parentBuffer = parentBuffer
	rec.place = place
	rec.frame = fr
	rec.hasPos = false

	c.sys.RefocusParent(fr)
	fr.FitToContent()
	c.Update(rec)

	return rec, nil
}

// reusable reports whether an existing record's handle can serve another
// MakeOrReuse cycle.
func (c *Controller) reusable(rec *Record, parentFrame host.Frame) bool {
	if rec.frame == nil || !rec.frame.Alive() {
		return false
	}
	if !rec.frame.SinglePane() {
		return false
	}
	// Nested window environments cannot keep children attached, so the
	// parent check is meaningless there.
	if c.sys.ForcesDetachedFrames() {
		return true
	}
	current, ok := rec.frame.Parent()
	if parentFrame == nil {
		return !ok
	}
	return ok && current == parentFrame
}

// Update repositions and shows the record's frame, or hides it when its
// anchor yields no position. Disabled records are left untouched.
func (c *Controller) Update(rec *Record) {
	if rec == nil || rec.disabled || rec.frame == nil {
		return
	}

	view, ok := c.sys.ViewOf(rec.parentBuffer)
	if !ok {
		// No window displays the parent buffer: hide, never reposition.
		c.Hide(rec)
		return
	}

	pos, ok := rec.place(rec.frame, view)
	if !ok {
		c.Hide(rec)
		return
	}

	if !rec.hasPos || pos != rec.lastPos {
		rec.frame.MoveTo(pos)
		rec.lastPos = pos
		rec.hasPos = true
	}
	if !rec.frame.Visible() {
		rec.frame.Show()
		c.log.Debug("frame shown", "name", rec.name, "x", pos.X, "y", pos.Y)
		c.subscribe()
	}
}

// Hide unmaps the record's frame. When no managed frame remains visible
// the activity subscription is dropped so an idle editor pays nothing.
func (c *Controller) Hide(rec *Record) {
	if rec == nil || rec.frame == nil {
		return
	}
	if rec.frame.Alive() && rec.frame.Visible() {
		rec.frame.Hide()
		c.log.Debug("frame hidden", "name", rec.name)
	}
	if !c.reg.anyVisible() {
		c.unsubscribe()
	}
}

// HideAll hides every managed frame.
func (c *Controller) HideAll() {
	for _, rec := range c.reg.all() {
		c.Hide(rec)
	}
}

// SetDisabled sets the administrative disabled flag. Disabling hides
// the frame immediately; enabling triggers an update.
func (c *Controller) SetDisabled(rec *Record, disabled bool) {
	if rec == nil {
		return
	}
	rec.disabled = disabled
	if disabled {
		c.Hide(rec)
	} else {
		c.Update(rec)
	}
}

// IsDisabled reports the record's disabled flag.
func (c *Controller) IsDisabled(rec *Record) bool {
	return rec != nil && rec.disabled
}

// Find returns the record with the given name. Advisory: absence is not
// an error.
func (c *Controller) Find(name string) (*Record, bool) {
	return c.reg.lookup(name)
}

// MustFind returns the record with the given name, requiring a live
// window. A *LookupError is returned when none matches.
func (c *Controller) MustFind(name string) (*Record, error) {
	rec, ok := c.reg.lookup(name)
	if !ok || rec.frame == nil || !rec.frame.Alive() {
		return nil, &LookupError{Name: name}
	}
	return rec, nil
}

// UpdateNamed updates the record with the given name.
func (c *Controller) UpdateNamed(name string) error {
	rec, err := c.MustFind(name)
	if err != nil {
		return err
	}
	c.Update(rec)
	return nil
}

// HideNamed hides the record with the given name.
func (c *Controller) HideNamed(name string) error {
	rec, err := c.MustFind(name)
	if err != nil {
		return err
	}
	c.Hide(rec)
	return nil
}

// Records returns a snapshot of all managed records.
func (c *Controller) Records() []*Record {
	return c.reg.all()
}

// PositionRightOf builds the placement function most callers pass to
// MakeOrReuse: resolve the span's visible box in the parent view, then
// solve for a position with the given preferred strategy.
func (c *Controller) PositionRightOf(span host.Span, pref placement.Strategy) PlaceFn {
	return func(fr host.Frame, view host.TextView) (geometry.Point, bool) {
		box, ok := anchor.Resolve(view, span)
		if !ok {
			return geometry.Point{}, false
		}
		solver := placement.Solver{
			Display:   c.sys.DisplayBounds(),
			CharWidth: view.CharWidth(),
		}
		return solver.Solve(fr, box, pref)
	}
}

// AutoHide hides rec when the host's active buffer is not its parent
// buffer. With a nil rec, every managed record is checked.
func (c *Controller) AutoHide(rec *Record) {
	active := c.sys.ActiveBuffer()
	for _, r := range c.targets(rec) {
		if r.parentBuffer != active {
			c.Hide(r)
		}
	}
}

// AutoUpdate updates rec when the host's active buffer is its parent
// buffer. With a nil rec, every managed record is checked.
func (c *Controller) AutoUpdate(rec *Record) {
	active := c.sys.ActiveBuffer()
	for _, r := range c.targets(rec) {
		if r.parentBuffer == active {
			c.Update(r)
		}
	}
}

func (c *Controller) targets(rec *Record) []*Record {
	if rec != nil {
		return []*Record{rec}
	}
	return c.reg.all()
}

// onActivity is the per-command policy: hide frames whose parent buffer
// lost the selection immediately, and coalesce reposition work behind
// the debounce window.
func (c *Controller) onActivity() {
	c.AutoHide(nil)
	c.deb.call(func() { c.AutoUpdate(nil) })
}

// subscribe installs the activity subscription. Installed only while at
// least one frame is visible.
func (c *Controller) subscribe() {
	if c.cancelActivity != nil {
		return
	}
	c.cancelActivity = c.sys.OnActivity(c.onActivity)
}

func (c *Controller) unsubscribe() {
	if c.cancelActivity == nil {
		return
	}
	c.cancelActivity()
	c.cancelActivity = nil
	c.deb.stop()
}
