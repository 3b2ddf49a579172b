// Package host defines the interfaces through which the engine talks to
// the embedding editor: text-to-pixel metrics, the window object model,
// the activity event source, and the timer primitive. The engine never
// renders or measures text itself; it only consumes what a host reports.
package host

import (
	"time"

	"github.com/1broseidon/popframe/geometry"
)

// BufferID identifies a text buffer owned by the host.
type BufferID string

// Span is a half-open [Start, End) character range in a buffer.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span covers no characters.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Clip returns the intersection of two spans.
func (s Span) Clip(o Span) Span {
	start := max(s.Start, o.Start)
	end := min(s.End, o.End)
	if end < start {
		end = start
	}
	return Span{Start: start, End: end}
}

// TextView is a host window displaying a buffer. Spans may become stale
// between calls (text edits, scrolling); implementations report whatever
// is currently true and the engine tolerates the rest.
type TextView interface {
	// Buffer returns the buffer shown in this view.
	Buffer() BufferID

	// VisibleSpan returns the character range currently laid out in the
	// viewport. ok is false when the view is not displayed.
	VisibleSpan() (span Span, ok bool)

	// SegmentBoxes returns one view-relative pixel box per visual line
	// segment of the given span. Partially visible segments are trimmed
	// by the host's layout engine. An empty slice means nothing of the
	// span is rendered.
	SegmentBoxes(span Span) []geometry.Rect

	// ContentOrigin returns the on-screen position of the view's
	// content area, used to translate segment boxes into absolute
	// coordinates.
	ContentOrigin() geometry.Point

	// CharWidth returns the width in pixels of one character cell at
	// the view's current face, used for small placement insets.
	CharWidth() int
}

// FrameParams is the full parameter set of a managed child frame. The
// zero value is NOT the default configuration; use frame.DefaultParams.
type FrameParams struct {
	Title            string
	MinWidth         int
	MinHeight        int
	NoAcceptFocus    bool
	NoFocusOnMap     bool
	OuterBorderWidth int
	ChildBorderWidth int
	ScrollBars       bool
	MenuBarLines     int
	ToolBarLines     int
	TabBarLines      int
	NoOtherFrame     bool
	Unsplittable     bool
	Undecorated      bool
	LeftFringe       int
	RightFringe      int
	SkipSessionSave  bool
	SuppressPointer  bool
}

// Frame is the underlying window handle of a managed child frame.
// Positions are relative to the parent frame; ScreenOrigin anchors the
// frame in absolute display coordinates.
type Frame interface {
	// Alive reports whether the handle still refers to a live window.
	Alive() bool

	// Parent returns the frame this child is attached to, if any.
	Parent() (Frame, bool)

	// ScreenOrigin returns the frame's top-left corner in absolute
	// display coordinates.
	ScreenOrigin() geometry.Point

	// Position returns the parent-relative position.
	Position() geometry.Point

	// MoveTo sets the parent-relative position.
	MoveTo(p geometry.Point)

	Size() geometry.Size
	Resize(s geometry.Size)

	Visible() bool
	Show()
	Hide()
	Destroy()

	// TitleBandHeight returns the pixel height of any title or label
	// band the host draws above the content, zero for undecorated
	// frames.
	TitleBandHeight() int

	// SinglePane reports whether the frame's display surface is a
	// simple single-pane layout. Multi-pane surfaces force recreation.
	SinglePane() bool

	// ShowBuffer binds a buffer to the frame's pane and marks the pane
	// dedicated, non-splittable, and non-selectable.
	ShowBuffer(buf BufferID)

	// FitToContent auto-sizes the frame to its bound content and
	// returns the resulting size.
	FitToContent() geometry.Size

	// ClearRenderCache drops cached rendering artifacts so a reused
	// frame repaints from scratch.
	ClearRenderCache()

	// Redraw forces a synchronous redraw pass.
	Redraw()

	// ResetScroll scrolls the frame's pane back to the origin.
	ResetScroll()

	// Parameters returns the live parameter set as the host sees it.
	Parameters() FrameParams

	// ApplyParameters re-applies the full parameter set, overriding
	// anything host-global settings leaked into the frame.
	ApplyParameters(p FrameParams)
}

// WindowSystem is the host's window and buffer model.
type WindowSystem interface {
	// ActiveBuffer returns the buffer of the host's selected window.
	ActiveBuffer() BufferID

	// ViewOf returns the active view displaying the given buffer, if
	// any window currently shows it.
	ViewOf(buf BufferID) (TextView, bool)

	// FrameOf returns the frame hosting the given view.
	FrameOf(view TextView) (Frame, bool)

	// DisplayBounds returns the usable pixel bounds of the display the
	// host occupies.
	DisplayBounds() geometry.Rect

	// CreateFrame creates a new hidden, zero-sized child frame with
	// the given parameters, parented to parent.
	CreateFrame(parent Frame, params FrameParams) (Frame, error)

	// MakeBuffer creates (or reuses) a buffer with the given name and
	// buffer-local settings.
	MakeBuffer(name string, locals map[string]string) (BufferID, error)

	// RefocusParent re-points input focus at the parent of the given
	// frame, undoing any focus steal during creation.
	RefocusParent(of Frame)

	// ForcesDetachedFrames reports whether the environment cannot keep
	// child frames attached to a parent (nested window systems).
	ForcesDetachedFrames() bool

	// OnActivity subscribes fn to the host's activity events (command
	// loop iterations, selection changes). The returned cancel removes
	// the subscription.
	OnActivity(fn func()) (cancel func())
}

// Timer is a cancellable pending call, the host's deferral primitive.
type Timer interface {
	// Stop cancels the pending call; reports whether it was pending.
	Stop() bool

	// Reset re-arms the timer for a new delay, keeping the original
	// function.
	Reset(d time.Duration) bool
}

// Scheduler schedules a single deferred call. The engine builds its
// trailing-edge debounce on top of this.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
