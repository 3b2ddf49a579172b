// Package hosttest provides a scripted in-memory host for package
// tests and the demo: deterministic text metrics, fake window handles,
// and a manual clock.
package hosttest

import (
	"fmt"

	"github.com/1broseidon/popframe/geometry"
	"github.com/1broseidon/popframe/host"
)

// Segment is one scripted visual line of a view: the character span it
// covers and its view-relative pixel box. Character cells inside a
// segment are assumed uniform, so partial spans trim proportionally.
type Segment struct {
	Span host.Span
	Box  geometry.Rect
}

// View is a scripted host.TextView.
type View struct {
	Buf       host.BufferID
	Visible   host.Span
	Displayed bool
	Segments  []Segment
	Origin    geometry.Point
	CellWidth int
}

func (v *View) Buffer() host.BufferID { return v.Buf }

func (v *View) VisibleSpan() (host.Span, bool) {
	if !v.Displayed {
		return host.Span{}, false
	}
	return v.Visible, true
}

func (v *View) SegmentBoxes(span host.Span) []geometry.Rect {
	var boxes []geometry.Rect
	for _, seg := range v.Segments {
		clip := seg.Span.Clip(span)
		if clip.Empty() {
			continue
		}
		chars := seg.Span.End - seg.Span.Start
		if chars <= 0 {
			continue
		}
		cw := seg.Box.Width / chars
		boxes = append(boxes, geometry.Rect{
			X:      seg.Box.X + (clip.Start-seg.Span.Start)*cw,
			Y:      seg.Box.Y,
			Width:  (clip.End - clip.Start) * cw,
			Height: seg.Box.Height,
		})
	}
	return boxes
}

func (v *View) ContentOrigin() geometry.Point { return v.Origin }

func (v *View) CharWidth() int {
	if v.CellWidth <= 0 {
		return 8
	}
	return v.CellWidth
}

// Frame is a fake host.Frame that records what the controller does to
// it.
type Frame struct {
	ParentFrame host.Frame
	Origin      geometry.Point // screen origin for root frames
	Band        int
	MultiPane   bool

	// ContentSize is what FitToContent resizes the frame to.
	ContentSize geometry.Size

	alive   bool
	visible bool
	pos     geometry.Point
	size    geometry.Size
	params  host.FrameParams

	Bound        host.BufferID
	Moves        int
	Redraws      int
	CacheClears  int
	ScrollResets int
	ParamApplies int
}

// NewRootFrame returns a live top-level frame at the given screen
// origin, suitable as a parent for created children.
func NewRootFrame(origin geometry.Point, size geometry.Size) *Frame {
	return &Frame{Origin: origin, alive: true, visible: true, size: size}
}

func (f *Frame) Alive() bool { return f.alive }

func (f *Frame) Parent() (host.Frame, bool) {
	if f.ParentFrame == nil {
		return nil, false
	}
	return f.ParentFrame, true
}

func (f *Frame) ScreenOrigin() geometry.Point {
	if f.ParentFrame == nil {
		return f.Origin
	}
	po := f.ParentFrame.ScreenOrigin()
	return geometry.Point{X: po.X + f.pos.X, Y: po.Y + f.pos.Y}
}

func (f *Frame) Position() geometry.Point { return f.pos }

func (f *Frame) MoveTo(p geometry.Point) {
	f.pos = p
	f.Moves++
}

func (f *Frame) Size() geometry.Size { return f.size }

func (f *Frame) Resize(s geometry.Size) { f.size = s }

func (f *Frame) Visible() bool { return f.visible }

func (f *Frame) Show() { f.visible = true }

func (f *Frame) Hide() { f.visible = false }

func (f *Frame) TitleBandHeight() int { return f.Band }

func (f *Frame) SinglePane() bool { return !f.MultiPane }

func (f *Frame) ShowBuffer(b host.BufferID) { f.Bound = b }

func (f *Frame) ClearRenderCache() { f.CacheClears++ }

func (f *Frame) Redraw() { f.Redraws++ }

func (f *Frame) ResetScroll() { f.ScrollResets++ }

func (f *Frame) Destroy() {
	f.alive = false
	f.visible = false
}

func (f *Frame) FitToContent() geometry.Size {
	if f.ContentSize.Width > 0 || f.ContentSize.Height > 0 {
		f.size = f.ContentSize
	}
	return f.size
}

func (f *Frame) Parameters() host.FrameParams { return f.params }

func (f *Frame) ApplyParameters(p host.FrameParams) {
	f.params = p
	f.ParamApplies++
}

// System is a scripted host.WindowSystem.
type System struct {
	Active   host.BufferID
	Display  geometry.Rect
	Detached bool

	// Leak, when set, is merged into every created frame's parameters
	// before the controller sees them, simulating host-global settings
	// bleeding into child frames.
	Leak func(p host.FrameParams) host.FrameParams

	// NewFrameBand is the title band height of created frames.
	NewFrameBand int

	// NewFrameContent is the FitToContent size of created frames.
	NewFrameContent geometry.Size

	CreateErr error

	views      map[host.BufferID]*View
	viewFrames map[*View]host.Frame
	buffers    map[host.BufferID]map[string]string
	subs       map[int]func()
	nextSub    int

	Created   []*Frame
	Refocused int
}

// NewSystem returns an empty system with an 800x600 display.
func NewSystem() *System {
	return &System{
		Display:    geometry.Rect{Width: 800, Height: 600},
		views:      make(map[host.BufferID]*View),
		viewFrames: make(map[*View]host.Frame),
		buffers:    make(map[host.BufferID]map[string]string),
		subs:       make(map[int]func()),
	}
}

// AddView registers v as the active view of its buffer, hosted by fr.
func (s *System) AddView(v *View, fr host.Frame) {
	s.views[v.Buf] = v
	s.viewFrames[v] = fr
}

// Activity delivers one host activity event to all subscribers.
func (s *System) Activity() {
	for _, fn := range s.subs {
		fn()
	}
}

// SubscriberCount reports how many activity subscriptions are live.
func (s *System) SubscriberCount() int { return len(s.subs) }

// BufferLocals returns the locals a buffer was created with.
func (s *System) BufferLocals(buf host.BufferID) map[string]string {
	return s.buffers[buf]
}

func (s *System) ActiveBuffer() host.BufferID { return s.Active }

func (s *System) ViewOf(buf host.BufferID) (host.TextView, bool) {
	v, ok := s.views[buf]
	if !ok || !v.Displayed {
		return nil, false
	}
	return v, true
}

func (s *System) FrameOf(view host.TextView) (host.Frame, bool) {
	v, ok := view.(*View)
	if !ok {
		return nil, false
	}
	fr, ok := s.viewFrames[v]
	return fr, ok
}

func (s *System) DisplayBounds() geometry.Rect { return s.Display }

func (s *System) CreateFrame(parent host.Frame, params host.FrameParams) (host.Frame, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	if s.Leak != nil {
		params = s.Leak(params)
	}
	fr := &Frame{
		ParentFrame: parent,
		alive:       true,
		params:      params,
		Band:        s.NewFrameBand,
		ContentSize: s.NewFrameContent,
	}
	s.Created = append(s.Created, fr)
	return fr, nil
}

func (s *System) MakeBuffer(name string, locals map[string]string) (host.BufferID, error) {
	if name == "" {
		return "", fmt.Errorf("empty buffer name")
	}
	buf := host.BufferID(name)
	s.buffers[buf] = locals
	return buf, nil
}

func (s *System) RefocusParent(of host.Frame) { s.Refocused++ }

func (s *System) ForcesDetachedFrames() bool { return s.Detached }

func (s *System) OnActivity(fn func()) (cancel func()) {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}
