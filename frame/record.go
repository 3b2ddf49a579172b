package frame

import (
	"github.com/1broseidon/popframe/geometry"
	"github.com/1broseidon/popframe/host"
)

// PlaceFn computes a parent-relative position for a frame against the
// current state of the view displaying its parent buffer. ok is false
// when no usable position exists and the frame should be hidden.
type PlaceFn func(fr host.Frame, view host.TextView) (geometry.Point, bool)

// Record is the persistent identity of one managed child frame. The
// underlying window handle may be recreated across MakeOrReuse calls
// while the record's identity is preserved.
type Record struct {
	name         string
	content      host.BufferID
	parentBuffer host.BufferID
	place        PlaceFn

	frame    host.Frame
	disabled bool

	lastPos geometry.Point
	hasPos  bool
}

// Name returns the record's logical name.
func (r *Record) Name() string { return r.name }

// ContentBuffer returns the buffer displayed inside the child frame.
func (r *Record) ContentBuffer() host.BufferID { return r.content }

// ParentBuffer returns the buffer whose selection state controls the
// frame's visibility.
func (r *Record) ParentBuffer() host.BufferID { return r.parentBuffer }

// Frame returns the current underlying window handle.
func (r *Record) Frame() host.Frame { return r.frame }

// Disabled reports whether updates are administratively suppressed.
func (r *Record) Disabled() bool { return r.disabled }

// Visible reports whether the underlying window is currently shown.
func (r *Record) Visible() bool {
	return r.frame != nil && r.frame.Alive() && r.frame.Visible()
}
