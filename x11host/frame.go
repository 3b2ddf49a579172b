package x11host

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/1broseidon/popframe/geometry"
	"github.com/1broseidon/popframe/host"
)

const backgroundPixel = 0xffffff

// CreateFrame creates a hidden, zero-sized override-redirect child
// window. Override-redirect bypasses the window manager, which gives
// the undecorated, non-focus-stealing behavior the parameters ask for
// without negotiating WM hints.
func (c *Conn) CreateFrame(parent host.Frame, params host.FrameParams) (host.Frame, error) {
	conn := c.XUtil.Conn()
	screen := c.XUtil.Screen()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, err
	}

	mask := uint32(xproto.CwBackPixel | xproto.CwOverrideRedirect | xproto.CwEventMask)
	// Value list order follows the bit positions of the mask (low to
	// high): back_pixel, override_redirect, event_mask.
	values := []uint32{
		backgroundPixel,
		1,
		xproto.EventMaskExposure,
	}
	if params.SuppressPointer {
		// Selecting button and wheel events without ever handling them
		// swallows pointer input; do_not_propagate keeps it from
		// reaching ancestors.
		mask |= xproto.CwDontPropagate
		values[2] |= xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease
		values = append(values, xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease)
	}

	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		wid,
		c.Root,
		0, 0,
		1, 1,
		uint16(params.ChildBorderWidth),
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		mask,
		values,
	).Check()
	if err != nil {
		return nil, err
	}

	return &Frame{
		conn:   c,
		win:    wid,
		parent: parent,
		size:   geometry.Size{Width: 1, Height: 1},
		params: params,
	}, nil
}

// Frame is an override-redirect X window managed as a child frame.
// Content rendering (text layout, painting) belongs to the embedding
// editor, which draws into the window; the handle tracks geometry,
// visibility, and the buffer binding.
type Frame struct {
	conn   *Conn
	win    xproto.Window
	parent host.Frame

	pos     geometry.Point
	size    geometry.Size
	visible bool
	dead    bool
	buf     host.BufferID
	params  host.FrameParams
}

// Window exposes the underlying X window id for the embedding editor's
// renderer.
func (f *Frame) Window() xproto.Window { return f.win }

func (f *Frame) Alive() bool {
	if f.dead {
		return false
	}
	return f.conn.windowAlive(f.win)
}

func (f *Frame) Parent() (host.Frame, bool) {
	if f.parent == nil {
		return nil, false
	}
	return f.parent, true
}

// ScreenOrigin is the absolute position; override-redirect windows are
// parented to the root, so parent-relative and absolute differ only by
// the logical parent's own origin.
func (f *Frame) ScreenOrigin() geometry.Point {
	if origin, err := f.conn.screenOrigin(f.win); err == nil {
		return origin
	}
	return f.pos
}

func (f *Frame) Position() geometry.Point { return f.pos }

// MoveTo places the window, converting the parent-relative position to
// root coordinates and keeping the frame stacked above its parent.
func (f *Frame) MoveTo(p geometry.Point) {
	f.pos = p

	abs := p
	if f.parent != nil {
		origin := f.parent.ScreenOrigin()
		abs = geometry.Point{X: origin.X + p.X, Y: origin.Y + p.Y}
	}

	xproto.ConfigureWindow(
		f.conn.XUtil.Conn(),
		f.win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowStackMode,
		[]uint32{uint32(abs.X), uint32(abs.Y), xproto.StackModeAbove},
	)
}

func (f *Frame) Size() geometry.Size { return f.size }

func (f *Frame) Resize(s geometry.Size) {
	if s.Width < 1 {
		s.Width = 1
	}
	if s.Height < 1 {
		s.Height = 1
	}
	f.size = s

	xproto.ConfigureWindow(
		f.conn.XUtil.Conn(),
		f.win,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(s.Width), uint32(s.Height)},
	)
}

func (f *Frame) Visible() bool { return f.visible }

func (f *Frame) Show() {
	xproto.MapWindow(f.conn.XUtil.Conn(), f.win)
	f.visible = true
}

func (f *Frame) Hide() {
	xproto.UnmapWindow(f.conn.XUtil.Conn(), f.win)
	f.visible = false
}

func (f *Frame) Destroy() {
	if f.dead {
		return
	}
	xproto.DestroyWindow(f.conn.XUtil.Conn(), f.win)
	f.dead = true
	f.visible = false
}

// TitleBandHeight is always zero: override-redirect windows carry no
// decoration.
func (f *Frame) TitleBandHeight() int { return 0 }

// SinglePane is always true for X child frames; pane splitting is an
// editor concept that never applies here.
func (f *Frame) SinglePane() bool { return true }

func (f *Frame) ShowBuffer(buf host.BufferID) { f.buf = buf }

// Buffer returns the bound content buffer.
func (f *Frame) Buffer() host.BufferID { return f.buf }

// FitToContent sizes the window to the measured content when the
// connection has a measurer, and reports the resulting size.
func (f *Frame) FitToContent() geometry.Size {
	if f.conn.MeasureContent == nil || f.buf == "" {
		return f.size
	}
	size := f.conn.MeasureContent(f.buf)
	if size.Width > 0 && size.Height > 0 {
		f.Resize(size)
	}
	return f.size
}

// ClearRenderCache is a renderer concern; the X handle has nothing
// cached.
func (f *Frame) ClearRenderCache() {}

// Redraw clears the window and generates expose events so the renderer
// repaints.
func (f *Frame) Redraw() {
	xproto.ClearArea(f.conn.XUtil.Conn(), true, f.win, 0, 0, 0, 0)
}

// ResetScroll is a renderer concern; stored here the binding always
// starts at the origin.
func (f *Frame) ResetScroll() {}

func (f *Frame) Parameters() host.FrameParams { return f.params }

func (f *Frame) ApplyParameters(p host.FrameParams) {
	f.params = p
	xproto.ConfigureWindow(
		f.conn.XUtil.Conn(),
		f.win,
		xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(p.ChildBorderWidth)},
	)
}

// RootFrame wraps an existing top-level X window (the editor's own
// frame) as a host.Frame so it can parent child frames.
type RootFrame struct {
	conn *Conn
	win  xproto.Window
}

// NewRootFrame wraps win as a parent frame.
func (c *Conn) NewRootFrame(win xproto.Window) *RootFrame {
	return &RootFrame{conn: c, win: win}
}

// Window exposes the underlying X window id.
func (f *RootFrame) Window() xproto.Window { return f.win }

func (f *RootFrame) Alive() bool { return f.conn.windowAlive(f.win) }

func (f *RootFrame) Parent() (host.Frame, bool) { return nil, false }

func (f *RootFrame) ScreenOrigin() geometry.Point {
	origin, err := f.conn.screenOrigin(f.win)
	if err != nil {
		return geometry.Point{}
	}
	return origin
}

func (f *RootFrame) Position() geometry.Point { return f.ScreenOrigin() }

func (f *RootFrame) MoveTo(p geometry.Point) {
	size := f.Size()
	if err := ewmh.MoveresizeWindow(f.conn.XUtil, f.win, p.X, p.Y, size.Width, size.Height); err != nil {
		xproto.ConfigureWindow(
			f.conn.XUtil.Conn(),
			f.win,
			xproto.ConfigWindowX|xproto.ConfigWindowY,
			[]uint32{uint32(p.X), uint32(p.Y)},
		)
	}
}

func (f *RootFrame) Size() geometry.Size {
	geom, err := xproto.GetGeometry(f.conn.XUtil.Conn(), xproto.Drawable(f.win)).Reply()
	if err != nil {
		return geometry.Size{}
	}
	return geometry.Size{Width: int(geom.Width), Height: int(geom.Height)}
}

func (f *RootFrame) Resize(s geometry.Size) {
	xproto.ConfigureWindow(
		f.conn.XUtil.Conn(),
		f.win,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(s.Width), uint32(s.Height)},
	)
}

func (f *RootFrame) Visible() bool { return f.Alive() }

func (f *RootFrame) Show() {
	xproto.MapWindow(f.conn.XUtil.Conn(), f.win)
}

func (f *RootFrame) Hide() {
	xproto.UnmapWindow(f.conn.XUtil.Conn(), f.win)
}

func (f *RootFrame) Destroy() {
	xproto.DestroyWindow(f.conn.XUtil.Conn(), f.win)
}

// TitleBandHeight reports the top decoration extent the window manager
// placed on the frame, if available.
func (f *RootFrame) TitleBandHeight() int {
	extents, err := ewmh.FrameExtentsGet(f.conn.XUtil, f.win)
	if err != nil {
		return 0
	}
	return int(extents.Top)
}

func (f *RootFrame) SinglePane() bool { return true }

func (f *RootFrame) ShowBuffer(buf host.BufferID) {}

func (f *RootFrame) FitToContent() geometry.Size { return f.Size() }

func (f *RootFrame) ClearRenderCache() {}

func (f *RootFrame) Redraw() {
	xproto.ClearArea(f.conn.XUtil.Conn(), true, f.win, 0, 0, 0, 0)
}

func (f *RootFrame) ResetScroll() {}

func (f *RootFrame) Parameters() host.FrameParams { return host.FrameParams{} }

func (f *RootFrame) ApplyParameters(p host.FrameParams) {}
