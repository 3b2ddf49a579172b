// Package x11host backs the host window-object model with X11: child
// frames are override-redirect windows that bypass the window manager,
// display bounds come from the EWMH work area, and activity events are
// derived from active-window changes on the root. Text metrics are not
// provided here; the embedding editor supplies the host.TextView side.
package x11host

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/popframe/geometry"
	"github.com/1broseidon/popframe/host"
)

// Conn manages the X11 connection and core X resources.
type Conn struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	// MeasureContent, when set, reports the rendered size of a content
	// buffer so FitToContent can size frames. The embedding editor
	// owns text layout, so it supplies this.
	MeasureContent func(buf host.BufferID) geometry.Size

	subs    map[int]func()
	nextSub int
	hooked  bool
}

// Connect establishes a connection to the X11 server.
func Connect() (*Conn, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	return &Conn{
		XUtil: xu,
		Root:  xu.RootWin(),
		subs:  make(map[int]func()),
	}, nil
}

// EventLoop starts the main X11 event loop (blocking).
func (c *Conn) EventLoop() {
	xevent.Main(c.XUtil)
}

// Close cleanly disconnects from the X11 server.
func (c *Conn) Close() {
	c.XUtil.Conn().Close()
}

// DisplayBounds returns the work area of the current desktop, falling
// back to the full screen when the window manager reports none.
func (c *Conn) DisplayBounds() geometry.Rect {
	screen := c.XUtil.Screen()
	bounds := geometry.Rect{
		Width:  int(screen.WidthInPixels),
		Height: int(screen.HeightInPixels),
	}

	workArea, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(workArea) == 0 {
		return bounds
	}

	desktopIndex := 0
	if currentDesktop, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil {
		if int(currentDesktop) >= 0 && int(currentDesktop) < len(workArea) {
			desktopIndex = int(currentDesktop)
		}
	}

	wa := workArea[desktopIndex]
	if wa.Width == 0 || wa.Height == 0 {
		return bounds
	}
	return geometry.Rect{
		X:      int(wa.X),
		Y:      int(wa.Y),
		Width:  int(wa.Width),
		Height: int(wa.Height),
	}
}

// ActiveWindow returns the window the window manager reports focused.
func (c *Conn) ActiveWindow() (xproto.Window, error) {
	return ewmh.ActiveWindowGet(c.XUtil)
}

// OnActivity subscribes fn to active-window changes reported on the
// root window. The property hook is installed once, on first use.
func (c *Conn) OnActivity(fn func()) (cancel func()) {
	if !c.hooked {
		c.hookRootProperty()
		c.hooked = true
	}

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() { delete(c.subs, id) }
}

func (c *Conn) hookRootProperty() {
	xwindow.New(c.XUtil, c.Root).Listen(xproto.EventMaskPropertyChange)

	activeAtom, err := xproto.InternAtom(
		c.XUtil.Conn(), true, uint16(len("_NET_ACTIVE_WINDOW")), "_NET_ACTIVE_WINDOW",
	).Reply()

	xevent.PropertyNotifyFun(func(xu *xgbutil.XUtil, ev xevent.PropertyNotifyEvent) {
		if err == nil && ev.Atom != activeAtom.Atom {
			return
		}
		for _, fn := range c.subs {
			fn()
		}
	}).Connect(c.XUtil, c.Root)
}

// window id validity check shared by frame handles
func (c *Conn) windowAlive(win xproto.Window) bool {
	if win == 0 {
		return false
	}
	_, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	return err == nil
}

func (c *Conn) screenOrigin(win xproto.Window) (geometry.Point, error) {
	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(), win, c.Root, 0, 0,
	).Reply()
	if err != nil {
		return geometry.Point{}, fmt.Errorf("translate coordinates: %w", err)
	}
	return geometry.Point{X: int(translate.DstX), Y: int(translate.DstY)}, nil
}
