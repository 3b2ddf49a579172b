// Package anchor computes the on-screen pixel footprint of a text span.
package anchor

import (
	"github.com/1broseidon/popframe/geometry"
	"github.com/1broseidon/popframe/host"
)

// Resolve returns the tight pixel bounding box of the visible portion of
// span in view, in absolute display coordinates. ok is false when no part
// of the span is currently rendered: the span is scrolled out of view,
// the view is not displayed, or the span has gone stale.
func Resolve(view host.TextView, span host.Span) (geometry.Rect, bool) {
	if view == nil || span.Empty() {
		return geometry.Rect{}, false
	}

	visible, ok := view.VisibleSpan()
	if !ok {
		return geometry.Rect{}, false
	}

	clipped := span.Clip(visible)
	if clipped.Empty() {
		return geometry.Rect{}, false
	}

	// One box per visual line segment of the clipped span. Wrapped
	// lines produce several segments with uneven widths; the result is
	// the min/max envelope across all of them.
	segments := view.SegmentBoxes(clipped)

	var box geometry.Rect
	found := false
	for _, seg := range segments {
		if seg.Empty() {
			continue
		}
		if !found {
			box = seg
			found = true
			continue
		}
		box = box.Union(seg)
	}
	if !found {
		return geometry.Rect{}, false
	}

	return box.Translate(view.ContentOrigin()), true
}
