// Package placement picks a screen position for a child frame relative
// to an anchor box: it tries an ordered set of layout strategies, clamps
// each candidate to the display bounds, and takes the first candidate
// that does not overlap the anchor, falling back to the least
// overlapping one.
package placement

import (
	"github.com/1broseidon/popframe/geometry"
	"github.com/1broseidon/popframe/host"
)

// Solver evaluates placement strategies against one display.
type Solver struct {
	// Display is the usable pixel bounds candidates are clamped into.
	Display geometry.Rect

	// CharWidth is the horizontal inset applied by the RightMiddle
	// strategy, normally one character cell of the anchor's view.
	CharWidth int
}

// Solve returns a parent-relative position for fr next to target, which
// must be in absolute display coordinates. ok is false when target is
// empty or fr lacks a parent frame; the caller hides the frame instead.
//
// Strategy order is the preferred strategy followed by its fixed
// fallback order. The first zero-overlap candidate wins; otherwise the
// clamped candidate with the smallest overlap area is returned, ties
// keeping the earlier strategy.
func (s Solver) Solve(fr host.Frame, target geometry.Rect, pref Strategy) (geometry.Point, bool) {
	if fr == nil || target.Empty() {
		return geometry.Point{}, false
	}

	parent, ok := fr.Parent()
	if !ok {
		return geometry.Point{}, false
	}
	origin := parent.ScreenOrigin()

	size := fr.Size()
	band := fr.TitleBandHeight()
	// The band sits above the content, so the window's real footprint
	// is taller than the content size the host reports.
	total := geometry.Size{Width: size.Width, Height: size.Height + band}

	var best geometry.Point
	bestArea := -1

	for _, strat := range order(pref) {
		raw := s.rawPosition(strat, target, total)
		rel := s.clamp(raw, total, origin)

		at := geometry.Rect{
			X:      origin.X + rel.X,
			Y:      origin.Y + rel.Y,
			Width:  total.Width,
			Height: total.Height,
		}
		area := at.OverlapArea(target)
		if area == 0 {
			return rel, true
		}
		if bestArea < 0 || area < bestArea {
			best = rel
			bestArea = area
		}
	}

	return best, true
}

// rawPosition computes the unclamped absolute position for one strategy.
func (s Solver) rawPosition(strat Strategy, target geometry.Rect, frame geometry.Size) geometry.Point {
	switch strat {
	case Above:
		return geometry.Point{
			X: target.X,
			Y: target.Y - frame.Height,
		}
	case Below:
		return geometry.Point{
			X: target.X,
			Y: target.Bottom(),
		}
	default: // RightMiddle
		return geometry.Point{
			X: target.Right() + s.CharWidth,
			Y: target.Y + (target.Height-frame.Height)/2,
		}
	}
}

// clamp keeps the full frame rectangle inside the display bounds, then
// translates into parent-relative coordinates, never negative.
func (s Solver) clamp(abs geometry.Point, frame geometry.Size, origin geometry.Point) geometry.Point {
	maxX := s.Display.Right() - frame.Width
	maxY := s.Display.Bottom() - frame.Height

	if abs.X > maxX {
		abs.X = maxX
	}
	if abs.X < s.Display.X {
		abs.X = s.Display.X
	}
	if abs.Y > maxY {
		abs.Y = maxY
	}
	if abs.Y < s.Display.Y {
		abs.Y = s.Display.Y
	}

	rel := geometry.Point{X: abs.X - origin.X, Y: abs.Y - origin.Y}
	if rel.X < 0 {
		rel.X = 0
	}
	if rel.Y < 0 {
		rel.Y = 0
	}
	return rel
}
