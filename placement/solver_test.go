package placement

import (
	"testing"

	"github.com/1broseidon/popframe/geometry"
	"github.com/1broseidon/popframe/host/hosttest"
)

func childFrame(w, h, band int) *hosttest.Frame {
	root := hosttest.NewRootFrame(geometry.Point{}, geometry.Size{Width: 800, Height: 600})
	fr := &hosttest.Frame{ParentFrame: root, Band: band}
	fr.Resize(geometry.Size{Width: w, Height: h})
	return fr
}

func TestSolve_RightFitsWithoutFallback(t *testing.T) {
	s := Solver{Display: geometry.Rect{Width: 800, Height: 600}, CharWidth: 8}
	fr := childFrame(100, 50, 0)
	target := geometry.Rect{X: 100, Y: 100, Width: 80, Height: 16}

	pos, ok := s.Solve(fr, target, RightMiddle)
	if !ok {
		t.Fatalf("expected a position")
	}

	// right edge + one char inset, vertically centered on the box
	want := geometry.Point{X: 188, Y: 83}
	if pos != want {
		t.Fatalf("expected %+v, got %+v", want, pos)
	}

	at := geometry.Rect{X: pos.X, Y: pos.Y, Width: 100, Height: 50}
	if at.OverlapArea(target) != 0 {
		t.Fatalf("expected zero overlap, got %d", at.OverlapArea(target))
	}
}

func TestSolve_TitleBandEntersFootprint(t *testing.T) {
	s := Solver{Display: geometry.Rect{Width: 800, Height: 600}, CharWidth: 8}
	fr := childFrame(100, 50, 10)
	target := geometry.Rect{X: 100, Y: 200, Width: 80, Height: 16}

	pos, ok := s.Solve(fr, target, Above)
	if !ok {
		t.Fatalf("expected a position")
	}

	// the band adds to the window footprint, so the frame sits its
	// full 60px above the box top
	want := geometry.Point{X: 100, Y: 140}
	if pos != want {
		t.Fatalf("expected %+v, got %+v", want, pos)
	}
}

func TestSolve_NarrowDisplayPicksLeastOverlap(t *testing.T) {
	s := Solver{Display: geometry.Rect{Width: 150, Height: 70}, CharWidth: 8}
	fr := childFrame(100, 50, 0)
	target := geometry.Rect{X: 10, Y: 10, Width: 100, Height: 50}

	// Every strategy overlaps here: right clamps to 3000px^2, above
	// and below to 4000px^2 each.
	pos, ok := s.Solve(fr, target, Above)
	if !ok {
		t.Fatalf("expected a position")
	}

	want := geometry.Point{X: 50, Y: 10}
	if pos != want {
		t.Fatalf("expected least-overlap right candidate %+v, got %+v", want, pos)
	}
}

func TestSolve_TieKeepsEarlierStrategy(t *testing.T) {
	s := Solver{Display: geometry.Rect{Width: 120, Height: 60}, CharWidth: 8}
	fr := childFrame(100, 50, 0)
	target := geometry.Rect{X: 10, Y: 5, Width: 100, Height: 50}

	// All three clamped candidates overlap by the same 4500px^2, so
	// the preferred strategy's candidate survives.
	pos, ok := s.Solve(fr, target, Below)
	if !ok {
		t.Fatalf("expected a position")
	}

	want := geometry.Point{X: 10, Y: 10}
	if pos != want {
		t.Fatalf("expected below candidate %+v, got %+v", want, pos)
	}
}

func TestSolve_ClampedWithinDisplay(t *testing.T) {
	display := geometry.Rect{Width: 400, Height: 300}
	s := Solver{Display: display, CharWidth: 8}
	fr := childFrame(100, 50, 0)

	targets := []geometry.Rect{
		{X: 0, Y: 0, Width: 40, Height: 16},
		{X: 380, Y: 290, Width: 40, Height: 16},
		{X: 350, Y: 0, Width: 40, Height: 16},
		{X: 0, Y: 280, Width: 40, Height: 16},
	}

	for _, target := range targets {
		for _, pref := range []Strategy{RightMiddle, Above, Below} {
			pos, ok := s.Solve(fr, target, pref)
			if !ok {
				t.Fatalf("target %+v pref %v: expected a position", target, pref)
			}
			if pos.X < 0 || pos.X > display.Width-100 {
				t.Fatalf("target %+v pref %v: x=%d out of bounds", target, pref, pos.X)
			}
			if pos.Y < 0 || pos.Y > display.Height-50 {
				t.Fatalf("target %+v pref %v: y=%d out of bounds", target, pref, pos.Y)
			}
		}
	}
}

func TestSolve_ParentRelativeNeverNegative(t *testing.T) {
	s := Solver{Display: geometry.Rect{Width: 800, Height: 600}, CharWidth: 8}

	root := hosttest.NewRootFrame(geometry.Point{X: 200, Y: 150}, geometry.Size{Width: 600, Height: 450})
	fr := &hosttest.Frame{ParentFrame: root}
	fr.Resize(geometry.Size{Width: 100, Height: 50})

	// Anchor left of the parent's origin pushes the raw relative
	// position negative.
	target := geometry.Rect{X: 0, Y: 0, Width: 40, Height: 16}

	pos, ok := s.Solve(fr, target, Below)
	if !ok {
		t.Fatalf("expected a position")
	}
	if pos.X < 0 || pos.Y < 0 {
		t.Fatalf("expected non-negative parent-relative position, got %+v", pos)
	}
}

func TestSolve_AbsentCases(t *testing.T) {
	s := Solver{Display: geometry.Rect{Width: 800, Height: 600}}

	if _, ok := s.Solve(childFrame(100, 50, 0), geometry.Rect{}, RightMiddle); ok {
		t.Fatalf("expected absent for empty target")
	}

	orphan := &hosttest.Frame{}
	orphan.Resize(geometry.Size{Width: 100, Height: 50})
	if _, ok := s.Solve(orphan, geometry.Rect{X: 10, Y: 10, Width: 40, Height: 16}, RightMiddle); ok {
		t.Fatalf("expected absent for frame without parent")
	}
}

func TestOrder(t *testing.T) {
	cases := []struct {
		pref Strategy
		want [3]Strategy
	}{
		{RightMiddle, [3]Strategy{RightMiddle, Above, Below}},
		{Above, [3]Strategy{Above, Below, RightMiddle}},
		{Below, [3]Strategy{Below, Above, RightMiddle}},
	}
	for _, tc := range cases {
		if got := order(tc.pref); got != tc.want {
			t.Fatalf("pref %v: expected %v, got %v", tc.pref, tc.want, got)
		}
	}
}
