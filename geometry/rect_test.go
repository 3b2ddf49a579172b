package geometry

import "testing"

func TestIntersect_DisjointIsEmpty(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 10, Y: 0, Width: 10, Height: 10}

	if got := a.Intersect(b); !got.Empty() {
		t.Fatalf("expected empty intersection, got %+v", got)
	}
	if a.Overlaps(b) {
		t.Fatalf("edge-adjacent rects must not overlap")
	}
}

func TestOverlapArea(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}

	if got := a.OverlapArea(b); got != 25 {
		t.Fatalf("expected overlap area 25, got %d", got)
	}
	if got := a.OverlapArea(Rect{X: 20, Y: 20, Width: 5, Height: 5}); got != 0 {
		t.Fatalf("expected zero overlap for disjoint rects, got %d", got)
	}
}

func TestUnion_SkipsEmpty(t *testing.T) {
	a := Rect{X: 2, Y: 3, Width: 4, Height: 5}

	if got := a.Union(Rect{}); got != a {
		t.Fatalf("union with empty should return original, got %+v", got)
	}

	b := Rect{X: 10, Y: 0, Width: 2, Height: 2}
	got := a.Union(b)
	want := Rect{X: 2, Y: 0, Width: 10, Height: 8}
	if got != want {
		t.Fatalf("expected union %+v, got %+v", want, got)
	}
}

func TestTranslateAndAt(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}

	if got := r.Translate(Point{X: 10, Y: 20}); got.X != 11 || got.Y != 22 {
		t.Fatalf("unexpected translate result: %+v", got)
	}
	if got := r.At(Point{X: 0, Y: 0}); got.X != 0 || got.Y != 0 || got.Width != 3 {
		t.Fatalf("unexpected At result: %+v", got)
	}
}
