package anchor

import (
	"testing"

	"github.com/1broseidon/popframe/geometry"
	"github.com/1broseidon/popframe/host"
	"github.com/1broseidon/popframe/host/hosttest"
)

// view with three visual lines of 10 chars each, 8px cells, 16px line
// height, second line indented and shorter.
func testView() *hosttest.View {
	return &hosttest.View{
		Buf:       "main.go",
		Visible:   host.Span{Start: 100, End: 130},
		Displayed: true,
		Origin:    geometry.Point{X: 50, Y: 40},
		CellWidth: 8,
		Segments: []hosttest.Segment{
			{Span: host.Span{Start: 100, End: 110}, Box: geometry.Rect{X: 0, Y: 0, Width: 80, Height: 16}},
			{Span: host.Span{Start: 110, End: 120}, Box: geometry.Rect{X: 16, Y: 16, Width: 80, Height: 16}},
			{Span: host.Span{Start: 120, End: 130}, Box: geometry.Rect{X: 0, Y: 32, Width: 80, Height: 16}},
		},
	}
}

func TestResolve_ScrolledOutReturnsAbsent(t *testing.T) {
	view := testView()

	cases := []struct {
		name string
		span host.Span
	}{
		{"above viewport", host.Span{Start: 10, End: 50}},
		{"below viewport", host.Span{Start: 200, End: 240}},
		{"empty span", host.Span{Start: 105, End: 105}},
	}

	for _, tc := range cases {
		if _, ok := Resolve(view, tc.span); ok {
			t.Fatalf("%s: expected absent box", tc.name)
		}
	}
}

func TestResolve_UndisplayedViewReturnsAbsent(t *testing.T) {
	view := testView()
	view.Displayed = false

	if _, ok := Resolve(view, host.Span{Start: 100, End: 110}); ok {
		t.Fatalf("expected absent box for undisplayed view")
	}
}

func TestResolve_SingleLine(t *testing.T) {
	view := testView()

	// Chars 102..106: 4 cells starting 2 cells into the first line.
	box, ok := Resolve(view, host.Span{Start: 102, End: 106})
	if !ok {
		t.Fatalf("expected a box")
	}

	want := geometry.Rect{X: 50 + 16, Y: 40, Width: 32, Height: 16}
	if box != want {
		t.Fatalf("expected %+v, got %+v", want, box)
	}
}

func TestResolve_MultiLineEnvelope(t *testing.T) {
	view := testView()

	// Ends mid-line on both sides; middle line is indented.
	box, ok := Resolve(view, host.Span{Start: 105, End: 125})
	if !ok {
		t.Fatalf("expected a box")
	}

	// Left edge: min(first segment at cell 5 = 40, middle at 16,
	// third at 0) = 0. Right edge: max(80, 96, 40) = 96.
	want := geometry.Rect{X: 50, Y: 40, Width: 96, Height: 48}
	if box != want {
		t.Fatalf("expected %+v, got %+v", want, box)
	}

	// Height covers all three line segments.
	if box.Height < 32 {
		t.Fatalf("expected height to span consecutive lines, got %d", box.Height)
	}
}

func TestResolve_ClipsToVisibleSpan(t *testing.T) {
	view := testView()
	view.Visible = host.Span{Start: 110, End: 130}

	// Span starts above the viewport; only the visible tail counts.
	box, ok := Resolve(view, host.Span{Start: 100, End: 115})
	if !ok {
		t.Fatalf("expected a box")
	}

	want := geometry.Rect{X: 50 + 16, Y: 40 + 16, Width: 40, Height: 16}
	if box != want {
		t.Fatalf("expected %+v, got %+v", want, box)
	}
}
