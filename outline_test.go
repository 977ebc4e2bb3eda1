package starfan

import (
	"math"
	"testing"
)

func TestArcPointsCounterClockwise(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 20, Height: 20}
	pts := ArcPoints(nil, r, 0, 90*AngleUnit)
	assertPoint(t, "start", pts[0], Point{20, 10})
	// 90 degrees counter-clockwise on screen is straight up.
	assertPoint(t, "end", pts[len(pts)-1], Point{10, 0})
	for _, p := range pts {
		assertNear(t, "radius", Distance(p, r.Center()), 10)
	}
}

func TestArcPointsNegativeSweep(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 20, Height: 20}
	pts := ArcPoints(nil, r, 0, -90*AngleUnit)
	assertPoint(t, "end", pts[len(pts)-1], Point{10, 20})
}

func TestEllipsePoints(t *testing.T) {
	pts := EllipsePoints(nil, Point{5, 5}, 10, 4)
	if len(pts) < 4 {
		t.Fatalf("too few points: %d", len(pts))
	}
	assertPoint(t, "first", pts[0], Point{15, 5})
	for _, p := range pts {
		dx, dy := (p.X-5)/10, (p.Y-5)/4
		assertNear(t, "on ellipse", dx*dx+dy*dy, 1)
	}
}

func TestArcSegmentsBounds(t *testing.T) {
	if n := ArcSegments(0, 0.1); n != 4 {
		t.Errorf("tiny arc = %d, want 4", n)
	}
	if n := ArcSegments(1e6, 2*math.Pi); n != 128 {
		t.Errorf("huge arc = %d, want 128", n)
	}
}

func TestRectCorners(t *testing.T) {
	c := Rect{X: 1, Y: 2, Width: 3, Height: 4}.Corners(nil)
	want := []Point{{1, 2}, {4, 2}, {4, 6}, {1, 6}}
	for i := range want {
		assertPoint(t, "corner", c[i], want[i])
	}
}
