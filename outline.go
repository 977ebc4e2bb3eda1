package starfan

import "math"

// Hosts without native ellipse or pie primitives flatten them with these
// samplers.

// ArcSegments picks a segment count for an arc of the given radius and sweep
// in radians: roughly one segment per four units of arc length, clamped to
// [4, 128].
func ArcSegments(radius, sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) * math.Max(radius, 1) / 4))
	return max(4, min(n, 128))
}

// ArcPoints appends to dst the arc of the ellipse inscribed in r from start
// through sweep, both in AngleUnit. Angles run counter-clockwise on screen
// (Y down), so 90 degrees points up. Both end points are included.
func ArcPoints(dst []Point, r Rect, start, sweep float64) []Point {
	c := r.Center()
	rx, ry := r.Width/2, r.Height/2
	a0 := start / AngleUnit * math.Pi / 180
	da := sweep / AngleUnit * math.Pi / 180
	n := ArcSegments(math.Max(rx, ry), da)
	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(a0 + da*float64(i)/float64(n))
		dst = append(dst, Point{c.X + rx*cos, c.Y - ry*sin})
	}
	return dst
}

// EllipsePoints appends to dst a closed ellipse outline without repeating
// the first point.
func EllipsePoints(dst []Point, center Point, rx, ry float64) []Point {
	n := ArcSegments(math.Max(rx, ry), 2*math.Pi)
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		dst = append(dst, Point{center.X + rx*cos, center.Y + ry*sin})
	}
	return dst
}

// Corners appends the four corners of r to dst, clockwise on screen from
// the top-left.
func (r Rect) Corners(dst []Point) []Point {
	return append(dst,
		Point{r.Left(), r.Top()},
		Point{r.Right(), r.Top()},
		Point{r.Right(), r.Bottom()},
		Point{r.Left(), r.Bottom()},
	)
}
