package starfan

import "math"

// RotatePoint rotates p about center by degrees:
//
//	x' = cx + dx*cos - dy*sin
//	y' = cy + dx*sin + dy*cos
func RotatePoint(p, center Point, degrees float64) Point {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return Point{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// rotatePoints rotates pts in place about center.
func rotatePoints(pts []Point, center Point, degrees float64) {
	if degrees == 0 {
		return
	}
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	for i, p := range pts {
		dx := p.X - center.X
		dy := p.Y - center.Y
		pts[i] = Point{
			X: center.X + dx*cos - dy*sin,
			Y: center.Y + dx*sin + dy*cos,
		}
	}
}

// IncreaseAngle adds delta to angle (both in degrees) and wraps the result
// into (-360, 360]. Values already in that range are returned as is, so 360
// is kept while -360 becomes 0.
func IncreaseAngle(angle, delta float64) float64 {
	angle += delta
	if angle > 360 || angle < -360 {
		angle = math.Mod(angle, 360)
	}
	if angle == -360 {
		angle = 0
	}
	return angle
}

// Distance returns the euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// regularPoints returns n points evenly spaced on a circle of radius r
// around center, starting at angle 0 and stepping by step radians.
func regularPoints(dst []Point, center Point, n int, step float64, radius func(i int) float64) []Point {
	if cap(dst) < n {
		dst = make([]Point, n)
	}
	dst = dst[:n]
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(step * float64(i))
		r := radius(i)
		dst[i] = Point{
			X: center.X + r*cos,
			Y: center.Y + r*sin,
		}
	}
	return dst
}
