package starfan

import "math"

// Matrix is a 3x3 homogeneous transform applied to column vectors:
//
//	| m00 m01 m02 |   | x |
//	| m10 m11 m12 | * | y |
//	| m20 m21 m22 |   | 1 |
//
// The named constructors keep the last row at (0, 0, 1). Products are
// applied right to left: a.Mul(b).Apply(p) == a.Apply(b.Apply(p)).
type Matrix [3][3]float64

// Vector is a homogeneous 3-component vector.
type Vector [3]float64

// Axis selects the mirror used by Reflect.
type Axis uint8

const (
	AxisX  Axis = iota // negate x
	AxisY              // negate y
	AxisXY             // negate both (point reflection through the origin)
)

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Matrix {
	return Matrix{
		{1, 0, dx},
		{0, 1, dy},
		{0, 0, 1},
	}
}

// Rotate returns a rotation about the origin by degrees. With Y pointing
// down, positive angles turn clockwise on screen.
func Rotate(degrees float64) Matrix {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Matrix{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// Scale returns a scaling by kx and ky about the origin.
func Scale(kx, ky float64) Matrix {
	return Matrix{
		{kx, 0, 0},
		{0, ky, 0},
		{0, 0, 1},
	}
}

// Reflect returns a mirror transform about the origin.
func Reflect(axis Axis) Matrix {
	x, y := 1.0, 1.0
	switch axis {
	case AxisX:
		x = -1
	case AxisY:
		y = -1
	case AxisXY:
		x, y = -1, -1
	}
	return Scale(x, y)
}

// Mul returns the matrix product m * o.
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += m[i][k] * o[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

// ApplyVector multiplies m by the column vector v.
func (m Matrix) ApplyVector(v Vector) Vector {
	var r Vector
	for i := 0; i < 3; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return r
}

// Apply transforms p as the homogeneous vector (x, y, 1) and drops the third
// coordinate of the result.
func (m Matrix) Apply(p Point) Point {
	return m.ApplyVector(VectorFromPoint(p)).Point()
}

// ApplyPoints transforms every point into a new slice.
func (m Matrix) ApplyPoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = m.Apply(p)
	}
	return out
}

// ApplyRect transforms the top-left and bottom-right corners of r and
// returns the rectangle they span.
func (m Matrix) ApplyRect(r Rect) Rect {
	return RectFromPoints(
		m.Apply(Point{r.Left(), r.Top()}),
		m.Apply(Point{r.Right(), r.Bottom()}),
	)
}

// VectorFromPoint lifts p to (x, y, 1).
func VectorFromPoint(p Point) Vector {
	return Vector{p.X, p.Y, 1}
}

// Point projects v back to 2D by dropping the homogeneous coordinate.
func (v Vector) Point() Point {
	return Point{v[0], v[1]}
}
