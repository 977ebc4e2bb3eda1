package starfan

import (
	"errors"
	"math"
	"math/rand/v2"
)

// ErrInvalidArgument is wrapped by every constructor and setter that rejects
// a geometric parameter (negative radius, too few sides, non-finite values).
var ErrInvalidArgument = errors.New("invalid argument")

// Point is a 2D position. When passed through a Matrix it is treated as the
// homogeneous vector (X, Y, 1).
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// finite reports whether both coordinates are finite.
func (p Point) finite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromPoints returns the normalized rectangle spanned by two opposite
// corners.
func RectFromPoints(p1, p2 Point) Rect {
	return Rect{
		X:      math.Min(p1.X, p2.X),
		Y:      math.Min(p1.Y, p2.Y),
		Width:  math.Abs(p2.X - p1.X),
		Height: math.Abs(p2.Y - p1.Y),
	}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// BottomLeft returns the corner the fan layout is measured from.
func (r Rect) BottomLeft() Point {
	return Point{r.X, r.Y + r.Height}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// MinSide returns min(Width, Height), or 0 for a degenerate rectangle.
func (r Rect) MinSide() float64 {
	m := math.Min(r.Width, r.Height)
	if m <= 0 || math.IsNaN(m) {
		return 0
	}
	return m
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// DrawRect returns the square of side min(width, height) - 2*margin centered
// in a width x height window. Hosts hand it to Composition.UpdateComponents
// on every paint pass.
func DrawRect(width, height, margin float64) Rect {
	cx := math.Floor(width / 2)
	cy := math.Floor(height / 2)
	half := math.Floor(math.Min(width, height) / 2)
	side := 2 * (half - margin)
	if side < 0 {
		side = 0
	}
	return Rect{X: cx - side/2, Y: cy - side/2, Width: side, Height: side}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Named colors used by the scene.
var (
	ColorBlack  = Color{0, 0, 0, 1}
	ColorWhite  = Color{1, 1, 1, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorYellow = Color{1, 1, 0, 1}
	ColorPurple = Color{0.5, 0, 0.5, 1}
)

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// RGBA8 returns the color as straight-alpha 8-bit components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(clamp01(c.R)*255 + 0.5),
		uint8(clamp01(c.G)*255 + 0.5),
		uint8(clamp01(c.B)*255 + 0.5),
		uint8(clamp01(c.A)*255 + 0.5)
}

// Pen is the outline style: stroke color and width.
type Pen struct {
	Color Color
	Width float64
}

// Brush is the fill style. A brush with zero alpha paints nothing.
type Brush struct {
	Color Color
}

// NoBrush leaves shapes unfilled.
var NoBrush = Brush{}

// Visible reports whether the brush paints anything.
func (b Brush) Visible() bool {
	return b.Color.A > 0
}

// Range is a general-purpose min/max range used for randomized spawn
// parameters.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max] drawn from rng.
// A nil rng uses the global source.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	if rng == nil {
		return r.Min + rand.Float64()*(r.Max-r.Min)
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
