package starfan

import (
	"fmt"
	"math"
)

// drawPoints paints a closed point set with the current style. Fully
// collapsed point sets (zero radius) produce nothing.
func drawPoints(s Surface, pts []Point) {
	if len(pts) == 0 || collapsed(pts) {
		return
	}
	s.DrawPolygon(pts)
}

// collapsed reports whether every point coincides with the first.
func collapsed(pts []Point) bool {
	for _, p := range pts[1:] {
		if p != pts[0] {
			return false
		}
	}
	return true
}

// --- RegularPolygon ---

// RegularPolygon is an N-gon inscribed in a circle of radius CenterDistance.
// Its point set is rebuilt from the parameters whenever the center or the
// distance changes.
type RegularPolygon struct {
	Figure
	sides    int
	distance float64
	points   []Point
}

// NewRegularPolygon creates a polygon with the given side count (at least 3)
// and circumradius.
func NewRegularPolygon(center Point, sides int, distance float64, pen Pen, brush Brush) (*RegularPolygon, error) {
	if sides < 3 {
		return nil, fmt.Errorf("starfan: regular polygon: %d sides: %w", sides, ErrInvalidArgument)
	}
	if err := checkPoint("regular polygon center", center); err != nil {
		return nil, err
	}
	if err := checkRadius("regular polygon", distance); err != nil {
		return nil, err
	}
	p := &RegularPolygon{
		Figure:   Figure{center: center, Pen: pen, Brush: brush},
		sides:    sides,
		distance: distance,
	}
	p.initPoints()
	return p, nil
}

func (p *RegularPolygon) initPoints() {
	p.points = regularPoints(p.points, p.center, p.sides, 2*math.Pi/float64(p.sides),
		func(int) float64 { return p.distance })
}

// Sides returns the side count.
func (p *RegularPolygon) Sides() int { return p.sides }

// CenterDistance returns the circumradius.
func (p *RegularPolygon) CenterDistance() float64 { return p.distance }

// Points returns the current vertices. The returned slice MUST NOT be mutated.
func (p *RegularPolygon) Points() []Point { return p.points }

// SetCenter moves the polygon and rebuilds its vertices, discarding any
// accumulated rotation.
func (p *RegularPolygon) SetCenter(c Point) error {
	if err := checkPoint("regular polygon center", c); err != nil {
		return err
	}
	p.center = c
	p.initPoints()
	return nil
}

// SetCenterDistance changes the circumradius and rebuilds the vertices.
func (p *RegularPolygon) SetCenterDistance(d float64) error {
	if err := checkRadius("regular polygon", d); err != nil {
		return err
	}
	p.distance = d
	p.initPoints()
	return nil
}

func (p *RegularPolygon) Draw(s Surface) {
	p.applyStyle(s)
	drawPoints(s, p.points)
}

func (p *RegularPolygon) DrawWithAffine(m Matrix, s Surface) {
	p.applyStyle(s)
	drawPoints(s, m.ApplyPoints(p.points))
}

// Rotate turns every vertex about the center.
func (p *RegularPolygon) Rotate(degrees float64) {
	rotatePoints(p.points, p.center, degrees)
}

// --- Star ---

// Star has 2*PointCount vertices alternating between the outer radius (even
// indices) and the inner radius (odd indices), spaced pi/PointCount apart.
type Star struct {
	Figure
	inner  float64
	outer  float64
	count  int
	points []Point
}

// NewStar creates a star. Radii must be finite and non-negative and count
// at least 1.
func NewStar(center Point, inner, outer float64, count int, pen Pen, brush Brush) (*Star, error) {
	s := &Star{}
	if err := s.init(center, inner, outer, count, pen, brush); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Star) init(center Point, inner, outer float64, count int, pen Pen, brush Brush) error {
	if count < 1 {
		return fmt.Errorf("starfan: star: %d points: %w", count, ErrInvalidArgument)
	}
	if err := checkPoint("star center", center); err != nil {
		return err
	}
	if err := checkRadius("star inner", inner); err != nil {
		return err
	}
	if err := checkRadius("star outer", outer); err != nil {
		return err
	}
	s.Figure = Figure{center: center, Pen: pen, Brush: brush}
	s.inner = inner
	s.outer = outer
	s.count = count
	s.initPoints()
	return nil
}

func (s *Star) initPoints() {
	s.points = regularPoints(s.points, s.center, 2*s.count, math.Pi/float64(s.count),
		func(i int) float64 {
			if i%2 == 0 {
				return s.outer
			}
			return s.inner
		})
}

// InnerRadius returns the radius of the odd vertices.
func (s *Star) InnerRadius() float64 { return s.inner }

// OuterRadius returns the radius of the even vertices.
func (s *Star) OuterRadius() float64 { return s.outer }

// PointCount returns the number of star tips.
func (s *Star) PointCount() int { return s.count }

// Points returns the current vertices. The returned slice MUST NOT be mutated.
func (s *Star) Points() []Point { return s.points }

// SetCenter moves the star and rebuilds its vertices.
func (s *Star) SetCenter(c Point) error {
	if err := checkPoint("star center", c); err != nil {
		return err
	}
	s.center = c
	s.initPoints()
	return nil
}

// SetRadii changes both radii and rebuilds the vertices.
func (s *Star) SetRadii(inner, outer float64) error {
	if err := checkRadius("star inner", inner); err != nil {
		return err
	}
	if err := checkRadius("star outer", outer); err != nil {
		return err
	}
	s.inner = inner
	s.outer = outer
	s.initPoints()
	return nil
}

func (s *Star) Draw(surf Surface) {
	s.applyStyle(surf)
	drawPoints(surf, s.points)
}

func (s *Star) DrawWithAffine(m Matrix, surf Surface) {
	s.applyStyle(surf)
	drawPoints(surf, m.ApplyPoints(s.points))
}

// Rotate turns every vertex about the center.
func (s *Star) Rotate(degrees float64) {
	rotatePoints(s.points, s.center, degrees)
}
