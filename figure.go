package starfan

import "fmt"

// Drawable is anything the scene can paint, rotate, and paint through an
// affine transform. Figures, assemblies and pictures all implement it.
type Drawable interface {
	Draw(s Surface)
	DrawWithAffine(m Matrix, s Surface)
	Rotate(degrees float64)
}

// Figure holds the state shared by every shape: the center used as rotation
// pivot and the outline and fill styles. Styles are values owned by the
// figure; mutating them never affects another figure.
type Figure struct {
	center Point
	Pen    Pen
	Brush  Brush
}

// Center returns the figure's pivot.
func (f *Figure) Center() Point {
	return f.center
}

func (f *Figure) applyStyle(s Surface) {
	s.SetPen(f.Pen)
	s.SetBrush(f.Brush)
}

func checkPoint(op string, p Point) error {
	if !p.finite() {
		return fmt.Errorf("starfan: %s: non-finite point (%v, %v): %w", op, p.X, p.Y, ErrInvalidArgument)
	}
	return nil
}

func checkRadius(op string, r float64) error {
	if !isFinite(r) || r < 0 {
		return fmt.Errorf("starfan: %s: radius %v: %w", op, r, ErrInvalidArgument)
	}
	return nil
}

// --- Circle ---

// Circle is a filled, outlined circle. Rotating it is a no-op.
type Circle struct {
	Figure
	radius float64
}

// NewCircle creates a circle. The radius must be finite and non-negative.
func NewCircle(center Point, radius float64, pen Pen, brush Brush) (*Circle, error) {
	if err := checkPoint("circle center", center); err != nil {
		return nil, err
	}
	if err := checkRadius("circle", radius); err != nil {
		return nil, err
	}
	return &Circle{
		Figure: Figure{center: center, Pen: pen, Brush: brush},
		radius: radius,
	}, nil
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 {
	return c.radius
}

// SetRadius changes the radius.
func (c *Circle) SetRadius(r float64) error {
	if err := checkRadius("circle", r); err != nil {
		return err
	}
	c.radius = r
	return nil
}

// SetCenter moves the circle.
func (c *Circle) SetCenter(p Point) error {
	if err := checkPoint("circle center", p); err != nil {
		return err
	}
	c.center = p
	return nil
}

// Bounds returns the square circumscribing the circle.
func (c *Circle) Bounds() Rect {
	return Rect{
		X:      c.center.X - c.radius,
		Y:      c.center.Y - c.radius,
		Width:  2 * c.radius,
		Height: 2 * c.radius,
	}
}

// Contains reports whether p lies inside or on the circle.
func (c *Circle) Contains(p Point) bool {
	dx := p.X - c.center.X
	dy := p.Y - c.center.Y
	return dx*dx+dy*dy <= c.radius*c.radius
}

func (c *Circle) Draw(s Surface) {
	if c.radius <= 0 {
		return
	}
	c.applyStyle(s)
	s.DrawEllipse(c.center, c.radius, c.radius)
}

// DrawWithAffine maps the bounding square through m and draws the ellipse
// inscribed in the result.
func (c *Circle) DrawWithAffine(m Matrix, s Surface) {
	if c.radius <= 0 {
		return
	}
	box := m.ApplyRect(c.Bounds())
	if box.Empty() {
		return
	}
	c.applyStyle(s)
	s.DrawEllipse(box.Center(), box.Width/2, box.Height/2)
}

func (c *Circle) Rotate(float64) {}
