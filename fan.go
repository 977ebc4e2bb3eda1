package starfan

import (
	"fmt"
	"math"
)

const (
	// MainPenWidth is the stroke width of the scene's main outline pen.
	MainPenWidth = 3
	// DefaultPetalCount is the number of fan blades.
	DefaultPetalCount = 5
	// DefaultFanStep is the flower rotation per animation tick, in degrees.
	DefaultFanStep = -15.0

	legThickness = 0.025
)

// MainPen is the outline pen shared by the fan and the stars.
var MainPen = Pen{Color: ColorBlack, Width: MainPenWidth}

// FanLayout is the geometry of a fan derived from its bounding rectangle.
// All values are proportions of the rectangle's size measured from its
// bottom-left corner.
type FanLayout struct {
	CoreCenter  Point
	CoreRadius  float64
	PetalRadius float64
	LegStart    Point
	LegEnd      Point
	LegWidth    float64
	Platform    Rect
}

// LayoutFan computes the fan geometry for r. A degenerate rectangle yields
// zero radii rather than NaN.
func LayoutFan(r Rect) FanLayout {
	start := r.BottomLeft()
	w, h := math.Max(r.Width, 0), math.Max(r.Height, 0)
	k := r.MinSide()
	cx := start.X + 0.5*w

	return FanLayout{
		CoreCenter:  Point{cx, start.Y - 0.65*h},
		CoreRadius:  0.05 * k,
		PetalRadius: 0.25 * k,
		LegStart:    Point{cx, start.Y - 0.1*h},
		LegEnd:      Point{cx, start.Y - 0.65*h},
		LegWidth:    legThickness * h,
		Platform: RectFromPoints(
			Point{start.X + 0.3*w, start.Y - 0.1*h},
			Point{start.X + 0.7*w, start.Y},
		),
	}
}

// Fan ("ventilator") is a rotating flower on a leg standing on a platform.
// Its geometry is recomputed from the bounding rectangle on every draw.
type Fan struct {
	flower  *Flower
	rect    Rect
	enabled bool

	// Step is the flower rotation applied by Animation while enabled.
	Step float64
}

// NewFan creates a disabled fan laid out in rect.
func NewFan(rect Rect) (*Fan, error) {
	core, err := NewCircle(Point{}, 0, MainPen, Brush{Color: ColorBlack})
	if err != nil {
		return nil, err
	}
	flower, err := NewFlower(DefaultPetalCount, core, 0, Brush{Color: ColorPurple})
	if err != nil {
		return nil, err
	}
	f := &Fan{flower: flower, Step: DefaultFanStep}
	if err := f.SetRect(rect); err != nil {
		return nil, err
	}
	return f, nil
}

// Flower returns the fan's rotating flower.
func (f *Fan) Flower() *Flower { return f.flower }

// Rect returns the bounding rectangle.
func (f *Fan) Rect() Rect { return f.rect }

// SetRect changes the bounding rectangle and moves the flower core to match,
// so CoreCenter and CoreRadius are valid before the next draw.
func (f *Fan) SetRect(r Rect) error {
	if !isFinite(r.X) || !isFinite(r.Y) || !isFinite(r.Width) || !isFinite(r.Height) {
		return fmt.Errorf("starfan: fan rect %+v: %w", r, ErrInvalidArgument)
	}
	l := LayoutFan(r)
	if err := f.flower.core.SetCenter(l.CoreCenter); err != nil {
		return err
	}
	if err := f.flower.core.SetRadius(l.CoreRadius); err != nil {
		return err
	}
	if err := f.flower.SetPetalRadius(l.PetalRadius); err != nil {
		return err
	}
	f.rect = r
	return nil
}

// Layout returns the geometry for the current rectangle.
func (f *Fan) Layout() FanLayout {
	return LayoutFan(f.rect)
}

// CoreCenter returns the center of the flower core, the pivot stars orbit.
func (f *Fan) CoreCenter() Point {
	return f.flower.core.center
}

// CoreRadius returns the radius of the flower core.
func (f *Fan) CoreRadius() float64 {
	return f.flower.core.radius
}

// IsEnabled reports whether the fan is spinning.
func (f *Fan) IsEnabled() bool { return f.enabled }

// SetEnabled turns the fan on or off.
func (f *Fan) SetEnabled(on bool) { f.enabled = on }

// ChangeEnableStatus flips the enabled state. It is the toggle button's
// press callback.
func (f *Fan) ChangeEnableStatus() {
	f.enabled = !f.enabled
}

// Animation advances the flower by Step while the fan is enabled.
func (f *Fan) Animation() {
	if !f.enabled {
		return
	}
	f.flower.Rotate(f.Step)
}

// Rotate turns the flower's petals.
func (f *Fan) Rotate(degrees float64) {
	f.flower.Rotate(degrees)
}

func (f *Fan) Draw(s Surface) {
	f.DrawByRect(f.rect, s)
}

// DrawWithAffine maps the bounding rectangle through m and lays the fan out
// in the result.
func (f *Fan) DrawWithAffine(m Matrix, s Surface) {
	f.DrawByRect(m.ApplyRect(f.rect), s)
}

// DrawByRect paints the fan laid out in r. Order matters: the leg, then the
// platform over the leg's foot, then the flower over the leg's top.
func (f *Fan) DrawByRect(r Rect, s Surface) {
	if r.Empty() {
		return
	}
	l := LayoutFan(r)

	s.SetPen(Pen{Color: ColorBlack, Width: l.LegWidth})
	s.DrawLine(l.LegStart, l.LegEnd)

	s.SetPen(MainPen)
	s.FillRect(l.Platform, Brush{Color: ColorWhite})
	s.SetBrush(NoBrush)
	s.DrawRect(l.Platform)

	f.flower.drawAt(s, l.CoreCenter, l.CoreRadius, l.PetalRadius)
}
