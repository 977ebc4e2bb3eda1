package starfan

import "fmt"

// Flower is a circular core with pie-slice petals around it. It is drawn as
// one unit: petals first, core on top.
type Flower struct {
	core        *Circle
	petals      int
	petalRadius float64
	rotation    float64

	// PetalBrush fills the petals. Petal outlines use the core's pen.
	PetalBrush Brush
}

// NewFlower creates a flower with petals petals around core.
func NewFlower(petals int, core *Circle, petalRadius float64, petalBrush Brush) (*Flower, error) {
	if petals < 1 {
		return nil, fmt.Errorf("starfan: flower: %d petals: %w", petals, ErrInvalidArgument)
	}
	if core == nil {
		return nil, fmt.Errorf("starfan: flower: nil core: %w", ErrInvalidArgument)
	}
	if err := checkRadius("flower petal", petalRadius); err != nil {
		return nil, err
	}
	return &Flower{
		core:        core,
		petals:      petals,
		petalRadius: petalRadius,
		PetalBrush:  petalBrush,
	}, nil
}

// Core returns the flower's center circle.
func (f *Flower) Core() *Circle { return f.core }

// PetalCount returns the number of painted petals.
func (f *Flower) PetalCount() int { return f.petals }

// PetalRadius returns the radius of the petal sectors.
func (f *Flower) PetalRadius() float64 { return f.petalRadius }

// SetPetalRadius changes the petal radius.
func (f *Flower) SetPetalRadius(r float64) error {
	if err := checkRadius("flower petal", r); err != nil {
		return err
	}
	f.petalRadius = r
	return nil
}

// Rotation returns the current petal offset in degrees, within (-360, 360].
func (f *Flower) Rotation() float64 { return f.rotation }

// Rotate advances the petal offset.
func (f *Flower) Rotate(degrees float64) {
	f.rotation = IncreaseAngle(f.rotation, degrees)
}

// PetalStep returns the angular width of one petal in AngleUnit. The circle
// is split into 2*PetalCount sectors and every other one is painted.
func (f *Flower) PetalStep() float64 {
	return float64(int(360/float64(f.petals*2)) * AngleUnit)
}

func (f *Flower) Draw(s Surface) {
	f.drawAt(s, f.core.center, f.core.radius, f.petalRadius)
}

func (f *Flower) DrawWithAffine(m Matrix, s Surface) {
	f.drawPetals(s, m.ApplyRect(petalRect(f.core.center, f.petalRadius)))
	f.core.DrawWithAffine(m, s)
}

// drawAt paints the flower at an explicit layout without touching its
// stored core geometry. Fan uses it to draw into arbitrary rectangles.
func (f *Flower) drawAt(s Surface, center Point, coreRadius, petalRadius float64) {
	f.drawPetals(s, petalRect(center, petalRadius))
	if coreRadius <= 0 {
		return
	}
	f.core.applyStyle(s)
	s.DrawEllipse(center, coreRadius, coreRadius)
}

func (f *Flower) drawPetals(s Surface, rect Rect) {
	if rect.Empty() {
		return
	}
	s.SetPen(f.core.Pen)
	s.SetBrush(f.PetalBrush)

	step := f.PetalStep()
	start := f.rotation * AngleUnit
	for i := 0; i < f.petals; i++ {
		s.DrawPie(rect, start, step)
		start += 2 * step
	}
}

func petalRect(center Point, radius float64) Rect {
	return Rect{
		X:      center.X - radius,
		Y:      center.Y - radius,
		Width:  2 * radius,
		Height: 2 * radius,
	}
}
