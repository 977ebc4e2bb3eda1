package starfan

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// StarConfig controls how physical stars are spawned and how they move.
type StarConfig struct {
	// PointCount is the number of tips of every star.
	PointCount int
	// InnerRatio is the inner radius as a fraction of the outer radius.
	InnerRatio float64
	// InnerSpeed is the range of spin speeds in degrees per tick.
	InnerSpeed Range
	// OuterSpeed is the range of initial orbit speeds in degrees per tick.
	OuterSpeed Range
	// DriftSpeed is the range of initial radial drift speeds in units per tick.
	DriftSpeed Range
	// OuterDecay multiplies the orbit speed every tick.
	OuterDecay float64
	// DriftDecay multiplies the drift coefficient every tick.
	DriftDecay float64
	// DriftBrake sets the initial drift coefficient to -DriftBrake*drift.
	DriftBrake float64
	// FadeOffset is subtracted from the edge distance before it becomes the
	// alpha value (on a 0-255 scale).
	FadeOffset float64
	// Pen and Brush are the initial styles of every spawned star.
	Pen   Pen
	Brush Brush
}

// DefaultStarConfig returns the reference star behavior.
func DefaultStarConfig() StarConfig {
	return StarConfig{
		PointCount: 4,
		InnerRatio: 0.25,
		InnerSpeed: Range{20, 45},
		OuterSpeed: Range{0, 0.1},
		DriftSpeed: Range{1, 5},
		OuterDecay: 0.99,
		DriftDecay: 0.9,
		DriftBrake: 0.05,
		FadeOffset: 15,
		Pen:        MainPen,
		Brush:      Brush{Color: ColorYellow},
	}
}

// StarMotion is the initial kinematic state of a physical star.
type StarMotion struct {
	InnerSpeed float64 // spin, degrees per tick
	OuterSpeed float64 // orbit around the pivot, degrees per tick
	DriftSpeed float64 // radial drift away from the pivot, units per tick
	Heading    float64 // drift direction in degrees while the star sits on the pivot
}

// RandomMotion draws a StarMotion from the config ranges.
func (c StarConfig) RandomMotion(rng *rand.Rand) StarMotion {
	return StarMotion{
		InnerSpeed: c.InnerSpeed.Random(rng),
		OuterSpeed: c.OuterSpeed.Random(rng),
		DriftSpeed: c.DriftSpeed.Random(rng),
		Heading:    Range{0, 360}.Random(rng),
	}
}

// starIDCounter is a plain counter (no atomic; the scene is single-threaded).
var starIDCounter uint32

func nextStarID() uint32 {
	starIDCounter++
	return starIDCounter
}

// PhysicalStar is a Star that spins about its own center, orbits a pivot,
// drifts radially away from it and fades out near the edge of a reference
// rectangle. Once IsAlive reports false the owner drops it for good.
type PhysicalStar struct {
	Star
	ID uint32

	innerSpeed    float64
	outerSpeed    float64
	drift         float64
	driftCoef     float64
	innerRotation float64
	outerRotation float64
	heading       Point

	outerDecay float64
	driftDecay float64
	fadeOffset float64
}

// NewPhysicalStar creates a star at center with the given outer radius and
// initial motion.
func NewPhysicalStar(center Point, outerRadius float64, motion StarMotion, cfg StarConfig) (*PhysicalStar, error) {
	for _, v := range [...]float64{motion.InnerSpeed, motion.OuterSpeed, motion.DriftSpeed, motion.Heading} {
		if !isFinite(v) {
			return nil, fmt.Errorf("starfan: physical star: non-finite motion %+v: %w", motion, ErrInvalidArgument)
		}
	}
	if !isFinite(cfg.InnerRatio) || cfg.InnerRatio < 0 {
		return nil, fmt.Errorf("starfan: physical star: inner ratio %v: %w", cfg.InnerRatio, ErrInvalidArgument)
	}
	ps := &PhysicalStar{
		ID:         nextStarID(),
		innerSpeed: motion.InnerSpeed,
		outerSpeed: motion.OuterSpeed,
		drift:      motion.DriftSpeed,
		driftCoef:  -cfg.DriftBrake * motion.DriftSpeed,
		outerDecay: cfg.OuterDecay,
		driftDecay: cfg.DriftDecay,
		fadeOffset: cfg.FadeOffset,
	}
	sin, cos := math.Sincos(motion.Heading * math.Pi / 180)
	ps.heading = Point{cos, sin}
	if err := ps.Star.init(center, outerRadius*cfg.InnerRatio, outerRadius, cfg.PointCount, cfg.Pen, cfg.Brush); err != nil {
		return nil, err
	}
	return ps, nil
}

// SpawnPhysicalStar creates a star with motion drawn at random from cfg.
func SpawnPhysicalStar(center Point, outerRadius float64, cfg StarConfig, rng *rand.Rand) (*PhysicalStar, error) {
	return NewPhysicalStar(center, outerRadius, cfg.RandomMotion(rng), cfg)
}

// InnerRotation returns the accumulated spin in degrees.
func (s *PhysicalStar) InnerRotation() float64 { return s.innerRotation }

// OuterRotation returns the accumulated orbit angle in degrees.
func (s *PhysicalStar) OuterRotation() float64 { return s.outerRotation }

// InnerSpeed returns the spin speed.
func (s *PhysicalStar) InnerSpeed() float64 { return s.innerSpeed }

// OuterSpeed returns the current, decaying orbit speed.
func (s *PhysicalStar) OuterSpeed() float64 { return s.outerSpeed }

// DriftSpeed returns the current radial drift speed.
func (s *PhysicalStar) DriftSpeed() float64 { return s.drift }

// Animate advances the star by one tick. pivot is the orbit center and
// bounds the reference rectangle used for fading.
func (s *PhysicalStar) Animate(pivot Point, bounds Rect) {
	s.updateColor(bounds)
	s.updateCharacteristics()
	s.orbit(pivot)

	s.initPoints()
	rotatePoints(s.points, s.center, s.innerRotation)
}

// IsAlive reports whether every vertex lies inside the closed rectangle.
func (s *PhysicalStar) IsAlive(bounds Rect) bool {
	for _, p := range s.points {
		if !bounds.Contains(p) {
			return false
		}
	}
	return true
}

// EdgeDistance returns the smallest gap between the center and the four
// edges of bounds. It is negative when the center is outside.
func (s *PhysicalStar) EdgeDistance(bounds Rect) float64 {
	return min(
		s.center.X-bounds.Left(),
		bounds.Right()-s.center.X,
		s.center.Y-bounds.Top(),
		bounds.Bottom()-s.center.Y,
	)
}

// updateColor fades both styles once the star is within a third of the
// shorter side from an edge. Closer stars get lower alpha.
func (s *PhysicalStar) updateColor(bounds Rect) {
	distance := s.EdgeDistance(bounds)
	if distance > bounds.MinSide()/3 {
		return
	}
	alpha := clamp01((distance - s.fadeOffset) / 255)
	s.Pen.Color.A = alpha
	s.Brush.Color.A = alpha
}

func (s *PhysicalStar) updateCharacteristics() {
	s.innerRotation = IncreaseAngle(s.innerRotation, s.innerSpeed)
	s.outerRotation = IncreaseAngle(s.outerRotation, s.outerSpeed)
	s.outerSpeed *= s.outerDecay

	s.driftCoef *= s.driftDecay
	s.drift += s.driftCoef
}

// orbit rotates the center about pivot by the accumulated outer angle and
// pushes it along the rotated radial direction by the drift speed:
//
//	Translate(pivot + drift*dir) * Rotate(outer) * Translate(-pivot)
func (s *PhysicalStar) orbit(pivot Point) {
	dir := s.heading
	if d := Distance(s.center, pivot); d > 1e-9 {
		dir = Point{(s.center.X - pivot.X) / d, (s.center.Y - pivot.Y) / d}
	}
	rot := Rotate(s.outerRotation)
	dir = rot.Apply(dir)
	m := Translate(pivot.X+s.drift*dir.X, pivot.Y+s.drift*dir.Y).
		Mul(rot).
		Mul(Translate(-pivot.X, -pivot.Y))
	s.center = m.Apply(s.center)
}
