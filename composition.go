package starfan

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
)

// SpawnMode selects where new stars appear.
type SpawnMode uint8

const (
	SpawnAtCore SpawnMode = iota // at the fan's flower core
	SpawnRandom                  // at a random point inside the bounding rectangle
)

// Config controls the scene controller.
type Config struct {
	// SpawnProbability is the chance per enabled tick that a star spawns.
	SpawnProbability float64
	// SpawnMode selects the spawn position.
	SpawnMode SpawnMode
	// FanStep is the flower rotation per enabled tick, in degrees.
	FanStep float64
	// TPS is the host tick rate, used to convert ticks to seconds for the
	// button's color fade.
	TPS int
	// Star configures every spawned star.
	Star StarConfig
}

// DefaultConfig returns the reference scene settings: 30 ticks per second,
// a 10% spawn chance per tick, stars spawned at the fan core.
func DefaultConfig() Config {
	return Config{
		SpawnProbability: 0.1,
		SpawnMode:        SpawnAtCore,
		FanStep:          DefaultFanStep,
		TPS:              30,
		Star:             DefaultStarConfig(),
	}
}

// EventSink is the interface for optional event forwarding, for example
// into an ECS world. See the ecs sub-module.
type EventSink interface {
	EmitEvent(event SceneEvent)
}

// EventType identifies a kind of scene event.
type EventType uint8

const (
	EventStarSpawned EventType = iota // a star was added to the scene
	EventStarCulled                   // a star left the bounding rectangle and was removed
	EventFanToggled                   // the toggle button flipped the fan
)

// SceneEvent carries scene event data.
type SceneEvent struct {
	Type   EventType
	Tick   uint64
	StarID uint32  // valid for star events
	X, Y   float64 // star center for star events
	// Enabled is the fan state after an EventFanToggled.
	Enabled bool
}

// CullFunc reports whether a star should be removed from the scene.
type CullFunc func(s *PhysicalStar, bounds Rect) bool

// cullDead is the default CullFunc: remove stars that are no longer alive.
func cullDead(s *PhysicalStar, bounds Rect) bool {
	return !s.IsAlive(bounds)
}

// Composition is the scene controller. It owns the fan, the toggle button
// and the stars, and advances them one tick at a time. Hosts call Tick from
// their update loop and Draw from their paint pass; Draw never changes state.
type Composition struct {
	fan    *Fan
	button *ToggleButton
	stars  *Picture

	rect Rect
	cfg  Config
	rng  *rand.Rand
	cull CullFunc
	sink EventSink
	tick uint64

	debug    bool
	debugOut io.Writer
}

// NewComposition creates a scene laid out in rect with a disabled fan.
func NewComposition(rect Rect, cfg Config) (*Composition, error) {
	if !isFinite(cfg.SpawnProbability) || cfg.SpawnProbability < 0 || cfg.SpawnProbability > 1 {
		return nil, fmt.Errorf("starfan: spawn probability %v: %w", cfg.SpawnProbability, ErrInvalidArgument)
	}
	if cfg.TPS <= 0 {
		return nil, fmt.Errorf("starfan: tps %d: %w", cfg.TPS, ErrInvalidArgument)
	}
	fan, err := NewFan(rect)
	if err != nil {
		return nil, err
	}
	fan.Step = cfg.FanStep

	c := &Composition{
		fan:      fan,
		stars:    NewPicture(),
		rect:     rect,
		cfg:      cfg,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		cull:     cullDead,
		debugOut: os.Stderr,
	}
	center, radius := buttonLayout(rect)
	c.button, err = NewToggleButton(center, radius, MainPen, c.toggleFan)
	if err != nil {
		return nil, err
	}
	c.button.SetStateFunc(fan.IsEnabled)
	return c, nil
}

// buttonLayout places the toggle button in the top-right corner of rect.
func buttonLayout(r Rect) (Point, float64) {
	k := r.MinSide()
	return Point{r.Right() - 0.08*k, r.Top() + 0.08*k}, 0.05 * k
}

func (c *Composition) toggleFan() {
	c.fan.ChangeEnableStatus()
	c.emit(SceneEvent{Type: EventFanToggled, Tick: c.tick, Enabled: c.fan.IsEnabled()})
}

// Fan returns the scene's fan.
func (c *Composition) Fan() *Fan { return c.fan }

// Button returns the toggle button.
func (c *Composition) Button() *ToggleButton { return c.button }

// Rect returns the current bounding rectangle.
func (c *Composition) Rect() Rect { return c.rect }

// Config returns a pointer to the scene config for live tuning.
func (c *Composition) Config() *Config { return &c.cfg }

// TickCount returns the number of ticks run so far.
func (c *Composition) TickCount() uint64 { return c.tick }

// StarCount returns the number of live stars.
func (c *Composition) StarCount() int { return c.stars.Len() }

// Stars returns the live stars in paint order.
func (c *Composition) Stars() []*PhysicalStar {
	out := make([]*PhysicalStar, 0, c.stars.Len())
	for _, d := range c.stars.Children() {
		out = append(out, d.(*PhysicalStar))
	}
	return out
}

// SetRand replaces the random source used for spawning.
func (c *Composition) SetRand(rng *rand.Rand) {
	c.rng = rng
}

// SetCullFunc replaces the removal predicate. nil restores the default,
// which removes stars for which IsAlive is false.
func (c *Composition) SetCullFunc(fn CullFunc) {
	if fn == nil {
		fn = cullDead
	}
	c.cull = fn
}

// SetEventSink sets the optional event bridge.
func (c *Composition) SetEventSink(sink EventSink) {
	c.sink = sink
}

// UpdateComponents hands the scene a new bounding rectangle. Hosts call it
// whenever the window is laid out.
func (c *Composition) UpdateComponents(rect Rect) error {
	if err := c.fan.SetRect(rect); err != nil {
		return err
	}
	center, radius := buttonLayout(rect)
	if err := c.button.SetGeometry(center, radius); err != nil {
		return err
	}
	c.rect = rect
	return nil
}

// HandlePress routes a pointer press. It reports whether the press hit the
// toggle button.
func (c *Composition) HandlePress(p Point) bool {
	if !c.button.Contains(p) {
		return false
	}
	c.button.Press()
	return true
}

// ChangeEnableStatus flips the fan as if the button had been pressed.
func (c *Composition) ChangeEnableStatus() {
	c.button.Press()
}

// Tick advances the scene by one frame:
//
//  1. spin the fan and maybe spawn a star at its core (only while enabled)
//  2. animate every star, including one spawned this tick
//  3. drop the stars the cull predicate rejects
//  4. advance the button's color fade
//
// A failed spawn aborts the tick before any star is touched.
func (c *Composition) Tick() error {
	c.tick++
	var stats tickStats

	if c.fan.IsEnabled() {
		c.fan.Animation()
		if c.rng.Float64() < c.cfg.SpawnProbability {
			star, err := c.spawn()
			if err != nil {
				return fmt.Errorf("starfan: tick %d: spawn: %w", c.tick, err)
			}
			c.stars.Add(star)
			stats.spawned++
			c.emit(SceneEvent{Type: EventStarSpawned, Tick: c.tick, StarID: star.ID, X: star.center.X, Y: star.center.Y})
		}
	}

	pivot := c.fan.CoreCenter()
	for _, d := range c.stars.Children() {
		d.(*PhysicalStar).Animate(pivot, c.rect)
	}

	stats.culled = c.stars.Filter(func(d Drawable) bool {
		s := d.(*PhysicalStar)
		if !c.cull(s, c.rect) {
			return true
		}
		c.emit(SceneEvent{Type: EventStarCulled, Tick: c.tick, StarID: s.ID, X: s.center.X, Y: s.center.Y})
		return false
	})

	c.button.Update(1 / float32(c.cfg.TPS))

	if c.debug {
		stats.alive = c.stars.Len()
		c.debugLog(stats)
	}
	return nil
}

func (c *Composition) spawn() (*PhysicalStar, error) {
	center := c.fan.CoreCenter()
	if c.cfg.SpawnMode == SpawnRandom {
		center = Point{
			X: Range{c.rect.Left(), c.rect.Right()}.Random(c.rng),
			Y: Range{c.rect.Top(), c.rect.Bottom()}.Random(c.rng),
		}
	}
	return SpawnPhysicalStar(center, c.fan.CoreRadius(), c.cfg.Star, c.rng)
}

func (c *Composition) emit(e SceneEvent) {
	if c.sink != nil {
		c.sink.EmitEvent(e)
	}
}

// Draw paints the fan, then the stars, then the button.
func (c *Composition) Draw(s Surface) {
	c.fan.Draw(s)
	c.stars.Draw(s)
	c.button.Draw(s)
}

// DrawFrame outlines the bounding rectangle with the main pen. Hosts call it
// before Draw.
func (c *Composition) DrawFrame(s Surface) {
	if c.rect.Empty() {
		return
	}
	s.SetPen(MainPen)
	s.SetBrush(NoBrush)
	s.DrawRect(c.rect)
}

// DrawWithAffine paints the whole scene through m.
func (c *Composition) DrawWithAffine(m Matrix, s Surface) {
	c.fan.DrawWithAffine(m, s)
	c.stars.DrawWithAffine(m, s)
	c.button.DrawWithAffine(m, s)
}

// Rotate turns the fan's petals and every star about its own center.
func (c *Composition) Rotate(degrees float64) {
	c.fan.Rotate(degrees)
	c.stars.Rotate(degrees)
}
