package starfan

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func newTestComposition(t *testing.T, p float64) *Composition {
	t.Helper()
	cfg := DefaultConfig()
	cfg.SpawnProbability = p
	c, err := NewComposition(DrawRect(400, 400, 10), cfg)
	if err != nil {
		t.Fatalf("NewComposition: %v", err)
	}
	c.SetRand(rand.New(rand.NewPCG(42, 42)))
	return c
}

type recordingSink struct {
	events []SceneEvent
}

func (r *recordingSink) EmitEvent(e SceneEvent) {
	r.events = append(r.events, e)
}

func (r *recordingSink) count(typ EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func TestCompositionStartsDisabled(t *testing.T) {
	c := newTestComposition(t, 1)
	for i := 0; i < 10; i++ {
		if err := c.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if c.StarCount() != 0 {
		t.Errorf("disabled fan spawned %d stars", c.StarCount())
	}
	assertNear(t, "rotation", c.Fan().Flower().Rotation(), 0)
	if c.TickCount() != 10 {
		t.Errorf("ticks = %d, want 10", c.TickCount())
	}
}

func TestCompositionGrowsByOnePerTick(t *testing.T) {
	c := newTestComposition(t, 1)
	c.SetCullFunc(func(*PhysicalStar, Rect) bool { return false })
	c.ChangeEnableStatus()

	for i := 1; i <= 1000; i++ {
		if err := c.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if c.StarCount() != i {
			t.Fatalf("tick %d: stars = %d, want %d", i, c.StarCount(), i)
		}
	}
}

func TestCompositionLiveStarsStayInside(t *testing.T) {
	c := newTestComposition(t, 1)
	c.ChangeEnableStatus()
	sink := &recordingSink{}
	c.SetEventSink(sink)

	for i := 0; i < 300; i++ {
		if err := c.Tick(); err != nil {
			t.Fatal(err)
		}
		for _, s := range c.Stars() {
			if !s.IsAlive(c.Rect()) {
				t.Fatalf("tick %d: star %d kept after leaving the rect", i, s.ID)
			}
		}
	}
	spawned := sink.count(EventStarSpawned)
	culled := sink.count(EventStarCulled)
	if spawned != 300 {
		t.Errorf("spawned = %d, want 300", spawned)
	}
	if culled == 0 {
		t.Error("expected some stars to drift out and be culled within 300 ticks")
	}
	if spawned-culled != c.StarCount() {
		t.Errorf("spawned %d - culled %d != alive %d", spawned, culled, c.StarCount())
	}
}

func TestCompositionZeroProbabilityNeverSpawns(t *testing.T) {
	c := newTestComposition(t, 0)
	c.ChangeEnableStatus()
	for i := 0; i < 100; i++ {
		if err := c.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if c.StarCount() != 0 {
		t.Errorf("stars = %d, want 0", c.StarCount())
	}
	assertNear(t, "fan still spins", c.Fan().Flower().Rotation(), IncreaseAngle(0, -1500))
}

func TestCompositionSpawnsAtCore(t *testing.T) {
	c := newTestComposition(t, 1)
	sink := &recordingSink{}
	c.SetEventSink(sink)
	c.ChangeEnableStatus()
	if err := c.Tick(); err != nil {
		t.Fatal(err)
	}
	var spawn *SceneEvent
	for i := range sink.events {
		if sink.events[i].Type == EventStarSpawned {
			spawn = &sink.events[i]
		}
	}
	if spawn == nil {
		t.Fatal("no spawn event")
	}
	assertPoint(t, "spawn", Point{spawn.X, spawn.Y}, c.Fan().CoreCenter())
	if s := c.Stars()[0]; s.OuterRadius() != c.Fan().CoreRadius() {
		t.Errorf("star radius = %v, want core radius %v", s.OuterRadius(), c.Fan().CoreRadius())
	}
}

func TestCompositionSpawnRandom(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnProbability = 1
	cfg.SpawnMode = SpawnRandom
	c, err := NewComposition(DrawRect(400, 400, 10), cfg)
	if err != nil {
		t.Fatal(err)
	}
	sink := &recordingSink{}
	c.SetEventSink(sink)
	c.ChangeEnableStatus()
	for i := 0; i < 50; i++ {
		if err := c.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range sink.events {
		if e.Type == EventStarSpawned && !c.Rect().Contains(Point{e.X, e.Y}) {
			t.Errorf("spawned outside the rect at (%v, %v)", e.X, e.Y)
		}
	}
}

func TestCompositionHandlePress(t *testing.T) {
	c := newTestComposition(t, 0)
	sink := &recordingSink{}
	c.SetEventSink(sink)

	if c.HandlePress(Point{0, 0}) {
		t.Error("press far from the button should miss")
	}
	if !c.HandlePress(c.Button().Circle().Center()) {
		t.Fatal("press on the button should hit")
	}
	if !c.Fan().IsEnabled() || !c.Button().IsEnabled() {
		t.Error("press should enable fan and button")
	}
	if len(sink.events) != 1 || sink.events[0].Type != EventFanToggled || !sink.events[0].Enabled {
		t.Errorf("events = %+v", sink.events)
	}

	c.HandlePress(c.Button().Circle().Center())
	if c.Fan().IsEnabled() {
		t.Error("second press should disable the fan")
	}
}

func TestCompositionButtonMatchesFanSetDirectly(t *testing.T) {
	c := newTestComposition(t, 0)
	c.Fan().SetEnabled(true)
	if err := c.Tick(); err != nil {
		t.Fatal(err)
	}
	if !c.Button().IsEnabled() {
		t.Error("button should follow a fan enabled directly")
	}

	c.ChangeEnableStatus()
	if c.Fan().IsEnabled() || c.Button().IsEnabled() {
		t.Errorf("after toggle: fan=%v button=%v, want both off", c.Fan().IsEnabled(), c.Button().IsEnabled())
	}

	// Even without a tick in between the press reads the fan's state.
	c.Fan().SetEnabled(true)
	c.HandlePress(c.Button().Circle().Center())
	if c.Fan().IsEnabled() != c.Button().IsEnabled() {
		t.Errorf("after press: fan=%v button=%v", c.Fan().IsEnabled(), c.Button().IsEnabled())
	}
}

func TestCompositionButtonFadesWithTicks(t *testing.T) {
	c := newTestComposition(t, 0)
	c.ChangeEnableStatus()
	// 0.25s at 30 TPS is 7.5 ticks.
	for i := 0; i < 8; i++ {
		if err := c.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if c.Button().Fading() {
		t.Error("button fade should be done after 8 ticks")
	}
	if got := c.Button().Circle().Brush.Color; !colorNear(got, ColorGreen) {
		t.Errorf("button color = %+v, want green", got)
	}
}

func TestCompositionUpdateComponents(t *testing.T) {
	c := newTestComposition(t, 0)
	r := Rect{X: 100, Y: 50, Width: 200, Height: 200}
	if err := c.UpdateComponents(r); err != nil {
		t.Fatal(err)
	}
	if c.Rect() != r || c.Fan().Rect() != r {
		t.Errorf("rect not propagated: %+v / %+v", c.Rect(), c.Fan().Rect())
	}
	assertPoint(t, "button", c.Button().Circle().Center(), Point{284, 66})
	assertNear(t, "button radius", c.Button().Circle().Radius(), 10)

	if err := c.UpdateComponents(Rect{Width: math.NaN()}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NaN rect: err = %v", err)
	}
	if c.Rect() != r {
		t.Error("failed update should keep the previous rect")
	}
}

func TestCompositionDrawOrder(t *testing.T) {
	c := newTestComposition(t, 1)
	c.ChangeEnableStatus()
	c.SetCullFunc(func(*PhysicalStar, Rect) bool { return false })
	for i := 0; i < 3; i++ {
		if err := c.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	rec := NewRecordingSurface()
	c.Draw(rec)

	if got := rec.Count(CommandPolygon); got != 3 {
		t.Errorf("star polygons = %d, want 3", got)
	}
	// Fan first (leg), button last.
	if rec.Commands[1].Type != CommandLine {
		t.Errorf("first shape = %v, want the fan leg", rec.Commands[1].Type)
	}
	last := rec.Commands[len(rec.Commands)-1]
	if last.Type != CommandEllipse || last.Points[0] != c.Button().Circle().Center() {
		t.Errorf("last command = %+v, want the button", last)
	}
}

func TestCompositionDrawIsPure(t *testing.T) {
	c := newTestComposition(t, 1)
	c.ChangeEnableStatus()
	for i := 0; i < 5; i++ {
		_ = c.Tick()
	}
	a := NewRecordingSurface()
	b := NewRecordingSurface()
	c.Draw(a)
	c.Draw(b)
	if len(a.Commands) != len(b.Commands) {
		t.Fatalf("repeated draws differ: %d vs %d commands", len(a.Commands), len(b.Commands))
	}
	for i := range a.Commands {
		if a.Commands[i].Type != b.Commands[i].Type || a.Commands[i].Rect != b.Commands[i].Rect {
			t.Fatalf("command %d differs", i)
		}
	}
}

func TestNewCompositionValidatesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnProbability = 1.5
	if _, err := NewComposition(DrawRect(400, 400, 10), cfg); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("probability 1.5: err = %v", err)
	}
	cfg = DefaultConfig()
	cfg.TPS = 0
	if _, err := NewComposition(DrawRect(400, 400, 10), cfg); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("tps 0: err = %v", err)
	}
}

func TestCompositionSpawnErrorAbortsTick(t *testing.T) {
	c := newTestComposition(t, 1)
	c.ChangeEnableStatus()
	c.Config().Star.PointCount = 0
	if err := c.Tick(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v", err)
	}
	if c.StarCount() != 0 {
		t.Errorf("stars = %d after failed spawn", c.StarCount())
	}
}

func TestCompositionDrawFrame(t *testing.T) {
	c := newTestComposition(t, 0)
	rec := NewRecordingSurface()
	c.DrawFrame(rec)
	rects := rec.Filter(CommandRect)
	if len(rects) != 1 || rects[0].Rect != c.Rect() || rects[0].Brush.Visible() {
		t.Errorf("frame = %+v", rects)
	}
}

func TestCompositionRotateAndAffine(t *testing.T) {
	c := newTestComposition(t, 0)
	c.Rotate(30)
	assertNear(t, "rotation", c.Fan().Flower().Rotation(), 30)

	rec := NewRecordingSurface()
	c.DrawWithAffine(Translate(5, 0), rec)
	core := rec.Filter(CommandEllipse)[0]
	assertPoint(t, "core", core.Points[0], c.Fan().CoreCenter().Add(Point{5, 0}))
}
