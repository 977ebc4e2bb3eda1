// Package starfan is a small animated vector scene: a fan whose flower spins
// when toggled on, throwing off stars that orbit, spin, drift outward and
// fade before leaving the frame.
//
// The package is the geometry and animation core. It never opens a window;
// hosts drive it with explicit calls and supply a [Surface] to paint into.
// Two hosts ship with the module: ebitenhost (an [Ebitengine] window) and
// termhost (a [tcell] terminal).
//
// # Quick start
//
//	scene, err := starfan.NewComposition(starfan.DrawRect(400, 400, 10), starfan.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	// every tick (30 per second):
//	_ = scene.Tick()
//	// every paint pass:
//	scene.Draw(surface)
//
// # Figures
//
// [Circle], [RegularPolygon] and [Star] share a [Figure] base holding the
// center (the rotation pivot), an outline [Pen] and a fill [Brush]. Point-set
// figures rebuild all of their vertices from their parameters whenever the
// center or a radius changes. Every drawable implements [Drawable]: Draw,
// Rotate and DrawWithAffine.
//
// # Transforms
//
// [Matrix] is a 3x3 homogeneous transform built from [Translate], [Rotate],
// [Scale] and [Reflect]. Products apply right to left:
//
//	m := starfan.Translate(100, 0).Mul(starfan.Rotate(90)) // rotate, then move
//	p := m.Apply(starfan.Point{X: 1})                       // (100, 1)
//
// # Composites
//
// [Picture] is an ordered list of drawables painted in insertion order.
// [Flower] and [Fan] are fixed assemblies. [Composition] owns the fan, the
// [ToggleButton] and the live [PhysicalStar] set and advances them with Tick.
//
// Everything is single-threaded: call Tick and Draw from the same goroutine.
//
// [Ebitengine]: https://ebitengine.org
// [tcell]: https://github.com/gdamore/tcell
package starfan
