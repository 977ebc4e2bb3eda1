package starfan

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertPoint(t *testing.T, name string, got, want Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Matrix) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(got[i][j]-want[i][j]) > epsilon {
				t.Errorf("%s[%d][%d] = %v, want %v (full: %v vs %v)", name, i, j, got[i][j], want[i][j], got, want)
			}
		}
	}
}

// --- Named constructors ---

func TestIdentityConstructors(t *testing.T) {
	assertMatrix(t, "rotate(0)", Rotate(0), Identity())
	assertMatrix(t, "translate(0,0)", Translate(0, 0), Identity())
	assertMatrix(t, "scale(1,1)", Scale(1, 1), Identity())
}

func TestIdentityApply(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		p := Point{rng.Float64()*2000 - 1000, rng.Float64()*2000 - 1000}
		assertPoint(t, "identity", Identity().Apply(p), p)
	}
}

func TestTranslateApply(t *testing.T) {
	assertPoint(t, "translate", Translate(10, -5).Apply(Point{1, 2}), Point{11, -3})
}

func TestRotate90(t *testing.T) {
	// +X turns into +Y.
	assertPoint(t, "rot90", Rotate(90).Apply(Point{1, 0}), Point{0, 1})
	assertPoint(t, "rot90 y", Rotate(90).Apply(Point{0, 1}), Point{-1, 0})
}

func TestRotateWrapsWithoutNormalization(t *testing.T) {
	assertMatrix(t, "rot(450)", Rotate(450), Rotate(90))
	assertMatrix(t, "rot(-270)", Rotate(-270), Rotate(90))
}

func TestScaleApply(t *testing.T) {
	assertPoint(t, "scale", Scale(2, 3).Apply(Point{4, 5}), Point{8, 15})
}

func TestReflect(t *testing.T) {
	p := Point{3, 4}
	assertPoint(t, "x", Reflect(AxisX).Apply(p), Point{-3, 4})
	assertPoint(t, "y", Reflect(AxisY).Apply(p), Point{3, -4})
	assertPoint(t, "xy", Reflect(AxisXY).Apply(p), Point{-3, -4})
}

func TestNamedConstructorsKeepLastRow(t *testing.T) {
	for name, m := range map[string]Matrix{
		"translate": Translate(3, 4),
		"rotate":    Rotate(33),
		"scale":     Scale(2, 5),
		"reflect":   Reflect(AxisXY),
	} {
		if m[2] != [3]float64{0, 0, 1} {
			t.Errorf("%s last row = %v, want [0 0 1]", name, m[2])
		}
	}
}

// --- Composition ---

func TestMulIdentity(t *testing.T) {
	m := Matrix{{2, 1, 3}, {4, 5, 6}, {7, 8, 9}}
	assertMatrix(t, "id*m", Identity().Mul(m), m)
	assertMatrix(t, "m*id", m.Mul(Identity()), m)
}

func TestMulAssociative(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	random := func() Matrix {
		var m Matrix
		for i := range m {
			for j := range m[i] {
				m[i][j] = rng.Float64()*4 - 2
			}
		}
		return m
	}
	for i := 0; i < 50; i++ {
		a, b, c := random(), random(), random()
		assertMatrix(t, "assoc", a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
	}
}

func TestMulAppliesRightmostFirst(t *testing.T) {
	m := Translate(100, 0).Mul(Rotate(90))
	assertPoint(t, "rotate then translate", m.Apply(Point{1, 0}), Point{100, 1})

	n := Rotate(90).Mul(Translate(100, 0))
	assertPoint(t, "translate then rotate", n.Apply(Point{1, 0}), Point{0, 101})
}

func TestMulNotCommutative(t *testing.T) {
	a := Translate(5, 0)
	b := Scale(2, 2)
	if a.Mul(b) == b.Mul(a) {
		t.Error("translate*scale should differ from scale*translate")
	}
}

func TestRotateAboutPivot(t *testing.T) {
	pivot := Point{10, 10}
	m := Translate(pivot.X, pivot.Y).Mul(Rotate(180)).Mul(Translate(-pivot.X, -pivot.Y))
	assertPoint(t, "about pivot", m.Apply(Point{20, 10}), Point{0, 10})
}

func TestApplyVector(t *testing.T) {
	v := Translate(1, 2).ApplyVector(Vector{3, 4, 1})
	if v != (Vector{4, 6, 1}) {
		t.Errorf("v = %v, want [4 6 1]", v)
	}
	// A direction (w = 0) ignores translation.
	d := Translate(1, 2).ApplyVector(Vector{3, 4, 0})
	if d != (Vector{3, 4, 0}) {
		t.Errorf("d = %v, want [3 4 0]", d)
	}
}

func TestVectorRoundTrip(t *testing.T) {
	p := Point{1.5, -2.5}
	assertPoint(t, "roundtrip", VectorFromPoint(p).Point(), p)
}

func TestApplyRectNormalizes(t *testing.T) {
	r := Reflect(AxisX).ApplyRect(Rect{X: 10, Y: 20, Width: 30, Height: 40})
	want := Rect{X: -40, Y: 20, Width: 30, Height: 40}
	if r != want {
		t.Errorf("ApplyRect = %+v, want %+v", r, want)
	}
}

// --- Helpers ---

func TestIncreaseAngle(t *testing.T) {
	assertNear(t, "350+20", IncreaseAngle(350, 20), 10)
	assertNear(t, "-350-20", IncreaseAngle(-350, -20), -10)
	assertNear(t, "10+20", IncreaseAngle(10, 20), 30)
	assertNear(t, "350+10", IncreaseAngle(350, 10), 360)
	assertNear(t, "-350-10", IncreaseAngle(-350, -10), 0)
	assertNear(t, "0+725", IncreaseAngle(0, 725), 5)
}

func TestRotatePoint(t *testing.T) {
	got := RotatePoint(Point{2, 1}, Point{1, 1}, 90)
	assertPoint(t, "rotate", got, Point{1, 2})
}

func TestRotatePointMatchesMatrix(t *testing.T) {
	c := Point{3, -7}
	p := Point{12, 5}
	m := Translate(c.X, c.Y).Mul(Rotate(47)).Mul(Translate(-c.X, -c.Y))
	assertPoint(t, "matrix", RotatePoint(p, c, 47), m.Apply(p))
}

func TestDistance(t *testing.T) {
	assertNear(t, "3-4-5", Distance(Point{0, 0}, Point{3, 4}), 5)
}

func TestDrawRect(t *testing.T) {
	r := DrawRect(400, 300, 10)
	want := Rect{X: 60, Y: 10, Width: 280, Height: 280}
	if r != want {
		t.Errorf("DrawRect = %+v, want %+v", r, want)
	}
	if got := DrawRect(10, 10, 20); got.Width != 0 || got.Height != 0 {
		t.Errorf("oversized margin should yield empty rect, got %+v", got)
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	if !r.Contains(Point{100, 50}) {
		t.Error("edge points should be inside")
	}
	if r.Contains(Point{100.001, 0}) {
		t.Error("point right of the edge should be outside")
	}
	assertPoint(t, "bottomLeft", r.BottomLeft(), Point{0, 50})
	assertNear(t, "minSide", r.MinSide(), 50)
	assertNear(t, "degenerate minSide", Rect{Width: -5, Height: 3}.MinSide(), 0)
}
