package ebitenhost

import (
	"math"
	"testing"

	"github.com/phanxgames/starfan"
)

const epsilon = 1e-4 // vertices are float32

func near(a, b float64) bool { return math.Abs(a-b) < epsilon }

func TestFillPolygonFanFromCentroid(t *testing.T) {
	var m mesh
	square := []starfan.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	m.fillPolygon(square, starfan.ColorRed)

	if len(m.verts) != 5 {
		t.Fatalf("verts = %d, want 5 (hub + 4)", len(m.verts))
	}
	if len(m.inds) != 12 {
		t.Fatalf("inds = %d, want 12 (4 triangles)", len(m.inds))
	}
	hub := m.verts[0]
	if !near(float64(hub.DstX), 5) || !near(float64(hub.DstY), 5) {
		t.Errorf("hub = (%v, %v), want (5, 5)", hub.DstX, hub.DstY)
	}
	for i := 0; i < len(m.inds); i += 3 {
		if m.inds[i] != 0 {
			t.Errorf("triangle %d does not start at the hub", i/3)
		}
	}
	// Closing triangle joins the last vertex back to the first.
	if m.inds[9] != 0 || m.inds[10] != 4 || m.inds[11] != 1 {
		t.Errorf("closing triangle = %v", m.inds[9:12])
	}
	for _, v := range m.verts {
		if v.ColorR != 1 || v.ColorG != 0 || v.ColorA != 1 || v.SrcX != 0.5 {
			t.Fatalf("vertex = %+v", v)
		}
	}
}

func TestFillFanOpen(t *testing.T) {
	var m mesh
	m.fillFan(starfan.Point{}, []starfan.Point{{X: 1}, {Y: 1}, {X: -1}}, false, starfan.ColorBlack)
	if len(m.inds) != 6 {
		t.Errorf("inds = %d, want 6 (2 triangles, no closing)", len(m.inds))
	}
}

func TestStrokeSegmentWidth(t *testing.T) {
	var m mesh
	m.strokeSegment(starfan.Point{X: 0, Y: 0}, starfan.Point{X: 10, Y: 0}, 4, starfan.ColorBlack)
	if len(m.verts) != 4 || len(m.inds) != 6 {
		t.Fatalf("verts %d inds %d, want 4 and 6", len(m.verts), len(m.inds))
	}
	var minY, maxY float64
	for _, v := range m.verts {
		minY = math.Min(minY, float64(v.DstY))
		maxY = math.Max(maxY, float64(v.DstY))
	}
	if !near(maxY-minY, 4) {
		t.Errorf("quad thickness = %v, want 4", maxY-minY)
	}
}

func TestStrokeZeroLengthSkipped(t *testing.T) {
	var m mesh
	m.strokeSegment(starfan.Point{X: 3, Y: 3}, starfan.Point{X: 3, Y: 3}, 2, starfan.ColorBlack)
	if !m.empty() {
		t.Error("zero-length segment should add nothing")
	}
}

func TestStrokePathClosed(t *testing.T) {
	var m mesh
	tri := []starfan.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	m.strokePath(tri, true, 1, starfan.ColorBlack)
	if len(m.inds) != 18 {
		t.Errorf("inds = %d, want 18 (3 quads)", len(m.inds))
	}
	m.reset()
	m.strokePath(tri, false, 1, starfan.ColorBlack)
	if len(m.inds) != 12 {
		t.Errorf("open inds = %d, want 12 (2 quads)", len(m.inds))
	}
}

func TestMeshFits(t *testing.T) {
	var m mesh
	if !m.fits(maxBatchVertices) || m.fits(maxBatchVertices+1) {
		t.Error("fits mismatch on an empty mesh")
	}
}
