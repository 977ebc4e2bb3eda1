package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/starfan"
)

// maxBatchVertices caps a single DrawTriangles call. Indices are uint16.
const maxBatchVertices = 1 << 15

// mesh accumulates untextured triangles. Every vertex samples the center of
// the white pixel; color comes from the vertex color.
type mesh struct {
	verts []ebiten.Vertex
	inds  []uint16
}

func (m *mesh) reset() {
	m.verts = m.verts[:0]
	m.inds = m.inds[:0]
}

func (m *mesh) empty() bool {
	return len(m.inds) == 0
}

// fits reports whether n more vertices can be added to the batch.
func (m *mesh) fits(n int) bool {
	return len(m.verts)+n <= maxBatchVertices
}

func (m *mesh) addVertex(p starfan.Point, c starfan.Color) uint16 {
	idx := uint16(len(m.verts))
	m.verts = append(m.verts, ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R),
		ColorG: float32(c.G),
		ColorB: float32(c.B),
		ColorA: float32(c.A),
	})
	return idx
}

// fillFan triangulates from hub to each consecutive pair of pts. When closed
// the last point connects back to the first. Star-shaped polygons (every
// regular polygon, star and pie from its center) fill correctly.
func (m *mesh) fillFan(hub starfan.Point, pts []starfan.Point, closed bool, c starfan.Color) {
	if len(pts) < 2 {
		return
	}
	h := m.addVertex(hub, c)
	first := m.addVertex(pts[0], c)
	prev := first
	for _, p := range pts[1:] {
		cur := m.addVertex(p, c)
		m.inds = append(m.inds, h, prev, cur)
		prev = cur
	}
	if closed {
		m.inds = append(m.inds, h, prev, first)
	}
}

// fillPolygon fills a closed polygon from the centroid of its vertices.
func (m *mesh) fillPolygon(pts []starfan.Point, c starfan.Color) {
	m.fillFan(centroid(pts), pts, true, c)
}

// strokeSegment draws a segment as a quad of the given width.
func (m *mesh) strokeSegment(a, b starfan.Point, width float64, c starfan.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	i0 := m.addVertex(starfan.Point{X: a.X + nx, Y: a.Y + ny}, c)
	i1 := m.addVertex(starfan.Point{X: b.X + nx, Y: b.Y + ny}, c)
	i2 := m.addVertex(starfan.Point{X: b.X - nx, Y: b.Y - ny}, c)
	i3 := m.addVertex(starfan.Point{X: a.X - nx, Y: a.Y - ny}, c)
	m.inds = append(m.inds, i0, i1, i2, i0, i2, i3)
}

// strokePath draws every segment of pts, plus the closing one when closed.
func (m *mesh) strokePath(pts []starfan.Point, closed bool, width float64, c starfan.Color) {
	for i := 0; i+1 < len(pts); i++ {
		m.strokeSegment(pts[i], pts[i+1], width, c)
	}
	if closed && len(pts) > 2 {
		m.strokeSegment(pts[len(pts)-1], pts[0], width, c)
	}
}

func centroid(pts []starfan.Point) starfan.Point {
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return starfan.Point{X: sx / n, Y: sy / n}
}
