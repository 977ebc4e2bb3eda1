package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/starfan"
)

// --- White pixel singleton (no sync.Once; ebiten draws on one goroutine) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// ImageSurface paints starfan drawables into an *ebiten.Image. Shapes are
// triangulated and batched; Flush submits the batch with DrawTriangles.
// Triangles inside a batch are drawn in submission order, so paint order is
// preserved.
type ImageSurface struct {
	target *ebiten.Image
	pen    starfan.Pen
	brush  starfan.Brush
	mesh   mesh
	pts    []starfan.Point
	op     ebiten.DrawTrianglesOptions
}

// NewImageSurface creates a surface drawing into target. target may be nil
// and set later with SetTarget.
func NewImageSurface(target *ebiten.Image) *ImageSurface {
	s := &ImageSurface{target: target}
	s.op.Blend = ebiten.BlendSourceOver
	s.op.AntiAlias = true
	return s
}

// SetTarget flushes pending triangles and switches the destination image.
func (s *ImageSurface) SetTarget(target *ebiten.Image) {
	s.Flush()
	s.target = target
}

// Flush submits the pending triangles.
func (s *ImageSurface) Flush() {
	if s.target == nil || s.mesh.empty() {
		s.mesh.reset()
		return
	}
	s.target.DrawTriangles(s.mesh.verts, s.mesh.inds, ensureWhitePixel(), &s.op)
	s.mesh.reset()
}

// reserve flushes when n more vertices would overflow the batch.
func (s *ImageSurface) reserve(n int) {
	if !s.mesh.fits(n) {
		s.Flush()
	}
}

func (s *ImageSurface) SetPen(p starfan.Pen) { s.pen = p }

func (s *ImageSurface) SetBrush(b starfan.Brush) { s.brush = b }

func (s *ImageSurface) strokes() bool { return s.pen.Color.A > 0 }

// penWidth treats widths below one pixel as hairlines.
func (s *ImageSurface) penWidth() float64 { return max(s.pen.Width, 1) }

func (s *ImageSurface) fillWith(pts []starfan.Point, b starfan.Brush) {
	if !b.Visible() || len(pts) < 3 {
		return
	}
	s.reserve(len(pts) + 1)
	s.mesh.fillPolygon(pts, b.Color)
}

func (s *ImageSurface) strokeClosed(pts []starfan.Point) {
	if !s.strokes() {
		return
	}
	s.reserve(4 * (len(pts) + 1))
	s.mesh.strokePath(pts, true, s.penWidth(), s.pen.Color)
}

func (s *ImageSurface) DrawEllipse(center starfan.Point, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	s.pts = starfan.EllipsePoints(s.pts[:0], center, rx, ry)
	s.fillWith(s.pts, s.brush)
	s.strokeClosed(s.pts)
}

func (s *ImageSurface) DrawLine(p1, p2 starfan.Point) {
	if !s.strokes() {
		return
	}
	s.reserve(4)
	s.mesh.strokeSegment(p1, p2, s.penWidth(), s.pen.Color)
}

func (s *ImageSurface) DrawPolygon(points []starfan.Point) {
	s.fillWith(points, s.brush)
	s.strokeClosed(points)
}

func (s *ImageSurface) DrawRect(r starfan.Rect) {
	s.pts = r.Corners(s.pts[:0])
	s.fillWith(s.pts, s.brush)
	s.strokeClosed(s.pts)
}

func (s *ImageSurface) FillRect(r starfan.Rect, b starfan.Brush) {
	s.pts = r.Corners(s.pts[:0])
	s.fillWith(s.pts, b)
}

func (s *ImageSurface) DrawPie(r starfan.Rect, start, sweep float64) {
	if r.Empty() || sweep == 0 {
		return
	}
	s.pts = starfan.ArcPoints(s.pts[:0], r, start, sweep)
	center := r.Center()
	if s.brush.Visible() {
		s.reserve(len(s.pts) + 1)
		s.mesh.fillFan(center, s.pts, false, s.brush.Color)
	}
	if s.strokes() {
		s.pts = append(s.pts, center)
		s.strokeClosed(s.pts)
	}
}
