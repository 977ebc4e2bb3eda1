package termhost

import "github.com/phanxgames/starfan"

// CellSurface rasterises starfan drawables into a Canvas.
type CellSurface struct {
	canvas *Canvas
	pen    starfan.Pen
	brush  starfan.Brush
	pts    []starfan.Point
}

// NewCellSurface creates a surface painting into canvas.
func NewCellSurface(canvas *Canvas) *CellSurface {
	return &CellSurface{canvas: canvas}
}

// Canvas returns the target canvas.
func (s *CellSurface) Canvas() *Canvas { return s.canvas }

func (s *CellSurface) SetPen(p starfan.Pen) { s.pen = p }

func (s *CellSurface) SetBrush(b starfan.Brush) { s.brush = b }

// shape fills then outlines a closed outline with the current style.
func (s *CellSurface) shape(pts []starfan.Point) {
	if s.brush.Visible() {
		s.canvas.fillPolygon(pts, s.brush.Color)
	}
	s.canvas.strokePath(pts, true, s.pen.Width, s.pen.Color)
}

func (s *CellSurface) DrawEllipse(center starfan.Point, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	s.pts = starfan.EllipsePoints(s.pts[:0], center, rx, ry)
	s.shape(s.pts)
}

func (s *CellSurface) DrawLine(p1, p2 starfan.Point) {
	s.canvas.strokeSegment(p1, p2, s.pen.Width, s.pen.Color)
}

func (s *CellSurface) DrawPolygon(points []starfan.Point) {
	s.shape(points)
}

func (s *CellSurface) DrawRect(r starfan.Rect) {
	s.pts = r.Corners(s.pts[:0])
	s.shape(s.pts)
}

func (s *CellSurface) FillRect(r starfan.Rect, b starfan.Brush) {
	if !b.Visible() {
		return
	}
	s.pts = r.Corners(s.pts[:0])
	s.canvas.fillPolygon(s.pts, b.Color)
}

func (s *CellSurface) DrawPie(r starfan.Rect, start, sweep float64) {
	if r.Empty() || sweep == 0 {
		return
	}
	s.pts = starfan.ArcPoints(s.pts[:0], r, start, sweep)
	s.pts = append(s.pts, r.Center())
	s.shape(s.pts)
}
