package termhost

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/phanxgames/starfan"
)

// miterLimit is the rasterx miter limit, in pen widths.
const miterLimit = 4

// Canvas is an opaque RGBA image in scene units: pixel (x, y) covers the
// unit square from (x, y) to (x+1, y+1). Each terminal cell shows two
// vertically stacked pixels.
type Canvas struct {
	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher
}

// NewCanvas creates a canvas cleared to white.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize changes the canvas size and clears it to white.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, c.img, c.img.Bounds())
	c.filler = rasterx.NewFiller(width, height, scanner)
	c.dasher = rasterx.NewDasher(width, height, scanner)
	c.Clear(colorful.Color{R: 1, G: 1, B: 1})
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills every pixel with bg.
func (c *Canvas) Clear(bg colorful.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg.Clamped()), image.Point{}, draw.Src)
}

// At returns the pixel at (x, y). Out-of-range reads return black.
func (c *Canvas) At(x, y int) colorful.Color {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return colorful.Color{}
	}
	col, _ := colorful.MakeColor(c.img.RGBAAt(x, y))
	return col
}

// fillPolygon fills a closed polygon with the even-odd rule, antialiased.
func (c *Canvas) fillPolygon(pts []starfan.Point, col starfan.Color) {
	if len(pts) < 3 || col.A <= 0 {
		return
	}
	c.filler.Clear()
	addPath(c.filler, pts, true)
	c.filler.SetColor(toNRGBA(col))
	c.filler.Draw()
	c.filler.Clear()
}

// strokePath strokes consecutive segments, plus the closing one when closed.
// Widths below one pixel are drawn one pixel wide.
func (c *Canvas) strokePath(pts []starfan.Point, closed bool, width float64, col starfan.Color) {
	if len(pts) < 2 || col.A <= 0 {
		return
	}
	w := max(width, 1)
	c.dasher.Clear()
	c.dasher.SetStroke(toFixed(w), toFixed(miterLimit*w),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0)
	addPath(c.dasher, pts, closed && len(pts) > 2)
	c.dasher.SetColor(toNRGBA(col))
	c.dasher.Draw()
	c.dasher.Clear()
}

func (c *Canvas) strokeSegment(a, b starfan.Point, width float64, col starfan.Color) {
	c.strokePath([]starfan.Point{a, b}, false, width, col)
}

func addPath(a rasterx.Adder, pts []starfan.Point, closed bool) {
	a.Start(rasterx.ToFixedP(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		a.Line(rasterx.ToFixedP(p.X, p.Y))
	}
	a.Stop(closed)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func toNRGBA(c starfan.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
