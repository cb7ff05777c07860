/*
Package raster implements abacus.Canvas on an in-memory RGBA frame.

Rounded rectangles are scan converted with golang.org/x/image/vector, which
gives anti-aliased corners; outlines and lines are plain one pixel spans.
The frame can be encoded as PNG or handed to a terminal presenter.
*/
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/zjrosen/soroban/internal/abacus"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Canvas is a stateful drawing context over an RGBA image.
type Canvas struct {
	img        *image.RGBA
	background color.Color
	fill       color.Color
	stroke     color.Color
}

// New allocates a w×h frame cleared to background.
func New(w, h int, background color.Color) *Canvas {
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		background: background,
		fill:       color.White,
		stroke:     color.Black,
	}
	c.Clear(abacus.R(0, 0, w, h))
	return c
}

// Image returns the backing frame. It is updated in place by drawing calls.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the frame dimensions.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetBackground changes the colour used by Clear.
func (c *Canvas) SetBackground(col color.Color) {
	c.background = col
}

// Clear paints r with the background colour.
func (c *Canvas) Clear(r abacus.Rect) {
	draw.Draw(c.img, toImage(r), image.NewUniform(c.background), image.Point{}, draw.Src)
}

// SetFillColor implements abacus.Canvas.
func (c *Canvas) SetFillColor(col color.Color) {
	c.fill = col
}

// SetStrokeColor implements abacus.Canvas.
func (c *Canvas) SetStrokeColor(col color.Color) {
	c.stroke = col
}

// FillRoundedRect implements abacus.Canvas.
func (c *Canvas) FillRoundedRect(r abacus.Rect, radius int) {
	bounds := toImage(r).Intersect(c.img.Bounds())
	if bounds.Empty() || c.fill == nil {
		return
	}

	rad := float32(min(max(radius, 0), r.W/2, r.H/2))
	w, h := float32(r.W), float32(r.H)

	vr := vector.NewRasterizer(r.W, r.H)
	vr.DrawOp = draw.Over
	k := rad * (1 - kappa)

	vr.MoveTo(rad, 0)
	vr.LineTo(w-rad, 0)
	vr.CubeTo(w-k, 0, w, k, w, rad)
	vr.LineTo(w, h-rad)
	vr.CubeTo(w, h-k, w-k, h, w-rad, h)
	vr.LineTo(rad, h)
	vr.CubeTo(k, h, 0, h-k, 0, h-rad)
	vr.LineTo(0, rad)
	vr.CubeTo(0, k, k, 0, rad, 0)
	vr.ClosePath()

	// Rasterize into a cell-local mask so partially visible beads clip
	// against the frame instead of indexing past it.
	mask := image.NewAlpha(image.Rect(0, 0, r.W, r.H))
	vr.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(c.img, bounds, image.NewUniform(c.fill), image.Point{}, mask, bounds.Min.Sub(image.Pt(r.X, r.Y)), draw.Over)
}

// StrokeRect implements abacus.Canvas.
func (c *Canvas) StrokeRect(r abacus.Rect) {
	if r.Empty() || c.stroke == nil {
		return
	}
	maxX, maxY := r.X+r.W-1, r.Y+r.H-1
	for x := r.X; x <= maxX; x++ {
		c.set(x, r.Y, c.stroke)
		c.set(x, maxY, c.stroke)
	}
	for y := r.Y; y <= maxY; y++ {
		c.set(r.X, y, c.stroke)
		c.set(maxX, y, c.stroke)
	}
}

// DrawLine implements abacus.Canvas using Bresenham's algorithm. The end
// point is not drawn, so a bar from x to x+w covers exactly w pixels.
func (c *Canvas) DrawLine(p0, p1 abacus.Point) {
	if c.stroke == nil {
		return
	}
	dx, dy := abs(p1.X-p0.X), -abs(p1.Y-p0.Y)
	sx, sy := sign(p1.X-p0.X), sign(p1.Y-p0.Y)
	e := dx + dy
	x, y := p0.X, p0.Y
	for x != p1.X || y != p1.Y {
		c.set(x, y, c.stroke)
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// EncodePNG writes the frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) set(x, y int, col color.Color) {
	if image.Pt(x, y).In(c.img.Bounds()) {
		c.img.Set(x, y, col)
	}
}

func toImage(r abacus.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
