package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/zjrosen/soroban/internal/abacus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

func rgba(c *Canvas, x, y int) color.RGBA {
	return c.Image().RGBAAt(x, y)
}

func TestNew_ClearsToBackground(t *testing.T) {
	c := New(10, 6, black)

	w, h := c.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 6, h)
	assert.Equal(t, black, rgba(c, 0, 0))
	assert.Equal(t, black, rgba(c, 9, 5))
}

func TestFillRoundedRect_Square(t *testing.T) {
	c := New(20, 20, black)
	c.SetFillColor(white)

	c.FillRoundedRect(abacus.R(2, 3, 5, 4), 0)

	for y := range 20 {
		for x := range 20 {
			inside := x >= 2 && x < 7 && y >= 3 && y < 7
			if inside {
				require.Equal(t, white, rgba(c, x, y), "pixel %d,%d", x, y)
			} else {
				require.Equal(t, black, rgba(c, x, y), "pixel %d,%d", x, y)
			}
		}
	}
}

func TestFillRoundedRect_RoundsCorners(t *testing.T) {
	c := New(40, 40, black)
	c.SetFillColor(white)

	c.FillRoundedRect(abacus.R(0, 0, 30, 20), 10)

	assert.Equal(t, white, rgba(c, 15, 10), "centre filled")
	assert.Equal(t, white, rgba(c, 15, 0), "top edge midpoint filled")
	assert.Equal(t, black, rgba(c, 0, 0), "corner left empty")
	assert.Equal(t, black, rgba(c, 29, 19), "opposite corner left empty")
	assert.Equal(t, black, rgba(c, 35, 10), "nothing outside the rect")
}

func TestFillRoundedRect_ClipsToFrame(t *testing.T) {
	c := New(10, 10, black)
	c.SetFillColor(white)

	assert.NotPanics(t, func() {
		c.FillRoundedRect(abacus.R(6, 6, 10, 10), 0)
		c.FillRoundedRect(abacus.R(-5, -5, 8, 8), 2)
	})
	assert.Equal(t, white, rgba(c, 8, 8))
	assert.Equal(t, white, rgba(c, 1, 1))
}

func TestFillRoundedRect_EmptyIsNoop(t *testing.T) {
	c := New(10, 10, black)
	c.SetFillColor(white)

	c.FillRoundedRect(abacus.R(3, 3, 0, 5), 4)

	assert.Equal(t, black, rgba(c, 3, 3))
}

func TestStrokeRect(t *testing.T) {
	c := New(10, 10, black)
	c.SetStrokeColor(red)

	c.StrokeRect(abacus.R(1, 1, 4, 3))

	assert.Equal(t, red, rgba(c, 1, 1))
	assert.Equal(t, red, rgba(c, 4, 1))
	assert.Equal(t, red, rgba(c, 1, 3))
	assert.Equal(t, red, rgba(c, 4, 3))
	assert.Equal(t, black, rgba(c, 2, 2), "interior untouched")
	assert.Equal(t, black, rgba(c, 5, 1), "outside untouched")
}

func TestDrawLine_Horizontal(t *testing.T) {
	c := New(10, 5, black)
	c.SetStrokeColor(white)

	c.DrawLine(abacus.Point{X: 2, Y: 2}, abacus.Point{X: 8, Y: 2})

	for x := 2; x < 8; x++ {
		assert.Equal(t, white, rgba(c, x, 2), "x=%d", x)
	}
	assert.Equal(t, black, rgba(c, 8, 2), "end point exclusive")
	assert.Equal(t, black, rgba(c, 1, 2))
}

func TestDrawLine_Diagonal(t *testing.T) {
	c := New(10, 10, black)
	c.SetStrokeColor(white)

	c.DrawLine(abacus.Point{X: 0, Y: 0}, abacus.Point{X: 5, Y: 5})

	for i := range 5 {
		assert.Equal(t, white, rgba(c, i, i))
	}
}

func TestClear(t *testing.T) {
	c := New(10, 10, black)
	c.SetFillColor(white)
	c.FillRoundedRect(abacus.R(0, 0, 10, 10), 0)

	c.SetBackground(red)
	c.Clear(abacus.R(0, 0, 5, 10))

	assert.Equal(t, red, rgba(c, 4, 4))
	assert.Equal(t, white, rgba(c, 5, 4))
}

func TestRenderRow_OnRaster(t *testing.T) {
	c := New(144, 80, black)
	st := abacus.DefaultStyle()

	abacus.RenderRow(c, abacus.R(0, 0, 144, 80), 1407, st)

	row := abacus.LayoutRow(abacus.R(0, 0, 144, 80), 1407)
	for _, col := range row.Columns {
		for _, b := range col.Beads(st.Padding) {
			centre := image.Pt(b.X+b.W/2, b.Y+b.H/2)
			assert.Equal(t, white, rgba(c, centre.X, centre.Y), "bead centre %v", centre)
		}
		assert.Equal(t, white, rgba(c, col.Bar[0].X+col.Cell.W/2, col.Bar[0].Y), "bar drawn")
	}
}

func TestEncodePNG(t *testing.T) {
	c := New(8, 8, black)
	var buf bytes.Buffer

	require.NoError(t, c.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
}
