// Package halfblock presents a raster frame in a terminal by packing two
// pixel rows into each character cell with upper and lower half blocks.
package halfblock

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// inkThreshold is the Lab distance from the background above which a pixel
// counts as drawn.
const inkThreshold = 0.08

const (
	glyphEmpty = ' '
	glyphUpper = '▀'
	glyphLower = '▄'
	glyphFull  = '█'
)

// Presenter converts frames to styled terminal text.
type Presenter struct {
	Background color.Color
	Scaler     draw.Scaler
}

// New returns a presenter that treats background as empty space.
func New(background color.Color) *Presenter {
	return &Presenter{
		Background: background,
		Scaler:     draw.ApproxBiLinear,
	}
}

// Render scales src to cols×(2·rows) pixels and returns rows lines of cols cells.
func (p *Presenter) Render(src image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	frame := src
	target := image.Rect(0, 0, cols, rows*2)
	if src.Bounds().Size() != target.Size() {
		scaled := image.NewRGBA(target)
		p.Scaler.Scale(scaled, target, src, src.Bounds(), draw.Src, nil)
		frame = scaled
	}
	origin := frame.Bounds().Min

	bg, _ := colorful.MakeColor(p.Background)

	lines := make([]string, rows)
	for row := range rows {
		var line strings.Builder
		var run strings.Builder
		var runStyle cellStyle
		for col := range cols {
			top := at(frame, origin.X+col, origin.Y+row*2)
			bottom := at(frame, origin.X+col, origin.Y+row*2+1)
			glyph, style := p.cell(top, bottom, bg)

			if col > 0 && style != runStyle {
				line.WriteString(runStyle.render(run.String()))
				run.Reset()
			}
			runStyle = style
			run.WriteRune(glyph)
		}
		line.WriteString(runStyle.render(run.String()))
		lines[row] = line.String()
	}
	return strings.Join(lines, "\n")
}

// cellStyle is a comparable pair of hex colours so runs can be merged.
type cellStyle struct {
	fg, bg string
}

func (s cellStyle) render(text string) string {
	st := lipgloss.NewStyle().Background(lipgloss.Color(s.bg))
	if s.fg != "" {
		st = st.Foreground(lipgloss.Color(s.fg))
	}
	return st.Render(text)
}

func (p *Presenter) cell(top, bottom, bg colorful.Color) (rune, cellStyle) {
	topInk := top.DistanceLab(bg) > inkThreshold
	bottomInk := bottom.DistanceLab(bg) > inkThreshold

	switch {
	case topInk && bottomInk:
		if top == bottom {
			return glyphFull, cellStyle{fg: top.Hex(), bg: bg.Hex()}
		}
		return glyphUpper, cellStyle{fg: top.Hex(), bg: bottom.Hex()}
	case topInk:
		return glyphUpper, cellStyle{fg: top.Hex(), bg: bg.Hex()}
	case bottomInk:
		return glyphLower, cellStyle{fg: bottom.Hex(), bg: bg.Hex()}
	default:
		return glyphEmpty, cellStyle{bg: bg.Hex()}
	}
}

func at(img image.Image, x, y int) colorful.Color {
	c, _ := colorful.MakeColor(img.At(x, y))
	return c
}
