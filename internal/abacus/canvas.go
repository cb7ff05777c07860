package abacus

import "image/color"

// Canvas is the drawing surface handed to the renderer by the host.
//
// It is stateful like a graphics context: fill and stroke colours persist
// until changed, and every drawing call uses the current colours.
type Canvas interface {
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	// FillRoundedRect fills r with the fill colour. radius is clamped by the
	// implementation to half the shorter side.
	FillRoundedRect(r Rect, radius int)
	// StrokeRect outlines r with a one pixel line in the stroke colour.
	StrokeRect(r Rect)
	// DrawLine draws a one pixel line in the stroke colour, end point exclusive.
	DrawLine(p0, p1 Point)
}

// Style carries the colours and bead geometry used when drawing a row.
type Style struct {
	Fill         color.Color // bead body
	Outline      color.Color // bead outline, also the resting stroke colour
	Bar          color.Color // reckoning bar
	Padding      int         // inset applied to every bead slot
	CornerRadius int
}

// DefaultStyle matches the watchface: white beads on black, white bar.
func DefaultStyle() Style {
	return Style{
		Fill:         color.White,
		Outline:      color.Black,
		Bar:          color.White,
		Padding:      DefaultPadding,
		CornerRadius: DefaultCornerRadius,
	}
}
