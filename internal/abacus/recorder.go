package abacus

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpFillRoundedRect OpKind = iota
	OpStrokeRect
	OpLine
)

// String returns the operation name.
func (k OpKind) String() string {
	switch k {
	case OpFillRoundedRect:
		return "fill_rounded_rect"
	case OpStrokeRect:
		return "stroke_rect"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Op is one drawing call captured by a Recorder, with the colour in effect.
type Op struct {
	Kind   OpKind
	Rect   Rect
	Radius int
	From   Point
	To     Point
	Color  color.Color
}

// Recorder is a Canvas that records drawing calls instead of rasterizing.
type Recorder struct {
	Ops    []Op
	fill   color.Color
	stroke color.Color
}

// SetFillColor implements Canvas.
func (r *Recorder) SetFillColor(c color.Color) { r.fill = c }

// SetStrokeColor implements Canvas.
func (r *Recorder) SetStrokeColor(c color.Color) { r.stroke = c }

// FillRoundedRect implements Canvas.
func (r *Recorder) FillRoundedRect(rect Rect, radius int) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRoundedRect, Rect: rect, Radius: radius, Color: r.fill})
}

// StrokeRect implements Canvas.
func (r *Recorder) StrokeRect(rect Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, Rect: rect, Color: r.stroke})
}

// DrawLine implements Canvas.
func (r *Recorder) DrawLine(p0, p1 Point) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, From: p0, To: p1, Color: r.stroke})
}

// Filled returns the rectangles of every fill call, in call order.
func (r *Recorder) Filled() []Rect {
	var out []Rect
	for _, op := range r.Ops {
		if op.Kind == OpFillRoundedRect {
			out = append(out, op.Rect)
		}
	}
	return out
}

// Reset discards recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
