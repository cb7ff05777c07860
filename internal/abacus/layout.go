package abacus

// DigitLayout is the bead geometry of one column. Bead rectangles are the
// full slots; Bead applies the drawing inset.
type DigitLayout struct {
	Cell   Rect
	Unit   int // height of one bead slot
	Heaven Rect
	Bar    [2]Point
	Earth  [MaxEarthBeads]Rect
}

// Layout positions the beads of one column inside cell.
//
// The cell is divided into MaxHeavenPositions + MaxEarthPositions + 1 slots:
// the heaven zone on top, one slot holding the bar, the earth zone below.
// Active beads occupy the slots nearest the bar.
func Layout(cell Rect, s BeadState) DigitLayout {
	if debugAsserts && !s.Valid() {
		panic(&InvariantError{Op: "Layout", Value: s.Earth, Want: "[0,4]"})
	}
	earth := min(max(s.Earth, 0), MaxEarthBeads)

	unit := cell.H / slotsPerColumn
	l := DigitLayout{Cell: cell, Unit: unit}

	heaven := R(cell.X, cell.Y, cell.W, unit*MaxHeavenPositions)
	heavenY := heaven.Y
	if s.Heaven {
		heavenY += unit
	}
	l.Heaven = R(heaven.X, heavenY, heaven.W, unit)

	barY := cell.Y + unit*MaxHeavenPositions + unit/2
	l.Bar = [2]Point{{X: cell.X, Y: barY}, {X: cell.X + cell.W, Y: barY}}

	earthZone := R(cell.X, heaven.Y+heaven.H+unit, cell.W, unit*(MaxEarthPositions+1))
	for i := range MaxEarthBeads {
		slot := i + 1
		if i < earth {
			slot = i
		}
		l.Earth[i] = R(earthZone.X, earthZone.Y+unit*slot, earthZone.W, unit)
	}
	return l
}

// Beads returns the heaven bead followed by the earth beads, inset by padding.
func (l DigitLayout) Beads(padding int) []Rect {
	out := make([]Rect, 0, 1+MaxEarthBeads)
	out = append(out, Bead(l.Heaven, padding))
	for _, r := range l.Earth {
		out = append(out, Bead(r, padding))
	}
	return out
}

// Bead returns the drawn rectangle of a bead slot.
func Bead(slot Rect, padding int) Rect {
	return slot.Inset(padding)
}

// DrawDigit draws one laid-out column: every bead is outlined then filled
// with rounded corners, and the bar is stroked in its own colour.
func DrawDigit(c Canvas, l DigitLayout, st Style) {
	c.SetFillColor(st.Fill)
	drawBead(c, l.Heaven, st)

	c.SetStrokeColor(st.Bar)
	c.DrawLine(l.Bar[0], l.Bar[1])
	c.SetStrokeColor(st.Outline)

	for _, r := range l.Earth {
		drawBead(c, r, st)
	}
}

func drawBead(c Canvas, slot Rect, st Style) {
	r := Bead(slot, st.Padding)
	c.StrokeRect(r)
	c.FillRoundedRect(r, st.CornerRadius)
}
