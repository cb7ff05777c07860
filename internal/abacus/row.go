package abacus

// RowLayout is the geometry of a full value, most significant column first.
type RowLayout struct {
	Bounds  Rect
	Value   int
	Digits  DigitSequence
	Columns [MaxDigits]DigitLayout
}

// Cells divides bounds into MaxDigits equal-width cells, left to right.
// Leftover pixels from the integer division stay on the right edge.
func Cells(bounds Rect) [MaxDigits]Rect {
	var cells [MaxDigits]Rect
	w := bounds.W / MaxDigits
	for i := range MaxDigits {
		cells[i] = R(bounds.X+i*w, bounds.Y, w, bounds.H)
	}
	return cells
}

// LayoutRow computes the bead geometry for v inside bounds.
func LayoutRow(bounds Rect, v int) RowLayout {
	row := RowLayout{Bounds: bounds, Value: v, Digits: Digits(v)}
	for i, cell := range Cells(bounds) {
		row.Columns[i] = Layout(cell, StateFor(row.Digits[i]))
	}
	return row
}

// RenderRow draws v as a row of soroban columns filling bounds.
func RenderRow(c Canvas, bounds Rect, v int, st Style) {
	row := LayoutRow(bounds, v)
	c.SetStrokeColor(st.Outline)
	for _, col := range row.Columns {
		DrawDigit(c, col, st)
	}
}
