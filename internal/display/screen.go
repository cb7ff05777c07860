package display

import (
	"github.com/zjrosen/soroban/internal/abacus"
	"github.com/zjrosen/soroban/internal/log"
)

// Vertical gap between the date and time rows, in pixels.
const rowGap = 8

// Screen owns the date and time surfaces of the clock face.
type Screen struct {
	Bounds abacus.Rect
	Date   *Surface
	Time   *Surface
}

// NewScreen splits bounds into a date row above a time row.
func NewScreen(bounds abacus.Rect) *Screen {
	boxH := max(bounds.H/2-rowGap/2, 0)
	return &Screen{
		Bounds: bounds,
		Date:   NewSurface("date", abacus.R(bounds.X, bounds.Y, bounds.W, boxH), DayBoundary, DateValue),
		Time:   NewSurface("time", abacus.R(bounds.X, bounds.Y+boxH+rowGap, bounds.W, boxH), MinuteBoundary, TimeValue),
	}
}

// Surfaces returns the surfaces in drawing order.
func (s *Screen) Surfaces() []*Surface {
	return []*Surface{s.Date, s.Time}
}

// Tick marks every surface bound to unit as dirty.
func (s *Screen) Tick(unit Unit) {
	for _, sf := range s.Surfaces() {
		if sf.Unit == unit {
			sf.MarkDirty()
		}
	}
	log.Debug(log.CatTick, "Boundary tick", "unit", unit.String())
}

// Invalidate marks every surface dirty.
func (s *Screen) Invalidate() {
	for _, sf := range s.Surfaces() {
		sf.MarkDirty()
	}
}

// Dirty reports whether any surface owes a redraw.
func (s *Screen) Dirty() bool {
	for _, sf := range s.Surfaces() {
		if sf.State() == Dirty {
			return true
		}
	}
	return false
}

// Redraw renders the dirty surfaces, or all of them when force is set, and
// returns the names of the surfaces it drew. The clock is read once so both
// rows agree on the instant.
func (s *Screen) Redraw(c Target, clock Clock, st abacus.Style, force bool) []string {
	var drawn []string
	now := clock.Now()
	for _, sf := range s.Surfaces() {
		if !force && sf.State() != Dirty {
			continue
		}
		c.Clear(sf.Bounds)
		sf.Render(c, now, st)
		drawn = append(drawn, sf.Name)
	}
	return drawn
}
