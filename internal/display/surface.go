package display

import (
	"time"

	"github.com/zjrosen/soroban/internal/abacus"
	"github.com/zjrosen/soroban/internal/log"
)

// State is the redraw state of a surface.
type State int

const (
	Clean State = iota
	Dirty
)

// String returns the state name.
func (s State) String() string {
	if s == Dirty {
		return "dirty"
	}
	return "clean"
}

// Surface is one abacus row on screen with its value producer.
type Surface struct {
	Name    string
	Bounds  abacus.Rect
	Unit    Unit
	Produce ValueFunc

	state State
	last  int
}

// NewSurface creates a clean surface.
func NewSurface(name string, bounds abacus.Rect, unit Unit, produce ValueFunc) *Surface {
	return &Surface{
		Name:    name,
		Bounds:  bounds,
		Unit:    unit,
		Produce: produce,
		last:    -1,
	}
}

// State returns whether a redraw is owed.
func (s *Surface) State() State {
	return s.state
}

// MarkDirty records that a redraw is owed. Repeated calls coalesce.
func (s *Surface) MarkDirty() {
	s.state = Dirty
}

// LastValue returns the value drawn by the most recent Render, or -1.
func (s *Surface) LastValue() int {
	return s.last
}

// Render reads the current value, draws it and marks the surface clean.
func (s *Surface) Render(c abacus.Canvas, now time.Time, st abacus.Style) int {
	v := s.Produce(now)
	abacus.RenderRow(c, s.Bounds, v, st)
	s.last = v
	s.state = Clean
	log.Debug(log.CatRender, "Rendered surface", "surface", s.Name, "value", v)
	return v
}
