// Package display owns the two abacus surfaces of the clock face and decides
// when each one needs to be redrawn.
//
// A surface is bound to a boundary unit. The host delivers boundary ticks via
// Screen.Tick, which only marks the matching surface dirty; the clock is read
// when the host next asks the screen to redraw, so a burst of ticks collapses
// into a single redraw of the freshest value.
package display
