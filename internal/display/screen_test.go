package display

import (
	"testing"
	"time"

	"github.com/zjrosen/soroban/internal/abacus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pebble = abacus.R(0, 0, 144, 168)

func at(hour, minute int) FixedClock {
	return FixedClock(time.Date(2025, time.December, 31, hour, minute, 0, 0, time.UTC))
}

func TestNewScreen_Layout(t *testing.T) {
	s := NewScreen(pebble)

	assert.Equal(t, abacus.R(0, 0, 144, 80), s.Date.Bounds)
	assert.Equal(t, abacus.R(0, 88, 144, 80), s.Time.Bounds)
	assert.Equal(t, DayBoundary, s.Date.Unit)
	assert.Equal(t, MinuteBoundary, s.Time.Unit)
}

func TestScreen_InitiallyClean(t *testing.T) {
	s := NewScreen(pebble)

	assert.Equal(t, Clean, s.Date.State())
	assert.Equal(t, Clean, s.Time.State())
	assert.False(t, s.Dirty())
	assert.Equal(t, -1, s.Time.LastValue())
}

func TestScreen_DayTickMarksOnlyDate(t *testing.T) {
	s := NewScreen(pebble)

	s.Tick(DayBoundary)

	assert.Equal(t, Dirty, s.Date.State())
	assert.Equal(t, Clean, s.Time.State())
}

func TestScreen_MinuteTickMarksOnlyTime(t *testing.T) {
	s := NewScreen(pebble)

	s.Tick(MinuteBoundary)

	assert.Equal(t, Clean, s.Date.State())
	assert.Equal(t, Dirty, s.Time.State())
}

func TestScreen_RedrawClearsDirty(t *testing.T) {
	s := NewScreen(pebble)
	target := &RecordingTarget{}

	s.Tick(MinuteBoundary)
	s.Tick(MinuteBoundary)
	drawn := s.Redraw(target, at(14, 7), abacus.DefaultStyle(), false)

	assert.Equal(t, []string{"time"}, drawn, "coalesced ticks produce one redraw")
	assert.Equal(t, Clean, s.Time.State())
	assert.Equal(t, 1407, s.Time.LastValue())
	assert.Equal(t, []abacus.Rect{s.Time.Bounds}, target.Cleared)
	assert.Len(t, target.Filled(), abacus.MaxDigits*(1+abacus.MaxEarthBeads))
}

func TestScreen_RedrawCleanDrawsNothing(t *testing.T) {
	s := NewScreen(pebble)
	target := &RecordingTarget{}

	drawn := s.Redraw(target, at(9, 30), abacus.DefaultStyle(), false)

	assert.Empty(t, drawn)
	assert.Empty(t, target.Ops)
}

func TestScreen_ForcedRedrawDrawsBoth(t *testing.T) {
	s := NewScreen(pebble)
	target := &RecordingTarget{}

	drawn := s.Redraw(target, at(14, 7), abacus.DefaultStyle(), true)

	require.Equal(t, []string{"date", "time"}, drawn)
	assert.Equal(t, 3112, s.Date.LastValue())
	assert.Equal(t, 1407, s.Time.LastValue())
	assert.False(t, s.Dirty())
}

func TestScreen_RedrawReadsClockAtRenderTime(t *testing.T) {
	s := NewScreen(pebble)
	target := &RecordingTarget{}

	s.Tick(MinuteBoundary)
	s.Redraw(target, at(23, 59), abacus.DefaultStyle(), false)

	assert.Equal(t, 2359, s.Time.LastValue(), "value comes from the clock read inside Redraw")
}

func TestScreen_Invalidate(t *testing.T) {
	s := NewScreen(pebble)

	s.Invalidate()

	assert.Equal(t, Dirty, s.Date.State())
	assert.Equal(t, Dirty, s.Time.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "clean", Clean.String())
	assert.Equal(t, "dirty", Dirty.String())
	assert.Equal(t, "day", DayBoundary.String())
	assert.Equal(t, "minute", MinuteBoundary.String())
}
