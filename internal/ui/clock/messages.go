package clock

import (
	"time"

	"github.com/zjrosen/soroban/internal/display"
	"github.com/zjrosen/soroban/internal/ui/styles"

	tea "github.com/charmbracelet/bubbletea"
)

// BoundaryMsg is delivered when a day or minute rolls over.
type BoundaryMsg struct {
	Unit display.Unit
	At   time.Time
}

// ReloadMsg carries re-read appearance settings into the event loop.
// A non-nil Err means the reload failed and the current look is kept.
type ReloadMsg struct {
	Theme        styles.ThemeConfig
	Padding      int
	CornerRadius int
	Err          error
}

// scheduleBoundary waits until the next rollover of unit on c.
func scheduleBoundary(c display.Clock, unit display.Unit) tea.Cmd {
	now := c.Now()
	wait := display.NextBoundary(now, unit).Sub(now)
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return BoundaryMsg{Unit: unit, At: t}
	})
}
