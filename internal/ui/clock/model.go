// Package clock is the full-screen Bubble Tea program that hosts the abacus
// face: it delivers boundary ticks to the display, asks it to redraw on each
// frame, and presents the raster in the terminal.
package clock

import (
	"fmt"
	"image/color"

	"github.com/zjrosen/soroban/internal/abacus"
	"github.com/zjrosen/soroban/internal/display"
	"github.com/zjrosen/soroban/internal/log"
	"github.com/zjrosen/soroban/internal/raster"
	"github.com/zjrosen/soroban/internal/ui/halfblock"
	"github.com/zjrosen/soroban/internal/ui/styles"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures a clock model.
type Options struct {
	Width, Height int // virtual screen in pixels
	Style         abacus.Style
	Clock         display.Clock
	Frame         bool
	ShowReadout   bool
}

// frameState is shared by every copy of the model. Bubble Tea calls Update
// and View from one goroutine, so it needs no locking.
type frameState struct {
	screen    *display.Screen
	canvas    *raster.Canvas
	presenter *halfblock.Presenter
	style     abacus.Style

	presented bool
	text      string
	cols      int
	rows      int
}

// Model holds the clock view state.
type Model struct {
	width  int
	height int

	clock       display.Clock
	frame       bool
	showReadout bool

	state *frameState
}

// New creates a clock model for the given options.
func New(opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = display.SystemClock{}
	}
	bg := styles.Background()
	return Model{
		clock:       opts.Clock,
		frame:       opts.Frame,
		showReadout: opts.ShowReadout,
		state: &frameState{
			screen:    display.NewScreen(abacus.R(0, 0, opts.Width, opts.Height)),
			canvas:    raster.New(opts.Width, opts.Height, bg),
			presenter: halfblock.New(bg),
			style:     opts.Style,
		},
	}
}

// Screen exposes the display for inspection.
func (m Model) Screen() *display.Screen {
	return m.state.screen
}

// Init schedules the first day and minute boundaries.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		scheduleBoundary(m.clock, display.DayBoundary),
		scheduleBoundary(m.clock, display.MinuteBoundary),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.text = ""

	case BoundaryMsg:
		m.state.screen.Tick(msg.Unit)
		return m, scheduleBoundary(m.clock, msg.Unit)

	case ReloadMsg:
		if msg.Err != nil {
			log.Warn(log.CatUI, "Config reload failed, keeping current look", "error", msg.Err)
			return m, nil
		}
		if err := styles.ApplyTheme(msg.Theme); err != nil {
			log.ErrorErr(log.CatUI, "Theme reload failed", err, "preset", msg.Theme.Preset)
			return m, nil
		}
		m.restyle(styles.AbacusStyle(msg.Padding, msg.CornerRadius), styles.Background())
		log.Info(log.CatUI, "Theme reloaded", "preset", msg.Theme.Preset)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Redraw):
			m.state.screen.Invalidate()
		}
	}
	return m, nil
}

// restyle swaps colours and geometry and owes a redraw of both rows.
func (m Model) restyle(st abacus.Style, bg color.Color) {
	s := m.state
	s.style = st
	s.canvas.SetBackground(bg)
	s.presenter.Background = bg
	w, h := s.canvas.Size()
	s.canvas.Clear(abacus.R(0, 0, w, h))
	s.screen.Invalidate()
	s.text = ""
}

// View renders the clock face.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerW, innerH := m.width, m.height
	if m.frame {
		innerW, innerH = m.width-2, m.height-2
	}

	body := m.face(innerW, innerH)
	if !m.frame {
		return body
	}
	return styles.Frame(body, "soroban", m.readout(), m.width, m.height)
}

// face redraws owed surfaces and returns the terminal rendering, centred in
// a w×h cell area.
func (m Model) face(w, h int) string {
	s := m.state
	pw, ph := s.canvas.Size()
	cols, rows := fit(pw, ph, w, h)
	if cols < abacus.MaxDigits || rows < 2 {
		return lipgloss.Place(max(w, 0), max(h, 0), lipgloss.Center, lipgloss.Center,
			styles.MutedStyle.Render("Terminal too small"))
	}

	drawn := s.screen.Redraw(s.canvas, m.clock, s.style, !s.presented)
	s.presented = true

	if len(drawn) > 0 || s.text == "" || cols != s.cols || rows != s.rows {
		s.text = s.presenter.Render(s.canvas.Image(), cols, rows)
		s.cols, s.rows = cols, rows
		log.Debug(log.CatUI, "Presented frame", "surfaces", drawn, "cols", cols, "rows", rows)
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, s.text)
}

// readout formats the values last drawn, e.g. "31.12 14:07".
func (m Model) readout() string {
	if !m.showReadout {
		return ""
	}
	d, t := m.state.screen.Date.LastValue(), m.state.screen.Time.LastValue()
	if d < 0 || t < 0 {
		return ""
	}
	return fmt.Sprintf("%02d.%02d %02d:%02d", d/100, d%100, t/100, t%100)
}

// fit returns the largest cell area that shows a pw×ph frame without
// distortion, given that each cell holds one pixel column and two pixel rows.
func fit(pw, ph, cols, rows int) (int, int) {
	if pw <= 0 || ph <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	// Compare cols/pw against 2*rows/ph without floating point.
	if cols*ph <= 2*rows*pw {
		return cols, max(cols*ph/(2*pw), 1)
	}
	return max(2*rows*pw/ph, 1), rows
}

// SetSize updates the view dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}
