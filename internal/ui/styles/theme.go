// Package styles contains the colour tokens, theme presets and Lip Gloss
// styles shared by the clock face and the CLI.
package styles

import (
	"image/color"

	"github.com/zjrosen/soroban/internal/abacus"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorToken names a themable colour. Tokens use dot notation.
type ColorToken string

const (
	TokenBackground  ColorToken = "background"
	TokenBeadFill    ColorToken = "bead.fill"
	TokenBeadOutline ColorToken = "bead.outline"
	TokenBar         ColorToken = "bar"
	TokenFrame       ColorToken = "frame"
	TokenTextPrimary ColorToken = "text.primary"
	TokenTextMuted   ColorToken = "text.muted"
)

// AllTokens lists every token in display order.
var AllTokens = []ColorToken{
	TokenBackground,
	TokenBeadFill,
	TokenBeadOutline,
	TokenBar,
	TokenFrame,
	TokenTextPrimary,
	TokenTextMuted,
}

// Active colours, replaced by ApplyTheme.
var (
	BackgroundColor  = lipgloss.Color("#000000")
	BeadFillColor    = lipgloss.Color("#FFFFFF")
	BeadOutlineColor = lipgloss.Color("#000000")
	BarColor         = lipgloss.Color("#FFFFFF")
	FrameColor       = lipgloss.Color("#696969")
	TextPrimaryColor = lipgloss.Color("#FFFFFF")
	TextMutedColor   = lipgloss.Color("#8A8A8A")
)

// Styles rebuilt from the active colours.
var (
	TitleStyle  = lipgloss.NewStyle()
	MutedStyle  = lipgloss.NewStyle()
	BorderStyle = lipgloss.NewStyle()
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	BorderStyle = lipgloss.NewStyle().Foreground(FrameColor)
}

// RGB converts a lipgloss colour to an image colour. Unparseable values
// fall back to black.
func RGB(c lipgloss.Color) color.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return color.Black
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// AbacusStyle returns the bead colours of the active theme with the given
// bead geometry.
func AbacusStyle(padding, cornerRadius int) abacus.Style {
	return abacus.Style{
		Fill:         RGB(BeadFillColor),
		Outline:      RGB(BeadOutlineColor),
		Bar:          RGB(BarColor),
		Padding:      padding,
		CornerRadius: cornerRadius,
	}
}

// Background returns the frame background of the active theme.
func Background() color.Color {
	return RGB(BackgroundColor)
}
