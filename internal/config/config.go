// Package config provides configuration types and defaults for soroban.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// ScreenConfig is the virtual display the abacus is rasterized on.
type ScreenConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// AbacusConfig controls bead geometry.
type AbacusConfig struct {
	Padding      int `mapstructure:"padding"`
	CornerRadius int `mapstructure:"corner_radius"`
}

// ClockConfig selects the time source.
type ClockConfig struct {
	// Location is an IANA zone name such as "Europe/Paris". Empty means local time.
	Location string `mapstructure:"location"`
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Run 'soroban themes' for the list.
	Preset string `mapstructure:"preset"`

	// Colors overrides individual color tokens, e.g. "bead.fill": "#FF0000".
	Colors map[string]string `mapstructure:"colors"`
}

// UIConfig holds terminal presentation options.
type UIConfig struct {
	// ColorProfile forces a terminal color profile: "auto", "truecolor",
	// "ansi256", "ansi" or "ascii".
	ColorProfile string `mapstructure:"color_profile"`
	// Frame draws a titled border around the clock face.
	Frame bool `mapstructure:"frame"`
	// ShowReadout prints the date and time in digits in the frame title.
	ShowReadout bool `mapstructure:"show_readout"`
}

// LogConfig controls the debug log. Nothing is logged when File is empty.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Config holds all configuration options for soroban.
type Config struct {
	Screen      ScreenConfig  `mapstructure:"screen"`
	Abacus      AbacusConfig  `mapstructure:"abacus"`
	Clock       ClockConfig   `mapstructure:"clock"`
	Theme       ThemeConfig   `mapstructure:"theme"`
	UI          UIConfig      `mapstructure:"ui"`
	Log         LogConfig     `mapstructure:"log"`
	WatchConfig bool          `mapstructure:"watch_config"`
	WatchDelay  time.Duration `mapstructure:"watch_delay"`
}

var colorProfiles = []string{"", "auto", "truecolor", "ansi256", "ansi", "ascii"}

// Defaults returns a Config with the watchface's original settings.
func Defaults() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  144,
			Height: 168,
		},
		Abacus: AbacusConfig{
			Padding:      1,
			CornerRadius: 10,
		},
		UI: UIConfig{
			ColorProfile: "auto",
			Frame:        true,
			ShowReadout:  true,
		},
		Log: LogConfig{
			Level: "info",
		},
		WatchConfig: true,
		WatchDelay:  250 * time.Millisecond,
	}
}

// Validate checks the configuration for values the renderer cannot use.
func (c Config) Validate() error {
	if c.Screen.Width < 4 {
		return fmt.Errorf("screen.width must be at least 4, got %d", c.Screen.Width)
	}
	// Two rows of eight bead slots each plus the gap between them.
	if c.Screen.Height < 24 {
		return fmt.Errorf("screen.height must be at least 24, got %d", c.Screen.Height)
	}
	if c.Abacus.Padding < 0 {
		return fmt.Errorf("abacus.padding must not be negative, got %d", c.Abacus.Padding)
	}
	if c.Abacus.CornerRadius < 0 {
		return fmt.Errorf("abacus.corner_radius must not be negative, got %d", c.Abacus.CornerRadius)
	}
	if c.Clock.Location != "" {
		if _, err := time.LoadLocation(c.Clock.Location); err != nil {
			return fmt.Errorf("clock.location: %w", err)
		}
	}
	if !slices.Contains(colorProfiles, c.UI.ColorProfile) {
		return fmt.Errorf("ui.color_profile: unknown profile %q", c.UI.ColorProfile)
	}
	return nil
}

// Location returns the configured time zone, or time.Local.
func (c Config) Location() *time.Location {
	if c.Clock.Location == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Clock.Location)
	if err != nil {
		return time.Local
	}
	return loc
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Soroban Configuration

# Virtual screen the abacus is drawn on, in pixels.
# The default is the Pebble resolution; the terminal view scales it to fit.
screen:
  width: 144
  height: 168

# Bead geometry
abacus:
  padding: 1          # gap around each bead
  corner_radius: 10   # clamped to half the bead height

# Time source
clock:
  location: ""   # IANA zone name such as Europe/Paris; empty uses local time

# Theme configuration
theme:
  # Use a preset (run 'soroban themes' to see available presets)
  preset: default
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   bead.fill: "#D9A066"
  #   bar: "#FFFFFF"

# Terminal presentation
ui:
  color_profile: auto   # auto, truecolor, ansi256, ansi, ascii
  frame: true           # draw a titled border
  show_readout: true    # show digits in the border title

# Debug log (nothing is written unless file is set)
log:
  # file: ~/.cache/soroban/soroban.log
  level: info

# Re-apply theme changes while running
watch_config: true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
