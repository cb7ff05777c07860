package styles

import (
	"fmt"
	"regexp"
	"slices"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig selects a preset and optional per-token overrides.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// UnknownPresetError reports a preset name with no built-in theme.
type UnknownPresetError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown theme preset %q (available: %v)", e.Name, PresetNames())
}

// UnknownTokenError reports an override for a token that does not exist.
type UnknownTokenError struct {
	Token string
}

// Error implements the error interface.
func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown color token %q", e.Token)
}

// InvalidColorError reports an override whose value is not a hex colour.
type InvalidColorError struct {
	Token string
	Value string
}

// Error implements the error interface.
func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid hex color %q for %s", e.Value, e.Token)
}

var hexColorPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// ApplyTheme resolves cfg against the presets and makes it the active theme.
// Overrides win over the preset. On error the active theme is unchanged.
func ApplyTheme(cfg ThemeConfig) error {
	colors, err := Resolve(cfg)
	if err != nil {
		return err
	}

	BackgroundColor = lipgloss.Color(colors[TokenBackground])
	BeadFillColor = lipgloss.Color(colors[TokenBeadFill])
	BeadOutlineColor = lipgloss.Color(colors[TokenBeadOutline])
	BarColor = lipgloss.Color(colors[TokenBar])
	FrameColor = lipgloss.Color(colors[TokenFrame])
	TextPrimaryColor = lipgloss.Color(colors[TokenTextPrimary])
	TextMutedColor = lipgloss.Color(colors[TokenTextMuted])
	rebuildStyles()
	return nil
}

// Resolve returns the token colours cfg selects without applying them.
func Resolve(cfg ThemeConfig) (map[ColorToken]string, error) {
	name := cfg.Preset
	if name == "" {
		name = DefaultPreset.Name
	}
	preset, ok := Presets[name]
	if !ok {
		return nil, &UnknownPresetError{Name: name}
	}

	colors := make(map[ColorToken]string, len(AllTokens))
	for _, tok := range AllTokens {
		colors[tok] = DefaultPreset.Colors[tok]
	}
	for tok, hex := range preset.Colors {
		colors[tok] = hex
	}

	keys := make([]string, 0, len(cfg.Colors))
	for k := range cfg.Colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		tok := ColorToken(key)
		if !isValidToken(tok) {
			return nil, &UnknownTokenError{Token: key}
		}
		hex := cfg.Colors[key]
		if !isValidHexColor(hex) {
			return nil, &InvalidColorError{Token: key, Value: hex}
		}
		colors[tok] = expandHex(hex)
	}
	return colors, nil
}

// PresetNames returns the built-in preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isValidToken(tok ColorToken) bool {
	return slices.Contains(AllTokens, tok)
}

func isValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// expandHex turns #abc into #aabbcc so colours parse uniformly.
func expandHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}
