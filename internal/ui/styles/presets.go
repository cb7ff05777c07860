package styles

// Preset is a named, complete set of token colours.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// DefaultPreset reproduces the watchface: white beads on black.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "White beads on black, as on the watch",
	Colors: map[ColorToken]string{
		TokenBackground:  "#000000",
		TokenBeadFill:    "#FFFFFF",
		TokenBeadOutline: "#000000",
		TokenBar:         "#FFFFFF",
		TokenFrame:       "#696969",
		TokenTextPrimary: "#FFFFFF",
		TokenTextMuted:   "#8A8A8A",
	},
}

// Presets holds every built-in theme by name.
var Presets = map[string]Preset{
	"default": DefaultPreset,
	"paper": {
		Name:        "paper",
		Description: "Black beads on white for light terminals",
		Colors: map[ColorToken]string{
			TokenBackground:  "#FFFFFF",
			TokenBeadFill:    "#1A1A1A",
			TokenBeadOutline: "#FFFFFF",
			TokenBar:         "#1A1A1A",
			TokenFrame:       "#BBBBBB",
			TokenTextPrimary: "#1A1A1A",
			TokenTextMuted:   "#666666",
		},
	},
	"walnut": {
		Name:        "walnut",
		Description: "Boxwood beads in a walnut frame",
		Colors: map[ColorToken]string{
			TokenBackground:  "#2B1A10",
			TokenBeadFill:    "#D9A066",
			TokenBeadOutline: "#2B1A10",
			TokenBar:         "#EAD7B7",
			TokenFrame:       "#7A4E2D",
			TokenTextPrimary: "#EAD7B7",
			TokenTextMuted:   "#A07850",
		},
	},
	"catppuccin-mocha": {
		Name:        "catppuccin-mocha",
		Description: "Warm, cozy dark theme",
		Colors: map[ColorToken]string{
			TokenBackground:  "#1E1E2E",
			TokenBeadFill:    "#CBA6F7",
			TokenBeadOutline: "#11111B",
			TokenBar:         "#F5E0DC",
			TokenFrame:       "#45475A",
			TokenTextPrimary: "#CDD6F4",
			TokenTextMuted:   "#6C7086",
		},
	},
	"nord": {
		Name:        "nord",
		Description: "Arctic, north-bluish palette",
		Colors: map[ColorToken]string{
			TokenBackground:  "#2E3440",
			TokenBeadFill:    "#88C0D0",
			TokenBeadOutline: "#2E3440",
			TokenBar:         "#ECEFF4",
			TokenFrame:       "#4C566A",
			TokenTextPrimary: "#ECEFF4",
			TokenTextMuted:   "#81A1C1",
		},
	},
	"high-contrast": {
		Name:        "high-contrast",
		Description: "Yellow beads on black for accessibility",
		Colors: map[ColorToken]string{
			TokenBackground:  "#000000",
			TokenBeadFill:    "#FFFF00",
			TokenBeadOutline: "#000000",
			TokenBar:         "#FFFFFF",
			TokenFrame:       "#FFFFFF",
			TokenTextPrimary: "#FFFFFF",
			TokenTextMuted:   "#FFFF00",
		},
	},
}
