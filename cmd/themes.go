package cmd

import (
	"fmt"

	"github.com/zjrosen/soroban/internal/ui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme presets",
	Long:  `Display the built-in theme presets with a colour sample of each. Select one with theme.preset in the config file.`,
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	names := styles.PresetNames()
	maxLen := 0
	for _, name := range names {
		maxLen = max(maxLen, len(name))
	}

	fmt.Fprintln(out, "Theme Presets:")
	for _, name := range names {
		p := styles.Presets[name]
		marker := " "
		if name == cfg.Theme.Preset || (cfg.Theme.Preset == "" && name == styles.DefaultPreset.Name) {
			marker = "*"
		}
		fmt.Fprintf(out, " %s %-*s  %s  %s\n", marker, maxLen, name, swatch(p), p.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Set theme.preset in your config, or override single tokens under theme.colors:")
	for _, tok := range styles.AllTokens {
		fmt.Fprintf(out, "  %s\n", tok)
	}
	return nil
}

// swatch renders beads and bar in the preset's colours.
func swatch(p styles.Preset) string {
	bg := lipgloss.Color(p.Colors[styles.TokenBackground])
	bead := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Colors[styles.TokenBeadFill])).Background(bg)
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Colors[styles.TokenBar])).Background(bg)
	return bead.Render("██") + bar.Render("─") + bead.Render("██")
}
