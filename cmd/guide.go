package cmd

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

var (
	guideStyle string
	guideWidth int
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Explain how to read the abacus",
	RunE:  runGuide,
}

func init() {
	guideCmd.Flags().StringVar(&guideStyle, "style", "auto", "glamour style: auto, dark, light, notty")
	guideCmd.Flags().IntVar(&guideWidth, "width", 80, "wrap width")
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, args []string) error {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(guideWidth)}
	if guideStyle == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(guideStyle))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	out, err := renderer.Render(guideMarkdown)
	if err != nil {
		return fmt.Errorf("rendering guide: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
