package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/zjrosen/soroban/internal/abacus"
	"github.com/zjrosen/soroban/internal/config"
	"github.com/zjrosen/soroban/internal/display"
	"github.com/zjrosen/soroban/internal/raster"
	"github.com/zjrosen/soroban/internal/ui/styles"

	"github.com/spf13/cobra"
)

var (
	snapshotOut string
	snapshotAt  string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render one clock frame to a PNG file",
	Long: `Render the date and time rows at the configured screen size and write
the frame as PNG. The time defaults to now; pass --at to render a fixed
moment.`,
	Example: `  soroban snapshot --out face.png
  soroban snapshot --out nye.png --at 2025-12-31T23:59:00Z`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "", "output PNG file")
	snapshotCmd.Flags().StringVar(&snapshotAt, "at", "", "RFC3339 time to render (default: now)")
	_ = snapshotCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	var clk display.Clock = display.SystemClock{Location: cfg.Location()}
	if snapshotAt != "" {
		at, err := time.Parse(time.RFC3339, snapshotAt)
		if err != nil {
			return fmt.Errorf("parsing --at: %w", err)
		}
		clk = display.FixedClock(at.In(cfg.Location()))
	}

	canvas := renderFrame(cfg, clk)

	f, err := os.Create(snapshotOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", snapshotOut, err)
	}
	if err := canvas.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", snapshotOut, err)
	}

	now := clk.Now()
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%04d %04d)\n", snapshotOut, display.DateValue(now), display.TimeValue(now))
	return nil
}

// renderFrame draws both rows once onto a fresh canvas.
func renderFrame(c config.Config, clk display.Clock) *raster.Canvas {
	canvas := raster.New(c.Screen.Width, c.Screen.Height, styles.Background())
	screen := display.NewScreen(abacus.R(0, 0, c.Screen.Width, c.Screen.Height))
	screen.Redraw(canvas, clk, styles.AbacusStyle(c.Abacus.Padding, c.Abacus.CornerRadius), true)
	return canvas
}
