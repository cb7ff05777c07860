package cmd

import (
	"fmt"

	"github.com/zjrosen/soroban/internal/abacus"
	"github.com/zjrosen/soroban/internal/display"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	layoutValue  int
	layoutWidth  int
	layoutHeight int
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the bead geometry of a row as YAML",
	Long: `Compute where every bead of a four-digit row would be drawn and print
the result as YAML. Width and height default to one row of the configured
screen.`,
	Example: `  soroban layout --value 1407
  soroban layout --value 3112 --width 144 --height 80`,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().IntVarP(&layoutValue, "value", "v", 0, "value to lay out (0-9999)")
	layoutCmd.Flags().IntVar(&layoutWidth, "width", 0, "row width in pixels")
	layoutCmd.Flags().IntVar(&layoutHeight, "height", 0, "row height in pixels")
	rootCmd.AddCommand(layoutCmd)
}

type rectDoc struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type beadDoc struct {
	Active bool    `yaml:"active"`
	Rect   rectDoc `yaml:"rect,flow"`
}

type columnDoc struct {
	Digit  int       `yaml:"digit"`
	Cell   rectDoc   `yaml:"cell,flow"`
	Heaven beadDoc   `yaml:"heaven"`
	Bar    [2][2]int `yaml:"bar,flow"`
	Earth  []beadDoc `yaml:"earth"`
}

type layoutDoc struct {
	Value   int         `yaml:"value"`
	Bounds  rectDoc     `yaml:"bounds,flow"`
	Columns []columnDoc `yaml:"columns"`
}

func runLayout(cmd *cobra.Command, args []string) error {
	if layoutValue < 0 || layoutValue >= abacus.Pow10(abacus.MaxDigits) {
		return fmt.Errorf("value %d out of range 0-%d", layoutValue, abacus.Pow10(abacus.MaxDigits)-1)
	}
	w, h := layoutWidth, layoutHeight
	if w == 0 || h == 0 {
		screen := display.NewScreen(abacus.R(0, 0, cfg.Screen.Width, cfg.Screen.Height))
		b := screen.Date.Bounds
		w, h = orDefault(w, b.W), orDefault(h, b.H)
	}
	if w < abacus.MaxDigits || h <= 0 {
		return fmt.Errorf("row %dx%d is too small", w, h)
	}

	doc := newLayoutDoc(abacus.LayoutRow(abacus.R(0, 0, w, h), layoutValue))
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func newLayoutDoc(row abacus.RowLayout) layoutDoc {
	doc := layoutDoc{Value: row.Value, Bounds: toRectDoc(row.Bounds)}
	for i, col := range row.Columns {
		s := abacus.StateFor(row.Digits[i])
		c := columnDoc{
			Digit:  row.Digits[i],
			Cell:   toRectDoc(col.Cell),
			Heaven: beadDoc{Active: s.Heaven, Rect: toRectDoc(col.Heaven)},
			Bar:    [2][2]int{{col.Bar[0].X, col.Bar[0].Y}, {col.Bar[1].X, col.Bar[1].Y}},
		}
		for j, r := range col.Earth {
			c.Earth = append(c.Earth, beadDoc{Active: j < s.Earth, Rect: toRectDoc(r)})
		}
		doc.Columns = append(doc.Columns, c)
	}
	return doc
}

func toRectDoc(r abacus.Rect) rectDoc {
	return rectDoc{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
