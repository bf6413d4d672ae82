package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var flagAngleStep float64

var anglesCmd = &cobra.Command{
	Use:   "angles",
	Short: "Print the deflection table",
	Long: `Print how every deflection angle from 0 to 180 degrees splits the
ball's apparent velocity into horizontal and vertical deltas, for the
resolved configuration.

Columns:
  Raw H/V    - deltas straight from the angle bucket
  MOE        - relative error of |h|+|v| against the velocity
  H/V        - deltas after correction
  Move H/V   - per-tick displacement after the speed scale

Examples:
  breakout angles
  breakout angles --step 5
  breakout angles --difficulty hard`,
	Run: runAngles,
}

func init() {
	anglesCmd.Flags().Float64Var(&flagAngleStep, "step", 15, "Degrees between rows")
	addConfigFlags(anglesCmd)
}

var angleHeaders = []string{"Angle", "Raw H", "Raw V", "MOE", "H", "V", "Final MOE", "Move H", "Move V"}

// angleRows tabulates Deflect from 0 to 180 degrees. The last row is
// always 180.
func angleRows(p breakout.DeflectionParams, step float64) [][]string {
	var rows [][]string
	add := func(a float64) {
		d, ok := breakout.Deflect(a, p)
		if !ok {
			return
		}
		h, v := d.Scaled()
		moe := fmt.Sprintf("%+.4f", d.MOE)
		if d.Corrected {
			moe += " *"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%.1f", a),
			fmt.Sprintf("%.4f", d.RawHorizontal),
			fmt.Sprintf("%.4f", d.RawVertical),
			moe,
			fmt.Sprintf("%.4f", d.Horizontal),
			fmt.Sprintf("%.4f", d.Vertical),
			fmt.Sprintf("%+.4f", d.FinalMOE),
			fmt.Sprintf("%.4f", h),
			fmt.Sprintf("%.4f", v),
		})
	}

	for i := 0; float64(i)*step < 180; i++ {
		add(float64(i) * step)
	}
	add(180)
	return rows
}

func runAngles(_ *cobra.Command, _ []string) {
	if flagAngleStep <= 0 || flagAngleStep > 180 {
		fail("--step must be in (0, 180], got %v", flagAngleStep)
	}

	cfg, err := config.Resolve(flagConfig, flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	p := breakout.ParamsFromConfig(cfg.Ball)

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(angleHeaders...).
		Rows(angleRows(p, flagAngleStep)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Printf("V = %g  bucket scale = %g  refraction = %g  tolerance = %g  speed scale = %g\n",
		p.Velocity, p.BucketScale, p.Refraction, p.Tolerance, p.SpeedScale)
	fmt.Println(t.Render())
	fmt.Println("* corrected")
}
