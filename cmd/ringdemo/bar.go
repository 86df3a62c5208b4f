package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ring"
)

func newBarCmd() *cobra.Command {
	var (
		width, value, maximum float64
		vertical              bool
	)

	cmd := &cobra.Command{
		Use:   "bar",
		Short: "Print the linear bar indicator width and gradient scale",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end := ring.Pt(0, 0.5), ring.Pt(1, 0.5)
			if vertical {
				start, end = ring.Pt(0.5, 0), ring.Pt(0.5, 1)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ratio      %.5f\n", ring.BarRatio(value, maximum))
			fmt.Fprintf(out, "indicator  %.3f of %g\n", ring.BarIndicatorWidth(width, value, maximum), width)
			fmt.Fprintf(out, "gradient   scale-x=%g\n", ring.BarGradientScale(start, end, value, maximum))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&width, "width", 200, "track width")
	fs.Float64Var(&value, "value", 50, "progress value")
	fs.Float64Var(&maximum, "maximum", 100, "progress maximum")
	fs.BoolVar(&vertical, "vertical", false, "use a vertical gradient axis")
	return cmd
}
