package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/ring"
	"github.com/gogpu/ring/internal/config"
)

func newArcCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "arc",
		Short: "Print the track, progress and clip geometry for a value",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := cfg.Preset()
			if err != nil {
				return err
			}
			spec := p.Spec(cfg.Value)
			geom, err := ring.NewArcGeometryBuilder(tolerance).Build(spec)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "preset     %s r=%g thickness=%g margin=%g\n", p.Size, p.Radius, p.Thickness, p.Margin)
			fmt.Fprintf(out, "side       %g\n", spec.Side())
			fmt.Fprintf(out, "center     (%g, %g)\n", spec.Center.X, spec.Center.Y)
			fmt.Fprintf(out, "sweep      %.4f deg\n", geom.Sweep)
			printOutline(out, "track", geom.Track)
			printOutline(out, "progress", geom.Progress)
			if !geom.Visible() {
				fmt.Fprintln(out, "clip       none")
				return nil
			}
			contours := geom.Clip.Flatten(tolerance)
			points := 0
			for _, c := range contours {
				points += len(c.Points)
			}
			fmt.Fprintf(out, "clip       %d contour(s), %d points\n", len(contours), points)
			return nil
		},
	}

	fs := cmd.Flags()
	bindRingFlags(fs, &cfg)
	fs.Float64Var(&tolerance, "tolerance", ring.DefaultTolerance, "flattening tolerance in pixels")
	return cmd
}

func printOutline(out io.Writer, name string, p *ring.Path) {
	if p == nil {
		fmt.Fprintf(out, "%-10s none\n", name)
		return
	}
	for _, el := range p.Elements() {
		if a, ok := el.(ring.ArcTo); ok {
			fmt.Fprintf(out, "%-10s start=(%.3f, %.3f) end=(%.3f, %.3f) sweep=%.3f large=%t clockwise=%t\n",
				name, p.Start().X, p.Start().Y, a.End.X, a.End.Y, a.Sweep, a.LargeArc, a.Clockwise)
		}
	}
}
