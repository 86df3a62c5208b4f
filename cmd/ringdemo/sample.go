package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ring"
	"github.com/gogpu/ring/internal/config"
)

func newSampleCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	var (
		cfgPath       string
		angle         float64
		x, y          float64
		width, height float64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the gradient color at an angle or at a point",
		Example: `  ringdemo sample --angle 90
  ringdemo sample --x 10 --y 35 --width 70 --height 70`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				fc, err := config.LoadFile(cfgPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				changed := map[string]bool{}
				if cmd.Flags().Changed("angle-offset") {
					changed["angle-offset"] = true
				}
				config.ApplyFile(&cfg, fc, changed)
			}
			g, err := cfg.Gradient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("angle") {
				pm := g.EvaluateAtAngle(angle)
				fmt.Fprintf(out, "angle=%.4f color=%s premultiplied=%v\n",
					angle, ring.FormatHexColor(ring.Unpremultiply(pm)), pm)
				return nil
			}

			center := ring.Pt(width/2, height/2)
			p := ring.Pt(x, y)
			deg := g.AngleAt(p.X-center.X, p.Y-center.Y)
			c := g.SampleColorAtPoint(p, center)
			fmt.Fprintf(out, "point=(%.3f,%.3f) center=(%.3f,%.3f) angle=%.4f color=%s\n",
				p.X, p.Y, center.X, center.Y, deg, ring.FormatHexColor(c))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfgPath, "config", "c", "", "TOML or YAML config file with a palette")
	fs.Float64Var(&angle, "angle", 0, "evaluate the gradient at this angle in degrees")
	fs.Float64Var(&x, "x", 0, "point x")
	fs.Float64Var(&y, "y", 0, "point y")
	fs.Float64Var(&width, "width", 70, "surface width; the ring center is its midpoint")
	fs.Float64Var(&height, "height", 70, "surface height")
	fs.Float64Var(&cfg.AngleOffset, "angle-offset", cfg.AngleOffset, "gradient rotation in degrees")
	return cmd
}
