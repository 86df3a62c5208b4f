package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ring"
	"github.com/gogpu/ring/internal/config"
)

func newDotsCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "dots",
		Short: "Print the indeterminate ring dots and their gradient colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			size, ok := ring.ParseSize(strings.ToLower(cfg.Size))
			if !ok {
				return fmt.Errorf("unknown size %q", cfg.Size)
			}
			p, ok := ring.LookupIndeterminatePreset(size)
			if !ok {
				return fmt.Errorf("no indeterminate layout for size %s", size)
			}
			g, err := cfg.Gradient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "preset     %s grid=%g scale=%g diameter=%g\n", p.Size, p.GridSize, p.Scale, p.DotDiameter())
			colors := p.DotColors(g)
			for i, pt := range p.DotPositions() {
				fmt.Fprintf(out, "%-10s (%.4f, %.4f) %s\n", ring.Dot(i), pt.X, pt.Y, ring.FormatHexColor(colors[i]))
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&cfg.Size, "size", cfg.Size, "xlarge, large, medium, small or smalltitle")
	fs.Float64Var(&cfg.AngleOffset, "angle-offset", cfg.AngleOffset, "gradient rotation in degrees")
	return cmd
}
