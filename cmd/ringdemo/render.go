package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/gogpu/ring"
	"github.com/gogpu/ring/internal/compose"
	"github.com/gogpu/ring/internal/config"
	"github.com/gogpu/ring/internal/watch"
)

// bindRingFlags registers the flags shared by render and arc.
func bindRingFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.Kind, "kind", cfg.Kind, "ring kind: determinate1 or determinate2")
	fs.StringVar(&cfg.Size, "size", cfg.Size, "ring size: xlarge, large, medium, small or smalltitle")
	fs.Float64Var(&cfg.Value, "value", cfg.Value, "progress in percent (clamped to 0..100)")
	fs.Float64Var(&cfg.Radius, "radius", cfg.Radius, "ring radius in pixels (overrides the size preset)")
	fs.Float64Var(&cfg.Thickness, "thickness", cfg.Thickness, "stroke thickness in pixels (overrides the size preset)")
}

func newRenderCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	var (
		cfgPath   string
		watchFile bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a progress ring or the raw gradient to PNG",
		Example: `  ringdemo render --size large --value 72 --output ring.png
  ringdemo render --raw --resolution 2048 --output gradient.png
  ringdemo render --config ring.toml --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			load := func() (config.Config, error) {
				c := cfg
				if cfgPath != "" {
					fc, err := config.LoadFile(cfgPath)
					if err != nil {
						return c, fmt.Errorf("load config: %w", err)
					}
					config.ApplyFile(&c, fc, changed)
				}
				if err := c.Validate(); err != nil {
					return c, err
				}
				return c, nil
			}

			c, err := load()
			if err != nil {
				return err
			}
			if err := renderOnce(cmd.OutOrStdout(), c); err != nil {
				return err
			}
			if !watchFile {
				return nil
			}
			if cfgPath == "" {
				return errors.New("--watch needs --config")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchAndRender(ctx, cmd.OutOrStdout(), cfgPath, load)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfgPath, "config", "c", "", "TOML or YAML config file")
	fs.BoolVarP(&watchFile, "watch", "w", false, "re-render whenever the config file changes")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output PNG file")
	bindRingFlags(fs, &cfg)
	fs.BoolVar(&cfg.Raw, "raw", cfg.Raw, "render only the gradient raster")
	fs.IntVar(&cfg.Resolution, "resolution", cfg.Resolution, "raw raster size in pixels")
	fs.IntVar(&cfg.Texture, "texture", cfg.Texture, "rasterize the gradient once at this size and resample it")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "rasterize gradient rows on this many goroutines (0: sequential)")
	fs.StringVar(&cfg.TrackColor, "track-color", cfg.TrackColor, "track color, #RRGGBB or #AARRGGBB")
	fs.Float64Var(&cfg.TrackAlpha, "track-alpha", cfg.TrackAlpha, "track alpha in percent for #RRGGBB colors")
	fs.StringVar(&cfg.ForegroundColor, "foreground", cfg.ForegroundColor, "progress color used with --no-gradient")
	fs.BoolVar(&cfg.NoGradient, "no-gradient", cfg.NoGradient, "fill the progress band with the foreground color")
	fs.Float64Var(&cfg.AngleOffset, "angle-offset", cfg.AngleOffset, "gradient rotation in degrees")
	return cmd
}

func watchAndRender(ctx context.Context, out io.Writer, path string, load func() (config.Config, error)) error {
	w, err := watch.New(path, watch.DefaultDebounce, func() error {
		c, err := load()
		if err != nil {
			return err
		}
		return renderOnce(out, c)
	}, func(err error) {
		ring.Logger().Warn("render: reload failed", "path", path, "err", err)
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	fmt.Fprintf(out, "watching %s\n", w.Path())
	return w.Run(ctx)
}

// renderOnce draws one image for c and writes it to c.Output.
func renderOnce(out io.Writer, c config.Config) error {
	if c.Raw {
		return renderRaw(out, c)
	}

	p, err := c.Preset()
	if err != nil {
		return err
	}
	style, err := c.Style()
	if err != nil {
		return err
	}
	img, err := compose.New(style).Frame(p.Radius, p.Thickness, c.Value)
	if err != nil {
		return err
	}
	if err := savePNG(c.Output, img); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s (%dx%d, value %.4g%%, sweep %.3f deg)\n",
		c.Output, img.Bounds().Dx(), img.Bounds().Dy(), c.Value, ring.SweepAngle(c.Value))
	return nil
}

func renderRaw(out io.Writer, c config.Config) error {
	g, err := c.Gradient()
	if err != nil {
		return err
	}
	var opts []ring.RasterOption
	if c.Workers > 0 {
		opts = append(opts, ring.WithWorkers(c.Workers))
	}

	// The PNG writer is the presentation sink for the raster.
	sink := ring.PresenterFunc(func(buf *ring.RasterBuffer) error {
		return savePNG(c.Output, buf.ToRGBA())
	})
	if err := ring.Render(g, c.Resolution, c.Resolution, sink, opts...); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s (%dx%d gradient)\n", c.Output, c.Resolution, c.Resolution)
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
