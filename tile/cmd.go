package tile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"storegen/fontload"
	"storegen/parallel"
	"storegen/raster"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Out     string `help:"Directory the tiles are written to" default:"images"`
	Icon    string `help:"Icon composited onto the tiles" default:"images/icon128.png"`
	Title   string `help:"Product name drawn on the tiles" default:"PRISM READER"`
	Tagline string `help:"Tagline drawn on the marquee" default:"Pure. Private. Open Source."`
	Which   string `help:"Tile to generate" enum:"all,marquee,promo,discovery" default:"all"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Out, err)
	}
	c.Out = out

	if icon, err := filepath.Abs(c.Icon); err == nil {
		c.Icon = icon
	}
	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Out, os.ModeDir); err != nil {
		return fmt.Errorf("unable to create output folder %q: %w", c.Out, err)
	}

	assets := Assets{
		Text:    fontload.Best(fontload.TextFontPaths...),
		Title:   c.Title,
		Tagline: c.Tagline,
	}
	if icon, err := raster.Load(c.Icon); err != nil {
		// Missing icon degrades to icon-less tiles rather than aborting.
		slog.Warn("source icon unavailable, tiles will omit it", "file", c.Icon, "error", err)
	} else {
		assets.Icon = icon
	}

	tiles := []struct {
		key   string
		name  string
		build func(Assets) (*raster.Raster, error)
	}{
		{"marquee", "store_promo_marquee_1400x560.png", Marquee},
		{"promo", "store_promo_small_440x280.png", Promo},
		{"discovery", "store_screenshot_3_discovery_stylized.png", Discovery},
	}

	var builtCount, errCount atomic.Uint64
	for _, t := range tiles {
		if c.Which != "all" && c.Which != t.key {
			continue
		}

		worker(func(name string, build func(Assets) (*raster.Raster, error)) func() {
			return func() {
				logger := slog.Default().With("tile", name)

				img, err := build(assets)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not build tile", "error", err)
					return
				}
				if err := raster.Save(img, c.Out, name); err != nil {
					errCount.Add(1)
					logger.Error("could not save tile", "error", err)
					return
				}
				logger.Info("saved tile", "width", img.Width(), "height", img.Height())
				builtCount.Add(1)
			}
		}(t.name, t.build))
	}

	wait(true)

	built := builtCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "built", built, "errors", errors)
	if errors > 0 {
		return fmt.Errorf("error building %d tiles", errors)
	}
	return nil
}
