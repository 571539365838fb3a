package icon

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"storegen/fontload"
	"storegen/raster"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Out   string  `help:"Directory the icon is written to" default:"images"`
	Name  string  `help:"Output file name" default:"icon128.png"`
	Size  int     `help:"Icon edge length in pixels" default:"128"`
	Style string  `help:"Icon style" enum:"facet,glyph" default:"facet"`
	Glyph string  `help:"Glyph drawn by the glyph style" default:"💎"`
	Fill  float64 `help:"Fraction of the canvas the glyph fills" default:"0.90625"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Out, err)
	}
	c.Out = out

	if c.Size <= 0 {
		return fmt.Errorf("invalid icon size: %d", c.Size)
	}
	if c.Fill <= 0 || c.Fill > 1 {
		return fmt.Errorf("invalid fill ratio: %g", c.Fill)
	}
	return nil
}

func (c *CLICmd) Run() error {
	if err := os.MkdirAll(c.Out, os.ModeDir); err != nil {
		return fmt.Errorf("unable to create output folder %q: %w", c.Out, err)
	}

	var img *raster.Raster
	var err error
	switch c.Style {
	case "glyph":
		src, loadErr := fontload.Load(fontload.GlyphFontPaths...)
		if loadErr != nil {
			slog.Warn("no glyph font available", "error", loadErr)
		}
		img, err = Glyph(c.Size, c.Glyph, c.Fill, src)
	default:
		img, err = Facet(c.Size)
	}
	if err != nil {
		return fmt.Errorf("could not render icon: %w", err)
	}

	if err := raster.Save(img, c.Out, c.Name); err != nil {
		return err
	}
	slog.Info("icon generated", "file", filepath.Join(c.Out, c.Name), "style", c.Style, "size", c.Size)
	return nil
}
