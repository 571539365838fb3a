// Package tile builds the promotional store images: gradient backgrounds
// layered with the glowing icon, flat UI shapes and rendered text.
package tile

import (
	"image"
	"image/color"
	"math"

	"storegen/raster"
)

// Accent used for glows, underlines and badges across all tiles.
var accent = color.NRGBA{167, 139, 250, 255}

// layer is one entry of a tile's layout: a raster pasted at an offset.
// Layers compose in order, later ones over earlier ones.
type layer struct {
	src *raster.Raster
	at  image.Point
}

func compose(bg *raster.Raster, layers []layer) error {
	for _, l := range layers {
		if l.src == nil {
			continue
		}
		if err := bg.Paste(l.src, l.at, nil); err != nil {
			return err
		}
	}
	return nil
}

// outlineRect strokes the border of rect, width pixels thick, inside it.
func outlineRect(dst *raster.Raster, rect image.Rectangle, c color.NRGBA, width int) error {
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+width),
		image.Rect(rect.Min.X, rect.Max.Y-width, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Max.Y),
		image.Rect(rect.Max.X-width, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
	for _, e := range edges {
		if err := dst.Fill(e, c); err != nil {
			return err
		}
	}
	return nil
}

// disc returns a transparent square holding a filled circle.
func disc(diameter int, c color.NRGBA) (*raster.Raster, error) {
	out, err := raster.New(diameter, diameter, raster.RGBA, color.NRGBA{})
	if err != nil {
		return nil, err
	}
	center := float64(diameter-1) / 2
	radius := float64(diameter) / 2
	for y := range diameter {
		for x := range diameter {
			if math.Hypot(float64(x)-center, float64(y)-center) <= radius {
				out.Set(x, y, c)
			}
		}
	}
	return out, nil
}
