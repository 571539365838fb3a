package icon

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"storegen/fontload"
	"storegen/raster"
)

// Glyph renders a single glyph centered on a transparent square canvas,
// scaled so its larger dimension spans size*fillRatio pixels. When no
// glyph-capable face is available (src nil, glyph not covered, or the face
// produces no coverage) it degrades to a flat placeholder square instead of
// failing: one missing font must not sink a whole asset run.
func Glyph(size int, glyph string, fillRatio float64, src *fontload.Source) (*raster.Raster, error) {
	out, err := raster.New(size, size, raster.RGBA, color.NRGBA{})
	if err != nil {
		return nil, err
	}

	runes := []rune(glyph)
	if src == nil || len(runes) == 0 || !src.Covers(runes[0]) {
		slog.Warn("no glyph-capable font, rendering placeholder", "glyph", glyph)
		return placeholder(out)
	}

	face, err := src.Face(float64(size))
	if err != nil {
		slog.Warn("could not open font face, rendering placeholder", "font", src.Path(), "error", err)
		return placeholder(out)
	}
	defer face.Close()

	// Trial render at a generous size, then locate the covered pixels.
	trial, err := raster.New(2*size, 2*size, raster.RGBA, color.NRGBA{})
	if err != nil {
		return nil, err
	}
	fontload.DrawString(trial, glyph, face, color.NRGBA{255, 255, 255, 255}, image.Pt(size/2, size/2))

	box, ok := opaqueBounds(trial)
	if !ok {
		slog.Warn("glyph rendered no coverage, rendering placeholder", "glyph", glyph, "font", src.Path())
		return placeholder(out)
	}

	tight, err := trial.Crop(box)
	if err != nil {
		return nil, fmt.Errorf("could not crop glyph extent: %w", err)
	}

	target := float64(size) * fillRatio
	ratio := min(target/float64(tight.Width()), target/float64(tight.Height()))
	w := max(int(float64(tight.Width())*ratio), 1)
	h := max(int(float64(tight.Height())*ratio), 1)
	scaled, err := tight.Resize(w, h)
	if err != nil {
		return nil, fmt.Errorf("could not scale glyph: %w", err)
	}

	if err := out.Paste(scaled, image.Pt((size-w)/2, (size-h)/2), nil); err != nil {
		return nil, err
	}
	return out, nil
}

// opaqueBounds returns the tight bounding box of pixels with nonzero alpha.
func opaqueBounds(r *raster.Raster) (image.Rectangle, bool) {
	box := image.Rectangle{Min: image.Pt(r.Width(), r.Height())}
	for y := range r.Height() {
		for x := range r.Width() {
			c, _ := r.Pixel(x, y)
			if c.A == 0 {
				continue
			}
			box.Min.X = min(box.Min.X, x)
			box.Min.Y = min(box.Min.Y, y)
			box.Max.X = max(box.Max.X, x+1)
			box.Max.Y = max(box.Max.Y, y+1)
		}
	}
	return box, !box.Empty()
}

func placeholder(out *raster.Raster) (*raster.Raster, error) {
	size := out.Width()
	pad := size * 20 / facetBase
	rect := image.Rect(pad, pad, size-pad, size-pad)
	if err := out.Fill(rect, color.NRGBA{0, 0, 255, 255}); err != nil {
		return nil, err
	}
	return out, nil
}
