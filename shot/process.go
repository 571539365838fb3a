// Package shot turns captured screenshots into store-ready derivatives:
// multi-monitor captures are split per monitor, and individual captures are
// redacted and letterboxed onto fixed-size canvases.
package shot

import (
	"fmt"
	"image"
	"image/color"

	"storegen/raster"
)

// A capture wider than ~3 monitors and taller than a browser strip is treated
// as a multi-monitor grab. Heuristic thresholds, kept from the capture setup
// this tool was built around.
const (
	multiMonitorMinWidth  = 3000
	multiMonitorMinHeight = 800
	monitorCount          = 3
)

// FitToCanvas scales src to fit entirely inside target (aspect preserved,
// never cropped) and centers it on a fresh canvas filled with bg. When
// redact is given, that region is painted over first with a color sampled
// just left of it, or with fallback if the probe lands outside the capture.
func FitToCanvas(src *raster.Raster, target image.Point, bg color.NRGBA, redact *image.Rectangle, fallback color.NRGBA) (*raster.Raster, error) {
	if target.X <= 0 || target.Y <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d", raster.ErrInvalidDimension, target.X, target.Y)
	}

	work := src
	if redact != nil {
		if !redact.In(src.Bounds()) {
			return nil, fmt.Errorf("%w: redact %v of %v", raster.ErrInvalidRegion, *redact, src.Bounds())
		}
		work = src.Clone()

		fill := fallback
		probe := image.Pt(redact.Min.X-20, (redact.Min.Y+redact.Max.Y)/2)
		if c, err := work.Pixel(probe.X, probe.Y); err == nil {
			fill = c
		}
		if err := work.Fill(*redact, fill); err != nil {
			return nil, err
		}
	}

	flat := work.Flatten(bg)

	ratio := min(
		float64(target.X)/float64(flat.Width()),
		float64(target.Y)/float64(flat.Height()),
	)
	w := max(int(float64(flat.Width())*ratio), 1)
	h := max(int(float64(flat.Height())*ratio), 1)
	scaled, err := flat.Resize(w, h)
	if err != nil {
		return nil, err
	}

	canvas, err := raster.New(target.X, target.Y, raster.RGB, bg)
	if err != nil {
		return nil, err
	}
	if err := canvas.Paste(scaled, image.Pt((target.X-w)/2, (target.Y-h)/2), nil); err != nil {
		return nil, err
	}
	return canvas, nil
}

// SplitMonitors cuts a multi-monitor capture into horizontal thirds and
// returns the center and left monitors. The right third is discarded: the
// capture setup never shows the product there. Returns ok=false for
// captures that do not look multi-monitor.
func SplitMonitors(src *raster.Raster) (center, left *raster.Raster, ok bool, err error) {
	w, h := src.Width(), src.Height()
	if w <= multiMonitorMinWidth || h <= multiMonitorMinHeight {
		return nil, nil, false, nil
	}

	monitorWidth := w / monitorCount
	center, err = src.Crop(image.Rect(monitorWidth, 0, 2*monitorWidth, h))
	if err != nil {
		return nil, nil, false, err
	}
	left, err = src.Crop(image.Rect(0, 0, monitorWidth, h))
	if err != nil {
		return nil, nil, false, err
	}
	return center, left, true, nil
}
