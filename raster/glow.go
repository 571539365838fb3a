package raster

import (
	"fmt"
	"image/color"
	"math"
)

// Glow returns a transparent RGBA square holding a soft radial halo: rings
// concentric circle outlines, ring i inset i pixels from the outer edge with
// alpha maxAlpha*(1-i/rings). Deeper rings win where strokes overlap,
// matching painter order. A cheap stand-in for a Gaussian blur; the result
// is meant to be pasted centered behind an icon.
func Glow(diameter int, col color.NRGBA, rings int, maxAlpha uint8, stroke float64) (*Raster, error) {
	if diameter <= 0 {
		return nil, fmt.Errorf("%w: glow diameter %d", ErrInvalidDimension, diameter)
	}
	if rings <= 0 {
		return nil, fmt.Errorf("%w: glow ring count %d", ErrInvalidDimension, rings)
	}

	out, err := New(diameter, diameter, RGBA, color.NRGBA{})
	if err != nil {
		return nil, err
	}

	center := float64(diameter-1) / 2
	outer := float64(diameter) / 2
	half := stroke / 2
	for y := range diameter {
		for x := range diameter {
			r := math.Hypot(float64(x)-center, float64(y)-center)
			// Ring i covers radii [outer-i-half, outer-i+half]; the largest
			// covering index is the one drawn last.
			i := int(math.Floor(outer - r + half))
			if i >= rings {
				i = rings - 1
			}
			if i < 0 || math.Abs(r-(outer-float64(i))) > half {
				continue
			}
			a := float64(maxAlpha) * (1 - float64(i)/float64(rings))
			out.setNRGBA(x, y, color.NRGBA{R: col.R, G: col.G, B: col.B, A: uint8(a)})
		}
	}
	return out, nil
}
