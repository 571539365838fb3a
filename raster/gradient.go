package raster

import (
	"fmt"
	"image/color"
	"math"
)

type Axis int

const (
	AxisVertical Axis = iota
	AxisDiagonal
)

// Gradient returns an RGB raster interpolating from start to end along the
// given axis. The blend position t is computed per pixel: y/height for the
// vertical axis, (x+y)/(width+height) for the diagonal one.
func Gradient(width, height int, start, end color.NRGBA, axis Axis) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: gradient %dx%d", ErrInvalidDimension, width, height)
	}

	out, err := New(width, height, RGB, color.NRGBA{})
	if err != nil {
		return nil, err
	}
	for y := range height {
		for x := range width {
			var t float64
			switch axis {
			case AxisDiagonal:
				t = float64(x+y) / float64(width+height)
			default:
				t = float64(y) / float64(height)
			}
			out.setNRGBA(x, y, color.NRGBA{
				R: mix(start.R, end.R, t),
				G: mix(start.G, end.G, t),
				B: mix(start.B, end.B, t),
				A: 0xFF,
			})
		}
	}
	return out, nil
}

func mix(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a)*(1-t) + float64(b)*t)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
