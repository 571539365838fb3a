// Package raster holds the shared pixel-level primitives every asset
// generator composes: a mutable 2D pixel grid with crop/resize, alpha-aware
// paste and mode flattening, plus the gradient and glow generators.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrOutOfBounds      = errors.New("pixel out of bounds")
	ErrInvalidRegion    = errors.New("invalid region")
)

type Mode int

const (
	RGB Mode = iota + 1
	RGBA
	Gray // single channel, used as a paste mask
)

func (m Mode) Channels() int {
	switch m {
	case RGB:
		return 3
	case RGBA:
		return 4
	case Gray:
		return 1
	}
	return 0
}

// Raster is a top-left-origin pixel grid, 3 channels for RGB, 4 for RGBA,
// 1 for Gray. It implements image.Image and draw.Image so it can feed
// x/image scaling, font drawing and the PNG encoder directly.
type Raster struct {
	width  int
	height int
	mode   Mode
	pix    []uint8
}

func New(width, height int, mode Mode, fill color.NRGBA) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if mode.Channels() == 0 {
		return nil, fmt.Errorf("unsupported raster mode: %d", mode)
	}

	r := &Raster{
		width:  width,
		height: height,
		mode:   mode,
		pix:    make([]uint8, width*height*mode.Channels()),
	}
	for y := range height {
		for x := range width {
			r.setNRGBA(x, y, fill)
		}
	}
	return r, nil
}

// FromImage copies an arbitrary decoded image into a Raster of the given mode.
func FromImage(img image.Image, mode Mode) (*Raster, error) {
	b := img.Bounds()
	r, err := New(b.Dx(), b.Dy(), mode, color.NRGBA{})
	if err != nil {
		return nil, err
	}
	for y := range r.height {
		for x := range r.width {
			r.setNRGBA(x, y, color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA))
		}
	}
	return r, nil
}

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }
func (r *Raster) Mode() Mode  { return r.mode }

// Buffer exposes the raw pixel data, len == width*height*channels.
func (r *Raster) Buffer() []uint8 { return r.pix }

func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

func (r *Raster) ColorModel() color.Model { return color.NRGBAModel }

func (r *Raster) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(r.Bounds())) {
		return color.NRGBA{}
	}
	return r.nrgbaAt(x, y)
}

// Set makes Raster a draw.Image; out-of-bounds writes are dropped, matching
// the stdlib image types.
func (r *Raster) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(r.Bounds())) {
		return
	}
	r.setNRGBA(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

// Pixel is the bounds-checked accessor used at the API surface.
func (r *Raster) Pixel(x, y int) (color.NRGBA, error) {
	if !(image.Point{x, y}.In(r.Bounds())) {
		return color.NRGBA{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, r.width, r.height)
	}
	return r.nrgbaAt(x, y), nil
}

func (r *Raster) SetPixel(x, y int, c color.NRGBA) error {
	if !(image.Point{x, y}.In(r.Bounds())) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, r.width, r.height)
	}
	r.setNRGBA(x, y, c)
	return nil
}

func (r *Raster) nrgbaAt(x, y int) color.NRGBA {
	i := (y*r.width + x) * r.mode.Channels()
	switch r.mode {
	case RGB:
		return color.NRGBA{R: r.pix[i], G: r.pix[i+1], B: r.pix[i+2], A: 0xFF}
	case RGBA:
		return color.NRGBA{R: r.pix[i], G: r.pix[i+1], B: r.pix[i+2], A: r.pix[i+3]}
	default:
		v := r.pix[i]
		return color.NRGBA{R: v, G: v, B: v, A: 0xFF}
	}
}

func (r *Raster) setNRGBA(x, y int, c color.NRGBA) {
	i := (y*r.width + x) * r.mode.Channels()
	switch r.mode {
	case RGB:
		r.pix[i], r.pix[i+1], r.pix[i+2] = c.R, c.G, c.B
	case RGBA:
		r.pix[i], r.pix[i+1], r.pix[i+2], r.pix[i+3] = c.R, c.G, c.B, c.A
	default:
		r.pix[i] = color.GrayModel.Convert(c).(color.Gray).Y
	}
}

// Clone returns an identical copy with its own buffer.
func (r *Raster) Clone() *Raster {
	dup := &Raster{width: r.width, height: r.height, mode: r.mode, pix: make([]uint8, len(r.pix))}
	copy(dup.pix, r.pix)
	return dup
}

// Crop returns a new Raster holding exactly the pixels inside rect.
func (r *Raster) Crop(rect image.Rectangle) (*Raster, error) {
	if rect.Empty() || !rect.In(r.Bounds()) {
		return nil, fmt.Errorf("%w: crop %v of %dx%d", ErrInvalidRegion, rect, r.width, r.height)
	}
	out, err := New(rect.Dx(), rect.Dy(), r.mode, color.NRGBA{})
	if err != nil {
		return nil, err
	}
	for y := range out.height {
		for x := range out.width {
			out.setNRGBA(x, y, r.nrgbaAt(rect.Min.X+x, rect.Min.Y+y))
		}
	}
	return out, nil
}

// Resize scales to the requested size with Catmull-Rom resampling. Every
// asset is generated once, so quality beats speed here.
func (r *Raster) Resize(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: resize to %dx%d", ErrInvalidDimension, width, height)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), r, r.Bounds(), draw.Src, nil)
	return FromImage(dst, r.mode)
}

// Paste blends src onto r at offset. The per-pixel weight comes from mask if
// given (which must match src's size), otherwise from src's alpha channel;
// RGB sources paste opaquely. This is the only operation that draws one
// raster onto another.
func (r *Raster) Paste(src *Raster, offset image.Point, mask *Raster) error {
	if mask != nil && (mask.width != src.width || mask.height != src.height) {
		return fmt.Errorf("%w: mask %dx%d for source %dx%d",
			ErrInvalidRegion, mask.width, mask.height, src.width, src.height)
	}

	for y := range src.height {
		dy := y + offset.Y
		if dy < 0 || dy >= r.height {
			continue
		}
		for x := range src.width {
			dx := x + offset.X
			if dx < 0 || dx >= r.width {
				continue
			}

			s := src.nrgbaAt(x, y)
			var w uint8 = 0xFF
			if mask != nil {
				w = mask.pix[y*mask.width+x]
			} else if src.mode == RGBA {
				w = s.A
			}
			if w == 0 {
				continue
			}

			d := r.nrgbaAt(dx, dy)
			r.setNRGBA(dx, dy, color.NRGBA{
				R: lerp(d.R, s.R, w),
				G: lerp(d.G, s.G, w),
				B: lerp(d.B, s.B, w),
				A: lerp(d.A, s.A, w),
			})
		}
	}
	return nil
}

// Fill paints rect with a flat color, no blending. Used for redaction
// patches and flat UI shapes.
func (r *Raster) Fill(rect image.Rectangle, c color.NRGBA) error {
	if rect.Empty() || !rect.In(r.Bounds()) {
		return fmt.Errorf("%w: fill %v of %dx%d", ErrInvalidRegion, rect, r.width, r.height)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r.setNRGBA(x, y, c)
		}
	}
	return nil
}

// Flatten composites an RGBA raster over bg and returns an RGB raster.
// Dropping the alpha channel naively leaves dark fringes on soft edges, so
// the alpha channel weights the composite instead.
func (r *Raster) Flatten(bg color.NRGBA) *Raster {
	out := &Raster{width: r.width, height: r.height, mode: RGB, pix: make([]uint8, r.width*r.height*3)}
	for y := range r.height {
		for x := range r.width {
			s := r.nrgbaAt(x, y)
			out.setNRGBA(x, y, color.NRGBA{
				R: lerp(bg.R, s.R, s.A),
				G: lerp(bg.G, s.G, s.A),
				B: lerp(bg.B, s.B, s.A),
				A: 0xFF,
			})
		}
	}
	return out
}

func lerp(d, s, w uint8) uint8 {
	return uint8((int(d)*(255-int(w)) + int(s)*int(w) + 127) / 255)
}
