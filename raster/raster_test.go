package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidDimension(t *testing.T) {
	_, err := New(0, 10, RGB, color.NRGBA{})
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = New(10, -1, RGBA, color.NRGBA{})
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestNew_Fill(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	r, err := New(3, 2, RGB, red)
	require.NoError(t, err)

	assert.Equal(t, 3, r.Width())
	assert.Equal(t, 2, r.Height())
	assert.Len(t, r.Buffer(), 3*2*3)
	c, err := r.Pixel(2, 1)
	require.NoError(t, err)
	assert.Equal(t, red, c)
}

func TestPixel_OutOfBounds(t *testing.T) {
	r, err := New(4, 4, RGBA, color.NRGBA{})
	require.NoError(t, err)

	_, err = r.Pixel(4, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = r.Pixel(0, -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, r.SetPixel(-1, 0, color.NRGBA{}), ErrOutOfBounds)
	assert.NoError(t, r.SetPixel(3, 3, color.NRGBA{A: 255}))
}

func TestCrop(t *testing.T) {
	r, err := New(10, 10, RGB, color.NRGBA{A: 255})
	require.NoError(t, err)
	marker := color.NRGBA{1, 2, 3, 255}
	require.NoError(t, r.SetPixel(5, 5, marker))

	sub, err := r.Crop(image.Rect(4, 4, 8, 8))
	require.NoError(t, err)
	assert.Equal(t, 4, sub.Width())
	assert.Equal(t, 4, sub.Height())
	c, err := sub.Pixel(1, 1)
	require.NoError(t, err)
	assert.Equal(t, marker, c)

	_, err = r.Crop(image.Rect(4, 4, 12, 12))
	assert.ErrorIs(t, err, ErrInvalidRegion)
	_, err = r.Crop(image.Rectangle{})
	assert.ErrorIs(t, err, ErrInvalidRegion)
}

func TestPaste_OpaqueSourceCopiesExactly(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	red := color.NRGBA{255, 0, 0, 255}

	dst, err := New(10, 10, RGB, white)
	require.NoError(t, err)
	src, err := New(4, 4, RGBA, red)
	require.NoError(t, err)

	require.NoError(t, dst.Paste(src, image.Pt(3, 3), nil))

	for y := range 10 {
		for x := range 10 {
			c, err := dst.Pixel(x, y)
			require.NoError(t, err)
			if x >= 3 && x < 7 && y >= 3 && y < 7 {
				assert.Equal(t, red, c, "inside paste region at (%d,%d)", x, y)
			} else {
				assert.Equal(t, white, c, "outside paste region at (%d,%d)", x, y)
			}
		}
	}
}

func TestPaste_AlphaWeighted(t *testing.T) {
	dst, err := New(2, 2, RGB, color.NRGBA{0, 0, 0, 255})
	require.NoError(t, err)
	src, err := New(2, 2, RGBA, color.NRGBA{255, 255, 255, 128})
	require.NoError(t, err)

	require.NoError(t, dst.Paste(src, image.Point{}, nil))
	c, err := dst.Pixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(128), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(128), c.B)
}

func TestPaste_MaskWeighted(t *testing.T) {
	dst, err := New(2, 2, RGB, color.NRGBA{0, 0, 0, 255})
	require.NoError(t, err)
	src, err := New(2, 2, RGB, color.NRGBA{255, 255, 255, 255})
	require.NoError(t, err)
	mask, err := New(2, 2, Gray, color.NRGBA{128, 128, 128, 255})
	require.NoError(t, err)

	require.NoError(t, dst.Paste(src, image.Point{}, mask))
	c, err := dst.Pixel(1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(128), c.R)
}

func TestPaste_MaskMustMatchSource(t *testing.T) {
	dst, _ := New(4, 4, RGB, color.NRGBA{})
	src, _ := New(2, 2, RGB, color.NRGBA{})
	mask, _ := New(3, 3, Gray, color.NRGBA{})

	assert.ErrorIs(t, dst.Paste(src, image.Point{}, mask), ErrInvalidRegion)
}

func TestPaste_ClipsToDestination(t *testing.T) {
	dst, err := New(4, 4, RGB, color.NRGBA{A: 255})
	require.NoError(t, err)
	src, err := New(4, 4, RGBA, color.NRGBA{255, 0, 0, 255})
	require.NoError(t, err)

	require.NoError(t, dst.Paste(src, image.Pt(-2, -2), nil))
	c, err := dst.Pixel(1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)
	c, err = dst.Pixel(3, 3)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), c.R)
}

func TestFlatten_AlphaAware(t *testing.T) {
	r, err := New(2, 2, RGBA, color.NRGBA{255, 255, 255, 128})
	require.NoError(t, err)

	flat := r.Flatten(color.NRGBA{0, 0, 0, 255})
	assert.Equal(t, RGB, flat.Mode())
	c, err := flat.Pixel(0, 0)
	require.NoError(t, err)
	// Naive channel drop would yield 255 here.
	assert.Equal(t, color.NRGBA{128, 128, 128, 255}, c)
}

func TestResize(t *testing.T) {
	r, err := New(10, 10, RGB, color.NRGBA{200, 100, 50, 255})
	require.NoError(t, err)

	scaled, err := r.Resize(5, 20)
	require.NoError(t, err)
	assert.Equal(t, 5, scaled.Width())
	assert.Equal(t, 20, scaled.Height())

	// Uniform input stays uniform under interpolating resampling.
	c, err := scaled.Pixel(2, 10)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{200, 100, 50, 255}, c)

	_, err = r.Resize(0, 5)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestFill(t *testing.T) {
	r, err := New(5, 5, RGB, color.NRGBA{A: 255})
	require.NoError(t, err)
	c := color.NRGBA{9, 9, 9, 255}

	require.NoError(t, r.Fill(image.Rect(1, 1, 3, 3), c))
	got, err := r.Pixel(2, 2)
	require.NoError(t, err)
	assert.Equal(t, c, got)
	got, err = r.Pixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, got)

	assert.ErrorIs(t, r.Fill(image.Rect(3, 3, 9, 9), c), ErrInvalidRegion)
}

func TestClone_Independent(t *testing.T) {
	r, err := New(2, 2, RGB, color.NRGBA{A: 255})
	require.NoError(t, err)
	dup := r.Clone()
	require.NoError(t, dup.SetPixel(0, 0, color.NRGBA{255, 0, 0, 255}))

	c, err := r.Pixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), c.R)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x10, 0x20, 0x30, 0xFF}, c)

	c, err = ParseHex("#10203040")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x10, 0x20, 0x30, 0x40}, c)

	c, err = ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}, c)

	_, err = ParseHex("123456")
	assert.Error(t, err)
}
