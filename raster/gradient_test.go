package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradient_Endpoints(t *testing.T) {
	start := color.NRGBA{200, 100, 50, 255}
	end := color.NRGBA{10, 220, 130, 255}

	for _, axis := range []Axis{AxisVertical, AxisDiagonal} {
		g, err := Gradient(256, 256, start, end, axis)
		require.NoError(t, err)

		c, err := g.Pixel(0, 0)
		require.NoError(t, err)
		assert.Equal(t, start, c, "axis %d start corner", axis)

		c, err = g.Pixel(255, 255)
		require.NoError(t, err)
		assert.InDelta(t, end.R, c.R, 1, "axis %d end corner R", axis)
		assert.InDelta(t, end.G, c.G, 1, "axis %d end corner G", axis)
		assert.InDelta(t, end.B, c.B, 1, "axis %d end corner B", axis)
	}
}

func TestGradient_VerticalRowsUniform(t *testing.T) {
	g, err := Gradient(16, 16, color.NRGBA{0, 0, 0, 255}, color.NRGBA{255, 255, 255, 255}, AxisVertical)
	require.NoError(t, err)

	left, err := g.Pixel(0, 7)
	require.NoError(t, err)
	right, err := g.Pixel(15, 7)
	require.NoError(t, err)
	assert.Equal(t, left, right)
}

func TestGradient_DiagonalVariesAlongRow(t *testing.T) {
	g, err := Gradient(16, 16, color.NRGBA{0, 0, 0, 255}, color.NRGBA{255, 255, 255, 255}, AxisDiagonal)
	require.NoError(t, err)

	left, err := g.Pixel(0, 7)
	require.NoError(t, err)
	right, err := g.Pixel(15, 7)
	require.NoError(t, err)
	assert.Less(t, left.R, right.R)
}

func TestGradient_Deterministic(t *testing.T) {
	start := color.NRGBA{20, 20, 35, 255}
	end := color.NRGBA{10, 10, 20, 255}

	a, err := Gradient(64, 32, start, end, AxisDiagonal)
	require.NoError(t, err)
	b, err := Gradient(64, 32, start, end, AxisDiagonal)
	require.NoError(t, err)
	assert.Equal(t, a.Buffer(), b.Buffer())
}

func TestGradient_InvalidDimension(t *testing.T) {
	_, err := Gradient(0, 10, color.NRGBA{}, color.NRGBA{}, AxisVertical)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = Gradient(10, 0, color.NRGBA{}, color.NRGBA{}, AxisDiagonal)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
