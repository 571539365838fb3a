// Package icon renders the application mark: a faceted diamond built from
// flat-shaded polygons, or a single glyph scaled to fill the canvas.
package icon

import (
	"image"
	"image/color"
	"math"
	"sort"

	"storegen/raster"
)

// Facet band proportions, in 128ths of the icon edge.
const (
	facetTopY     = 30
	facetMidY     = 55
	facetBottomY  = 110
	facetTopWidth = 80
	facetMidWidth = 110
	facetBase     = 128
)

// Facet renders the diamond mark: six flat facets fanned around the mid-band
// center plus two highlight strokes, on a transparent background. Purely
// arithmetic, so equal sizes yield byte-identical rasters.
func Facet(size int) (*raster.Raster, error) {
	img, err := raster.New(size, size, raster.RGBA, color.NRGBA{})
	if err != nil {
		return nil, err
	}

	topY := size * facetTopY / facetBase
	midY := size * facetMidY / facetBase
	botY := size * facetBottomY / facetBase
	topHalf := size * facetTopWidth / facetBase / 2
	midHalf := size * facetMidWidth / facetBase / 2
	cx := size / 2

	topL := image.Pt(cx-topHalf, topY)
	topR := image.Pt(cx+topHalf, topY)
	midL := image.Pt(cx-midHalf, midY)
	midR := image.Pt(cx+midHalf, midY)
	center := image.Pt(cx, midY)
	bot := image.Pt(cx, botY)

	// Top band, then the three facets fanned over it.
	fillPolygon(img, []image.Point{topL, topR, midR, midL}, color.NRGBA{0, 200, 255, 255})
	fillPolygon(img, []image.Point{topL, midL, center}, color.NRGBA{0, 150, 255, 255})
	fillPolygon(img, []image.Point{topR, midR, center}, color.NRGBA{0, 100, 200, 255})
	fillPolygon(img, []image.Point{topL, topR, center}, color.NRGBA{0, 255, 255, 255})

	// Pavilion.
	fillPolygon(img, []image.Point{midL, center, bot}, color.NRGBA{0, 0, 180, 255})
	fillPolygon(img, []image.Point{midR, center, bot}, color.NRGBA{0, 0, 100, 255})

	// Highlights along the table edge and the upper-left girdle.
	strokeLine(img, topL, topR, color.NRGBA{255, 255, 255, 200}, 2)
	strokeLine(img, topL, midL, color.NRGBA{255, 255, 255, 150}, 1)

	return img, nil
}

// fillPolygon scan-fills a non-self-intersecting polygon, sampling each row
// at its vertical center. Pixels are written directly, no blending.
func fillPolygon(dst *raster.Raster, pts []image.Point, c color.NRGBA) {
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	for y := minY; y <= maxY; y++ {
		sy := float64(y) + 0.5
		var xs []float64
		for i, a := range pts {
			b := pts[(i+1)%len(pts)]
			ay, by := float64(a.Y), float64(b.Y)
			if (sy < ay) == (sy < by) {
				continue
			}
			t := (sy - ay) / (by - ay)
			xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i] - 0.5)); float64(x)+0.5 <= xs[i+1]; x++ {
				dst.Set(x, y, c)
			}
		}
	}
}

// strokeLine draws a straight segment of the given width by stamping a
// square of pixels along it. Pixels are written directly, no blending.
func strokeLine(dst *raster.Raster, a, b image.Point, c color.NRGBA, width int) {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))*2 + 1
	lo := -(width - 1) / 2
	hi := width / 2
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		px := int(math.Round(float64(a.X) + t*dx))
		py := int(math.Round(float64(a.Y) + t*dy))
		for oy := lo; oy <= hi; oy++ {
			for ox := lo; ox <= hi; ox++ {
				dst.Set(px+ox, py+oy, c)
			}
		}
	}
}
