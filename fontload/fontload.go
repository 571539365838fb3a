// Package fontload resolves font faces on a best-effort basis and rasterizes
// strings onto a drawable image. Missing system fonts are a recoverable
// condition: callers either degrade to the embedded face or to a placeholder
// rendering, never abort.
package fontload

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var ErrResourceUnavailable = errors.New("resource unavailable")

// Candidate paths tried in order. Title text degrades to the embedded face,
// glyph rendering degrades to a placeholder when none of these parse.
var (
	TextFontPaths = []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"C:\\Windows\\Fonts\\arialbd.ttf",
		"C:\\Windows\\Fonts\\arial.ttf",
	}
	GlyphFontPaths = []string{
		"C:\\Windows\\Fonts\\seguiemj.ttf",
		"/usr/share/fonts/truetype/noto/NotoColorEmoji.ttf",
		"/usr/share/fonts/truetype/ancient-scripts/Symbola_hint.ttf",
	}
)

// Source is a parsed font usable at any point size.
type Source struct {
	font *sfnt.Font
	path string // empty for the embedded fallback
}

// Load parses the first readable candidate font file.
func Load(paths ...string) (*Source, error) {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			slog.Warn("could not parse font", "file", p, "error", err)
			continue
		}
		return &Source{font: f, path: p}, nil
	}
	return nil, fmt.Errorf("%w: no usable font among %d candidates", ErrResourceUnavailable, len(paths))
}

var fallback = sync.OnceValue(func() *Source {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		// The embedded TTF is a compile-time constant; this cannot happen
		// outside a corrupted build.
		panic(fmt.Sprintf("embedded font unusable: %v", err))
	}
	return &Source{font: f}
})

// Fallback returns the embedded Go Regular face source, always available.
func Fallback() *Source { return fallback() }

// Best loads the first usable candidate or degrades to the embedded face.
func Best(paths ...string) *Source {
	s, err := Load(paths...)
	if err != nil {
		slog.Warn("using embedded fallback font", "error", err)
		return Fallback()
	}
	return s
}

func (s *Source) Path() string   { return s.path }
func (s *Source) Embedded() bool { return s.path == "" }

func (s *Source) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create %gpt face: %w", size, err)
	}
	return face, nil
}

// Covers reports whether the font maps r to a real glyph.
func (s *Source) Covers(r rune) bool {
	var buf sfnt.Buffer
	idx, err := s.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// Measure returns the tight pixel extent of s rendered with face.
func Measure(face font.Face, s string) (width, height int) {
	bounds, _ := font.BoundString(face, s)
	return (bounds.Max.X - bounds.Min.X).Ceil(), (bounds.Max.Y - bounds.Min.Y).Ceil()
}

// DrawString rasterizes s onto dst so the tight bounding box of the text
// starts at `at` (top-left anchored).
func DrawString(dst draw.Image, s string, face font.Face, col color.NRGBA, at image.Point) {
	bounds, _ := font.BoundString(face, s)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(at.X-bounds.Min.X.Floor(), at.Y-bounds.Min.Y.Floor()),
	}
	d.DrawString(s)
}
