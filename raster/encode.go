package raster

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// Load decodes an image file into an RGBA raster. Any format with a
// registered decoder is accepted; captured screenshots are typically PNG or
// JPEG.
func Load(path string) (*Raster, error) {
	imgFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer imgFile.Close()

	img, _, err := image.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %q: %w", path, err)
	}
	return FromImage(img, RGBA)
}

// Save writes the raster as a PNG under destDir, through a temp file renamed
// into place so a failed write never leaves a truncated asset.
func Save(r *Raster, destDir, destName string) (err error) {
	outFile, err := os.CreateTemp(destDir, destName)
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}
		if err != nil {
			os.Remove(outFile.Name())
			return
		}
		if canRename {
			if defErr := os.Rename(outFile.Name(), filepath.Join(destDir, destName)); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}
	}()

	enc := png.Encoder{
		CompressionLevel: png.BestCompression,
		BufferPool:       pngPool,
	}
	if err = enc.Encode(outFile, r); err != nil {
		return fmt.Errorf("could not encode PNG destination %q: %w", destName, err)
	}

	canRename = true
	return err
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
