package shot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"storegen/parallel"
	"storegen/raster"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Split   SplitCmd   `cmd:"" help:"Split multi-monitor captures into per-monitor images"`
	Prepare PrepareCmd `cmd:"" help:"Redact and fit captured screenshots to store dimensions"`
}

type SplitCmd struct {
	Scan string `help:"Folder holding captured screenshots" default:"images"`
}

func (c *SplitCmd) Validate(kctx *kong.Context) error {
	return validateScanDir(&c.Scan)
}

func (c *SplitCmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var splitCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() || !isCapture(file.Name()) {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				filePath := filepath.Join(c.Scan, fileName)
				logger := slog.Default().With("file", filePath)

				src, err := raster.Load(filePath)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not load capture", "error", err)
					return
				}

				center, left, ok, err := SplitMonitors(src)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not split capture", "error", err)
					return
				}
				if !ok {
					return
				}

				logger.Info("splitting wide capture", "width", src.Width(), "height", src.Height())
				for name, monitor := range map[string]*raster.Raster{
					"monitor_center_" + fileName: center,
					"monitor_left_" + fileName:   left,
				} {
					if err := raster.Save(monitor, c.Scan, name); err != nil {
						errCount.Add(1)
						logger.Error("could not save monitor crop", "name", name, "error", err)
						return
					}
					logger.Info("saved monitor crop", "name", name)
				}
				splitCount.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	split := splitCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "split", split, "errors", errors)
	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

type PrepareCmd struct {
	Scan       string      `help:"Folder holding captured screenshots" default:"images"`
	Width      int         `help:"Store screenshot width" default:"1280"`
	Height     int         `help:"Store screenshot height" default:"800"`
	Background string      `help:"Canvas fill color" default:"#111111"`
	NoRedact   bool        `help:"Keep the browser profile area visible" default:"false"`
	BGColor    color.NRGBA `kong:"-"`
}

// Captured file name -> store listing file name. Discovery is skipped here
// because the tile command generates a stylized one instead.
var storeMapping = map[string]string{
	"home.png":   "store_screenshot_1_dashboard.png",
	"reader.png": "store_screenshot_2_reader.png",
}

// Redaction geometry for a maximized browser window: the avatar/menu cluster
// sits in the top-right 180x100 corner, with toolbar background 20px to its
// left.
const (
	redactWidth   = 180
	redactHeight  = 100
	probeFallback = 40 // flat dark gray
)

func (c *PrepareCmd) Validate(kctx *kong.Context) error {
	if err := validateScanDir(&c.Scan); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid store dimensions: %dx%d", c.Width, c.Height)
	}

	var err error
	if c.BGColor, err = raster.ParseHex(c.Background); err != nil {
		return fmt.Errorf("invalid background %q: %w", c.Background, err)
	}
	return nil
}

func (c *PrepareCmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	var preparedCount, errCount atomic.Uint64
	for inputName, outputName := range storeMapping {
		worker(func(inputName, outputName string) func() {
			return func() {
				inputPath := filepath.Join(c.Scan, inputName)
				logger := slog.Default().With("file", inputPath)

				src, err := raster.Load(inputPath)
				if err != nil {
					if errors.Is(err, fs.ErrNotExist) {
						logger.Warn("capture not found, skipping")
						return
					}
					errCount.Add(1)
					logger.Error("could not load capture", "error", err)
					return
				}

				var redact *image.Rectangle
				if !c.NoRedact {
					rect := image.Rect(src.Width()-redactWidth, 0, src.Width(), redactHeight)
					redact = &rect
					logger.Info("redacting profile area", "rect", rect)
				}

				fallback := color.NRGBA{probeFallback, probeFallback, probeFallback, 0xFF}
				out, err := FitToCanvas(src, image.Pt(c.Width, c.Height), c.BGColor, redact, fallback)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not fit capture", "error", err)
					return
				}

				if err := raster.Save(out, c.Scan, outputName); err != nil {
					errCount.Add(1)
					logger.Error("could not save store screenshot", "name", outputName, "error", err)
					return
				}
				logger.Info("saved store screenshot", "name", outputName, "width", c.Width, "height", c.Height)
				preparedCount.Add(1)
			}
		}(inputName, outputName))
	}

	wait(true)

	prepared := preparedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "prepared", prepared, "errors", errors)
	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func validateScanDir(scan *string) error {
	scanDir, err := filepath.Abs(*scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", *scan, err)
	}
	*scan = scanDir
	return nil
}

func isCapture(name string) bool {
	if strings.HasPrefix(name, "monitor_") || strings.HasPrefix(name, "store_") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
