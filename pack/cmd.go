package pack

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Root     string `help:"Project root to bundle" default:"."`
	Manifest string `help:"Manifest file, relative to root if not absolute" default:"manifest.json"`
	Name     string `help:"Archive base name; defaults to the manifest name"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	root, err := filepath.Abs(c.Root)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(root); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid root path %q: %w", c.Root, err)
	}
	c.Root = root

	if !filepath.IsAbs(c.Manifest) {
		c.Manifest = filepath.Join(root, c.Manifest)
	}
	return nil
}

func (c *CLICmd) Run() error {
	m, err := ReadManifest(c.Manifest)
	if err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		name = m.Name
	}
	if name == "" {
		name = "extension"
	}
	version := m.Version
	if version == "" {
		version = "unknown"
	}

	zipName := fmt.Sprintf("%s-v%s.zip", name, version)
	slog.Info("packaging", "name", name, "version", version, "archive", zipName)

	count, err := Export(c.Root, zipName)
	if err != nil {
		return fmt.Errorf("could not package %q: %w", c.Root, err)
	}

	slog.Info("stats", "archive", filepath.Join(c.Root, zipName), "files", count)
	return nil
}
