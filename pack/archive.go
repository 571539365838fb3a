// Package pack bundles the project tree into the distributable archive
// uploaded to the store, named after the manifest version.
package pack

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Packaging policy: VCS metadata, tooling directories, OS litter and
// store-only assets never ship in the archive.
var (
	excludeDirs = map[string]bool{
		".git":         true,
		".vscode":      true,
		"docs":         true,
		"node_modules": true,
		"scripts":      true,
	}
	excludeFiles = map[string]bool{
		".DS_Store":   true,
		".gitignore":  true,
		"Thumbs.db":   true,
		"desktop.ini": true,
	}
	excludePrefixes = []string{"store_", "promo_"}
)

// Include reports whether a file with the given base name ships.
func Include(name string) bool {
	if excludeFiles[name] || strings.EqualFold(filepath.Ext(name), ".zip") {
		return false
	}
	for _, prefix := range excludePrefixes {
		if strings.HasPrefix(name, prefix) {
			return false
		}
	}
	return true
}

type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("could not read manifest %q: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("could not parse manifest %q: %w", path, err)
	}
	return m, nil
}

// Export walks root and writes every shipping file into a deflate-compressed
// archive named zipName at the root, preserving relative paths. Returns the
// number of files written. The archive lands through a temp file renamed
// into place, so a failed run never leaves a truncated bundle.
func Export(root, zipName string) (count int, err error) {
	outFile, err := os.CreateTemp(root, zipName)
	if err != nil {
		return 0, fmt.Errorf("could not create temporary archive %q: %w", zipName, err)
	}
	tempPath := outFile.Name()
	canRename := false
	defer func() {
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary archive %q: %w", zipName, defErr)
		}
		if err != nil || !canRename {
			os.Remove(tempPath)
			return
		}
		if defErr := os.Rename(tempPath, filepath.Join(root, zipName)); defErr != nil {
			err = fmt.Errorf("could not rename archive %q: %w", zipName, defErr)
		}
	}()

	zw := zip.NewWriter(outFile)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != root && excludeDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if path == tempPath || !Include(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("could not relativize %q: %w", path, err)
		}

		in, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", path, err)
		}
		defer in.Close()

		slog.Info("adding", "file", rel)
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("could not add %q to archive: %w", rel, err)
		}
		if _, err = io.Copy(w, in); err != nil {
			return fmt.Errorf("could not write %q to archive: %w", rel, err)
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}

	if err = zw.Close(); err != nil {
		return count, fmt.Errorf("could not finalize archive %q: %w", zipName, err)
	}
	if err = outFile.Sync(); err != nil {
		return count, fmt.Errorf("could not flush archive %q: %w", zipName, err)
	}

	canRename = true
	return count, nil
}
