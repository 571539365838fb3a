package pack

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content of "+rel), 0o644))
}

func TestInclude(t *testing.T) {
	assert.True(t, Include("manifest.json"))
	assert.True(t, Include("background.js"))
	assert.True(t, Include("icon128.png"))

	assert.False(t, Include("store_promo_small_440x280.png"))
	assert.False(t, Include("promo_banner.png"))
	assert.False(t, Include("old.zip"))
	assert.False(t, Include("old.ZIP"))
	assert.False(t, Include(".gitignore"))
	assert.False(t, Include(".DS_Store"))
	assert.False(t, Include("Thumbs.db"))
	assert.False(t, Include("desktop.ini"))
}

func TestReadManifest(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"prism-reader","version":"1.2.3"}`), 0o644))

	m, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "prism-reader", m.Name)
	assert.Equal(t, "1.2.3", m.Version)

	_, err = ReadManifest(filepath.Join(root, "missing.json"))
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "manifest.json")
	writeFile(t, root, "background.js")
	writeFile(t, root, filepath.Join("images", "icon128.png"))
	writeFile(t, root, filepath.Join("images", "store_promo_small_440x280.png"))
	writeFile(t, root, filepath.Join("scripts", "build.sh"))
	writeFile(t, root, filepath.Join(".git", "config"))
	writeFile(t, root, filepath.Join("docs", "readme.md"))
	writeFile(t, root, ".DS_Store")
	writeFile(t, root, "old.zip")

	count, err := Export(root, "prism-reader-v1.2.3.zip")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	zr, err := zip.OpenReader(filepath.Join(root, "prism-reader-v1.2.3.zip"))
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{
		"manifest.json",
		"background.js",
		"images/icon128.png",
	}, names)
}

func TestExport_NeverBundlesItself(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "manifest.json")

	_, err := Export(root, "bundle-v1.zip")
	require.NoError(t, err)
	count, err := Export(root, "bundle-v2.zip")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
