package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestSaveAndRemove(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocal(root, "http://localhost:8080")
	require.NoError(t, err)

	url, err := store.Save("columnas", "portada.png", pngHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/columnas/"))
	assert.True(t, strings.HasSuffix(url, "_portada.png"))

	matches, err := filepath.Glob(filepath.Join(root, "columnas", "*_portada.png"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(matches[0])
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveRejectsForeignURL(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	assert.Error(t, store.Remove("http://localhost:8080/static/logo.png"))
}

func TestSaveSanitizesFilename(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	url, err := store.Save("artistas", "../im agen!.png", pngHeader)
	require.NoError(t, err)
	assert.NotContains(t, url, "..")
	assert.NotContains(t, url, " ")
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage(pngHeader))
	assert.False(t, IsImage([]byte("plain text, not an image")))
}
