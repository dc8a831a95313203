package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*LocalImageStore, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := NewLocalImageStore(dir, []string{"png", "jpg", "jpeg", "gif"})
	require.NoError(t, err)
	return store, dir
}

func TestAllowed(t *testing.T) {
	store, _ := newTestStore(t)

	assert.True(t, store.Allowed("photo.png"))
	assert.True(t, store.Allowed("photo.PNG"))
	assert.True(t, store.Allowed("archive.tar.jpg"))
	assert.False(t, store.Allowed("x.exe"))
	assert.False(t, store.Allowed("noextension"))
	assert.False(t, store.Allowed("trailingdot."))
}

func TestSaveWritesFileWithUniqueSuffix(t *testing.T) {
	store, dir := newTestStore(t)

	stored, err := store.Save("shot.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored, "shot_"))
	assert.True(t, strings.HasSuffix(stored, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, stored))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestSaveSanitizesFilename(t *testing.T) {
	store, dir := newTestStore(t)

	stored, err := store.Save("../evil dir/my photo!.png", strings.NewReader("x"))
	require.NoError(t, err)

	assert.NotContains(t, stored, "/")
	assert.NotContains(t, stored, " ")
	assert.NotContains(t, stored, "!")
	assert.FileExists(t, filepath.Join(dir, stored))
}

func TestSaveDistinctNames(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.Save("same.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save("same.png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDeleteSkipsSentinel(t *testing.T) {
	store, dir := newTestStore(t)

	sentinel := filepath.Join(dir, DefaultImage)
	require.NoError(t, os.WriteFile(sentinel, []byte("default"), 0644))

	require.NoError(t, store.Delete(DefaultImage))
	assert.FileExists(t, sentinel)
}

func TestDeleteRemovesStoredFile(t *testing.T) {
	store, dir := newTestStore(t)

	stored, err := store.Save("gone.png", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(stored))
	assert.NoFileExists(t, filepath.Join(dir, stored))

	// a second delete of the same name is a silent no-op
	require.NoError(t, store.Delete(stored))
}

func TestExists(t *testing.T) {
	store, _ := newTestStore(t)

	stored, err := store.Save("here.png", strings.NewReader("x"))
	require.NoError(t, err)

	assert.True(t, store.Exists(stored))
	assert.False(t, store.Exists("missing.png"))
}
