package bench

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeardown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.Mkdir(dir, 0755))
	touch(t, filepath.Join(dir, "a_thumbnail.jpg"))
	touch(t, filepath.Join(dir, "a_display.webp"))

	require.NoError(t, Teardown(dir, false))

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestTeardownKeep(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a_thumbnail.jpg"))

	require.NoError(t, Teardown(dir, true))
	assert.FileExists(t, filepath.Join(dir, "a_thumbnail.jpg"))
}

func TestTeardownStrayDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a_thumbnail.jpg"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "stray"), 0755))

	err := Teardown(dir, false)

	var warning *CleanupWarning
	require.True(t, errors.As(err, &warning))
	assert.Equal(t, dir, warning.Path)
	assert.NoFileExists(t, filepath.Join(dir, "a_thumbnail.jpg"))
	assert.DirExists(t, filepath.Join(dir, "stray"))
}

func TestTeardownMissingDirectory(t *testing.T) {
	assert.NoError(t, Teardown(filepath.Join(t.TempDir(), "missing"), false))
}
