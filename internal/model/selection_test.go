package model

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fileA.mp4")
	require.NoError(t, os.WriteFile(path, []byte("video-a"), 0o644))

	sel, err := SelectionFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "fileA.mp4", sel.Name)
	assert.Equal(t, int64(7), sel.Size)
	assert.Equal(t, "7 B", sel.GetSizeString())

	rc, err := sel.Open()
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "video-a", string(data))
}

func TestSelectionFromPath_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := SelectionFromPath(filepath.Join(dir, "missing.mp4"))
	assert.Error(t, err)

	_, err = SelectionFromPath(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestNewSelection(t *testing.T) {
	sel := NewSelection("clip.mov", -1, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("bytes")), nil
	})

	assert.Equal(t, "clip.mov", sel.GetDisplayName())
	assert.Equal(t, "", sel.GetSizeString())
	rc, err := sel.Open()
	require.NoError(t, err)
	_ = rc.Close()
}

func TestVideoSelection_Empty(t *testing.T) {
	var sel *VideoSelection
	_, err := sel.Open()
	assert.Error(t, err)
	assert.Equal(t, "", sel.GetDisplayName())
}
