package model

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// VideoSelection is a user-chosen input file. A nil *VideoSelection means
// the slot is empty. Selections are replaced wholesale, never mutated.
type VideoSelection struct {
	Name string // base file name sent as the multipart filename
	Path string // local path when known, "" for picker-provided streams
	Size int64  // size in bytes, -1 if unknown

	open func() (io.ReadCloser, error)
}

// NewSelection wraps an arbitrary source of bytes
func NewSelection(name string, size int64, open func() (io.ReadCloser, error)) *VideoSelection {
	return &VideoSelection{Name: name, Size: size, open: open}
}

// SelectionFromPath creates a selection backed by a regular file on disk
func SelectionFromPath(path string) (*VideoSelection, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat video: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("video path is a directory: %s", path)
	}

	return &VideoSelection{
		Name: filepath.Base(path),
		Path: path,
		Size: info.Size(),
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

// Open returns a fresh reader over the selected file
func (v *VideoSelection) Open() (io.ReadCloser, error) {
	if v == nil || v.open == nil {
		return nil, fmt.Errorf("video selection is empty")
	}
	return v.open()
}

// GetDisplayName returns the file name, or the path when no name is set
func (v *VideoSelection) GetDisplayName() string {
	if v == nil {
		return ""
	}
	if v.Name != "" {
		return v.Name
	}
	return filepath.Base(v.Path)
}

// GetSizeString returns the size in human units, or "" when unknown
func (v *VideoSelection) GetSizeString() string {
	if v == nil || v.Size < 0 {
		return ""
	}
	return humanize.Bytes(uint64(v.Size))
}
