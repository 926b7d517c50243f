package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxNameAttempts bounds the "name (N).ext" search
const maxNameAttempts = 1000

// partSuffix marks files still being written
const partSuffix = ".part"

// DirSaver writes presented files into a directory, browser-download style:
// an existing name is never overwritten, "name (1).ext" is used instead.
type DirSaver struct {
	dir string
}

// NewDirSaver creates a saver rooted at dir. The directory is created on first save.
func NewDirSaver(dir string) *DirSaver {
	return &DirSaver{dir: dir}
}

// Dir returns the target directory
func (s *DirSaver) Dir() string {
	return s.dir
}

// Present streams r into the directory under name (or a numbered variant)
// and returns the final path. Partial data never appears under the final name.
func (s *DirSaver) Present(ctx context.Context, name string, r io.Reader) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("invalid file name: %q", name)
	}

	if err := CreateDirectoryIfNotExists(s.dir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+"-*"+partSuffix)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: r}); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", name, err)
	}

	finalPath, err := reserveUniquePath(s.dir, name)
	if err != nil {
		return "", err
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(finalPath)
		return "", fmt.Errorf("failed to move %s into place: %w", name, err)
	}

	NotifyMediaScanner(finalPath)
	return finalPath, nil
}

// UniqueFileName returns name, or "base (N).ext" with the smallest N >= 1
// for which exists reports false.
func UniqueFileName(name string, exists func(string) bool) (string, error) {
	if !exists(name) {
		return name, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= maxNameAttempts; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if !exists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free file name for %s after %d attempts", name, maxNameAttempts)
}

// reserveUniquePath claims a free name by creating it exclusively, so two
// concurrent saves cannot pick the same one.
func reserveUniquePath(dir, name string) (string, error) {
	var (
		reserved string
		openErr  error
	)
	_, err := UniqueFileName(name, func(candidate string) bool {
		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, DefaultFilePermissions)
		if err != nil {
			if errors.Is(err, fs.ErrExist) {
				return true
			}
			openErr = err
			return false
		}
		_ = f.Close()
		reserved = path
		return false
	})
	if err != nil {
		return "", err
	}
	if openErr != nil {
		return "", fmt.Errorf("failed to reserve file name for %s: %w", name, openErr)
	}
	if reserved == "" {
		return "", fmt.Errorf("failed to reserve file name for %s", name)
	}
	return reserved, nil
}

// ctxReader stops a copy once ctx is done
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
