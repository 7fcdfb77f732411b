// Package fsutil persists rendered documents safely.
package fsutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission mode for newly written documents.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic writes content to path through a temp file and a rename.
// If mode is 0, DefaultFileMode is used.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	_, err := WriteAtomicFrom(ctx, path, bytes.NewReader(content), mode)
	return err
}

// WriteAtomicFrom streams src into a temp file next to path, syncs it and
// renames it over path. On failure the temp file is removed and any existing
// file at path is left untouched. It returns the number of bytes written.
func WriteAtomicFrom(ctx context.Context, path string, src io.WriterTo, mode os.FileMode) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("write atomic: %w", err)
	}

	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	written, err := src.WriteTo(tmp)
	if err != nil {
		return 0, fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return 0, fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		return 0, fmt.Errorf("chmod temp file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("write atomic: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return 0, fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return written, nil
}

// WriteAtomicIfChanged writes content only when it differs from what is
// already on disk. It reports whether the file was written.
func WriteAtomicIfChanged(ctx context.Context, path string, content []byte, mode os.FileMode) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return false, fmt.Errorf("read existing: %w", err)
	case bytes.Equal(existing, content):
		return false, nil
	}

	if err := WriteAtomic(ctx, path, content, mode); err != nil {
		return false, err
	}
	return true, nil
}
