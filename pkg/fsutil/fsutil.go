// Package fsutil provides file system safety primitives for togl:
// source path resolution, atomic replacement, and pre-edit backups.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrNotRegular indicates the path is neither a regular file nor a directory.
	ErrNotRegular = errors.New("not a regular file")

	// ErrPath indicates the path could not be resolved to an absolute form.
	ErrPath = errors.New("path resolution failed")
)

// Source describes a resolved edit target.
type Source struct {
	// Path is the absolute path to the file.
	Path string

	// Mode is the file's permission and mode bits, preserved across rewrites.
	Mode os.FileMode

	// Size is the file size in bytes at resolution time.
	Size int64
}

// Base returns the file name component of the source path.
func (s *Source) Base() string {
	return filepath.Base(s.Path)
}

// ResolveSource resolves path to an absolute location and verifies it names
// an existing regular file. All edit entry points resolve through here so
// that failures surface before any backup or temp file is created.
func ResolveSource(ctx context.Context, path string) (*Source, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("resolve source: %w", ctx.Err())
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPath, path, err)
	}

	stat, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, abs, err)
		}
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, abs)
	}
	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, abs)
	}

	return &Source{
		Path: abs,
		Mode: stat.Mode(),
		Size: stat.Size(),
	}, nil
}
