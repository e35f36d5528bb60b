// Package ioutils provides file system utilities for organize-my-beats.
//
// This package contains functions for:
//   - Non-destructive file copying
//   - File writing
//   - Directory creation
//
// All functions that accept a context.Context respect cancellation,
// though file operations themselves may not be interruptible.
package ioutils

import (
	"context"
	"io"
	"os"
)

// CopyFile copies a file from source to destination, preserving the
// source's modification time. The source is only read, never changed.
//
// The destination file is created with mode 0644 if it doesn't exist,
// or truncated if it does. If the copy fails partway, the partial
// destination file is removed.
//
// Example:
//
//	err := CopyFile(ctx, "/music/song.mp3", "/organized/1999/song.mp3")
func CopyFile(ctx context.Context, src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	stat, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		os.Remove(dst)
		return err
	}
	if err := destFile.Close(); err != nil {
		os.Remove(dst)
		return err
	}

	// Match the source's timestamps so repeated runs compare equal.
	return os.Chtimes(dst, stat.ModTime(), stat.ModTime())
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/organized/1999")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
