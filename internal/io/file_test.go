package ioutils

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp3")
	dst := filepath.Join(dir, "dst.mp3")

	content := []byte("audio bytes")
	if err := os.WriteFile(src, content, 0644); err != nil {
		t.Fatal(err)
	}
	modTime := time.Date(2020, 3, 14, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(src, modTime, modTime); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(context.Background(), src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("destination content = %q, want %q", got, content)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(modTime) {
		t.Errorf("destination mtime = %v, want %v", info.ModTime(), modTime)
	}

	// Source must be untouched.
	srcContent, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(srcContent, content) {
		t.Error("source file was modified by copy")
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(context.Background(), filepath.Join(dir, "nope.mp3"), filepath.Join(dir, "out.mp3"))
	if err == nil {
		t.Error("expected error for missing source")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "1999")

	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if err := EnsureDir(nested); err != nil {
		t.Errorf("EnsureDir on existing dir: %v", err)
	}

	info, err := os.Stat(nested)
	if err != nil || !info.IsDir() {
		t.Errorf("expected directory at %s", nested)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "x.mp3")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists = false for existing file")
	}
	if FileExists(filepath.Join(dir, "missing.mp3")) {
		t.Error("FileExists = true for missing file")
	}
	if FileExists(dir) {
		t.Error("FileExists = true for a directory")
	}
}
