package metadata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"

	"organizemybeats/internal/model"
)

// writeMP3 creates an MP3 fixture with the given ID3 text frames
// followed by a dummy audio payload.
func writeMP3(t *testing.T, path string, frames map[string]string) {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	for id, text := range frames {
		tag.AddTextFrame(id, id3v2.EncodingUTF8, text)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	if _, err := tag.WriteTo(f); err != nil {
		t.Fatalf("write tag: %v", err)
	}
	if _, err := f.Write([]byte("dummy audio payload")); err != nil {
		t.Fatalf("write payload: %v", err)
	}
}

func TestParseYear(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"1999", 1999, true},
		{" 2005 ", 2005, true},
		{"1999-05-01", 1999, true},
		{"2004/11", 2004, true},
		{"released in 2010", 2010, true},
		{"1850", 0, false},
		{"3050", 0, false},
		{"", 0, false},
		{"abcd", 0, false},
	}

	for _, tt := range tests {
		got, ok := e.parseYear(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseYear(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCopyrightYear(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"℗ 2020 Some Label", 2020, true},
		{"© 1987 Records Inc", 1987, true},
		{"2020 Some Label", 2020, true},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := e.copyrightYear(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("copyrightYear(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFilenameYear(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		path string
		want int
		ok   bool
	}{
		{"song_1999.mp3", 1999, true},
		{"/collection/2020/track.mp3", 0, false}, // directory not scanned
		{"0850_track.mp3", 0, false},
		{"live-1850-2010.mp3", 2010, true}, // first token out of range, second valid
		{"untitled.mp3", 0, false},
	}

	for _, tt := range tests {
		got, ok := e.filenameYear(tt.path)
		if ok != tt.ok || got != tt.want {
			t.Errorf("filenameYear(%q) = (%d, %v), want (%d, %v)", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractor_Supported(t *testing.T) {
	e := NewExtractor()

	for _, path := range []string{"a.mp3", "b.FLAC", "c.m4a", "d.ogg", "e.wav"} {
		if !e.Supported(path) {
			t.Errorf("Supported(%q) = false, want true", path)
		}
	}
	for _, path := range []string{"a.txt", "b.jpg", "noext"} {
		if e.Supported(path) {
			t.Errorf("Supported(%q) = true, want false", path)
		}
	}
}

func TestExtractor_UnsupportedFormat(t *testing.T) {
	e := NewExtractor()

	_, err := e.Year("notes.txt")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Year on .txt returned %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtractor_MP3PrimaryFrame(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.mp3")
	writeMP3(t, path, map[string]string{"TDRC": "1999-05-01"})

	info, err := NewExtractor().Year(path)
	if err != nil {
		t.Fatalf("Year: %v", err)
	}
	if info.Year != 1999 {
		t.Errorf("Year = %d, want 1999", info.Year)
	}
	if info.Confidence != model.ConfidenceDefinite {
		t.Errorf("Confidence = %d, want Definite", info.Confidence)
	}
}

func TestExtractor_MP3FallbackFrame(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fallback.mp3")
	writeMP3(t, path, map[string]string{"TYER": "2003"})

	info, err := NewExtractor().Year(path)
	if err != nil {
		t.Fatalf("Year: %v", err)
	}
	if info.Year != 2003 {
		t.Errorf("Year = %d, want 2003", info.Year)
	}
	if info.Confidence != model.ConfidenceFallback {
		t.Errorf("Confidence = %d, want Fallback", info.Confidence)
	}
}

func TestExtractor_FilenameFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Live at Budokan 1978.mp3")
	if err := os.WriteFile(path, []byte("no tags here"), 0644); err != nil {
		t.Fatal(err)
	}

	info, err := NewExtractor().Year(path)
	if err != nil {
		t.Fatalf("Year: %v", err)
	}
	if info.Year != 1978 {
		t.Errorf("Year = %d, want 1978", info.Year)
	}
	if info.Confidence != model.ConfidenceFallback {
		t.Errorf("Confidence = %d, want Fallback", info.Confidence)
	}
}

func TestExtractor_CorruptFLAC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unknown.flac")
	if err := os.WriteFile(path, []byte("definitely not a flac stream"), 0644); err != nil {
		t.Fatal(err)
	}

	info, err := NewExtractor().Year(path)
	if err != nil {
		t.Fatalf("Year: %v", err)
	}
	if !info.Unknown() {
		t.Errorf("Year = %d, want unknown", info.Year)
	}
	if info.Warning == nil {
		t.Error("expected a container read warning for corrupt flac")
	}
}

func TestExtractor_YearOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old.mp3")
	writeMP3(t, path, map[string]string{"TDRC": "1850"})

	info, err := NewExtractor().Year(path)
	if err != nil {
		t.Fatalf("Year: %v", err)
	}
	if !info.Unknown() {
		t.Errorf("Year = %d, want unknown for out-of-range tag", info.Year)
	}
}

func TestExtractor_FileInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.mp3")
	writeMP3(t, path, map[string]string{
		"TIT2": "Test Song",
		"TPE1": "Test Artist",
		"TALB": "Test Album",
		"TDRC": "2001",
	})

	info, err := NewExtractor().FileInfo(path)
	if err != nil {
		t.Fatalf("FileInfo: %v", err)
	}
	if info.Title != "Test Song" {
		t.Errorf("Title = %q, want %q", info.Title, "Test Song")
	}
	if info.Artist != "Test Artist" {
		t.Errorf("Artist = %q, want %q", info.Artist, "Test Artist")
	}
	if info.Year != 2001 {
		t.Errorf("Year = %d, want 2001", info.Year)
	}
	if info.Format != "mp3" {
		t.Errorf("Format = %q, want mp3", info.Format)
	}
	if info.Size == 0 {
		t.Error("Size should not be zero")
	}
}
