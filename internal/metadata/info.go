package metadata

import (
	"os"
	"time"

	"github.com/dhowden/tag"
)

// FileInfo holds the metadata of a single audio file for inspection.
type FileInfo struct {
	Path     string
	Size     int64
	Modified time.Time
	Format   string

	Title  string
	Artist string
	Album  string
	Genre  string

	// Year is resolved through the same extraction chain the
	// organizer uses; zero when no year could be found.
	Year int
}

// FileInfo reads the full metadata of one audio file. Tag fields are
// best effort: a file without a readable tag container still yields
// its filesystem information. Returns ErrUnsupportedFormat for
// unrecognized extensions.
func (e *Extractor) FileInfo(path string) (*FileInfo, error) {
	yearInfo, err := e.Year(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	info := &FileInfo{
		Path:     path,
		Size:     stat.Size(),
		Modified: stat.ModTime(),
		Format:   extOf(path),
		Year:     yearInfo.Year,
	}

	if f, err := os.Open(path); err == nil {
		defer f.Close()
		if m, err := tag.ReadFrom(f); err == nil {
			info.Title = m.Title()
			info.Artist = m.Artist()
			info.Album = m.Album()
			info.Genre = m.Genre()
		}
	}

	return info, nil
}
