package metadata

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhowden/tag"

	"organizemybeats/internal/model"
)

// Raw tag keys consulted when the parsed year is absent, in priority
// order. Covers MP4 atoms (©day, cprt) and Vorbis/ID3 spellings.
var rawDateKeys = []string{"©day", "day", "date", "year", "originaldate", "tdrc", "tyer"}

// rawCopyrightKeys may hold a year inside a copyright notice.
var rawCopyrightKeys = []string{"cprt", "copyright"}

// genericYear reads the release year from any tag container that the
// dhowden/tag sniffer recognizes (MP4 atoms, Vorbis comments, ID3).
// Used for m4a/mp4/ogg and as a best effort for wav/wma/aac, which
// frequently carry no tags at all; a missing tag is not an error.
func (e *Extractor) genericYear(path string) (int, model.Confidence, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, model.ConfidenceNone, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return model.UnknownYear, model.ConfidenceNone, nil
		}
		return 0, model.ConfidenceNone, fmt.Errorf("read tags: %w", err)
	}

	if year := m.Year(); year != 0 && e.validYear(year) {
		return year, model.ConfidenceDefinite, nil
	}

	raw := m.Raw()
	for _, key := range rawDateKeys {
		if year, ok := e.parseYear(rawString(raw, key)); ok {
			return year, model.ConfidenceFallback, nil
		}
	}
	for _, key := range rawCopyrightKeys {
		if year, ok := e.copyrightYear(rawString(raw, key)); ok {
			return year, model.ConfidenceFallback, nil
		}
	}

	return model.UnknownYear, model.ConfidenceNone, nil
}

func rawString(raw map[string]interface{}, key string) string {
	if v, ok := raw[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
