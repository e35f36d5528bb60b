package metadata

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"organizemybeats/internal/model"
)

// ErrUnsupportedFormat is returned for files whose extension is not a
// recognized audio format.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// MinYear is the lower bound of the year validity range. Anything
// earlier than this is treated as tag noise rather than a release year.
const MinYear = 1900

// YearInfo is the result of extracting a release year from one file.
type YearInfo struct {
	// Year is the normalized release year, or model.UnknownYear.
	Year int

	// Confidence records which source produced the year.
	Confidence model.Confidence

	// Warning is set when the tag container was corrupt or
	// unreadable. It never aborts a run; the caller logs it and the
	// file is treated as having no tag metadata.
	Warning error
}

// Unknown reports whether no year could be extracted.
func (y YearInfo) Unknown() bool {
	return y.Year == model.UnknownYear
}

type yearReader func(path string) (int, model.Confidence, error)

// Extractor reads release years from audio file metadata. It is a
// stateless, read-only leaf service: it never modifies the files it
// inspects.
//
// Per-format tag containers are handled by dedicated readers selected
// by extension; formats without a dedicated reader fall through to a
// generic reader and finally a filename heuristic.
type Extractor struct {
	minYear int
	maxYear int
	readers map[string]yearReader
}

// NewExtractor creates an Extractor with the default year validity
// range of MinYear through next year.
func NewExtractor() *Extractor {
	e := &Extractor{
		minYear: MinYear,
		maxYear: time.Now().Year() + 1,
	}
	e.readers = map[string]yearReader{
		"mp3":  e.mp3Year,
		"flac": e.flacYear,
		"m4a":  e.genericYear,
		"mp4":  e.genericYear,
		"ogg":  e.genericYear,
		"wav":  e.genericYear,
		"wma":  e.genericYear,
		"aac":  e.genericYear,
	}
	return e
}

// Supported reports whether the file's extension is a recognized
// audio format.
func (e *Extractor) Supported(path string) bool {
	_, ok := e.readers[extOf(path)]
	return ok
}

// Year extracts the release year for the given audio file.
//
// The format-specific tag container is tried first; if it yields
// nothing (or is unreadable), the filename is scanned for a 4-digit
// year token. Returns ErrUnsupportedFormat for unrecognized
// extensions. Container read failures are reported through
// YearInfo.Warning, not the error return, so that one corrupt file
// never halts a batch.
func (e *Extractor) Year(path string) (YearInfo, error) {
	reader, ok := e.readers[extOf(path)]
	if !ok {
		return YearInfo{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	var info YearInfo

	year, conf, err := reader(path)
	if err != nil {
		info.Warning = err
	} else if year != model.UnknownYear {
		info.Year = year
		info.Confidence = conf
		return info, nil
	}

	if year, ok := e.filenameYear(path); ok {
		info.Year = year
		info.Confidence = model.ConfidenceFallback
		return info, nil
	}

	return info, nil
}

func extOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
