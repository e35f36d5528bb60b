package model

import (
	"path/filepath"
	"strconv"
	"strings"
)

// UnknownYear is the sentinel year value for files without any
// extractable year metadata.
const UnknownYear = 0

// UnknownYearFolder is the destination bucket for files without a year.
const UnknownYearFolder = "Unknown Year"

// Confidence indicates how a year was obtained.
type Confidence int

const (
	// ConfidenceNone means no year was found.
	ConfidenceNone Confidence = iota

	// ConfidenceDefinite means the year came from the primary
	// release-date field of the file's tag container.
	ConfidenceDefinite

	// ConfidenceFallback means the year came from a secondary tag
	// field or a filename heuristic.
	ConfidenceFallback
)

// Outcome is the terminal processing result of one discovered file.
type Outcome int

const (
	// OutcomeCopied means the file was copied into a year folder.
	OutcomeCopied Outcome = iota

	// OutcomePlacedUnknown means the file had no year and was copied
	// into the Unknown Year folder.
	OutcomePlacedUnknown

	// OutcomeSkippedDuplicate means the destination file already
	// existed and overwriting was disabled.
	OutcomeSkippedDuplicate

	// OutcomeSkippedNoYear means the file had no year and the
	// Unknown Year folder was disabled, so it was not copied.
	OutcomeSkippedNoYear

	// OutcomeError means a per-file failure occurred (unreadable
	// source, destination conflict, copy I/O failure).
	OutcomeError
)

// String returns a short human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomePlacedUnknown:
		return "placed-unknown"
	case OutcomeSkippedDuplicate:
		return "skipped-duplicate"
	case OutcomeSkippedNoYear:
		return "skipped-no-year"
	case OutcomeError:
		return "error"
	}
	return "unknown"
}

// Track represents a single discovered audio file and its processing
// outcome. A Track is created per discovered file and is immutable
// once classified.
type Track struct {
	// SourcePath is the path of the original file. The original is
	// only ever read, never mutated or moved.
	SourcePath string

	// Filename is the base name, preserved in the destination.
	Filename string

	// Format is the lowercase extension without the leading dot.
	Format string

	// Size is the source file size in bytes.
	Size int64

	// Year is the inferred release year, or UnknownYear.
	Year int

	// Confidence records how the year was obtained.
	Confidence Confidence

	// Outcome is the terminal processing result.
	Outcome Outcome

	// DestPath is where the file was copied, empty if nothing was
	// written.
	DestPath string

	// Reason holds skip/failure detail for non-copied outcomes.
	Reason string
}

// NewTrack creates a Track for a discovered source file.
func NewTrack(sourcePath string) *Track {
	name := filepath.Base(sourcePath)
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	return &Track{
		SourcePath: sourcePath,
		Filename:   name,
		Format:     ext,
	}
}

// Bucket returns the destination folder name for the track: the year
// as a string, or UnknownYearFolder when no year was found.
func (t *Track) Bucket() string {
	if t.Year == UnknownYear {
		return UnknownYearFolder
	}
	return strconv.Itoa(t.Year)
}
