package model

// Stats aggregates counts for one organization run.
type Stats struct {
	// Total is the number of supported files processed.
	Total int `json:"total"`

	// Copied includes files placed in year folders and in the
	// Unknown Year folder.
	Copied int `json:"copied"`

	// Skipped counts duplicates and year-less files that had no
	// bucket to go to.
	Skipped int `json:"skipped"`

	// NoYear counts files without extractable year metadata,
	// whether they were placed in Unknown Year or skipped.
	NoYear int `json:"no_year"`

	// Errors counts per-file failures.
	Errors int `json:"errors"`

	// Bytes is the total number of bytes copied.
	Bytes int64 `json:"bytes"`

	// Years maps destination folder name (a year or "Unknown Year")
	// to the number of files copied into it.
	Years map[string]int `json:"years"`

	// Formats maps file extension to the number of processed files.
	Formats map[string]int `json:"formats"`
}

// Result is the aggregate outcome of one organization run. It is
// built incrementally by the organizer and owned by the run that
// produced it.
type Result struct {
	Tracks  []*Track
	Stats   Stats
	Aborted bool
}

// NewResult returns an empty Result ready for accumulation.
func NewResult() *Result {
	return &Result{
		Stats: Stats{
			Years:   make(map[string]int),
			Formats: make(map[string]int),
		},
	}
}

// Record folds one classified track into the aggregate. It is the
// single accumulation point for per-year counters; concurrent callers
// must serialize access to it.
func (r *Result) Record(t *Track) {
	r.Tracks = append(r.Tracks, t)
	r.Stats.Total++
	r.Stats.Formats[t.Format]++

	switch t.Outcome {
	case OutcomeCopied:
		r.Stats.Copied++
		r.Stats.Bytes += t.Size
		r.Stats.Years[t.Bucket()]++
	case OutcomePlacedUnknown:
		r.Stats.Copied++
		r.Stats.NoYear++
		r.Stats.Bytes += t.Size
		r.Stats.Years[UnknownYearFolder]++
	case OutcomeSkippedDuplicate:
		r.Stats.Skipped++
	case OutcomeSkippedNoYear:
		r.Stats.Skipped++
		r.Stats.NoYear++
	case OutcomeError:
		r.Stats.Errors++
	}
}

// Failures returns the tracks that ended in a per-file error.
func (r *Result) Failures() []*Track {
	var failed []*Track
	for _, t := range r.Tracks {
		if t.Outcome == OutcomeError {
			failed = append(failed, t)
		}
	}
	return failed
}
