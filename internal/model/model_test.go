package model

import "testing"

func TestNewTrack(t *testing.T) {
	track := NewTrack("/music/albums/Song Title.MP3")

	if track.Filename != "Song Title.MP3" {
		t.Errorf("Filename = %q, want %q", track.Filename, "Song Title.MP3")
	}
	if track.Format != "mp3" {
		t.Errorf("Format = %q, want %q", track.Format, "mp3")
	}
	if track.Year != UnknownYear {
		t.Errorf("Year = %d, want UnknownYear", track.Year)
	}
}

func TestTrack_Bucket(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1999, "1999"},
		{2023, "2023"},
		{UnknownYear, UnknownYearFolder},
	}

	for _, tt := range tests {
		track := &Track{Year: tt.year}
		if got := track.Bucket(); got != tt.want {
			t.Errorf("Bucket() for year %d = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func TestResult_Record(t *testing.T) {
	result := NewResult()

	result.Record(&Track{Format: "mp3", Year: 1999, Size: 100, Outcome: OutcomeCopied})
	result.Record(&Track{Format: "flac", Year: UnknownYear, Size: 50, Outcome: OutcomePlacedUnknown})
	result.Record(&Track{Format: "mp3", Year: 1999, Outcome: OutcomeSkippedDuplicate})
	result.Record(&Track{Format: "ogg", Year: UnknownYear, Outcome: OutcomeSkippedNoYear})
	result.Record(&Track{Format: "m4a", Outcome: OutcomeError, Reason: "copy failed"})

	s := result.Stats
	if s.Total != 5 {
		t.Errorf("Total = %d, want 5", s.Total)
	}
	if s.Copied != 2 {
		t.Errorf("Copied = %d, want 2", s.Copied)
	}
	if s.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", s.Skipped)
	}
	if s.NoYear != 2 {
		t.Errorf("NoYear = %d, want 2", s.NoYear)
	}
	if s.Errors != 1 {
		t.Errorf("Errors = %d, want 1", s.Errors)
	}
	if s.Bytes != 150 {
		t.Errorf("Bytes = %d, want 150", s.Bytes)
	}
	if s.Years["1999"] != 1 {
		t.Errorf("Years[1999] = %d, want 1", s.Years["1999"])
	}
	if s.Years[UnknownYearFolder] != 1 {
		t.Errorf("Years[%q] = %d, want 1", UnknownYearFolder, s.Years[UnknownYearFolder])
	}
	if s.Formats["mp3"] != 2 {
		t.Errorf("Formats[mp3] = %d, want 2", s.Formats["mp3"])
	}

	if len(result.Failures()) != 1 {
		t.Errorf("Failures() returned %d tracks, want 1", len(result.Failures()))
	}
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeCopied, "copied"},
		{OutcomePlacedUnknown, "placed-unknown"},
		{OutcomeSkippedDuplicate, "skipped-duplicate"},
		{OutcomeSkippedNoYear, "skipped-no-year"},
		{OutcomeError, "error"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}
