// Package report generates JSON batch reports for organization runs.
//
// A report captures the run's statistics (totals, per-year and
// per-format counts, bytes copied) together with the per-file errors,
// and is written under <destination>/reports:
//
//	rep := report.Build(cfg, result)
//	path, err := rep.Write(ctx)
//	// <destination>/reports/batch_report_20240101_120000.json
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	ioutils "organizemybeats/internal/io"
	"organizemybeats/internal/model"
	"organizemybeats/internal/organizer"
)

// FileError is one per-file failure entry.
type FileError struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// Report is the serializable summary of one organization run.
type Report struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Source      string      `json:"source"`
	Destination string      `json:"destination"`
	Aborted     bool        `json:"aborted"`
	Stats       model.Stats `json:"stats"`
	Errors      []FileError `json:"errors,omitempty"`
}

// Build assembles a Report from a finished run.
func Build(cfg organizer.Config, result *model.Result) *Report {
	rep := &Report{
		GeneratedAt: time.Now(),
		Source:      cfg.Source,
		Destination: cfg.Destination,
		Aborted:     result.Aborted,
		Stats:       result.Stats,
	}
	for _, track := range result.Failures() {
		rep.Errors = append(rep.Errors, FileError{File: track.SourcePath, Reason: track.Reason})
	}
	return rep
}

// Write stores the report as pretty-printed JSON under
// <destination>/reports and returns the file path.
func (r *Report) Write(ctx context.Context) (string, error) {
	dir := filepath.Join(r.Destination, "reports")
	if err := ioutils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("batch_report_%s.json", r.GeneratedAt.Format("20060102_150405")))
	if err := ioutils.WriteFile(ctx, path, data); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
