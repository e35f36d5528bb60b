package organizer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	ioutils "organizemybeats/internal/io"
	"organizemybeats/internal/metadata"
	"organizemybeats/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an organization progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Config holds the parameters of one organization run. It is
// immutable for the duration of the run.
type Config struct {
	// Source is the directory scanned recursively for audio files.
	Source string

	// Destination is the root under which year folders are created.
	Destination string

	// Overwrite replaces existing destination files instead of
	// skipping them.
	Overwrite bool

	// UnknownYear copies files without year metadata into the
	// "Unknown Year" folder; when false such files are skipped.
	UnknownYear bool

	// Workers is the number of concurrent file processors. Zero or
	// one means sequential processing.
	Workers int
}

// Engine organizes audio files into year-bucketed destination
// folders. It drives the metadata extractor once per discovered file,
// decides the destination path, performs a non-destructive copy, and
// accumulates per-year statistics.
type Engine struct {
	cfg       Config
	extractor *metadata.Extractor

	total     int32
	processed int32

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewEngine creates an Engine for the given configuration. onProgress
// may be nil; it receives per-file and summary events and may be
// called from multiple goroutines when Workers > 1.
func NewEngine(cfg Config, onProgress func(ProgressEvent)) *Engine {
	return &Engine{
		cfg:        cfg,
		extractor:  metadata.NewExtractor(),
		onProgress: onProgress,
	}
}

// Organize runs the full scan-classify-copy pass and returns the
// aggregated result.
//
// Only fatal preconditions (missing source root, uncreatable
// destination root) return an error; every per-file failure is
// recorded in the result and processing continues. The run can be
// cancelled through ctx between files, in which case the result
// reflects only the files processed so far and Result.Aborted is set.
func (e *Engine) Organize(ctx context.Context) (*model.Result, error) {
	info, err := os.Stat(e.cfg.Source)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrBadSource, e.cfg.Source)
	}
	if err := ioutils.EnsureDir(e.cfg.Destination); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadDestination, e.cfg.Destination, err)
	}

	files := e.scan()
	atomic.StoreInt32(&e.total, int32(len(files)))
	e.progress(ProgressEvent{Message: fmt.Sprintf("Found %d audio files to process", len(files)), Level: LevelInfo})

	result := model.NewResult()

	workers := e.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	var aborted atomic.Bool
	g := new(errgroup.Group)
	g.SetLimit(workers)

	for _, path := range files {
		path := path
		g.Go(func() error {
			if ctx.Err() != nil {
				aborted.Store(true)
				return nil
			}

			track := e.processFile(ctx, path)

			// Single accumulation point for all counters.
			e.mu.Lock()
			result.Record(track)
			e.mu.Unlock()
			atomic.AddInt32(&e.processed, 1)
			return nil
		})
	}

	g.Wait()
	result.Aborted = aborted.Load()

	if result.Aborted {
		e.progress(ProgressEvent{Message: "Organization aborted, result is partial", Level: LevelWarning})
	} else {
		e.progress(ProgressEvent{
			Message: fmt.Sprintf("Organization complete: %d copied, %d skipped, %d errors",
				result.Stats.Copied, result.Stats.Skipped, result.Stats.Errors),
			Level: LevelSuccess,
		})
	}

	return result, nil
}

// Progress returns how many files have been processed out of the
// total discovered. Safe to call concurrently with Organize.
func (e *Engine) Progress() (processed, total int32) {
	return atomic.LoadInt32(&e.processed), atomic.LoadInt32(&e.total)
}

// scan enumerates supported audio files under the source directory.
// Enumeration order is whatever the filesystem walk yields; callers
// must not depend on it.
func (e *Engine) scan() []string {
	var files []string
	filepath.WalkDir(e.cfg.Source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			e.progress(ProgressEvent{Message: fmt.Sprintf("Cannot access %s: %v", path, err), Level: LevelWarning})
			return nil
		}
		if d.IsDir() || !e.extractor.Supported(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files
}

// processFile classifies and copies a single file. It never fails the
// run: every error becomes the track's terminal outcome.
func (e *Engine) processFile(ctx context.Context, path string) *model.Track {
	track := model.NewTrack(path)

	info, err := os.Stat(path)
	if err != nil {
		return e.fail(track, fmt.Sprintf("read source: %v", err))
	}
	track.Size = info.Size()

	yearInfo, err := e.extractor.Year(path)
	if err != nil {
		return e.fail(track, fmt.Sprintf("extract year: %v", err))
	}
	if yearInfo.Warning != nil {
		e.progress(ProgressEvent{
			Message: fmt.Sprintf("Error reading metadata: %s - %v", track.Filename, yearInfo.Warning),
			Level:   LevelWarning,
		})
	}
	track.Year = yearInfo.Year
	track.Confidence = yearInfo.Confidence

	if yearInfo.Unknown() {
		e.progress(ProgressEvent{Message: fmt.Sprintf("No year found: %s", track.Filename), Level: LevelVerbose})
		if !e.cfg.UnknownYear {
			track.Outcome = model.OutcomeSkippedNoYear
			track.Reason = "no year metadata and Unknown Year folder disabled"
			return track
		}
	}

	bucketDir := filepath.Join(e.cfg.Destination, track.Bucket())
	if err := ioutils.EnsureDir(bucketDir); err != nil {
		// Bucket name collides with a non-directory entry.
		return e.fail(track, fmt.Sprintf("create folder %q: %v", track.Bucket(), err))
	}

	destPath := filepath.Join(bucketDir, track.Filename)
	if ioutils.FileExists(destPath) && !e.cfg.Overwrite {
		track.Outcome = model.OutcomeSkippedDuplicate
		track.Reason = "destination file already exists"
		e.progress(ProgressEvent{Message: fmt.Sprintf("Skipped (already exists): %s", track.Filename), Level: LevelVerbose})
		return track
	}

	if err := ioutils.CopyFile(ctx, path, destPath); err != nil {
		return e.fail(track, fmt.Sprintf("copy to %q: %v", track.Bucket(), err))
	}

	track.DestPath = destPath
	if yearInfo.Unknown() {
		track.Outcome = model.OutcomePlacedUnknown
	} else {
		track.Outcome = model.OutcomeCopied
	}
	e.progress(ProgressEvent{Message: fmt.Sprintf("Copied to %s: %s", track.Bucket(), track.Filename), Level: LevelVerbose})
	return track
}

func (e *Engine) fail(track *model.Track, reason string) *model.Track {
	track.Outcome = model.OutcomeError
	track.Reason = reason
	e.progress(ProgressEvent{Message: fmt.Sprintf("Error processing %s: %s", track.Filename, reason), Level: LevelError})
	return track
}

func (e *Engine) progress(event ProgressEvent) {
	if e.onProgress != nil {
		e.onProgress(event)
	}
}
