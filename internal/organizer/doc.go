// Package organizer provides the scan-classify-copy engine that
// buckets audio files into year folders.
//
// # Engine
//
// The Engine walks the source directory, reads a release year from
// each supported file's metadata, and copies the file to
// <destination>/<year>/ (or "Unknown Year" when enabled). Source
// files are only ever read; nothing is moved or modified.
//
//	engine := organizer.NewEngine(organizer.Config{
//	    Source:      "/music",
//	    Destination: "/organized",
//	    UnknownYear: true,
//	}, func(event organizer.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := engine.Organize(ctx)
//	if err != nil {
//	    // fatal precondition: bad source or destination root
//	}
//	fmt.Printf("copied %d files\n", result.Stats.Copied)
//
// # Failure Isolation
//
// Per-file failures (unreadable metadata, destination conflicts,
// copy I/O errors) are recorded as track outcomes and never halt the
// batch. Only a missing source root or an uncreatable destination
// root aborts the run, before any file is touched.
//
// # Concurrency and Cancellation
//
// Processing is sequential by default. Config.Workers enables bounded
// concurrency; all counters are merged under a single accumulation
// point so the statistics stay consistent. Cancelling the context
// stops the run between files and marks the result as aborted.
package organizer
