package organizer

import "errors"

// Fatal precondition errors. These are the only failures that abort a
// run; they are detected before any file is touched. Per-file
// failures are folded into the track outcomes instead.
var (
	// ErrBadSource means the source directory is missing or not a
	// directory.
	ErrBadSource = errors.New("source directory does not exist or is not a directory")

	// ErrBadDestination means the destination root could not be
	// created.
	ErrBadDestination = errors.New("destination directory cannot be created")
)
