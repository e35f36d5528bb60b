// Package model defines the core data structures used throughout
// organize-my-beats.
//
// # Track
//
// Track represents one discovered audio file, its inferred release
// year, and its terminal processing outcome:
//
//	track := model.NewTrack("/music/song_1999.mp3")
//	track.Year = 1999
//	fmt.Println(track.Bucket()) // "1999"
//
// # Result
//
// Result aggregates the outcome of one organization run. Tracks are
// folded in through Record, which maintains per-year and per-format
// counters:
//
//	result := model.NewResult()
//	result.Record(track)
//	fmt.Println(result.Stats.Copied)
//
// Files with no extractable year use the UnknownYear sentinel and the
// "Unknown Year" destination bucket.
package model
