// Package config provides configuration management for
// organize-my-beats.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to the organizer run configuration
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Organizes into ~/Music/Organized
//	// Sequential processing, no overwriting
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Converting to a Run Configuration
//
//	cfg := settings.ToConfig("/music", "/organized")
//	engine := organizer.NewEngine(cfg, onProgress)
package config
