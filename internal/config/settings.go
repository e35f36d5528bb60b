package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"organizemybeats/internal/organizer"
)

// Settings holds all persisted configuration options.
type Settings struct {
	// Organization settings
	DestinationPath   string `json:"destination_path"`
	UnknownYearFolder bool   `json:"unknown_year_folder"`
	OverwriteExisting bool   `json:"overwrite_existing"`
	Workers           int    `json:"workers"`

	// Output settings
	Verbose     bool `json:"verbose"`
	ShowStats   bool `json:"show_stats"`
	WriteReport bool `json:"write_report"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		DestinationPath:   filepath.Join(homeDir, "Music", "Organized"),
		UnknownYearFolder: false,
		OverwriteExisting: false,
		Workers:           1,

		Verbose:     false,
		ShowStats:   false,
		WriteReport: false,
	}
}

// Load reads settings from a JSON file. A missing file yields
// defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToConfig converts settings to an organizer run configuration for
// the given source directory. The destination falls back to the
// configured DestinationPath when empty.
func (s *Settings) ToConfig(source, destination string) organizer.Config {
	if destination == "" {
		destination = s.DestinationPath
	}
	return organizer.Config{
		Source:      source,
		Destination: destination,
		Overwrite:   s.OverwriteExisting,
		UnknownYear: s.UnknownYearFolder,
		Workers:     s.Workers,
	}
}
