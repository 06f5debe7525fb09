package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pcouy/inha-downloader/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Download settings
	OutputDir              string  `json:"output_dir"`
	SkipExisting           bool    `json:"skip_existing"`
	RequestTimeoutSeconds  float64 `json:"request_timeout_seconds"`
	RequestIntervalSeconds float64 `json:"request_interval_seconds"`
	UserAgent              string  `json:"user_agent"`

	// File naming
	ImageExtension string `json:"image_extension"`

	// Image settings
	ResizeImages bool `json:"resize_images"`
	MaxImageSize int  `json:"max_image_size"`

	// Manifest settings
	WriteManifest bool `json:"write_manifest"`
}

// DefaultSettings returns settings with default values.
//
// The output directory is intentionally empty: when unset, the album's own
// title names the directory. The half-second request interval keeps the loop
// polite to the library's servers; it is a floor, not a rate target.
func DefaultSettings() *Settings {
	return &Settings{
		OutputDir:              "",
		SkipExisting:           true,
		RequestTimeoutSeconds:  60,
		RequestIntervalSeconds: 0.5,
		UserAgent:              "inha-downloader",

		ImageExtension: ".jpg",

		ResizeImages: false,
		MaxImageSize: 2000,

		WriteManifest: false,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error; defaults are returned so the tool works
// out of the box.
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

// ToOutputConfig converts settings to a model.OutputConfig.
func (s *Settings) ToOutputConfig() *model.OutputConfig {
	return &model.OutputConfig{
		Directory: s.OutputDir,
		Extension: s.ImageExtension,
	}
}
