// Package config provides configuration management for the downloader.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to the model.OutputConfig used by other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Output directory derived from the album title
//	// Existing files skipped, 60s request timeout, 500ms between requests
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// Returns defaults if the file doesn't exist
//
// # Saving Settings
//
//	settings.OutputDir = "/scans"
//	err := settings.Save("/path/to/config.json")
package config
