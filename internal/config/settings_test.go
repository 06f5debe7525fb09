package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !settings.SkipExisting {
		t.Error("defaults should have SkipExisting enabled")
	}
	if settings.ImageExtension != ".jpg" {
		t.Errorf("ImageExtension = %q", settings.ImageExtension)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.json")

	settings := DefaultSettings()
	settings.OutputDir = "/scans"
	settings.ResizeImages = true
	settings.MaxImageSize = 1200

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.OutputDir != "/scans" {
		t.Errorf("OutputDir = %q", loaded.OutputDir)
	}
	if !loaded.ResizeImages || loaded.MaxImageSize != 1200 {
		t.Errorf("image settings not preserved: %+v", loaded)
	}
}

func TestToOutputConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.OutputDir = "out"

	cfg := settings.ToOutputConfig()
	if cfg.Directory != "out" || cfg.Extension != ".jpg" {
		t.Errorf("ToOutputConfig = %+v", cfg)
	}
}
