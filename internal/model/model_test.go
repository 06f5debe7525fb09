package model

import "testing"

func TestPageFileName(t *testing.T) {
	tests := []struct {
		index int
		total int
		want  string
	}{
		{1, 9, "1.jpg"},
		{3, 42, "03.jpg"},
		{11, 123456, "000011.jpg"},
		{123456, 123456, "123456.jpg"},
		{7, 100, "007.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := PageFileName(tt.index, tt.total, ".jpg")
			if got != tt.want {
				t.Errorf("PageFileName(%d, %d) = %q, want %q", tt.index, tt.total, got, tt.want)
			}
		})
	}
}

func TestNewAlbum_DirFromTitle(t *testing.T) {
	cfg := &OutputConfig{Extension: ".jpg"}
	album := NewAlbum("Estampes / Volume 2", "https://example.org/viewer/12148", "/ab/cd", []string{"x_0001"}, cfg)

	if album.Dir != "Estampes _ Volume 2" {
		t.Errorf("Dir = %q, want sanitized title", album.Dir)
	}
}

func TestNewAlbum_ExplicitDir(t *testing.T) {
	cfg := &OutputConfig{Directory: "/tmp/out", Extension: ".jpg"}
	album := NewAlbum("Title", "https://example.org/viewer/1", "/ab/cd", nil, cfg)

	if album.Dir != "/tmp/out" {
		t.Errorf("Dir = %q, want %q", album.Dir, "/tmp/out")
	}
}

func TestNewPage_PathComputation(t *testing.T) {
	names := make([]string, 120)
	for i := range names {
		names[i] = "scan_0001"
	}
	cfg := &OutputConfig{Directory: "out", Extension: ".jpg"}
	album := NewAlbum("Title", "https://example.org/viewer/1", "/ab/cd", names, cfg)

	page := NewPage(album, 7, cfg)
	if page.Path != "out/007.jpg" {
		t.Errorf("Path = %q, want %q", page.Path, "out/007.jpg")
	}
	if page.ImageName != "scan_0001" {
		t.Errorf("ImageName = %q", page.ImageName)
	}
}
