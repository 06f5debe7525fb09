package manifest

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pcouy/inha-downloader/internal/model"
)

func TestCreator_Create(t *testing.T) {
	cfg := &model.OutputConfig{Directory: "out", Extension: ".jpg"}
	album := model.NewAlbum(
		"Recueil de dessins",
		"https://bibliotheque-numerique.inha.fr/viewer/12148",
		"/ab/cd",
		[]string{"scan_001", "scan_002", "scan_003"},
		cfg,
	)
	pages := []*model.Page{
		model.NewPage(album, 1, cfg),
		model.NewPage(album, 3, cfg),
	}

	fixed := time.Date(2024, 11, 2, 10, 0, 0, 0, time.UTC)
	creator := &Creator{now: func() time.Time { return fixed }}

	content, err := creator.Create(album, pages)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var m Manifest
	if err := json.Unmarshal(content, &m); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}

	if m.Title != "Recueil de dessins" {
		t.Errorf("Title = %q", m.Title)
	}
	if m.PageCount != 3 || m.Downloaded != 2 {
		t.Errorf("counts = %d/%d, want 3/2", m.Downloaded, m.PageCount)
	}
	if !m.RetrievedAt.Equal(fixed) {
		t.Errorf("RetrievedAt = %v", m.RetrievedAt)
	}
	if len(m.Pages) != 2 {
		t.Fatalf("len(Pages) = %d", len(m.Pages))
	}
	if m.Pages[1].Index != 3 || m.Pages[1].File != "3.jpg" || m.Pages[1].Image != "scan_003" {
		t.Errorf("Pages[1] = %+v", m.Pages[1])
	}
}
