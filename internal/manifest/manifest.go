package manifest

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/pcouy/inha-downloader/internal/model"
)

// FileName is the manifest's filename inside the album directory.
const FileName = "manifest.json"

// Manifest describes one download run of an album.
type Manifest struct {
	Title       string      `json:"title"`
	SourceURL   string      `json:"source_url"`
	PageCount   int         `json:"page_count"`
	Downloaded  int         `json:"downloaded"`
	RetrievedAt time.Time   `json:"retrieved_at"`
	Pages       []PageEntry `json:"pages"`
}

// PageEntry describes one downloaded page.
type PageEntry struct {
	Index int    `json:"index"`
	File  string `json:"file"`
	Image string `json:"image"`
}

// Creator builds album manifests.
//
// The clock is injectable so tests can pin RetrievedAt.
type Creator struct {
	now func() time.Time
}

// NewCreator creates a Creator using the system clock.
func NewCreator() *Creator {
	return &Creator{now: time.Now}
}

// Create renders the manifest for the given album and downloaded pages.
//
// Pages holds the subset that was actually fetched (or skipped as already
// present); file paths are recorded relative to the album directory so the
// directory stays relocatable.
func (c *Creator) Create(album *model.Album, pages []*model.Page) ([]byte, error) {
	m := Manifest{
		Title:       album.Title,
		SourceURL:   album.SourceURL,
		PageCount:   album.PageCount(),
		Downloaded:  len(pages),
		RetrievedAt: c.now().UTC(),
		Pages:       make([]PageEntry, 0, len(pages)),
	}

	for _, page := range pages {
		m.Pages = append(m.Pages, PageEntry{
			Index: page.Index,
			File:  filepath.Base(page.Path),
			Image: page.ImageName,
		})
	}

	return json.MarshalIndent(m, "", "  ")
}
