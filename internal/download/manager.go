package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/pcouy/inha-downloader/internal/config"
	"github.com/pcouy/inha-downloader/internal/http"
	"github.com/pcouy/inha-downloader/internal/inha"
	ioutils "github.com/pcouy/inha-downloader/internal/io"
	"github.com/pcouy/inha-downloader/internal/manifest"
	"github.com/pcouy/inha-downloader/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a human-readable progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// PageEvent carries byte-level progress for one page download.
//
// Ordinal counts from 1 within the requested set, Total is the size of that
// set; Index is the page's position within the album. Written grows while
// the body streams; Done (or Skipped) marks the final event for a page.
type PageEvent struct {
	Ordinal int
	Total   int
	Index   int
	Path    string
	Written int64
	Done    bool
	Skipped bool
}

// Manager coordinates one album download run.
type Manager struct {
	settings     *config.Settings
	httpClient   *http.Client
	parser       *inha.Parser
	imageService *ioutils.ImageService
	manifests    *manifest.Creator

	// imageURL resolves (iiifPath, imageName) to a download URL. It
	// exists so tests can point the manager at a local server; everything
	// else uses the library's real URL scheme.
	imageURL func(iiifPath, imageName string) string

	album *model.Album

	processedPages atomic.Int32
	requestedPages atomic.Int32
	receivedBytes  atomic.Int64

	onProgress func(ProgressEvent)
	onPage     func(PageEvent)
}

// NewManager creates a download Manager.
//
// Either callback may be nil.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent), onPage func(PageEvent)) *Manager {
	return &Manager{
		settings: settings,
		httpClient: http.NewClient(
			time.Duration(settings.RequestTimeoutSeconds*float64(time.Second)),
			settings.UserAgent,
			time.Duration(settings.RequestIntervalSeconds*float64(time.Second)),
		),
		parser:       inha.NewParser(settings.ToOutputConfig()),
		imageService: ioutils.NewImageService(),
		manifests:    manifest.NewCreator(),
		imageURL:     inha.ImageURL,
		onProgress:   onProgress,
		onPage:       onPage,
	}
}

// Initialize validates the viewer URL, fetches the album index page and
// parses it.
//
// URL validation happens before any network activity, so a malformed album
// URL never costs a request.
func (m *Manager) Initialize(ctx context.Context, albumURL string) error {
	id, err := inha.AlbumID(albumURL)
	if err != nil {
		return err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching album %s", id), Level: LevelVerbose})

	html, err := m.httpClient.GetString(ctx, albumURL)
	if err != nil {
		return fmt.Errorf("fetching album page: %w", err)
	}

	album, err := m.parser.ParseAlbumPage(html, albumURL)
	if err != nil {
		return err
	}

	m.album = album
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Found album: %s (%d pages)", album.Title, album.PageCount()),
		Level:   LevelInfo,
	})

	return nil
}

// Album returns the parsed album, or nil before Initialize succeeds.
func (m *Manager) Album() *model.Album {
	return m.album
}

// PageCount returns the parsed album's page count.
func (m *Manager) PageCount() int {
	if m.album == nil {
		return 0
	}
	return m.album.PageCount()
}

// Pages materializes Page values for the given 1-based indices.
//
// Indices must already be validated against the album's page count (the
// range parser does this).
func (m *Manager) Pages(indices []int) []*model.Page {
	cfg := m.settings.ToOutputConfig()
	pages := make([]*model.Page, 0, len(indices))
	for _, idx := range indices {
		pages = append(pages, model.NewPage(m.album, idx, cfg))
	}
	return pages
}

// DownloadPages fetches the given pages in order, one request at a time.
//
// The loop is fail-fast: the first network or filesystem error aborts it,
// wrapped with the failing page's index. Pages whose destination file
// already exists are skipped when the settings say so. After a fully
// successful run a manifest is written if enabled.
func (m *Manager) DownloadPages(ctx context.Context, indices []int) error {
	if m.album == nil {
		return fmt.Errorf("album not initialized")
	}

	if err := ioutils.EnsureDir(m.album.Dir); err != nil {
		return fmt.Errorf("creating output directory %s: %w", m.album.Dir, err)
	}

	pages := m.Pages(indices)
	m.requestedPages.Store(int32(len(pages)))
	m.processedPages.Store(0)

	for i, page := range pages {
		ordinal := i + 1

		if m.settings.SkipExisting && ioutils.FileExists(page.Path) {
			m.processedPages.Add(1)
			m.pageEvent(PageEvent{Ordinal: ordinal, Total: len(pages), Index: page.Index, Path: page.Path, Done: true, Skipped: true})
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("[%5.1f%%] %s: skipped", m.percent(ordinal, len(pages)), page.Path),
				Level:   LevelVerbose,
			})
			continue
		}

		written, err := m.downloadPage(ctx, page, ordinal, len(pages))
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error on page %d: %v", page.Index, err), Level: LevelError})
			return fmt.Errorf("page %d: %w", page.Index, err)
		}

		m.processedPages.Add(1)
		m.receivedBytes.Add(written)
		m.pageEvent(PageEvent{Ordinal: ordinal, Total: len(pages), Index: page.Index, Path: page.Path, Written: written, Done: true})
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("[%5.1f%%] %s: %d bytes", m.percent(ordinal, len(pages)), page.Path, written),
			Level:   LevelInfo,
		})
	}

	if m.settings.WriteManifest {
		if err := m.writeManifest(pages); err != nil {
			return err
		}
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Downloaded %d page(s) to %s", len(pages), m.album.Dir),
		Level:   LevelSuccess,
	})

	return nil
}

// GetProgress returns current download progress.
func (m *Manager) GetProgress() (processed, requested int, received int64) {
	return int(m.processedPages.Load()), int(m.requestedPages.Load()), m.receivedBytes.Load()
}

// downloadPage fetches a single page image to page.Path and returns the
// number of bytes written.
func (m *Manager) downloadPage(ctx context.Context, page *model.Page, ordinal, total int) (int64, error) {
	url := m.imageURL(m.album.IIIFPath, page.ImageName)

	if m.settings.ResizeImages {
		// Resizing needs the whole image in memory before it can be
		// decoded, so this path buffers instead of streaming.
		data, err := m.httpClient.Get(ctx, url)
		if err != nil {
			return 0, err
		}
		data, err = m.imageService.ResizeImage(ctx, data, m.settings.MaxImageSize, m.settings.MaxImageSize)
		if err != nil {
			return 0, fmt.Errorf("resizing: %w", err)
		}
		if err := os.WriteFile(page.Path, data, 0644); err != nil {
			return 0, err
		}
		return int64(len(data)), nil
	}

	return m.httpClient.DownloadFile(ctx, url, page.Path, func(written, _ int64) {
		m.pageEvent(PageEvent{Ordinal: ordinal, Total: total, Index: page.Index, Path: page.Path, Written: written})
	})
}

func (m *Manager) writeManifest(pages []*model.Page) error {
	content, err := m.manifests.Create(m.album, pages)
	if err != nil {
		return fmt.Errorf("building manifest: %w", err)
	}
	path := filepath.Join(m.album.Dir, manifest.FileName)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s", path), Level: LevelVerbose})
	return nil
}

func (m *Manager) percent(ordinal, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(ordinal) / float64(total) * 100
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}

func (m *Manager) pageEvent(event PageEvent) {
	if m.onPage != nil {
		m.onPage(event)
	}
}
