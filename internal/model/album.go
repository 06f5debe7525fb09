package model

import (
	ioutils "github.com/pcouy/inha-downloader/internal/io"
)

// Album represents one digitized album hosted by the library.
//
// Album holds everything discovered from the viewer's index page:
//   - Title for naming the output directory
//   - IIIFPath, the per-album media server path used to build image URLs
//   - ImageNames, the ordered list of scan identifiers (one per page)
//
// The output directory is computed once by NewAlbum and never changes
// afterwards.
//
// Example:
//
//	cfg := &OutputConfig{Extension: ".jpg"}
//	album := NewAlbum("Recueil de dessins", srcURL, iiifPath, names, cfg)
//	// album.Dir == "Recueil de dessins"
type Album struct {
	// Title is the album title as shown by the viewer.
	Title string

	// SourceURL is the viewer URL the album was loaded from.
	SourceURL string

	// IIIFPath is the album's media server path, e.g. "/abc123/def".
	// It is an opaque token from the index page, only meaningful to the
	// image URL template.
	IIIFPath string

	// ImageNames lists the scan identifiers in page order.
	// Page index i (1-based) corresponds to ImageNames[i-1].
	ImageNames []string

	// Dir is the computed local directory where page images are saved.
	Dir string
}

// OutputConfig holds output naming settings for albums and pages.
type OutputConfig struct {
	// Directory overrides the output directory. When empty, the
	// sanitized album title is used.
	Directory string

	// Extension is the page image file extension, including the dot.
	// The IIIF endpoint serves JPEG, so this is ".jpg" unless overridden.
	Extension string
}

// NewAlbum creates an Album with its output directory computed.
//
// When cfg.Directory is empty the directory defaults to the album title with
// invalid filename characters replaced, matching how the viewer names its
// own export archives.
func NewAlbum(title, sourceURL, iiifPath string, imageNames []string, cfg *OutputConfig) *Album {
	album := &Album{
		Title:      title,
		SourceURL:  sourceURL,
		IIIFPath:   iiifPath,
		ImageNames: imageNames,
	}

	if cfg != nil && cfg.Directory != "" {
		album.Dir = cfg.Directory
	} else {
		album.Dir = ioutils.SanitizeFileName(title)
	}

	return album
}

// PageCount returns the number of pages in the album.
func (a *Album) PageCount() int {
	return len(a.ImageNames)
}
