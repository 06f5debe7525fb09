package model

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// Page represents a single page image within an album.
//
// The local file path is computed when creating a page via NewPage, using the
// album's directory and a zero-padded page number. The padding width is
// derived from the album's page count so that filenames sort correctly:
// page 11 of a 123456-page album becomes "000011.jpg".
type Page struct {
	// Album is a reference to the parent album.
	Album *Album

	// Index is the 1-based position of the page within the album.
	Index int

	// ImageName is the scan identifier used to build the download URL.
	ImageName string

	// Path is the computed local file path where the page will be saved.
	Path string
}

// NewPage creates a Page for the given 1-based index.
//
// The caller must ensure 1 <= index <= album.PageCount(); the range parser
// enforces this before pages are ever constructed.
func NewPage(album *Album, index int, cfg *OutputConfig) *Page {
	page := &Page{
		Album:     album,
		Index:     index,
		ImageName: album.ImageNames[index-1],
	}

	ext := ".jpg"
	if cfg != nil && cfg.Extension != "" {
		ext = cfg.Extension
	}
	page.Path = filepath.Join(album.Dir, PageFileName(index, album.PageCount(), ext))

	return page
}

// PageFileName returns the zero-padded filename for a page index.
//
// The pad width is the number of decimal digits in total, so all filenames in
// one album have equal length and lexicographic order matches page order.
//
// Example:
//
//	PageFileName(11, 123456, ".jpg") // "000011.jpg"
//	PageFileName(3, 42, ".jpg")      // "03.jpg"
func PageFileName(index, total int, ext string) string {
	width := len(strconv.Itoa(total))
	return fmt.Sprintf("%0*d%s", width, index, ext)
}
