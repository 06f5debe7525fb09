package inha

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidAlbumURL is returned when a URL does not name a viewer album.
//
// Album URLs look like:
//
//	https://bibliotheque-numerique.inha.fr/viewer/12148
var ErrInvalidAlbumURL = errors.New("no album identifier in URL")

// imageURLTemplate is the IIIF Image API endpoint serving full-resolution
// JPEG renditions of the TIFF masters. The two %s slots are the album's
// media server path and the scan identifier.
const imageURLTemplate = "https://bibliotheque-numerique.inha.fr/i/?IIIF=%s/iiif/%s.tif/full/full/0/native.jpg"

var viewerPathRe = regexp.MustCompile(`^/viewer/(\d+)`)

// AlbumID validates a viewer URL and extracts the numeric album identifier.
//
// The identifier is only used for display and as a directory-name fallback;
// all real resolution goes through the index page. Returns an error wrapping
// ErrInvalidAlbumURL if the URL cannot be parsed or its path is not of the
// /viewer/<number> form.
func AlbumID(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAlbumURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q is not an http(s) URL", ErrInvalidAlbumURL, rawURL)
	}

	m := viewerPathRe.FindStringSubmatch(u.Path)
	if m == nil {
		return "", fmt.Errorf("%w: expected a /viewer/<number> path, got %q", ErrInvalidAlbumURL, u.Path)
	}
	return m[1], nil
}

// ImageURL builds the download URL for one scan of an album.
//
// It is a pure function: the same (iiifPath, imageName) pair always yields
// the same URL. iiifPath comes from the parsed album page, imageName from
// the album's image list.
func ImageURL(iiifPath, imageName string) string {
	return fmt.Sprintf(imageURLTemplate, strings.TrimSuffix(iiifPath, "/"), imageName)
}
