// Package inha parses album pages from the INHA digital library
// (bibliotheque-numerique.inha.fr) and builds image download URLs.
//
// The library's viewer embeds everything needed to download an album inside
// the index page's JavaScript: the ordered list of scan identifiers, the
// album's IIIF media server path, and the title. This package extracts those
// three values and turns (album, page) pairs into IIIF image URLs.
//
// # Album Page Parsing
//
//	parser := inha.NewParser(outputCfg)
//	album, err := parser.ParseAlbumPage(htmlContent, viewerURL)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s: %d pages\n", album.Title, album.PageCount())
//
// # URL Construction
//
// ImageURL is a pure function of the album's IIIF path and a scan
// identifier, so the viewer's URL scheme is confined to this package:
//
//	url := inha.ImageURL(album.IIIFPath, album.ImageNames[0])
//
// # Failure Modes
//
// Parsing fails with an error wrapping ErrNoAlbumData when any expected
// fragment is missing, which usually means the URL was not a viewer page or
// the website's code changed. Viewer URLs themselves are validated by
// AlbumID, which fails with ErrInvalidAlbumURL before any network activity.
package inha
