package inha

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pcouy/inha-downloader/internal/model"
)

// ErrNoAlbumData is returned when an expected fragment is missing from the
// index page.
//
// This typically occurs when:
//   - The URL points somewhere other than an album viewer page
//   - The website's embedded JavaScript changed shape
var ErrNoAlbumData = errors.New("album data not found in page")

// The viewer inlines album metadata in its JavaScript. One pattern per
// datum; if any fails to match, the page is not a usable album page.
var (
	imageListRe = regexp.MustCompile(`var images = ([^;]+);`)
	iiifRe      = regexp.MustCompile(`'server': '/medias([a-f/0-9-]+)',`)
	titleRe     = regexp.MustCompile(`<title>\s*(.*?)\s*</title>`)
)

// Parser extracts album information from viewer index pages.
//
// Example usage:
//
//	parser := NewParser(outputCfg)
//
//	resp, _ := http.Get("https://bibliotheque-numerique.inha.fr/viewer/12148")
//	html, _ := io.ReadAll(resp.Body)
//
//	album, err := parser.ParseAlbumPage(string(html), viewerURL)
type Parser struct {
	outputConfig *model.OutputConfig
}

// NewParser creates a Parser with the given output configuration.
//
// The configuration determines the album's output directory and the page
// file extension; it is applied when the parsed album is constructed.
func NewParser(cfg *model.OutputConfig) *Parser {
	return &Parser{outputConfig: cfg}
}

// ParseAlbumPage extracts album info from a viewer index page.
//
// This method performs the following steps:
//  1. Matches the image list, IIIF server path and title patterns
//  2. Decodes the image list, a JavaScript array literal of scan names
//  3. Builds a model.Album with its output directory computed
//
// sourceURL is recorded on the album for the manifest and for display; it is
// not fetched again.
//
// Returns an error wrapping ErrNoAlbumData naming the missing fragment if
// any pattern fails to match.
func (p *Parser) ParseAlbumPage(htmlContent, sourceURL string) (*model.Album, error) {
	imageList, err := matchFragment(imageListRe, htmlContent, "image list")
	if err != nil {
		return nil, err
	}
	iiifPath, err := matchFragment(iiifRe, htmlContent, "IIIF server path")
	if err != nil {
		return nil, err
	}
	title, err := matchFragment(titleRe, htmlContent, "title")
	if err != nil {
		return nil, err
	}

	names, err := decodeImageList(imageList)
	if err != nil {
		return nil, err
	}

	return model.NewAlbum(title, sourceURL, iiifPath, names, p.outputConfig), nil
}

// matchFragment returns the first submatch of re, or an ErrNoAlbumData error
// naming the fragment.
func matchFragment(re *regexp.Regexp, htmlContent, name string) (string, error) {
	m := re.FindStringSubmatch(htmlContent)
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrNoAlbumData, name)
	}
	return m[1], nil
}

// decodeImageList parses the viewer's image array literal.
//
// The literal is JavaScript, not JSON: names are usually single-quoted.
// Scan identifiers only ever contain [A-Za-z0-9_-], so rewriting quotes
// before decoding is safe.
func decodeImageList(literal string) ([]string, error) {
	literal = strings.TrimSpace(literal)
	if !strings.HasPrefix(literal, "[") {
		return nil, fmt.Errorf("%w: image list is not an array", ErrNoAlbumData)
	}
	literal = strings.ReplaceAll(literal, "'", `"`)

	var names []string
	if err := json.Unmarshal([]byte(literal), &names); err != nil {
		return nil, fmt.Errorf("%w: image list: %v", ErrNoAlbumData, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: image list is empty", ErrNoAlbumData)
	}

	return names, nil
}
