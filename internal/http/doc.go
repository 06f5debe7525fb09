// Package http provides an HTTP client configured for the INHA digital
// library.
//
// The Client in this package handles:
//   - User-Agent headers and request timeouts
//   - Pacing between requests so sequential album downloads stay polite
//   - Streaming file downloads with progress tracking
//   - Cleanup of partially-written files on failure
//
// # Basic Usage
//
//	client := http.NewClient(60*time.Second, "inha-downloader", 500*time.Millisecond)
//
//	// Fetch the album index page
//	html, err := client.GetString(ctx, viewerURL)
//
//	// Download a page image, streaming to disk
//	n, err := client.DownloadFile(ctx, imageURL, "album/000001.jpg", func(written, total int64) {
//	    fmt.Printf("%d bytes\r", written)
//	})
//
// # Progress Tracking
//
// The ProgressWriter type wraps any io.Writer for progress tracking. The
// library's image endpoint sends no Content-Length, so the total passed to
// OnUpdate is usually -1 and callers should report plain byte counts.
package http
