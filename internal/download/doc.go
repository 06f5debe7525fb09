// Package download provides the orchestration logic for fetching album
// pages from the library.
//
// # Manager
//
// The Manager coordinates one download run:
//
//  1. Validate the viewer URL and fetch the album index page
//  2. Parse it into an album (title, IIIF path, scan list)
//  3. Download the requested pages one by one, writing each to disk
//  4. Optionally resize images and write a manifest
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	}, nil)
//
//	if err := manager.Initialize(ctx, viewerURL); err != nil {
//	    log.Fatal(err)
//	}
//	pages := ranges.Full(manager.PageCount())
//	if err := manager.DownloadPages(ctx, pages); err != nil {
//	    log.Fatal(err)
//	}
//
// # Sequencing
//
// Downloads are strictly sequential: each page's fetch completes (or fails)
// before the next begins, and the loop aborts on the first failure. Files
// already written stay on disk; the failing page's partial file is removed.
// The loop must stay sequential so the tool remains polite to the library's
// servers; do not parallelize it.
//
// # Progress Tracking
//
// Progress is reported via two callbacks: ProgressEvent carries leveled,
// human-readable messages (one line per page, per the Info level), and
// PageEvent carries byte-level counters for progress bars.
package download
